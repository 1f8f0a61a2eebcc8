package lead

import (
	"context"
	"errors"

	model "realestate-backend/internal/domains/lead"
	property "realestate-backend/internal/domains/property"
	"realestate-backend/internal/shared/pagination"
	"realestate-backend/pkg/logger"
)

// Per-list page sizes for the admin panel.
const (
	CallbackListLimit   = 20
	SubscriberListLimit = 50
	CampaignListLimit   = 20
)

// Campaigns are the landing pages currently capturing leads. The campaign
// name doubles as the collection suffix.
var Campaigns = map[string]bool{
	"blunders":   true,
	"strategies": true,
}

var errUnknownCampaign = errors.New("unknown campaign")

// PropertyDirectory is the slice of the listings domain the callback flow
// needs: confirming the referenced property exists.
type PropertyDirectory interface {
	GetByID(ctx context.Context, id string) (*property.Property, error)
}

type service struct {
	repo       model.RepositoryInterface
	properties PropertyDirectory
}

func NewService(repo model.RepositoryInterface, properties PropertyDirectory) model.ServiceInterface {
	return &service{repo: repo, properties: properties}
}

// ---- contacts ----

func (s *service) CreateContact(ctx context.Context, req *model.CreateContactRequest) (*model.Contact, error) {
	c, err := req.ToContact()
	if err != nil {
		return nil, err
	}
	if err := s.repo.CreateContact(ctx, c); err != nil {
		return nil, err
	}

	logger.Info("contact submitted", map[string]interface{}{
		"contact_id": c.ID.Hex(),
	})
	return c, nil
}

func (s *service) ListContacts(ctx context.Context) ([]model.Contact, error) {
	return s.repo.ListContacts(ctx)
}

// GetContact fetches a submission and marks it read on first view.
func (s *service) GetContact(ctx context.Context, id string) (*model.Contact, error) {
	c, err := s.repo.GetContact(ctx, id)
	if err != nil {
		return nil, err
	}

	if !c.IsRead {
		if err := s.repo.MarkContactRead(ctx, id); err != nil {
			return nil, err
		}
		c.IsRead = true
	}
	return c, nil
}

func (s *service) DeleteContact(ctx context.Context, id string) (*model.Contact, error) {
	return s.repo.DeleteContact(ctx, id)
}

// ---- callbacks ----

// CreateCallback records a call-me-back lead after confirming the
// referenced property still exists.
func (s *service) CreateCallback(ctx context.Context, req *model.CreateCallbackRequest) (*model.CallbackRequest, error) {
	cb, err := req.ToCallback()
	if err != nil {
		return nil, err
	}

	if _, err := s.properties.GetByID(ctx, cb.PropertyID.Hex()); err != nil {
		if errors.Is(err, property.ErrPropertyNotFound) {
			return nil, model.ErrPropertyNotFound
		}
		return nil, err
	}

	if err := s.repo.CreateCallback(ctx, cb); err != nil {
		return nil, err
	}

	logger.Info("callback requested", map[string]interface{}{
		"callback_id": cb.ID.Hex(),
		"property_id": cb.PropertyID.Hex(),
	})
	return cb, nil
}

func (s *service) ListCallbacks(ctx context.Context, q model.CallbackQuery, params pagination.Params) ([]model.CallbackRequest, *pagination.Meta, []model.StatusCount, error) {
	callbacks, err := s.repo.ListCallbacks(ctx, q, "createdAt", true, int64(params.Skip()), int64(params.Limit))
	if err != nil {
		return nil, nil, nil, err
	}
	total, err := s.repo.CountCallbacks(ctx, q)
	if err != nil {
		return nil, nil, nil, err
	}
	counts, err := s.repo.CallbackStatusCounts(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	return callbacks, pagination.NewMeta(params, total), counts, nil
}

func (s *service) GetCallback(ctx context.Context, id string) (*model.CallbackRequest, error) {
	return s.repo.GetCallback(ctx, id)
}

func (s *service) UpdateCallback(ctx context.Context, id string, req *model.UpdateCallbackRequest) (*model.CallbackRequest, error) {
	set, err := req.Changes()
	if err != nil {
		return nil, err
	}
	return s.repo.UpdateCallback(ctx, id, set)
}

func (s *service) DeleteCallback(ctx context.Context, id string) error {
	return s.repo.DeleteCallback(ctx, id)
}

func (s *service) CallbackStats(ctx context.Context) (*model.CallbackStats, error) {
	return s.repo.CallbackStats(ctx)
}

// ---- newsletter ----

// Subscribe records a signup. Duplicate active signups are acknowledged
// without error; lapsed ones are reactivated. The bool reports whether
// the email was already actively subscribed.
func (s *service) Subscribe(ctx context.Context, req *model.SubscribeRequest, ipAddress string) (*model.Subscription, bool, error) {
	email, source, err := req.Normalize()
	if err != nil {
		return nil, false, err
	}

	existing, err := s.repo.FindSubscription(ctx, email)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		if existing.IsActive {
			return existing, true, nil
		}
		sub, err := s.repo.SetSubscriptionActive(ctx, existing.ID.Hex(), true)
		return sub, false, err
	}

	sub := &model.Subscription{
		Email:     email,
		IsActive:  true,
		Source:    source,
		IPAddress: ipAddress,
	}
	if err := s.repo.CreateSubscription(ctx, sub); err != nil {
		return nil, false, err
	}
	return sub, false, nil
}

// Unsubscribe deactivates the subscription. The bool reports whether the
// email was already inactive.
func (s *service) Unsubscribe(ctx context.Context, email string) (bool, error) {
	req := model.SubscribeRequest{Email: email}
	normalized, _, err := req.Normalize()
	if err != nil {
		return false, err
	}

	sub, err := s.repo.FindSubscription(ctx, normalized)
	if err != nil {
		return false, err
	}
	if sub == nil {
		return false, model.ErrSubscriberNotFound
	}
	if !sub.IsActive {
		return true, nil
	}

	_, err = s.repo.SetSubscriptionActive(ctx, sub.ID.Hex(), false)
	return false, err
}

func (s *service) ListSubscribers(ctx context.Context, q model.SubscriberQuery, params pagination.Params) ([]model.Subscription, *pagination.Meta, int64, error) {
	subscribers, err := s.repo.ListSubscribers(ctx, q, int64(params.Skip()), int64(params.Limit))
	if err != nil {
		return nil, nil, 0, err
	}
	total, err := s.repo.CountSubscribers(ctx, q)
	if err != nil {
		return nil, nil, 0, err
	}
	active, err := s.repo.CountActiveSubscribers(ctx)
	if err != nil {
		return nil, nil, 0, err
	}
	return subscribers, pagination.NewMeta(params, total), active, nil
}

func (s *service) DeleteSubscriber(ctx context.Context, id string) error {
	return s.repo.DeleteSubscriber(ctx, id)
}

func (s *service) NewsletterStats(ctx context.Context) (*model.NewsletterStats, error) {
	return s.repo.NewsletterStats(ctx)
}

// ---- campaign leads ----

func (s *service) SubmitCampaignLead(ctx context.Context, campaign string, req *model.SubmitCampaignLeadRequest) (*model.CampaignLead, error) {
	if !Campaigns[campaign] {
		return nil, errUnknownCampaign
	}

	l, err := req.ToLead()
	if err != nil {
		return nil, err
	}
	if err := s.repo.CreateCampaignLead(ctx, campaign, l); err != nil {
		return nil, err
	}

	logger.Info("campaign lead captured", map[string]interface{}{
		"campaign": campaign,
		"lead_id":  l.ID.Hex(),
	})
	return l, nil
}

func (s *service) ListCampaignLeads(ctx context.Context, campaign string, params pagination.Params) ([]model.CampaignLead, *pagination.Meta, error) {
	if !Campaigns[campaign] {
		return nil, nil, errUnknownCampaign
	}

	leads, err := s.repo.ListCampaignLeads(ctx, campaign, int64(params.Skip()), int64(params.Limit))
	if err != nil {
		return nil, nil, err
	}
	total, err := s.repo.CountCampaignLeads(ctx, campaign)
	if err != nil {
		return nil, nil, err
	}
	return leads, pagination.NewMeta(params, total), nil
}
