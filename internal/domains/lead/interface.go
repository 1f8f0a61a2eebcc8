package lead

import (
	"context"

	"realestate-backend/internal/shared/pagination"
)

// ServiceInterface - business logic surface consumed by the handlers
type ServiceInterface interface {
	CreateContact(ctx context.Context, req *CreateContactRequest) (*Contact, error)
	ListContacts(ctx context.Context) ([]Contact, error)
	GetContact(ctx context.Context, id string) (*Contact, error)
	DeleteContact(ctx context.Context, id string) (*Contact, error)

	CreateCallback(ctx context.Context, req *CreateCallbackRequest) (*CallbackRequest, error)
	ListCallbacks(ctx context.Context, q CallbackQuery, params pagination.Params) ([]CallbackRequest, *pagination.Meta, []StatusCount, error)
	GetCallback(ctx context.Context, id string) (*CallbackRequest, error)
	UpdateCallback(ctx context.Context, id string, req *UpdateCallbackRequest) (*CallbackRequest, error)
	DeleteCallback(ctx context.Context, id string) error
	CallbackStats(ctx context.Context) (*CallbackStats, error)

	Subscribe(ctx context.Context, req *SubscribeRequest, ipAddress string) (*Subscription, bool, error)
	Unsubscribe(ctx context.Context, email string) (bool, error)
	ListSubscribers(ctx context.Context, q SubscriberQuery, params pagination.Params) ([]Subscription, *pagination.Meta, int64, error)
	DeleteSubscriber(ctx context.Context, id string) error
	NewsletterStats(ctx context.Context) (*NewsletterStats, error)

	SubmitCampaignLead(ctx context.Context, campaign string, req *SubmitCampaignLeadRequest) (*CampaignLead, error)
	ListCampaignLeads(ctx context.Context, campaign string, params pagination.Params) ([]CampaignLead, *pagination.Meta, error)
}

// RepositoryInterface - data access surface over the lead collections
type RepositoryInterface interface {
	CreateContact(ctx context.Context, c *Contact) error
	ListContacts(ctx context.Context) ([]Contact, error)
	GetContact(ctx context.Context, id string) (*Contact, error)
	MarkContactRead(ctx context.Context, id string) error
	DeleteContact(ctx context.Context, id string) (*Contact, error)

	CreateCallback(ctx context.Context, cb *CallbackRequest) error
	ListCallbacks(ctx context.Context, q CallbackQuery, sortBy string, sortDesc bool, skip, limit int64) ([]CallbackRequest, error)
	CountCallbacks(ctx context.Context, q CallbackQuery) (int64, error)
	CallbackStatusCounts(ctx context.Context) ([]StatusCount, error)
	GetCallback(ctx context.Context, id string) (*CallbackRequest, error)
	UpdateCallback(ctx context.Context, id string, set map[string]interface{}) (*CallbackRequest, error)
	DeleteCallback(ctx context.Context, id string) error
	CallbackStats(ctx context.Context) (*CallbackStats, error)

	FindSubscription(ctx context.Context, email string) (*Subscription, error)
	CreateSubscription(ctx context.Context, sub *Subscription) error
	SetSubscriptionActive(ctx context.Context, id string, active bool) (*Subscription, error)
	ListSubscribers(ctx context.Context, q SubscriberQuery, skip, limit int64) ([]Subscription, error)
	CountSubscribers(ctx context.Context, q SubscriberQuery) (int64, error)
	CountActiveSubscribers(ctx context.Context) (int64, error)
	DeleteSubscriber(ctx context.Context, id string) error
	NewsletterStats(ctx context.Context) (*NewsletterStats, error)

	CreateCampaignLead(ctx context.Context, campaign string, lead *CampaignLead) error
	ListCampaignLeads(ctx context.Context, campaign string, skip, limit int64) ([]CampaignLead, error)
	CountCampaignLeads(ctx context.Context, campaign string) (int64, error)
}
