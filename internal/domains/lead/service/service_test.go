package lead

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	model "realestate-backend/internal/domains/lead"
	"realestate-backend/internal/domains/property"
	"realestate-backend/internal/shared/pagination"
)

type fakeRepo struct {
	contacts      map[string]*model.Contact
	markedRead    []string
	callbacks     []*model.CallbackRequest
	subscriptions map[string]*model.Subscription
	setActive     map[string]bool
	campaignLeads map[string][]*model.CampaignLead
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		contacts:      map[string]*model.Contact{},
		subscriptions: map[string]*model.Subscription{},
		setActive:     map[string]bool{},
		campaignLeads: map[string][]*model.CampaignLead{},
	}
}

func (f *fakeRepo) CreateContact(_ context.Context, c *model.Contact) error {
	c.ID = primitive.NewObjectID()
	f.contacts[c.ID.Hex()] = c
	return nil
}

func (f *fakeRepo) ListContacts(_ context.Context) ([]model.Contact, error) {
	out := []model.Contact{}
	for _, c := range f.contacts {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeRepo) GetContact(_ context.Context, id string) (*model.Contact, error) {
	if c, ok := f.contacts[id]; ok {
		return c, nil
	}
	return nil, model.ErrContactNotFound
}

func (f *fakeRepo) MarkContactRead(_ context.Context, id string) error {
	f.markedRead = append(f.markedRead, id)
	return nil
}

func (f *fakeRepo) DeleteContact(_ context.Context, id string) (*model.Contact, error) {
	c, ok := f.contacts[id]
	if !ok {
		return nil, model.ErrContactNotFound
	}
	delete(f.contacts, id)
	return c, nil
}

func (f *fakeRepo) CreateCallback(_ context.Context, cb *model.CallbackRequest) error {
	cb.ID = primitive.NewObjectID()
	f.callbacks = append(f.callbacks, cb)
	return nil
}

func (f *fakeRepo) ListCallbacks(_ context.Context, _ model.CallbackQuery, _ string, _ bool, _, _ int64) ([]model.CallbackRequest, error) {
	out := []model.CallbackRequest{}
	for _, cb := range f.callbacks {
		out = append(out, *cb)
	}
	return out, nil
}

func (f *fakeRepo) CountCallbacks(_ context.Context, _ model.CallbackQuery) (int64, error) {
	return int64(len(f.callbacks)), nil
}

func (f *fakeRepo) CallbackStatusCounts(_ context.Context) ([]model.StatusCount, error) {
	return []model.StatusCount{}, nil
}

func (f *fakeRepo) GetCallback(_ context.Context, _ string) (*model.CallbackRequest, error) {
	return nil, model.ErrCallbackNotFound
}

func (f *fakeRepo) UpdateCallback(_ context.Context, _ string, _ map[string]interface{}) (*model.CallbackRequest, error) {
	return nil, model.ErrCallbackNotFound
}

func (f *fakeRepo) DeleteCallback(_ context.Context, _ string) error { return nil }

func (f *fakeRepo) CallbackStats(_ context.Context) (*model.CallbackStats, error) {
	return &model.CallbackStats{}, nil
}

func (f *fakeRepo) FindSubscription(_ context.Context, email string) (*model.Subscription, error) {
	return f.subscriptions[email], nil
}

func (f *fakeRepo) CreateSubscription(_ context.Context, sub *model.Subscription) error {
	sub.ID = primitive.NewObjectID()
	f.subscriptions[sub.Email] = sub
	return nil
}

func (f *fakeRepo) SetSubscriptionActive(_ context.Context, id string, active bool) (*model.Subscription, error) {
	f.setActive[id] = active
	for _, sub := range f.subscriptions {
		if sub.ID.Hex() == id {
			sub.IsActive = active
			return sub, nil
		}
	}
	return nil, model.ErrSubscriberIDNotFound
}

func (f *fakeRepo) ListSubscribers(_ context.Context, _ model.SubscriberQuery, _, _ int64) ([]model.Subscription, error) {
	out := []model.Subscription{}
	for _, sub := range f.subscriptions {
		out = append(out, *sub)
	}
	return out, nil
}

func (f *fakeRepo) CountSubscribers(_ context.Context, _ model.SubscriberQuery) (int64, error) {
	return int64(len(f.subscriptions)), nil
}

func (f *fakeRepo) CountActiveSubscribers(_ context.Context) (int64, error) {
	var n int64
	for _, sub := range f.subscriptions {
		if sub.IsActive {
			n++
		}
	}
	return n, nil
}

func (f *fakeRepo) DeleteSubscriber(_ context.Context, _ string) error { return nil }

func (f *fakeRepo) NewsletterStats(_ context.Context) (*model.NewsletterStats, error) {
	return &model.NewsletterStats{}, nil
}

func (f *fakeRepo) CreateCampaignLead(_ context.Context, campaign string, lead *model.CampaignLead) error {
	lead.ID = primitive.NewObjectID()
	f.campaignLeads[campaign] = append(f.campaignLeads[campaign], lead)
	return nil
}

func (f *fakeRepo) ListCampaignLeads(_ context.Context, campaign string, _, _ int64) ([]model.CampaignLead, error) {
	out := []model.CampaignLead{}
	for _, l := range f.campaignLeads[campaign] {
		out = append(out, *l)
	}
	return out, nil
}

func (f *fakeRepo) CountCampaignLeads(_ context.Context, campaign string) (int64, error) {
	return int64(len(f.campaignLeads[campaign])), nil
}

type fakeDirectory struct {
	known map[string]bool
}

func (d fakeDirectory) GetByID(_ context.Context, id string) (*property.Property, error) {
	if d.known[id] {
		return &property.Property{}, nil
	}
	return nil, property.ErrPropertyNotFound
}

func TestGetContactMarksRead(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	svc := NewService(repo, fakeDirectory{})

	created, err := svc.CreateContact(ctx, &model.CreateContactRequest{
		FullName: "Asha", Email: "Asha@Example.com", Phone: "9876543210", Message: "interested",
	})
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", created.Email)

	got, err := svc.GetContact(ctx, created.ID.Hex())
	require.NoError(t, err)
	assert.True(t, got.IsRead)
	assert.Equal(t, []string{created.ID.Hex()}, repo.markedRead)

	// second view does not mark again
	_, err = svc.GetContact(ctx, created.ID.Hex())
	require.NoError(t, err)
	assert.Len(t, repo.markedRead, 1)
}

func TestCreateCallbackVerifiesProperty(t *testing.T) {
	ctx := context.Background()
	propertyID := primitive.NewObjectID()

	t.Run("known property", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewService(repo, fakeDirectory{known: map[string]bool{propertyID.Hex(): true}})

		cb, err := svc.CreateCallback(ctx, &model.CreateCallbackRequest{
			Name: "Ravi", Email: "ravi@example.com", Phone: "9876543210",
			PropertyID: propertyID.Hex(), PropertyTitle: "Skyline Towers",
		})
		require.NoError(t, err)
		assert.Equal(t, "Pending", cb.Status)
		assert.Equal(t, "Anytime", cb.PreferredTime)
		assert.Len(t, repo.callbacks, 1)
	})

	t.Run("unknown property", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewService(repo, fakeDirectory{})

		_, err := svc.CreateCallback(ctx, &model.CreateCallbackRequest{
			Name: "Ravi", Email: "ravi@example.com", Phone: "9876543210",
			PropertyID: primitive.NewObjectID().Hex(), PropertyTitle: "Skyline Towers",
		})
		assert.ErrorIs(t, err, model.ErrPropertyNotFound)
		assert.Empty(t, repo.callbacks)
	})
}

func TestSubscribe(t *testing.T) {
	ctx := context.Background()

	t.Run("new signup", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewService(repo, fakeDirectory{})

		sub, already, err := svc.Subscribe(ctx, &model.SubscribeRequest{Email: "Reader@Example.com"}, "10.0.0.1")
		require.NoError(t, err)
		assert.False(t, already)
		assert.True(t, sub.IsActive)
		assert.Equal(t, "reader@example.com", sub.Email)
		assert.Equal(t, "footer", sub.Source)
		assert.Equal(t, "10.0.0.1", sub.IPAddress)
	})

	t.Run("already active is acknowledged", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewService(repo, fakeDirectory{})

		_, _, err := svc.Subscribe(ctx, &model.SubscribeRequest{Email: "reader@example.com"}, "")
		require.NoError(t, err)

		_, already, err := svc.Subscribe(ctx, &model.SubscribeRequest{Email: "reader@example.com"}, "")
		require.NoError(t, err)
		assert.True(t, already)
		assert.Empty(t, repo.setActive)
	})

	t.Run("lapsed signup is reactivated", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewService(repo, fakeDirectory{})

		first, _, err := svc.Subscribe(ctx, &model.SubscribeRequest{Email: "reader@example.com"}, "")
		require.NoError(t, err)

		inactive, err := svc.Unsubscribe(ctx, "reader@example.com")
		require.NoError(t, err)
		assert.False(t, inactive)

		sub, already, err := svc.Subscribe(ctx, &model.SubscribeRequest{Email: "reader@example.com"}, "")
		require.NoError(t, err)
		assert.False(t, already)
		assert.True(t, sub.IsActive)
		assert.True(t, repo.setActive[first.ID.Hex()])
	})

	t.Run("unsubscribe of unknown email", func(t *testing.T) {
		svc := NewService(newFakeRepo(), fakeDirectory{})

		_, err := svc.Unsubscribe(ctx, "ghost@example.com")
		assert.ErrorIs(t, err, model.ErrSubscriberNotFound)
	})

	t.Run("unsubscribe twice reports already inactive", func(t *testing.T) {
		svc := NewService(newFakeRepo(), fakeDirectory{})

		_, _, err := svc.Subscribe(ctx, &model.SubscribeRequest{Email: "reader@example.com"}, "")
		require.NoError(t, err)

		_, err = svc.Unsubscribe(ctx, "reader@example.com")
		require.NoError(t, err)

		alreadyInactive, err := svc.Unsubscribe(ctx, "reader@example.com")
		require.NoError(t, err)
		assert.True(t, alreadyInactive)
	})
}

func TestCampaignLeads(t *testing.T) {
	ctx := context.Background()

	t.Run("submits to a known campaign", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewService(repo, fakeDirectory{})

		lead, err := svc.SubmitCampaignLead(ctx, "blunders", &model.SubmitCampaignLeadRequest{
			Email: "Buyer@Example.com",
		})
		require.NoError(t, err)
		assert.Equal(t, "buyer@example.com", lead.Email)
		assert.Len(t, repo.campaignLeads["blunders"], 1)
	})

	t.Run("rejects an unknown campaign", func(t *testing.T) {
		svc := NewService(newFakeRepo(), fakeDirectory{})

		_, err := svc.SubmitCampaignLead(ctx, "webinar", &model.SubmitCampaignLeadRequest{
			Email: "buyer@example.com",
		})
		assert.Error(t, err)
	})

	t.Run("lists per campaign", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewService(repo, fakeDirectory{})

		_, err := svc.SubmitCampaignLead(ctx, "strategies", &model.SubmitCampaignLeadRequest{Email: "a@example.com"})
		require.NoError(t, err)

		leads, meta, err := svc.ListCampaignLeads(ctx, "strategies", pagination.FromInts(1, 20, CampaignListLimit))
		require.NoError(t, err)
		assert.Len(t, leads, 1)
		assert.Equal(t, int64(1), meta.Total)

		_, _, err = svc.ListCampaignLeads(ctx, "webinar", pagination.FromInts(1, 20, CampaignListLimit))
		assert.Error(t, err)
	})
}
