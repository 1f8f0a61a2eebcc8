package lead

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"realestate-backend/internal/config"
	model "realestate-backend/internal/domains/lead"
	"realestate-backend/internal/infrastructure/database"
)

const recentWindow = 30 * 24 * time.Hour

type mongoRepository struct {
	contacts   *mongo.Collection
	callbacks  *mongo.Collection
	newsletter *mongo.Collection

	db         *database.MongoDB
	leadPrefix string
}

// NewMongoRepository wires the four lead collections. Campaign leads use
// one collection per campaign, named <leads>_<campaign>.
func NewMongoRepository(db *database.MongoDB, cfg config.MongoConfig) model.RepositoryInterface {
	return &mongoRepository{
		contacts:   db.Collection(cfg.Contacts),
		callbacks:  db.Collection(cfg.Callbacks),
		newsletter: db.Collection(cfg.Newsletter),
		db:         db,
		leadPrefix: cfg.Leads,
	}
}

func (r *mongoRepository) campaignColl(campaign string) *mongo.Collection {
	return r.db.Collection(r.leadPrefix + "_" + campaign)
}

// ---- contacts ----

func (r *mongoRepository) CreateContact(ctx context.Context, c *model.Contact) error {
	now := time.Now().UTC()
	c.ID = primitive.NewObjectID()
	c.CreatedAt = now
	c.UpdatedAt = now

	_, err := r.contacts.InsertOne(ctx, c)
	return err
}

func (r *mongoRepository) ListContacts(ctx context.Context) ([]model.Contact, error) {
	cursor, err := r.contacts.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	contacts := []model.Contact{}
	if err := cursor.All(ctx, &contacts); err != nil {
		return nil, err
	}
	return contacts, nil
}

func (r *mongoRepository) GetContact(ctx context.Context, id string) (*model.Contact, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, model.ErrContactNotFound
	}

	var c model.Contact
	err = r.contacts.FindOne(ctx, bson.M{"_id": oid}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, model.ErrContactNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *mongoRepository) MarkContactRead(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return model.ErrContactNotFound
	}

	_, err = r.contacts.UpdateOne(ctx,
		bson.M{"_id": oid, "isRead": false},
		bson.M{"$set": bson.M{"isRead": true, "updatedAt": time.Now().UTC()}})
	return err
}

func (r *mongoRepository) DeleteContact(ctx context.Context, id string) (*model.Contact, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, model.ErrContactNotFound
	}

	var c model.Contact
	err = r.contacts.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, model.ErrContactNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ---- callbacks ----

func callbackFilter(q model.CallbackQuery) bson.M {
	filter := bson.M{}
	if q.Status != "" {
		filter["status"] = q.Status
	}
	if q.PropertyID != "" {
		if oid, err := primitive.ObjectIDFromHex(q.PropertyID); err == nil {
			filter["propertyId"] = oid
		}
	}
	return filter
}

func (r *mongoRepository) CreateCallback(ctx context.Context, cb *model.CallbackRequest) error {
	now := time.Now().UTC()
	cb.ID = primitive.NewObjectID()
	cb.CreatedAt = now
	cb.UpdatedAt = now

	_, err := r.callbacks.InsertOne(ctx, cb)
	return err
}

func (r *mongoRepository) ListCallbacks(ctx context.Context, q model.CallbackQuery, sortBy string, sortDesc bool, skip, limit int64) ([]model.CallbackRequest, error) {
	if sortBy == "" {
		sortBy = "createdAt"
	}
	order := 1
	if sortDesc {
		order = -1
	}

	cursor, err := r.callbacks.Find(ctx, callbackFilter(q), options.Find().
		SetSort(bson.D{{Key: sortBy, Value: order}}).
		SetSkip(skip).
		SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	callbacks := []model.CallbackRequest{}
	if err := cursor.All(ctx, &callbacks); err != nil {
		return nil, err
	}
	return callbacks, nil
}

func (r *mongoRepository) CountCallbacks(ctx context.Context, q model.CallbackQuery) (int64, error) {
	return r.callbacks.CountDocuments(ctx, callbackFilter(q))
}

func (r *mongoRepository) CallbackStatusCounts(ctx context.Context) ([]model.StatusCount, error) {
	cursor, err := r.callbacks.Aggregate(ctx, mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   "$status",
			"count": bson.M{"$sum": 1},
		}}},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	counts := []model.StatusCount{}
	if err := cursor.All(ctx, &counts); err != nil {
		return nil, err
	}
	return counts, nil
}

func (r *mongoRepository) GetCallback(ctx context.Context, id string) (*model.CallbackRequest, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, model.ErrCallbackNotFound
	}

	var cb model.CallbackRequest
	err = r.callbacks.FindOne(ctx, bson.M{"_id": oid}).Decode(&cb)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, model.ErrCallbackNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cb, nil
}

func (r *mongoRepository) UpdateCallback(ctx context.Context, id string, set map[string]interface{}) (*model.CallbackRequest, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, model.ErrCallbackNotFound
	}

	setDoc := bson.M{"updatedAt": time.Now().UTC()}
	for k, v := range set {
		setDoc[k] = v
	}

	var cb model.CallbackRequest
	err = r.callbacks.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": setDoc},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&cb)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, model.ErrCallbackNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cb, nil
}

func (r *mongoRepository) DeleteCallback(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return model.ErrCallbackNotFound
	}

	res, err := r.callbacks.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return model.ErrCallbackNotFound
	}
	return nil
}

func (r *mongoRepository) CallbackStats(ctx context.Context) (*model.CallbackStats, error) {
	stats := &model.CallbackStats{}

	var err error
	if stats.Total, err = r.callbacks.CountDocuments(ctx, bson.M{}); err != nil {
		return nil, err
	}
	if stats.Pending, err = r.callbacks.CountDocuments(ctx, bson.M{"status": "Pending"}); err != nil {
		return nil, err
	}
	if stats.Contacted, err = r.callbacks.CountDocuments(ctx, bson.M{"status": "Contacted"}); err != nil {
		return nil, err
	}
	if stats.Completed, err = r.callbacks.CountDocuments(ctx, bson.M{"status": "Completed"}); err != nil {
		return nil, err
	}

	since := time.Now().UTC().Add(-recentWindow)
	if stats.RecentRequests, err = r.callbacks.CountDocuments(ctx, bson.M{"createdAt": bson.M{"$gte": since}}); err != nil {
		return nil, err
	}

	cursor, err := r.callbacks.Aggregate(ctx, mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":           "$propertyId",
			"count":         bson.M{"$sum": 1},
			"propertyTitle": bson.M{"$first": "$propertyTitle"},
		}}},
		{{Key: "$sort", Value: bson.M{"count": -1}}},
		{{Key: "$limit", Value: 5}},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	stats.TopProperties = []model.TopProperty{}
	if err := cursor.All(ctx, &stats.TopProperties); err != nil {
		return nil, err
	}
	return stats, nil
}

// ---- newsletter ----

func subscriberFilter(q model.SubscriberQuery) bson.M {
	filter := bson.M{}
	if q.IsActive != nil {
		filter["isActive"] = *q.IsActive
	}
	return filter
}

func (r *mongoRepository) FindSubscription(ctx context.Context, email string) (*model.Subscription, error) {
	var sub model.Subscription
	err := r.newsletter.FindOne(ctx, bson.M{"email": email}).Decode(&sub)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *mongoRepository) CreateSubscription(ctx context.Context, sub *model.Subscription) error {
	now := time.Now().UTC()
	sub.ID = primitive.NewObjectID()
	sub.SubscribedAt = now
	sub.CreatedAt = now
	sub.UpdatedAt = now

	_, err := r.newsletter.InsertOne(ctx, sub)
	return err
}

func (r *mongoRepository) SetSubscriptionActive(ctx context.Context, id string, active bool) (*model.Subscription, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, model.ErrSubscriberIDNotFound
	}

	now := time.Now().UTC()
	set := bson.M{"isActive": active, "updatedAt": now}
	if active {
		set["subscribedAt"] = now
	}

	var sub model.Subscription
	err = r.newsletter.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&sub)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, model.ErrSubscriberIDNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *mongoRepository) ListSubscribers(ctx context.Context, q model.SubscriberQuery, skip, limit int64) ([]model.Subscription, error) {
	sortBy := q.SortBy
	if sortBy == "" {
		sortBy = "createdAt"
	}
	order := 1
	if q.SortDesc {
		order = -1
	}

	cursor, err := r.newsletter.Find(ctx, subscriberFilter(q), options.Find().
		SetSort(bson.D{{Key: sortBy, Value: order}}).
		SetSkip(skip).
		SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	subscribers := []model.Subscription{}
	if err := cursor.All(ctx, &subscribers); err != nil {
		return nil, err
	}
	return subscribers, nil
}

func (r *mongoRepository) CountSubscribers(ctx context.Context, q model.SubscriberQuery) (int64, error) {
	return r.newsletter.CountDocuments(ctx, subscriberFilter(q))
}

func (r *mongoRepository) CountActiveSubscribers(ctx context.Context) (int64, error) {
	return r.newsletter.CountDocuments(ctx, bson.M{"isActive": true})
}

func (r *mongoRepository) DeleteSubscriber(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return model.ErrSubscriberIDNotFound
	}

	res, err := r.newsletter.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return model.ErrSubscriberIDNotFound
	}
	return nil
}

func (r *mongoRepository) NewsletterStats(ctx context.Context) (*model.NewsletterStats, error) {
	stats := &model.NewsletterStats{}

	var err error
	if stats.Total, err = r.newsletter.CountDocuments(ctx, bson.M{}); err != nil {
		return nil, err
	}
	if stats.Active, err = r.newsletter.CountDocuments(ctx, bson.M{"isActive": true}); err != nil {
		return nil, err
	}
	if stats.Inactive, err = r.newsletter.CountDocuments(ctx, bson.M{"isActive": false}); err != nil {
		return nil, err
	}

	since := time.Now().UTC().Add(-recentWindow)
	if stats.RecentSubscriptions, err = r.newsletter.CountDocuments(ctx, bson.M{"subscribedAt": bson.M{"$gte": since}}); err != nil {
		return nil, err
	}

	cursor, err := r.newsletter.Aggregate(ctx, mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   "$source",
			"count": bson.M{"$sum": 1},
		}}},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	stats.BySource = []model.StatusCount{}
	if err := cursor.All(ctx, &stats.BySource); err != nil {
		return nil, err
	}
	return stats, nil
}

// ---- campaign leads ----

func (r *mongoRepository) CreateCampaignLead(ctx context.Context, campaign string, lead *model.CampaignLead) error {
	now := time.Now().UTC()
	lead.ID = primitive.NewObjectID()
	lead.CreatedAt = now
	lead.UpdatedAt = now

	_, err := r.campaignColl(campaign).InsertOne(ctx, lead)
	return err
}

func (r *mongoRepository) ListCampaignLeads(ctx context.Context, campaign string, skip, limit int64) ([]model.CampaignLead, error) {
	cursor, err := r.campaignColl(campaign).Find(ctx, bson.M{}, options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	leads := []model.CampaignLead{}
	if err := cursor.All(ctx, &leads); err != nil {
		return nil, err
	}
	return leads, nil
}

func (r *mongoRepository) CountCampaignLeads(ctx context.Context, campaign string) (int64, error) {
	return r.campaignColl(campaign).CountDocuments(ctx, bson.M{})
}
