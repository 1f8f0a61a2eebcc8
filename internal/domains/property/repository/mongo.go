package property

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	model "realestate-backend/internal/domains/property"
	"realestate-backend/internal/infrastructure/database"
	"realestate-backend/internal/shared/homepage"
)

type mongoRepository struct {
	coll    *mongo.Collection
	curator *homepage.Curator
}

// NewMongoRepository wires the properties collection and its homepage
// curator, which holds the eight-card cap.
func NewMongoRepository(db *database.MongoDB, collection string) model.RepositoryInterface {
	coll := db.Collection(collection)
	return &mongoRepository{
		coll:    coll,
		curator: homepage.NewCurator(db.Client(), coll, model.HomePageCapacity),
	}
}

func (r *mongoRepository) Create(ctx context.Context, p *model.Property) error {
	now := time.Now().UTC()
	p.ID = primitive.NewObjectID()
	p.CreatedAt = now
	p.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, p)
	return err
}

// Find returns a page of matching records, newest first.
func (r *mongoRepository) Find(ctx context.Context, filter bson.M, skip, limit int64) ([]model.Property, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	properties := make([]model.Property, 0, limit)
	if err := cursor.All(ctx, &properties); err != nil {
		return nil, err
	}
	return properties, nil
}

func (r *mongoRepository) Count(ctx context.Context, filter bson.M) (int64, error) {
	return r.coll.CountDocuments(ctx, filter)
}

func (r *mongoRepository) GetByID(ctx context.Context, id string) (*model.Property, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, model.ErrPropertyNotFound
	}

	var p model.Property
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, model.ErrPropertyNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Update applies the $set document and appends any new image URLs in one
// round trip, returning the updated record.
func (r *mongoRepository) Update(ctx context.Context, id string, set map[string]interface{}, pushImages []string) (*model.Property, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, model.ErrPropertyNotFound
	}

	setDoc := bson.M{"updatedAt": time.Now().UTC()}
	for k, v := range set {
		setDoc[k] = v
	}
	update := bson.M{"$set": setDoc}
	if len(pushImages) > 0 {
		update["$addToSet"] = bson.M{"images": bson.M{"$each": pushImages}}
	}

	var p model.Property
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, model.ErrPropertyNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Delete removes the record and hands back its last state so the caller
// can clean up stored images.
func (r *mongoRepository) Delete(ctx context.Context, id string) (*model.Property, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, model.ErrPropertyNotFound
	}

	var p model.Property
	err = r.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, model.ErrPropertyNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// PullImage drops a single URL from the images array. The match requires
// the URL to be present so a stale panel state surfaces as not found.
func (r *mongoRepository) PullImage(ctx context.Context, id, imageURL string) (*model.Property, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, model.ErrPropertyNotFound
	}

	var p model.Property
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid, "images": imageURL},
		bson.M{
			"$pull": bson.M{"images": imageURL},
			"$set":  bson.M{"updatedAt": time.Now().UTC()},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, r.classifyImageMiss(ctx, oid)
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *mongoRepository) classifyImageMiss(ctx context.Context, oid primitive.ObjectID) error {
	err := r.coll.FindOne(ctx, bson.M{"_id": oid},
		options.FindOne().SetProjection(bson.M{"_id": 1})).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.ErrPropertyNotFound
	}
	if err != nil {
		return err
	}
	return model.ErrImageNotFound
}

func (r *mongoRepository) HomeProperties(ctx context.Context) ([]model.Property, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(model.HomePageCapacity)

	cursor, err := r.coll.Find(ctx, bson.M{"isOnHomePage": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	properties := make([]model.Property, 0, model.HomePageCapacity)
	if err := cursor.All(ctx, &properties); err != nil {
		return nil, err
	}
	return properties, nil
}

func (r *mongoRepository) AddToHomePage(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return model.ErrPropertyNotFound
	}
	return r.translateCuratorErr(r.curator.Add(ctx, oid), true)
}

func (r *mongoRepository) RemoveFromHomePage(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return model.ErrPropertyNotFound
	}
	return r.translateCuratorErr(r.curator.Remove(ctx, oid), false)
}

func (r *mongoRepository) translateCuratorErr(err error, adding bool) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, homepage.ErrNotFound):
		return model.ErrPropertyNotFound
	case errors.Is(err, homepage.ErrAlreadyInState) && adding:
		return model.ErrAlreadyOnHome
	case errors.Is(err, homepage.ErrAlreadyInState):
		return model.ErrNotOnHome
	case errors.Is(err, homepage.ErrCapacityExceeded):
		return model.ErrHomePageLimit
	default:
		return err
	}
}
