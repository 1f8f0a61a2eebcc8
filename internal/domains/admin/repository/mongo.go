package admin

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	model "realestate-backend/internal/domains/admin"
	"realestate-backend/internal/infrastructure/database"
)

type mongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(db *database.MongoDB, collection string) model.RepositoryInterface {
	return &mongoRepository{coll: db.Collection(collection)}
}

func adminFilter(q model.AdminQuery) bson.M {
	filter := bson.M{}
	if q.Role != "" {
		filter["role"] = q.Role
	}
	if q.IsActive != nil {
		filter["isActive"] = *q.IsActive
	}
	return filter
}

func (r *mongoRepository) Create(ctx context.Context, a *model.Admin) error {
	now := time.Now().UTC()
	a.ID = primitive.NewObjectID()
	a.CreatedAt = now
	a.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, a)
	return err
}

func (r *mongoRepository) FindByEmail(ctx context.Context, email string) (*model.Admin, error) {
	var a model.Admin
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *mongoRepository) GetByID(ctx context.Context, id string) (*model.Admin, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, model.ErrAdminNotFound
	}

	var a model.Admin
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, model.ErrAdminNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *mongoRepository) List(ctx context.Context, q model.AdminQuery, skip, limit int64) ([]model.Admin, error) {
	sortBy := q.SortBy
	if sortBy == "" {
		sortBy = "createdAt"
	}
	order := 1
	if q.SortDesc {
		order = -1
	}

	cursor, err := r.coll.Find(ctx, adminFilter(q), options.Find().
		SetSort(bson.D{{Key: sortBy, Value: order}}).
		SetSkip(skip).
		SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	admins := []model.Admin{}
	if err := cursor.All(ctx, &admins); err != nil {
		return nil, err
	}
	return admins, nil
}

func (r *mongoRepository) Count(ctx context.Context, q model.AdminQuery) (int64, error) {
	return r.coll.CountDocuments(ctx, adminFilter(q))
}

func (r *mongoRepository) CountActive(ctx context.Context, active bool) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{"isActive": active})
}

func (r *mongoRepository) Update(ctx context.Context, id string, set map[string]interface{}) (*model.Admin, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, model.ErrAdminNotFound
	}

	setDoc := bson.M{"updatedAt": time.Now().UTC()}
	for k, v := range set {
		setDoc[k] = v
	}

	var a model.Admin
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": setDoc},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, model.ErrAdminNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *mongoRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return model.ErrAdminNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return model.ErrAdminNotFound
	}
	return nil
}

func (r *mongoRepository) TouchLastLogin(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return model.ErrAdminNotFound
	}

	now := time.Now().UTC()
	_, err = r.coll.UpdateOne(ctx, bson.M{"_id": oid},
		bson.M{"$set": bson.M{"lastLogin": now, "updatedAt": now}})
	return err
}
