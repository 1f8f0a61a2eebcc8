package blog

import (
	"context"
	"errors"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	model "realestate-backend/internal/domains/blog"
	"realestate-backend/internal/infrastructure/database"
	"realestate-backend/internal/shared/homepage"
)

type mongoRepository struct {
	coll    *mongo.Collection
	curator *homepage.Curator
}

// NewMongoRepository wires the blogs collection and its homepage curator,
// which holds the three-card cap.
func NewMongoRepository(db *database.MongoDB, collection string) model.RepositoryInterface {
	coll := db.Collection(collection)
	return &mongoRepository{
		coll:    coll,
		curator: homepage.NewCurator(db.Client(), coll, model.HomePageCapacity),
	}
}

func (r *mongoRepository) Create(ctx context.Context, b *model.Blog) error {
	now := time.Now().UTC()
	b.ID = primitive.NewObjectID()
	b.CreatedAt = now
	b.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, b)
	return err
}

func (r *mongoRepository) Find(ctx context.Context, filter bson.M, sortAsc bool, skip, limit int64) ([]model.Blog, error) {
	order := -1
	if sortAsc {
		order = 1
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: order}})
	if skip > 0 {
		opts.SetSkip(skip)
	}
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	blogs := []model.Blog{}
	if err := cursor.All(ctx, &blogs); err != nil {
		return nil, err
	}
	return blogs, nil
}

func (r *mongoRepository) Count(ctx context.Context, filter bson.M) (int64, error) {
	return r.coll.CountDocuments(ctx, filter)
}

func (r *mongoRepository) GetByID(ctx context.Context, id string) (*model.Blog, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, model.ErrBlogNotFound
	}

	var b model.Blog
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&b)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, model.ErrBlogNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *mongoRepository) Update(ctx context.Context, id string, set map[string]interface{}) (*model.Blog, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, model.ErrBlogNotFound
	}

	setDoc := bson.M{"updatedAt": time.Now().UTC()}
	for k, v := range set {
		setDoc[k] = v
	}

	var b model.Blog
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": setDoc},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&b)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, model.ErrBlogNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *mongoRepository) Delete(ctx context.Context, id string) (*model.Blog, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, model.ErrBlogNotFound
	}

	var b model.Blog
	err = r.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&b)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, model.ErrBlogNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *mongoRepository) HomeBlogs(ctx context.Context) ([]model.Blog, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(model.HomePageCapacity)

	cursor, err := r.coll.Find(ctx, bson.M{"isOnHomePage": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	blogs := []model.Blog{}
	if err := cursor.All(ctx, &blogs); err != nil {
		return nil, err
	}
	return blogs, nil
}

func (r *mongoRepository) CountOnHomePage(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{"isOnHomePage": true})
}

func (r *mongoRepository) AddToHomePage(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return model.ErrBlogNotFound
	}
	return translateCuratorErr(r.curator.Add(ctx, oid), true)
}

func (r *mongoRepository) RemoveFromHomePage(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return model.ErrBlogNotFound
	}
	return translateCuratorErr(r.curator.Remove(ctx, oid), false)
}

func translateCuratorErr(err error, adding bool) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, homepage.ErrNotFound):
		return model.ErrBlogNotFound
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

// Categories returns the distinct non-empty categories, alphabetically.
func (r *mongoRepository) Categories(ctx context.Context) ([]string, error) {
	values, err := r.coll.Distinct(ctx, "category",
		bson.M{"category": bson.M{"$exists": true, "$nin": bson.A{nil, ""}}})
	if err != nil {
		return nil, err
	}

	categories := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok && s != "" {
			categories = append(categories, s)
		}
	}
	sort.Strings(categories)
	return categories, nil
}
