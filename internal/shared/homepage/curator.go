package homepage

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrNotFound         = errors.New("homepage: record not found")
	ErrAlreadyInState   = errors.New("homepage: record already in requested state")
	ErrCapacityExceeded = errors.New("homepage: capacity reached")
)

// Curator flips the isOnHomePage flag on a collection while holding a hard
// cap on how many records may carry it at once. Add runs inside a
// transaction so two concurrent adds cannot both pass the capacity check.
type Curator struct {
	client   *mongo.Client
	coll     *mongo.Collection
	capacity int64
}

func NewCurator(client *mongo.Client, coll *mongo.Collection, capacity int64) *Curator {
	return &Curator{client: client, coll: coll, capacity: capacity}
}

// Add promotes the record onto the homepage. The final UpdateOne matches on
// {_id, isOnHomePage: false} so a concurrent promotion of the same record
// surfaces as ErrAlreadyInState instead of a silent double count.
func (cu *Curator) Add(ctx context.Context, id primitive.ObjectID) error {
	session, err := cu.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		var current struct {
			IsOnHomePage bool `bson:"isOnHomePage"`
		}
		err := cu.coll.FindOne(sc, bson.M{"_id": id},
			options.FindOne().SetProjection(bson.M{"isOnHomePage": 1})).Decode(&current)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		if err != nil {
			return nil, err
		}
		if current.IsOnHomePage {
			return nil, ErrAlreadyInState
		}

		count, err := cu.coll.CountDocuments(sc, bson.M{"isOnHomePage": true})
		if err != nil {
			return nil, err
		}
		if count >= cu.capacity {
			return nil, ErrCapacityExceeded
		}

		res, err := cu.coll.UpdateOne(sc,
			bson.M{"_id": id, "isOnHomePage": false},
			bson.M{"$set": bson.M{"isOnHomePage": true, "updatedAt": time.Now().UTC()}})
		if err != nil {
			return nil, err
		}
		if res.ModifiedCount == 0 {
			return nil, ErrAlreadyInState
		}
		return nil, nil
	})
	return err
}

// Remove demotes the record. No capacity check is needed, so a single
// conditional update suffices.
func (cu *Curator) Remove(ctx context.Context, id primitive.ObjectID) error {
	res, err := cu.coll.UpdateOne(ctx,
		bson.M{"_id": id, "isOnHomePage": true},
		bson.M{"$set": bson.M{"isOnHomePage": false, "updatedAt": time.Now().UTC()}})
	if err != nil {
		return err
	}
	if res.ModifiedCount == 1 {
		return nil
	}

	// Distinguish a missing record from one already off the homepage.
	err = cu.coll.FindOne(ctx, bson.M{"_id": id},
		options.FindOne().SetProjection(bson.M{"_id": 1})).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	return ErrAlreadyInState
}
