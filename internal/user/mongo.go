package user

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kweenDev/alx-files-manager/internal/db"
)

// MongoRepository stores users in the "users" collection.
type MongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(database *db.DB) *MongoRepository {
	return &MongoRepository{coll: database.Users()}
}

func (r *MongoRepository) Create(ctx context.Context, u *User) error {
	res, err := r.coll.InsertOne(ctx, u)
	if err != nil {
		// the unique email index closes the check-then-insert race
		if mongo.IsDuplicateKeyError(err) {
			return ErrAlreadyExists
		}
		return err
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return errors.New("user: store returned non-objectid identifier")
	}
	u.ID = oid

	return nil
}

func (r *MongoRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *MongoRepository) GetByID(ctx context.Context, id string) (*User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var u User
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
