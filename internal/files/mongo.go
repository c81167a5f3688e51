package files

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kweenDev/alx-files-manager/internal/db"
)

// MongoRepository stores file metadata in the "files" collection.
type MongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(database *db.DB) *MongoRepository {
	return &MongoRepository{coll: database.Files()}
}

func (r *MongoRepository) Insert(ctx context.Context, f *FileRecord) error {
	res, err := r.coll.InsertOne(ctx, f)
	if err != nil {
		return err
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return errors.New("files: store returned non-objectid identifier")
	}
	f.ID = oid

	return nil
}

func (r *MongoRepository) GetByID(ctx context.Context, id string) (*FileRecord, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *MongoRepository) GetOwned(ctx context.Context, id, ownerID string) (*FileRecord, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	owner, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return nil, nil
	}

	return r.findOne(ctx, bson.M{"_id": oid, "userId": owner})
}

func (r *MongoRepository) List(ctx context.Context, ownerID, parentID string, page int64) ([]FileRecord, error) {
	owner, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return []FileRecord{}, nil
	}

	filter := bson.M{"userId": owner}
	if parentID != RootParent {
		filter["parentId"] = parentID
	}

	opts := options.Find().
		SetSkip(page * PageSize).
		SetLimit(PageSize)

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	records := []FileRecord{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}

	return records, nil
}

func (r *MongoRepository) SetPublic(ctx context.Context, id string, public bool) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("files: malformed identifier")
	}

	_, err = r.coll.UpdateOne(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"isPublic": public}},
	)
	return err
}

func (r *MongoRepository) findOne(ctx context.Context, filter bson.M) (*FileRecord, error) {
	var f FileRecord
	err := r.coll.FindOne(ctx, filter).Decode(&f)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}
