package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// DB wraps the document store client and the named database.
type DB struct {
	client   *mongo.Client
	database *mongo.Database
}

func New(ctx context.Context, uri, database string) (*DB, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		return nil, err
	}

	return &DB{
		client:   client,
		database: client.Database(database),
	}, nil
}

func (d *DB) Users() *mongo.Collection {
	return d.database.Collection("users")
}

func (d *DB) Files() *mongo.Collection {
	return d.database.Collection("files")
}

// Alive reports whether the document store answers a ping right now.
func (d *DB) Alive(ctx context.Context) bool {
	return d.client.Ping(ctx, readpref.Primary()) == nil
}

// NbUsers returns the number of documents in the users collection.
func (d *DB) NbUsers(ctx context.Context) (int64, error) {
	return d.Users().CountDocuments(ctx, bson.D{})
}

// NbFiles returns the number of documents in the files collection.
func (d *DB) NbFiles(ctx context.Context) (int64, error) {
	return d.Files().CountDocuments(ctx, bson.D{})
}

func (d *DB) Close(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}
