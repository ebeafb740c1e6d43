package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Database owns the Mongo client and the collection handles used by the
// services. It is built once in main and injected; handlers never reach
// for package-level state.
type Database struct {
	Client *mongo.Client

	Users    *mongo.Collection
	Packages *mongo.Collection
	Resorts  *mongo.Collection
	Bookings *mongo.Collection
}

// Connect dials Mongo and binds the traveldb collections.
func Connect(ctx context.Context, uri string) (*Database, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	d := client.Database("traveldb")
	return &Database{
		Client:   client,
		Users:    d.Collection("users"),
		Packages: d.Collection("packages"),
		Resorts:  d.Collection("resorts"),
		Bookings: d.Collection("bookings"),
	}, nil
}

// EnsureIndexes creates the indexes the services rely on. The unique index
// on bookings.paymentId is the only guard against two confirmations of the
// same payment racing each other, so startup fails if it cannot be built.
func (db *Database) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := db.Users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.M{"email": 1},
		Options: options.Index().SetUnique(true).SetName("unique_email"),
	})
	if err != nil {
		return err
	}

	_, err = db.Bookings.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.M{"paymentId": 1},
		Options: options.Index().SetUnique(true).SetName("unique_payment_id"),
	})
	if err != nil {
		return err
	}

	_, err = db.Bookings.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userEmail", Value: 1}, {Key: "createdAt", Value: -1}},
	})
	return err
}

func (db *Database) Close(ctx context.Context) error {
	return db.Client.Disconnect(ctx)
}

// IsDuplicateKey reports whether err is a Mongo unique-index violation
// (code 11000).
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if we, ok := err.(mongo.WriteException); ok {
		for _, e := range we.WriteErrors {
			if e.Code == 11000 {
				return true
			}
		}
	}
	return mongo.IsDuplicateKeyError(err)
}
