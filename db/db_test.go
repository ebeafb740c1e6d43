package db

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
)

func TestIsDuplicateKeyDetectsE11000(t *testing.T) {
	err := mongo.WriteException{
		WriteErrors: []mongo.WriteError{
			{Code: 11000, Message: "E11000 duplicate key error collection: traveldb.bookings index: unique_payment_id"},
		},
	}
	if !IsDuplicateKey(err) {
		t.Fatal("E11000 write error not classified as duplicate key")
	}
}

func TestIsDuplicateKeyIgnoresOtherWriteErrors(t *testing.T) {
	err := mongo.WriteException{
		WriteErrors: []mongo.WriteError{
			{Code: 121, Message: "Document failed validation"},
		},
	}
	if IsDuplicateKey(err) {
		t.Fatal("non-11000 write error classified as duplicate key")
	}
}

func TestIsDuplicateKeyNilAndPlainErrors(t *testing.T) {
	if IsDuplicateKey(nil) {
		t.Fatal("nil classified as duplicate key")
	}
	if IsDuplicateKey(errors.New("connection reset")) {
		t.Fatal("plain error classified as duplicate key")
	}
}
