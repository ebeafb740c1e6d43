package utils

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestIDFilterObjectIDForm(t *testing.T) {
	hex := "507f1f77bcf86cd799439011"
	filter := IDFilter(hex)

	or, ok := filter["$or"].([]bson.M)
	if !ok || len(or) != 2 {
		t.Fatalf("expected $or with two branches, got %v", filter)
	}
	if _, ok := or[0]["_id"].(primitive.ObjectID); !ok {
		t.Errorf("first branch should match ObjectID, got %v", or[0])
	}
	if or[1]["_id"] != hex {
		t.Errorf("second branch should match raw string, got %v", or[1])
	}
}

func TestIDFilterOpaqueString(t *testing.T) {
	filter := IDFilter("5551234567890123456789")
	if filter["_id"] != "5551234567890123456789" {
		t.Errorf("opaque id filter = %v", filter)
	}
}

func TestGenerateRandomDigitString(t *testing.T) {
	s := GenerateRandomDigitString(22)
	if len(s) != 22 {
		t.Fatalf("length = %d, want 22", len(s))
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			t.Fatalf("non-digit %q in %s", r, s)
		}
	}
}

func TestPageCount(t *testing.T) {
	tests := []struct {
		total int64
		limit int
		want  int
	}{
		{0, 10, 0},
		{10, 10, 1},
		{11, 10, 2},
		{9, 10, 1},
		{5, 0, 0},
	}
	for _, tt := range tests {
		if got := PageCount(tt.total, tt.limit); got != tt.want {
			t.Errorf("PageCount(%d, %d) = %d, want %d", tt.total, tt.limit, got, tt.want)
		}
	}
}
