package utils

import (
	"crypto/md5"
	"fmt"
	rndm "math/rand"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var digitRunes = []rune("0123456789")

// GenerateRandomDigitString creates a random numeric string of length n.
func GenerateRandomDigitString(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = digitRunes[rndm.Intn(len(digitRunes))]
	}
	return string(b)
}

// GenerateID returns a fresh document id.
func GenerateID() string {
	return GenerateRandomDigitString(22)
}

// MD5Hex hashes a string to lowercase hex (gravatar-style).
func MD5Hex(s string) string {
	return fmt.Sprintf("%x", md5.Sum([]byte(s)))
}

// IDFilter builds a _id filter that matches documents keyed by either a
// native ObjectID or an opaque string. Ids that parse as ObjectID hex are
// looked up under both forms; collections migrated from the previous
// deployment still hold ObjectIDs.
func IDFilter(id string) bson.M {
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return bson.M{"$or": []bson.M{{"_id": oid}, {"_id": id}}}
	}
	return bson.M{"_id": id}
}
