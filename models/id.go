package models

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// DocID is a document identifier that decodes from either a native ObjectID
// or an opaque string _id, and always renders as a string. Collections
// migrated from the old deployment carry ObjectIDs; rows written by this
// server carry generated string ids.
type DocID string

func (d DocID) String() string { return string(d) }

func (d DocID) MarshalBSONValue() (bsontype.Type, []byte, error) {
	t, data, err := bson.MarshalValue(string(d))
	return t, data, err
}

func (d *DocID) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.ObjectID:
		*d = DocID(rv.ObjectID().Hex())
		return nil
	case bsontype.String:
		*d = DocID(rv.StringValue())
		return nil
	}
	return fmt.Errorf("docid: cannot decode %s", t)
}
