package catalog

import (
	"context"
	"errors"
	"strings"
	"time"

	"bhromon/db"
	"bhromon/models"
	"bhromon/payments"
	"bhromon/rdx"
	"bhromon/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	cacheKeyPackages = "catalog:packages:all"
	cacheKeyResorts  = "catalog:resorts:all"
	listCacheTTL     = 5 * time.Minute
)

var ErrItemNotFound = errors.New("item not found")

// Service owns the package and resort collections and the listing cache.
type Service struct {
	packages *mongo.Collection
	resorts  *mongo.Collection
	cache    *rdx.Cache
}

func NewService(d *db.Database, cache *rdx.Cache) *Service {
	return &Service{packages: d.Packages, resorts: d.Resorts, cache: cache}
}

// Resolve loads the pricing view of a catalog item by type and id. Ids are
// matched under both ObjectID and string forms.
func (s *Service) Resolve(ctx context.Context, itemType, itemID string) (models.CatalogItem, error) {
	var coll *mongo.Collection
	switch itemType {
	case payments.ItemPackage:
		coll = s.packages
	case payments.ItemResort:
		coll = s.resorts
	default:
		return models.CatalogItem{}, ErrItemNotFound
	}

	var item models.CatalogItem
	if err := coll.FindOne(ctx, utils.IDFilter(itemID)).Decode(&item); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.CatalogItem{}, ErrItemNotFound
		}
		return models.CatalogItem{}, err
	}
	item.Type = itemType
	return item, nil
}

func (s *Service) invalidate(ctx context.Context, key string) {
	s.cache.Del(ctx, key)
}

// trimAmenities strips stray whitespace the admin UI lets through.
func trimAmenities(amenities []string) []string {
	for i, a := range amenities {
		amenities[i] = strings.TrimSpace(a)
	}
	return amenities
}

// updateFields turns a raw update body into a $set document, refusing _id
// rewrites and stamping updatedAt.
func updateFields(body bson.M) bson.M {
	delete(body, "_id")
	body["updatedAt"] = time.Now()
	return body
}
