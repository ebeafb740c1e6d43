package models

import "time"

// TravelPackage is a flat per-person priced catalog item.
type TravelPackage struct {
	ID           DocID     `json:"_id,omitempty" bson:"_id,omitempty"`
	Title        string    `json:"title" bson:"title"`
	Description  string    `json:"description,omitempty" bson:"description,omitempty"`
	Location     string    `json:"location,omitempty" bson:"location,omitempty"`
	Price        float64   `json:"price" bson:"price"` // per person
	Duration     string    `json:"duration,omitempty" bson:"duration,omitempty"`
	Image        string    `json:"image,omitempty" bson:"image,omitempty"`
	Availability bool      `json:"availability" bson:"availability"`
	ValidFrom    time.Time `json:"validFrom,omitempty" bson:"validFrom,omitempty"`
	ValidTill    time.Time `json:"validTill,omitempty" bson:"validTill,omitempty"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// Resort is a per-night priced catalog item.
type Resort struct {
	ID            DocID     `json:"_id,omitempty" bson:"_id,omitempty"`
	Name          string    `json:"name" bson:"name"`
	Location      string    `json:"location" bson:"location"`
	Description   string    `json:"description,omitempty" bson:"description,omitempty"`
	PricePerNight float64   `json:"pricePerNight,omitempty" bson:"pricePerNight,omitempty"`
	Price         float64   `json:"price,omitempty" bson:"price,omitempty"` // legacy fallback
	Image         string    `json:"image,omitempty" bson:"image,omitempty"`
	Amenities     []string  `json:"amenities,omitempty" bson:"amenities,omitempty"`
	CreatedAt     time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// CatalogItem is the pricing view of either catalog variant, used by the
// booking confirmation flow. Title carries the package title or resort name.
type CatalogItem struct {
	ID            DocID   `bson:"_id,omitempty"`
	Type          string  `bson:"-"` // "package" or "resort"
	Title         string  `bson:"title,omitempty"`
	Name          string  `bson:"name,omitempty"`
	Price         float64 `bson:"price,omitempty"`
	PricePerNight float64 `bson:"pricePerNight,omitempty"`
}

// DisplayTitle returns the human title regardless of variant.
func (c CatalogItem) DisplayTitle() string {
	if c.Title != "" {
		return c.Title
	}
	return c.Name
}
