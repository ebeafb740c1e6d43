package payments

import (
	"math"

	"bhromon/models"
)

// Item types accepted by the pricing and booking flows.
const (
	ItemPackage = "package"
	ItemResort  = "resort"
)

// Quote computes the expected charge for a catalog item in major currency
// units. Packages price per person, resorts per night; missing or
// non-positive quantities count as 1. The client never supplies an amount:
// every number sent to or compared against the payment provider starts here.
func Quote(item models.CatalogItem, guests, nights int) float64 {
	switch item.Type {
	case ItemResort:
		perNight := item.PricePerNight
		if perNight == 0 {
			// older resort rows only carry a generic price field
			perNight = item.Price
		}
		if nights < 1 {
			nights = 1
		}
		return perNight * float64(nights)
	default:
		if guests < 1 {
			guests = 1
		}
		return item.Price * float64(guests)
	}
}

// MinorUnits converts a major-unit amount to the provider's smallest
// denomination, rounded to the nearest integer.
func MinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// MajorUnits converts a provider amount back to display units.
func MajorUnits(amount int64) float64 {
	return float64(amount) / 100
}
