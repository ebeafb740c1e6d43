package models

import "time"

// Booking statuses
const (
	BookingPaid = "paid"
)

type Booking struct {
	ID        DocID      `json:"_id,omitempty" bson:"_id,omitempty"`
	UserID    string     `json:"userId" bson:"userId"`
	UserEmail string     `json:"userEmail" bson:"userEmail"`
	ItemType  string     `json:"itemType" bson:"itemType"` // "package" or "resort"
	ItemID    string     `json:"itemId" bson:"itemId"`
	ItemTitle string     `json:"itemTitle" bson:"itemTitle"`
	StartDate *time.Time `json:"startDate,omitempty" bson:"startDate,omitempty"`
	Nights    int        `json:"nights,omitempty" bson:"nights,omitempty"`
	Guests    int        `json:"guests" bson:"guests"`
	Note      string     `json:"note,omitempty" bson:"note,omitempty"`
	Amount    float64    `json:"amount" bson:"amount"` // major units, from the payment record
	Currency  string     `json:"currency" bson:"currency"`
	PaymentID string     `json:"paymentId" bson:"paymentId"`
	Status    string     `json:"status" bson:"status"`
	CreatedAt time.Time  `json:"createdAt" bson:"createdAt"`
}

type BookingPage struct {
	Bookings []Booking `json:"bookings"`
	Total    int64     `json:"total"`
	Page     int       `json:"page"`
	Pages    int       `json:"pages"`
}
