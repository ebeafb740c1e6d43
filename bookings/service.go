package bookings

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"bhromon/catalog"
	"bhromon/db"
	"bhromon/middleware"
	"bhromon/models"
	"bhromon/payments"
	"bhromon/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ItemResolver loads the pricing view of a catalog item.
type ItemResolver interface {
	Resolve(ctx context.Context, itemType, itemID string) (models.CatalogItem, error)
}

// Service is the booking confirmation engine and its read/delete surface.
type Service struct {
	bookings *mongo.Collection
	users    *mongo.Collection
	catalog  ItemResolver
	provider payments.Provider
	currency string
	qrSecret []byte
}

func NewService(d *db.Database, resolver ItemResolver, provider payments.Provider, currency string, qrSecret []byte) *Service {
	if currency == "" {
		currency = "usd"
	}
	return &Service{
		bookings: d.Bookings,
		users:    d.Users,
		catalog:  resolver,
		provider: provider,
		currency: currency,
		qrSecret: qrSecret,
	}
}

type intentRequest struct {
	ItemType string `json:"itemType"`
	ItemID   string `json:"itemId"`
	Nights   int    `json:"nights"`
	Guests   int    `json:"guests"`
}

// CreateIntent quotes the item server-side and reserves a charge with the
// payment provider. No booking state is written here.
// POST /create-payment-intent
func (s *Service) CreateIntent(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ident, _ := middleware.IdentityFromRequest(r)

	var body intentRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if body.ItemType == "" || body.ItemID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing itemType or itemId")
		return
	}
	if body.ItemType != payments.ItemPackage && body.ItemType != payments.ItemResort {
		utils.RespondWithError(w, http.StatusBadRequest, "Unknown itemType")
		return
	}

	ctx := r.Context()
	item, err := s.catalog.Resolve(ctx, body.ItemType, body.ItemID)
	if err != nil {
		if errors.Is(err, catalog.ErrItemNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Item not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create payment intent")
		return
	}

	amount := payments.MinorUnits(payments.Quote(item, body.Guests, body.Nights))
	if amount <= 0 {
		// an intent for zero can never be confirmed; refuse up front
		utils.RespondWithError(w, http.StatusBadRequest, "Item has no price configured")
		return
	}

	intent, err := s.provider.CreateIntent(ctx, amount, s.currency, map[string]string{
		"itemType":  body.ItemType,
		"itemId":    item.ID.String(),
		"userEmail": ident.Email,
	})
	if err != nil {
		log.Printf("create payment intent failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create payment intent")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"clientSecret": intent.ClientSecret,
		"amount":       intent.Amount,
		"currency":     intent.Currency,
	})
}

type confirmRequest struct {
	PaymentIntentID string `json:"paymentIntentId"`
	ItemType        string `json:"itemType"`
	ItemID          string `json:"itemId"`
	Nights          int    `json:"nights"`
	Guests          int    `json:"guests"`
	StartDate       string `json:"startDate"`
	Note            string `json:"note"`
}

// Confirm turns a completed payment into exactly one booking. The charge
// is re-verified against the provider and the catalog before anything is
// persisted; a mismatched amount is rejected outright. The unique index on
// paymentId makes a second confirmation of the same payment a conflict.
// POST /bookings/confirm
func (s *Service) Confirm(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ident, _ := middleware.IdentityFromRequest(r)

	var body confirmRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if body.PaymentIntentID == "" || body.ItemType == "" || body.ItemID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing fields")
		return
	}

	ctx := r.Context()

	intent, err := s.provider.RetrieveIntent(ctx, body.PaymentIntentID)
	if err != nil {
		if errors.Is(err, payments.ErrIntentNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Payment not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to confirm booking")
		return
	}
	// payment outcome is settled before anything else is looked at
	if intent.Status != payments.StatusSucceeded {
		utils.RespondWithError(w, http.StatusBadRequest, "Payment not successful")
		return
	}

	item, err := s.catalog.Resolve(ctx, body.ItemType, body.ItemID)
	if err != nil {
		if errors.Is(err, catalog.ErrItemNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Item not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to confirm booking")
		return
	}

	switch err := VerifyCharge(intent, item, body.Guests, body.Nights); {
	case errors.Is(err, ErrPaymentNotSucceeded):
		utils.RespondWithError(w, http.StatusBadRequest, "Payment not successful")
		return
	case errors.Is(err, ErrAmountMismatch):
		log.Printf("amount mismatch on %s: charged %d, expected %d", intent.ID,
			intent.Amount, payments.MinorUnits(payments.Quote(item, body.Guests, body.Nights)))
		utils.RespondWithError(w, http.StatusConflict, "Payment amount mismatch")
		return
	case err != nil:
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to confirm booking")
		return
	}

	guests := body.Guests
	if guests < 1 {
		guests = 1
	}

	booking := models.Booking{
		ID:        models.DocID(utils.GenerateID()),
		UserID:    ident.UserID,
		UserEmail: ident.Email,
		ItemType:  body.ItemType,
		ItemID:    item.ID.String(),
		ItemTitle: item.DisplayTitle(),
		StartDate: parseStartDate(body.StartDate),
		Nights:    body.Nights,
		Guests:    guests,
		Note:      body.Note,
		Amount:    payments.MajorUnits(intent.Amount),
		Currency:  intent.Currency,
		PaymentID: intent.ID,
		Status:    models.BookingPaid,
		CreatedAt: time.Now(),
	}

	if _, err := s.bookings.InsertOne(ctx, booking); err != nil {
		if db.IsDuplicateKey(err) {
			utils.RespondWithError(w, http.StatusConflict, "Booking already confirmed for this payment")
			return
		}
		log.Printf("booking insert failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to confirm booking")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"message":   "Booking confirmed",
		"bookingId": booking.ID.String(),
	})
}

func parseStartDate(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	return nil
}

// userBookingsQuery scopes the listing to one owner, newest first.
func userBookingsQuery(email string) (bson.M, *options.FindOptions) {
	return bson.M{"userEmail": email}, options.Find().SetSort(bson.M{"createdAt": -1})
}

// UserBookings lists the caller's bookings, newest first.
// GET /bookings/user
func (s *Service) UserBookings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ident, ok := middleware.IdentityFromRequest(r)
	if !ok || ident.Email == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user")
		return
	}

	ctx := r.Context()
	filter, findOpts := userBookingsQuery(ident.Email)
	cur, err := s.bookings.Find(ctx, filter, findOpts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch bookings")
		return
	}
	defer cur.Close(ctx)

	list := []models.Booking{}
	if err := cur.All(ctx, &list); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch bookings")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, list)
}

// List pages through all bookings, newest first. Admin only.
// GET /bookings?page&limit
func (s *Service) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	opts := utils.ParseQueryOptions(r, 20)

	ctx := r.Context()
	total, err := s.bookings.CountDocuments(ctx, bson.M{})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch bookings")
		return
	}

	findOpts := options.Find().
		SetSort(bson.M{"createdAt": -1}).
		SetSkip(int64((opts.Page - 1) * opts.Limit)).
		SetLimit(int64(opts.Limit))
	cur, err := s.bookings.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch bookings")
		return
	}
	defer cur.Close(ctx)

	list := []models.Booking{}
	if err := cur.All(ctx, &list); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch bookings")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, models.BookingPage{
		Bookings: list,
		Total:    total,
		Page:     opts.Page,
		Pages:    utils.PageCount(total, opts.Limit),
	})
}

// Get returns one booking by id. Admin only.
// GET /bookings/:id
func (s *Service) Get(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	var booking models.Booking
	err := s.bookings.FindOne(r.Context(), utils.IDFilter(id)).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Booking not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch booking")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, booking)
}

// Delete removes a booking. Owners may delete their own; admins any.
// DELETE /bookings/:id
func (s *Service) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ident, _ := middleware.IdentityFromRequest(r)
	id := ps.ByName("id")

	ctx := r.Context()
	var booking models.Booking
	err := s.bookings.FindOne(ctx, utils.IDFilter(id)).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Booking not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete booking")
		return
	}

	if !CanDelete(booking, ident.Email, s.isAdmin(ctx, ident.Email)) {
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
		return
	}

	res, err := s.bookings.DeleteOne(ctx, utils.IDFilter(id))
	if err != nil || res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete booking")
		return
	}

	utils.RespondWithMessage(w, http.StatusOK, "Booking removed")
}

func (s *Service) isAdmin(ctx context.Context, email string) bool {
	if email == "" {
		return false
	}
	var user models.User
	if err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		return false
	}
	return user.Role == "admin"
}
