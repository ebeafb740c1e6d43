package bookings

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bhromon/catalog"
	"bhromon/globals"
	"bhromon/identity"
	"bhromon/models"
	"bhromon/payments"

	"go.mongodb.org/mongo-driver/bson"
)

type stubResolver struct {
	item models.CatalogItem
	err  error
}

func (s stubResolver) Resolve(context.Context, string, string) (models.CatalogItem, error) {
	return s.item, s.err
}

func confirmRequestBody(intentID string) *strings.Reader {
	return strings.NewReader(`{"paymentIntentId":"` + intentID + `","itemType":"package","itemId":"pkg1","guests":2}`)
}

func newConfirmRequest(intentID string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/bookings/confirm", confirmRequestBody(intentID))
	ctx := context.WithValue(r.Context(), globals.IdentityKey, identity.Identity{UserID: "u1", Email: "a@b.com"})
	return r.WithContext(ctx)
}

func TestConfirmPendingPaymentCheckedBeforeItemLookup(t *testing.T) {
	provider := payments.NewLocalProvider()
	intent, _ := provider.CreateIntent(context.Background(), 100000, "usd", nil)

	// the item is gone; a pending payment must still surface as a payment
	// failure, not as a missing item
	s := &Service{provider: provider, catalog: stubResolver{err: catalog.ErrItemNotFound}}

	w := httptest.NewRecorder()
	s.Confirm(w, newConfirmRequest(intent.ID), nil)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Payment not successful") {
		t.Errorf("body = %s, want payment failure", w.Body.String())
	}
}

func TestConfirmUnknownPayment(t *testing.T) {
	s := &Service{provider: payments.NewLocalProvider(), catalog: stubResolver{}}

	w := httptest.NewRecorder()
	s.Confirm(w, newConfirmRequest("pi_missing"), nil)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Payment not found") {
		t.Errorf("body = %s, want payment not found", w.Body.String())
	}
}

func TestConfirmMismatchedAmountRejectedBeforePersist(t *testing.T) {
	provider := payments.NewLocalProvider()
	// 500/person x 2 guests expects 100000; the processor only collected half
	intent, _ := provider.CreateIntent(context.Background(), 50000, "usd", nil)
	if err := provider.SetStatus(intent.ID, payments.StatusSucceeded); err != nil {
		t.Fatal(err)
	}

	item := models.CatalogItem{ID: "pkg1", Type: payments.ItemPackage, Title: "Sundarbans", Price: 500}
	// bookings collection is nil: reaching the insert would panic the test
	s := &Service{provider: provider, catalog: stubResolver{item: item}}

	w := httptest.NewRecorder()
	s.Confirm(w, newConfirmRequest(intent.ID), nil)

	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", w.Code)
	}
	if !strings.Contains(w.Body.String(), "amount mismatch") {
		t.Errorf("body = %s, want amount mismatch", w.Body.String())
	}
}

func TestUserBookingsQuery(t *testing.T) {
	filter, opts := userBookingsQuery("a@b.com")

	if filter["userEmail"] != "a@b.com" {
		t.Errorf("filter = %v, want owner email scope", filter)
	}
	if len(filter) != 1 {
		t.Errorf("filter has extra terms: %v", filter)
	}

	sort, ok := opts.Sort.(bson.M)
	if !ok || sort["createdAt"] != -1 {
		t.Errorf("sort = %v, want createdAt descending", opts.Sort)
	}
}
