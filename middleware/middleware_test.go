package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"bhromon/identity"

	"github.com/julienschmidt/httprouter"
)

type stubVerifier struct {
	ident identity.Identity
	err   error
}

func (s stubVerifier) Verify(string) (identity.Identity, error) {
	return s.ident, s.err
}

func TestAuthenticatePassesIdentity(t *testing.T) {
	auth := NewAuth(stubVerifier{ident: identity.Identity{UserID: "u1", Email: "a@b.com"}}, nil)

	var got identity.Identity
	handler := auth.Authenticate(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		got, _ = IdentityFromRequest(r)
	})

	r := httptest.NewRequest(http.MethodGet, "/bookings/user", nil)
	r.Header.Set("Authorization", "Bearer some-token")
	w := httptest.NewRecorder()
	handler(w, r, nil)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if got.Email != "a@b.com" || got.UserID != "u1" {
		t.Errorf("identity in context = %+v", got)
	}
}

func TestAuthenticateMissingToken(t *testing.T) {
	auth := NewAuth(stubVerifier{}, nil)
	handler := auth.Authenticate(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		t.Fatal("handler should not run")
	})

	r := httptest.NewRequest(http.MethodGet, "/bookings/user", nil)
	w := httptest.NewRecorder()
	handler(w, r, nil)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestAuthenticateBadScheme(t *testing.T) {
	auth := NewAuth(stubVerifier{}, nil)
	handler := auth.Authenticate(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		t.Fatal("handler should not run")
	})

	r := httptest.NewRequest(http.MethodGet, "/bookings/user", nil)
	r.Header.Set("Authorization", "Basic abc123")
	w := httptest.NewRecorder()
	handler(w, r, nil)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestAuthenticateInvalidToken(t *testing.T) {
	auth := NewAuth(stubVerifier{err: identity.ErrInvalidToken}, nil)
	handler := auth.Authenticate(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		t.Fatal("handler should not run")
	})

	r := httptest.NewRequest(http.MethodGet, "/bookings/user", nil)
	r.Header.Set("Authorization", "Bearer expired")
	w := httptest.NewRecorder()
	handler(w, r, nil)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}
