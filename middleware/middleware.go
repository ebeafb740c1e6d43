package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"bhromon/globals"
	"bhromon/identity"
	"bhromon/models"
	"bhromon/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Auth wraps handlers with bearer-token verification and role checks.
type Auth struct {
	Verifier identity.Verifier
	Users    *mongo.Collection
}

func NewAuth(verifier identity.Verifier, users *mongo.Collection) *Auth {
	return &Auth{Verifier: verifier, Users: users}
}

// Authenticate requires a valid bearer token and stores the resolved
// Identity in the request context.
func (a *Auth) Authenticate(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		header := r.Header.Get("Authorization")
		if header == "" {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized: No token provided")
			return
		}
		if !strings.HasPrefix(header, "Bearer ") {
			utils.RespondWithError(w, http.StatusUnauthorized, "Invalid token format")
			return
		}

		ident, err := a.Verifier.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized: Invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), globals.IdentityKey, ident)
		next(w, r.WithContext(ctx), ps)
	}
}

// RequireAdmin gates a handler on the caller's stored role being "admin".
// Must run inside Authenticate.
func (a *Auth) RequireAdmin(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		ident, ok := IdentityFromRequest(r)
		if !ok || ident.Email == "" {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		var user models.User
		err := a.Users.FindOne(ctx, bson.M{"email": ident.Email}).Decode(&user)
		if err != nil || user.Role != "admin" {
			utils.RespondWithError(w, http.StatusForbidden, "Forbidden: Admins only")
			return
		}

		next(w, r.WithContext(context.WithValue(r.Context(), globals.RoleKey, user.Role)), ps)
	}
}

// IdentityFromRequest pulls the authenticated caller out of the context.
func IdentityFromRequest(r *http.Request) (identity.Identity, bool) {
	ident, ok := r.Context().Value(globals.IdentityKey).(identity.Identity)
	return ident, ok
}
