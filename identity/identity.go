package identity

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is the caller resolved from a bearer credential.
type Identity struct {
	UserID string
	Email  string
}

// Verifier validates a raw bearer token into an Identity. The rest of the
// server treats token verification as an external capability; handlers
// only ever see the resulting Identity.
type Verifier interface {
	Verify(token string) (Identity, error)
}

var ErrInvalidToken = errors.New("invalid token")

// Claims carried by the identity provider's tokens.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// JWTVerifier verifies HS256 identity tokens locally.
type JWTVerifier struct {
	secret []byte
}

func NewJWTVerifier(secret []byte) *JWTVerifier {
	return &JWTVerifier{secret: secret}
}

func (v *JWTVerifier) Verify(tokenString string) (Identity, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return v.secret, nil
	})
	if err != nil || !token.Valid {
		return Identity{}, ErrInvalidToken
	}
	if claims.Email == "" {
		return Identity{}, ErrInvalidToken
	}
	return Identity{UserID: claims.Subject, Email: claims.Email}, nil
}

// Sign issues a token for the given identity. Used by tests and local
// tooling; production tokens come from the identity provider.
func (v *JWTVerifier) Sign(id Identity) (string, error) {
	claims := &Claims{
		Email: id.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: id.UserID,
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
}
