package models

import "time"

type User struct {
	ID         DocID     `json:"_id,omitempty" bson:"_id,omitempty"`
	Name       string    `json:"name,omitempty" bson:"name,omitempty"`
	Email      string    `json:"email" bson:"email"`
	ProfilePic string    `json:"profilePic,omitempty" bson:"profilePic,omitempty"`
	PhotoURL   string    `json:"photoURL,omitempty" bson:"photoURL,omitempty"` // set by the identity provider
	Role       string    `json:"role" bson:"role"`                             // "user" or "admin"
	CreatedAt  time.Time `json:"createdAt" bson:"createdAt"`
}

// UserProfile is the normalized shape returned to dashboards. ProfilePic is
// always a usable URL (stored value, gravatar, or placeholder).
type UserProfile struct {
	ID         string `json:"_id"`
	Name       string `json:"name,omitempty"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	ProfilePic string `json:"profilePic"`
	CreatedAt  string `json:"createdAt,omitempty"`
}

type UserPage struct {
	Users []UserSummary `json:"users"`
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Pages int           `json:"pages"`
}

type UserSummary struct {
	Name       string    `json:"name,omitempty" bson:"name,omitempty"`
	Email      string    `json:"email" bson:"email"`
	Role       string    `json:"role" bson:"role"`
	ProfilePic string    `json:"profilePic,omitempty" bson:"profilePic,omitempty"`
	CreatedAt  time.Time `json:"createdAt" bson:"createdAt"`
}
