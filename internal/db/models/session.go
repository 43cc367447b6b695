package models

import "time"

// Session binds an opaque bearer token to a user email. Sessions are
// never refreshed or deleted; they simply expire. A token is valid
// strictly while now < ExpiresAt.
type Session struct {
	UserEmail string    `bson:"user_email" json:"user_email"`
	Token     string    `bson:"token" json:"token"`
	ExpiresAt time.Time `bson:"expires_at" json:"expires_at"`
}

// SessionTTL is how long a freshly issued session lives.
const SessionTTL = 7 * 24 * time.Hour
