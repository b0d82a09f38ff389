package entity

import "time"

// Identity is the authenticated caller derived from a verified bearer token.
// It is established once per request by the auth middleware; everything
// downstream trusts it without re-verification.
type Identity struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
}

// UserProfile is the lazily-created profile document keyed by the identity
// provider's uid. It is upserted on every authenticated request.
type UserProfile struct {
	UID         string    `json:"uid"`
	Email       string    `json:"email"`
	CreatedAt   time.Time `json:"createdAt"`
	LastLoginAt time.Time `json:"lastLoginAt"`
}
