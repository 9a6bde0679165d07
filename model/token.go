package model

import "time"

// RefreshToken is one link of a refresh-session chain. Only the SHA-256 digest
// of the raw secret is stored; the raw value leaves the server exactly once,
// in the login or refresh response that minted it.
type RefreshToken struct {
	ID        int        `json:"id"`
	UserID    int        `json:"user_id"`
	TokenHash string     `json:"-"`
	ExpiresAt time.Time  `json:"expires_at"`
	CreatedAt time.Time  `json:"created_at"`
	RevokedAt *time.Time `json:"revoked_at,omitempty"`
}

// Live reports whether the session can still be redeemed at the given instant.
func (t *RefreshToken) Live(now time.Time) bool {
	return t.RevokedAt == nil && t.ExpiresAt.After(now)
}
