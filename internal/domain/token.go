package domain

import "time"

// SessionToken is the server-side record of an issued bearer token.
// A token authenticates only while a matching, unexpired row exists;
// deleting the row revokes the token before its natural expiry.
type SessionToken struct {
	Token     string    `json:"token"`
	UserID    int64     `json:"userId,string"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Expired reports whether the token's lifetime has elapsed at now.
func (t SessionToken) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
