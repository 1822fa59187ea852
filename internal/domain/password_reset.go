package domain

import "time"

// PasswordResetToken is single-use: it is deleted on redemption and swept
// after expiry.
type PasswordResetToken struct {
	Token      string    `json:"token"`
	UserID     int32     `json:"userId"`
	ExpiryDate time.Time `json:"expiryDate"`
}

func (t *PasswordResetToken) Expired(now time.Time) bool {
	return t.ExpiryDate.Before(now)
}
