package domain

import "time"

// Admin models an administrator account stored in the supermasters table.
// Accounts are provisioned externally; this system only authenticates them,
// changes their password, and stamps their last logout.
type Admin struct {
	Username     string     `json:"username"`
	PasswordHash string     `json:"-"`
	LogoutAt     *time.Time `json:"logout_timestamp,omitempty"`
}

// MinPasswordLength is the lower bound enforced on password changes.
const MinPasswordLength = 8
