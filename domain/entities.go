package domain

import "time"

// User represents a user in the system. PasswordHash is empty for
// shell users created by OTP-only flows before they register.
type User struct {
	ID           uint
	Email        string
	PasswordHash string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// OtpCode represents a persisted one-time code. Rows are never deleted;
// a code is consumed by flipping IsUsed. Issuing a new code does not
// invalidate older unused ones, so multiple live codes may coexist per user.
type OtpCode struct {
	ID        uint
	UserID    uint
	Code      string
	CreatedAt time.Time
	ExpiresAt time.Time
	IsUsed    bool
}

// AuthResult represents a successful login outcome
type AuthResult struct {
	User      *User
	Token     string
	ExpiresAt time.Time
}

// TokenClaims represents the validated claims of a bearer token
type TokenClaims struct {
	Email     string
	Issuer    string
	Audience  string
	IssuedAt  int64
	ExpiresAt int64
}

// Conversion represents the outcome of a USD to SLL conversion
type Conversion struct {
	AmountUsd    float64   `json:"amountUsd"`
	AmountSll    float64   `json:"amountSll"`
	ExchangeRate float64   `json:"exchangeRate"`
	Timestamp    time.Time `json:"timestamp"`
}
