package domain

import "time"

// User represents a platform account. Email and phone are unique
// across all users.
type User struct {
	ID            uint
	Email         string
	Phone         string
	PasswordHash  string `gorm:"column:password"`
	FullName      string
	Country       string
	Role          string
	Active        bool
	EmailVerified bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// OTP is the ephemeral one-time code issued during password reset.
// At most one live OTP exists per user; a re-issue overwrites it.
type OTP struct {
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the code is past its absolute expiry.
func (o OTP) Expired(now time.Time) bool {
	return now.After(o.ExpiresAt)
}

// Property represents a listing. Archiving via Status is the only
// form of deletion.
type Property struct {
	ID           uint
	Title        string
	Description  string
	PropertyType string
	Price        float64
	ManagerID    uint
	AreaNumeric  float64
	AreaUnit     string
	Status       string
	IsPublished  bool
	PublishedAt  *time.Time
	Country      string
	Note         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Property status values the platform itself sets. UpdateStatus
// accepts arbitrary strings on top of these.
const (
	PropertyStatusActive   = "active"
	PropertyStatusArchived = "archived"
)

// DefaultAreaUnit is stamped on listings created without a unit.
const DefaultAreaUnit = "sqft"

// PropertyPatch carries a client-supplied partial update for a
// listing. Nil fields are left untouched. Only the fields present
// here may be patched; everything else is server-owned state.
type PropertyPatch struct {
	Title        *string
	Description  *string
	PropertyType *string
	Price        *float64
	AreaNumeric  *float64
	AreaUnit     *string
	Note         *string
}

// Empty reports whether the patch carries no effective change.
func (p PropertyPatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.PropertyType == nil &&
		p.Price == nil && p.AreaNumeric == nil && p.AreaUnit == nil && p.Note == nil
}

// TokenClaims represents the signed identity inside a session or
// verification token.
type TokenClaims struct {
	UserID    uint   `json:"user_id"`
	Email     string `json:"email"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}
