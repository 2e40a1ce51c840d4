package domain

import "context"

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	PhoneExists(ctx context.Context, phone string) (bool, error)
	Activate(ctx context.Context, userID uint) error
	UpdatePassword(ctx context.Context, userID uint, passwordHash string) error
}

// OTPRepository defines the store for ephemeral password-reset codes.
// Save overwrites any prior record for the same email.
type OTPRepository interface {
	Save(ctx context.Context, email string, otp *OTP) error
	Find(ctx context.Context, email string) (*OTP, error)
	Clear(ctx context.Context, email string) error
}

// PropertyRepository defines listing data access operations. Reads
// are scoped by country; mutations report ErrPropertyNotFound when
// the row is absent.
type PropertyRepository interface {
	Create(ctx context.Context, property *Property) error
	FindByID(ctx context.Context, id uint, country string) (*Property, error)
	Patch(ctx context.Context, id uint, patch PropertyPatch) (*Property, error)
	Archive(ctx context.Context, id uint) (*Property, error)
	SetPublished(ctx context.Context, id uint, published bool) (*Property, error)
	SetStatus(ctx context.Context, id uint, status, note string) (*Property, error)
}

// AuthService defines registration and login business logic
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*User, error)
	VerifyEmail(ctx context.Context, token string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
}

// RegisterInput carries the fields required to create an account.
type RegisterInput struct {
	Email    string
	Password string
	FullName string
	Phone    string
	Country  string
	Role     string
}

// PasswordResetService defines the OTP-based reset lifecycle
type PasswordResetService interface {
	Request(ctx context.Context, email string) error
	Verify(ctx context.Context, email, code string) error
	Reset(ctx context.Context, email, password, confirm string) error
}

// PropertyService defines listing business logic
type PropertyService interface {
	Create(ctx context.Context, input CreatePropertyInput) (*Property, error)
	Get(ctx context.Context, id uint, country string) (*Property, error)
	Update(ctx context.Context, id uint, patch PropertyPatch) (*Property, error)
	Delete(ctx context.Context, id uint) (*Property, error)
	Publish(ctx context.Context, id uint) (*Property, error)
	Unpublish(ctx context.Context, id uint) (*Property, error)
	UpdateStatus(ctx context.Context, id uint, status, note string) (*Property, error)
}

// CreatePropertyInput carries the fields required to create a listing.
type CreatePropertyInput struct {
	Title        string
	Description  string
	PropertyType string
	Price        float64
	ManagerID    uint
	AreaNumeric  float64
	AreaUnit     string
	Country      string
}

// PasswordService defines password operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines signed-token operations
type TokenService interface {
	GenerateSessionToken(userID uint, email string) (string, error)
	GenerateVerificationToken(userID uint, email string) (string, error)
	ValidateToken(token string) (*TokenClaims, error)
}

// Mailer defines the narrow email-delivery port
type Mailer interface {
	SendVerificationEmail(user *User, verificationLink string) error
	SendOTPEmail(toEmail, code string) error
}

// PolicyEnforcer defines the methods the authorization middleware
// needs from the casbin enforcer.
type PolicyEnforcer interface {
	AddPolicy(params ...interface{}) (bool, error)
	Enforce(rvals ...interface{}) (bool, error)
	GetPolicy() ([][]string, error)
	SavePolicy() error
}
