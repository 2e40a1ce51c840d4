package domain

import "errors"

// Account errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrPhoneTaken         = errors.New("phone number is already registered")
	ErrEmailNotVerified   = errors.New("email address not verified")
	ErrPasswordMismatch   = errors.New("passwords do not match")
)

// OTP errors
var (
	ErrOTPNotFound  = errors.New("otp not found")
	ErrOTPMalformed = errors.New("otp data is missing or malformed")
	ErrOTPMismatch  = errors.New("incorrect otp")
	ErrOTPExpired   = errors.New("otp has expired")
)

// Token errors
var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
)

// Property errors
var (
	ErrPropertyNotFound = errors.New("property not found")
	ErrEmptyPatch       = errors.New("no updatable fields in patch")
)
