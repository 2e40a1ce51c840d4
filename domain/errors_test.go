package domain

import "testing"

// The handlers map sentinels to HTTP statuses with errors.Is, so
// every sentinel must stay distinct.
func TestSentinelErrorsAreDistinct(t *testing.T) {
	sentinels := []error{
		ErrUserNotFound,
		ErrInvalidCredentials,
		ErrEmailTaken,
		ErrPhoneTaken,
		ErrEmailNotVerified,
		ErrPasswordMismatch,
		ErrOTPNotFound,
		ErrOTPMalformed,
		ErrOTPMismatch,
		ErrOTPExpired,
		ErrTokenInvalid,
		ErrTokenExpired,
		ErrTokenMalformed,
		ErrPropertyNotFound,
		ErrEmptyPatch,
	}

	seen := make(map[string]bool, len(sentinels))
	for _, err := range sentinels {
		if err.Error() == "" {
			t.Errorf("sentinel has empty message: %#v", err)
		}
		if seen[err.Error()] {
			t.Errorf("duplicate sentinel message: %q", err.Error())
		}
		seen[err.Error()] = true
	}
}
