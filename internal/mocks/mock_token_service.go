package mocks

import "github.com/estospaces/realtysvc/domain"

// MockTokenService implements domain.TokenService for testing
type MockTokenService struct {
	GenerateSessionTokenFunc      func(userID uint, email string) (string, error)
	GenerateVerificationTokenFunc func(userID uint, email string) (string, error)
	ValidateTokenFunc             func(token string) (*domain.TokenClaims, error)
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

func (m *MockTokenService) GenerateSessionToken(userID uint, email string) (string, error) {
	if m.GenerateSessionTokenFunc != nil {
		return m.GenerateSessionTokenFunc(userID, email)
	}
	return "session-token", nil
}

func (m *MockTokenService) GenerateVerificationToken(userID uint, email string) (string, error) {
	if m.GenerateVerificationTokenFunc != nil {
		return m.GenerateVerificationTokenFunc(userID, email)
	}
	return "verification-token", nil
}

func (m *MockTokenService) ValidateToken(token string) (*domain.TokenClaims, error) {
	if m.ValidateTokenFunc != nil {
		return m.ValidateTokenFunc(token)
	}
	return nil, domain.ErrTokenInvalid
}

var _ domain.TokenService = (*MockTokenService)(nil)
