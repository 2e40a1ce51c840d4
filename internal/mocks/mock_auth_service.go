package mocks

import (
	"context"

	"github.com/estospaces/realtysvc/domain"
)

// MockAuthService implements domain.AuthService for testing
type MockAuthService struct {
	RegisterFunc    func(ctx context.Context, input domain.RegisterInput) (*domain.User, error)
	VerifyEmailFunc func(ctx context.Context, token string) (string, error)
	LoginFunc       func(ctx context.Context, email, password string) (string, error)
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

func (m *MockAuthService) Register(ctx context.Context, input domain.RegisterInput) (*domain.User, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, input)
	}
	return &domain.User{ID: 1, Email: input.Email}, nil
}

func (m *MockAuthService) VerifyEmail(ctx context.Context, token string) (string, error) {
	if m.VerifyEmailFunc != nil {
		return m.VerifyEmailFunc(ctx, token)
	}
	return token, nil
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return "session-token", nil
}

var _ domain.AuthService = (*MockAuthService)(nil)
