package mocks

import (
	"context"

	"github.com/estospaces/realtysvc/domain"
)

// MockPasswordResetService implements domain.PasswordResetService for testing
type MockPasswordResetService struct {
	RequestFunc func(ctx context.Context, email string) error
	VerifyFunc  func(ctx context.Context, email, code string) error
	ResetFunc   func(ctx context.Context, email, password, confirm string) error
}

// NewMockPasswordResetService creates a new MockPasswordResetService with default behaviors
func NewMockPasswordResetService() *MockPasswordResetService {
	return &MockPasswordResetService{}
}

func (m *MockPasswordResetService) Request(ctx context.Context, email string) error {
	if m.RequestFunc != nil {
		return m.RequestFunc(ctx, email)
	}
	return nil
}

func (m *MockPasswordResetService) Verify(ctx context.Context, email, code string) error {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(ctx, email, code)
	}
	return nil
}

func (m *MockPasswordResetService) Reset(ctx context.Context, email, password, confirm string) error {
	if m.ResetFunc != nil {
		return m.ResetFunc(ctx, email, password, confirm)
	}
	return nil
}

var _ domain.PasswordResetService = (*MockPasswordResetService)(nil)
