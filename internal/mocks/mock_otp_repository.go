package mocks

import (
	"context"

	"github.com/estospaces/realtysvc/domain"
)

// MockOTPRepository implements domain.OTPRepository for testing
type MockOTPRepository struct {
	SaveFunc  func(ctx context.Context, email string, otp *domain.OTP) error
	FindFunc  func(ctx context.Context, email string) (*domain.OTP, error)
	ClearFunc func(ctx context.Context, email string) error
}

// NewMockOTPRepository creates a new MockOTPRepository with default behaviors
func NewMockOTPRepository() *MockOTPRepository {
	return &MockOTPRepository{}
}

func (m *MockOTPRepository) Save(ctx context.Context, email string, otp *domain.OTP) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, email, otp)
	}
	return nil
}

func (m *MockOTPRepository) Find(ctx context.Context, email string) (*domain.OTP, error) {
	if m.FindFunc != nil {
		return m.FindFunc(ctx, email)
	}
	return nil, domain.ErrOTPNotFound
}

func (m *MockOTPRepository) Clear(ctx context.Context, email string) error {
	if m.ClearFunc != nil {
		return m.ClearFunc(ctx, email)
	}
	return nil
}

var _ domain.OTPRepository = (*MockOTPRepository)(nil)
