package mocks

import "github.com/estospaces/realtysvc/domain"

// MockMailer implements domain.Mailer for testing
type MockMailer struct {
	SendVerificationEmailFunc func(user *domain.User, verificationLink string) error
	SendOTPEmailFunc          func(toEmail, code string) error
}

// NewMockMailer creates a new MockMailer with default behaviors
func NewMockMailer() *MockMailer {
	return &MockMailer{}
}

func (m *MockMailer) SendVerificationEmail(user *domain.User, verificationLink string) error {
	if m.SendVerificationEmailFunc != nil {
		return m.SendVerificationEmailFunc(user, verificationLink)
	}
	return nil
}

func (m *MockMailer) SendOTPEmail(toEmail, code string) error {
	if m.SendOTPEmailFunc != nil {
		return m.SendOTPEmailFunc(toEmail, code)
	}
	return nil
}

var _ domain.Mailer = (*MockMailer)(nil)
