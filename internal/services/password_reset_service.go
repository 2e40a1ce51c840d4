package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/rs/zerolog"

	"github.com/estospaces/realtysvc/domain"
)

// OTPConfig carries the code shape and lifetime.
type OTPConfig struct {
	Length int
	TTL    time.Duration
}

// PasswordResetServiceImpl implements domain.PasswordResetService.
// State machine per email: NONE -> ISSUED -> {VERIFIED, EXPIRED}.
// A re-request while a code is live overwrites it: last write wins.
type PasswordResetServiceImpl struct {
	userRepo    domain.UserRepository
	otpRepo     domain.OTPRepository
	passwordSvc domain.PasswordService
	mailer      domain.Mailer
	config      OTPConfig
	logger      *zerolog.Logger
	now         func() time.Time
}

// NewPasswordResetService creates a new password reset service
func NewPasswordResetService(
	userRepo domain.UserRepository,
	otpRepo domain.OTPRepository,
	passwordSvc domain.PasswordService,
	mailer domain.Mailer,
	config OTPConfig,
	logger *zerolog.Logger,
) domain.PasswordResetService {
	return &PasswordResetServiceImpl{
		userRepo:    userRepo,
		otpRepo:     otpRepo,
		passwordSvc: passwordSvc,
		mailer:      mailer,
		config:      config,
		logger:      logger,
		now:         time.Now,
	}
}

// Request implements domain.PasswordResetService. The code is stored
// before the email goes out; a dispatch failure is surfaced to the
// caller but leaves the stored code in place.
func (s *PasswordResetServiceImpl) Request(ctx context.Context, email string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	code, err := s.generateCode()
	if err != nil {
		return fmt.Errorf("failed to generate otp code: %w", err)
	}

	otp := &domain.OTP{
		Code:      code,
		ExpiresAt: s.now().Add(s.config.TTL),
	}

	if err := s.otpRepo.Save(ctx, user.Email, otp); err != nil {
		return fmt.Errorf("failed to store otp: %w", err)
	}

	if err := s.mailer.SendOTPEmail(user.Email, code); err != nil {
		return err
	}

	s.logger.Info().Str("email", user.Email).Time("expires_at", otp.ExpiresAt).Msg("otp issued")
	return nil
}

// Verify implements domain.PasswordResetService. The code compare is
// string-exact and runs before the expiry check, matching the issued
// record's observable lifecycle. Success consumes the code.
func (s *PasswordResetServiceImpl) Verify(ctx context.Context, email, code string) error {
	otp, err := s.otpRepo.Find(ctx, email)
	if err != nil {
		return err
	}

	if otp.Code != code {
		return domain.ErrOTPMismatch
	}

	if otp.Expired(s.now()) {
		return domain.ErrOTPExpired
	}

	if err := s.otpRepo.Clear(ctx, email); err != nil {
		s.logger.Warn().Err(err).Str("email", email).Msg("failed to clear consumed otp")
	}

	return nil
}

// Reset implements domain.PasswordResetService. Deliberately does not
// re-check the OTP-verified state at this call; the only guards are
// the confirmation match and user existence.
func (s *PasswordResetServiceImpl) Reset(ctx context.Context, email, password, confirm string) error {
	if password != confirm {
		return domain.ErrPasswordMismatch
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	hashed, err := s.passwordSvc.Hash(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, user.ID, hashed); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}

// generateCode produces a uniform-random numeric code, leading zeros
// preserved.
func (s *PasswordResetServiceImpl) generateCode() (string, error) {
	digits := make([]byte, s.config.Length)

	for i := 0; i < s.config.Length; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		digits[i] = byte('0' + num.Int64())
	}

	return string(digits), nil
}
