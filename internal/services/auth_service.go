package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/estospaces/realtysvc/domain"
)

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	userRepo    domain.UserRepository
	passwordSvc domain.PasswordService
	tokenSvc    domain.TokenService
	mailer      domain.Mailer
	serverURL   string
	logger      *zerolog.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo domain.UserRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	mailer domain.Mailer,
	serverURL string,
	logger *zerolog.Logger,
) domain.AuthService {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		mailer:      mailer,
		serverURL:   serverURL,
		logger:      logger,
	}
}

// Register implements domain.AuthService. The two uniqueness checks
// run sequentially; the unique indexes on users are the real guard
// against a concurrent duplicate slipping between check and insert.
// A failed verification email never rolls back the created account.
func (s *AuthServiceImpl) Register(ctx context.Context, input domain.RegisterInput) (*domain.User, error) {
	existing, err := s.userRepo.FindByEmail(ctx, input.Email)
	if err == nil && existing != nil {
		return nil, domain.ErrEmailTaken
	}
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	phoneTaken, err := s.userRepo.PhoneExists(ctx, input.Phone)
	if err != nil {
		return nil, fmt.Errorf("failed to check phone: %w", err)
	}
	if phoneTaken {
		return nil, domain.ErrPhoneTaken
	}

	hashedPassword, err := s.passwordSvc.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Email:         input.Email,
		Phone:         input.Phone,
		PasswordHash:  hashedPassword,
		FullName:      input.FullName,
		Country:       input.Country,
		Role:          input.Role,
		Active:        true,
		EmailVerified: false,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	if err := s.sendVerificationEmail(user); err != nil {
		s.logger.Warn().Err(err).Str("email", user.Email).
			Msg("verification email dispatch failed; account was still created")
	}

	return user, nil
}

func (s *AuthServiceImpl) sendVerificationEmail(user *domain.User) error {
	token, err := s.tokenSvc.GenerateVerificationToken(user.ID, user.Email)
	if err != nil {
		return fmt.Errorf("failed to generate verification token: %w", err)
	}

	link := fmt.Sprintf("%s/api/auth/verify-email?token=%s", s.serverURL, token)
	return s.mailer.SendVerificationEmail(user, link)
}

// VerifyEmail implements domain.AuthService. Every failure mode
// (invalid or expired token, missing user) collapses to the same
// error upstream; no distinction is surfaced to the caller.
func (s *AuthServiceImpl) VerifyEmail(ctx context.Context, token string) (string, error) {
	claims, err := s.tokenSvc.ValidateToken(token)
	if err != nil {
		return "", err
	}

	if _, err := s.userRepo.FindByID(ctx, claims.UserID); err != nil {
		return "", err
	}

	if err := s.userRepo.Activate(ctx, claims.UserID); err != nil {
		return "", fmt.Errorf("failed to activate user: %w", err)
	}

	return token, nil
}

// Login implements domain.AuthService. A missing user and a wrong
// password produce the identical sentinel so callers cannot probe
// which accounts exist.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", domain.ErrInvalidCredentials
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		return "", domain.ErrInvalidCredentials
	}

	if !user.EmailVerified {
		return "", domain.ErrEmailNotVerified
	}

	token, err := s.tokenSvc.GenerateSessionToken(user.ID, user.Email)
	if err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}

	return token, nil
}
