package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estospaces/realtysvc/domain"
	"github.com/estospaces/realtysvc/internal/mocks"
)

func testLogger() *zerolog.Logger {
	l := zerolog.Nop()
	return &l
}

func registerInput() domain.RegisterInput {
	return domain.RegisterInput{
		Email:    "a@x.com",
		Password: "secret1",
		FullName: "Ada Example",
		Phone:    "123",
		Country:  "DE",
		Role:     "user",
	}
}

func TestAuthServiceRegister(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(repo *mocks.MockUserRepository, mailer *mocks.MockMailer)
		wantErr error
	}{
		{
			name: "success",
		},
		{
			name: "email already taken",
			setup: func(repo *mocks.MockUserRepository, mailer *mocks.MockMailer) {
				repo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return &domain.User{ID: 1, Email: email}, nil
				}
			},
			wantErr: domain.ErrEmailTaken,
		},
		{
			name: "phone already taken",
			setup: func(repo *mocks.MockUserRepository, mailer *mocks.MockMailer) {
				repo.PhoneExistsFunc = func(ctx context.Context, phone string) (bool, error) {
					return true, nil
				}
			},
			wantErr: domain.ErrPhoneTaken,
		},
		{
			name: "duplicate caught by unique index",
			setup: func(repo *mocks.MockUserRepository, mailer *mocks.MockMailer) {
				repo.CreateFunc = func(ctx context.Context, user *domain.User) error {
					return domain.ErrEmailTaken
				}
			},
			wantErr: domain.ErrEmailTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockUserRepository()
			mailer := mocks.NewMockMailer()
			if tt.setup != nil {
				tt.setup(repo, mailer)
			}
			svc := NewAuthService(repo, mocks.NewMockPasswordService(), mocks.NewMockTokenService(), mailer, "http://localhost:8080", testLogger())

			user, err := svc.Register(context.Background(), registerInput())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "a@x.com", user.Email)
			assert.Equal(t, "hashed:secret1", user.PasswordHash, "stored password must be the hash")
			assert.True(t, user.Active)
			assert.False(t, user.EmailVerified, "new accounts start unverified")
		})
	}
}

func TestAuthServiceRegisterSendsVerificationLink(t *testing.T) {
	mailer := mocks.NewMockMailer()
	var gotLink string
	mailer.SendVerificationEmailFunc = func(user *domain.User, link string) error {
		gotLink = link
		return nil
	}
	svc := NewAuthService(mocks.NewMockUserRepository(), mocks.NewMockPasswordService(), mocks.NewMockTokenService(), mailer, "http://localhost:8080", testLogger())

	_, err := svc.Register(context.Background(), registerInput())
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/api/auth/verify-email?token=verification-token", gotLink)
}

func TestAuthServiceRegisterMailFailureIsNonFatal(t *testing.T) {
	mailer := mocks.NewMockMailer()
	mailer.SendVerificationEmailFunc = func(user *domain.User, link string) error {
		return errors.New("smtp down")
	}
	svc := NewAuthService(mocks.NewMockUserRepository(), mocks.NewMockPasswordService(), mocks.NewMockTokenService(), mailer, "http://localhost:8080", testLogger())

	user, err := svc.Register(context.Background(), registerInput())
	require.NoError(t, err, "a failed email must not roll back the account")
	assert.NotNil(t, user)
}

func TestAuthServiceLogin(t *testing.T) {
	verified := &domain.User{ID: 1, Email: "a@x.com", PasswordHash: "hashed:secret1", EmailVerified: true}
	unverified := &domain.User{ID: 2, Email: "b@x.com", PasswordHash: "hashed:secret1", EmailVerified: false}

	tests := []struct {
		name     string
		user     *domain.User
		password string
		wantErr  error
	}{
		{"success", verified, "secret1", nil},
		{"unknown email", nil, "secret1", domain.ErrInvalidCredentials},
		{"wrong password", verified, "nope", domain.ErrInvalidCredentials},
		{"unverified email", unverified, "secret1", domain.ErrEmailNotVerified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockUserRepository()
			if tt.user != nil {
				repo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return tt.user, nil
				}
			}
			svc := NewAuthService(repo, mocks.NewMockPasswordService(), mocks.NewMockTokenService(), mocks.NewMockMailer(), "http://localhost:8080", testLogger())

			token, err := svc.Login(context.Background(), "a@x.com", tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "session-token", token)
		})
	}
}

func TestAuthServiceVerifyEmail(t *testing.T) {
	tokenSvc := mocks.NewMockTokenService()
	tokenSvc.ValidateTokenFunc = func(token string) (*domain.TokenClaims, error) {
		if token != "good" {
			return nil, domain.ErrTokenInvalid
		}
		return &domain.TokenClaims{UserID: 7, Email: "a@x.com"}, nil
	}
	repo := mocks.NewMockUserRepository()
	repo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
		return &domain.User{ID: id, Email: "a@x.com"}, nil
	}
	var activated uint
	repo.ActivateFunc = func(ctx context.Context, userID uint) error {
		activated = userID
		return nil
	}
	svc := NewAuthService(repo, mocks.NewMockPasswordService(), tokenSvc, mocks.NewMockMailer(), "http://localhost:8080", testLogger())

	got, err := svc.VerifyEmail(context.Background(), "good")
	require.NoError(t, err)
	assert.Equal(t, "good", got, "the verified token is echoed back")
	assert.Equal(t, uint(7), activated)

	_, err = svc.VerifyEmail(context.Background(), "bad")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestAuthServiceVerifyEmailUnknownUser(t *testing.T) {
	tokenSvc := mocks.NewMockTokenService()
	tokenSvc.ValidateTokenFunc = func(token string) (*domain.TokenClaims, error) {
		return &domain.TokenClaims{UserID: 7}, nil
	}
	svc := NewAuthService(mocks.NewMockUserRepository(), mocks.NewMockPasswordService(), tokenSvc, mocks.NewMockMailer(), "http://localhost:8080", testLogger())

	_, err := svc.VerifyEmail(context.Background(), "good")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// The full path: a fresh account cannot log in until its email is
// verified, and can immediately after.
func TestAuthServiceRegisterVerifyLoginLifecycle(t *testing.T) {
	var store *domain.User
	repo := mocks.NewMockUserRepository()
	repo.CreateFunc = func(ctx context.Context, user *domain.User) error {
		user.ID = 1
		store = user
		return nil
	}
	repo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
		if store == nil || store.Email != email {
			return nil, domain.ErrUserNotFound
		}
		return store, nil
	}
	repo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
		if store == nil || store.ID != id {
			return nil, domain.ErrUserNotFound
		}
		return store, nil
	}
	repo.ActivateFunc = func(ctx context.Context, userID uint) error {
		store.EmailVerified = true
		return nil
	}
	tokenSvc := mocks.NewMockTokenService()
	tokenSvc.ValidateTokenFunc = func(token string) (*domain.TokenClaims, error) {
		return &domain.TokenClaims{UserID: 1, Email: "a@x.com"}, nil
	}
	svc := NewAuthService(repo, mocks.NewMockPasswordService(), tokenSvc, mocks.NewMockMailer(), "http://localhost:8080", testLogger())
	ctx := context.Background()

	input := registerInput()
	_, err := svc.Register(ctx, input)
	require.NoError(t, err)

	// Duplicate registration with the stored account present.
	_, err = svc.Register(ctx, input)
	assert.ErrorIs(t, err, domain.ErrEmailTaken)

	_, err = svc.Login(ctx, "a@x.com", "secret1")
	assert.ErrorIs(t, err, domain.ErrEmailNotVerified)

	_, err = svc.VerifyEmail(ctx, "verification-token")
	require.NoError(t, err)

	token, err := svc.Login(ctx, "a@x.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "session-token", token)
}
