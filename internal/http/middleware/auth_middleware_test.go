package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estospaces/realtysvc/domain"
	"github.com/estospaces/realtysvc/internal/mocks"
)

func authTestSetup(tokenSvc domain.TokenService, userRepo domain.UserRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(tokenSvc, userRepo), func(c *gin.Context) {
		user, ok := UserFromContext(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no user"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"email":   user.Email,
			"role":    c.GetString("user_role"),
			"country": c.GetString("user_country"),
		})
	})
	return r
}

func TestAuthMiddlewareRejections(t *testing.T) {
	tokenSvc := mocks.NewMockTokenService()
	tokenSvc.ValidateTokenFunc = func(token string) (*domain.TokenClaims, error) {
		switch token {
		case "expired":
			return nil, domain.ErrTokenExpired
		case "malformed":
			return nil, domain.ErrTokenMalformed
		default:
			return nil, domain.ErrTokenInvalid
		}
	}

	tests := []struct {
		name    string
		header  string
		wantErr string
	}{
		{"missing header", "", "Authorization header required"},
		{"not bearer", "Basic abc123", "Invalid authorization header format"},
		{"no token after scheme", "Bearer", "Invalid authorization header format"},
		{"expired token", "Bearer expired", "Token expired"},
		{"malformed token", "Bearer malformed", "Invalid token"},
		{"garbage token", "Bearer garbage", "Invalid token"},
	}

	r := authTestSetup(tokenSvc, mocks.NewMockUserRepository())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			var resp map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantErr, resp["error"])
		})
	}
}

func TestAuthMiddlewareUnknownUser(t *testing.T) {
	tokenSvc := mocks.NewMockTokenService()
	tokenSvc.ValidateTokenFunc = func(token string) (*domain.TokenClaims, error) {
		return &domain.TokenClaims{UserID: 42}, nil
	}

	r := authTestSetup(tokenSvc, mocks.NewMockUserRepository())
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer ok")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "User not found", resp["error"])
}

func TestAuthMiddlewareSuccessPopulatesContext(t *testing.T) {
	tokenSvc := mocks.NewMockTokenService()
	tokenSvc.ValidateTokenFunc = func(token string) (*domain.TokenClaims, error) {
		return &domain.TokenClaims{UserID: 7, Email: "m@x.com"}, nil
	}
	userRepo := mocks.NewMockUserRepository()
	userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
		return &domain.User{ID: id, Email: "m@x.com", Role: "manager", Country: "DE"}, nil
	}

	r := authTestSetup(tokenSvc, userRepo)
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer ok")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "m@x.com", resp["email"])
	assert.Equal(t, "manager", resp["role"])
	assert.Equal(t, "DE", resp["country"])
}
