package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/estospaces/realtysvc/domain"
)

// AuthHandlers handles authentication HTTP requests
type AuthHandlers struct {
	authSvc  domain.AuthService
	resetSvc domain.PasswordResetService
	logger   *zerolog.Logger
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authSvc domain.AuthService, resetSvc domain.PasswordResetService, logger *zerolog.Logger) *AuthHandlers {
	return &AuthHandlers{
		authSvc:  authSvc,
		resetSvc: resetSvc,
		logger:   logger,
	}
}

// RegisterRequest represents registration request
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"full_name" binding:"required"`
	Phone    string `json:"phone_no" binding:"required"`
	Country  string `json:"country" binding:"required"`
	Role     string `json:"role,omitempty"`
}

// LoginRequest represents login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SendOTPRequest represents a password-reset OTP request
type SendOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// VerifyOTPRequest represents OTP verification request
type VerifyOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	OTP   string `json:"otp" binding:"required"`
}

// ResetPasswordRequest represents the final password-reset step
type ResetPasswordRequest struct {
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

// Register handles user registration
func (h *AuthHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	role := req.Role
	if role == "" {
		role = "user"
	}

	_, err := h.authSvc.Register(c.Request.Context(), domain.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		Phone:    req.Phone,
		Country:  req.Country,
		Role:     role,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailTaken):
			c.JSON(http.StatusConflict, gin.H{"message": "Email is already registered"})
		case errors.Is(err, domain.ErrPhoneTaken):
			c.JSON(http.StatusConflict, gin.H{"message": "Phone number is already registered"})
		default:
			h.logger.Error().Err(err).Str("email", req.Email).Msg("registration failed")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to register user"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully. Please verify your email to activate the account.",
	})
}

// VerifyEmail handles the verification link. Any failure collapses
// to the same generic response.
func (h *AuthHandlers) VerifyEmail(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing verification token."})
		return
	}

	verified, err := h.authSvc.VerifyEmail(c.Request.Context(), token)
	if err != nil {
		h.logger.Info().Err(err).Msg("email verification rejected")
		c.JSON(http.StatusBadRequest, gin.H{"message": "Verification failed or link expired."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "SUCCESS", "token": verified})
}

// Login handles user login
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.authSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email or password."})
		case errors.Is(err, domain.ErrEmailNotVerified):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Your email address has not been verified. Please check your inbox and verify your account to continue.",
			})
		default:
			h.logger.Error().Err(err).Str("email", req.Email).Msg("login failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Login successful", "token": token})
}

// SendOTP handles a forgot-password request
func (h *AuthHandlers) SendOTP(c *gin.Context) {
	var req SendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.resetSvc.Request(c.Request.Context(), req.Email); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email not found."})
			return
		}
		h.logger.Error().Err(err).Str("email", req.Email).Msg("otp request failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to send OTP. Please try again."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "OTP sent to your email."})
}

// VerifyOTP handles OTP verification
func (h *AuthHandlers) VerifyOTP(c *gin.Context) {
	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and OTP are required."})
		return
	}

	if err := h.resetSvc.Verify(c.Request.Context(), req.Email, req.OTP); err != nil {
		switch {
		case errors.Is(err, domain.ErrOTPNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request or user not found."})
		case errors.Is(err, domain.ErrOTPMalformed):
			c.JSON(http.StatusBadRequest, gin.H{"error": "OTP data is missing or malformed."})
		case errors.Is(err, domain.ErrOTPMismatch):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Incorrect OTP."})
		case errors.Is(err, domain.ErrOTPExpired):
			c.JSON(http.StatusBadRequest, gin.H{"error": "OTP has expired. Please request a new one."})
		default:
			h.logger.Error().Err(err).Str("email", req.Email).Msg("otp verification failed")
			c.JSON(http.StatusBadRequest, gin.H{"error": "OTP verification failed."})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "OTP verified successfully."})
}

// ResetPassword handles the final password-reset step
func (h *AuthHandlers) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required."})
		return
	}

	if err := h.resetSvc.Reset(c.Request.Context(), req.Email, req.Password, req.ConfirmPassword); err != nil {
		switch {
		case errors.Is(err, domain.ErrPasswordMismatch):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Passwords do not match."})
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"error": "User not found."})
		default:
			h.logger.Error().Err(err).Str("email", req.Email).Msg("password reset failed")
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to update password."})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password reset successful."})
}
