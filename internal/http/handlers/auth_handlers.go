package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/you/currencysvc/domain"
)

// AuthHandlers handles authentication HTTP requests
type AuthHandlers struct {
	authSvc domain.AuthService
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authSvc domain.AuthService) *AuthHandlers {
	return &AuthHandlers{authSvc: authSvc}
}

// RegisterRequest represents registration request
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents login request
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// OTPRequest represents an OTP issuance request
type OTPRequest struct {
	Email string `json:"email"`
}

// OTPVerifyRequest represents OTP verification request
type OTPVerifyRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

// LoginResponse carries the issued bearer token and its absolute expiry
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Register handles user registration. Registering an existing email
// overwrites the password (register-or-reset).
func (h *AuthHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, "Email and password are required.")
		return
	}
	if blank(req.Email) || blank(req.Password) {
		c.String(http.StatusBadRequest, "Email and password are required.")
		return
	}

	if _, err := h.authSvc.Register(c.Request.Context(), req.Email, req.Password); err != nil {
		c.String(http.StatusInternalServerError, "Failed to register user.")
		return
	}

	c.String(http.StatusOK, "Registered (or updated) – OTP sent.")
}

// RequestOTP handles OTP issuance for an existing user
func (h *AuthHandlers) RequestOTP(c *gin.Context) {
	var req OTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, "Email is required.")
		return
	}
	if blank(req.Email) {
		c.String(http.StatusBadRequest, "Email is required.")
		return
	}

	err := h.authSvc.RequestOTP(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.String(http.StatusNotFound, "User not found; please register first.")
			return
		}
		c.String(http.StatusInternalServerError, "Failed to send OTP.")
		return
	}

	c.String(http.StatusOK, "OTP sent.")
}

// VerifyOTP handles OTP verification
func (h *AuthHandlers) VerifyOTP(c *gin.Context) {
	var req OTPVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusUnauthorized, "Invalid or expired OTP.")
		return
	}

	valid, err := h.authSvc.VerifyOTP(c.Request.Context(), req.Email, req.Code)
	if err != nil {
		c.String(http.StatusInternalServerError, "OTP verification failed.")
		return
	}
	if !valid {
		c.String(http.StatusUnauthorized, "Invalid or expired OTP.")
		return
	}

	c.String(http.StatusOK, "OTP is valid.")
}

// Login handles user login and token issuance
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, "Email and password are required.")
		return
	}
	if blank(req.Email) || blank(req.Password) {
		c.String(http.StatusBadRequest, "Email and password are required.")
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrUserInactive):
			c.String(http.StatusUnauthorized, "Invalid credentials.")
		default:
			c.String(http.StatusInternalServerError, "Login failed.")
		}
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
	})
}
