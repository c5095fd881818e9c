package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Roastcoder/finonest-server-sub001/internal/pkg/logger"
	"github.com/Roastcoder/finonest-server-sub001/internal/pkg/middleware"
	"github.com/Roastcoder/finonest-server-sub001/internal/pkg/models"
	"github.com/Roastcoder/finonest-server-sub001/internal/utils"
	"github.com/Roastcoder/finonest-server-sub001/services/auth"
)

// AuthHandler handles HTTP requests for authentication operations
type AuthHandler struct {
	authUC auth.AuthUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(
	authUC auth.AuthUC,
) *AuthHandler {
	return &AuthHandler{
		authUC: authUC,
	}
}

// SendOTP handles OTP generation requests
func (h *AuthHandler) SendOTP(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for OTP generation",
			logger.ErrorField(err),
			logger.String("endpoint", "SendOTP"),
		)
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	err := h.authUC.SendOTP(c.Request().Context(), req.Phone)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidPhone) {
			return utils.BadRequestResponse(c, "Invalid phone number")
		}
		logger.Error("Failed to generate OTP",
			logger.ErrorField(err),
		)
		return utils.InternalServerErrorResponse(c, "Failed to generate OTP")
	}

	return utils.SuccessResponse(c, http.StatusOK, "OTP sent successfully", nil)
}

// VerifyOTP handles OTP verification and issues a customer token.
// Missing-challenge and wrong-code failures report the same message so a
// caller cannot distinguish an expired challenge from a bad guess.
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var req models.VerifyRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.authUC.VerifyOTP(c.Request().Context(), req.Phone, req.OTP)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidPhone):
			return utils.BadRequestResponse(c, "Invalid phone number")
		case errors.Is(err, auth.ErrNoActiveChallenge), errors.Is(err, auth.ErrInvalidCode):
			return utils.UnauthorizedResponse(c, "Invalid or expired OTP")
		case errors.Is(err, auth.ErrTooManyAttempts):
			return utils.TooManyRequestsResponse(c, "Too many attempts, request a new OTP")
		case errors.Is(err, auth.ErrPrincipalInactive):
			return utils.UnauthorizedResponse(c, "Account is deactivated")
		}
		logger.Error("Failed to verify OTP",
			logger.ErrorField(err),
		)
		return utils.InternalServerErrorResponse(c, "Failed to verify OTP")
	}

	return utils.SuccessResponse(c, http.StatusOK, "OTP verified successfully", resp)
}

// AdminLogin handles admin email/password login requests
func (h *AuthHandler) AdminLogin(c echo.Context) error {
	var req models.AdminLoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Email == "" || req.Password == "" {
		return utils.BadRequestResponse(c, "Email and password are required")
	}

	resp, err := h.authUC.AdminLogin(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return utils.UnauthorizedResponse(c, "Invalid credentials")
		}
		logger.Error("Failed to process admin login",
			logger.ErrorField(err),
		)
		return utils.InternalServerErrorResponse(c, "Failed to process login")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Login successful", resp)
}

// GetProfile returns the authenticated customer's own record
func (h *AuthHandler) GetProfile(c echo.Context) error {
	principal := middleware.GetPrincipal(c)
	if principal == nil {
		return utils.UnauthorizedResponse(c, "authentication required")
	}

	customer, err := h.authUC.GetCustomerProfile(c.Request().Context(), principal.ID)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return utils.NotFoundResponse(c, "Customer not found")
		}
		logger.Error("Failed to retrieve customer profile",
			logger.ErrorField(err),
			logger.String("customer_id", principal.ID.String()),
		)
		return utils.InternalServerErrorResponse(c, "Failed to retrieve profile")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Profile retrieved successfully", customer)
}
