package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Roastcoder/finonest-server-sub001/internal/pkg/logger"
	"github.com/Roastcoder/finonest-server-sub001/internal/pkg/models"
	"github.com/Roastcoder/finonest-server-sub001/internal/utils"
	"github.com/Roastcoder/finonest-server-sub001/services/auth"
)

// CreateAdmin handles admin user creation requests. The route is gated to
// superadmins.
func (h *AuthHandler) CreateAdmin(c echo.Context) error {
	var req models.CreateAdminRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.FullName == "" || req.Email == "" || req.Password == "" || req.Role == "" {
		return utils.BadRequestResponse(c, "fullname, email, password and role are required")
	}

	admin, err := h.authUC.CreateAdmin(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, auth.ErrEmailTaken) {
			return utils.ErrorResponseHandler(c, http.StatusConflict, "Email already registered")
		}
		if errors.Is(err, models.ErrUnknownRole) {
			return utils.BadRequestResponse(c, "Unknown role")
		}
		logger.Error("Failed to create admin user",
			logger.ErrorField(err),
		)
		return utils.InternalServerErrorResponse(c, "Failed to create admin user")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Admin user created successfully", admin)
}

// UpdateAdminRole handles admin role change requests
func (h *AuthHandler) UpdateAdminRole(c echo.Context) error {
	adminID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid admin ID")
	}

	var req models.UpdateAdminRoleRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.authUC.UpdateAdminRole(c.Request().Context(), adminID, req.Role); err != nil {
		if errors.Is(err, auth.ErrAdminNotFound) {
			return utils.NotFoundResponse(c, "Admin user not found")
		}
		if errors.Is(err, models.ErrUnknownRole) {
			return utils.BadRequestResponse(c, "Unknown role")
		}
		logger.Error("Failed to update admin role",
			logger.ErrorField(err),
			logger.String("admin_id", adminID.String()),
		)
		return utils.InternalServerErrorResponse(c, "Failed to update admin role")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Admin role updated successfully", nil)
}
