package handler

import (
	"github.com/labstack/echo/v4"

	jwtpkg "github.com/Roastcoder/finonest-server-sub001/internal/pkg/jwt"
	"github.com/Roastcoder/finonest-server-sub001/internal/pkg/middleware"
	"github.com/Roastcoder/finonest-server-sub001/internal/pkg/models"
	"github.com/Roastcoder/finonest-server-sub001/services/auth/handler/http"
)

// Handler coordinates the HTTP handlers for the auth service
type Handler struct {
	authHandler   *http.AuthHandler
	authenticator *middleware.Authenticator
}

// NewHandler creates and initializes the auth service handler
func NewHandler(
	authHandler *http.AuthHandler,
	authenticator *middleware.Authenticator,
) *Handler {
	return &Handler{
		authHandler:   authHandler,
		authenticator: authenticator,
	}
}

// RegisterRoutes registers all auth routes.
// Authenticate is attached per domain group and never rejects on its own;
// role gates sit on the routes that need them.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Public routes
	authGroup := e.Group("/auth")
	authGroup.POST("/otp/generate", h.authHandler.SendOTP)
	authGroup.POST("/otp/verify", h.authHandler.VerifyOTP)
	authGroup.POST("/admin/login", h.authHandler.AdminLogin)

	// Customer-facing routes
	customerGroup := e.Group("/customers", h.authenticator.Authenticate(jwtpkg.DomainCustomer))
	customerGroup.GET("/me", h.authHandler.GetProfile,
		h.authenticator.RequireRole(models.RoleCustomer))

	// Back-office admin management, superadmin only
	adminGroup := e.Group("/admin", h.authenticator.Authenticate(jwtpkg.DomainAdmin))
	adminGroup.POST("/users", h.authHandler.CreateAdmin,
		h.authenticator.RequireRole(models.RoleSuperAdmin))
	adminGroup.PATCH("/users/:id/role", h.authHandler.UpdateAdminRole,
		h.authenticator.RequireRole(models.RoleSuperAdmin))
}
