package handler

import (
	"github.com/labstack/echo/v4"

	jwtpkg "github.com/Roastcoder/finonest-server-sub001/internal/pkg/jwt"
	"github.com/Roastcoder/finonest-server-sub001/internal/pkg/middleware"
	"github.com/Roastcoder/finonest-server-sub001/internal/pkg/models"
	"github.com/Roastcoder/finonest-server-sub001/services/leads/handler/http"
)

// Handler coordinates the HTTP handlers for the leads service
type Handler struct {
	leadHandler   *http.LeadHandler
	authenticator *middleware.Authenticator
}

// NewHandler creates and initializes the leads service handler
func NewHandler(
	leadHandler *http.LeadHandler,
	authenticator *middleware.Authenticator,
) *Handler {
	return &Handler{
		leadHandler:   leadHandler,
		authenticator: authenticator,
	}
}

// RegisterRoutes registers all lead routes. Submission is public with
// optional customer authentication; the back-office routes are role gated.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.POST("/leads", h.leadHandler.CreateLead,
		h.authenticator.Authenticate(jwtpkg.DomainCustomer))

	e.GET("/customers/me/leads", h.leadHandler.ListMyLeads,
		h.authenticator.Authenticate(jwtpkg.DomainCustomer),
		h.authenticator.RequireRole(models.RoleCustomer))

	adminLeads := e.Group("/leads", h.authenticator.Authenticate(jwtpkg.DomainAdmin))
	adminLeads.GET("", h.leadHandler.ListLeads,
		h.authenticator.RequireRole(models.RoleAdmin, models.RoleEditor, models.RoleSuperAdmin))
	adminLeads.GET("/:id", h.leadHandler.GetLead,
		h.authenticator.RequireRole(models.RoleAdmin, models.RoleEditor, models.RoleSuperAdmin))
	adminLeads.PATCH("/:id/status", h.leadHandler.UpdateLeadStatus,
		h.authenticator.RequireRole(models.RoleAdmin, models.RoleSuperAdmin))
}
