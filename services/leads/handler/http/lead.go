package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Roastcoder/finonest-server-sub001/internal/pkg/logger"
	"github.com/Roastcoder/finonest-server-sub001/internal/pkg/middleware"
	"github.com/Roastcoder/finonest-server-sub001/internal/pkg/models"
	"github.com/Roastcoder/finonest-server-sub001/internal/utils"
	"github.com/Roastcoder/finonest-server-sub001/services/leads"
)

// LeadHandler handles HTTP requests for lead operations
type LeadHandler struct {
	leadUC leads.LeadUC
}

// NewLeadHandler creates a new lead handler
func NewLeadHandler(
	leadUC leads.LeadUC,
) *LeadHandler {
	return &LeadHandler{
		leadUC: leadUC,
	}
}

// CreateLead handles inbound lead submissions. The route is public; when
// the request carries a valid customer token the lead is linked to that
// customer, otherwise it is recorded anonymously.
func (h *LeadHandler) CreateLead(c echo.Context) error {
	var req models.CreateLeadRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for lead creation",
			logger.ErrorField(err),
			logger.String("endpoint", "CreateLead"),
		)
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.FullName == "" || req.Phone == "" || req.LoanType == "" {
		return utils.BadRequestResponse(c, "fullname, phone and loan_type are required")
	}

	var customerID *uuid.UUID
	if principal := middleware.GetPrincipal(c); principal != nil {
		customerID = &principal.ID
	}

	lead, err := h.leadUC.CreateLead(c.Request().Context(), &req, customerID)
	if err != nil {
		logger.Error("Failed to create lead",
			logger.ErrorField(err),
		)
		return utils.BadRequestResponse(c, "Invalid lead submission")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Lead created successfully", lead)
}

// GetLead handles lead retrieval requests
func (h *LeadHandler) GetLead(c echo.Context) error {
	leadID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid lead ID")
	}

	lead, err := h.leadUC.GetLead(c.Request().Context(), leadID)
	if err != nil {
		if errors.Is(err, leads.ErrLeadNotFound) {
			return utils.NotFoundResponse(c, "Lead not found")
		}
		logger.Error("Failed to retrieve lead",
			logger.ErrorField(err),
			logger.String("lead_id", leadID.String()),
		)
		return utils.InternalServerErrorResponse(c, "Failed to retrieve lead")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Lead retrieved successfully", lead)
}

// ListLeads handles lead listing requests with optional status filter and
// paging query parameters.
func (h *LeadHandler) ListLeads(c echo.Context) error {
	status := models.LeadStatus(c.QueryParam("status"))
	limit := queryInt(c, "limit", 20)
	offset := queryInt(c, "offset", 0)

	result, err := h.leadUC.ListLeads(c.Request().Context(), status, limit, offset)
	if err != nil {
		if errors.Is(err, leads.ErrUnknownStatus) {
			return utils.BadRequestResponse(c, "Unknown status filter")
		}
		logger.Error("Failed to list leads",
			logger.ErrorField(err),
		)
		return utils.InternalServerErrorResponse(c, "Failed to list leads")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Leads retrieved successfully", result)
}

// ListMyLeads returns the authenticated customer's own leads
func (h *LeadHandler) ListMyLeads(c echo.Context) error {
	principal := middleware.GetPrincipal(c)
	if principal == nil {
		return utils.UnauthorizedResponse(c, "authentication required")
	}

	result, err := h.leadUC.ListCustomerLeads(c.Request().Context(), principal.ID)
	if err != nil {
		logger.Error("Failed to list customer leads",
			logger.ErrorField(err),
			logger.String("customer_id", principal.ID.String()),
		)
		return utils.InternalServerErrorResponse(c, "Failed to list leads")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Leads retrieved successfully", result)
}

// UpdateLeadStatus handles lead lifecycle transitions
func (h *LeadHandler) UpdateLeadStatus(c echo.Context) error {
	leadID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid lead ID")
	}

	var req models.UpdateLeadStatusRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	lead, err := h.leadUC.UpdateLeadStatus(c.Request().Context(), leadID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, leads.ErrLeadNotFound):
			return utils.NotFoundResponse(c, "Lead not found")
		case errors.Is(err, leads.ErrUnknownStatus):
			return utils.BadRequestResponse(c, "Unknown status")
		case errors.Is(err, leads.ErrInvalidTransition):
			return utils.ErrorResponseHandler(c, http.StatusConflict, "Invalid status transition")
		}
		logger.Error("Failed to update lead status",
			logger.ErrorField(err),
			logger.String("lead_id", leadID.String()),
		)
		return utils.InternalServerErrorResponse(c, "Failed to update lead status")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Lead status updated successfully", lead)
}

func queryInt(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
