package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jwtpkg "github.com/Roastcoder/finonest-server-sub001/internal/pkg/jwt"
	"github.com/Roastcoder/finonest-server-sub001/internal/pkg/middleware"
	"github.com/Roastcoder/finonest-server-sub001/internal/pkg/models"
	"github.com/Roastcoder/finonest-server-sub001/services/leads"
	"github.com/Roastcoder/finonest-server-sub001/services/leads/mocks"
)

func setupLeadHandlerTest(t *testing.T, method, target, body string) (*LeadHandler, *mocks.MockLeadUC, echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUC := mocks.NewMockLeadUC(ctrl)
	handler := NewLeadHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	return handler, mockUC, c, rec
}

func TestCreateLead_Anonymous(t *testing.T) {
	handler, mockUC, c, rec := setupLeadHandlerTest(t,
		http.MethodPost, "/leads",
		`{"fullname": "Asha Rao", "phone": "+919876543210", "loan_type": "personal", "amount": 250000}`)

	mockUC.EXPECT().
		CreateLead(gomock.Any(), gomock.Any(), gomock.Nil()).
		Return(&models.Lead{ID: uuid.New(), FullName: "Asha Rao", Status: models.LeadStatusNew}, nil)

	err := handler.CreateLead(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateLead_AuthenticatedCustomer(t *testing.T) {
	handler, mockUC, c, rec := setupLeadHandlerTest(t,
		http.MethodPost, "/leads",
		`{"fullname": "Asha Rao", "phone": "+919876543210", "loan_type": "personal", "amount": 250000}`)

	customerID := uuid.New()
	c.Set(middleware.PrincipalContextKey, &models.Principal{
		ID:     customerID,
		Domain: jwtpkg.DomainCustomer,
		Role:   models.RoleCustomer,
	})

	mockUC.EXPECT().
		CreateLead(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *models.CreateLeadRequest, cid *uuid.UUID) (*models.Lead, error) {
			require.NotNil(t, cid)
			assert.Equal(t, customerID, *cid)
			return &models.Lead{ID: uuid.New(), CustomerID: cid, Status: models.LeadStatusNew}, nil
		})

	err := handler.CreateLead(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateLead_MissingFields(t *testing.T) {
	handler, _, c, rec := setupLeadHandlerTest(t,
		http.MethodPost, "/leads", `{"fullname": "Asha Rao"}`)

	err := handler.CreateLead(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetLead(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		leadID := uuid.New()
		handler, mockUC, c, rec := setupLeadHandlerTest(t,
			http.MethodGet, "/leads/"+leadID.String(), "")
		c.SetParamNames("id")
		c.SetParamValues(leadID.String())

		mockUC.EXPECT().
			GetLead(gomock.Any(), leadID).
			Return(&models.Lead{ID: leadID, Status: models.LeadStatusQualified}, nil)

		err := handler.GetLead(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var response map[string]interface{}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		data := response["data"].(map[string]interface{})
		assert.Equal(t, "qualified", data["status"])
	})

	t.Run("Not found", func(t *testing.T) {
		leadID := uuid.New()
		handler, mockUC, c, rec := setupLeadHandlerTest(t,
			http.MethodGet, "/leads/"+leadID.String(), "")
		c.SetParamNames("id")
		c.SetParamValues(leadID.String())

		mockUC.EXPECT().
			GetLead(gomock.Any(), leadID).
			Return(nil, leads.ErrLeadNotFound)

		err := handler.GetLead(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Bad id", func(t *testing.T) {
		handler, _, c, rec := setupLeadHandlerTest(t,
			http.MethodGet, "/leads/not-a-uuid", "")
		c.SetParamNames("id")
		c.SetParamValues("not-a-uuid")

		err := handler.GetLead(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestListLeads(t *testing.T) {
	t.Run("Query parameters forwarded", func(t *testing.T) {
		handler, mockUC, c, rec := setupLeadHandlerTest(t,
			http.MethodGet, "/leads?status=contacted&limit=10&offset=30", "")

		mockUC.EXPECT().
			ListLeads(gomock.Any(), models.LeadStatusContacted, 10, 30).
			Return([]*models.Lead{}, nil)

		err := handler.ListLeads(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Unknown status filter", func(t *testing.T) {
		handler, mockUC, c, rec := setupLeadHandlerTest(t,
			http.MethodGet, "/leads?status=archived", "")

		mockUC.EXPECT().
			ListLeads(gomock.Any(), models.LeadStatus("archived"), 20, 0).
			Return(nil, leads.ErrUnknownStatus)

		err := handler.ListLeads(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestListMyLeads(t *testing.T) {
	t.Run("Returns own leads only", func(t *testing.T) {
		handler, mockUC, c, rec := setupLeadHandlerTest(t,
			http.MethodGet, "/customers/me/leads", "")

		customerID := uuid.New()
		c.Set(middleware.PrincipalContextKey, &models.Principal{
			ID:     customerID,
			Domain: jwtpkg.DomainCustomer,
			Role:   models.RoleCustomer,
		})

		mockUC.EXPECT().
			ListCustomerLeads(gomock.Any(), customerID).
			Return([]*models.Lead{{ID: uuid.New(), CustomerID: &customerID, Status: models.LeadStatusNew}}, nil)

		err := handler.ListMyLeads(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Anonymous", func(t *testing.T) {
		handler, _, c, rec := setupLeadHandlerTest(t,
			http.MethodGet, "/customers/me/leads", "")

		err := handler.ListMyLeads(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestUpdateLeadStatus(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		leadID := uuid.New()
		handler, mockUC, c, rec := setupLeadHandlerTest(t,
			http.MethodPatch, "/leads/"+leadID.String()+"/status", `{"status": "contacted"}`)
		c.SetParamNames("id")
		c.SetParamValues(leadID.String())

		mockUC.EXPECT().
			UpdateLeadStatus(gomock.Any(), leadID, "contacted").
			Return(&models.Lead{ID: leadID, Status: models.LeadStatusContacted}, nil)

		err := handler.UpdateLeadStatus(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Invalid transition", func(t *testing.T) {
		leadID := uuid.New()
		handler, mockUC, c, rec := setupLeadHandlerTest(t,
			http.MethodPatch, "/leads/"+leadID.String()+"/status", `{"status": "disbursed"}`)
		c.SetParamNames("id")
		c.SetParamValues(leadID.String())

		mockUC.EXPECT().
			UpdateLeadStatus(gomock.Any(), leadID, "disbursed").
			Return(nil, leads.ErrInvalidTransition)

		err := handler.UpdateLeadStatus(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("Not found", func(t *testing.T) {
		leadID := uuid.New()
		handler, mockUC, c, rec := setupLeadHandlerTest(t,
			http.MethodPatch, "/leads/"+leadID.String()+"/status", `{"status": "contacted"}`)
		c.SetParamNames("id")
		c.SetParamValues(leadID.String())

		mockUC.EXPECT().
			UpdateLeadStatus(gomock.Any(), leadID, "contacted").
			Return(nil, leads.ErrLeadNotFound)

		err := handler.UpdateLeadStatus(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
