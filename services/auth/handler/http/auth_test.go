package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	jwtpkg "github.com/Roastcoder/finonest-server-sub001/internal/pkg/jwt"
	"github.com/Roastcoder/finonest-server-sub001/internal/pkg/middleware"
	"github.com/Roastcoder/finonest-server-sub001/internal/pkg/models"
	"github.com/Roastcoder/finonest-server-sub001/services/auth"
	"github.com/Roastcoder/finonest-server-sub001/services/auth/mocks"
)

func setupHandlerTest(t *testing.T, method, target, body string) (*AuthHandler, *mocks.MockAuthUC, echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUC := mocks.NewMockAuthUC(ctrl)
	handler := NewAuthHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	return handler, mockUC, c, rec
}

func TestSendOTP_Success(t *testing.T) {
	handler, mockUC, c, rec := setupHandlerTest(t,
		http.MethodPost, "/auth/otp/generate", `{"phone": "+919876543210"}`)

	mockUC.EXPECT().
		SendOTP(gomock.Any(), "+919876543210").
		Return(nil)

	err := handler.SendOTP(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "OTP sent successfully", response["message"])
}

func TestSendOTP_InvalidPhone(t *testing.T) {
	handler, mockUC, c, rec := setupHandlerTest(t,
		http.MethodPost, "/auth/otp/generate", `{"phone": "12345"}`)

	mockUC.EXPECT().
		SendOTP(gomock.Any(), "12345").
		Return(auth.ErrInvalidPhone)

	err := handler.SendOTP(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSendOTP_InvalidPayload(t *testing.T) {
	handler, _, c, rec := setupHandlerTest(t,
		http.MethodPost, "/auth/otp/generate", `{invalid_json}`)

	err := handler.SendOTP(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVerifyOTP_Success(t *testing.T) {
	handler, mockUC, c, rec := setupHandlerTest(t,
		http.MethodPost, "/auth/otp/verify", `{"phone": "+919876543210", "otp": "123456"}`)

	customerID := uuid.New()
	mockUC.EXPECT().
		VerifyOTP(gomock.Any(), "+919876543210", "123456").
		Return(&models.AuthResponse{
			Token:  "signed.jwt.token",
			UserID: customerID.String(),
			Domain: jwtpkg.DomainCustomer,
			Role:   string(models.RoleCustomer),
		}, nil)

	err := handler.VerifyOTP(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "signed.jwt.token", data["token"])
	assert.Equal(t, "customer", data["domain"])
}

func TestVerifyOTP_FailureStatusCodes(t *testing.T) {
	testCases := []struct {
		name       string
		ucErr      error
		wantStatus int
		wantError  string
	}{
		{
			name:       "No active challenge",
			ucErr:      auth.ErrNoActiveChallenge,
			wantStatus: http.StatusUnauthorized,
			wantError:  "Invalid or expired OTP",
		},
		{
			name:       "Wrong code reads the same as no challenge",
			ucErr:      auth.ErrInvalidCode,
			wantStatus: http.StatusUnauthorized,
			wantError:  "Invalid or expired OTP",
		},
		{
			name:       "Lockout",
			ucErr:      auth.ErrTooManyAttempts,
			wantStatus: http.StatusTooManyRequests,
			wantError:  "Too many attempts, request a new OTP",
		},
		{
			name:       "Deactivated customer",
			ucErr:      auth.ErrPrincipalInactive,
			wantStatus: http.StatusUnauthorized,
			wantError:  "Account is deactivated",
		},
		{
			name:       "Invalid phone",
			ucErr:      auth.ErrInvalidPhone,
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid phone number",
		},
		{
			name:       "Store failure",
			ucErr:      errors.New("redis down"),
			wantStatus: http.StatusInternalServerError,
			wantError:  "Failed to verify OTP",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler, mockUC, c, rec := setupHandlerTest(t,
				http.MethodPost, "/auth/otp/verify", `{"phone": "+919876543210", "otp": "999999"}`)

			mockUC.EXPECT().
				VerifyOTP(gomock.Any(), "+919876543210", "999999").
				Return(nil, tc.ucErr)

			err := handler.VerifyOTP(c)

			assert.NoError(t, err)
			assert.Equal(t, tc.wantStatus, rec.Code)

			var response map[string]interface{}
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.Equal(t, false, response["success"])
			assert.Equal(t, tc.wantError, response["error"])
		})
	}
}

func TestAdminLogin_Success(t *testing.T) {
	handler, mockUC, c, rec := setupHandlerTest(t,
		http.MethodPost, "/auth/admin/login", `{"email": "ops@finonest.com", "password": "correct-horse"}`)

	adminID := uuid.New()
	mockUC.EXPECT().
		AdminLogin(gomock.Any(), "ops@finonest.com", "correct-horse").
		Return(&models.AuthResponse{
			Token:  "signed.jwt.token",
			UserID: adminID.String(),
			Domain: jwtpkg.DomainAdmin,
			Role:   string(models.RoleAdmin),
		}, nil)

	err := handler.AdminLogin(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminLogin_InvalidCredentials(t *testing.T) {
	handler, mockUC, c, rec := setupHandlerTest(t,
		http.MethodPost, "/auth/admin/login", `{"email": "ops@finonest.com", "password": "wrong"}`)

	mockUC.EXPECT().
		AdminLogin(gomock.Any(), "ops@finonest.com", "wrong").
		Return(nil, auth.ErrInvalidCredentials)

	err := handler.AdminLogin(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "Invalid credentials", response["error"])
}

func TestAdminLogin_MissingFields(t *testing.T) {
	handler, _, c, rec := setupHandlerTest(t,
		http.MethodPost, "/auth/admin/login", `{"email": "", "password": ""}`)

	err := handler.AdminLogin(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetProfile_Success(t *testing.T) {
	handler, mockUC, c, rec := setupHandlerTest(t,
		http.MethodGet, "/customers/me", "")

	customerID := uuid.New()
	c.Set(middleware.PrincipalContextKey, &models.Principal{
		ID:     customerID,
		Domain: jwtpkg.DomainCustomer,
		Role:   models.RoleCustomer,
	})

	mockUC.EXPECT().
		GetCustomerProfile(gomock.Any(), customerID).
		Return(&models.Customer{ID: customerID, Phone: "919876543210", IsActive: true}, nil)

	err := handler.GetProfile(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetProfile_Anonymous(t *testing.T) {
	handler, _, c, rec := setupHandlerTest(t,
		http.MethodGet, "/customers/me", "")

	err := handler.GetProfile(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
