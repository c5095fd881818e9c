package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jwtpkg "github.com/Roastcoder/finonest-server-sub001/internal/pkg/jwt"
	"github.com/Roastcoder/finonest-server-sub001/internal/pkg/models"
)

type stubResolver struct {
	principals map[string]*models.Principal
	err        error
}

func (s *stubResolver) ResolvePrincipal(ctx context.Context, domain, id string) (*models.Principal, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.principals[domain+"/"+id], nil
}

func testConfig(allowAll bool, env string) *models.Config {
	return &models.Config{
		App:  models.AppConfig{Environment: env},
		JWT:  models.JWTConfig{Secret: "middleware-test-secret", Expiration: 60, Issuer: "finonest"},
		Auth: models.AuthConfig{AllowAllRoles: allowAll},
	}
}

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func doRequest(t *testing.T, a *Authenticator, domain string, roles []models.Role, authHeader string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := a.Authenticate(domain)(a.RequireRole(roles...)(okHandler))
	require.NoError(t, handler(c))

	return rec
}

func adminToken(t *testing.T, cfg *models.Config, userID uuid.UUID, role models.Role) string {
	t.Helper()
	token, _, err := jwtpkg.GenerateToken(userID, jwtpkg.DomainAdmin, role, cfg.JWT)
	require.NoError(t, err)
	return token
}

func TestAuthenticate_MissingHeaderIsUnauthorized(t *testing.T) {
	cfg := testConfig(false, "test")
	a := NewAuthenticator(cfg, &stubResolver{})

	rec := doRequest(t, a, jwtpkg.DomainAdmin, []models.Role{models.RoleAdmin}, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
}

func TestAuthenticate_MalformedHeaderIsAnonymous(t *testing.T) {
	cfg := testConfig(false, "test")
	a := NewAuthenticator(cfg, &stubResolver{})

	for _, header := range []string{
		"Bearer",
		"Bearer ",
		"bearer sometoken",
		"Basic dXNlcjpwYXNz",
		"Bearer too many parts",
	} {
		rec := doRequest(t, a, jwtpkg.DomainAdmin, []models.Role{models.RoleAdmin}, header)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
	}
}

func TestAuthenticate_ValidAdminTokenPasses(t *testing.T) {
	cfg := testConfig(false, "test")
	userID := uuid.New()
	resolver := &stubResolver{principals: map[string]*models.Principal{
		"admin/" + userID.String(): {ID: userID, Domain: jwtpkg.DomainAdmin, Role: models.RoleAdmin},
	}}
	a := NewAuthenticator(cfg, resolver)

	rec := doRequest(t, a, jwtpkg.DomainAdmin, []models.Role{models.RoleAdmin},
		"Bearer "+adminToken(t, cfg, userID, models.RoleAdmin))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthenticate_CustomerTokenNeverResolvesOnAdminRoute(t *testing.T) {
	cfg := testConfig(false, "test")
	userID := uuid.New()
	// The resolver knows the customer in both domains; the domain check
	// must reject before resolution even matters.
	resolver := &stubResolver{principals: map[string]*models.Principal{
		"admin/" + userID.String():    {ID: userID, Domain: jwtpkg.DomainAdmin, Role: models.RoleAdmin},
		"customer/" + userID.String(): {ID: userID, Domain: jwtpkg.DomainCustomer, Role: models.RoleCustomer},
	}}
	a := NewAuthenticator(cfg, resolver)

	customerToken, _, err := jwtpkg.GenerateToken(userID, jwtpkg.DomainCustomer, models.RoleCustomer, cfg.JWT)
	require.NoError(t, err)

	rec := doRequest(t, a, jwtpkg.DomainAdmin, []models.Role{models.RoleAdmin}, "Bearer "+customerToken)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_LegacyTokenWithoutDomainIsAdmin(t *testing.T) {
	cfg := testConfig(false, "test")
	userID := uuid.New()
	resolver := &stubResolver{principals: map[string]*models.Principal{
		"admin/" + userID.String(): {ID: userID, Domain: jwtpkg.DomainAdmin, Role: models.RoleSuperAdmin},
	}}
	a := NewAuthenticator(cfg, resolver)

	// Empty domain claim mimics a token minted before domain tagging.
	legacyToken, _, err := jwtpkg.GenerateToken(userID, "", models.RoleSuperAdmin, cfg.JWT)
	require.NoError(t, err)

	rec := doRequest(t, a, jwtpkg.DomainAdmin, []models.Role{models.RoleSuperAdmin}, "Bearer "+legacyToken)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, a, jwtpkg.DomainCustomer, []models.Role{models.RoleCustomer}, "Bearer "+legacyToken)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_DeactivatedPrincipalRejectedBeforeExpiry(t *testing.T) {
	cfg := testConfig(false, "test")
	userID := uuid.New()
	resolver := &stubResolver{principals: map[string]*models.Principal{
		"admin/" + userID.String(): {ID: userID, Domain: jwtpkg.DomainAdmin, Role: models.RoleAdmin},
	}}
	a := NewAuthenticator(cfg, resolver)
	token := "Bearer " + adminToken(t, cfg, userID, models.RoleAdmin)

	rec := doRequest(t, a, jwtpkg.DomainAdmin, []models.Role{models.RoleAdmin}, token)
	require.Equal(t, http.StatusOK, rec.Code)

	// Deactivation: the resolver stops returning the principal while the
	// token is still signed and unexpired.
	delete(resolver.principals, "admin/"+userID.String())

	rec = doRequest(t, a, jwtpkg.DomainAdmin, []models.Role{models.RoleAdmin}, token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_ResolverErrorIsAnonymous(t *testing.T) {
	cfg := testConfig(false, "test")
	a := NewAuthenticator(cfg, &stubResolver{err: errors.New("store down")})

	rec := doRequest(t, a, jwtpkg.DomainAdmin, []models.Role{models.RoleAdmin},
		"Bearer "+adminToken(t, cfg, uuid.New(), models.RoleAdmin))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRole_ExplicitListOnly(t *testing.T) {
	cfg := testConfig(false, "test")
	userID := uuid.New()

	for _, tc := range []struct {
		name     string
		role     models.Role
		allowed  []models.Role
		wantCode int
	}{
		{name: "admin allowed on admin gate", role: models.RoleAdmin, allowed: []models.Role{models.RoleAdmin}, wantCode: http.StatusOK},
		{name: "superadmin not implicitly allowed", role: models.RoleSuperAdmin, allowed: []models.Role{models.RoleAdmin}, wantCode: http.StatusForbidden},
		{name: "superadmin allowed when listed", role: models.RoleSuperAdmin, allowed: []models.Role{models.RoleAdmin, models.RoleSuperAdmin}, wantCode: http.StatusOK},
		{name: "editor forbidden on admin gate", role: models.RoleEditor, allowed: []models.Role{models.RoleAdmin}, wantCode: http.StatusForbidden},
	} {
		t.Run(tc.name, func(t *testing.T) {
			resolver := &stubResolver{principals: map[string]*models.Principal{
				"admin/" + userID.String(): {ID: userID, Domain: jwtpkg.DomainAdmin, Role: tc.role},
			}}
			a := NewAuthenticator(cfg, resolver)

			rec := doRequest(t, a, jwtpkg.DomainAdmin, tc.allowed,
				"Bearer "+adminToken(t, cfg, userID, tc.role))

			assert.Equal(t, tc.wantCode, rec.Code)
		})
	}
}

func TestRequireRole_BypassFlagAcceptsAnyRole(t *testing.T) {
	cfg := testConfig(true, "development")
	userID := uuid.New()
	resolver := &stubResolver{principals: map[string]*models.Principal{
		"admin/" + userID.String(): {ID: userID, Domain: jwtpkg.DomainAdmin, Role: models.RoleEditor},
	}}
	a := NewAuthenticator(cfg, resolver)

	rec := doRequest(t, a, jwtpkg.DomainAdmin, []models.Role{models.RoleSuperAdmin},
		"Bearer "+adminToken(t, cfg, userID, models.RoleEditor))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRole_BypassStillRequiresAuthentication(t *testing.T) {
	cfg := testConfig(true, "development")
	a := NewAuthenticator(cfg, &stubResolver{})

	rec := doRequest(t, a, jwtpkg.DomainAdmin, []models.Role{models.RoleAdmin}, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRole_BypassIgnoredInProduction(t *testing.T) {
	cfg := testConfig(true, "production")
	userID := uuid.New()
	resolver := &stubResolver{principals: map[string]*models.Principal{
		"admin/" + userID.String(): {ID: userID, Domain: jwtpkg.DomainAdmin, Role: models.RoleEditor},
	}}
	a := NewAuthenticator(cfg, resolver)

	rec := doRequest(t, a, jwtpkg.DomainAdmin, []models.Role{models.RoleSuperAdmin},
		"Bearer "+adminToken(t, cfg, userID, models.RoleEditor))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestGetPrincipal_AnonymousIsNil(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	assert.Nil(t, GetPrincipal(c))
}
