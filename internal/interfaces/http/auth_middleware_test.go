package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/restaurante-stock-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/restaurante-stock-api/pkg/jwt"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "restaurante-stock-test"
	testExpMin    = 60
)

// guardedApp monta GET /protected detrás de AuthMiddleware + RequireRole.
func guardedApp(allowed ...string) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireRole(allowed...),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"role": apphttp.GetRole(c)})
		},
	)
	return app
}

func bearerFor(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, role, testIssuer, testExpMin)
	require.NoError(t, err)
	return "Bearer " + tok
}

func getProtected(t *testing.T, app *fiber.App, authHeader string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestRequireRole_MatrizDeRoles(t *testing.T) {
	cases := []struct {
		name     string
		allowed  []string
		role     string
		want     int
		wantBody string
	}{
		{"admin accede a ruta de admin", []string{"admin"}, "admin", http.StatusOK, `"role":"admin"`},
		{"manager accede a ruta admin o manager", []string{"admin", "manager"}, "manager", http.StatusOK, `"role":"manager"`},
		{"staff bloqueado en ruta de admin", []string{"admin"}, "staff", http.StatusForbidden, "FORBIDDEN"},
		{"manager bloqueado en ruta de admin", []string{"admin"}, "manager", http.StatusForbidden, "FORBIDDEN"},
		{"staff accede a ruta de staff", []string{"admin", "manager", "staff"}, "staff", http.StatusOK, `"role":"staff"`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := getProtected(t, guardedApp(tc.allowed...), bearerFor(t, tc.role))
			assert.Equal(t, tc.want, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestRequireRole_TokenSinRolRetorna401(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "", testIssuer, testExpMin)
	require.NoError(t, err)

	status, body := getProtected(t, guardedApp("admin"), "Bearer "+tok)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Contains(t, body, "MISSING_ROLE")
}

func TestAuthMiddleware_RechazaTokensInvalidos(t *testing.T) {
	cases := []struct {
		name     string
		header   string
		wantBody string
	}{
		{"sin header Authorization", "", "MISSING_TOKEN"},
		{"header sin esquema Bearer", "token-a-secas", "INVALID_TOKEN"},
		{"esquema sin token", "Bearer", "INVALID_TOKEN"},
		{"token corrupto", "Bearer no.es.jwt", "INVALID_TOKEN"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := getProtected(t, guardedApp("admin"), tc.header)
			assert.Equal(t, http.StatusUnauthorized, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestAuthMiddleware_CargaClaimsEnLocals(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": apphttp.GetUserID(c),
			"role":    apphttp.GetRole(c),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", bearerFor(t, "manager"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, "manager", body["role"])
}

func TestJWT_IdaYVuelta(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "manager", testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, role, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testUserID, userID)
	assert.Equal(t, "manager", role)
}

func TestJWT_RechazaExpiradoYSecretAjeno(t *testing.T) {
	expirado, err := pkgjwt.Generate(testJWTSecret, testUserID, "admin", testIssuer, -1)
	require.NoError(t, err)
	_, _, err = pkgjwt.Parse(testJWTSecret, expirado)
	assert.Error(t, err, "un token vencido no debe aceptarse")

	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "admin", testIssuer, testExpMin)
	require.NoError(t, err)
	_, _, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "un secret distinto debe invalidar la firma")
}
