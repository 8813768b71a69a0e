package middleware

import (
	"encoding/base64"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"office-management-backend/models"
	"office-management-backend/pkg/paseto"
)

func testMaker(t *testing.T) *paseto.Maker {
	t.Helper()
	secret := base64.URLEncoding.EncodeToString([]byte("0123456789abcdef0123456789abcdef"))
	maker, err := paseto.NewMaker(secret)
	require.NoError(t, err)
	return maker
}

func protectedApp(t *testing.T, maker *paseto.Maker, adminOnly bool) *fiber.App {
	t.Helper()
	app := fiber.New()
	chain := []fiber.Handler{AuthMiddleware(maker)}
	if adminOnly {
		chain = append(chain, AdminMiddleware())
	}
	chain = append(chain, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/secure", chain...)
	return app
}

func tokenFor(t *testing.T, maker *paseto.Maker, role string) string {
	t.Helper()
	token, err := maker.GenerateToken(&models.User{Email: "maya@example.com", Role: role})
	require.NoError(t, err)
	return token
}

func TestAuthMiddleware(t *testing.T) {
	maker := testMaker(t)
	app := protectedApp(t, maker, false)

	cases := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", fiber.StatusUnauthorized},
		{"not bearer", "Basic abc123", fiber.StatusUnauthorized},
		{"garbage token", "Bearer not-a-token", fiber.StatusUnauthorized},
		{"valid token", "Bearer " + tokenFor(t, maker, "employee"), fiber.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/secure", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			resp.Body.Close()
			assert.Equal(t, tc.want, resp.StatusCode)
		})
	}
}

func TestAuthMiddlewareRejectsForeignKey(t *testing.T) {
	maker := testMaker(t)
	otherSecret := base64.URLEncoding.EncodeToString([]byte("ffffffffffffffffffffffffffffffff"))
	other, err := paseto.NewMaker(otherSecret)
	require.NoError(t, err)

	app := protectedApp(t, maker, false)
	req := httptest.NewRequest("GET", "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, other, "admin"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAdminMiddleware(t *testing.T) {
	maker := testMaker(t)
	app := protectedApp(t, maker, true)

	req := httptest.NewRequest("GET", "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, maker, "employee"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	req = httptest.NewRequest("GET", "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, maker, "admin"))
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
