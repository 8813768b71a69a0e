package handlers

import (
	"encoding/base64"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"office-management-backend/models"
	"office-management-backend/pkg/paseto"
	"office-management-backend/pkg/password"
)

func newAuthTestApp(t *testing.T, withMaker bool) (*fiber.App, *fakeUserRepo) {
	t.Helper()

	var maker *paseto.Maker
	if withMaker {
		secret := base64.URLEncoding.EncodeToString([]byte("0123456789abcdef0123456789abcdef"))
		var err error
		maker, err = paseto.NewMaker(secret)
		require.NoError(t, err)
	}

	repo := newFakeUserRepo()
	hash, err := password.HashPassword("s3cret")
	require.NoError(t, err)
	repo.users["maya@example.com"] = &models.User{
		Name:     "Maya Iyer",
		Email:    "maya@example.com",
		Password: hash,
		Role:     "employee",
	}

	app := fiber.New()
	app.Post("/api/login", NewAuthHandler(repo, maker).Login)
	return app, repo
}

func doJSON(t *testing.T, app *fiber.App, method, target, body string) (int, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp.StatusCode, decoded
}

func TestLoginSuccess(t *testing.T) {
	app, _ := newAuthTestApp(t, true)

	status, body := doJSON(t, app, "POST", "/api/login", `{"email":"maya@example.com","password":"s3cret"}`)
	require.Equal(t, fiber.StatusOK, status)

	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["token"])

	user, ok := body["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "maya@example.com", user["email"])
	assert.Empty(t, user["password"], "password hash must not leak in the response")
}

func TestLoginWithoutTokenMaker(t *testing.T) {
	app, _ := newAuthTestApp(t, false)

	status, body := doJSON(t, app, "POST", "/api/login", `{"email":"maya@example.com","password":"s3cret"}`)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["success"])
	assert.Empty(t, body["token"])
}

func TestLoginInvalidCredentials(t *testing.T) {
	app, _ := newAuthTestApp(t, true)

	// Unknown email and wrong password must be indistinguishable.
	for name, payload := range map[string]string{
		"unknown email":  `{"email":"nobody@example.com","password":"s3cret"}`,
		"wrong password": `{"email":"maya@example.com","password":"nope"}`,
	} {
		status, body := doJSON(t, app, "POST", "/api/login", payload)
		assert.Equal(t, fiber.StatusUnauthorized, status, name)
		assert.Equal(t, "Invalid email or password", body["error"], name)
	}
}

func TestLoginValidation(t *testing.T) {
	app, _ := newAuthTestApp(t, true)

	status, body := doJSON(t, app, "POST", "/api/login", `{"email":"not-an-email","password":""}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, body, "errors")
}
