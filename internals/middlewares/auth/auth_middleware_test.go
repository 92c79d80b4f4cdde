package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tokenService "schoolpayment_backend/internals/features/users/auth/service"
)

// stub verifier: isi token menentukan hasil, tanpa kriptografi.
func stubVerify(calls *int) func(secret, raw string) (*tokenService.AccessClaims, error) {
	return func(secret, raw string) (*tokenService.AccessClaims, error) {
		if calls != nil {
			*calls++
		}
		switch raw {
		case "admin-token":
			return &tokenService.AccessClaims{UserID: uuid.New(), Role: "ADMIN", Name: "Admin"}, nil
		case "student-token":
			return &tokenService.AccessClaims{UserID: uuid.New(), Role: "STUDENT", Name: "Siswa"}, nil
		case "expired-token":
			return nil, tokenService.ErrTokenExpired
		default:
			return nil, tokenService.ErrTokenInvalid
		}
	}
}

func newTestApp(calls *int) *fiber.App {
	app := fiber.New()

	api := app.Group("/api",
		AuthMiddleware(AuthOpts{
			Secret: "test-secret",
			Policy: DefaultPolicy,
			Verify: stubVerify(calls),
		}),
		RequirePolicy(DefaultPolicy),
	)

	ok := func(c *fiber.Ctx) error { return c.SendString("ok") }
	api.Post("/users/login", ok)
	api.Get("/payments", ok)
	api.Get("/payments/my", ok)

	return app
}

func doRequest(t *testing.T, app *fiber.App, method, path, bearer string) int {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	return resp.StatusCode
}

func TestPublicPathSkipsVerification(t *testing.T) {
	calls := 0
	app := newTestApp(&calls)

	// token terlampir pun tidak boleh menyentuh verifier di path public
	status := doRequest(t, app, fiber.MethodPost, "/api/users/login", "whatever-token")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, 0, calls)
}

func TestProtectedWithoutToken(t *testing.T) {
	app := newTestApp(nil)
	assert.Equal(t, fiber.StatusUnauthorized,
		doRequest(t, app, fiber.MethodGet, "/api/payments", ""))
	assert.Equal(t, fiber.StatusUnauthorized,
		doRequest(t, app, fiber.MethodGet, "/api/payments/my", ""))
}

func TestProtectedWithInvalidToken(t *testing.T) {
	app := newTestApp(nil)
	assert.Equal(t, fiber.StatusUnauthorized,
		doRequest(t, app, fiber.MethodGet, "/api/payments", "garbled"))
}

func TestProtectedWithExpiredToken(t *testing.T) {
	app := newTestApp(nil)
	assert.Equal(t, fiber.StatusUnauthorized,
		doRequest(t, app, fiber.MethodGet, "/api/payments", "expired-token"))
}

func TestExpiredBeatsRoleCheck(t *testing.T) {
	// Token expired di route ADMIN harus 401, bukan 403.
	app := newTestApp(nil)
	assert.Equal(t, fiber.StatusUnauthorized,
		doRequest(t, app, fiber.MethodGet, "/api/payments", "expired-token"))
}

func TestRoleMismatchForbidden(t *testing.T) {
	app := newTestApp(nil)
	assert.Equal(t, fiber.StatusForbidden,
		doRequest(t, app, fiber.MethodGet, "/api/payments", "student-token"))
}

func TestAdminAllowed(t *testing.T) {
	app := newTestApp(nil)
	assert.Equal(t, fiber.StatusOK,
		doRequest(t, app, fiber.MethodGet, "/api/payments", "admin-token"))
}

func TestAnyAuthenticatedAllowedOnMyPayments(t *testing.T) {
	app := newTestApp(nil)
	assert.Equal(t, fiber.StatusOK,
		doRequest(t, app, fiber.MethodGet, "/api/payments/my", "student-token"))
	assert.Equal(t, fiber.StatusOK,
		doRequest(t, app, fiber.MethodGet, "/api/payments/my", "admin-token"))
}

func TestMalformedAuthorizationHeaderIgnored(t *testing.T) {
	app := newTestApp(nil)

	req := httptest.NewRequest(fiber.MethodGet, "/api/payments", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	// bukan Bearer → diperlakukan seperti tanpa token
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestUserResolverRejectsDeletedUser(t *testing.T) {
	app := fiber.New()
	api := app.Group("/api",
		AuthMiddleware(AuthOpts{
			Secret: "test-secret",
			Policy: DefaultPolicy,
			Verify: stubVerify(nil),
			UserResolver: func(id uuid.UUID) error {
				return ErrUserNotFound
			},
		}),
		RequirePolicy(DefaultPolicy),
	)
	api.Get("/payments/my", func(c *fiber.Ctx) error { return c.SendString("ok") })

	assert.Equal(t, fiber.StatusUnauthorized,
		doRequest(t, app, fiber.MethodGet, "/api/payments/my", "student-token"))
}
