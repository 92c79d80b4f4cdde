package auth

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"schoolpayment_backend/internals/constants"
)

func TestMatchPath(t *testing.T) {
	cases := []struct {
		pattern string
		path    string
		want    bool
	}{
		{"/api/users/login", "/api/users/login", true},
		{"/api/users/login", "/api/users/login/", true},
		{"/api/users/login", "/api/users/register", false},
		{"/api/students/:id", "/api/students/abc-123", true},
		{"/api/students/:id", "/api/students", false},
		{"/api/students/:id", "/api/students/abc/extra", false},
		{"/docs*", "/docs", true},
		{"/docs*", "/docs/openapi.json", true},
		{"/docs*", "/doc", false},
		{"/api/payments/status/:id", "/api/payments/status/xyz", true},
		{"/api/payments/status/:id", "/api/payments/xyz/status", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, MatchPath(tc.pattern, tc.path),
			"pattern=%s path=%s", tc.pattern, tc.path)
	}
}

func TestLookupPolicy(t *testing.T) {
	assert.Equal(t, RolePublic, LookupPolicy(DefaultPolicy, fiber.MethodPost, "/api/users/login"))
	assert.Equal(t, RolePublic, LookupPolicy(DefaultPolicy, fiber.MethodPost, "/api/payments/notification"))
	assert.Equal(t, constants.RoleAdmin, LookupPolicy(DefaultPolicy, fiber.MethodGet, "/api/users"))
	assert.Equal(t, constants.RoleAdmin, LookupPolicy(DefaultPolicy, fiber.MethodGet, "/api/payments"))
	assert.Equal(t, constants.RoleAdmin, LookupPolicy(DefaultPolicy, fiber.MethodPut, "/api/payments/status/42"))

	// "my payments" cukup login, role apa pun
	assert.Equal(t, RoleAny, LookupPolicy(DefaultPolicy, fiber.MethodGet, "/api/payments/my"))

	// di luar tabel: default cukup terautentikasi
	assert.Equal(t, RoleAny, LookupPolicy(DefaultPolicy, fiber.MethodPost, "/api/payments"))
	assert.Equal(t, RoleAny, LookupPolicy(DefaultPolicy, fiber.MethodGet, "/api/payment-types"))
}

func TestLookupPolicyMethodMatters(t *testing.T) {
	// GET /api/payments = ADMIN, tapi POST tidak terdaftar → cukup login
	assert.Equal(t, constants.RoleAdmin, LookupPolicy(DefaultPolicy, fiber.MethodGet, "/api/payments"))
	assert.Equal(t, RoleAny, LookupPolicy(DefaultPolicy, fiber.MethodPost, "/api/payments"))

	// register hanya public untuk POST
	assert.Equal(t, RolePublic, LookupPolicy(DefaultPolicy, fiber.MethodPost, "/api/users/register"))
	assert.Equal(t, RoleAny, LookupPolicy(DefaultPolicy, fiber.MethodGet, "/api/users/register"))
}

func TestIsPublicPath(t *testing.T) {
	assert.True(t, IsPublicPath(DefaultPolicy, fiber.MethodGet, "/health"))
	assert.True(t, IsPublicPath(DefaultPolicy, fiber.MethodGet, "/docs/index.html"))
	assert.False(t, IsPublicPath(DefaultPolicy, fiber.MethodGet, "/api/payments"))
	assert.False(t, IsPublicPath(DefaultPolicy, fiber.MethodGet, "/api/payments/my"))
}
