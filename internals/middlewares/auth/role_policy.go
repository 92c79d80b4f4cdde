// internals/middlewares/auth/role_policy.go
package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"schoolpayment_backend/internals/constants"
)

// Role khusus tabel kebijakan (selain constants.RoleAdmin / RoleStudent):
const (
	// RolePublic: lolos tanpa autentikasi sama sekali.
	RolePublic = "PUBLIC"
	// RoleAny: cukup terautentikasi, role apa pun.
	RoleAny = ""
)

// PolicyRule memetakan (method, pola path) → role minimum.
// Segmen ":x" cocok dengan satu segmen apa pun; pola berakhiran "*"
// cocok dengan prefix.
type PolicyRule struct {
	Method  string
	Pattern string
	Role    string
}

// Tabel kebijakan statis, dievaluasi berurutan (aturan pertama yang cocok
// menang). Pengganti eksplisit untuk matrix anotasi di framework:
// endpoint manajemen lintas-user = ADMIN, endpoint "milik sendiri" cukup
// terautentikasi.
var DefaultPolicy = []PolicyRule{
	// Public
	{fiber.MethodPost, "/api/users/register", RolePublic},
	{fiber.MethodPost, "/api/users/login", RolePublic},
	{fiber.MethodPost, "/api/payments/notification", RolePublic}, // webhook gateway, diverifikasi via signature
	{fiber.MethodGet, "/health", RolePublic},
	{fiber.MethodGet, "/docs*", RolePublic},

	// Users (manajemen, ADMIN)
	{fiber.MethodGet, "/api/users", constants.RoleAdmin},
	{fiber.MethodGet, "/api/users/filter", constants.RoleAdmin},
	{fiber.MethodPut, "/api/users/role/:id", constants.RoleAdmin},
	{fiber.MethodPut, "/api/users/delete/:id", constants.RoleAdmin},
	{fiber.MethodDelete, "/api/users/:id", constants.RoleAdmin},

	// Students (ADMIN)
	{fiber.MethodGet, "/api/students", constants.RoleAdmin},
	{fiber.MethodGet, "/api/students/search", constants.RoleAdmin},
	{fiber.MethodGet, "/api/students/:id", constants.RoleAdmin},
	{fiber.MethodPost, "/api/students", constants.RoleAdmin},
	{fiber.MethodPut, "/api/students/delete/:id", constants.RoleAdmin},
	{fiber.MethodPut, "/api/students/:id", constants.RoleAdmin},
	{fiber.MethodDelete, "/api/students/:id", constants.RoleAdmin},

	// School years (ADMIN)
	{fiber.MethodGet, "/api/school-years/all", constants.RoleAdmin},
	{fiber.MethodGet, "/api/school-years/search", constants.RoleAdmin},
	{fiber.MethodPost, "/api/school-years/create", constants.RoleAdmin},
	{fiber.MethodPut, "/api/school-years/update/:id", constants.RoleAdmin},
	{fiber.MethodPut, "/api/school-years/delete/:id", constants.RoleAdmin},
	{fiber.MethodPut, "/api/school-years/restore/:id", constants.RoleAdmin},
	{fiber.MethodDelete, "/api/school-years/delete/:id", constants.RoleAdmin},

	// Classes (ADMIN)
	{fiber.MethodGet, "/api/classes/all", constants.RoleAdmin},
	{fiber.MethodGet, "/api/classes/search", constants.RoleAdmin},
	{fiber.MethodPost, "/api/classes/create", constants.RoleAdmin},
	{fiber.MethodPut, "/api/classes/update/:id", constants.RoleAdmin},
	{fiber.MethodDelete, "/api/classes/delete/:id", constants.RoleAdmin},

	// Payment types (tulis = ADMIN, baca cukup login)
	{fiber.MethodPost, "/api/payment-types", constants.RoleAdmin},
	{fiber.MethodPut, "/api/payment-types/:id", constants.RoleAdmin},
	{fiber.MethodDelete, "/api/payment-types/hard/:id", constants.RoleAdmin},
	{fiber.MethodDelete, "/api/payment-types/:id", constants.RoleAdmin},

	// Payments (listing & manajemen lintas-user = ADMIN;
	// "my payments" dan pembuatan milik sendiri cukup login)
	{fiber.MethodGet, "/api/payments/my", RoleAny},
	{fiber.MethodGet, "/api/payments/export", constants.RoleAdmin},
	{fiber.MethodGet, "/api/payments", constants.RoleAdmin},
	{fiber.MethodPut, "/api/payments/status/:id", constants.RoleAdmin},
	{fiber.MethodDelete, "/api/payments/:id", constants.RoleAdmin},
}

// LookupPolicy mengembalikan role minimum untuk (method, path).
// Default: cukup terautentikasi.
func LookupPolicy(rules []PolicyRule, method, path string) string {
	for _, r := range rules {
		if r.Method == method && MatchPath(r.Pattern, path) {
			return r.Role
		}
	}
	return RoleAny
}

// IsPublicPath: jalur yang tidak pernah menyentuh verifikasi token.
func IsPublicPath(rules []PolicyRule, method, path string) bool {
	return LookupPolicy(rules, method, path) == RolePublic
}

// MatchPath mencocokkan path terhadap pola segmen.
func MatchPath(pattern, path string) bool {
	if strings.HasSuffix(pattern, "*") {
		return strings.HasPrefix(path, strings.TrimSuffix(pattern, "*"))
	}

	ps := strings.Split(strings.Trim(pattern, "/"), "/")
	xs := strings.Split(strings.Trim(path, "/"), "/")
	if len(ps) != len(xs) {
		return false
	}
	for i := range ps {
		if strings.HasPrefix(ps[i], ":") {
			if xs[i] == "" {
				return false
			}
			continue
		}
		if ps[i] != xs[i] {
			return false
		}
	}
	return true
}

// RequirePolicy mengevaluasi tabel kebijakan setelah AuthMiddleware jalan.
// Tanpa identitas pada route terproteksi → 401; role kurang → 403.
func RequirePolicy(rules []PolicyRule) fiber.Handler {
	return func(c *fiber.Ctx) error {
		required := LookupPolicy(rules, c.Method(), c.Path())
		if required == RolePublic {
			return c.Next()
		}

		role, ok := c.Locals("userRole").(string)
		if !ok || role == "" {
			return unauthorized(c, "Unauthorized - No token provided")
		}

		if required != RoleAny && role != required {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"status":  fiber.StatusForbidden,
				"message": "Forbidden: you are not authorized to access this resource",
			})
		}
		return c.Next()
	}
}
