// internals/middlewares/auth/claim_utils.go
package auth

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	tokenService "schoolpayment_backend/internals/features/users/auth/service"
)

/* ======== Extractors ======== */

// extractBearerToken membaca Authorization: Bearer xxx.
// Return "" kalau header tidak ada / bukan Bearer (bukan error:
// downstream yang memutuskan 401 lewat tabel kebijakan).
func extractBearerToken(c *fiber.Ctx) string {
	auth := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if auth == "" {
		return ""
	}

	// Robust split: toleransi spasi ganda & case-insensitive
	fields := strings.Fields(auth)
	if len(fields) < 2 || !strings.EqualFold(fields[0], "Bearer") {
		return ""
	}

	tok := strings.Trim(strings.TrimSpace(fields[1]), "\"'")
	return tok
}

/* ======== Store claims to Locals ======== */

func storeClaimsToLocals(c *fiber.Ctx, claims *tokenService.AccessClaims) {
	c.Locals("user_id", claims.UserID.String())
	c.Locals("userRole", claims.Role)
	c.Locals("user_name", claims.Name)
	c.Locals("user_email", claims.Email)
	if claims.NIS != nil {
		c.Locals("user_nis", strconv.FormatInt(*claims.NIS, 10))
	}
}

/* ======== Error body {status, message} ======== */

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"status":  fiber.StatusUnauthorized,
		"message": message,
	})
}
