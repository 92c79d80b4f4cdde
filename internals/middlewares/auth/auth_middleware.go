// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	tokenService "schoolpayment_backend/internals/features/users/auth/service"
)

// AuthOpts konfigurasi gate. Verify & UserResolver bisa diganti di test
// supaya gate bisa diuji tanpa DB dan tanpa server jalan.
type AuthOpts struct {
	Secret string
	Policy []PolicyRule
	// Verify: default tokenService.VerifyAccessToken.
	Verify func(secret, raw string) (*tokenService.AccessClaims, error)
	// UserResolver memastikan user masih ada & belum soft-delete.
	// nil = lewati pemeriksaan (mis. unit test).
	UserResolver func(id uuid.UUID) error
}

var ErrUserNotFound = errors.New("user not found")

// GormUserResolver cek user aktif langsung ke tabel users.
func GormUserResolver(db *gorm.DB) func(uuid.UUID) error {
	return func(id uuid.UUID) error {
		var n int64
		if err := db.Table("users").
			Where("user_id = ? AND deleted_at IS NULL", id).
			Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return ErrUserNotFound
		}
		return nil
	}
}

// AuthMiddleware: gate autentikasi per request.
//
//  1. Path public (allow-list) → lanjut tanpa menyentuh verifikasi token.
//  2. Tanpa header Bearer → lanjut tanpa identitas; RequirePolicy yang
//     menolak kalau route butuh role.
//  3. Bearer ada tapi invalid/expired → 401 langsung, handler tidak pernah
//     dieksekusi. Expired dicek sebelum role (401 menang atas 403).
//  4. Valid → identitas + role disimpan ke Locals.
func AuthMiddleware(o AuthOpts) fiber.Handler {
	if strings.TrimSpace(o.Secret) == "" {
		panic("AuthMiddleware: Secret wajib diisi")
	}
	verify := o.Verify
	if verify == nil {
		verify = tokenService.VerifyAccessToken
	}
	if o.Policy == nil {
		o.Policy = DefaultPolicy
	}

	return func(c *fiber.Ctx) error {
		if IsPublicPath(o.Policy, c.Method(), c.Path()) {
			return c.Next()
		}

		raw := extractBearerToken(c)
		if raw == "" {
			return c.Next()
		}

		claims, err := verify(o.Secret, raw)
		if err != nil {
			if errors.Is(err, tokenService.ErrTokenExpired) {
				return unauthorized(c, "Unauthorized - Token expired")
			}
			return unauthorized(c, "Unauthorized - Invalid token")
		}

		if o.UserResolver != nil {
			if err := o.UserResolver(claims.UserID); err != nil {
				if errors.Is(err, ErrUserNotFound) {
					return unauthorized(c, "Unauthorized - User not found")
				}
				log.Printf("[ERROR] resolve user %s: %v", claims.UserID, err)
				return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
			}
		}

		storeClaimsToLocals(c, claims)
		return c.Next()
	}
}
