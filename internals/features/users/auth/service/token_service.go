// internals/features/users/auth/service/token_service.go
package service

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	userModel "schoolpayment_backend/internals/features/users/user/model"
)

// Access token berlaku 10 jam sejak diterbitkan, tanpa refresh & tanpa
// revocation: hanya kadaluarsa atau rotasi secret yang membatalkannya.
const AccessTokenTTL = 10 * time.Hour

var (
	ErrTokenInvalid = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// AccessClaims adalah klaim hasil verifikasi yang dipakai downstream.
type AccessClaims struct {
	Subject string
	UserID  uuid.UUID
	Role    string
	Name    string
	Email   string
	NIS     *int64
}

// IssueAccessToken menandatangani token HS256 berisi identitas user.
// Pure function dari (user, now, secret); dua kali issue menghasilkan token
// berbeda (iat beda) tapi keduanya valid sampai exp masing-masing.
func IssueAccessToken(secret string, user *userModel.UserModel) (string, error) {
	if strings.TrimSpace(secret) == "" {
		return "", errors.New("JWT secret kosong")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":     user.TokenSubject(),
		"role":    user.Role,
		"user_id": user.ID.String(),
		"name":    user.Name,
		"email":   user.Email,
		"iat":     now.Unix(),
		"exp":     now.Add(AccessTokenTTL).Unix(),
	}
	if user.NIS != nil {
		claims["nis"] = strconv.FormatInt(*user.NIS, 10)
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// VerifyAccessToken memverifikasi signature + expiry dan mengembalikan klaim.
// ErrTokenExpired untuk token kadaluarsa, ErrTokenInvalid untuk sisanya
// (malformed, signature salah, algoritma bukan HMAC, klaim rusak).
func VerifyAccessToken(secret, raw string) (*AccessClaims, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, ErrTokenInvalid
	}

	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		var ve *jwt.ValidationError
		if errors.As(err, &ve) && ve.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	out := &AccessClaims{}
	out.Subject, _ = claims["sub"].(string)
	out.Role, _ = claims["role"].(string)
	out.Name, _ = claims["name"].(string)
	out.Email, _ = claims["email"].(string)

	idStr, _ := claims["user_id"].(string)
	id, err := uuid.Parse(strings.TrimSpace(idStr))
	if err != nil {
		return nil, ErrTokenInvalid
	}
	out.UserID = id

	if nisStr, ok := claims["nis"].(string); ok {
		if nis, err := strconv.ParseInt(nisStr, 10, 64); err == nil {
			out.NIS = &nis
		}
	}

	return out, nil
}
