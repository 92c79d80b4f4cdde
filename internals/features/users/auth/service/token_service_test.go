package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	userModel "schoolpayment_backend/internals/features/users/user/model"
)

const testSecret = "unit-test-secret"

func testUser() *userModel.UserModel {
	nis := int64(12345)
	return &userModel.UserModel{
		ID:    uuid.New(),
		NIS:   &nis,
		Name:  "Budi Santoso",
		Email: "budi@example.com",
		Role:  "STUDENT",
	}
}

func TestIssueAndVerifyRoundtrip(t *testing.T) {
	user := testUser()

	raw, err := IssueAccessToken(testSecret, user)
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	claims, err := VerifyAccessToken(testSecret, raw)
	require.NoError(t, err)

	assert.Equal(t, user.Email, claims.Subject)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "STUDENT", claims.Role)
	assert.Equal(t, user.Name, claims.Name)
	assert.Equal(t, user.Email, claims.Email)
	require.NotNil(t, claims.NIS)
	assert.Equal(t, int64(12345), *claims.NIS)
}

func TestTokenSubjectFallsBackToNIS(t *testing.T) {
	user := testUser()
	user.Email = ""

	raw, err := IssueAccessToken(testSecret, user)
	require.NoError(t, err)

	claims, err := VerifyAccessToken(testSecret, raw)
	require.NoError(t, err)
	assert.Equal(t, "12345", claims.Subject)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	raw, err := IssueAccessToken(testSecret, testUser())
	require.NoError(t, err)

	_, err = VerifyAccessToken("some-other-secret", raw)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	for _, raw := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := VerifyAccessToken(testSecret, raw)
		assert.ErrorIs(t, err, ErrTokenInvalid, "raw=%q", raw)
	}
}

func TestVerifyExpiredToken(t *testing.T) {
	user := testUser()
	past := time.Now().Add(-2 * AccessTokenTTL)
	claims := jwt.MapClaims{
		"sub":     user.Email,
		"role":    user.Role,
		"user_id": user.ID.String(),
		"name":    user.Name,
		"email":   user.Email,
		"iat":     past.Unix(),
		"exp":     past.Add(AccessTokenTTL).Unix(),
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = VerifyAccessToken(testSecret, raw)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyRejectsMissingUserID(t *testing.T) {
	claims := jwt.MapClaims{
		"sub": "x@example.com",
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = VerifyAccessToken(testSecret, raw)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyRejectsNoneAlgorithm(t *testing.T) {
	claims := jwt.MapClaims{
		"user_id": uuid.NewString(),
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = VerifyAccessToken(testSecret, raw)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTwoIssuesBothValid(t *testing.T) {
	user := testUser()

	first, err := IssueAccessToken(testSecret, user)
	require.NoError(t, err)
	second, err := IssueAccessToken(testSecret, user)
	require.NoError(t, err)

	for _, raw := range []string{first, second} {
		claims, err := VerifyAccessToken(testSecret, raw)
		require.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
	}
}
