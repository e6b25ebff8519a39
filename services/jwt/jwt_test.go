package jwt

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := GenerateToken(42, "ada@example.com", testSecret)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateAndGetClaims(token, testSecret)
	require.NoError(t, err)

	userID, err := SubjectFromClaims(claims)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
	assert.Equal(t, "ada@example.com", claims["email"])
}

func TestGenerateTokenRequiresSecret(t *testing.T) {
	_, err := GenerateToken(1, "a@b.com", "")
	assert.Error(t, err)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken(1, "a@b.com", testSecret)
	require.NoError(t, err)

	_, err = ValidateAndGetClaims(token, "other-secret")
	assert.Error(t, err)
}

func TestValidateExpiredToken(t *testing.T) {
	claims := gojwt.MapClaims{
		"sub":   1,
		"email": "a@b.com",
		"exp":   time.Now().Add(-time.Minute).Unix(),
		"iat":   time.Now().Add(-2 * time.Hour).Unix(),
	}
	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = ValidateAndGetClaims(token, testSecret)
	assert.Error(t, err)
}

func TestValidateRejectsNonHMAC(t *testing.T) {
	token := gojwt.NewWithClaims(gojwt.SigningMethodNone, gojwt.MapClaims{"sub": 1})
	signed, err := token.SignedString(gojwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ValidateAndGetClaims(signed, testSecret)
	assert.Error(t, err)
}

func TestSubjectFromClaimsInvalid(t *testing.T) {
	_, err := SubjectFromClaims(gojwt.MapClaims{"sub": "not-a-number"})
	assert.Error(t, err)
}
