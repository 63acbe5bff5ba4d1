package utils_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pranavks/user_account_app/internal/utils"
)

const (
	testAccessSecret  = "test-access-secret"
	testRefreshSecret = "test-refresh-secret"
	testIssuer        = "user-account-app-test"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	token, err := utils.GenerateAccessToken(
		"user-123", "jane@example.com", "janedoe", "Jane Doe",
		testAccessSecret, 15*time.Minute, testIssuer,
	)
	require.NoError(t, err)

	claims, err := utils.ParseAccessToken(token, testAccessSecret)
	require.NoError(t, err)

	assert.Equal(t, "user-123", claims.Subject)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.Equal(t, "janedoe", claims.Username)
	assert.Equal(t, "Jane Doe", claims.FullName)
	assert.Equal(t, testIssuer, claims.Issuer)

	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), claims.ExpiresAt.Time, 5*time.Second)
}

func TestAccessTokenWrongSecretFails(t *testing.T) {
	token, err := utils.GenerateAccessToken(
		"user-123", "jane@example.com", "janedoe", "Jane Doe",
		testAccessSecret, 15*time.Minute, testIssuer,
	)
	require.NoError(t, err)

	_, err = utils.ParseAccessToken(token, "a-different-secret")
	assert.Error(t, err)
}

func TestAccessTokenExpired(t *testing.T) {
	token, err := utils.GenerateAccessToken(
		"user-123", "jane@example.com", "janedoe", "Jane Doe",
		testAccessSecret, -1*time.Minute, testIssuer,
	)
	require.NoError(t, err)

	_, err = utils.ParseAccessToken(token, testAccessSecret)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestRefreshTokenCarriesOnlyUserID(t *testing.T) {
	token, err := utils.GenerateRefreshToken("user-123", testRefreshSecret, time.Hour, testIssuer)
	require.NoError(t, err)

	claims, err := utils.ParseRefreshToken(token, testRefreshSecret)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.Subject)

	// An access token must not verify against the refresh secret and vice
	// versa: the two use independent secrets.
	_, err = utils.ParseRefreshToken(token, testAccessSecret)
	assert.Error(t, err)
}
