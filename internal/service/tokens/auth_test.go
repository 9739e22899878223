package tokens

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateUserJWT(t *testing.T) {
	key := []byte("secret")
	var userID int64 = 42
	username := "trader1"

	tokenStr, genErr := GenerateUserJWT(userID, username, time.Hour, key)
	require.NoError(t, genErr)
	require.NotEmpty(t, tokenStr)

	token, valErr := ValidateUserJWT(tokenStr, key)
	require.NoError(t, valErr)

	claims, ok := token.Claims.(*UserClaims)
	require.True(t, ok)

	assert.Equal(t, userID, claims.ID)
	assert.Equal(t, username, claims.Username)
	assert.Equal(t, strconv.FormatInt(userID, 10), claims.Subject)

	require.NotNil(t, claims.IssuedAt)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestValidateUserJWT_WrongKey(t *testing.T) {
	tokenStr, genErr := GenerateUserJWT(1, "trader1", time.Hour, []byte("secret"))
	require.NoError(t, genErr)

	_, valErr := ValidateUserJWT(tokenStr, []byte("another secret"))
	assert.Error(t, valErr)
}

func TestValidateUserJWT_Expired(t *testing.T) {
	tokenStr, genErr := GenerateUserJWT(1, "trader1", -time.Minute, []byte("secret"))
	require.NoError(t, genErr)

	_, valErr := ValidateUserJWT(tokenStr, []byte("secret"))
	assert.ErrorIs(t, valErr, ErrTokenExpired)
}

func TestValidateUserJWT_Garbage(t *testing.T) {
	_, valErr := ValidateUserJWT("not a token", []byte("secret"))
	assert.Error(t, valErr)
}
