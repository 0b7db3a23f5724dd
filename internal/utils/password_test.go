package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_VerifiesOriginal(t *testing.T) {
	hash, err := HashPassword("pw123")
	require.NoError(t, err)
	assert.NotEqual(t, "pw123", hash)
	assert.True(t, CheckPassword("pw123", hash))
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	first, err := HashPassword("pw123")
	require.NoError(t, err)
	second, err := HashPassword("pw123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "bcrypt salts must differ per call")
	assert.True(t, CheckPassword("pw123", first))
	assert.True(t, CheckPassword("pw123", second))
}

func TestCheckPassword_WrongPassword(t *testing.T) {
	hash, err := HashPassword("pw123")
	require.NoError(t, err)

	assert.False(t, CheckPassword("pw124", hash))
	assert.False(t, CheckPassword("", hash))
}

func TestCheckPassword_MalformedHashIsFalseNotFatal(t *testing.T) {
	assert.False(t, CheckPassword("pw123", "not-a-bcrypt-hash"))
	assert.False(t, CheckPassword("pw123", ""))
}
