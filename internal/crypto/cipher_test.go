package crypto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teamhealth/internal/crypto"
)

func TestNewCipher_EmptySecret(t *testing.T) {
	c, err := crypto.NewCipher("")

	assert.Nil(t, c)
	assert.ErrorIs(t, err, crypto.ErrEmptyKey)
}

func TestCipher_RoundTrip(t *testing.T) {
	c, err := crypto.NewCipher("unit-test-secret")
	require.NoError(t, err)

	encrypted, err := c.Encrypt("ghp_secret_token")
	require.NoError(t, err)
	assert.NotEqual(t, "ghp_secret_token", encrypted)

	decrypted, err := c.Decrypt(encrypted)
	require.NoError(t, err)
	assert.Equal(t, "ghp_secret_token", decrypted)
}

func TestCipher_EmptyStringPassesThrough(t *testing.T) {
	c, err := crypto.NewCipher("unit-test-secret")
	require.NoError(t, err)

	encrypted, err := c.Encrypt("")
	require.NoError(t, err)
	assert.Equal(t, "", encrypted)

	decrypted, err := c.Decrypt("")
	require.NoError(t, err)
	assert.Equal(t, "", decrypted)
}

func TestCipher_NonceMakesCiphertextUnique(t *testing.T) {
	c, err := crypto.NewCipher("unit-test-secret")
	require.NoError(t, err)

	first, err := c.Encrypt("same plaintext")
	require.NoError(t, err)
	second, err := c.Encrypt("same plaintext")
	require.NoError(t, err)

	// Свежий nonce на каждый вызов даёт разный шифртекст
	assert.NotEqual(t, first, second)
}

func TestCipher_MalformedCiphertext(t *testing.T) {
	c, err := crypto.NewCipher("unit-test-secret")
	require.NoError(t, err)

	_, err = c.Decrypt("not base64 at all!!!")
	assert.ErrorIs(t, err, crypto.ErrMalformedCiphertext)

	_, err = c.Decrypt("c2hvcnQ=")
	assert.ErrorIs(t, err, crypto.ErrMalformedCiphertext)
}

func TestCipher_WrongKeyFailsToDecrypt(t *testing.T) {
	first, err := crypto.NewCipher("secret-one")
	require.NoError(t, err)
	second, err := crypto.NewCipher("secret-two")
	require.NoError(t, err)

	encrypted, err := first.Encrypt("ghp_secret_token")
	require.NoError(t, err)

	_, err = second.Decrypt(encrypted)
	assert.ErrorIs(t, err, crypto.ErrMalformedCiphertext)
}
