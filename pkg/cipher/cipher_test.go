package cipher

import (
	"crypto/rand"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCipher(t *testing.T) *Cipher {
	t.Helper()
	key := make([]byte, KeySize)
	_, err := rand.Read(key)
	require.NoError(t, err)
	c, err := New(key)
	require.NoError(t, err)
	return c
}

func TestNew_KeySize(t *testing.T) {
	tests := []struct {
		name    string
		keyLen  int
		wantErr error
	}{
		{"valid 32 bytes", 32, nil},
		{"too short", 16, ErrKeySize},
		{"too long", 64, ErrKeySize},
		{"empty", 0, ErrKeySize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(make([]byte, tt.keyLen))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewFromBase64(t *testing.T) {
	key := make([]byte, KeySize)
	_, err := rand.Read(key)
	require.NoError(t, err)

	c, err := NewFromBase64(base64.StdEncoding.EncodeToString(key))
	require.NoError(t, err)
	require.NotNil(t, c)

	// 非法 base64
	_, err = NewFromBase64("!!not-base64!!")
	assert.Error(t, err)

	// 合法 base64 但长度错误
	_, err = NewFromBase64(base64.StdEncoding.EncodeToString(key[:16]))
	assert.ErrorIs(t, err, ErrKeySize)
}

func TestSealOpen_RoundTrip(t *testing.T) {
	c := newTestCipher(t)

	tests := []string{
		"hunter2",
		"p@ss word with spaces",
		"多字节中文明文",
		strings.Repeat("x", 4096),
	}

	for _, plaintext := range tests {
		sealed, err := c.Seal(plaintext)
		require.NoError(t, err)
		assert.NotEqual(t, plaintext, sealed)

		opened, err := c.Open(sealed)
		require.NoError(t, err)
		assert.Equal(t, plaintext, opened)
	}
}

func TestSealOpen_EmptyPassthrough(t *testing.T) {
	c := newTestCipher(t)

	sealed, err := c.Seal("")
	require.NoError(t, err)
	assert.Equal(t, "", sealed)

	opened, err := c.Open("")
	require.NoError(t, err)
	assert.Equal(t, "", opened)
}

func TestSeal_NonceFreshness(t *testing.T) {
	c := newTestCipher(t)

	first, err := c.Seal("same plaintext")
	require.NoError(t, err)
	second, err := c.Seal("same plaintext")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestOpen_Failures(t *testing.T) {
	c := newTestCipher(t)

	sealed, err := c.Seal("secret value")
	require.NoError(t, err)

	t.Run("invalid base64", func(t *testing.T) {
		_, err := c.Open("!!not-base64!!")
		assert.ErrorIs(t, err, ErrCipherOpen)
	})

	t.Run("truncated blob", func(t *testing.T) {
		raw, _ := base64.StdEncoding.DecodeString(sealed)
		short := base64.StdEncoding.EncodeToString(raw[:NonceSize+3])
		_, err := c.Open(short)
		assert.ErrorIs(t, err, ErrCipherOpen)
	})

	t.Run("flipped ciphertext byte", func(t *testing.T) {
		raw, _ := base64.StdEncoding.DecodeString(sealed)
		raw[NonceSize] ^= 0xff
		_, err := c.Open(base64.StdEncoding.EncodeToString(raw))
		assert.ErrorIs(t, err, ErrCipherOpen)
	})

	t.Run("wrong key", func(t *testing.T) {
		other := newTestCipher(t)
		_, err := other.Open(sealed)
		assert.ErrorIs(t, err, ErrCipherOpen)
	})
}

func TestSealOpen_Properties(t *testing.T) {
	c := newTestCipher(t)

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("open reverses seal", prop.ForAll(
		func(plaintext string) bool {
			sealed, err := c.Seal(plaintext)
			if err != nil {
				return false
			}
			opened, err := c.Open(sealed)
			if err != nil {
				return false
			}
			return opened == plaintext
		},
		gen.AnyString(),
	))

	properties.Property("two seals of the same plaintext differ", prop.ForAll(
		func(plaintext string) bool {
			if plaintext == "" {
				return true
			}
			first, err1 := c.Seal(plaintext)
			second, err2 := c.Seal(plaintext)
			return err1 == nil && err2 == nil && first != second
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}
