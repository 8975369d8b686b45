package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// Cheap parameters so the tests don't spend seconds hashing
func newTestArgon() *ArgonHash {
	return New(1024, 1, 1)
}

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	a := New(0, 0, 0)
	assert.Equal(t, uint32(64*1024), a.Memory)
	assert.Equal(t, uint32(3), a.Iterations)
	assert.Equal(t, uint8(2), a.Parallelism)
}

func TestArgon_RoundTrip(t *testing.T) {
	t.Parallel()

	a := newTestArgon()

	hash, err := a.GenerateFromPassword("secret")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$v=19$m=1024,t=1,p=1$"))

	ok, err := a.VerifyPasswd("secret", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = a.VerifyPasswd("Secret", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestArgon_SaltsDiffer(t *testing.T) {
	t.Parallel()

	a := newTestArgon()

	h1, err := a.GenerateFromPassword("secret")
	require.NoError(t, err)
	h2, err := a.GenerateFromPassword("secret")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}

func TestArgon_VerifyWithOtherParams(t *testing.T) {
	t.Parallel()

	hash, err := New(2048, 2, 1).GenerateFromPassword("secret")
	require.NoError(t, err)

	// Parameters are read from the encoded hash, not from the hasher
	ok, err := newTestArgon().VerifyPasswd("secret", hash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestArgon_LegacyBcrypt(t *testing.T) {
	t.Parallel()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	a := newTestArgon()

	ok, err := a.VerifyPasswd("secret", string(hash))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = a.VerifyPasswd("wrong", string(hash))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestArgon_InvalidHash(t *testing.T) {
	t.Parallel()

	a := newTestArgon()

	for _, h := range []string{"", "plain", "$argon2i$v=19$m=1,t=1,p=1$a$b", "$argon2id$v=19$bad$a$b"} {
		ok, err := a.VerifyPasswd("secret", h)
		assert.Error(t, err, "hash %q", h)
		assert.False(t, ok)
	}
}
