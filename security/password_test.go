package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher_RoundTrip(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	for _, password := range []string{"pw123", "correct horse battery staple", "пароль-日本語", " "} {
		hash, err := hasher.Hash(password)
		require.NoError(t, err)
		assert.NotEqual(t, password, hash)
		assert.True(t, hasher.Verify(password, hash), "password %q", password)
		assert.False(t, hasher.Verify(password+"x", hash), "password %q", password)
	}
}

func TestPasswordHasher_SaltsEachHash(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	first, err := hasher.Hash("pw123")
	require.NoError(t, err)
	second, err := hasher.Hash("pw123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestPasswordHasher_CorruptedHash(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("pw123")
	require.NoError(t, err)

	assert.False(t, hasher.Verify("pw123", ""))
	assert.False(t, hasher.Verify("pw123", "not-a-bcrypt-hash"))
	assert.False(t, hasher.Verify("pw123", hash[:len(hash)-5]))
}

func TestPasswordHasher_MaxLength(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)
	password := make([]byte, MaxPasswordBytes)
	for i := range password {
		password[i] = 'a'
	}

	hash, err := hasher.Hash(string(password))
	require.NoError(t, err)
	assert.True(t, hasher.Verify(string(password), hash))
}

func TestPasswordHasher_InvalidCostFallsBackToDefault(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewPasswordHasher(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewPasswordHasher(bcrypt.MaxCost+1).cost)
	assert.Equal(t, bcrypt.MinCost, NewPasswordHasher(bcrypt.MinCost).cost)
}

func TestPasswordHasher_DummyHashIsStable(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	dummy := hasher.DummyHash()
	assert.NotEmpty(t, dummy)
	assert.Equal(t, dummy, hasher.DummyHash())
	assert.False(t, hasher.Verify("pw123", dummy))
}

func TestPasswordHasher_DummyHashBuiltAtConstruction(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	require.NotEmpty(t, hasher.dummy)
	cost, err := bcrypt.Cost([]byte(hasher.dummy))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
	assert.Equal(t, hasher.dummy, hasher.DummyHash())
}
