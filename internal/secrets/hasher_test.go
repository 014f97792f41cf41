package secrets_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"registro/internal/secrets"
)

func TestBcryptHasherRoundTrip(t *testing.T) {
	hasher := secrets.NewBcryptHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("Passw0rd!")
	require.NoError(t, err)
	assert.NotEqual(t, "Passw0rd!", hash)

	assert.NoError(t, hasher.Compare("Passw0rd!", hash))
	assert.Error(t, hasher.Compare("Wrong0rd!", hash))
}

func TestBcryptHasherRejectsEmpty(t *testing.T) {
	hasher := secrets.NewBcryptHasher(bcrypt.MinCost)

	_, err := hasher.Hash("")
	require.Error(t, err)
}

func TestBcryptHashesAreSalted(t *testing.T) {
	hasher := secrets.NewBcryptHasher(bcrypt.MinCost)

	first, err := hasher.Hash("Passw0rd!")
	require.NoError(t, err)
	second, err := hasher.Hash("Passw0rd!")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
