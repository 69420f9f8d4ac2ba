package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashService_HashAndVerify(t *testing.T) {
	svc := NewArgon2HashService()

	hash, err := svc.Hash("open-the-vault")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$"))

	ok, err := svc.Verify("open-the-vault", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.Verify("wrong-passphrase", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashService_UniqueSalt(t *testing.T) {
	svc := NewArgon2HashService()

	h1, err := svc.Hash("same")
	require.NoError(t, err)
	h2, err := svc.Hash("same")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2, "salted hashes must differ")
}

func TestHashService_Verify_MalformedHash(t *testing.T) {
	svc := NewArgon2HashService()

	tests := []struct {
		name string
		hash string
	}{
		{"empty", ""},
		{"garbage", "not-a-hash"},
		{"wrong algorithm", "$bcrypt$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA"},
		{"bad salt encoding", "$argon2id$v=19$m=65536,t=1,p=4$!!!$aGFzaA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Verify("x", tt.hash)
			assert.Error(t, err)
		})
	}
}
