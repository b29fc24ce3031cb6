package services

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordFormat(t *testing.T) {
	stored, err := HashPassword("secret1")
	require.NoError(t, err)

	keyHex, saltHex, ok := strings.Cut(stored, ".")
	require.True(t, ok, "stored form must be key.salt")

	key, err := hex.DecodeString(keyHex)
	require.NoError(t, err)
	assert.Len(t, key, scryptKeyLen)

	salt, err := hex.DecodeString(saltHex)
	require.NoError(t, err)
	assert.Len(t, salt, saltLen)
}

func TestHashPasswordUniqueSalt(t *testing.T) {
	a, err := HashPassword("secret1")
	require.NoError(t, err)
	b, err := HashPassword("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, a, b, "same password must hash differently under fresh salts")
}

func TestComparePassword(t *testing.T) {
	stored, err := HashPassword("secret1")
	require.NoError(t, err)

	ok, err := comparePassword(stored, "secret1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = comparePassword(stored, "secret2")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestComparePasswordMalformedStored(t *testing.T) {
	for _, stored := range []string{"", "nodot", "zz.zz", "abcd.zz", "zz.abcd"} {
		ok, err := comparePassword(stored, "whatever")
		require.NoError(t, err)
		assert.False(t, ok, "stored=%q", stored)
	}
}
