package jwtutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndParse(t *testing.T) {
	s := &Signer{Secret: []byte("k"), TTL: time.Minute}
	token, err := s.Sign(42, 7)
	require.NoError(t, err)

	claims, err := s.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.ScriptID)
	assert.Equal(t, uint(7), claims.UserID)
}

func TestParseExpired(t *testing.T) {
	s := &Signer{Secret: []byte("k"), TTL: -time.Minute}
	token, err := s.Sign(42, 7)
	require.NoError(t, err)

	_, err = s.Parse(token)
	assert.Error(t, err)
}

func TestParseWrongSecret(t *testing.T) {
	s := &Signer{Secret: []byte("k"), TTL: time.Minute}
	token, err := s.Sign(42, 7)
	require.NoError(t, err)

	other := &Signer{Secret: []byte("different"), TTL: time.Minute}
	_, err = other.Parse(token)
	assert.Error(t, err)
}
