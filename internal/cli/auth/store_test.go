package auth

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempStore(t *testing.T) FSStore {
	t.Helper()
	return FSStore{TokenFile: filepath.Join(t.TempDir(), "token")}
}

func TestFSStore_TokenRoundTrip(t *testing.T) {
	s := tempStore(t)

	require.NoError(t, s.SaveToken("abc123\n"))
	// SaveToken пишет как есть, LoadToken срезает хвостовые пробелы
	tok, err := s.LoadToken()
	require.NoError(t, err)
	assert.Equal(t, "abc123", tok)
}

func TestFSStore_EmptyTokenRejected(t *testing.T) {
	s := tempStore(t)
	assert.Error(t, s.SaveToken(""))
}

func TestFSStore_LoadMissingToken(t *testing.T) {
	s := tempStore(t)
	_, err := s.LoadToken()
	assert.Error(t, err)
}

func TestFSStore_ClearToken(t *testing.T) {
	s := tempStore(t)
	require.NoError(t, s.SaveToken("tok"))
	require.NoError(t, s.ClearToken())
	_, err := s.LoadToken()
	assert.Error(t, err)

	// повторный logout — не ошибка
	assert.NoError(t, s.ClearToken())
}

func TestFSStore_EmailRoundTrip(t *testing.T) {
	s := tempStore(t)
	require.NoError(t, s.SaveEmail("a@b.c"))
	email, err := s.LoadEmail()
	require.NoError(t, err)
	assert.Equal(t, "a@b.c", email)
}
