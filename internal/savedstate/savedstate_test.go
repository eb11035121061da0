package savedstate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRoundTripsThroughDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "state.toml")

	s, err := Open(path)
	require.NoError(t, err)
	_, ok := s.Get(KeySearchText)
	assert.False(t, ok)

	s.Set(KeySearchText, "bubbletea")
	require.NoError(t, s.Save())

	reopened, err := Open(path)
	require.NoError(t, err)
	v, ok := reopened.Get(KeySearchText)
	require.True(t, ok)
	assert.Equal(t, "bubbletea", v)
}

func TestSaveSkipsWhenClean(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.toml")
	s, err := Open(path)
	require.NoError(t, err)

	require.NoError(t, s.Save())
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "nothing changed, nothing written")
}

func TestOpenRejectsBrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.toml")
	require.NoError(t, os.WriteFile(path, []byte("search_text = "), 0644))

	_, err := Open(path)
	require.Error(t, err)
}

func TestMemoryStoreNeverWrites(t *testing.T) {
	s := NewMemory()
	s.Set(KeySearchText, "go")
	require.NoError(t, s.Save())

	v, ok := s.Get(KeySearchText)
	require.True(t, ok)
	assert.Equal(t, "go", v)
}
