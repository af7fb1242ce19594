package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingFile(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "nope", "prefs.json"))
	p, err := s.Load()
	require.NoError(t, err)
	require.Equal(t, Prefs{}, p)
}

func TestSaveThenLoad(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "sub", "prefs.json"))
	require.NoError(t, s.Save(Prefs{Layout: LayoutMobile}))

	p, err := s.Load()
	require.NoError(t, err)
	require.Equal(t, LayoutMobile, p.Layout)

	_, err = os.Stat(s.Path() + ".tmp")
	require.True(t, os.IsNotExist(err))
}

func TestLoadResetsUnknownLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"layout":"sideways"}`), 0o600))
	p, err := NewStore(path).Load()
	require.NoError(t, err)
	require.Equal(t, LayoutAuto, p.Layout)
}

func TestLoadRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	require.NoError(t, os.WriteFile(path, []byte(`{`), 0o600))
	_, err := NewStore(path).Load()
	require.Error(t, err)
}
