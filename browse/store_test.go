package browse

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadStore_Missing(t *testing.T) {
	s, err := LoadStore(afero.NewMemMapFs(), "/config/browse.yaml")
	require.NoError(t, err)

	assert.Empty(t, s.Favorites)
	assert.Empty(t, s.Recents)
	assert.Equal(t, DefaultMaxRecents, s.MaxRecents)
}

func TestStore_WriteAndLoad(t *testing.T) {
	fs := afero.NewMemMapFs()

	s := NewStore()
	s.AddFavorite("/assets/textures")
	s.Touch("/assets/models")

	require.NoError(t, WriteStore(fs, s, "/config/browse.yaml"))

	data, err := afero.ReadFile(fs, "/config/browse.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "favorites:")
	assert.Contains(t, string(data), "- /assets/textures")

	loaded, err := LoadStore(fs, "/config/browse.yaml")
	require.NoError(t, err)
	assert.Equal(t, []string{"/assets/textures"}, loaded.Favorites)
	assert.Equal(t, []string{"/assets/models"}, loaded.Recents)
}

func TestWriteStore_ReadOnly(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())

	err := WriteStore(fs, NewStore(), "/config/browse.yaml")
	assert.Error(t, err)
}

func TestParseStore(t *testing.T) {
	s, err := ParseStore([]byte(`
favorites: [/a, /b, /a]
recents: [/x, /y, /z, /x]
max_recents: 2
`))
	require.NoError(t, err)

	assert.Equal(t, []string{"/a", "/b"}, s.Favorites)
	assert.Equal(t, []string{"/x", "/y"}, s.Recents)

	_, err = ParseStore([]byte("favorites: ["))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse store YAML")
}

func TestStore_Favorites(t *testing.T) {
	s := NewStore()

	assert.True(t, s.AddFavorite("/a"))
	assert.True(t, s.AddFavorite("/b"))
	assert.False(t, s.AddFavorite("/a"))
	assert.Equal(t, []string{"/a", "/b"}, s.Favorites)

	s.RemoveFavorite(5)
	s.RemoveFavorite(-1)
	assert.Len(t, s.Favorites, 2)

	s.RemoveFavorite(0)
	assert.Equal(t, []string{"/b"}, s.Favorites)
}

func TestStore_Touch(t *testing.T) {
	s := NewStore()
	s.MaxRecents = 3

	s.Touch("/a")
	s.Touch("/b")
	s.Touch("/c")
	assert.Equal(t, []string{"/c", "/b", "/a"}, s.Recents)

	s.Touch("/a")
	assert.Equal(t, []string{"/a", "/c", "/b"}, s.Recents)

	s.Touch("/d")
	assert.Equal(t, []string{"/d", "/a", "/c"}, s.Recents)

	s.RemoveRecent(1)
	assert.Equal(t, []string{"/d", "/c"}, s.Recents)
}
