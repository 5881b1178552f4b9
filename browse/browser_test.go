package browse

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inspector-kit/widget"
	"inspector-kit/widget/widgettest"
)

func newBrowser(t *testing.T, opts ...Option) (*FileBrowser, *widgettest.Recorder) {
	t.Helper()

	rec := widgettest.New()
	b, err := New(assetFs(t), "/assets", rec, opts...)
	require.NoError(t, err)

	return b, rec
}

func TestNew_MissingRoot(t *testing.T) {
	_, err := New(afero.NewMemMapFs(), "/nowhere", widgettest.New())
	assert.Error(t, err)
}

func TestFileBrowser_Open(t *testing.T) {
	b, _ := newBrowser(t)

	assert.Equal(t, "/assets", b.Root())
	assert.Equal(t, "/assets", b.CurrentDirectory())
	assert.Equal(t, []string{"models", "textures", "logo.png", "readme.txt"}, entryNames(b.Items()))
	assert.True(t, b.HasParent())
	require.NotNil(t, b.Tree())
	assert.Len(t, b.Tree().Children, 2)
}

func TestFileBrowser_DrawLayout(t *testing.T) {
	b, rec := newBrowser(t)

	b.Draw()

	assert.Equal(t, []string{LocalHeader, FavoritesHeader, RecentHeader}, rec.Labels("CollapsingHeader"))
	assert.Equal(t, []string{"##textures"}, rec.Labels("TreeNode"))
	assert.Equal(t, []string{"##models", "##wood"}, rec.Labels("TreeLeaf"))
	assert.Equal(t, []string{"models", "textures", "wood", "models", "textures", "logo.png", "readme.txt"},
		rec.Labels("Selectable"))

	// Two folders and one image get thumbnails; the text file doesn't.
	assert.Equal(t, 3, rec.Count("Image", ""))
	assert.True(t, rec.Has("Text", NoThumbnail))
	assert.Equal(t, []string{"3", "1"}, rec.Labels("Columns"))
}

func TestFileBrowser_DetailColumns(t *testing.T) {
	b, rec := newBrowser(t)
	b.ShowAsDetail = true

	b.Draw()

	assert.Equal(t, []string{"1", "1"}, rec.Labels("Columns"))
}

func TestFileBrowser_ItemClickOpensNextFrame(t *testing.T) {
	b, rec := newBrowser(t)
	rec.Close(LocalHeader)

	rec.Click("textures", widget.MouseLeft)
	b.Draw()
	assert.Equal(t, "/assets", b.CurrentDirectory())

	rec.Reset()
	b.Draw()
	assert.Equal(t, "/assets/textures", b.CurrentDirectory())
	assert.Equal(t, []string{"wood", "stone.png"}, rec.Labels("Selectable"))

	// Files don't navigate.
	rec.Click("stone.png", widget.MouseLeft)
	b.Draw()
	b.Draw()
	assert.Equal(t, "/assets/textures", b.CurrentDirectory())
}

func TestFileBrowser_TreeClickOpens(t *testing.T) {
	b, rec := newBrowser(t)

	rec.Click("wood", widget.MouseLeft)
	b.Draw()

	assert.Equal(t, "/assets/textures/wood", b.CurrentDirectory())
	assert.Equal(t, []string{"grain.bmp"}, entryNames(b.Items()))

	// The current directory is highlighted in the tree.
	rec.Reset()
	b.Draw()
	assert.Equal(t, []string{"wood"}, rec.Labels("Selectable*"))
}

func TestFileBrowser_MenuBar(t *testing.T) {
	b, rec := newBrowser(t)
	require.NoError(t, b.SetDirectory("/assets/textures"))

	b.DrawMenuBar()
	assert.True(t, rec.Has("Button", ParentLabel))
	assert.True(t, rec.Has("Text", "/assets/textures"))

	rec.Click(ParentLabel, widget.MouseLeft)
	b.DrawMenuBar()
	assert.Equal(t, "/assets", b.CurrentDirectory())

	rec.Click(DetailsLabel, widget.MouseLeft)
	b.DrawMenuBar()
	assert.True(t, b.ShowAsDetail)

	rec.Click(FavoriteLabel, widget.MouseLeft)
	b.DrawMenuBar()
	rec.Click(FavoriteLabel, widget.MouseLeft)
	b.DrawMenuBar()
	assert.Equal(t, []string{"/assets"}, b.Store.Favorites)
}

func TestFileBrowser_NoParentAtRoot(t *testing.T) {
	rec := widgettest.New()
	b, err := New(assetFs(t), "/", rec)
	require.NoError(t, err)

	assert.False(t, b.HasParent())
	require.NoError(t, b.Parent())
	assert.Equal(t, "/", b.CurrentDirectory())

	b.DrawMenuBar()
	assert.False(t, rec.Has("Button", ParentLabel))
}

func TestFileBrowser_Filter(t *testing.T) {
	b, rec := newBrowser(t)

	rec.Edit(FilterLabel, "png")
	b.DrawMenuBar()

	assert.Equal(t, []string{"logo.png"}, entryNames(b.Visible()))

	b.Filter.Set("-png")
	assert.Equal(t, []string{"models", "textures", "readme.txt"}, entryNames(b.Visible()))
}

func TestFileBrowser_Exclude(t *testing.T) {
	b, rec := newBrowser(t)
	b.ExcludeFunc = func(path string) bool { return strings.HasSuffix(path, ".txt") }
	rec.Close(LocalHeader)

	b.Draw()

	assert.Equal(t, []string{"models", "textures", "logo.png"}, rec.Labels("Selectable"))
	assert.False(t, rec.Has("Text", NoThumbnail))
}

func TestFileBrowser_Favorites(t *testing.T) {
	b, rec := newBrowser(t)
	b.Store.AddFavorite("/assets/textures")
	rec.Close(LocalHeader)

	b.Draw()
	assert.True(t, rec.Has("Text", "assets/textures"))

	rec.Click("assets/textures", widget.MouseLeft)
	b.Draw()
	assert.Equal(t, "/assets/textures", b.CurrentDirectory())

	rec.Click("assets/textures", widget.MouseRight)
	rec.Click(RemoveLabel, widget.MouseLeft)
	b.Draw()
	assert.Equal(t, []string{FavoritePopup}, rec.Labels("OpenPopup"))
	assert.Empty(t, b.Store.Favorites)
}

func TestFileBrowser_DragTouchesRecents(t *testing.T) {
	b, rec := newBrowser(t)
	rec.Close(LocalHeader)

	rec.DragFrom("logo.png")
	b.Draw()

	assert.Equal(t, []string{"/assets/logo.png"}, rec.Payloads)
	assert.Equal(t, []string{AssetPayload}, rec.Labels("SetDragDropPayload"))
	assert.Equal(t, []string{"/assets"}, b.Store.Recents)

	// Recents list the directory on the next frame.
	rec.Reset()
	b.Draw()
	assert.True(t, rec.Has("Text", "assets"))
}

func TestFileBrowser_RemoveRecent(t *testing.T) {
	b, rec := newBrowser(t)
	b.Store.Touch("/assets/models")
	rec.Close(LocalHeader)

	rec.Click("assets/models", widget.MouseRight)
	rec.Click(RemoveLabel, widget.MouseLeft)
	b.Draw()

	assert.Equal(t, []string{RecentPopup}, rec.Labels("OpenPopup"))
	assert.Empty(t, b.Store.Recents)
}

func TestFileBrowser_OpenFromContextMenu(t *testing.T) {
	b, rec := newBrowser(t)
	rec.Close(LocalHeader)

	var opened []string
	b.OpenFunc = func(path string) { opened = append(opened, path) }

	rec.Click("readme.txt", widget.MouseRight)
	rec.Click(OpenLabel, widget.MouseLeft)
	b.Draw()

	assert.Equal(t, []string{ItemPopup}, rec.Labels("OpenPopup"))
	assert.Equal(t, []string{"/assets/readme.txt"}, opened)
}

func TestFileBrowser_ThumbnailsReused(t *testing.T) {
	thumbs := NewThumbCache(assetFs(t))
	b, _ := newBrowser(t, WithThumbCache(thumbs))

	b.Draw()
	b.Draw()

	hits, ok := thumbs.Hits("/assets/logo.png")
	require.True(t, ok)
	assert.Equal(t, 1, hits)
	assert.Same(t, thumbs, b.Thumbnails())
}

func TestFileBrowser_SharedStore(t *testing.T) {
	store := NewStore()
	b, _ := newBrowser(t, WithStore(store))

	b.AddFavorite()
	assert.Equal(t, []string{"/assets"}, store.Favorites)
}

func TestFileBrowser_DrawAsWindow(t *testing.T) {
	b, rec := newBrowser(t)

	b.DrawAsWindow("Assets")

	assert.Equal(t, []string{"Assets"}, rec.Labels("Begin"))
	assert.True(t, rec.Has("BeginMenuBar", ""))
	assert.True(t, rec.Has("End", ""))
	assert.True(t, rec.Has("CollapsingHeader", LocalHeader))
}
