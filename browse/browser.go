package browse

import (
	"fmt"
	"image"
	"path/filepath"
	"strconv"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"inspector-kit/widget"
)

// Labels, popup IDs and the drag-drop payload kind of the browser.
const (
	AssetPayload = "U_ASSET"

	FavoritePopup = "#favorite_ctx"
	RecentPopup   = "#recents_ctx"
	ItemPopup     = "##asset_browser_popup"

	LocalHeader     = "LOCAL"
	FavoritesHeader = "FAVORITES"
	RecentHeader    = "RECENT"

	ParentLabel   = "Up"
	DetailsLabel  = "Details"
	FavoriteLabel = "+Favorite"
	FilterLabel   = "Filter"
	RemoveLabel   = "Remove"
	OpenLabel     = "Open"
	NoThumbnail   = "???"
)

// Item and icon sizes in pixels.
const (
	iconSize       = 16
	tileSize       = 128
	detailTileSize = 48
	detailColumn   = 256
)

// FileBrowser lists the current directory next to the directory tree,
// favorites and recents. Clicking a directory item opens it on the next
// frame; dragging an item emits an AssetPayload with its path.
type FileBrowser struct {
	// ShowAsDetail draws small tiles with the name beside them.
	ShowAsDetail bool
	// Filter hides items whose name does not pass.
	Filter *widget.TextFilter
	// Store keeps favorites and recents.
	Store *Store
	// ExcludeFunc hides items from the listing when it returns true.
	ExcludeFunc func(path string) bool
	// OpenFunc is called from the item context menu.
	OpenFunc func(path string)

	root    string
	current string
	pending string
	items   []Entry
	tree    *DirNode

	lister *Lister
	thumbs *ThumbCache
	r      widget.Renderer
	logger *zap.Logger
}

// Option configures a FileBrowser.
type Option func(*FileBrowser)

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(b *FileBrowser) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithStore shares a favorites store.
func WithStore(s *Store) Option {
	return func(b *FileBrowser) {
		if s != nil {
			b.Store = s
		}
	}
}

// WithThumbCache shares a thumbnail cache.
func WithThumbCache(c *ThumbCache) Option {
	return func(b *FileBrowser) {
		if c != nil {
			b.thumbs = c
		}
	}
}

// New creates a browser rooted at root and opens it.
func New(fs afero.Fs, root string, r widget.Renderer, opts ...Option) (*FileBrowser, error) {
	b := &FileBrowser{
		Filter: widget.NewTextFilter(""),
		Store:  NewStore(),
		root:   filepath.Clean(root),
		lister: NewLister(fs),
		r:      r,
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(b)
	}

	if b.thumbs == nil {
		b.thumbs = NewThumbCache(fs, WithThumbLogger(b.logger))
	}

	if err := b.Refresh(); err != nil {
		return nil, err
	}

	if err := b.SetDirectory(b.root); err != nil {
		return nil, err
	}

	return b, nil
}

// Root returns the root of the directory tree.
func (b *FileBrowser) Root() string { return b.root }

// CurrentDirectory returns the listed directory.
func (b *FileBrowser) CurrentDirectory() string { return b.current }

// Tree returns the directory tree under the root.
func (b *FileBrowser) Tree() *DirNode { return b.tree }

// Thumbnails returns the thumbnail cache.
func (b *FileBrowser) Thumbnails() *ThumbCache { return b.thumbs }

// Items returns the listing of the current directory.
func (b *FileBrowser) Items() []Entry { return b.items }

// Visible returns the items that pass ExcludeFunc and the filter.
func (b *FileBrowser) Visible() []Entry {
	var out []Entry

	for _, e := range b.items {
		if b.ExcludeFunc != nil && b.ExcludeFunc(e.Path) {
			continue
		}

		if !b.Filter.Pass(e.Name) {
			continue
		}

		out = append(out, e)
	}

	return out
}

// Refresh rebuilds the directory tree.
func (b *FileBrowser) Refresh() error {
	tree, err := b.lister.Tree(b.root)
	if err != nil {
		return fmt.Errorf("reading directory tree: %w", err)
	}

	b.tree = tree

	return nil
}

// SetDirectory lists dir and makes it current.
func (b *FileBrowser) SetDirectory(dir string) error {
	dir = filepath.Clean(dir)

	items, err := b.lister.List(dir)
	if err != nil {
		return err
	}

	b.current = dir
	b.items = items
	b.pending = ""

	return nil
}

// HasParent reports whether the current directory has a parent.
func (b *FileBrowser) HasParent() bool {
	return filepath.Dir(b.current) != b.current
}

// Parent opens the parent of the current directory.
func (b *FileBrowser) Parent() error {
	if !b.HasParent() {
		return nil
	}

	return b.SetDirectory(filepath.Dir(b.current))
}

// AddFavorite adds the current directory to the favorites.
func (b *FileBrowser) AddFavorite() bool {
	return b.Store.AddFavorite(b.current)
}

// DrawAsWindow draws the browser inside a window with a menu bar.
func (b *FileBrowser) DrawAsWindow(title string) {
	if b.r.Begin(title, widget.WindowMenuBar|widget.WindowResizeFromAnySide) {
		b.DrawMenuBar()
		b.Draw()
	}

	b.r.End()
}

// DrawMenuBar draws parent navigation, the current path, the filter, the
// detail toggle and the add-favorite button.
func (b *FileBrowser) DrawMenuBar() {
	r := b.r
	if !r.BeginMenuBar() {
		return
	}

	if b.HasParent() {
		if r.Button(ParentLabel) {
			b.navigate(filepath.Dir(b.current))
		}

		widget.Tooltip(r, "To parent directory")
	}

	r.Text(b.current)
	r.PushItemWidth(r.ContentWidth()*0.7 - 70)
	b.Filter.Draw(r, FilterLabel)
	r.PopItemWidth()
	r.SameLine()

	if r.Button(DetailsLabel) {
		b.ShowAsDetail = !b.ShowAsDetail
	}

	widget.Tooltip(r, "Toggle details view")

	if r.Button(FavoriteLabel) {
		b.AddFavorite()
	}

	widget.Tooltip(r, "Add to favorites")
	r.EndMenuBar()
}

// Draw draws the sidebar followed by the items of the current directory.
func (b *FileBrowser) Draw() {
	if b.pending != "" && b.pending != b.current {
		b.navigate(b.pending)
	}

	b.pending = ""
	r := b.r

	if r.CollapsingHeader(LocalHeader) && b.tree != nil {
		b.drawTree(b.tree)
	}

	if r.CollapsingHeader(FavoritesHeader) {
		if i, ok := b.drawShortcuts(b.Store.Favorites, FavoritePopup); ok {
			b.Store.RemoveFavorite(i)
		}
	}

	if r.CollapsingHeader(RecentHeader) {
		if i, ok := b.drawShortcuts(b.Store.Recents, RecentPopup); ok {
			b.Store.RemoveRecent(i)
		}
	}

	r.Separator()
	b.drawItems()
}

func (b *FileBrowser) drawTree(node *DirNode) {
	r := b.r

	for i, child := range node.Children {
		r.PushID(strconv.Itoa(i))

		selected := child.Path == b.current
		flags := widget.TreeNodeNone

		if child.IsLeaf() {
			flags |= widget.TreeNodeLeaf
		}

		if selected {
			flags |= widget.TreeNodeSelected
		}

		open := r.TreeNode("##"+child.Name, flags)
		r.SameLine()
		r.Selectable(child.Name, selected)

		if r.IsItemClicked(widget.MouseLeft) && !selected {
			b.navigate(child.Path)
		}

		if open {
			if !child.IsLeaf() {
				b.drawTree(child)
			}

			r.TreePop()
		}

		r.PopID()
	}
}

// drawShortcuts draws a favorites or recents list and returns the index
// removed through its context menu.
func (b *FileBrowser) drawShortcuts(dirs []string, popup string) (int, bool) {
	r := b.r
	removed, ok := -1, false

	r.Indent()

	for i, dir := range dirs {
		r.PushID(strconv.Itoa(i + 1))

		if thumb := b.thumbnail(dir); thumb != nil {
			r.Image(thumb, widget.Vec2{iconSize, iconSize})
			r.SameLine()
		}

		r.Text(shortName(dir))

		switch {
		case r.IsItemClicked(widget.MouseLeft):
			b.navigate(dir)
		case r.IsItemClicked(widget.MouseRight):
			r.OpenPopup(popup)
		}

		if r.BeginPopup(popup) {
			if r.Button(RemoveLabel) {
				removed, ok = i, true
			}

			r.EndPopup()
		}

		r.PopID()
	}

	r.Unindent()

	return removed, ok
}

func (b *FileBrowser) drawItems() {
	r := b.r

	size, column := float32(tileSize), float32(tileSize)
	if b.ShowAsDetail {
		size, column = detailTileSize, detailColumn
	}

	r.Columns(max(1, int(r.ContentWidth()/column)))

	for i, e := range b.Visible() {
		r.PushID(strconv.Itoa(i))
		b.drawItem(e, size)
		r.PopID()
		r.NextColumn()
	}

	r.Columns(1)
}

func (b *FileBrowser) drawItem(e Entry, size float32) {
	r := b.r
	thumb := b.thumbnail(e.Path)

	if thumb != nil {
		r.Image(thumb, widget.Vec2{size - 20, size - 16})
	} else {
		r.Text(NoThumbnail)
	}

	if b.ShowAsDetail {
		r.SameLine()
	}

	r.Selectable(e.Name, false)

	if !b.ShowAsDetail {
		widget.Tooltip(r, e.Path)
	}

	switch {
	case !r.IsPopupOpen() && r.BeginDragDropSource():
		b.Store.Touch(b.current)
		r.SetDragDropPayload(AssetPayload, e.Path)

		if thumb != nil {
			r.Image(thumb, widget.Vec2{tileSize, tileSize})
		}

		r.Text(e.Name)
		r.EndDragDropSource()
	case r.IsItemClicked(widget.MouseLeft):
		if e.IsDir {
			b.pending = e.Path
		}
	case r.IsItemClicked(widget.MouseRight):
		r.OpenPopup(ItemPopup)
	}

	if r.BeginPopup(ItemPopup) {
		if r.Button(OpenLabel) && b.OpenFunc != nil {
			b.OpenFunc(e.Path)
		}

		r.EndPopup()
	}
}

func (b *FileBrowser) navigate(dir string) {
	if err := b.SetDirectory(dir); err != nil {
		b.logger.Warn("cannot open directory", zap.String("dir", dir), zap.Error(err))
	}
}

func (b *FileBrowser) thumbnail(path string) image.Image {
	img, err := b.thumbs.GetOrCreate(path)
	if err != nil {
		b.logger.Debug("no thumbnail", zap.String("path", path), zap.Error(err))
		return nil
	}

	return img
}

// shortName returns the last two elements of path, e.g. "textures/wood".
func shortName(path string) string {
	parent := filepath.Base(filepath.Dir(path))
	if parent == string(filepath.Separator) || parent == "." {
		return filepath.Base(path)
	}

	return filepath.Join(parent, filepath.Base(path))
}
