// Package browse implements the asset file browser: a directory lister, a
// thumbnail cache, the favorites/recents store and the FileBrowser panel
// drawn through widget.Renderer.
//
// All filesystem access goes through afero so hosts and tests can swap the
// backing filesystem:
//
//	fs := afero.NewOsFs()
//	b, err := browse.New(fs, "/assets", renderer)
//	...
//	b.DrawAsWindow("Assets")
//
// Thumbnails are decoded once per path and counted on every reuse;
// ThumbCache.Clear evicts rarely used entries.
package browse
