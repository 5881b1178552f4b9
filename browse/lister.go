package browse

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/afero"
)

// sniffLen is how much of a file is read to detect its content type.
const sniffLen = 3072

// Entry is one item of a directory listing.
type Entry struct {
	Name    string
	Path    string
	IsDir   bool
	Size    int64
	ModTime time.Time
}

// DirNode is a directory and its subdirectories.
type DirNode struct {
	Name     string
	Path     string
	Children []*DirNode
}

// IsLeaf reports whether n has no subdirectories.
func (n *DirNode) IsLeaf() bool { return len(n.Children) == 0 }

// Lister reads directories from an afero filesystem.
type Lister struct {
	fs afero.Fs
}

// NewLister creates a Lister over fs.
func NewLister(fs afero.Fs) *Lister {
	return &Lister{fs: fs}
}

// Fs returns the backing filesystem.
func (l *Lister) Fs() afero.Fs { return l.fs }

// List returns the entries of dir, directories first, each group sorted by
// name.
func (l *Lister) List(dir string) ([]Entry, error) {
	infos, err := afero.ReadDir(l.fs, dir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}

	entries := make([]Entry, 0, len(infos))
	for _, info := range infos {
		entries = append(entries, Entry{
			Name:    info.Name(),
			Path:    filepath.Join(dir, info.Name()),
			IsDir:   info.IsDir(),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	slices.SortStableFunc(entries, func(a, b Entry) int {
		switch {
		case a.IsDir && !b.IsDir:
			return -1
		case !a.IsDir && b.IsDir:
			return 1
		default:
			return cmp.Compare(a.Name, b.Name)
		}
	})

	return entries, nil
}

// Tree returns root and all directories below it.
func (l *Lister) Tree(root string) (*DirNode, error) {
	node := &DirNode{Name: filepath.Base(root), Path: root}

	entries, err := l.List(root)
	if err != nil {
		return nil, err
	}

	for _, e := range entries {
		if !e.IsDir {
			continue
		}

		child, err := l.Tree(e.Path)
		if err != nil {
			return nil, err
		}

		node.Children = append(node.Children, child)
	}

	return node, nil
}

// IsDir reports whether path is an existing directory.
func (l *Lister) IsDir(path string) bool {
	ok, err := afero.IsDir(l.fs, path)
	return err == nil && ok
}

// DetectMIME returns the content type of the file at path.
func (l *Lister) DetectMIME(path string) (*mimetype.MIME, error) {
	f, err := l.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	head, err := readHead(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return mimetype.Detect(head), nil
}

func readHead(r io.Reader) ([]byte, error) {
	var buf bytes.Buffer

	_, err := io.CopyN(&buf, r, sniffLen)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	return buf.Bytes(), nil
}
