package browse

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"

	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/afero"
	"go.uber.org/zap"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"
)

// DefaultThumbSize is the edge length thumbnails are scaled down to.
const DefaultThumbSize = 128

var folderColor = color.RGBA{R: 0xe8, G: 0xb8, B: 0x4a, A: 0xff}

type decoder struct {
	mime   string
	decode func(io.Reader) (image.Image, error)
}

var decoders = []decoder{
	{"image/png", png.Decode},
	{"image/jpeg", jpeg.Decode},
	{"image/gif", gif.Decode},
	{"image/bmp", bmp.Decode},
	{"image/webp", webp.Decode},
	{"image/tiff", tiff.Decode},
}

type thumbRecord struct {
	img  image.Image
	hits int
}

// ThumbCache holds one thumbnail per path. Directories get a folder icon,
// image files a scaled copy, anything else a nil image. Every lookup after
// the first counts as a hit.
//
// ThumbCache is not safe for concurrent use.
type ThumbCache struct {
	fs      afero.Fs
	size    int
	logger  *zap.Logger
	entries map[string]*thumbRecord
	folder  image.Image
}

// ThumbOption configures a ThumbCache.
type ThumbOption func(*ThumbCache)

// WithThumbSize sets the thumbnail edge length.
func WithThumbSize(size int) ThumbOption {
	return func(c *ThumbCache) {
		if size > 0 {
			c.size = size
		}
	}
}

// WithThumbLogger sets the logger.
func WithThumbLogger(logger *zap.Logger) ThumbOption {
	return func(c *ThumbCache) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewThumbCache creates an empty cache reading from fs.
func NewThumbCache(fs afero.Fs, opts ...ThumbOption) *ThumbCache {
	c := &ThumbCache{
		fs:      fs,
		size:    DefaultThumbSize,
		logger:  zap.NewNop(),
		entries: make(map[string]*thumbRecord),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// GetOrCreate returns the thumbnail of path, decoding it on first use.
// A nil image with a nil error means path has no thumbnail.
func (c *ThumbCache) GetOrCreate(path string) (image.Image, error) {
	if rec, ok := c.entries[path]; ok {
		rec.hits++
		return rec.img, nil
	}

	info, err := c.fs.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("thumbnail %s: %w", path, err)
	}

	var img image.Image
	if info.IsDir() {
		img = c.folderIcon()
	} else {
		img, err = c.decode(path)
		if err != nil {
			return nil, err
		}
	}

	c.entries[path] = &thumbRecord{img: img}
	c.logger.Debug("thumbnail created", zap.String("path", path), zap.Bool("image", img != nil))

	return img, nil
}

// Hits returns how often the thumbnail of path was reused.
func (c *ThumbCache) Hits(path string) (int, bool) {
	rec, ok := c.entries[path]
	if !ok {
		return 0, false
	}

	return rec.hits, true
}

// Len returns the number of cached paths.
func (c *ThumbCache) Len() int { return len(c.entries) }

// Clear drops every entry when threshold is 0, otherwise the entries with
// fewer than threshold hits.
func (c *ThumbCache) Clear(threshold int) {
	if threshold == 0 {
		clear(c.entries)
		return
	}

	evicted := 0
	for path, rec := range c.entries {
		if rec.hits < threshold {
			delete(c.entries, path)
			evicted++
		}
	}

	c.logger.Debug("thumbnails evicted", zap.Int("threshold", threshold), zap.Int("evicted", evicted))
}

func (c *ThumbCache) decode(path string) (image.Image, error) {
	f, err := c.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	head, err := readHead(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	mime := mimetype.Detect(head)
	for _, d := range decoders {
		if !mime.Is(d.mime) {
			continue
		}

		src, err := d.decode(io.MultiReader(bytes.NewReader(head), f))
		if err != nil {
			return nil, fmt.Errorf("decoding %s as %s: %w", path, d.mime, err)
		}

		return scale(src, c.size), nil
	}

	return nil, nil
}

func (c *ThumbCache) folderIcon() image.Image {
	if c.folder == nil {
		dst := image.NewRGBA(image.Rect(0, 0, c.size, c.size))
		draw.Draw(dst, dst.Bounds(), image.NewUniform(folderColor), image.Point{}, draw.Src)
		c.folder = dst
	}

	return c.folder
}

// fit returns the bounds of b scaled down to fit a size square, keeping
// the aspect ratio. Smaller images keep their size.
func fit(b image.Rectangle, size int) image.Rectangle {
	w, h := b.Dx(), b.Dy()

	switch {
	case w <= size && h <= size:
		return image.Rect(0, 0, w, h)
	case w >= h:
		return image.Rect(0, 0, size, max(1, h*size/w))
	default:
		return image.Rect(0, 0, max(1, w*size/h), size)
	}
}

func scale(src image.Image, size int) image.Image {
	dst := image.NewRGBA(fit(src.Bounds(), size))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	return dst
}
