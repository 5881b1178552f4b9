package browse

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))

	return buf.Bytes()
}

func encodeBMP(t *testing.T, w, h int) []byte {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, bmp.Encode(&buf, image.NewGray(image.Rect(0, 0, w, h))))

	return buf.Bytes()
}

// assetFs builds:
//
//	/assets/logo.png
//	/assets/readme.txt
//	/assets/models/ship.obj
//	/assets/textures/stone.png
//	/assets/textures/wood/grain.bmp
func assetFs(t *testing.T) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/assets/models", 0o755))
	require.NoError(t, fs.MkdirAll("/assets/textures/wood", 0o755))

	files := map[string][]byte{
		"/assets/logo.png":                encodePNG(t, 256, 128),
		"/assets/readme.txt":              []byte("hello\n"),
		"/assets/models/ship.obj":         []byte("v 0 0 0\n"),
		"/assets/textures/stone.png":      encodePNG(t, 64, 64),
		"/assets/textures/wood/grain.bmp": encodeBMP(t, 10, 10),
	}

	for path, data := range files {
		require.NoError(t, afero.WriteFile(fs, path, data, 0o644))
	}

	return fs
}
