package cli

import (
	"bytes"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inspector-kit/browse"
)

func execute(t *testing.T, fs afero.Fs, args ...string) (string, string, error) {
	t.Helper()

	color.NoColor = true

	root := NewRootCommand(fs)

	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)

	err := root.Execute()

	return out.String(), errOut.String(), err
}

func TestDescribe_Ordered(t *testing.T) {
	out, _, err := execute(t, afero.NewMemMapFs(), "describe", "Player")
	require.NoError(t, err)

	name := strings.Index(out, "Name")
	health := strings.Index(out, "Health")
	level := strings.Index(out, "Level")

	assert.Less(t, name, health)
	assert.Less(t, health, level)
	assert.Contains(t, out, "Upper bound of health")
	assert.NotContains(t, out, "DebugID")
}

func TestDescribe_Grouped(t *testing.T) {
	out, _, err := execute(t, afero.NewMemMapFs(), "describe", "--view", ViewGrouped, "Player")
	require.NoError(t, err)

	assert.Contains(t, out, "Stats\n  Health")
	assert.Contains(t, out, "Transform\n  Position")
}

func TestDescribe_Alphabetical(t *testing.T) {
	out, _, err := execute(t, afero.NewMemMapFs(), "describe", "--view", ViewAlphabetical, "Light")
	require.NoError(t, err)

	assert.Less(t, strings.Index(out, "Casts Shadows"), strings.Index(out, "Color"))
	assert.Less(t, strings.Index(out, "Intensity"), strings.Index(out, "Radius"))
}

func TestDescribe_Dump(t *testing.T) {
	out, _, err := execute(t, afero.NewMemMapFs(), "describe", "--dump", "Player")
	require.NoError(t, err)

	assert.Contains(t, out, "AccessName")
	assert.Contains(t, out, `"MaxHP"`)
	assert.Contains(t, out, `"Neutral"`)
}

func TestDescribe_Errors(t *testing.T) {
	_, _, err := execute(t, afero.NewMemMapFs(), "describe", "Nope")
	require.ErrorIs(t, err, ErrUnknownType)
	assert.Contains(t, err.Error(), "Player")

	_, _, err = execute(t, afero.NewMemMapFs(), "describe", "Plyer")
	require.ErrorIs(t, err, ErrUnknownType)
	assert.Contains(t, err.Error(), "did you mean Player?")

	_, _, err = execute(t, afero.NewMemMapFs(), "describe", "--view", "sideways", "Player")
	require.ErrorIs(t, err, ErrUnknownView)

	_, _, err = execute(t, afero.NewMemMapFs(), "describe")
	assert.Error(t, err)
}

func TestGen_WritesFiles(t *testing.T) {
	fs := afero.NewMemMapFs()

	out, errOut, err := execute(t, fs, "gen", "--out", "/out", "Player")
	require.NoError(t, err)

	assert.Contains(t, out, "wrote /out/scene_player_inspector.go")
	assert.Contains(t, errOut, "omitted-kind")

	data, err := afero.ReadFile(fs, "/out/scene_player_inspector.go")
	require.NoError(t, err)

	src := string(data)
	assert.Contains(t, src, "package inspectors")
	assert.Contains(t, src, "func DrawPlayer(r widget.Renderer")
	assert.Contains(t, src, "obj.SetLevel(")
}

func TestGen_AllTypes(t *testing.T) {
	fs := afero.NewMemMapFs()

	_, _, err := execute(t, fs, "gen", "--out", "/out")
	require.NoError(t, err)

	for _, name := range []string{"component", "entity", "light", "player"} {
		ok, err := afero.Exists(fs, "/out/scene_"+name+"_inspector.go")
		require.NoError(t, err)
		assert.True(t, ok, name)
	}
}

func TestGen_Stdout(t *testing.T) {
	fs := afero.NewMemMapFs()

	out, errOut, err := execute(t, fs, "gen", "--stdout", "--out", "/out", "Light")
	require.NoError(t, err)

	assert.Contains(t, out, "// scene_light_inspector.go")
	assert.Contains(t, out, "func DrawLight(")
	assert.Contains(t, errOut, "omitted-accessor")
	assert.Equal(t, 1, strings.Count(errOut, "Intensity: [omitted-accessor]"))
	assert.Contains(t, errOut, "info: [inspector-kit/examples/scene.Light]: [no-members]")
	assert.Contains(t, out, "if _, ok := target.(*scene.Light); !ok")

	exists, err := afero.DirExists(fs, "/out")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestGen_ConfigFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/cfg/inspectgen.yaml", []byte(`
gen:
  package: custom
  output_dir: /custom
  comments: false
`), 0o644))

	_, _, err := execute(t, fs, "--config", "/cfg/inspectgen.yaml", "gen", "Component")
	require.NoError(t, err)

	data, err := afero.ReadFile(fs, "/custom/scene_component_inspector.go")
	require.NoError(t, err)
	assert.Contains(t, string(data), "package custom")
	assert.NotContains(t, string(data), "without reflection")

	// Flags beat the file.
	out, _, err := execute(t, fs, "--config", "/cfg/inspectgen.yaml", "gen", "--stdout", "--package", "flagged", "Component")
	require.NoError(t, err)
	assert.Contains(t, out, "package flagged")
}

func TestGen_Env(t *testing.T) {
	t.Setenv("INSPECTGEN_GEN_PACKAGE", "fromenv")

	out, _, err := execute(t, afero.NewMemMapFs(), "gen", "--stdout", "Component")
	require.NoError(t, err)
	assert.Contains(t, out, "package fromenv")
}

func TestGen_Errors(t *testing.T) {
	_, _, err := execute(t, afero.NewMemMapFs(), "gen", "--package", "not valid", "Component")
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, _, err = execute(t, afero.NewMemMapFs(), "gen", "Nope")
	require.ErrorIs(t, err, ErrUnknownType)

	_, _, err = execute(t, afero.NewMemMapFs(), "--config", "/missing.yaml", "gen")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")

	_, _, err = execute(t, afero.NewReadOnlyFs(afero.NewMemMapFs()), "gen", "--out", "/out", "Component")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating output directory")
}

func TestLs(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/assets/models", 0o755))
	require.NoError(t, afero.WriteFile(fs, "/assets/notes.txt", []byte("todo\n"), 0o644))

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 256, 128))))
	require.NoError(t, afero.WriteFile(fs, "/assets/logo.png", buf.Bytes(), 0o644))

	out, _, err := execute(t, fs, "ls", "/assets")
	require.NoError(t, err)

	assert.Contains(t, out, "models/")
	assert.Contains(t, out, "directory")
	assert.Contains(t, out, "image/png")
	assert.Contains(t, out, "128x64")
	assert.Contains(t, out, "text/plain")
	assert.NotContains(t, out, "Favorites:")
}

func TestLs_Favorite(t *testing.T) {
	t.Setenv("INSPECTGEN_BROWSE_STORE", "/state/browse.yaml")

	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/assets", 0o755))

	for range 2 {
		out, _, err := execute(t, fs, "ls", "--favorite", "/assets")
		require.NoError(t, err)
		assert.Contains(t, out, "Favorites:\n  /assets\n")
	}

	store, err := browse.LoadStore(fs, "/state/browse.yaml")
	require.NoError(t, err)
	assert.Equal(t, []string{"/assets"}, store.Favorites)
}

func TestLs_Missing(t *testing.T) {
	_, _, err := execute(t, afero.NewMemMapFs(), "ls", "/nowhere")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, afero.NewMemMapFs(), "version")
	require.NoError(t, err)

	assert.Contains(t, out, "inspectgen version: dev")
	assert.Contains(t, out, "Go version:")
}
