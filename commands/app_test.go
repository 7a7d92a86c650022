package commands

import (
	"context"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ByLCY/todowall/desktop"
	"github.com/ByLCY/todowall/executil"
)

const (
	themeQuery    = "gsettings get org.gnome.desktop.interface color-scheme"
	darkWallQuery = "gsettings get org.gnome.desktop.background picture-uri-dark"
	darkWallSet   = "gsettings set org.gnome.desktop.background picture-uri-dark "
)

type harness struct {
	root   string
	backup string
	active string
	exec   *executil.RecordingExecutor
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	root := t.TempDir()
	active := filepath.Join(root, "pictures", "lake.png")
	require.NoError(t, os.MkdirAll(filepath.Dir(active), 0o755))
	img := imaging.New(400, 300, color.NRGBA{R: 90, G: 120, B: 150, A: 0xff})
	require.NoError(t, imaging.Save(img, active))

	return &harness{
		root:   root,
		backup: filepath.Join(root, "backup"),
		active: active,
		exec: &executil.RecordingExecutor{
			Outputs: map[string][]byte{
				themeQuery:    []byte("'prefer-dark'\n"),
				darkWallQuery: []byte("'" + desktop.URIFromPath(active) + "'\n"),
			},
		},
	}
}

func (h *harness) run(t *testing.T, args ...string) error {
	t.Helper()
	flags := &Flags{Exec: h.exec}
	base := []string{
		"todowall",
		"--config", filepath.Join(h.root, "missing.yaml"),
		"--log-file", filepath.Join(h.root, "todowall.log"),
		"--backup-dir", h.backup,
		"--desktop", "ubuntu:GNOME",
	}
	return NewApp(flags, "test").Run(context.Background(), append(base, args...))
}

func TestAnnotateSwitchesWallpaper(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.run(t, "--todo", "water the plants", "--done", "pay rent"))

	original := filepath.Join(h.backup, "lake.png")
	annotated := filepath.Join(h.backup, "lake-todowall.png")
	assert.FileExists(t, original)
	assert.FileExists(t, annotated)

	lines := h.exec.Lines()
	require.NotEmpty(t, lines)
	assert.Equal(t, darkWallSet+desktop.URIFromPath(annotated), lines[len(lines)-1])

	img, err := imaging.Open(annotated)
	require.NoError(t, err)
	assert.Equal(t, 400, img.Bounds().Dx())
}

func TestAnnotateFromListFile(t *testing.T) {
	h := newHarness(t)
	list := filepath.Join(h.root, "today.todo")
	require.NoError(t, os.WriteFile(list, []byte("todo \"ship release\"\ndone \"review PR\"\n"), 0o644))

	require.NoError(t, h.run(t, "--list", list))
	assert.FileExists(t, filepath.Join(h.backup, "lake-todowall.png"))
}

func TestAnnotateWithoutItemsIsNoop(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.run(t))
	assert.Empty(t, h.exec.Lines())
	assert.NoDirExists(t, h.backup)
}

func TestAnnotateUnsupportedDesktop(t *testing.T) {
	h := newHarness(t)
	err := NewApp(&Flags{Exec: h.exec}, "test").Run(context.Background(), []string{
		"todowall",
		"--config", filepath.Join(h.root, "missing.yaml"),
		"--log-file", filepath.Join(h.root, "todowall.log"),
		"--backup-dir", h.backup,
		"--desktop", "KDE",
		"--todo", "x",
	})
	require.ErrorIs(t, err, desktop.ErrUnsupported)
	assert.Empty(t, h.exec.Lines())
	assert.NoDirExists(t, h.backup)
}

func TestRestoreActivatesOriginal(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.run(t, "--todo", "x"))

	annotated := filepath.Join(h.backup, "lake-todowall.png")
	h.exec.Outputs[darkWallQuery] = []byte("'" + desktop.URIFromPath(annotated) + "'\n")
	h.exec.Reset()

	require.NoError(t, h.run(t, "restore"))
	lines := h.exec.Lines()
	require.NotEmpty(t, lines)
	assert.Equal(t, darkWallSet+desktop.URIFromPath(filepath.Join(h.backup, "lake.png")), lines[len(lines)-1])
}

func TestRenderWritesImageOffline(t *testing.T) {
	h := newHarness(t)
	out := filepath.Join(h.root, "out", "lake.jpg")
	debugPlan := filepath.Join(h.root, "out", "plan.json")

	require.NoError(t, h.run(t, "--todo", "x", "render", "--in", h.active, "--out", out, "--theme", "dark", "--debug", debugPlan))
	assert.FileExists(t, out)
	assert.FileExists(t, debugPlan)
	assert.Empty(t, h.exec.Lines(), "render never talks to the desktop")
}

func TestRenderRequiresItems(t *testing.T) {
	h := newHarness(t)
	err := h.run(t, "render", "--in", h.active, "--out", filepath.Join(h.root, "out.png"))
	require.Error(t, err)
	assert.NoFileExists(t, filepath.Join(h.root, "out.png"))
}

func TestInvalidConfigFails(t *testing.T) {
	h := newHarness(t)
	err := h.run(t, "--marker", "bad.marker", "--todo", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "marker")
}
