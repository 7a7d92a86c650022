package wallpaper

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func newResolver(t *testing.T) (*Resolver, string) {
	t.Helper()
	root := t.TempDir()
	return NewResolver(filepath.Join(root, "backup"), "", zerolog.Nop()), root
}

func TestParseLocation(t *testing.T) {
	cases := []struct {
		path    string
		variant Variant
		base    string
	}{
		{"/w/mountains.jpg", Original, "mountains.jpg"},
		{"/w/mountains-todowall.jpg", Annotated, "mountains.jpg"},
		{"/w/archive.tar-todowall.gz", Annotated, "archive.tar.gz"},
		{"/w/noext-todowall", Annotated, "noext"},
		{"/w/todowall.png", Original, "todowall.png"},
	}
	for _, tc := range cases {
		loc := ParseLocation(tc.path, DefaultMarker)
		assert.Equal(t, tc.variant, loc.Variant, tc.path)
		assert.Equal(t, tc.path, loc.Path)
		assert.Equal(t, tc.base, BaseName(tc.path, DefaultMarker), tc.path)
	}

	assert.Equal(t, "a-todowall.png", AnnotatedName("a.png", DefaultMarker))
	assert.Equal(t, "noext-todowall", AnnotatedName("noext", DefaultMarker))
}

func TestResolveFirstRunCreatesBackup(t *testing.T) {
	r, root := newResolver(t)
	active := filepath.Join(root, "pictures", "lake.png")
	writeFile(t, active, "lake-v1")

	pair, err := r.Resolve(active)
	require.NoError(t, err)

	assert.Equal(t, Location{Path: filepath.Join(r.Dir(), "lake.png"), Variant: Original}, pair.Original)
	assert.Equal(t, Location{Path: filepath.Join(r.Dir(), "lake-todowall.png"), Variant: Annotated}, pair.Annotated)
	assert.Equal(t, "lake-v1", readFile(t, pair.Original.Path))
	assert.NoFileExists(t, pair.Annotated.Path)
}

func TestResolveIsIdempotent(t *testing.T) {
	r, root := newResolver(t)
	active := filepath.Join(root, "pictures", "lake.png")
	writeFile(t, active, "lake-v1")

	first, err := r.Resolve(active)
	require.NoError(t, err)

	// 第二次不应再复制：修改源文件后备份内容保持不变
	writeFile(t, active, "lake-v2")
	second, err := r.Resolve(active)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "lake-v1", readFile(t, second.Original.Path))
}

func TestResolveRoundTrip(t *testing.T) {
	r, root := newResolver(t)
	active := filepath.Join(root, "pictures", "lake.png")
	writeFile(t, active, "lake")

	fromOriginal, err := r.Resolve(active)
	require.NoError(t, err)

	fromAnnotated, err := r.Resolve(fromOriginal.Annotated.Path)
	require.NoError(t, err)
	assert.Equal(t, fromOriginal, fromAnnotated)

	again, err := r.Resolve(fromOriginal.Original.Path)
	require.NoError(t, err)
	assert.Equal(t, fromOriginal, again)
}

func TestResolveAnnotatedWithoutBackupDir(t *testing.T) {
	r, root := newResolver(t)
	active := filepath.Join(root, "pictures", "lake-todowall.png")
	writeFile(t, active, "annotated")

	_, err := r.Resolve(active)
	require.ErrorIs(t, err, ErrOriginalMissing)
	assert.NoDirExists(t, r.Dir())
}

func TestResolveSelfHealsMissingOriginal(t *testing.T) {
	r, root := newResolver(t)
	require.NoError(t, os.MkdirAll(r.Dir(), 0o755))
	active := filepath.Join(root, "pictures", "forest.jpg")
	writeFile(t, active, "forest")

	pair, err := r.Resolve(active)
	require.NoError(t, err)
	assert.Equal(t, "forest", readFile(t, pair.Original.Path))
}

func TestResolveRefusesAnnotatedAsOriginal(t *testing.T) {
	r, _ := newResolver(t)
	active := filepath.Join(r.Dir(), "forest-todowall.jpg")
	writeFile(t, active, "stale annotated copy")

	_, err := r.Resolve(active)
	require.ErrorIs(t, err, ErrOriginalMissing)
	assert.NoFileExists(t, filepath.Join(r.Dir(), "forest.jpg"))
}

func TestResolveCopyFailure(t *testing.T) {
	r, root := newResolver(t)

	_, err := r.Resolve(filepath.Join(root, "pictures", "missing.jpg"))
	require.ErrorIs(t, err, ErrCopyFailed)
	assert.NoFileExists(t, filepath.Join(r.Dir(), "missing.jpg"))
}

func TestResolveBackupPathIsFile(t *testing.T) {
	r, root := newResolver(t)
	writeFile(t, r.Dir(), "not a dir")
	active := filepath.Join(root, "a.jpg")
	writeFile(t, active, "a")

	_, err := r.Resolve(active)
	require.Error(t, err)
}

func TestCustomMarker(t *testing.T) {
	root := t.TempDir()
	r := NewResolver(filepath.Join(root, "backup"), "todo-rs", zerolog.Nop())

	pair := r.Pair(filepath.Join(root, "sea-todo-rs.webp"))
	assert.Equal(t, filepath.Join(r.Dir(), "sea.webp"), pair.Original.Path)
	assert.Equal(t, filepath.Join(r.Dir(), "sea-todo-rs.webp"), pair.Annotated.Path)
}

func TestCopyFileReplacesAtomically(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.png")
	dst := filepath.Join(dir, "dst.png")
	writeFile(t, src, "fresh")
	writeFile(t, dst, "stale")

	require.NoError(t, CopyFile(src, dst))
	assert.Equal(t, "fresh", readFile(t, dst))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "no temp files left behind")

	err = CopyFile(filepath.Join(dir, "nope.png"), dst)
	require.ErrorIs(t, err, ErrCopyFailed)
	assert.Equal(t, "fresh", readFile(t, dst))
}
