package scanner

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"diskmap/internal/tree"
)

func writeFiles(t *testing.T, root string, files map[string]int) {
	t.Helper()
	for name, size := range files {
		fullPath := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(fullPath), 0755))
		require.NoError(t, os.WriteFile(fullPath, make([]byte, size), 0644))
	}
}

func TestScan_ZeroByteFilePromoted(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, map[string]int{"empty.txt": 0, "ten.bin": 10})

	root, err := Scan(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, uint64(11), root.Size)
	require.Len(t, root.Children, 2)
	assert.True(t, root.Children[0].IsLeaf())
	assert.True(t, root.Children[1].IsLeaf())
	assert.Equal(t, uint64(10), root.Children[0].Size)
	assert.Equal(t, uint64(1), root.Children[1].Size)
}

func TestScan_AggregatesNestedDirectories(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, map[string]int{
		"file1.txt":              100,
		"subdir/file2.txt":       300,
		"subdir/nested/file3.md": 50,
		"other/file4.go":         20,
	})

	root, err := Scan(tmpDir)
	require.NoError(t, err)
	require.NoError(t, tree.Check(root))

	assert.Equal(t, uint64(470), root.Size)
	require.Len(t, root.Children, 3)
	assert.Equal(t, filepath.Join(tmpDir, "subdir"), root.Children[0].Path)
	assert.Equal(t, uint64(350), root.Children[0].Size)
	assert.Equal(t, filepath.Join(tmpDir, "file1.txt"), root.Children[1].Path)
	assert.Equal(t, filepath.Join(tmpDir, "other"), root.Children[2].Path)

	files, dirs := root.Count()
	assert.Equal(t, 4, files)
	assert.Equal(t, 4, dirs)
}

func TestScan_TiesOrderedByName(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, map[string]int{"c.txt": 5, "a.txt": 5, "b.txt": 5})

	root, err := Scan(tmpDir)
	require.NoError(t, err)

	var names []string
	for _, c := range root.Children {
		names = append(names, filepath.Base(c.Path))
	}
	assert.Equal(t, []string{"a.txt", "b.txt", "c.txt"}, names)
}

func TestScan_EmptyDirectory(t *testing.T) {
	tmpDir := t.TempDir()

	root, err := Scan(tmpDir)
	require.NoError(t, err)

	assert.False(t, root.IsLeaf())
	assert.NotNil(t, root.Children)
	assert.Empty(t, root.Children)
	assert.Equal(t, uint64(0), root.Size)
}

func TestScan_NestedEmptyDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(tmpDir, "empty"), 0755))
	writeFiles(t, tmpDir, map[string]int{"file.txt": 3})

	root, err := Scan(tmpDir)
	require.NoError(t, err)

	require.Len(t, root.Children, 2)
	empty := root.Children[1]
	assert.Equal(t, filepath.Join(tmpDir, "empty"), empty.Path)
	assert.False(t, empty.IsLeaf())
	assert.Equal(t, uint64(0), empty.Size)
	assert.Equal(t, uint64(3), root.Size)
}

func TestScan_SkipsSymlinks(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, map[string]int{"target.bin": 64, "dir/inner.bin": 8})

	if err := os.Symlink(filepath.Join(tmpDir, "target.bin"), filepath.Join(tmpDir, "link.bin")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}
	require.NoError(t, os.Symlink(filepath.Join(tmpDir, "dir"), filepath.Join(tmpDir, "dirlink")))

	root, err := Scan(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, uint64(72), root.Size)
	assert.Len(t, root.Children, 2)
	for _, c := range root.Children {
		assert.NotContains(t, []string{"link.bin", "dirlink"}, filepath.Base(c.Path))
	}
}

func TestScan_SymlinkedRootNotFollowed(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, map[string]int{"real/data.bin": 16})

	link := filepath.Join(tmpDir, "link")
	if err := os.Symlink(filepath.Join(tmpDir, "real"), link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	_, err := Scan(link)
	assert.ErrorIs(t, err, ErrNotDirectory)
}

func TestScan_NonExistentDirectory(t *testing.T) {
	_, err := Scan("/nonexistent/directory")
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestScan_RootIsFile(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, map[string]int{"file.txt": 1})

	_, err := Scan(filepath.Join(tmpDir, "file.txt"))
	assert.ErrorIs(t, err, ErrNotDirectory)
}

func TestScan_PermissionDeniedAborts(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}

	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, map[string]int{"ok.txt": 1, "locked/secret.txt": 1})

	locked := filepath.Join(tmpDir, "locked")
	require.NoError(t, os.Chmod(locked, 0))
	t.Cleanup(func() { os.Chmod(locked, 0755) })

	root, err := Scan(tmpDir)
	require.Error(t, err)
	assert.Nil(t, root)
	assert.True(t, errors.Is(err, fs.ErrPermission))
}

func TestScan_WithExclusions(t *testing.T) {
	tmpDir := t.TempDir()

	files := map[string]bool{
		"file1.txt":           false, // should be included
		"file2.tmp":           true,  // should be excluded (*.tmp)
		"node_modules/lib.js": true,  // should be excluded (node_modules/)
		"src/main.go":         false, // should be included
		"src/gen/out.pb.go":   true,  // should be excluded (src/gen/*)
		".git/config":         true,  // should be excluded (.git/)
	}
	sizes := make(map[string]int, len(files))
	for f := range files {
		sizes[f] = 10
	}
	writeFiles(t, tmpDir, sizes)

	root, err := Scan(tmpDir, WithExclude([]string{"*.tmp", "node_modules/", ".git/", "src/gen/*"}))
	require.NoError(t, err)

	var leaves []string
	for _, leaf := range root.Leaves() {
		relPath, _ := filepath.Rel(tmpDir, leaf.Path)
		leaves = append(leaves, filepath.ToSlash(relPath))
	}
	assert.ElementsMatch(t, []string{"file1.txt", "src/main.go"}, leaves)
	assert.Equal(t, uint64(20), root.Size)
}

func TestShouldExclude(t *testing.T) {
	tests := []struct {
		relPath  string
		isDir    bool
		patterns []string
		want     bool
	}{
		{"a/b/vendor", true, []string{"vendor/"}, true},
		{"a/b/vendor", false, []string{"vendor/"}, false},
		{"main_test.go", false, []string{"*_test.go"}, true},
		{"main.go", false, []string{"*_test.go"}, false},
		{"docs/readme.md", false, []string{"docs/*.md"}, true},
		{"other/readme.md", false, []string{"docs/*.md"}, false},
	}

	for _, tt := range tests {
		got := shouldExclude(filepath.FromSlash(tt.relPath), tt.isDir, tt.patterns)
		assert.Equal(t, tt.want, got, "%s %v", tt.relPath, tt.patterns)
	}
}
