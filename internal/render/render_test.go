package render

import (
	"bytes"
	"encoding/json"
	"image/png"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"diskmap/internal/geom"
	"diskmap/internal/hash"
	"diskmap/internal/tree"
	"diskmap/internal/treemap"
)

func sampleScene() Scene {
	root := tree.NewDir("/data", []*tree.Node{
		tree.NewFile("/data/movie.mkv", 600),
		tree.NewDir("/data/src", []*tree.Node{
			tree.NewFile("/data/src/main.go", 250),
			tree.NewFile("/data/src/a&b.txt", 150),
		}),
		tree.NewDir("/data/empty", nil),
	})
	bounds := geom.FromSize(200, 100)
	return Scene{
		Root:   root.Path,
		Size:   root.Size,
		Mode:   treemap.ModeSquarify,
		Bounds: bounds,
		Boxes:  treemap.Squarify(root, bounds),
	}
}

func TestSVG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, SVG(&buf, sampleScene()))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<svg "))
	assert.True(t, strings.HasSuffix(out, "</svg>\n"))
	assert.Equal(t, 4, strings.Count(out, "<rect "), "background plus three boxes")
	assert.Contains(t, out, "<title>/data/movie.mkv (600 B)</title>")
	assert.Contains(t, out, "a&amp;b.txt")
}

func TestPNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PNG(&buf, sampleScene()))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 100, img.Bounds().Dy())
}

func TestPNG_RejectsEmptyBounds(t *testing.T) {
	s := sampleScene()
	s.Bounds = geom.Rect{}

	assert.Error(t, PNG(&bytes.Buffer{}, s))
}

func TestJSON(t *testing.T) {
	s := sampleScene()

	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, s))

	var out jsonOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))

	assert.Equal(t, "diskmap", out.Generator)
	assert.Equal(t, "/data", out.Root)
	assert.Equal(t, "squarify", out.Mode)
	assert.Equal(t, hash.Layout(s.Boxes), out.Fingerprint)
	require.Len(t, out.Boxes, 3)
	assert.Equal(t, "/data/movie.mkv", out.Boxes[0].Path)
	assert.Equal(t, uint64(600), out.Boxes[0].Size)
	require.NotNil(t, out.Boxes[0].Parent)
	assert.Equal(t, 200.0, out.Boxes[0].Parent.Width)
}

func TestTerminal_GridShape(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Terminal(&buf, sampleScene(), 40, 10))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 10)
	for _, line := range lines {
		assert.Equal(t, 40, lipgloss.Width(line))
	}
}

func TestCellSpan(t *testing.T) {
	first, last := cellSpan(0, 10, 2.5, 8)
	assert.Equal(t, 0, first)
	assert.Equal(t, 4, last)

	first, last = cellSpan(10, 10, 2.5, 8)
	assert.Equal(t, first, last, "zero-width span covers no cells")

	first, last = cellSpan(-5, 100, 2.5, 8)
	assert.Equal(t, 0, first)
	assert.Equal(t, 8, last)
}

func TestWrite_DispatchesAndRejectsUnknown(t *testing.T) {
	for _, f := range Formats {
		assert.True(t, ValidFormat(f))
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, f, sampleScene()), f)
		assert.NotZero(t, buf.Len(), f)
	}

	assert.False(t, ValidFormat("bmp"))
	assert.Error(t, Write(&bytes.Buffer{}, "bmp", sampleScene()))
}
