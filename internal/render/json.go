package render

import (
	"encoding/json"
	"fmt"
	"io"

	"diskmap/internal/color"
	"diskmap/internal/geom"
	"diskmap/internal/hash"
	"diskmap/internal/tree"
)

type jsonOutput struct {
	Generator   string    `json:"generator"`
	Root        string    `json:"root"`
	Size        string    `json:"size"`
	Mode        string    `json:"mode"`
	Fingerprint string    `json:"fingerprint"`
	Bounds      jsonRect  `json:"bounds"`
	Boxes       []jsonBox `json:"boxes"`
}

type jsonRect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type jsonBox struct {
	Path   string    `json:"path"`
	Size   uint64    `json:"size"`
	Color  string    `json:"color"`
	Rect   jsonRect  `json:"rect"`
	Parent *jsonRect `json:"parent,omitempty"`
}

func toJSONRect(r geom.Rect) jsonRect {
	return jsonRect{X: r.X0, Y: r.Y0, Width: r.Width(), Height: r.Height()}
}

// JSON writes the scene as an indented JSON document for external
// renderers. The fingerprint changes whenever the boxes do.
func JSON(w io.Writer, s Scene) error {
	out := jsonOutput{
		Generator:   "diskmap",
		Root:        s.Root,
		Size:        tree.FormatSize(s.Size),
		Mode:        string(s.Mode),
		Fingerprint: hash.Layout(s.Boxes),
		Bounds:      toJSONRect(s.Bounds),
		Boxes:       make([]jsonBox, 0, len(s.Boxes)),
	}

	for _, b := range s.Boxes {
		jb := jsonBox{
			Path:  b.Path,
			Size:  b.Size,
			Color: color.Hex(color.ForPath(b.Path)),
			Rect:  toJSONRect(b.Rect),
		}
		if b.Parent != nil {
			p := toJSONRect(*b.Parent)
			jb.Parent = &p
		}
		out.Boxes = append(out.Boxes, jb)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal layout: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write layout: %w", err)
	}
	return nil
}
