package hash

import (
	"encoding/binary"
	"encoding/hex"
	"math"

	"github.com/cespare/xxhash/v2"

	"diskmap/internal/geom"
	"diskmap/internal/treemap"
)

// Path returns the xxHash of a path string. The value does not depend on
// the process, platform or Go version.
func Path(path string) uint64 {
	return xxhash.Sum64String(path)
}

// Layout fingerprints a layout result. Two layouts hash equal exactly when
// they hold the same boxes, in the same order, with bit-identical
// coordinates, so renderers can key cached frames on it.
func Layout(boxes []treemap.FileBox) string {
	h := xxhash.New()
	buf := make([]byte, 8)

	writeUint := func(v uint64) {
		binary.BigEndian.PutUint64(buf, v)
		h.Write(buf)
	}
	writeRect := func(r geom.Rect) {
		for _, v := range [...]float64{r.X0, r.Y0, r.X1, r.Y1} {
			writeUint(math.Float64bits(v))
		}
	}

	for _, b := range boxes {
		h.WriteString(b.Path)
		h.Write([]byte{0})
		writeUint(b.Size)
		writeRect(b.Rect)
		if b.Parent != nil {
			h.Write([]byte{1})
			writeRect(*b.Parent)
		} else {
			h.Write([]byte{0})
		}
	}

	return hex.EncodeToString(h.Sum(nil))
}
