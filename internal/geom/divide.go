package geom

import (
	"fmt"
	"math"
)

// divideThreshold is the height/width ratio at which Divide switches from
// cutting the width to cutting the height.
const divideThreshold = 1.2

// Divide splits r into two rectangles, the first taking ratio of r and the
// second the rest. Rectangles whose height/width ratio is below 1.2 are cut
// along their width (side by side); taller ones are cut along their height
// (stacked). The test is on height/width rather than long/short side, so
// a wide rectangle is always cut along its width and a square one too.
//
// Divide panics if ratio is outside [0,1] or NaN.
func (r Rect) Divide(ratio float64) (Rect, Rect) {
	if !(ratio >= 0 && ratio <= 1) {
		panic(fmt.Sprintf("geom: divide ratio out of bounds: %v", ratio))
	}

	if r.Height()/r.Width() < divideThreshold {
		cut := math.Min(r.X0+r.Width()*ratio, r.X1)
		return Rect{X0: r.X0, Y0: r.Y0, X1: cut, Y1: r.Y1},
			Rect{X0: cut, Y0: r.Y0, X1: r.X1, Y1: r.Y1}
	}

	cut := math.Min(r.Y0+r.Height()*ratio, r.Y1)
	return Rect{X0: r.X0, Y0: r.Y0, X1: r.X1, Y1: cut},
		Rect{X0: r.X0, Y0: cut, X1: r.X1, Y1: r.Y1}
}
