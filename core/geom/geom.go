/*
Package geom provides the few geometric primitives needed for handle repair.

Points are arithm.Pairs. Equality of points is exact coordinate equality,
without any epsilon: a handle is a zero handle only if it sits exactly on
its anchor.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package geom

import (
	"fmt"
	"math"

	"github.com/npillmayer/arithm"
)

// Equal is true if a and b have identical coordinates.
func Equal(a, b arithm.Pair) bool {
	return a.X() == b.X() && a.Y() == b.Y()
}

// Lerp linearly interpolates between a and b: a + t*(b-a).
func Lerp(a, b arithm.Pair, t float64) arithm.Pair {
	return arithm.P(
		a.X()+t*(b.X()-a.X()),
		a.Y()+t*(b.Y()-a.Y()),
	)
}

// Angle returns the direction of the vector from p0 to p1 in radians.
func Angle(p0, p1 arithm.Pair) float64 {
	return math.Atan2(p1.Y()-p0.Y(), p1.X()-p0.X())
}

// Distance returns the euclidean distance between two points.
func Distance(p0, p1 arithm.Pair) float64 {
	return math.Hypot(p0.X()-p1.X(), p0.Y()-p1.Y())
}

// Round snaps p to the integer grid, rounding halves away from zero.
func Round(p arithm.Pair) arithm.Pair {
	return arithm.P(math.Round(p.X()), math.Round(p.Y()))
}

// Translate moves p by (dx, dy).
func Translate(p arithm.Pair, dx, dy float64) arithm.Pair {
	return arithm.P(p.X()+dx, p.Y()+dy)
}

// Less orders points by x, then by y.
func Less(a, b arithm.Pair) bool {
	if a.X() != b.X() {
		return a.X() < b.X()
	}
	return a.Y() < b.Y()
}

// Format renders p as "(x, y)".
func Format(p arithm.Pair) string {
	return fmt.Sprintf("(%g, %g)", p.X(), p.Y())
}
