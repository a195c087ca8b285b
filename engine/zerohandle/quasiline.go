package zerohandle

import (
	"math"

	"github.com/npillmayer/arithm"
	"github.com/npillmayer/fixzero/core/geom"
)

// QuasiLineHandles computes handles for a segment from start to end which
// should keep its control points but look like a straight line. The handles
// sit at about one and two thirds of the line, each nudged to a position
// which keeps its direction after rounding to the integer grid.
func QuasiLineHandles(start, end arithm.Pair) Handles {
	return Handles{
		First:  PointOnLine(start, end, QuasiLineFirst, HandleLengthError),
		Second: PointOnLine(start, end, QuasiLineSecond, HandleLengthError),
	}
}

// PointOnLine returns the point at percentage p of the line from a to b,
// p = 1.0 denoting b. If lengthError is greater than zero, percentages
// within ±lengthError/2 of p are sampled, and the sample is selected whose
// grid-rounded position deviates least from the direction of the line.
func PointOnLine(a, b arithm.Pair, p, lengthError float64) arithm.Pair {
	nominal := geom.Lerp(a, b, p)
	if lengthError <= 0 {
		return nominal
	}
	pmin := p - 0.5*p*lengthError
	pmax := p + 0.5*p*lengthError
	count := 2 * int(math.Round(geom.Distance(geom.Lerp(a, b, pmin), geom.Lerp(a, b, pmax))))
	if count == 0 {
		return nominal
	}
	step := (pmax - pmin) / float64(count-1)
	candidates := make([]arithm.Pair, 0, count+1)
	for k := 0; k < count; k++ {
		candidates = append(candidates, geom.Lerp(a, b, pmin+float64(k)*step))
	}
	best := bestGridPoint(candidates, nominal, a, b)
	tracer().Debugf("point on line at %.4f: %s -> %s (%d samples)", p,
		geom.Format(nominal), geom.Format(best), count)
	return best
}

// bestGridPoint selects the candidate (or the nominal point, which is
// appended last) whose rounded position has the smallest angular deviation
// from the direction ref0→ref1. Ties go to the smaller point, x first.
// If the nominal point already rounds onto the reference direction, it is
// returned unchanged.
func bestGridPoint(candidates []arithm.Pair, nominal, ref0, ref1 arithm.Pair) arithm.Pair {
	refAngle := geom.Angle(ref0, ref1)
	if refAngle == geom.Angle(ref0, geom.Round(nominal)) {
		return nominal
	}
	deviation := func(pt arithm.Pair) float64 {
		return math.Abs(math.Remainder(refAngle-geom.Angle(ref0, geom.Round(pt)), 2*math.Pi))
	}
	candidates = append(candidates, nominal)
	best, bestDev := candidates[0], deviation(candidates[0])
	for _, c := range candidates[1:] {
		if d := deviation(c); d < bestDev || (d == bestDev && geom.Less(c, best)) {
			best, bestDev = c, d
		}
	}
	return best
}
