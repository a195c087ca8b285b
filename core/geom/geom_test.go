package geom

import (
	"math"
	"testing"

	"github.com/npillmayer/arithm"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestLerp(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fixzero.core")
	defer teardown()
	//
	p := Lerp(arithm.P(0, 0), arithm.P(10, 20), 0.5)
	if !Equal(p, arithm.P(5, 10)) {
		t.Errorf("(1) expected midpoint (5, 10), is %s", Format(p))
	}
	p = Lerp(arithm.P(10, 0), arithm.P(5, 5), 0.73)
	if math.Abs(p.X()-6.35) > 1e-12 || math.Abs(p.Y()-3.65) > 1e-12 {
		t.Errorf("(2) expected (6.35, 3.65), is %s", Format(p))
	}
	p = Lerp(arithm.P(3, 4), arithm.P(7, 9), 0)
	if !Equal(p, arithm.P(3, 4)) {
		t.Errorf("(3) expected start point for t=0, is %s", Format(p))
	}
}

func TestAngleAndDistance(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fixzero.core")
	defer teardown()
	//
	if a := Angle(arithm.P(0, 0), arithm.P(10, 0)); a != 0 {
		t.Errorf("expected horizontal angle 0, is %g", a)
	}
	if a := Angle(arithm.P(1, 1), arithm.P(1, 5)); a != math.Pi/2 {
		t.Errorf("expected vertical angle pi/2, is %g", a)
	}
	if d := Distance(arithm.P(-11, 1), arithm.P(-7, -2)); d != 5 {
		t.Errorf("expected distance 5, is %g", d)
	}
}

func TestRoundAndOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fixzero.core")
	defer teardown()
	//
	if r := Round(arithm.P(2.5, -2.5)); !Equal(r, arithm.P(3, -3)) {
		t.Errorf("expected halves to round away from zero, is %s", Format(r))
	}
	if !Less(arithm.P(1, 9), arithm.P(2, 0)) {
		t.Errorf("expected x to dominate ordering")
	}
	if !Less(arithm.P(1, 0), arithm.P(1, 1)) {
		t.Errorf("expected y to break ties")
	}
	if Less(arithm.P(1, 1), arithm.P(1, 1)) {
		t.Errorf("expected equal points not to be less")
	}
}

func TestExactEquality(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fixzero.core")
	defer teardown()
	//
	if Equal(arithm.P(0, 0), arithm.P(0, 1e-9)) {
		t.Errorf("nearly equal points must not compare equal")
	}
	if !Equal(Translate(arithm.P(1, 2), 3, 4), arithm.P(4, 6)) {
		t.Errorf("translation broken")
	}
}
