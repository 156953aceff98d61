package engine

import (
	"math"
	"testing"
)

func TestHoeffTable_Shape(t *testing.T) {
	if len(hoeffGrid) != len(hoeffPVals) {
		t.Fatalf("grid has %d points, values have %d", len(hoeffGrid), len(hoeffPVals))
	}
	if hoeffGrid[0] != 1.1 || hoeffGrid[len(hoeffGrid)-1] != 8.5 {
		t.Errorf("grid spans [%v, %v], want [1.1, 8.5]", hoeffGrid[0], hoeffGrid[len(hoeffGrid)-1])
	}
	for i := 1; i < len(hoeffGrid); i++ {
		if hoeffGrid[i] <= hoeffGrid[i-1] {
			t.Errorf("grid not strictly increasing at %d: %v <= %v", i, hoeffGrid[i], hoeffGrid[i-1])
		}
	}
}

func TestLinearInterp(t *testing.T) {
	// exact grid point returns the tabulated value
	if got := linearInterp(2.0, hoeffGrid, hoeffPVals); got != 0.1453 {
		t.Errorf("interp at grid point 2.0 = %v, want 0.1453", got)
	}
	// midpoint between two grid points is their average
	want := (0.4918 + 0.4565) / 2
	if got := linearInterp(1.175, hoeffGrid, hoeffPVals); math.Abs(got-want) > 1e-12 {
		t.Errorf("interp at 1.175 = %v, want %v", got, want)
	}
}

func TestPhoeffb_TailClamps(t *testing.T) {
	// B = 0: exponential tail exceeds 1 and must be clamped down
	if got := phoeffb(0, 10); got != 1.0 {
		t.Errorf("phoeffb(0, 10) = %v, want 1.0", got)
	}
	// far tail floors at 1e-12
	if got := phoeffb(100, 1000); got != 1e-12 {
		t.Errorf("far-tail p = %v, want 1e-12", got)
	}
}

func TestPhoeffb_Range(t *testing.T) {
	for _, stat := range []float64{0, 0.001, 0.005, 0.01, 0.02, 0.05, 0.1, 1, 10} {
		for _, nEff := range []float64{5, 10, 50, 500} {
			p := phoeffb(stat, nEff)
			if p < 1e-12 || p > 1.0 {
				t.Errorf("phoeffb(%v, %v) = %v outside [1e-12, 1]", stat, nEff, p)
			}
		}
	}
}

func TestPhoeffb_MonotoneInterior(t *testing.T) {
	// over the densely tabulated region larger B means smaller p
	nEff := 10.0
	scale := 0.5 * math.Pow(math.Pi, 4) * (nEff - 1)

	prev := math.Inf(1)
	for b := 1.2; b <= 4.9; b += 0.07 {
		p := phoeffb(b/scale, nEff)
		if p > prev {
			t.Fatalf("p increased at B=%v: %v > %v", b, p, prev)
		}
		prev = p
	}
}

func TestPhoeffb_BoundaryNeighborhood(t *testing.T) {
	// the tail formula and the table meet near B = 8.5 within the
	// table's own resolution
	nEff := 10.0
	scale := 0.5 * math.Pow(math.Pi, 4) * (nEff - 1)

	inside := phoeffb(8.49/scale, nEff)
	outside := phoeffb(8.51/scale, nEff)
	if math.Abs(inside-outside) > 1e-4 {
		t.Errorf("discontinuity at B=8.5: inside %v, outside %v", inside, outside)
	}
}
