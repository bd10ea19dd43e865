package arc

import (
	"errors"
	"math/big"
	"testing"

	"github.com/gogpu/offset/exact"
)

func unitArc(t *testing.T, source, target exact.Point) Arc {
	t.Helper()
	a, err := New(exact.PtInt(0, 0), exact.RatInt(1), source, target)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return a
}

func TestNew_OffCircle(t *testing.T) {
	_, err := New(exact.PtInt(0, 0), exact.RatInt(1), exact.PtInt(1, 0), exact.PtInt(1, 1))
	if !errors.Is(err, ErrOffCircle) {
		t.Fatalf("New with off-circle target: err = %v, want ErrOffCircle", err)
	}
	_, err = New(exact.PtInt(0, 0), exact.RatInt(1), exact.PtInt(2, 0), exact.PtInt(0, 1))
	if !errors.Is(err, ErrOffCircle) {
		t.Fatalf("New with off-circle source: err = %v, want ErrOffCircle", err)
	}
}

func TestNew_RationalPointsOnCircle(t *testing.T) {
	// (3/5, 4/5) lies on the unit circle.
	p := exact.Pt(exact.RatFrac(3, 5), exact.RatFrac(4, 5))
	if _, err := New(exact.PtInt(0, 0), exact.RatInt(1), p, exact.PtInt(-1, 0)); err != nil {
		t.Fatalf("New: %v", err)
	}
}

func TestXMonotone_Degenerate(t *testing.T) {
	a := unitArc(t, exact.PtInt(0, 1), exact.PtInt(0, 1))
	if !a.IsDegenerate() {
		t.Fatal("IsDegenerate = false, want true")
	}
	if pieces := a.XMonotone(); len(pieces) != 0 {
		t.Errorf("XMonotone on degenerate arc = %d pieces, want 0", len(pieces))
	}
}

func TestXMonotone(t *testing.T) {
	var (
		right  = exact.PtInt(1, 0)
		top    = exact.PtInt(0, 1)
		left   = exact.PtInt(-1, 0)
		bottom = exact.PtInt(0, -1)
		upper  = exact.Pt(exact.RatFrac(3, 5), exact.RatFrac(4, 5))
		upper2 = exact.Pt(exact.RatFrac(4, 5), exact.RatFrac(3, 5))
	)

	tests := []struct {
		name           string
		source, target exact.Point
		wantLen        int
		wantDirRight   []bool
	}{
		{
			name:   "lower quarter ending at right pole",
			source: bottom, target: right,
			wantLen: 1, wantDirRight: []bool{true},
		},
		{
			name:   "upper quarter starting at right pole",
			source: right, target: top,
			wantLen: 1, wantDirRight: []bool{false},
		},
		{
			name:   "upper half pole to pole",
			source: right, target: left,
			wantLen: 1, wantDirRight: []bool{false},
		},
		{
			name:   "lower half pole to pole",
			source: left, target: right,
			wantLen: 1, wantDirRight: []bool{true},
		},
		{
			name:   "crossing right pole",
			source: bottom, target: top,
			wantLen: 2, wantDirRight: []bool{true, false},
		},
		{
			name:   "crossing left pole",
			source: top, target: bottom,
			wantLen: 2, wantDirRight: []bool{false, true},
		},
		{
			name:   "within upper half",
			source: upper, target: left,
			wantLen: 1, wantDirRight: []bool{false},
		},
		{
			name:   "almost full circle",
			source: upper, target: upper2,
			wantLen: 3, wantDirRight: []bool{false, true, false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := unitArc(t, tt.source, tt.target)
			pieces := a.XMonotone()
			if len(pieces) != tt.wantLen {
				t.Fatalf("XMonotone = %d pieces %v, want %d", len(pieces), pieces, tt.wantLen)
			}
			if !pieces[0].Source().Eq(tt.source) {
				t.Errorf("first piece starts at %v, want %v", pieces[0].Source(), tt.source)
			}
			if !pieces[len(pieces)-1].Target().Eq(tt.target) {
				t.Errorf("last piece ends at %v, want %v", pieces[len(pieces)-1].Target(), tt.target)
			}
			for i, p := range pieces {
				if p.DirectedRight() != tt.wantDirRight[i] {
					t.Errorf("piece %d DirectedRight = %t, want %t", i, p.DirectedRight(), tt.wantDirRight[i])
				}
				if i > 0 && !pieces[i-1].Target().Eq(p.Source()) {
					t.Errorf("piece %d does not chain: %v -> %v", i, pieces[i-1].Target(), p.Source())
				}
			}
		})
	}
}

func TestXMonotone_SplitsAtPoles(t *testing.T) {
	a := unitArc(t, exact.PtInt(0, -1), exact.PtInt(0, 1))
	pieces := a.XMonotone()
	if len(pieces) != 2 {
		t.Fatalf("pieces = %d, want 2", len(pieces))
	}
	if !pieces[0].Target().Eq(exact.PtInt(1, 0)) {
		t.Errorf("split point = %v, want the right pole", pieces[0].Target())
	}
}

func TestXMonotone_OffsetCenter(t *testing.T) {
	// Same shape, translated center and scaled radius: splits land on the
	// translated poles.
	c := exact.PtInt(10, -3)
	r := exact.RatFrac(3, 2)
	// From the bottom of the circle to its right pole.
	src := exact.Pt(exact.RatInt(10), exact.RatFrac(-9, 2))
	tgt := exact.Pt(exact.RatFrac(23, 2), exact.RatInt(-3))
	a, err := New(c, r, src, tgt)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	pieces := a.XMonotone()
	if len(pieces) != 1 {
		t.Fatalf("pieces = %d, want 1", len(pieces))
	}
	if !pieces[0].DirectedRight() {
		t.Error("lower-half piece DirectedRight = false, want true")
	}
}

func TestXArc_Endpoints(t *testing.T) {
	a := unitArc(t, exact.PtInt(1, 0), exact.PtInt(0, 1))
	p := a.XMonotone()[0]
	if !p.Source().Eq(exact.PtInt(1, 0)) || !p.Target().Eq(exact.PtInt(0, 1)) {
		t.Errorf("endpoints = %v -> %v", p.Source(), p.Target())
	}
	if p.Radius.Cmp(big.NewRat(1, 1)) != 0 {
		t.Errorf("radius = %s, want 1", p.Radius.RatString())
	}
}
