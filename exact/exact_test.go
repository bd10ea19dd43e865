package exact

import (
	"math"
	"testing"
)

func TestOrientation(t *testing.T) {
	tests := []struct {
		name string
		pts  []Point
		want int
	}{
		{
			name: "ccw square",
			pts:  []Point{PtInt(0, 0), PtInt(1, 0), PtInt(1, 1), PtInt(0, 1)},
			want: 1,
		},
		{
			name: "cw square",
			pts:  []Point{PtInt(0, 0), PtInt(0, 1), PtInt(1, 1), PtInt(1, 0)},
			want: -1,
		},
		{
			name: "ccw triangle",
			pts:  []Point{PtInt(0, 0), PtInt(4, 0), PtInt(0, 3)},
			want: 1,
		},
		{
			name: "collinear",
			pts:  []Point{PtInt(0, 0), PtInt(1, 1), PtInt(2, 2)},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Orientation(tt.pts); got != tt.want {
				t.Errorf("Orientation = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRatFloat(t *testing.T) {
	tests := []struct {
		name string
		f    float64
		n, d int64
	}{
		{"half", 0.5, 1, 2},
		{"integer", 42, 42, 1},
		{"negative quarter", -0.25, -1, 4},
		{"eighth", 0.125, 1, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RatFloat(tt.f); got.Cmp(RatFrac(tt.n, tt.d)) != 0 {
				t.Errorf("RatFloat(%v) = %s, want %d/%d", tt.f, got.RatString(), tt.n, tt.d)
			}
		})
	}
}

func TestRatFloat_NonFinite(t *testing.T) {
	if got := RatFloat(math.Inf(1)); got.Sign() != 0 {
		t.Errorf("RatFloat(+Inf) = %s, want 0", got.RatString())
	}
	if got := RatFloat(math.NaN()); got.Sign() != 0 {
		t.Errorf("RatFloat(NaN) = %s, want 0", got.RatString())
	}
}
