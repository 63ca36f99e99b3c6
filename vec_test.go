package swipe

import (
	"math"
	"testing"
)

func TestVec2_Normalize(t *testing.T) {
	tests := []struct {
		name   string
		v      Vec2
		expect Vec2
	}{
		{"unit x", V2(1, 0), V2(1, 0)},
		{"unit y", V2(0, 1), V2(0, 1)},
		{"diagonal", V2(3, 4), V2(0.6, 0.8)},
		{"negative", V2(-2, 0), V2(-1, 0)},
		{"zero stays zero", V2(0, 0), V2(0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.v.Normalize()
			if !result.Approx(tt.expect, 1e-10) {
				t.Errorf("%v.Normalize() = %v, want %v", tt.v, result, tt.expect)
			}
		})
	}
}

func TestVec2_Perp(t *testing.T) {
	tests := []struct {
		name   string
		v      Vec2
		expect Vec2
	}{
		{"rightward", V2(1, 0), V2(0, 1)},
		{"upward", V2(0, 1), V2(-1, 0)},
		{"leftward", V2(-1, 0), V2(0, -1)},
		{"downward", V2(0, -1), V2(1, 0)},
		{"diagonal", V2(0.6, 0.8), V2(-0.8, 0.6)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.v.Perp()
			if !result.Approx(tt.expect, 1e-10) {
				t.Errorf("%v.Perp() = %v, want %v", tt.v, result, tt.expect)
			}
		})
	}
}

func TestVec2_PerpPreservesLength(t *testing.T) {
	vectors := []Vec2{V2(1, 0), V2(3, 4), V2(-2.5, 7.1), V2(0.001, -0.002)}
	for _, v := range vectors {
		p := v.Perp()
		if math.Abs(p.Length()-v.Length()) > 1e-12 {
			t.Errorf("Perp changed length: |%v| = %v, |%v| = %v",
				v, v.Length(), p, p.Length())
		}
		if math.Abs(p.Dot(v)) > 1e-12 {
			t.Errorf("Perp not perpendicular: %v . %v = %v", v, p, p.Dot(v))
		}
	}
}

func TestVec2_IsZero(t *testing.T) {
	if !V2(0, 0).IsZero() {
		t.Error("V2(0, 0).IsZero() = false, want true")
	}
	if V2(0, 1e-12).IsZero() {
		t.Error("V2(0, 1e-12).IsZero() = true, want false")
	}
}

func TestPoint_Distance(t *testing.T) {
	tests := []struct {
		name   string
		p, q   Point
		expect float64
	}{
		{"coincident", Pt(5, 5), Pt(5, 5), 0},
		{"horizontal", Pt(0, 0), Pt(3, 0), 3},
		{"vertical", Pt(0, 0), Pt(0, 4), 4},
		{"pythagorean", Pt(0, 0), Pt(3, 4), 5},
		{"negative quadrant", Pt(-1, -1), Pt(-4, -5), 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.p.Distance(tt.q)
			if math.Abs(result-tt.expect) > 1e-10 {
				t.Errorf("%v.Distance(%v) = %v, want %v", tt.p, tt.q, result, tt.expect)
			}
		})
	}
}

func TestPoint_Add(t *testing.T) {
	p := Pt(1, 2).Add(V2(3, -1))
	if !p.Approx(Pt(4, 1), 1e-10) {
		t.Errorf("Pt(1, 2).Add(V2(3, -1)) = %v, want (4, 1)", p)
	}
}
