package swipe

import (
	"math"
	"testing"
)

func TestSession_TraveledAccumulates(t *testing.T) {
	tests := []struct {
		name    string
		centers []Point
		expect  float64
	}{
		{"empty", nil, 0},
		{"single sample", []Point{Pt(10, 10)}, 0},
		{"straight line", []Point{Pt(0, 0), Pt(3, 0), Pt(10, 0)}, 10},
		{"right angle", []Point{Pt(0, 0), Pt(3, 0), Pt(3, 4)}, 7},
		{"back and forth", []Point{Pt(0, 0), Pt(5, 0), Pt(0, 0)}, 10},
		{"diagonal", []Point{Pt(0, 0), Pt(3, 4)}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession()
			for _, c := range tt.centers {
				s.AddSample(Sample{Center: c})
			}
			if math.Abs(s.Traveled()-tt.expect) > 1e-10 {
				t.Errorf("Traveled() = %v, want %v", s.Traveled(), tt.expect)
			}
			if s.Len() != len(tt.centers) {
				t.Errorf("Len() = %d, want %d", s.Len(), len(tt.centers))
			}
		})
	}
}

func TestSession_TraveledMonotonic(t *testing.T) {
	s := NewSession()
	centers := []Point{Pt(0, 0), Pt(5, 0), Pt(2, 0), Pt(2, 7), Pt(2, 7)}
	prev := 0.0
	for _, c := range centers {
		s.AddSample(Sample{Center: c})
		if s.Traveled() < prev {
			t.Fatalf("Traveled() decreased: %v < %v", s.Traveled(), prev)
		}
		prev = s.Traveled()
	}
}

func TestSession_AddAfterEndIsNoOp(t *testing.T) {
	s := NewSession()
	s.AddSample(Sample{Center: Pt(0, 0)})
	s.AddSample(Sample{Center: Pt(10, 0), Final: true})
	s.MarkEnded()

	before := s.Traveled()
	s.AddSample(Sample{Center: Pt(100, 100)})

	if s.Len() != 2 {
		t.Errorf("Len() = %d after post-end append, want 2", s.Len())
	}
	if s.Traveled() != before {
		t.Errorf("Traveled() = %v after post-end append, want %v", s.Traveled(), before)
	}
}

func TestSession_MarkEndedIdempotent(t *testing.T) {
	s := NewSession()
	s.AddSample(Sample{Center: Pt(0, 0)})

	if s.Ended() {
		t.Fatal("Ended() = true before MarkEnded")
	}
	s.MarkEnded()
	s.MarkEnded()
	if !s.Ended() {
		t.Error("Ended() = false after MarkEnded")
	}
}

func TestSession_Last(t *testing.T) {
	s := NewSession()
	if _, ok := s.Last(); ok {
		t.Error("Last() ok = true for empty session")
	}
	s.AddSample(Sample{Center: Pt(1, 2)})
	s.AddSample(Sample{Center: Pt(3, 4)})
	last, ok := s.Last()
	if !ok || !last.Center.Approx(Pt(3, 4), 1e-10) {
		t.Errorf("Last() = %v, %v, want (3, 4), true", last.Center, ok)
	}
}

func TestSession_DeviceMetadataPassthrough(t *testing.T) {
	type meta struct{ id int }
	s := NewSession()
	s.AddSample(Sample{Center: Pt(0, 0), Device: meta{id: 42}})

	got, ok := s.Samples()[0].Device.(meta)
	if !ok || got.id != 42 {
		t.Errorf("Device = %v, want meta{id: 42}", s.Samples()[0].Device)
	}
}
