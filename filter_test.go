package swipe

import (
	"math"
	"testing"
)

// feedFilter appends each center to a fresh session, updating the filter
// after every sample, and returns both.
func feedFilter(f *PointFilter, centers []Point) *Session {
	s := NewSession()
	for _, c := range centers {
		s.AddSample(Sample{Center: c})
		f.Update(s)
	}
	return s
}

// checkFilterInvariants verifies the structural polyline invariants:
// at least one vertex, exactly one Start (the anchor, at index 0), and
// every vertex except the tail committed.
func checkFilterInvariants(t *testing.T, f *PointFilter) {
	t.Helper()
	points := f.Points()
	if len(points) == 0 {
		t.Fatal("filter has no points")
	}
	starts := 0
	for i, fp := range points {
		if fp.Start {
			starts++
			if i != 0 {
				t.Errorf("Start vertex at index %d, want 0", i)
			}
		}
		if i < len(points)-1 && fp.State != VertexCommitted {
			t.Errorf("non-tail vertex %d has state %v, want committed", i, fp.State)
		}
	}
	if starts != 1 {
		t.Errorf("found %d Start vertices, want exactly 1", starts)
	}
}

func TestPointFilter_AnchorPlacement(t *testing.T) {
	f := NewPointFilter(50)
	feedFilter(f, []Point{Pt(7, 9)})

	checkFilterInvariants(t, f)
	if f.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", f.Len())
	}
	anchor := f.Points()[0]
	if !anchor.Start {
		t.Error("anchor.Start = false")
	}
	if anchor.State != VertexCommitted {
		t.Errorf("anchor.State = %v, want committed", anchor.State)
	}
	if !anchor.Position.Approx(Pt(7, 9), 1e-10) {
		t.Errorf("anchor.Position = %v, want (7, 9)", anchor.Position)
	}
}

func TestPointFilter_SecondSampleAlwaysAppends(t *testing.T) {
	// While the polyline holds only the anchor, any further sample grows
	// it: the anchor is never overwritten.
	f := NewPointFilter(50)
	feedFilter(f, []Point{Pt(0, 0), Pt(1, 0)})

	checkFilterInvariants(t, f)
	if f.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", f.Len())
	}
	if !f.Points()[0].Position.Approx(Pt(0, 0), 1e-10) {
		t.Errorf("anchor moved to %v", f.Points()[0].Position)
	}
}

func TestPointFilter_SubThresholdOverwritesTail(t *testing.T) {
	f := NewPointFilter(50)
	feedFilter(f, []Point{Pt(0, 0), Pt(10, 0), Pt(20, 0), Pt(30, 0)})

	checkFilterInvariants(t, f)
	// (10,0) appended after the anchor; (20,0) and (30,0) are within the
	// segment threshold of the anchor, so each overwrites the tail.
	if f.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", f.Len())
	}
	tail, _ := f.Tail()
	if !tail.Position.Approx(Pt(30, 0), 1e-10) {
		t.Errorf("tail.Position = %v, want (30, 0)", tail.Position)
	}
	if tail.State != VertexProvisional {
		t.Errorf("tail.State = %v, want provisional", tail.State)
	}
}

func TestPointFilter_ThresholdBreachLocksIn(t *testing.T) {
	f := NewPointFilter(50)
	feedFilter(f, []Point{Pt(0, 0), Pt(10, 0), Pt(30, 0), Pt(60, 0)})

	checkFilterInvariants(t, f)
	// At (60,0) the traveled delta from the anchor is 60 > 50: the tail
	// locks in and the candidate becomes the new tail.
	if f.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", f.Len())
	}
	points := f.Points()
	if points[1].State != VertexCommitted {
		t.Errorf("points[1].State = %v, want committed", points[1].State)
	}
	if !points[1].Position.Approx(Pt(30, 0), 1e-10) {
		t.Errorf("points[1].Position = %v, want (30, 0)", points[1].Position)
	}
	tail, _ := f.Tail()
	if !tail.Position.Approx(Pt(60, 0), 1e-10) {
		t.Errorf("tail.Position = %v, want (60, 0)", tail.Position)
	}
}

func TestPointFilter_TailTracksNewestSample(t *testing.T) {
	f := NewPointFilter(50)
	centers := []Point{
		Pt(0, 0), Pt(5, 3), Pt(12, 8), Pt(40, 8), Pt(90, 8), Pt(95, 10),
	}
	s := NewSession()
	for _, c := range centers {
		s.AddSample(Sample{Center: c})
		f.Update(s)

		checkFilterInvariants(t, f)
		tail, ok := f.Tail()
		if !ok {
			t.Fatal("Tail() not ok after update")
		}
		if !tail.Position.Approx(c, 1e-10) {
			t.Errorf("after sample %v tail is %v", c, tail.Position)
		}
	}
}

func TestPointFilter_AnchorSurvivesWholeSession(t *testing.T) {
	f := NewPointFilter(50)
	centers := []Point{Pt(2, 3)}
	for i := 1; i < 40; i++ {
		centers = append(centers, Pt(2+float64(i)*7, 3))
	}
	feedFilter(f, centers)

	checkFilterInvariants(t, f)
	anchor := f.Points()[0]
	if !anchor.Start || !anchor.Position.Approx(Pt(2, 3), 1e-10) {
		t.Errorf("anchor = %+v, want Start at (2, 3)", anchor)
	}
}

func TestPointFilter_TraveledRecordedAtAccept(t *testing.T) {
	f := NewPointFilter(50)
	s := feedFilter(f, []Point{Pt(0, 0), Pt(20, 0), Pt(80, 0)})

	points := f.Points()
	if points[0].Traveled != 0 {
		t.Errorf("anchor.Traveled = %v, want 0", points[0].Traveled)
	}
	tail := points[len(points)-1]
	if math.Abs(tail.Traveled-s.Traveled()) > 1e-10 {
		t.Errorf("tail.Traveled = %v, want %v", tail.Traveled, s.Traveled())
	}
}

func TestPointFilter_Reset(t *testing.T) {
	f := NewPointFilter(50)
	feedFilter(f, []Point{Pt(0, 0), Pt(60, 0)})
	f.Reset()

	if f.Len() != 0 {
		t.Errorf("Len() = %d after Reset, want 0", f.Len())
	}
	if _, ok := f.Tail(); ok {
		t.Error("Tail() ok = true after Reset")
	}
}

func TestPointFilter_DefaultThreshold(t *testing.T) {
	f := NewPointFilter(0)
	if f.SegmentThreshold() != SegmentThreshold {
		t.Errorf("SegmentThreshold() = %v, want %v",
			f.SegmentThreshold(), SegmentThreshold)
	}
}

func TestPointFilter_SampleIndexTracksSource(t *testing.T) {
	f := NewPointFilter(50)
	feedFilter(f, []Point{Pt(0, 0), Pt(10, 0), Pt(25, 0)})

	tail, _ := f.Tail()
	// (25,0) is sample index 2 and overwrote the tail produced by (10,0).
	if tail.SampleIndex != 2 {
		t.Errorf("tail.SampleIndex = %d, want 2", tail.SampleIndex)
	}
}
