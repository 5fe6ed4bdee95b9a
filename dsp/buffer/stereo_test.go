package buffer

import "testing"

func TestNewStereoZeroFilled(t *testing.T) {
	s := NewStereo(8)
	if s.Frames() != 8 {
		t.Fatalf("Frames() = %d, want 8", s.Frames())
	}
	for i := range s.Left() {
		if s.Left()[i] != 0 || s.Right()[i] != 0 {
			t.Fatalf("frame %d not zero", i)
		}
	}
}

func TestNewStereoNegative(t *testing.T) {
	if got := NewStereo(-4).Frames(); got != 0 {
		t.Fatalf("Frames() = %d, want 0 for negative input", got)
	}
}

func TestResizeReusesAndZeroes(t *testing.T) {
	s := NewStereo(4)
	s.Left()[3] = 7
	s.Right()[3] = 8

	s.Resize(2)
	s.Resize(4)
	if s.Left()[3] != 0 || s.Right()[3] != 0 {
		t.Fatalf("stale data after regrow: %v %v", s.Left(), s.Right())
	}

	s.Left()[0] = 5
	s.Resize(16)
	if s.Frames() != 16 || s.Left()[0] != 5 {
		t.Fatalf("grow lost data: frames=%d left[0]=%v", s.Frames(), s.Left()[0])
	}
}

func TestDeinterleaveInterleave(t *testing.T) {
	src := []float32{1, -1, 0.5, -0.5, 0.25, -0.25, 9}
	s := NewStereo(0)

	if n := s.Deinterleave(src); n != 3 {
		t.Fatalf("Deinterleave = %d, want 3", n)
	}
	if s.Left()[1] != 0.5 || s.Right()[2] != -0.25 {
		t.Fatalf("unexpected channels: %v %v", s.Left(), s.Right())
	}

	dst := make([]float32, 6)
	if n := s.Interleave(dst); n != 3 {
		t.Fatalf("Interleave = %d, want 3", n)
	}
	for i := range dst {
		if dst[i] != src[i] {
			t.Fatalf("dst[%d] = %v, want %v", i, dst[i], src[i])
		}
	}

	short := make([]float32, 3)
	if n := s.Interleave(short); n != 1 {
		t.Fatalf("Interleave(short) = %d, want 1", n)
	}
}

type gain float64

func (g gain) ProcessStereoInPlace(left, right []float64) {
	for i := range left {
		left[i] *= float64(g)
		right[i] *= float64(g)
	}
}

func TestProcess(t *testing.T) {
	s := NewStereo(0)
	s.Deinterleave([]float32{1, 2, 3, 4})
	s.Process(gain(0.5))

	if s.Left()[0] != 0.5 || s.Right()[1] != 2 {
		t.Fatalf("unexpected output: %v %v", s.Left(), s.Right())
	}

	s.Zero()
	if s.Left()[1] != 0 || s.Right()[0] != 0 {
		t.Fatal("Zero left samples behind")
	}
}
