package buffer

// StereoProcessor processes planar stereo blocks in place.
type StereoProcessor interface {
	ProcessStereoInPlace(left, right []float64)
}

// Stereo holds one block of planar stereo frames. Resizing reuses the
// backing arrays, so a block sized once up front never allocates again.
type Stereo struct {
	left  []float64
	right []float64
}

// NewStereo returns a zero-filled block of the given number of frames.
func NewStereo(frames int) *Stereo {
	if frames < 0 {
		frames = 0
	}
	return &Stereo{
		left:  make([]float64, frames),
		right: make([]float64, frames),
	}
}

// Frames returns the current number of frames.
func (s *Stereo) Frames() int {
	return len(s.left)
}

// Left returns the left channel.
func (s *Stereo) Left() []float64 { return s.left }

// Right returns the right channel.
func (s *Stereo) Right() []float64 { return s.right }

// Resize sets the frame count, reusing existing capacity when possible.
// Newly exposed frames are zeroed.
func (s *Stereo) Resize(frames int) {
	if frames < 0 {
		frames = 0
	}
	s.left = resize(s.left, frames)
	s.right = resize(s.right, frames)
}

func resize(ch []float64, n int) []float64 {
	old := len(ch)
	if n > cap(ch) {
		grown := make([]float64, n)
		copy(grown, ch)
		return grown
	}
	ch = ch[:n]
	for i := old; i < n; i++ {
		ch[i] = 0
	}
	return ch
}

// Zero silences every frame.
func (s *Stereo) Zero() {
	for i := range s.left {
		s.left[i] = 0
		s.right[i] = 0
	}
}

// Deinterleave resizes the block to len(src)/2 frames and fills it from
// interleaved L/R samples. A trailing odd sample is ignored.
func (s *Stereo) Deinterleave(src []float32) int {
	frames := len(src) / 2
	s.Resize(frames)
	for i := 0; i < frames; i++ {
		s.left[i] = float64(src[2*i])
		s.right[i] = float64(src[2*i+1])
	}
	return frames
}

// Interleave writes as many frames as fit into dst and returns that count.
func (s *Stereo) Interleave(dst []float32) int {
	frames := min(len(s.left), len(dst)/2)
	for i := 0; i < frames; i++ {
		dst[2*i] = float32(s.left[i])
		dst[2*i+1] = float32(s.right[i])
	}
	return frames
}

// Process runs p over the whole block.
func (s *Stereo) Process(p StereoProcessor) {
	p.ProcessStereoInPlace(s.left, s.right)
}
