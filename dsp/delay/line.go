package delay

import (
	"fmt"

	"github.com/cwbudde/algo-reverb/dsp/core"
)

// Line is a fixed-length circular delay line with a single cursor that is
// read before it is written. A sample pushed now is returned by Peek
// exactly Len() pushes later.
type Line struct {
	buffer []float64
	cursor int
}

// New returns a delay line of fixed size.
func New(size int) (*Line, error) {
	if size <= 0 {
		return nil, fmt.Errorf("delay size must be > 0: %d", size)
	}
	return &Line{buffer: make([]float64, size)}, nil
}

// Len returns the delay length in samples.
func (d *Line) Len() int {
	return len(d.buffer)
}

// Peek returns the sample under the cursor without advancing.
func (d *Line) Peek() float64 {
	return d.buffer[d.cursor]
}

// Push overwrites the sample under the cursor and advances it.
func (d *Line) Push(sample float64) {
	d.buffer[d.cursor] = sample
	d.cursor++
	if d.cursor >= len(d.buffer) {
		d.cursor = 0
	}
}

// Tick pushes sample and returns the value it replaced.
func (d *Line) Tick(sample float64) float64 {
	out := d.buffer[d.cursor]
	d.Push(sample)
	return out
}

// Reset clears line state.
func (d *Line) Reset() {
	core.Zero(d.buffer)
	d.cursor = 0
}
