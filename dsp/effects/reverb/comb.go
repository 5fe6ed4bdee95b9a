package reverb

import (
	"github.com/cwbudde/algo-reverb/dsp/core"
	"github.com/cwbudde/algo-reverb/dsp/delay"
)

// Comb is a feedback comb filter with a one-pole low-pass in its loop.
//
// Feedback must stay below 1; at or above it the loop gain at DC is not
// contractive and the output grows without bound. This is not checked.
type Comb struct {
	line        *delay.Line
	feedback    float64
	dampA       float64
	dampB       float64
	filterStore float64
}

// NewComb returns a comb filter with a delay of size samples, zero feedback
// and no dampening.
func NewComb(size int) (*Comb, error) {
	line, err := delay.New(size)
	if err != nil {
		return nil, err
	}
	c := &Comb{line: line}
	c.SetDampening(0)
	return c, nil
}

// Tick processes one sample.
func (c *Comb) Tick(input float64) float64 {
	output := c.line.Peek()
	c.filterStore = core.FlushDenormals(output*c.dampB + c.filterStore*c.dampA)
	c.line.Push(input + c.filterStore*c.feedback)
	return output
}

// SetFeedback sets the loop gain. It takes effect on the next Tick.
func (c *Comb) SetFeedback(v float64) {
	c.feedback = v
}

// SetDampening sets the low-pass coefficient in [0,1]; 0 leaves the loop
// unfiltered, values towards 1 absorb high frequencies faster.
func (c *Comb) SetDampening(v float64) {
	c.dampA = v
	c.dampB = 1 - v
}

// Feedback returns the loop gain.
func (c *Comb) Feedback() float64 { return c.feedback }

// Dampening returns the low-pass coefficient.
func (c *Comb) Dampening() float64 { return c.dampA }

// Len returns the delay length in samples.
func (c *Comb) Len() int { return c.line.Len() }

// Reset clears the delay line and the low-pass memory. Coefficients are kept.
func (c *Comb) Reset() {
	c.line.Reset()
	c.filterStore = 0
}
