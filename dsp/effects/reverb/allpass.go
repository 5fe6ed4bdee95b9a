package reverb

import "github.com/cwbudde/algo-reverb/dsp/delay"

// AllPassCoefficient is the fixed feedback/feed-forward gain of every
// all-pass stage.
const AllPassCoefficient = 0.5

// AllPass is a Schroeder all-pass section. Its magnitude response is flat;
// it only smears the signal in time.
type AllPass struct {
	line *delay.Line
}

// NewAllPass returns an all-pass stage with a delay of size samples.
func NewAllPass(size int) (*AllPass, error) {
	line, err := delay.New(size)
	if err != nil {
		return nil, err
	}
	return &AllPass{line: line}, nil
}

// Tick processes one sample.
func (a *AllPass) Tick(input float64) float64 {
	delayed := a.line.Peek()
	fb := input + delayed*AllPassCoefficient
	a.line.Push(fb)
	return delayed - AllPassCoefficient*fb
}

// Len returns the delay length in samples.
func (a *AllPass) Len() int { return a.line.Len() }

// Reset clears the delay line.
func (a *AllPass) Reset() { a.line.Reset() }
