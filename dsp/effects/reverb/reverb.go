package reverb

import (
	"fmt"
	"math"
)

const (
	defaultWet      = 1.0
	defaultDry      = 1.0
	defaultRoomSize = 0.5
	defaultDamp     = 0.5
)

// Reverb is a stereo Schroeder reverberator: four serial all-pass stages
// feeding eight parallel damped combs.
type Reverb struct {
	sampleRate float64

	wet      float64
	dry      float64
	roomSize float64
	damp     float64

	matrixMode MatrixMode
	dryCoupled bool

	combs   [NumCombs]*Comb
	allpass [NumAllPasses]*AllPass
}

// New creates a reverb whose delay lengths are scaled to sampleRate.
func New(sampleRate float64, opts ...Option) (*Reverb, error) {
	r := &Reverb{
		wet:      defaultWet,
		dry:      defaultDry,
		roomSize: defaultRoomSize,
		damp:     defaultDamp,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}

	if err := r.SetSampleRate(sampleRate); err != nil {
		return nil, err
	}

	return r, nil
}

// SetSampleRate rebuilds every delay line for sampleRate. Filter state is
// cleared; parameters are kept. It allocates and must not be called from
// the audio thread while it is processing.
func (r *Reverb) SetSampleRate(sampleRate float64) error {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return fmt.Errorf("reverb sample rate must be > 0: %f", sampleRate)
	}

	var (
		combs   [NumCombs]*Comb
		allpass [NumAllPasses]*AllPass
	)

	for i, length := range CombTuning {
		c, err := NewComb(ScaleLength(length, sampleRate))
		if err != nil {
			return fmt.Errorf("reverb comb %d: %w", i, err)
		}
		combs[i] = c
	}

	for i, length := range AllPassTuning {
		a, err := NewAllPass(ScaleLength(length, sampleRate))
		if err != nil {
			return fmt.Errorf("reverb allpass %d: %w", i, err)
		}
		allpass[i] = a
	}

	r.sampleRate = sampleRate
	r.combs = combs
	r.allpass = allpass
	r.update()

	return nil
}

func (r *Reverb) update() {
	for _, c := range r.combs {
		c.SetFeedback(r.roomSize)
		c.SetDampening(r.damp)
	}
}

// SetRoomSize sets the comb feedback gain. Values at or above 1 make the
// tail grow without bound; see Params.Clamped.
func (r *Reverb) SetRoomSize(v float64) {
	r.roomSize = v
	r.update()
}

// SetDampening sets the low-pass coefficient in every comb loop.
func (r *Reverb) SetDampening(v float64) {
	r.damp = v
	r.update()
}

// SetWet sets wet gain.
func (r *Reverb) SetWet(v float64) {
	r.wet = v
}

// SetDry sets dry gain, or the wet gain when built WithDryCoupledToWet.
func (r *Reverb) SetDry(v float64) {
	if r.dryCoupled {
		r.wet = v
		return
	}
	r.dry = v
}

// Reset clears all delay/filter state.
func (r *Reverb) Reset() {
	for _, c := range r.combs {
		c.Reset()
	}
	for _, a := range r.allpass {
		a.Reset()
	}
}

// ProcessStereo processes one stereo frame.
func (r *Reverb) ProcessStereo(left, right float64) (float64, float64) {
	x := (left + right) / 2
	for _, a := range r.allpass {
		x = a.Tick(x)
	}

	var combOut [NumCombs]float64
	for i, c := range r.combs {
		combOut[i] = c.Tick(x)
	}

	wetL, wetR := r.fold(&combOut)

	return (left*r.dry + wetL*r.wet) / 2, (right*r.dry + wetR*r.wet) / 2
}

func (r *Reverb) fold(combOut *[NumCombs]float64) (float64, float64) {
	var out [len(MixMatrix)]float64

	switch r.matrixMode {
	case MatrixLastColumn:
		for row := range MixMatrix {
			for j, m := range MixMatrix[row] {
				out[row] = combOut[j] * m
			}
		}
	default:
		for row := range MixMatrix {
			cols := len(MixMatrix[row])
			for k, v := range combOut {
				out[row] += MixMatrix[row][k%cols] * v
			}
		}
	}

	return out[0], out[1]
}

// ProcessStereoInPlace processes min(len(left), len(right)) frames in place.
func (r *Reverb) ProcessStereoInPlace(left, right []float64) {
	n := min(len(left), len(right))
	for i := 0; i < n; i++ {
		left[i], right[i] = r.ProcessStereo(left[i], right[i])
	}
}

// ImpulseResponse clears the reverb, feeds a unit impulse on both channels
// and returns n frames of output at the current settings. Filter state is
// left as the impulse left it.
func (r *Reverb) ImpulseResponse(n int) (left, right []float64) {
	if n <= 0 {
		return nil, nil
	}

	r.Reset()
	left = make([]float64, n)
	right = make([]float64, n)
	left[0], right[0] = 1, 1
	r.ProcessStereoInPlace(left, right)

	return left, right
}

// CombLengths returns the comb delay lengths in samples.
func (r *Reverb) CombLengths() [NumCombs]int {
	var out [NumCombs]int
	for i, c := range r.combs {
		out[i] = c.Len()
	}
	return out
}

// AllPassLengths returns the all-pass delay lengths in samples.
func (r *Reverb) AllPassLengths() [NumAllPasses]int {
	var out [NumAllPasses]int
	for i, a := range r.allpass {
		out[i] = a.Len()
	}
	return out
}

// SampleRate returns sample rate in Hz.
func (r *Reverb) SampleRate() float64 { return r.sampleRate }

// Wet returns wet gain.
func (r *Reverb) Wet() float64 { return r.wet }

// Dry returns dry gain.
func (r *Reverb) Dry() float64 { return r.dry }

// RoomSize returns comb feedback amount.
func (r *Reverb) RoomSize() float64 { return r.roomSize }

// Dampening returns comb dampening.
func (r *Reverb) Dampening() float64 { return r.damp }

// MatrixMode returns the configured comb fold.
func (r *Reverb) MatrixMode() MatrixMode { return r.matrixMode }
