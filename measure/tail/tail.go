package tail

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-reverb/dsp/core"
)

// Errors returned by tail analysis functions.
var (
	ErrEmptyIR           = errors.New("tail: impulse response is empty")
	ErrInvalidSampleRate = errors.New("tail: sample rate must be positive")
	ErrNoDecay           = errors.New("tail: insufficient decay for RT calculation")
)

// DefaultDecayThreshold is the magnitude below which a tail counts as gone.
const DefaultDecayThreshold = 1e-4

// Metrics holds tail analysis results.
type Metrics struct {
	RT60         float64 // seconds, T30 when available, else T20
	EDT          float64 // seconds, 0 to -10 dB slope
	T20          float64 // seconds, -5 to -25 dB slope
	T30          float64 // seconds, -5 to -35 dB slope
	DecaySamples int     // samples until |x| stays below the threshold
	Energy       float64 // sum of squares
	DiffEnergy   float64 // sum of squared first differences
	Brightness   float64 // DiffEnergy / Energy, 0..4
	Centroid     float64 // spectral centroid in Hz
	PeakIndex    int     // sample index of the absolute maximum
}

// Analyzer computes tail metrics.
type Analyzer struct {
	SampleRate float64
	Threshold  float64
}

// NewAnalyzer creates an analyzer for sampleRate using DefaultDecayThreshold.
func NewAnalyzer(sampleRate float64) *Analyzer {
	return &Analyzer{SampleRate: sampleRate, Threshold: DefaultDecayThreshold}
}

func (a *Analyzer) validate(ir []float64) error {
	if len(ir) == 0 {
		return ErrEmptyIR
	}
	if !validSampleRate(a.SampleRate) {
		return ErrInvalidSampleRate
	}
	return nil
}

func validSampleRate(sr float64) bool {
	return sr > 0 && !math.IsInf(sr, 0)
}

// Analyze computes all metrics. Decay times are measured from the peak;
// energy and colour over the whole response. Missing decay ranges leave
// the corresponding times at zero rather than failing.
func (a *Analyzer) Analyze(ir []float64) (Metrics, error) {
	if err := a.validate(ir); err != nil {
		return Metrics{}, err
	}

	peak := findPeak(ir)
	curve := schroeder(ir[peak:])

	m := Metrics{
		PeakIndex:    peak,
		EDT:          a.reverbTime(curve, 0, -10),
		T20:          a.reverbTime(curve, -5, -25),
		T30:          a.reverbTime(curve, -5, -35),
		DecaySamples: DecayLength(ir, a.Threshold),
		Energy:       Energy(ir),
		DiffEnergy:   DiffEnergy(ir),
	}

	if m.T30 > 0 {
		m.RT60 = m.T30
	} else {
		m.RT60 = m.T20
	}

	if m.Energy > 0 {
		m.Brightness = m.DiffEnergy / m.Energy
	}

	c, err := Centroid(ir, a.SampleRate)
	if err != nil {
		return Metrics{}, err
	}
	m.Centroid = c

	return m, nil
}

// SchroederIntegral returns the normalised backward energy integral of ir
// in dB, 0 at the first sample.
func (a *Analyzer) SchroederIntegral(ir []float64) ([]float64, error) {
	if len(ir) == 0 {
		return nil, ErrEmptyIR
	}
	return schroeder(ir), nil
}

// RT60 returns the reverberation time of ir, from T30 when the curve
// reaches -35 dB and from T20 otherwise.
func (a *Analyzer) RT60(ir []float64) (float64, error) {
	if err := a.validate(ir); err != nil {
		return 0, err
	}

	curve := schroeder(ir[findPeak(ir):])
	if rt := a.reverbTime(curve, -5, -35); rt > 0 {
		return rt, nil
	}
	if rt := a.reverbTime(curve, -5, -25); rt > 0 {
		return rt, nil
	}
	return 0, ErrNoDecay
}

func schroeder(ir []float64) []float64 {
	out := make([]float64, len(ir))

	var acc float64
	for i := len(ir) - 1; i >= 0; i-- {
		acc += ir[i] * ir[i]
		out[i] = acc
	}

	total := out[0]
	if total <= 0 {
		return out
	}

	for i, v := range out {
		if v <= 0 {
			out[i] = -200
			continue
		}
		// v is energy, so half the amplitude dB value.
		out[i] = core.LinearToDB(v/total) / 2
	}

	return out
}

// reverbTime fits a line to curve between startDB and endDB and
// extrapolates it to -60 dB. Zero means the range was not reached.
func (a *Analyzer) reverbTime(curve []float64, startDB, endDB float64) float64 {
	start, end := -1, -1
	for i, v := range curve {
		if start < 0 && v <= startDB {
			start = i
		}
		if start >= 0 && v <= endDB {
			end = i
			break
		}
	}
	if start < 0 || end <= start {
		return 0
	}

	var sumX, sumY, sumXX, sumXY float64
	for i := start; i <= end; i++ {
		x := float64(i - start)
		y := curve[i]
		sumX += x
		sumY += y
		sumXX += x * x
		sumXY += x * y
	}

	n := float64(end - start + 1)
	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return 0
	}

	slope := (n*sumXY - sumX*sumY) / denom
	if slope >= 0 {
		return 0
	}

	return -60 / (slope * a.SampleRate)
}

func findPeak(x []float64) int {
	idx, peak := 0, 0.0
	for i, v := range x {
		if av := math.Abs(v); av > peak {
			idx, peak = i, av
		}
	}
	return idx
}

// DecayLength returns one past the index of the last sample whose magnitude
// reaches threshold, or 0 when none does.
func DecayLength(x []float64, threshold float64) int {
	for i := len(x) - 1; i >= 0; i-- {
		if math.Abs(x[i]) >= threshold {
			return i + 1
		}
	}
	return 0
}

// Energy returns the sum of squares of x.
func Energy(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}

	sq := make([]float64, len(x))
	vecmath.MulBlock(sq, x, x)

	var e float64
	for _, v := range sq {
		e += v
	}
	return e
}

// DiffEnergy returns the energy of the first difference of x. A first
// difference is a gentle high-pass, so darker signals score lower.
func DiffEnergy(x []float64) float64 {
	var e float64
	for i := 1; i < len(x); i++ {
		d := x[i] - x[i-1]
		e += d * d
	}
	return e
}

// Centroid returns the magnitude-weighted mean frequency of x in Hz. The
// signal is zero-padded to the next power of two. Silence yields 0.
func Centroid(x []float64, sampleRate float64) (float64, error) {
	if len(x) == 0 {
		return 0, ErrEmptyIR
	}
	if !validSampleRate(sampleRate) {
		return 0, ErrInvalidSampleRate
	}

	n := nextPowerOf2(len(x))
	if n < 2 {
		n = 2
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return 0, fmt.Errorf("tail: fft plan %d: %w", n, err)
	}

	in := make([]complex128, n)
	for i, v := range x {
		in[i] = complex(v, 0)
	}

	freq := make([]complex128, n)
	if err := plan.Forward(freq, in); err != nil {
		return 0, fmt.Errorf("tail: fft: %w", err)
	}

	bins := n/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for i := range re {
		re[i] = real(freq[i])
		im[i] = imag(freq[i])
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	binHz := sampleRate / float64(n)

	var num, den float64
	for i, m := range mag {
		num += float64(i) * binHz * m
		den += m
	}
	if den == 0 {
		return 0, nil
	}

	return num / den, nil
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
