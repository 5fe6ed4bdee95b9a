package reverb

import "math"

const (
	NumCombs     = 8
	NumAllPasses = 4

	// ReferenceSampleRate is the rate the tuning tables were calibrated for.
	ReferenceSampleRate = 44100.0
)

// Delay lengths in samples at ReferenceSampleRate, in processing order.
var (
	AllPassTuning = [NumAllPasses]int{556, 441, 341, 225}
	CombTuning    = [NumCombs]int{1116, 1188, 1277, 1356, 1422, 1491, 1557, 1617}
)

// MixMatrix folds comb outputs into the left (row 0) and right (row 1)
// wet channels.
var MixMatrix = [2][2]float64{
	{1, 1},
	{-1, -1},
}

// ScaleLength converts a delay length tuned at ReferenceSampleRate to the
// nearest whole number of samples at sampleRate. The result is at least 1.
func ScaleLength(length int, sampleRate float64) int {
	n := int(math.Round(float64(length) * sampleRate / ReferenceSampleRate))
	if n < 1 {
		return 1
	}
	return n
}
