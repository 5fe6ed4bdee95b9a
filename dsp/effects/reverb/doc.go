// Package reverb implements a stereo Schroeder reverberator.
//
// A Reverb down-mixes each stereo frame to mono, diffuses it through four
// all-pass stages in series, feeds the result to eight damped comb filters
// in parallel and folds the comb outputs back to two channels through a
// fixed mix matrix before blending with the dry input.
//
// Included processors:
//   - AllPass: Schroeder all-pass diffuser with a fixed 0.5 coefficient.
//   - Comb: feedback comb filter with a one-pole low-pass in the loop.
//   - Reverb: the complete stereo network.
//
// All per-sample methods are allocation-free and must be driven from a
// single goroutine; parameter setters are not synchronised with processing.
package reverb
