// Package delay provides the integer-length circular buffer used by the
// comb and all-pass stages of the reverb.
package delay
