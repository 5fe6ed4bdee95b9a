// Package buffer provides a reusable planar stereo block for hosts that
// move interleaved float32 audio in and out of float64 processors.
package buffer
