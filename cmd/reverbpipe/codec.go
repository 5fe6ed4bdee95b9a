package main

import (
	"encoding/binary"
	"errors"
	"io"
	"math"

	"github.com/cwbudde/algo-reverb/dsp/buffer"
)

const bytesPerFrame = 8

// codec converts between interleaved float32 LE bytes and a planar block.
type codec struct {
	raw     []byte
	samples []float32
	block   *buffer.Stereo
}

func newCodec(blockSize int) *codec {
	return &codec{
		raw:     make([]byte, blockSize*bytesPerFrame),
		samples: make([]float32, blockSize*2),
		block:   buffer.NewStereo(blockSize),
	}
}

// read fills the block with up to blockSize frames. It returns io.EOF once
// the input is exhausted, possibly together with a final short block.
func (c *codec) read(r io.Reader) (int, error) {
	n, err := io.ReadFull(r, c.raw)
	if errors.Is(err, io.ErrUnexpectedEOF) {
		err = io.EOF
	}

	frames := n / bytesPerFrame
	samples := c.samples[:frames*2]
	for i := range samples {
		samples[i] = math.Float32frombits(binary.LittleEndian.Uint32(c.raw[4*i:]))
	}
	c.block.Deinterleave(samples)

	return frames, err
}

// write encodes the current block to w.
func (c *codec) write(w io.Writer) error {
	frames := c.block.Interleave(c.samples)
	raw := c.raw[:frames*bytesPerFrame]
	for i, s := range c.samples[:frames*2] {
		binary.LittleEndian.PutUint32(raw[4*i:], math.Float32bits(s))
	}
	_, err := w.Write(raw)
	return err
}
