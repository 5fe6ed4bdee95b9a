package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-reverb/dsp/buffer"
	"github.com/cwbudde/algo-reverb/dsp/effects/reverb"
)

// host owns the reverb on the audio thread. Parameter changes arrive over
// a channel and are applied between callbacks, so the engine is only ever
// touched from one goroutine. The block is sized once; callbacks larger
// than that are processed in block-sized chunks so the callback never
// allocates.
type host struct {
	rev     *reverb.Reverb
	block   *buffer.Stereo
	size    int
	pending chan reverb.Params
}

func newHost(r *reverb.Reverb, framesPerBuffer int) *host {
	if framesPerBuffer < 1 {
		framesPerBuffer = 1
	}
	return &host{
		rev:     r,
		block:   buffer.NewStereo(framesPerBuffer),
		size:    framesPerBuffer,
		pending: make(chan reverb.Params, 1),
	}
}

// update queues p, replacing any change the callback has not picked up yet.
func (h *host) update(p reverb.Params) {
	for {
		select {
		case h.pending <- p:
			return
		default:
		}
		select {
		case <-h.pending:
		default:
		}
	}
}

// process is the interleaved duplex stream callback.
func (h *host) process(in, out []float32) {
	select {
	case p := <-h.pending:
		h.rev.SetParams(p)
	default:
	}

	chunk := 2 * h.size
	n := 0
	for off := 0; off+1 < len(in) && off+1 < len(out); off += chunk {
		end := min(off+chunk, len(in), len(out))
		h.block.Deinterleave(in[off:end])
		h.block.Process(h.rev)
		n += h.block.Interleave(out[off:end])
	}
	for i := 2 * n; i < len(out); i++ {
		out[i] = 0
	}
}

// applyCommand parses one "<name> <value>" line against p. An empty line
// or "q" asks to quit. When coupled, wet and dry both set the wet gain.
func applyCommand(p reverb.Params, line string, coupled bool) (reverb.Params, bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 || (len(fields) == 1 && fields[0] == "q") {
		return p, true, nil
	}
	if len(fields) != 2 {
		return p, false, fmt.Errorf("expected \"<room|damp|wet|dry> <value>\", got %q", line)
	}

	v, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return p, false, fmt.Errorf("invalid value %q: %w", fields[1], err)
	}

	switch fields[0] {
	case "room":
		p.RoomSize = v
	case "damp":
		p.Dampening = v
	case "wet":
		p.Wet = v
	case "dry":
		p.Dry = v
	default:
		return p, false, fmt.Errorf("unknown parameter %q", fields[0])
	}

	if coupled && (fields[0] == "wet" || fields[0] == "dry") {
		p.Wet, p.Dry = v, v
	}

	return p.Clamped(), false, nil
}
