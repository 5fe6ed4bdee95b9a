// Command reverbpipe filters raw PCM through the reverb.
//
// Input and output are interleaved stereo float32 little-endian frames.
//
// Usage:
//
//	reverbpipe [flags] < in.f32 > out.f32
//
// Examples:
//
//	sox in.wav -t f32 -c 2 - | reverbpipe -room 0.8 | sox -t f32 -r 44100 -c 2 - out.wav
//	reverbpipe -rate 48000 -block 256 -tail 3 < dry.f32 > wet.f32
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/algo-reverb/dsp/core"
	"github.com/cwbudde/algo-reverb/dsp/effects/reverb"
)

func main() {
	rate := flag.Float64("rate", 44100, "sample rate in Hz")
	block := flag.Int("block", 512, "frames per processing block")
	room := flag.Float64("room", 0.5, "room size, clamped to [0, 0.99]")
	damp := flag.Float64("damp", 0.5, "dampening in [0, 1]")
	wet := flag.Float64("wet", 1, "wet gain in [0, 1]")
	dry := flag.Float64("dry", 1, "dry gain in [0, 1]; with -legacy it sets the wet gain and defaults to -wet")
	tailSeconds := flag.Float64("tail", 0, "seconds of silence appended so the tail can ring out")
	legacy := flag.Bool("legacy", false, "reproduce the legacy mix-matrix and dry-setter behaviour")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: reverbpipe [flags] < in.f32 > out.f32\n\n")
		fmt.Fprintf(os.Stderr, "Reads interleaved stereo float32 LE from stdin and writes the reverberated signal to stdout.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg := core.ApplyProcessorOptions(core.WithSampleRate(*rate), core.WithBlockSize(*block))
	if err := cfg.Validate(); err != nil {
		die("%v", err)
	}

	var opts []reverb.Option
	if *legacy {
		opts = append(opts, reverb.WithLegacyBehavior())
	}
	r, err := reverb.New(cfg.SampleRate, opts...)
	if err != nil {
		die("%v", err)
	}
	drySet := flagSet("dry")
	if *legacy && drySet {
		fmt.Fprintf(os.Stderr, "note: with -legacy, -dry sets the wet gain\n")
	}
	params := mixParams(reverb.Params{Wet: *wet, Dry: *dry, RoomSize: *room, Dampening: *damp}.Clamped(), *legacy, drySet)
	r.SetParams(params)

	in := bufio.NewReader(os.Stdin)
	out := bufio.NewWriter(os.Stdout)

	frames, err := pipe(in, out, r, cfg.BlockSize, cfg.Frames(*tailSeconds))
	if err != nil {
		die("after %d frames: %v", frames, err)
	}
	if err := out.Flush(); err != nil {
		die("failed to flush output: %v", err)
	}
}

func die(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(1)
}

// flagSet reports whether the named flag was given on the command line.
func flagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

// pipe streams frames from r through p to w in blocks, then appends
// tailFrames of processed silence. It returns the number of frames written.
// A trailing partial frame in the input is dropped.
func pipe(r io.Reader, w io.Writer, p *reverb.Reverb, blockSize, tailFrames int) (int, error) {
	c := newCodec(blockSize)
	written := 0

	for {
		n, readErr := c.read(r)
		if n > 0 {
			c.block.Process(p)
			if err := c.write(w); err != nil {
				return written, err
			}
			written += n
		}
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			return written, readErr
		}
	}

	for tailFrames > 0 {
		n := min(tailFrames, blockSize)
		c.block.Resize(n)
		c.block.Zero()
		c.block.Process(p)
		if err := c.write(w); err != nil {
			return written, err
		}
		written += n
		tailFrames -= n
	}

	return written, nil
}
