// Command reverblive runs the reverb on the default audio input and output.
//
// Parameters can be changed while running by typing "<name> <value>" on
// stdin, where name is one of room, damp, wet or dry. An empty line, "q"
// or SIGINT stops the stream.
//
// Usage:
//
//	reverblive [flags]
//
// Examples:
//
//	reverblive -room 0.85 -wet 0.4
//	reverblive -rate 48000 -frames 128
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gordonklaus/portaudio"

	"github.com/cwbudde/algo-reverb/dsp/core"
	"github.com/cwbudde/algo-reverb/dsp/effects/reverb"
)

func main() {
	rate := flag.Float64("rate", 44100, "sample rate in Hz")
	frames := flag.Int("frames", 256, "frames per audio callback")
	room := flag.Float64("room", 0.5, "room size, clamped to [0, 0.99]")
	damp := flag.Float64("damp", 0.5, "dampening in [0, 1]")
	wet := flag.Float64("wet", 0.3, "wet gain in [0, 1]")
	dry := flag.Float64("dry", 1, "dry gain in [0, 1]; with -legacy it sets the wet gain and defaults to -wet")
	legacy := flag.Bool("legacy", false, "reproduce the legacy mix-matrix and dry-setter behaviour")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: reverblive [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Processes the default stereo input through the reverb to the default output.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg := core.ApplyProcessorOptions(core.WithSampleRate(*rate), core.WithBlockSize(*frames))
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

	h := newHost(r, cfg.BlockSize)

	if err := portaudio.Initialize(); err != nil {
		die("portaudio: %v", err)
	}
	defer portaudio.Terminate()

	stream, err := portaudio.OpenDefaultStream(2, 2, cfg.SampleRate, cfg.BlockSize, h.process)
	if err != nil {
		die("open stream: %v", err)
	}
	defer stream.Close()

	if err := stream.Start(); err != nil {
		die("start stream: %v", err)
	}
	fmt.Printf("running at %.0f Hz, %d frames per buffer; %s\n", cfg.SampleRate, cfg.BlockSize, formatParams(params))

	done := make(chan struct{})
	go func() {
		defer close(done)
		readCommands(bufio.NewScanner(os.Stdin), params, h, *legacy)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	select {
	case <-done:
	case <-sig:
	}

	if err := stream.Stop(); err != nil {
		die("stop stream: %v", err)
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

func readCommands(sc *bufio.Scanner, params reverb.Params, h *host, coupled bool) {
	for sc.Scan() {
		next, quit, err := applyCommand(params, sc.Text(), coupled)
		if quit {
			return
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			continue
		}
		params = next
		h.update(params)
		fmt.Println(formatParams(params))
	}
}

func formatParams(p reverb.Params) string {
	return fmt.Sprintf("room=%.3f damp=%.3f wet=%.3f dry=%.3f", p.RoomSize, p.Dampening, p.Wet, p.Dry)
}
