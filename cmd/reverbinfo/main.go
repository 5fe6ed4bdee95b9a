// Command reverbinfo prints the delay network and tail metrics of the
// Schroeder reverb at a given sample rate and parameter set.
//
// Usage:
//
//	reverbinfo [flags]
//
// Examples:
//
//	reverbinfo
//	reverbinfo -rate 96000 -room 0.85 -damp 0.2
//	reverbinfo -sweep -damp 0.4
//	reverbinfo -legacy -room 0.7
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-reverb/dsp/core"
	"github.com/cwbudde/algo-reverb/dsp/effects/reverb"
	"github.com/cwbudde/algo-reverb/measure/tail"
)

var sweepRoomSizes = []float64{0.1, 0.3, 0.5, 0.7, 0.8, 0.9, 0.95}

func main() {
	rate := flag.Float64("rate", reverb.ReferenceSampleRate, "sample rate in Hz")
	room := flag.Float64("room", 0.5, "room size (comb feedback), clamped to [0, 0.99]")
	damp := flag.Float64("damp", 0.5, "dampening in [0, 1]")
	wet := flag.Float64("wet", 1, "wet gain in [0, 1]")
	dry := flag.Float64("dry", 0, "dry gain in [0, 1]; with -legacy it sets the wet gain and defaults to -wet")
	floor := flag.Float64("floor", -80, "level in dB below which the tail counts as decayed")
	seconds := flag.Float64("seconds", 4, "impulse response length in seconds")
	legacy := flag.Bool("legacy", false, "reproduce the legacy mix-matrix and dry-setter behaviour")
	sweep := flag.Bool("sweep", false, "tabulate tail metrics over a range of room sizes")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: reverbinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints delay lengths and impulse-response metrics of the reverb.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  reverbinfo -rate 96000 -room 0.85\n")
		fmt.Fprintf(os.Stderr, "  reverbinfo -sweep -damp 0.4\n")
		fmt.Fprintf(os.Stderr, "  reverbinfo -legacy -room 0.7\n")
	}
	flag.Parse()

	var opts []reverb.Option
	if *legacy {
		opts = append(opts, reverb.WithLegacyBehavior())
	}

	r, err := reverb.New(*rate, opts...)
	if err != nil {
		die("%v", err)
	}

	frames := int(*seconds * *rate)
	if frames <= 0 {
		die("seconds must be > 0: %v", *seconds)
	}

	drySet := flagSet("dry")
	if *legacy && drySet {
		fmt.Fprintf(os.Stderr, "note: with -legacy, -dry sets the wet gain\n")
	}
	params := mixParams(reverb.Params{Wet: *wet, Dry: *dry, RoomSize: *room, Dampening: *damp}.Clamped(), *legacy, drySet)
	threshold := core.DBToLinear(*floor)

	printLengths(r)
	fmt.Println()

	if *sweep {
		printSweep(r, params, frames, threshold)
		return
	}
	printMetrics(r, params, frames, threshold)
}

func die(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(1)
}

func printLengths(r *reverb.Reverb) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Stage\tTuned [samples]\tScaled [samples]\tScaled [ms]\n")
	fmt.Fprintf(tw, "-----\t---------------\t----------------\t-----------\n")

	ms := 1000 / r.SampleRate()
	for i, n := range r.AllPassLengths() {
		fmt.Fprintf(tw, "allpass %d\t%d\t%d\t%.2f\n", i, reverb.AllPassTuning[i], n, float64(n)*ms)
	}
	for i, n := range r.CombLengths() {
		fmt.Fprintf(tw, "comb %d\t%d\t%d\t%.2f\n", i, reverb.CombTuning[i], n, float64(n)*ms)
	}

	if err := tw.Flush(); err != nil {
		die("failed to flush output: %v", err)
	}
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

func analyze(r *reverb.Reverb, p reverb.Params, frames int, threshold float64) tail.Metrics {
	r.SetParams(p)
	left, _ := r.ImpulseResponse(frames)

	a := tail.NewAnalyzer(r.SampleRate())
	a.Threshold = threshold
	m, err := a.Analyze(left)
	if err != nil {
		die("analysis failed: %v", err)
	}
	return m
}

func printMetrics(r *reverb.Reverb, p reverb.Params, frames int, threshold float64) {
	m := analyze(r, p, frames, threshold)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Matrix\t%s\n", r.MatrixMode())
	fmt.Fprintf(tw, "Params\twet=%.3f dry=%.3f room=%.3f damp=%.3f\n", r.Wet(), r.Dry(), r.RoomSize(), r.Dampening())
	fmt.Fprintf(tw, "RT60\t%.3f s\n", m.RT60)
	fmt.Fprintf(tw, "EDT\t%.3f s\n", m.EDT)
	fmt.Fprintf(tw, "T20 / T30\t%.3f s / %.3f s\n", m.T20, m.T30)
	fmt.Fprintf(tw, "Decay\t%.3f s (< %.0f dB)\n", float64(m.DecaySamples)/r.SampleRate(), core.LinearToDB(threshold))
	fmt.Fprintf(tw, "Centroid\t%.0f Hz\n", m.Centroid)
	fmt.Fprintf(tw, "Brightness\t%.5f\n", m.Brightness)
	fmt.Fprintf(tw, "Energy\t%.4f\n", m.Energy)

	if err := tw.Flush(); err != nil {
		die("failed to flush output: %v", err)
	}
}

func printSweep(r *reverb.Reverb, p reverb.Params, frames int, threshold float64) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Room\tRT60 [s]\tEDT [s]\tDecay [s]\tCentroid [Hz]\tBrightness\n")
	fmt.Fprintf(tw, "----\t--------\t-------\t---------\t-------------\t----------\n")

	for _, room := range sweepRoomSizes {
		p.RoomSize = room
		m := analyze(r, p, frames, threshold)
		fmt.Fprintf(tw, "%.2f\t%.3f\t%.3f\t%.3f\t%.0f\t%.5f\n",
			room, m.RT60, m.EDT, float64(m.DecaySamples)/r.SampleRate(), m.Centroid, m.Brightness)
	}

	if err := tw.Flush(); err != nil {
		die("failed to flush output: %v", err)
	}
}
