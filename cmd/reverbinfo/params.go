package main

import "github.com/cwbudde/algo-reverb/dsp/effects/reverb"

// mixParams adapts p to the legacy coupling, where the dry control drives
// the wet gain. Unless -dry was given explicitly it follows -wet, so the
// legacy defaults still produce a tail.
func mixParams(p reverb.Params, legacy, drySet bool) reverb.Params {
	if legacy && !drySet {
		return p.Coupled()
	}
	return p
}
