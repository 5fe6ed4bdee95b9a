package reverb

import "github.com/cwbudde/algo-reverb/dsp/core"

// MaxRoomSize is the largest room size Params.Clamped lets through. Comb
// feedback equals room size, so anything at or above 1 never decays.
const MaxRoomSize = 0.99

// Params is the complete user-facing state of a Reverb. It is what a host
// needs to save and restore a session.
type Params struct {
	Wet       float64
	Dry       float64
	RoomSize  float64
	Dampening float64
}

// Clamped returns p limited to safe ranges: gains and dampening to [0,1],
// room size to [0,MaxRoomSize].
func (p Params) Clamped() Params {
	return Params{
		Wet:       core.Clamp(p.Wet, 0, 1),
		Dry:       core.Clamp(p.Dry, 0, 1),
		RoomSize:  core.Clamp(p.RoomSize, 0, MaxRoomSize),
		Dampening: core.Clamp(p.Dampening, 0, 1),
	}
}

// Coupled returns p with Dry set to Wet. With WithDryCoupledToWet both
// controls address the wet gain and SetParams applies Dry last, so this is
// the form that keeps the Wet value.
func (p Params) Coupled() Params {
	p.Dry = p.Wet
	return p
}

// Params returns the current parameters. With WithDryCoupledToWet, Dry
// reports the wet gain it controls, so the result can be passed back to
// SetParams unchanged.
func (r *Reverb) Params() Params {
	p := Params{
		Wet:       r.wet,
		Dry:       r.dry,
		RoomSize:  r.roomSize,
		Dampening: r.damp,
	}
	if r.dryCoupled {
		p = p.Coupled()
	}
	return p
}

// SetParams applies p through the individual setters, wet before dry, so
// the dry/wet coupling option behaves as it does for separate calls.
func (r *Reverb) SetParams(p Params) {
	r.SetRoomSize(p.RoomSize)
	r.SetDampening(p.Dampening)
	r.SetWet(p.Wet)
	r.SetDry(p.Dry)
}
