package reverb

import "testing"

func TestParamsClamped(t *testing.T) {
	tests := []struct {
		name string
		in   Params
		want Params
	}{
		{
			name: "in range",
			in:   Params{Wet: 0.3, Dry: 0.7, RoomSize: 0.5, Dampening: 0.5},
			want: Params{Wet: 0.3, Dry: 0.7, RoomSize: 0.5, Dampening: 0.5},
		},
		{
			name: "out of range",
			in:   Params{Wet: -1, Dry: 2, RoomSize: 1.5, Dampening: -0.1},
			want: Params{Wet: 0, Dry: 1, RoomSize: MaxRoomSize, Dampening: 0},
		},
		{
			name: "unstable room size",
			in:   Params{RoomSize: 1},
			want: Params{RoomSize: MaxRoomSize},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Clamped(); got != tt.want {
				t.Fatalf("Clamped() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSetParamsRoundTrip(t *testing.T) {
	r := mustNew(t, 48000)
	p := Params{Wet: 0.25, Dry: 0.75, RoomSize: 0.8, Dampening: 0.1}
	r.SetParams(p)

	if got := r.Params(); got != p {
		t.Fatalf("Params() = %+v, want %+v", got, p)
	}
}

func TestSetParamsDryCoupled(t *testing.T) {
	r := mustNew(t, 48000, WithDryCoupledToWet())
	r.SetParams(Params{Wet: 0.25, Dry: 0.75, RoomSize: 0.8, Dampening: 0.1})

	if r.Wet() != 0.75 {
		t.Fatalf("wet = %v, want 0.75 (dry applied last)", r.Wet())
	}
}

func TestParamsCoupled(t *testing.T) {
	p := Params{Wet: 0.4, Dry: 0.9, RoomSize: 0.7, Dampening: 0.2}.Coupled()
	want := Params{Wet: 0.4, Dry: 0.4, RoomSize: 0.7, Dampening: 0.2}
	if p != want {
		t.Fatalf("Coupled() = %+v, want %+v", p, want)
	}
}

func TestSetParamsRoundTripCoupled(t *testing.T) {
	r := mustNew(t, 48000, WithLegacyBehavior())
	r.SetParams(Params{Wet: 0.6, Dry: 0, RoomSize: 0.7, Dampening: 0.3}.Coupled())

	if r.Wet() != 0.6 || r.Dry() != 0 {
		t.Fatalf("wet=%v dry=%v, want 0.6 and 0", r.Wet(), r.Dry())
	}

	p := r.Params()
	r.SetParams(p)
	if r.Wet() != 0.6 {
		t.Fatalf("wet after round trip = %v, want 0.6", r.Wet())
	}
	if p.Dry != p.Wet {
		t.Fatalf("Params() = %+v, want Dry to report the wet gain", p)
	}
}
