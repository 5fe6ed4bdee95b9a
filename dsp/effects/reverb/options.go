package reverb

import "fmt"

// MatrixMode selects how comb outputs are folded through MixMatrix.
type MatrixMode int

const (
	// MatrixSum is a true matrix-vector product. MixMatrix has two columns
	// but the bank has eight combs, so the columns are repeated across the
	// bank: comb j is weighted by MixMatrix[row][j%2]. With the default
	// matrix the left wet signal is the sum of all eight combs and the
	// right is its negation. This differs from a fold over the matrix
	// width alone, which would only ever read combs 0 and 1.
	MatrixSum MatrixMode = iota
	// MatrixLastColumn reproduces the legacy fold where each column
	// overwrites the row accumulator. Only comb 1 reaches the output.
	MatrixLastColumn
)

// String returns the mode name.
func (m MatrixMode) String() string {
	switch m {
	case MatrixSum:
		return "sum"
	case MatrixLastColumn:
		return "last-column"
	default:
		return fmt.Sprintf("MatrixMode(%d)", int(m))
	}
}

// Option configures a Reverb at construction.
type Option func(*Reverb)

// WithMatrixMode selects the comb fold. Unknown modes are ignored.
func WithMatrixMode(mode MatrixMode) Option {
	return func(r *Reverb) {
		if mode == MatrixSum || mode == MatrixLastColumn {
			r.matrixMode = mode
		}
	}
}

// WithDryCoupledToWet makes SetDry write the wet gain, matching legacy
// hosts where both mix controls drive a single internal gain. The dry gain
// is fixed at 0, so the input only reaches the output through the
// network.
func WithDryCoupledToWet() Option {
	return func(r *Reverb) {
		r.dryCoupled = true
		r.dry = 0
	}
}

// WithLegacyBehavior enables every legacy quirk, for sessions that must
// sound identical to legacy builds.
func WithLegacyBehavior() Option {
	return func(r *Reverb) {
		WithMatrixMode(MatrixLastColumn)(r)
		WithDryCoupledToWet()(r)
	}
}
