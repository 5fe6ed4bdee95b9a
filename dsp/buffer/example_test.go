package buffer_test

import (
	"fmt"

	"github.com/cwbudde/algo-reverb/dsp/buffer"
)

func ExampleStereo() {
	s := buffer.NewStereo(0)
	s.Deinterleave([]float32{1, -1, 0.5, -0.5})

	fmt.Println(s.Frames(), s.Left(), s.Right())

	// Output:
	// 2 [1 0.5] [-1 -0.5]
}
