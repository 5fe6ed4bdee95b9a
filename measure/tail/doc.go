// Package tail measures reverberation tails.
//
// It reports the decay and colour of an impulse response:
//
//   - RT60, EDT, T20, T30 from the Schroeder backward integral
//   - DecaySamples: length until the response stays below a threshold
//   - DiffEnergy and Brightness: first-difference energy, a cheap
//     high-frequency proxy, absolute and relative to total energy
//   - Centroid: FFT spectral centroid in Hz
//
// # Usage
//
//	r, _ := reverb.New(48000)
//	left, _ := r.ImpulseResponse(96000)
//	m, err := tail.NewAnalyzer(48000).Analyze(left)
//	fmt.Printf("RT60 = %.2f s, centroid = %.0f Hz\n", m.RT60, m.Centroid)
package tail
