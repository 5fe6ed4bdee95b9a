// Package core holds processing configuration and small numeric helpers
// shared by the reverb kernels, the tail analysis and the host commands.
package core
