//go:build !noasm

package scan

import "golang.org/x/sys/cpu"

// FastASCII gates the whole-input ASCII fast paths in the unit packages.
// The extra classification pass only pays for itself when the vector
// kernels behind ascii.Valid are available.
var FastASCII = cpu.X86.HasSSE41 || cpu.X86.HasAVX2
