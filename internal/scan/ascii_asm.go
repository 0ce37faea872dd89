//go:build !noasm

package scan

import "github.com/segmentio/asm/ascii"

// Accelerated reports whether the wide scanning paths are compiled in.
// It never changes observable results, only throughput.
const Accelerated = true

// IsASCII reports whether b contains no byte above 0x7F.
func IsASCII(b []byte) bool {
	return ascii.Valid(b)
}
