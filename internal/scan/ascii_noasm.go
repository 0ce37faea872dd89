//go:build noasm

package scan

// Accelerated reports whether the wide scanning paths are compiled in.
// It never changes observable results, only throughput.
const Accelerated = false

// IsASCII reports whether b contains no byte above 0x7F.
func IsASCII(b []byte) bool {
	for _, c := range b {
		if c >= 0x80 {
			return false
		}
	}
	return true
}
