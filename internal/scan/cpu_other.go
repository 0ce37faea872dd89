//go:build noasm || (!amd64 && !arm64)

package scan

// FastASCII gates the whole-input ASCII fast paths in the unit packages.
var FastASCII = false
