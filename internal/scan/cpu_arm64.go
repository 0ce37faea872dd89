//go:build !noasm

package scan

import "golang.org/x/sys/cpu"

// FastASCII gates the whole-input ASCII fast paths in the unit packages.
var FastASCII = cpu.ARM64.HasASIMD
