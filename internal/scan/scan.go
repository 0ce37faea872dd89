// Package scan provides the word-at-a-time byte classification primitives
// shared by the unit packages (chars, utf16 and the lines variants).
//
// The primitives operate on 8-byte little-endian words and produce per-lane
// masks with the high bit of a lane set when the corresponding byte matches.
// Classifying a byte as a UTF-8 lead, continuation or 4-byte lead depends
// only on that byte's own bit pattern, so these masks compose across chunks
// without any carried state; multi-byte line-break sequences are the
// exception and are handled by the callers with an explicit carry.
//
// The wide paths are compiled out under the noasm build tag, leaving the
// byte-at-a-time fallbacks as the only strategy. The two strategies return
// identical results for every input; the tag is a performance choice only.
package scan

import (
	"encoding/binary"
	"math/bits"
)

// WordBytes is the width of the scanning window in bytes.
const WordBytes = 8

const (
	ones  uint64 = 0x0101010101010101
	highs uint64 = 0x8080808080808080
)

// Word loads 8 bytes of b starting at i as a little-endian word, so that
// byte b[i+n] occupies lane n.
func Word(b []byte, i int) uint64 {
	return binary.LittleEndian.Uint64(b[i:])
}

// EqMask returns a mask with the high bit of each lane set where the
// corresponding byte of w equals v.
func EqMask(w uint64, v byte) uint64 {
	x := w ^ (ones * uint64(v))
	return ^(((x & ^highs) + ^highs) | x) & highs
}

// MaskEq returns the lanes of w where byte&mask == want. want must not have
// bits outside mask.
func MaskEq(w uint64, mask, want byte) uint64 {
	return EqMask(w&(ones*uint64(mask)), want)
}

// Between returns the lanes of w strictly between lo and hi, where
// lo < hi <= 127. Lanes with the high bit set never match.
func Between(w uint64, lo, hi byte) uint64 {
	x := w & (ones * 127)
	return ((ones*(127+uint64(hi)) - x) & ^w & (x + ones*(127-uint64(lo)))) & highs
}

// Pair returns the lanes of first immediately followed by a lane of second
// within the same word. Pairs straddling the word boundary are the caller's
// carry.
func Pair(first, second uint64) uint64 {
	return first & (second >> 8)
}

// Triple is Pair extended to three consecutive lanes.
func Triple(first, second, third uint64) uint64 {
	return first & (second >> 8) & (third >> 16)
}

// Count reports how many lanes of mask m are set.
func Count(m uint64) int {
	return bits.OnesCount64(m)
}

// First returns the index of the lowest set lane of m. m must be non-zero.
func First(m uint64) int {
	return bits.TrailingZeros64(m) / 8
}
