// Package utf16 converts between byte offsets in UTF-8 encoded text and the
// code unit indices the same text would have in UTF-16.
//
// Scalar values above U+FFFF occupy a surrogate pair (two code units) in
// UTF-16 and a 4-byte sequence in UTF-8, so the code unit count is the char
// count plus the number of 4-byte lead bytes.
//
// The precondition and failure policy match package chars: input must be
// valid UTF-8 (violations are unspecified, not detected), out-of-range
// indices and misaligned byte offsets panic, and nothing is allocated on
// the success path.
package utf16

import (
	"fmt"

	"github.com/mhr3/textidx/chars"
	"github.com/mhr3/textidx/internal/scan"
)

// Count returns the number of UTF-16 code units that would encode b.
func Count(b []byte) int {
	if scan.FastASCII && scan.IsASCII(b) {
		return len(b)
	}
	return chars.Count(b) + CountSurrogates(b)
}

// CountSurrogates returns the number of surrogate pairs that would encode
// b, which is the number of 4-byte UTF-8 lead bytes.
func CountSurrogates(b []byte) int {
	if scan.Accelerated && len(b) >= scan.WordBytes {
		return surrogatesWide(b)
	}
	return surrogatesScalar(b)
}

// FromByteIndex returns the UTF-16 code unit index of the scalar value
// starting at byteIdx. byteIdx == len(b) is valid and yields Count(b).
//
// Panics if byteIdx is negative, greater than len(b), or not on a scalar
// value boundary.
func FromByteIndex(b []byte, byteIdx int) int {
	checkByteIndex(b, byteIdx)
	return Count(b[:byteIdx])
}

// ToByteIndex returns the byte offset of the scalar value owning the
// u16Idx-th code unit. An index addressing either half of a surrogate pair
// resolves to the start of the owning 4-byte sequence. u16Idx == Count(b)
// is valid and yields len(b).
//
// Panics if u16Idx is negative or greater than Count(b).
func ToByteIndex(b []byte, u16Idx int) int {
	if u16Idx < 0 {
		panic(fmt.Sprintf("utf16: code unit index %d out of range", u16Idx))
	}
	if scan.FastASCII && scan.IsASCII(b) {
		if u16Idx > len(b) {
			panic(fmt.Sprintf("utf16: code unit index %d out of range [0:%d]", u16Idx, len(b)))
		}
		return u16Idx
	}
	if scan.Accelerated && len(b) >= scan.WordBytes {
		return toByteWide(b, u16Idx)
	}
	return toByteScalar(b, u16Idx)
}

func isContinuation(c byte) bool {
	return c&0xC0 == 0x80
}

// isWide reports whether the lead byte c starts a 4-byte sequence, i.e. a
// scalar value that takes two UTF-16 code units.
func isWide(c byte) bool {
	return c&0xF0 == 0xF0
}

func checkByteIndex(b []byte, i int) {
	if i < 0 || i > len(b) {
		panic(fmt.Sprintf("utf16: byte index %d out of range [0:%d]", i, len(b)))
	}
	if i < len(b) && isContinuation(b[i]) {
		panic(fmt.Sprintf("utf16: byte index %d is not on a scalar value boundary", i))
	}
}

func surrogatesScalar(b []byte) int {
	n := 0
	for _, c := range b {
		if isWide(c) {
			n++
		}
	}
	return n
}

func surrogatesWide(b []byte) int {
	n := 0
	i := 0
	for ; i+scan.WordBytes <= len(b); i += scan.WordBytes {
		n += scan.Count(scan.MaskEq(scan.Word(b, i), 0xF0, 0xF0))
	}
	return n + surrogatesScalar(b[i:])
}

func toByteScalar(b []byte, u16Idx int) int {
	seen := 0
	for i, c := range b {
		if isContinuation(c) {
			continue
		}
		units := 1
		if isWide(c) {
			units = 2
		}
		if seen+units > u16Idx {
			return i
		}
		seen += units
	}
	if seen == u16Idx {
		return len(b)
	}
	panic(fmt.Sprintf("utf16: code unit index %d out of range [0:%d]", u16Idx, seen))
}

func toByteWide(b []byte, u16Idx int) int {
	seen := 0
	i := 0
	for i+scan.WordBytes <= len(b) {
		w := scan.Word(b, i)
		units := scan.WordBytes -
			scan.Count(scan.MaskEq(w, 0xC0, 0x80)) +
			scan.Count(scan.MaskEq(w, 0xF0, 0xF0))
		if seen+units > u16Idx {
			break
		}
		seen += units
		i += scan.WordBytes
	}
	for ; i < len(b); i++ {
		c := b[i]
		if isContinuation(c) {
			continue
		}
		units := 1
		if isWide(c) {
			units = 2
		}
		if seen+units > u16Idx {
			return i
		}
		seen += units
	}
	if seen == u16Idx {
		return len(b)
	}
	panic(fmt.Sprintf("utf16: code unit index %d out of range [0:%d]", u16Idx, seen))
}
