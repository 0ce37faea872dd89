// Package chars converts between byte offsets and Unicode scalar value
// (char) indices in UTF-8 encoded text.
//
// All functions assume their input is valid UTF-8. Feeding them malformed
// bytes violates that precondition and the results are unspecified;
// malformed input is never detected or repaired. Indices outside the valid
// range, and byte offsets pointing into the interior of a multi-byte
// encoding, panic with a descriptive message. Nothing is allocated on the
// success path.
package chars

import (
	"fmt"

	"github.com/mhr3/textidx/internal/scan"
)

// Count returns the number of Unicode scalar values encoded in b.
func Count(b []byte) int {
	if scan.FastASCII && scan.IsASCII(b) {
		return len(b)
	}
	if scan.Accelerated && len(b) >= scan.WordBytes {
		return len(b) - continuationsWide(b)
	}
	return len(b) - continuationsScalar(b)
}

// FromByteIndex returns the char index of the scalar value starting at
// byteIdx; equivalently, the number of scalar values strictly before it.
// byteIdx == len(b) is valid and yields Count(b).
//
// Panics if byteIdx is negative, greater than len(b), or not on a scalar
// value boundary.
func FromByteIndex(b []byte, byteIdx int) int {
	checkByteIndex(b, byteIdx)
	return Count(b[:byteIdx])
}

// ToByteIndex returns the byte offset of the charIdx-th scalar value.
// charIdx == Count(b) is valid and yields len(b).
//
// Panics if charIdx is negative or greater than Count(b).
func ToByteIndex(b []byte, charIdx int) int {
	if charIdx < 0 {
		panic(fmt.Sprintf("chars: char index %d out of range", charIdx))
	}
	if scan.FastASCII && scan.IsASCII(b) {
		if charIdx > len(b) {
			panic(fmt.Sprintf("chars: char index %d out of range [0:%d]", charIdx, len(b)))
		}
		return charIdx
	}
	if scan.Accelerated && len(b) >= scan.WordBytes {
		return toByteWide(b, charIdx)
	}
	return toByteScalar(b, charIdx)
}

func isContinuation(c byte) bool {
	return c&0xC0 == 0x80
}

func checkByteIndex(b []byte, i int) {
	if i < 0 || i > len(b) {
		panic(fmt.Sprintf("chars: byte index %d out of range [0:%d]", i, len(b)))
	}
	if i < len(b) && isContinuation(b[i]) {
		panic(fmt.Sprintf("chars: byte index %d is not on a scalar value boundary", i))
	}
}

func continuationsScalar(b []byte) int {
	n := 0
	for _, c := range b {
		if isContinuation(c) {
			n++
		}
	}
	return n
}

func continuationsWide(b []byte) int {
	n := 0
	i := 0
	for ; i+4*scan.WordBytes <= len(b); i += 4 * scan.WordBytes {
		n += scan.Count(scan.MaskEq(scan.Word(b, i), 0xC0, 0x80)) +
			scan.Count(scan.MaskEq(scan.Word(b, i+8), 0xC0, 0x80)) +
			scan.Count(scan.MaskEq(scan.Word(b, i+16), 0xC0, 0x80)) +
			scan.Count(scan.MaskEq(scan.Word(b, i+24), 0xC0, 0x80))
	}
	for ; i+scan.WordBytes <= len(b); i += scan.WordBytes {
		n += scan.Count(scan.MaskEq(scan.Word(b, i), 0xC0, 0x80))
	}
	return n + continuationsScalar(b[i:])
}

func toByteScalar(b []byte, charIdx int) int {
	seen := 0
	for i, c := range b {
		if !isContinuation(c) {
			if seen == charIdx {
				return i
			}
			seen++
		}
	}
	if seen == charIdx {
		return len(b)
	}
	panic(fmt.Sprintf("chars: char index %d out of range [0:%d]", charIdx, seen))
}

func toByteWide(b []byte, charIdx int) int {
	seen := 0
	i := 0
	for i+scan.WordBytes <= len(b) {
		leads := scan.WordBytes - scan.Count(scan.MaskEq(scan.Word(b, i), 0xC0, 0x80))
		if seen+leads > charIdx {
			break
		}
		seen += leads
		i += scan.WordBytes
	}
	for ; i < len(b); i++ {
		if !isContinuation(b[i]) {
			if seen == charIdx {
				return i
			}
			seen++
		}
	}
	if seen == charIdx {
		return len(b)
	}
	panic(fmt.Sprintf("chars: char index %d out of range [0:%d]", charIdx, seen))
}
