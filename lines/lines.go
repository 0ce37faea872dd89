// Package lines indexes lines delimited by the full Unicode line-break
// set (UAX #14 mandatory breaks):
//
//	U+000A  LF            U+000D  CR          U+000D U+000A  CRLF
//	U+000B  VT            U+0085  NEL (C2 85 in UTF-8)
//	U+000C  FF            U+2028  LINE SEPARATOR (E2 80 A8)
//	                      U+2029  PARAGRAPH SEPARATOR (E2 80 A9)
//
// Multi-byte sequences are one atomic break occupying their full span, and
// a CRLF pair is exactly one break ending after the LF, including when a
// scan is chunked across the pair.
//
// Line breaks belong to the line they end, and text ending in a line break
// has a trailing empty line. Any byte offset in [0, len(b)] is a valid
// argument, including offsets inside a multi-byte encoding; a break whose
// span is cut by the offset has not ended yet and is not counted.
// Out-of-range indices panic. Nothing is allocated on the success path.
package lines

import (
	"fmt"

	"github.com/mhr3/textidx/internal/scan"
)

// CountBreaks returns the number of line breaks in b.
func CountBreaks(b []byte) int {
	if scan.Accelerated && len(b) >= scan.WordBytes {
		return breaksWide(b)
	}
	return breaksScalar(b)
}

// Count returns the number of lines in b, which is CountBreaks(b) + 1.
func Count(b []byte) int {
	return CountBreaks(b) + 1
}

// FromByteIndex returns the index of the line containing byteIdx: the
// number of line breaks whose full span ends at or before it.
//
// Panics if byteIdx is negative or greater than len(b).
func FromByteIndex(b []byte, byteIdx int) int {
	if byteIdx < 0 || byteIdx > len(b) {
		panic(fmt.Sprintf("lines: byte index %d out of range [0:%d]", byteIdx, len(b)))
	}
	n := CountBreaks(b[:byteIdx])
	if byteIdx > 0 && byteIdx < len(b) && b[byteIdx-1] == '\r' && b[byteIdx] == '\n' {
		n--
	}
	return n
}

// ToByteIndex returns the byte offset of the start of line lineIdx. Line 0
// starts at offset 0; every other line starts immediately after the break
// ending the previous line.
//
// Panics if lineIdx is negative or greater than CountBreaks(b).
func ToByteIndex(b []byte, lineIdx int) int {
	if lineIdx < 0 {
		panic(fmt.Sprintf("lines: line index %d out of range", lineIdx))
	}
	if scan.Accelerated && len(b) >= scan.WordBytes {
		return toByteWide(b, lineIdx)
	}
	return toByteScalar(b, lineIdx, 0, 0)
}

// breaksScalar counts breaks one byte at a time, keying each break on its
// first byte and looking ahead only within b. A sequence cut by the end of
// b has not ended and is not counted; a CR whose LF lies beyond b counts
// as a lone CR.
func breaksScalar(b []byte) int {
	n := 0
	for i := 0; i < len(b); i++ {
		switch c := b[i]; {
		case c >= 0x0A && c <= 0x0D:
			// CRLF counts once, at the LF.
			if c != '\r' || i+1 >= len(b) || b[i+1] != '\n' {
				n++
			}
		case c == 0xC2:
			if i+1 < len(b) && b[i+1] == 0x85 {
				n++
			}
		case c == 0xE2:
			if i+2 < len(b) && b[i+1] == 0x80 && b[i+2]&0xFE == 0xA8 {
				n++
			}
		}
	}
	return n
}

// breaksInWord counts the breaks contained entirely within the word w.
// Sequences straddling the word boundary are the caller's carry, resolved
// by boundaryAdjust.
func breaksInWord(w uint64) int {
	n := scan.Count(scan.Between(w, 0x09, 0x0E))
	if cr := scan.EqMask(w, '\r'); cr != 0 {
		n -= scan.Count(scan.Pair(cr, scan.EqMask(w, '\n')))
	}
	if c2 := scan.EqMask(w, 0xC2); c2 != 0 {
		n += scan.Count(scan.Pair(c2, scan.EqMask(w, 0x85)))
	}
	if e2 := scan.EqMask(w, 0xE2); e2 != 0 {
		n += scan.Count(scan.Triple(e2, scan.EqMask(w, 0x80), scan.MaskEq(w, 0xFE, 0xA8)))
	}
	return n
}

// boundaryAdjust corrects the break count at a chunk boundary at offset i,
// where p2 and p1 are the carried last two bytes of the previous chunk
// (zero when absent). A CRLF pair counted on both sides of the cut yields
// -1; a multi-byte break whose lead bytes fell in the previous chunk
// yields +1.
func boundaryAdjust(b []byte, i int, p2, p1 byte) int {
	if i >= len(b) {
		return 0
	}
	c := b[i]
	adj := 0
	if p1 == '\r' && c == '\n' {
		adj--
	}
	if p1 == 0xC2 && c == 0x85 {
		adj++
	}
	if p2 == 0xE2 && p1 == 0x80 && c&0xFE == 0xA8 {
		adj++
	}
	if p1 == 0xE2 && c == 0x80 && i+1 < len(b) && b[i+1]&0xFE == 0xA8 {
		adj++
	}
	return adj
}

func breaksWide(b []byte) int {
	n := 0
	i := 0
	var p2, p1 byte
	for ; i+scan.WordBytes <= len(b); i += scan.WordBytes {
		n += breaksInWord(scan.Word(b, i)) + boundaryAdjust(b, i, p2, p1)
		p2, p1 = b[i+scan.WordBytes-2], b[i+scan.WordBytes-1]
	}
	n += boundaryAdjust(b, i, p2, p1)
	return n + breaksScalar(b[i:])
}

// endsAt reports whether a line break ends at position i, meaning b[i] is
// the final byte of a break sequence.
func endsAt(b []byte, i int) bool {
	switch c := b[i]; {
	case c == '\n', c == 0x0B, c == 0x0C:
		return true
	case c == '\r':
		return i+1 >= len(b) || b[i+1] != '\n'
	case c == 0x85:
		return i >= 1 && b[i-1] == 0xC2
	case c&0xFE == 0xA8:
		return i >= 2 && b[i-2] == 0xE2 && b[i-1] == 0x80
	}
	return false
}

// toByteScalar walks byte by byte from offset i with seen breaks already
// counted behind it.
func toByteScalar(b []byte, lineIdx, i, seen int) int {
	for ; i < len(b); i++ {
		if seen == lineIdx {
			return i
		}
		if endsAt(b, i) {
			seen++
		}
	}
	if seen == lineIdx {
		return len(b)
	}
	panic(fmt.Sprintf("lines: line index %d out of range [0:%d]", lineIdx, seen))
}

func toByteWide(b []byte, lineIdx int) int {
	seen := 0
	i := 0
	if lineIdx > 0 {
		var p2, p1 byte
		for i+scan.WordBytes <= len(b) {
			n := breaksInWord(scan.Word(b, i)) + boundaryAdjust(b, i, p2, p1)
			if seen+n >= lineIdx {
				break
			}
			seen += n
			p2, p1 = b[i+scan.WordBytes-2], b[i+scan.WordBytes-1]
			i += scan.WordBytes
		}
	}
	// A pair split at the stopping point was already counted at its CR.
	if i > 0 && i < len(b) && b[i-1] == '\r' && b[i] == '\n' {
		i++
	}
	return toByteScalar(b, lineIdx, i, seen)
}
