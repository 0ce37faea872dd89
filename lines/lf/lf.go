// Package lf indexes lines delimited by line feed bytes (0x0A) alone.
// Carriage returns are not recognized, so CRLF sequences still terminate a
// line, by way of their LF.
//
// Line breaks belong to the line they end, and text ending in a line break
// has a trailing empty line. Any byte offset in [0, len(b)] is a valid
// argument, including offsets inside a multi-byte encoding; out-of-range
// indices panic. Nothing is allocated on the success path.
package lf

import (
	"fmt"

	"github.com/mhr3/textidx/internal/scan"
)

// CountBreaks returns the number of line feeds in b.
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
// number of line breaks ending at or before it.
//
// Panics if byteIdx is negative or greater than len(b).
func FromByteIndex(b []byte, byteIdx int) int {
	if byteIdx < 0 || byteIdx > len(b) {
		panic(fmt.Sprintf("lf: byte index %d out of range [0:%d]", byteIdx, len(b)))
	}
	return CountBreaks(b[:byteIdx])
}

// ToByteIndex returns the byte offset of the start of line lineIdx. Line 0
// starts at offset 0; every other line starts immediately after the line
// break ending the previous line.
//
// Panics if lineIdx is negative or greater than CountBreaks(b).
func ToByteIndex(b []byte, lineIdx int) int {
	if lineIdx < 0 {
		panic(fmt.Sprintf("lf: line index %d out of range", lineIdx))
	}
	if scan.Accelerated && len(b) >= scan.WordBytes {
		return toByteWide(b, lineIdx)
	}
	return toByteScalar(b, lineIdx)
}

func breaksScalar(b []byte) int {
	n := 0
	for _, c := range b {
		if c == '\n' {
			n++
		}
	}
	return n
}

func breaksWide(b []byte) int {
	n := 0
	i := 0
	for ; i+4*scan.WordBytes <= len(b); i += 4 * scan.WordBytes {
		n += scan.Count(scan.EqMask(scan.Word(b, i), '\n')) +
			scan.Count(scan.EqMask(scan.Word(b, i+8), '\n')) +
			scan.Count(scan.EqMask(scan.Word(b, i+16), '\n')) +
			scan.Count(scan.EqMask(scan.Word(b, i+24), '\n'))
	}
	for ; i+scan.WordBytes <= len(b); i += scan.WordBytes {
		n += scan.Count(scan.EqMask(scan.Word(b, i), '\n'))
	}
	return n + breaksScalar(b[i:])
}

func toByteScalar(b []byte, lineIdx int) int {
	seen := 0
	for i := 0; i < len(b); i++ {
		if seen == lineIdx {
			return i
		}
		if b[i] == '\n' {
			seen++
		}
	}
	if seen == lineIdx {
		return len(b)
	}
	panic(fmt.Sprintf("lf: line index %d out of range [0:%d]", lineIdx, seen))
}

func toByteWide(b []byte, lineIdx int) int {
	if lineIdx == 0 {
		return 0
	}
	seen := 0
	i := 0
	for i+scan.WordBytes <= len(b) {
		m := scan.EqMask(scan.Word(b, i), '\n')
		n := scan.Count(m)
		if seen+n >= lineIdx {
			// The target break is in this word; pinpoint it lane by lane.
			for {
				k := scan.First(m)
				m &= m - 1
				seen++
				if seen == lineIdx {
					return i + k + 1
				}
			}
		}
		seen += n
		i += scan.WordBytes
	}
	for ; i < len(b); i++ {
		if seen == lineIdx {
			return i
		}
		if b[i] == '\n' {
			seen++
		}
	}
	if seen == lineIdx {
		return len(b)
	}
	panic(fmt.Sprintf("lf: line index %d out of range [0:%d]", lineIdx, seen))
}
