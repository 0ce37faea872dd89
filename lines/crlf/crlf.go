// Package crlf indexes lines delimited by line feeds, carriage returns, or
// CRLF pairs. A CR immediately followed by an LF is exactly one line break
// ending after the LF, never two, including when a scan is chunked across
// the pair.
//
// Line breaks belong to the line they end, and text ending in a line break
// has a trailing empty line. Any byte offset in [0, len(b)] is a valid
// argument; out-of-range indices panic. Nothing is allocated on the
// success path.
package crlf

import (
	"fmt"

	"github.com/mhr3/textidx/internal/scan"
)

// CountBreaks returns the number of line breaks in b.
func CountBreaks(b []byte) int {
	if scan.Accelerated && len(b) >= scan.WordBytes {
		return breaksWide(b)
	}
	return breaksScalar(b, false)
}

// Count returns the number of lines in b, which is CountBreaks(b) + 1.
func Count(b []byte) int {
	return CountBreaks(b) + 1
}

// FromByteIndex returns the index of the line containing byteIdx: the
// number of line breaks ending at or before it. An offset between the CR
// and LF of a pair has not passed that break yet.
//
// Panics if byteIdx is negative or greater than len(b).
func FromByteIndex(b []byte, byteIdx int) int {
	if byteIdx < 0 || byteIdx > len(b) {
		panic(fmt.Sprintf("crlf: byte index %d out of range [0:%d]", byteIdx, len(b)))
	}
	n := CountBreaks(b[:byteIdx])
	if byteIdx > 0 && byteIdx < len(b) && b[byteIdx-1] == '\r' && b[byteIdx] == '\n' {
		n--
	}
	return n
}

// ToByteIndex returns the byte offset of the start of line lineIdx. Line 0
// starts at offset 0; every other line starts immediately after the line
// break ending the previous line.
//
// Panics if lineIdx is negative or greater than CountBreaks(b).
func ToByteIndex(b []byte, lineIdx int) int {
	if lineIdx < 0 {
		panic(fmt.Sprintf("crlf: line index %d out of range", lineIdx))
	}
	if scan.Accelerated && len(b) >= scan.WordBytes {
		return toByteWide(b, lineIdx)
	}
	return toByteScalar(b, lineIdx, 0, 0, false)
}

// breaksScalar counts breaks one byte at a time. A pair is counted at its
// CR; prevCR says whether the byte before b was a carriage return already
// counted by the caller.
func breaksScalar(b []byte, prevCR bool) int {
	n := 0
	for _, c := range b {
		switch {
		case c == '\r':
			n++
			prevCR = true
		case c == '\n':
			if !prevCR {
				n++
			}
			prevCR = false
		default:
			prevCR = false
		}
	}
	return n
}

func breaksWide(b []byte) int {
	n := 0
	i := 0
	prevCR := false
	for ; i+scan.WordBytes <= len(b); i += scan.WordBytes {
		w := scan.Word(b, i)
		lf := scan.EqMask(w, '\n')
		cr := scan.EqMask(w, '\r')
		n += scan.Count(lf) + scan.Count(cr) - scan.Count(scan.Pair(cr, lf))
		// A pair split across the chunk boundary was counted twice: once at
		// the CR in the previous chunk and once at the LF here.
		if prevCR && b[i] == '\n' {
			n--
		}
		prevCR = b[i+scan.WordBytes-1] == '\r'
	}
	return n + breaksScalar(b[i:], prevCR)
}

// toByteScalar walks byte by byte from offset i with seen breaks already
// counted, under the count-at-CR convention of breaksScalar.
func toByteScalar(b []byte, lineIdx, i, seen int, prevCR bool) int {
	for ; i < len(b); i++ {
		c := b[i]
		if prevCR && c == '\n' {
			// Tail of a pair whose break was counted at the CR; the next
			// line starts after it.
			prevCR = false
			continue
		}
		if seen == lineIdx {
			return i
		}
		switch c {
		case '\r':
			seen++
			prevCR = true
		case '\n':
			seen++
			prevCR = false
		default:
			prevCR = false
		}
	}
	if seen == lineIdx {
		return len(b)
	}
	panic(fmt.Sprintf("crlf: line index %d out of range [0:%d]", lineIdx, seen))
}

func toByteWide(b []byte, lineIdx int) int {
	seen := 0
	i := 0
	prevCR := false
	if lineIdx > 0 {
		for i+scan.WordBytes <= len(b) {
			w := scan.Word(b, i)
			lf := scan.EqMask(w, '\n')
			cr := scan.EqMask(w, '\r')
			n := scan.Count(lf) + scan.Count(cr) - scan.Count(scan.Pair(cr, lf))
			if prevCR && b[i] == '\n' {
				n--
			}
			if seen+n >= lineIdx {
				// The target break is in or just beyond this word; hand the
				// rest to the byte-at-a-time walk.
				break
			}
			seen += n
			prevCR = b[i+scan.WordBytes-1] == '\r'
			i += scan.WordBytes
		}
	}
	return toByteScalar(b, lineIdx, i, seen, prevCR)
}
