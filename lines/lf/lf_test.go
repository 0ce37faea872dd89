package lf

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 124 bytes, 4 lines.
const textLines = "Hello there!  How're you doing?\nIt's " +
	"a fine day, isn't it?\nAren't you glad " +
	"we're alive?\nこんにちは、みんなさん！"

var runePool = []rune{
	'a', 'b', ' ', '!', 'é', 'ß', 'せ', 'か', 'い', '語', '🐸', '🌍',
	'\n', '\r', '\v', '\f', '', ' ', ' ',
}

func randText(rng *rand.Rand, maxLen int) []byte {
	b := make([]byte, 0, maxLen+4)
	for len(b) < maxLen {
		b = utf8.AppendRune(b, runePool[rng.Intn(len(runePool))])
	}
	return b
}

func TestCount(t *testing.T) {
	assert.Equal(t, 0, CountBreaks(nil))
	assert.Equal(t, 1, Count(nil))

	assert.Equal(t, 3, CountBreaks([]byte("Here\nare\nsome\nwords")))
	assert.Equal(t, 4, Count([]byte("Here\nare\nsome\nwords")))

	assert.Equal(t, 5, CountBreaks([]byte("\nHere\nare\nsome\nwords\n")))
	assert.Equal(t, 6, Count([]byte("\nHere\nare\nsome\nwords\n")))

	assert.Equal(t, 4, Count([]byte(textLines)))

	// Only LF counts: CRLF still breaks by way of its LF, lone CR and the
	// Unicode separators do not.
	assert.Equal(t, 2, CountBreaks([]byte("a\nb\r\nc")))
	assert.Equal(t, 0, CountBreaks([]byte("a\rb")))
	assert.Equal(t, 0, CountBreaks([]byte("a bc\vd")))
}

func TestFromByteIndex(t *testing.T) {
	text := []byte("\nHere\nare\nsome\nwords\n")
	for _, tc := range []struct{ byteIdx, want int }{
		{0, 0}, {1, 1}, {5, 1}, {6, 2}, {9, 2},
		{10, 3}, {14, 3}, {15, 4}, {20, 4}, {21, 5},
	} {
		assert.Equal(t, tc.want, FromByteIndex(text, tc.byteIdx), "byte index %d", tc.byteIdx)
	}

	tl := []byte(textLines)
	for _, tc := range []struct{ byteIdx, want int }{
		{0, 0}, {31, 0}, {32, 1}, {58, 1}, {59, 2}, {87, 2}, {88, 3}, {124, 3},
	} {
		assert.Equal(t, tc.want, FromByteIndex(tl, tc.byteIdx), "byte index %d", tc.byteIdx)
	}

	require.Panics(t, func() { FromByteIndex(tl, -1) })
	require.Panics(t, func() { FromByteIndex(tl, len(tl)+1) })
}

func TestToByteIndex(t *testing.T) {
	text := []byte("\nHere\nare\nsome\nwords\n")
	for line, want := range []int{0, 1, 6, 10, 15, 21} {
		assert.Equal(t, want, ToByteIndex(text, line), "line %d", line)
	}

	tl := []byte(textLines)
	for line, want := range []int{0, 32, 59, 88} {
		assert.Equal(t, want, ToByteIndex(tl, line), "line %d", line)
	}

	require.Panics(t, func() { ToByteIndex(tl, 4) })
	require.Panics(t, func() { ToByteIndex(tl, -1) })

	// Empty text has a single line starting at 0.
	assert.Equal(t, 0, ToByteIndex(nil, 0))
	require.Panics(t, func() { ToByteIndex(nil, 1) })

	// Text ending in a break has a trailing empty line.
	assert.Equal(t, 2, ToByteIndex([]byte("a\n"), 1))
}

func TestCountOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(60))
	for n := 0; n < 200; n++ {
		b := randText(rng, n)
		require.Equal(t, bytes.Count(b, []byte("\n")), CountBreaks(b), "%q", b)
	}

	long := []byte(strings.Repeat("pack my\nbox with\r\nfive dozen\njugs\n", 40))
	require.Equal(t, bytes.Count(long, []byte("\n")), CountBreaks(long))
}

func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(61))
	for n := 0; n < 150; n++ {
		b := randText(rng, n)
		for line := 0; line <= CountBreaks(b); line++ {
			start := ToByteIndex(b, line)
			require.Equal(t, line, FromByteIndex(b, start), "%q line %d", b, line)
		}
	}
}

func TestScalarWideEquivalence(t *testing.T) {
	rng := rand.New(rand.NewSource(62))
	for n := 0; n < 150; n++ {
		b := randText(rng, n)
		require.Equal(t, breaksScalar(b), breaksWide(b), "%q", b)
		for line := 0; line <= breaksScalar(b); line++ {
			require.Equal(t, toByteScalar(b, line), toByteWide(b, line), "%q line %d", b, line)
		}
	}
}

func BenchmarkCountBreaks(b *testing.B) {
	data := []byte(strings.Repeat(textLines+"\n", 32))
	b.SetBytes(int64(len(data)))
	for i := 0; i < b.N; i++ {
		CountBreaks(data)
	}
}
