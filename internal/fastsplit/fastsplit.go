// Package fastsplit splits text on a separator without building tokens or an
// AST, and without decoding UTF-8: every byte that is not part of a separator
// ends up in a fragment unchanged.
//
// The scan for the separator's first byte runs 8 bytes at a time using SIMD
// Within A Register (SWAR): the byte is broadcast to every lane of a uint64,
// XORed with the input so matches become zero bytes, and the zero bytes are
// found with the classic ((x - 0x01..01) & ^x & 0x80..80) trick. Candidates
// are then checked against the rest of the separator.
//
// For valid UTF-8 text and a separator that is the encoding of one rune the
// fragments are the same as those of internal/parser: UTF-8 is
// self-synchronizing, so an encoded rune only matches at a rune boundary.
package fastsplit

import (
	"bufio"
	"math/bits"
)

const (
	loMask = 0x0101010101010101
	hiMask = 0x8080808080808080
)

// Split returns the non-empty fragments of s separated by sep, in order.
// The result is never nil and its fragments share memory with s. An empty
// sep never matches.
func Split(s, sep string) []string {
	// Count first so the result is allocated exactly once.
	out := make([]string, 0, Count(s, sep))

	start := 0
	for {
		i := indexSep(s, start, sep)
		if i < 0 {
			break
		}
		if i > start {
			out = append(out, s[start:i])
		}
		start = i + len(sep)
	}
	if start < len(s) {
		out = append(out, s[start:])
	}
	return out
}

// Count returns the number of fragments Split would return.
func Count(s, sep string) int {
	n := 0
	start := 0
	for {
		i := indexSep(s, start, sep)
		if i < 0 {
			break
		}
		if i > start {
			n++
		}
		start = i + len(sep)
	}
	if start < len(s) {
		n++
	}
	return n
}

// ScanFragments returns a bufio.SplitFunc yielding the same fragments as
// Split. A separator cut by a buffer boundary is completed from the next read
// before it is matched.
func ScanFragments(sep string) bufio.SplitFunc {
	return func(data []byte, atEOF bool) (int, []byte, error) {
		// Skip separators; wait for more input if the tail could still
		// become one.
		start := 0
		for sep != "" {
			n := prefixLen(data, start, sep)
			if n == len(sep) {
				start += n
				continue
			}
			if !atEOF && start+n == len(data) {
				return start, nil, nil
			}
			break
		}
		if start == len(data) {
			return start, nil, nil
		}

		if i := indexSep(data, start, sep); i >= 0 {
			return i + len(sep), data[start:i], nil
		}
		if atEOF {
			return len(data), data[start:], nil
		}
		// The fragment may continue in the next read.
		return start, nil, nil
	}
}

// indexSep returns the position of the first sep in s at or after from, or -1.
func indexSep[T string | []byte](s T, from int, sep string) int {
	if sep == "" {
		return -1
	}
	for {
		i := index(s, from, sep[0])
		if i < 0 {
			return -1
		}
		if prefixLen(s, i, sep) == len(sep) {
			return i
		}
		from = i + 1
	}
}

// prefixLen returns how many leading bytes of sep match s starting at i.
func prefixLen[T string | []byte](s T, i int, sep string) int {
	n := 0
	for n < len(sep) && i+n < len(s) && s[i+n] == sep[n] {
		n++
	}
	return n
}

// index returns the position of the first b in s at or after from, or -1.
func index[T string | []byte](s T, from int, b byte) int {
	broadcast := uint64(b) * loMask

	i := from
	for ; i+8 <= len(s); i += 8 {
		if pos := findDelimiterPos(load64(s, i), broadcast); pos >= 0 {
			return i + pos
		}
	}

	// Tail shorter than one word.
	for ; i < len(s); i++ {
		if s[i] == b {
			return i
		}
	}
	return -1
}

// findDelimiterPos returns the index of the first byte of chunk equal to the
// broadcast delimiter, or -1.
//
// The borrow in the subtraction can mark bytes above a real match, never
// below it, so the lowest marked byte is always exact.
func findDelimiterPos(chunk, broadcast uint64) int {
	x := chunk ^ broadcast
	m := (x - loMask) &^ x & hiMask
	if m == 0 {
		return -1
	}
	return bits.TrailingZeros64(m) / 8
}

// load64 reads 8 bytes of s starting at i as a little-endian word.
func load64[T string | []byte](s T, i int) uint64 {
	_ = s[i+7] // bounds check hint
	return uint64(s[i]) |
		uint64(s[i+1])<<8 |
		uint64(s[i+2])<<16 |
		uint64(s[i+3])<<24 |
		uint64(s[i+4])<<32 |
		uint64(s[i+5])<<40 |
		uint64(s[i+6])<<48 |
		uint64(s[i+7])<<56
}
