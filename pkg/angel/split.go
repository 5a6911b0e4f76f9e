package angel

import (
	"bufio"
	"io"
	"math"
	"unicode/utf8"

	"github.com/shapestone/angel-runtime/internal/fastsplit"
	"github.com/shapestone/angel-runtime/internal/parser"
)

// Split breaks text on every occurrence of delim and returns the non-empty
// fragments in order.
//
// Leading, trailing and repeated delimiters never produce empty fragments.
// Empty input, or input made only of delimiters, returns an empty slice.
// The result is never nil. Bytes other than the delimiter are copied into
// fragments unchanged, including bytes that are not valid UTF-8. A delim
// that is not a valid rune splits on U+FFFD.
//
// ASCII delimiters, and any text that is not valid UTF-8, take a byte-level
// fast path that bypasses tokenization; everything else goes through the
// tokenizer. Both paths return the same fragments.
//
// Example:
//
//	angel.Split(",,a,,b,,", ',')
//	// []string{"a", "b"}
func Split(text string, delim rune) []string {
	if !utf8.ValidRune(delim) {
		delim = utf8.RuneError
	}
	if delim < utf8.RuneSelf || !utf8.ValidString(text) {
		return fastsplit.Split(text, string(delim))
	}
	p := parser.NewParserWithOptions(text, parser.Options{Delim: delim})
	return p.Fragments()
}

// SplitReader splits everything read from r the same way Split does.
//
// Input is scanned in buffered chunks, so large inputs are never held in a
// single string. A read failure other than io.EOF is returned as *IOError.
func SplitReader(r io.Reader, delim rune) ([]string, error) {
	if !utf8.ValidRune(delim) {
		delim = utf8.RuneError
	}

	sc := bufio.NewScanner(r)
	// A fragment may be as long as the input.
	sc.Buffer(make([]byte, 0, 4096), math.MaxInt)
	sc.Split(fastsplit.ScanFragments(string(delim)))

	fragments := []string{}
	for sc.Scan() {
		fragments = append(fragments, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, &IOError{Op: "split", Err: err}
	}
	return fragments, nil
}
