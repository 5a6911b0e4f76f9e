// Package tokenizer provides delimiter tokenization using Shape's tokenizer framework.
package tokenizer

// Token type constants for delimited text.
//
// The tokenizer emits every delimiter occurrence as its own token, so a run
// of delimiters produces a run of TokenDelimiter. Dropping empty fragments is
// the parser's job.
const (
	// Structural token
	TokenDelimiter = "Delimiter" // the configured delimiter rune

	// Content token
	TokenFragment = "Fragment" // maximal run of non-delimiter characters

	// Special token
	TokenEOF = "EOF" // End of input
)
