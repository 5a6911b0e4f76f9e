package tokenizer

import (
	"github.com/shapestone/shape-core/pkg/tokenizer"
)

// Options configures the tokenizer behavior.
type Options struct {
	// Delim is the fragment separator. Default: ','
	Delim rune
}

// DefaultOptions returns default tokenizer options.
func DefaultOptions() Options {
	return Options{
		Delim: ',',
	}
}

// NewTokenizer creates a tokenizer for comma-delimited text.
func NewTokenizer() tokenizer.Tokenizer {
	return NewTokenizerWithOptions(DefaultOptions())
}

// NewTokenizerWithOptions creates a tokenizer with custom options.
//
// Only two token kinds exist:
// 1. Delimiter (exactly one rune per token)
// 2. Fragment (any run of non-delimiter characters)
//
// Whitespace is ordinary content, so the tokenizer is built without
// whitespace skipping. A whitespace delimiter works the same as any other.
func NewTokenizerWithOptions(opts Options) tokenizer.Tokenizer {
	return tokenizer.NewTokenizerWithoutWhitespace(
		tokenizer.StringMatcherFunc(TokenDelimiter, string(opts.Delim)),
		FragmentMatcherWithDelim(opts.Delim),
	)
}

// FragmentMatcherWithDelim creates a matcher for fragment content.
// Matches the longest run of characters that are not the delimiter.
//
// Grammar:
//
//	Fragment = Character+ ;
//	Character = <any character except delimiter> ;
//
// Uses ByteStream for ASCII delimiters when the stream supports it. An ASCII
// byte never occurs inside a multi-byte UTF-8 sequence, so scanning bytes
// cannot split a rune.
func FragmentMatcherWithDelim(delim rune) tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		if delim < 128 {
			if byteStream, ok := stream.(tokenizer.ByteStream); ok {
				return fragmentMatcherByte(byteStream, byte(delim))
			}
		}
		return fragmentMatcherRune(stream, delim)
	}
}

func fragmentMatcherByte(stream tokenizer.ByteStream, delim byte) *tokenizer.Token {
	startPos := stream.BytePosition()

	for {
		b, ok := stream.PeekByte()
		if !ok || b == delim {
			break
		}
		stream.NextByte()
	}

	if stream.BytePosition() == startPos {
		return nil
	}

	value := stream.SliceFrom(startPos)
	return tokenizer.NewToken(TokenFragment, []rune(string(value)))
}

func fragmentMatcherRune(stream tokenizer.Stream, delim rune) *tokenizer.Token {
	var value []rune

	for {
		r, ok := stream.PeekChar()
		if !ok || r == delim {
			break
		}
		stream.NextChar()
		value = append(value, r)
	}

	if len(value) == 0 {
		return nil
	}

	return tokenizer.NewToken(TokenFragment, value)
}
