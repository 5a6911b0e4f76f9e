// Package parser folds a delimiter token stream into non-empty fragments.
//
// Grammar:
//
//	Text     = { Delimiter } [ Fragment { Delimiter { Delimiter } Fragment } ] { Delimiter } ;
//	Fragment = <run of non-delimiter characters> ;
//
// Delimiters only terminate fragments; they never produce one. That is how a
// leading, trailing or repeated delimiter collapses to nothing.
package parser

import (
	"strings"

	"github.com/shapestone/shape-core/pkg/ast"
	shapetokenizer "github.com/shapestone/shape-core/pkg/tokenizer"
	"github.com/shapestone/angel-runtime/internal/tokenizer"
)

// Options configures the parser behavior.
type Options struct {
	// Delim is the fragment separator. Default: ','
	Delim rune
}

// DefaultOptions returns default parser options.
func DefaultOptions() Options {
	return Options{
		Delim: ',',
	}
}

// Parser reads tokens one at a time and accumulates fragment text.
type Parser struct {
	tokenizer *shapetokenizer.Tokenizer
	current   *shapetokenizer.Token
	hasToken  bool
	opts      Options
}

// NewParser creates a parser for comma-delimited input.
func NewParser(input string) *Parser {
	return NewParserWithOptions(input, DefaultOptions())
}

// NewParserWithOptions creates a parser with custom options.
//
// Input is decoded as UTF-8; callers that must keep invalid bytes intact split
// them without the tokenizer.
func NewParserWithOptions(input string, opts Options) *Parser {
	tok := tokenizer.NewTokenizerWithOptions(tokenizer.Options{
		Delim: opts.Delim,
	})
	tok.Initialize(input)

	p := &Parser{
		tokenizer: &tok,
		opts:      opts,
	}
	p.advance() // Load first token
	return p
}

// Parse consumes the whole input and returns an array of fragment literals.
//
// Returns *ast.ArrayDataNode whose elements are *ast.LiteralNode values
// holding non-empty strings. Empty input yields an array with no elements.
func (p *Parser) Parse() *ast.ArrayDataNode {
	fragments := make([]ast.SchemaNode, 0, 8)

	var acc strings.Builder
	var start ast.Position

	for p.hasToken {
		token := p.peek()
		switch token.Kind() {
		case tokenizer.TokenFragment:
			if acc.Len() == 0 {
				start = p.position()
			}
			acc.WriteString(token.ValueString())
		case tokenizer.TokenDelimiter:
			if acc.Len() > 0 {
				fragments = append(fragments, ast.NewLiteralNode(acc.String(), start))
				acc.Reset()
			}
		}
		p.advance()
	}

	if acc.Len() > 0 {
		fragments = append(fragments, ast.NewLiteralNode(acc.String(), start))
	}

	return ast.NewArrayDataNode(fragments, ast.ZeroPosition())
}

// Fragments consumes the whole input and returns the fragment texts in order.
// The result is never nil.
func (p *Parser) Fragments() []string {
	node := p.Parse()
	elements := node.Elements()
	out := make([]string, 0, len(elements))
	for _, elem := range elements {
		if lit, ok := elem.(*ast.LiteralNode); ok {
			if s, ok := lit.Value().(string); ok {
				out = append(out, s)
			}
		}
	}
	return out
}

// peek returns current token without consuming.
func (p *Parser) peek() *shapetokenizer.Token {
	return p.current
}

// advance moves to next token.
func (p *Parser) advance() {
	token, ok := p.tokenizer.NextToken()
	if ok {
		p.current = token
		p.hasToken = true
	} else {
		p.hasToken = false
		p.current = nil
	}
}

// position returns current position for AST nodes.
func (p *Parser) position() ast.Position {
	if p.hasToken && p.current != nil {
		return ast.NewPosition(
			p.current.Offset(),
			p.current.Row(),
			p.current.Column(),
		)
	}
	return ast.ZeroPosition()
}
