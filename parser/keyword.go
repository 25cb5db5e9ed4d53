package parser

import (
	"strings"

	"github.com/dkuhlman/gramma"
)

// matchKeyword implements spec §4.5. The token must equal the literal
// case-insensitively; additionally, a token the lexer classified as Keyword
// can only ever match a purely alphanumeric literal — a grammar author
// writing a punctuation "keyword" that happens to collide with a reserved
// word is a grammar bug. It is still reported as an ordinary ParseError,
// which an enclosing alternation may backtrack past.
func (p *Parser) matchKeyword(literal string) (interface{}, *gramma.ParseError) {
	tok, err := p.stream.Consume()
	if err != nil {
		return nil, toParseError(err)
	}
	if !strings.EqualFold(tok.Text, literal) {
		return nil, gramma.NewParseErrorAt(tok, "Expected %q but got %q", literal, tok.Text)
	}
	if tok.Kind == gramma.Keyword && !isAlphanumeric(literal) {
		return nil, gramma.NewParseErrorAt(tok, "Unexpected keyword %q", tok.Text)
	}
	if !p.debug {
		return nil, nil
	}
	return &gramma.Node{Type: "Keyword", Value: tok.Text, Line: tok.Line, Column: tok.Column}, nil
}

func isAlphanumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
			return false
		}
	}
	return true
}
