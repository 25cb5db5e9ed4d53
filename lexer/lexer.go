// Package lexer tokenizes source text for package parser, following the
// scan loop and Option pattern of the teacher package's scanner.DefaultTokenizer
// (adapted here to the fixed token kinds and priority-ordered rules spec.md
// §4.1 describes, rather than wrapping text/scanner.Scanner).
package lexer

import (
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"

	"github.com/dkuhlman/gramma"
)

func tracer() tracing.Trace { return tracing.Select("gramma.lexer") }

// Error is a fatal lexical error (spec §7): an unterminated string literal.
// It always terminates the parse; unlike gramma.ParseError it is never
// recoverable by backtracking.
type Error struct {
	Message string
	Line    int
	Column  int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at line %d:%d", e.Message, e.Line, e.Column)
}

const operatorChars = "+-*/><=%"
const bracketChars = "()[]{}"

// Option configures a scan. SignsAsOperators resolves the Open Question in
// spec §9: by default a leading '+'/'-' attaches to a following digit run
// exactly as spec §4.1 describes (a known, deliberate ambiguity); passing
// SignsAsOperators(true) switches to the §9 port recommendation of always
// tokenizing '+'/'-' as Operator and leaving unary sign to the grammar.
type Option func(*scanState)

func SignsAsOperators(b bool) Option {
	return func(s *scanState) { s.signsAsOperators = b }
}

type scanState struct {
	src              []byte
	pos              int // byte offset
	line             int
	col              int
	keywords         map[string]struct{}
	tokens           []gramma.Token
	signsAsOperators bool
}

func newScanState(source string, keywords map[string]struct{}, opts ...Option) *scanState {
	s := &scanState{
		src:      []byte(source),
		line:     1,
		col:      1,
		keywords: keywords,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *scanState) eof() bool { return s.pos >= len(s.src) }

func (s *scanState) peekAt(off int) byte {
	if s.pos+off >= len(s.src) {
		return 0
	}
	return s.src[s.pos+off]
}

func (s *scanState) advance(n int) {
	for i := 0; i < n && !s.eof(); i++ {
		if s.src[s.pos] == '\n' {
			s.line++
			s.col = 1
		} else {
			s.col++
		}
		s.pos++
	}
}

func (s *scanState) emit(kind gramma.TokKind, text string, line, col, index int) {
	s.tokens = append(s.tokens, gramma.Token{Kind: kind, Text: text, Line: line, Column: col, Index: index})
}

func isDigit(b byte) bool    { return b >= '0' && b <= '9' }
func isAlpha(b byte) bool    { return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') }
func isAlphaNum(b byte) bool { return isAlpha(b) || isDigit(b) }
func isSpace(b byte) bool    { return b == ' ' || b == '\t' || b == '\r' || b == '\n' }
func isSign(b byte) bool     { return b == '+' || b == '-' }
func isOperator(b byte) bool { return strings.IndexByte(operatorChars, b) >= 0 }
func isBracket(b byte) bool  { return strings.IndexByte(bracketChars, b) >= 0 }

// lastSignificant returns the last emitted token so callers can decide
// whether a sign precedes an operand (spec §4.1 rule 3 / §9). scanOne emits
// Whitespace tokens too (Lex filters them later), so after whitespace the
// last token is that Whitespace token, and a following sign attaches to a
// digit run.
func (s *scanState) lastSignificant() *gramma.Token {
	if len(s.tokens) == 0 {
		return nil
	}
	return &s.tokens[len(s.tokens)-1]
}

// signPrecedesOperand reports whether the previous token leaves us in a
// position where +/- must mean subtraction/comparison context rather than a
// numeric sign: following an identifier, a number, a string or a closing
// bracket.
func (s *scanState) signPrecedesOperand() bool {
	last := s.lastSignificant()
	if last == nil {
		return false
	}
	switch last.Kind {
	case gramma.Identifier, gramma.Number, gramma.String:
		return true
	case gramma.Bracket:
		return last.Text == ")" || last.Text == "]" || last.Text == "}"
	default:
		return false
	}
}

// ScanAll runs the full scan, including Whitespace tokens (spec §4.1: "After
// scanning, Whitespace tokens are discarded"). It is exported so callers can
// verify the round-trip property (spec §8 P6): concatenating Text across
// every token this returns reproduces source exactly, provided source holds
// no character outside the token shapes (such characters are skipped
// without a token).
func ScanAll(source string, keywords map[string]struct{}, opts ...Option) ([]gramma.Token, error) {
	s := newScanState(source, keywords, opts...)
	for !s.eof() {
		if err := s.scanOne(); err != nil {
			return nil, err
		}
	}
	tracer().Debugf("lexer: scanned %d tokens from %d bytes", len(s.tokens), len(source))
	return s.tokens, nil
}

func (s *scanState) scanOne() error {
	line, col, index := s.line, s.col, s.pos
	b := s.src[s.pos]

	switch {
	case isSpace(b):
		start := s.pos
		for !s.eof() && isSpace(s.src[s.pos]) {
			s.advance(1)
		}
		s.emit(gramma.Whitespace, string(s.src[start:s.pos]), line, col, index)
		return nil

	case b == '/' && s.peekAt(1) == '/':
		start := s.pos
		for !s.eof() && s.src[s.pos] != '\n' {
			s.advance(1)
		}
		s.emit(gramma.Comment, string(s.src[start:s.pos]), line, col, index)
		return nil

	case isSign(b) && !s.signsAsOperators && isDigit(s.peekAt(1)) && !s.signPrecedesOperand():
		return s.scanNumber(line, col, index)

	case isDigit(b):
		return s.scanNumber(line, col, index)

	case b == '"':
		return s.scanString(line, col, index)

	case isOperator(b):
		s.advance(1)
		s.emit(gramma.Operator, string(b), line, col, index)
		return nil

	case isBracket(b):
		s.advance(1)
		s.emit(gramma.Bracket, string(b), line, col, index)
		return nil

	case isAlpha(b):
		start := s.pos
		for !s.eof() && isAlphaNum(s.src[s.pos]) {
			s.advance(1)
		}
		lexeme := string(s.src[start:s.pos])
		if _, isKw := s.keywords[lexeme]; isKw {
			s.emit(gramma.Keyword, lexeme, line, col, index)
		} else {
			s.emit(gramma.Identifier, lexeme, line, col, index)
		}
		return nil

	default:
		s.advance(1)
		return nil
	}
}

func (s *scanState) scanNumber(line, col, index int) error {
	start := s.pos
	if isSign(s.src[s.pos]) {
		s.advance(1)
	}
	for !s.eof() && (isDigit(s.src[s.pos]) || s.src[s.pos] == '.') {
		s.advance(1)
	}
	s.emit(gramma.Number, string(s.src[start:s.pos]), line, col, index)
	return nil
}

func (s *scanState) scanString(line, col, index int) error {
	start := s.pos
	s.advance(1) // opening quote
	for {
		if s.eof() {
			return &Error{Message: "unterminated string literal", Line: line, Column: col}
		}
		if s.src[s.pos] == '"' {
			s.advance(1)
			break
		}
		s.advance(1)
	}
	s.emit(gramma.String, string(s.src[start:s.pos]), line, col, index)
	return nil
}

// Lex tokenizes source and wraps the result (whitespace filtered, comments
// retained) in a Stream, as described in spec §2/§4.1.
func Lex(source string, keywords map[string]struct{}, opts ...Option) (*Stream, error) {
	all, err := ScanAll(source, keywords, opts...)
	if err != nil {
		return nil, err
	}
	filtered := make([]gramma.Token, 0, len(all))
	for _, t := range all {
		if t.Kind != gramma.Whitespace {
			filtered = append(filtered, t)
		}
	}
	return NewStream(filtered, source), nil
}
