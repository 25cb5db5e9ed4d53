package lexer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dkuhlman/gramma"
)

// Stream is a cursor over a Lexer's output: an ordered, already
// whitespace-filtered token sequence plus the original source text, used
// for diagnostics (spec §3/§4.2).
type Stream struct {
	tokens []gramma.Token
	source string
	pos    int
}

// NewStream wraps an already-filtered token slice. Lex is the usual way to
// obtain one; this constructor is exposed for callers assembling a Stream
// from tokens produced some other way (e.g. lexer/lexmach).
func NewStream(tokens []gramma.Token, source string) *Stream {
	return &Stream{tokens: tokens, source: source}
}

// Source returns the original, unmodified source text.
func (s *Stream) Source() string { return s.source }

// Peek returns the next token without consuming it.
func (s *Stream) Peek() (gramma.Token, bool) {
	if s.pos >= len(s.tokens) {
		return gramma.Token{}, false
	}
	return s.tokens[s.pos], true
}

// Consume returns and advances past the next token, failing if exhausted.
func (s *Stream) Consume() (gramma.Token, error) {
	if s.pos >= len(s.tokens) {
		return gramma.Token{}, gramma.NewParseError("Unexpected end of input")
	}
	t := s.tokens[s.pos]
	s.pos++
	return t, nil
}

// Exhausted reports whether every token has been consumed.
func (s *Stream) Exhausted() bool { return s.pos >= len(s.tokens) }

// Position returns an opaque cursor usable with Seek.
func (s *Stream) Position() int { return s.pos }

// Seek restores a cursor obtained from Position. Invariant I3: Seek(Position())
// is an identity operation.
func (s *Stream) Seek(pos int) error {
	if pos < 0 || pos > len(s.tokens) {
		return fmt.Errorf("lexer: seek out of range: %d", pos)
	}
	s.pos = pos
	return nil
}

// LinesOfCode formats source lines [start, end] (1-based, inclusive) as
// "N | <text>", right-aligning the line number in a field whose width
// equals the number of digits of end (spec §4.2).
func (s *Stream) LinesOfCode(start, end int) string {
	if start < 1 {
		start = 1
	}
	lines := strings.Split(s.source, "\n")
	if end > len(lines) {
		end = len(lines)
	}
	if start > end {
		return ""
	}
	width := len(strconv.Itoa(end))
	var b strings.Builder
	for n := start; n <= end; n++ {
		fmt.Fprintf(&b, "%*d | %s\n", width, n, lines[n-1])
	}
	return strings.TrimSuffix(b.String(), "\n")
}
