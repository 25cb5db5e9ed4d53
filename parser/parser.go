// Package parser implements the recursive-descent grammar interpreter
// described in spec.md §4: a single dispatcher (parseElement) that
// evaluates a gramma.Rule's fields in a fixed priority order, backtracking
// via lexer.Stream checkpoints and propagating an "exit" signal out of
// nested alternatives so a deep, clearly-wrong branch cannot be masked by a
// shallower sibling.
//
// Structurally this plays the role the teacher package's lr/earley.Parser
// and lr/slr.Parser play for table-driven parsing: a stateful driver built
// over one Grammar, run repeatedly against fresh input.
package parser

import (
	"github.com/npillmayer/schuko/tracing"

	"github.com/dkuhlman/gramma"
	"github.com/dkuhlman/gramma/diag"
	"github.com/dkuhlman/gramma/lexer"
)

// Option configures a Parser.
type Option func(*Parser)

// Debug turns on CST position tracking (Node.Line/Column) and
// Keyword-tagged nodes for discarded literals (spec §4.5/§3).
func Debug(b bool) Option {
	return func(p *Parser) { p.debug = b }
}

// TraceChannel overrides the schuko/tracing channel this Parser logs to.
// Defaults to "gramma.parser".
func TraceChannel(channel string) Option {
	return func(p *Parser) { p.traceChannel = channel }
}

// LexerOptions passes options through to lexer.Lex for every Parse call
// (e.g. lexer.SignsAsOperators).
func LexerOptions(opts ...lexer.Option) Option {
	return func(p *Parser) { p.lexerOpts = append(p.lexerOpts, opts...) }
}

// Parser is a stateful driver over one Grammar. A Parser instance holds a
// lexer.Stream for the duration of a Parse call; overlapping calls on the
// same instance are not supported (spec §5).
type Parser struct {
	grammar      *gramma.Grammar
	debug        bool
	traceChannel string
	lexerOpts    []lexer.Option

	stream *lexer.Stream
}

// New builds a Parser over grammar.
func New(grammar *gramma.Grammar, opts ...Option) *Parser {
	p := &Parser{grammar: grammar, traceChannel: "gramma.parser"}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Parser) tracer() tracing.Trace { return tracing.Select(p.traceChannel) }

// Parse lexes source and evaluates the Grammar's entry rule against it.
func (p *Parser) Parse(source string) (interface{}, error) {
	return p.ParseRule(source, p.grammar.Entry)
}

// ParseRule lexes source and evaluates the named rule as the entry point
// (spec §4.4). A lexical failure is returned as a *lexer.Error. A parse
// failure is returned as a *gramma.ParseError; when it carries a token it
// is decorated with a source excerpt and caret (spec §4.11), otherwise only
// the bare message is returned.
func (p *Parser) ParseRule(source, entryRule string) (interface{}, error) {
	entry, ok := p.grammar.Rule(entryRule)
	if !ok {
		return nil, gramma.NewParseError("No matching rule found")
	}
	keywords := lexer.ExtractKeywords(p.grammar)
	stream, err := lexer.Lex(source, keywords, p.lexerOpts...)
	if err != nil {
		p.tracer().Errorf("lex failed: %v", err)
		return nil, err
	}
	p.stream = stream
	p.tracer().Debugf("parsing entry rule %q over %d bytes of source", entryRule, len(source))

	result, perr := p.parseElement(gramma.R(entry), entryRule, nil)
	if perr != nil {
		p.tracer().Errorf("parse failed: %s", perr.Message)
		return nil, diag.Annotate(perr, p.stream)
	}
	return result, nil
}
