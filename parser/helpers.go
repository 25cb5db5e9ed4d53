package parser

import "github.com/dkuhlman/gramma"

// prepare implements spec §4.4 steps 1-2: fail fast on an exhausted stream,
// otherwise skip any run of leading Comment tokens. It is re-run at the top
// of every dispatch, matching parseRule being re-entered for every Rule
// variant including nested references.
func (p *Parser) prepare() *gramma.ParseError {
	for {
		tok, ok := p.stream.Peek()
		if !ok {
			return gramma.NewParseError("Unexpected end of input")
		}
		if tok.Kind != gramma.Comment {
			return nil
		}
		p.stream.Consume()
	}
}

func toParseError(err error) *gramma.ParseError {
	if err == nil {
		return nil
	}
	if pe, ok := err.(*gramma.ParseError); ok {
		return pe
	}
	return gramma.NewParseError(err.Error())
}

// tokenIndex gives the furthest-error heuristic (spec §4.10) a comparable
// position: a token's byte offset when one is attached, or the length of
// the source (maximally "furthest") for a token-less end-of-input error.
func (p *Parser) tokenIndex(err *gramma.ParseError) int {
	if err == nil || err.Token == nil {
		return len(p.stream.Source())
	}
	return err.Token.Index
}

func withoutRepeat(rule *gramma.Rule) *gramma.Rule {
	cp := *rule
	cp.Repeat = false
	return &cp
}

func withoutOptional(rule *gramma.Rule) *gramma.Rule {
	cp := *rule
	cp.Optional = false
	return &cp
}

func withoutCapture(rule *gramma.Rule) *gramma.Rule {
	cp := *rule
	cp.Capture = false
	return &cp
}
