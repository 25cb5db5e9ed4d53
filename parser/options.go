package parser

import (
	"fmt"

	"github.com/dkuhlman/gramma"
)

// parseOptions implements spec §4.10. Alternatives are tried left to right;
// the first match wins outright (deterministic for ambiguous prefixes —
// the grammar author is expected to order alternatives most-specific
// first). A failure whose Exit flag is set short-circuits the whole
// alternation immediately: it came from deep inside a Repeat (§4.8) and
// must not be hidden by trying a shallower sibling. Otherwise the engine
// tracks the "furthest" failure — the one whose offending token sits at
// the largest byte offset — on the premise that it reflects the deepest
// point the parse actually reached. When more than one alternative fails
// at exactly that same furthest point, the specific failures are folded
// into one generalized "Expected <currentType>" diagnostic instead of
// arbitrarily picking one of the tied branches.
func (p *Parser) parseOptions(rule *gramma.Rule, currentType string, endToken *gramma.RuleOrKeyword) (interface{}, *gramma.ParseError) {
	start := p.stream.Position()

	var furthest *gramma.ParseError
	furthestIndex := -1
	ties := 0

	for _, alt := range rule.Options {
		val, err := p.parseElement(alt, currentType, endToken)
		if err == nil {
			return val, nil
		}
		if err.Exit {
			return nil, err
		}

		idx := p.tokenIndex(err)
		switch {
		case furthest == nil || idx > furthestIndex:
			furthest, furthestIndex, ties = err, idx, 0
		case idx == furthestIndex:
			ties++
		}

		p.stream.Seek(start)
	}

	if ties > 0 {
		return nil, &gramma.ParseError{
			Message: fmt.Sprintf("Expected %s but got %s", currentType, describeToken(furthest.Token)),
			Token:   furthest.Token,
		}
	}
	return nil, furthest
}

func describeToken(t *gramma.Token) string {
	if t == nil {
		return "end of input"
	}
	return fmt.Sprintf("%q", t.Text)
}
