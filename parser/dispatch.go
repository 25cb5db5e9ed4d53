package parser

import "github.com/dkuhlman/gramma"

// parseElement is the single dispatcher spec §4.4 describes. e is either a
// bare keyword literal or an inline Rule; currentType names the rule this
// evaluation is logically working on behalf of (used for diagnostics and
// threaded through rule references); endToken is the lookahead hint an
// enclosing Sequence passes so a nested Repeat knows where to stop (§4.7,
// §4.8) — nil outside of a sequence context.
func (p *Parser) parseElement(e gramma.RuleOrKeyword, currentType string, endToken *gramma.RuleOrKeyword) (interface{}, *gramma.ParseError) {
	if err := p.prepare(); err != nil {
		return nil, err
	}

	if e.IsKeyword() {
		return p.matchKeyword(e.Keyword())
	}

	rule := e.Rule()
	if rule.Capture {
		return p.parseCapture(rule, currentType, endToken)
	}

	switch {
	case rule.Parse != nil:
		return p.parseTerminal(rule)
	case rule.Sequence != nil:
		return p.parseSequence(rule, currentType, endToken)
	case rule.Repeat:
		return p.parseRepeat(rule, currentType, endToken)
	case rule.Optional:
		return p.parseOptional(rule, currentType, endToken)
	case rule.Options != nil:
		return p.parseOptions(rule, currentType, endToken)
	case rule.Type != "":
		ref, ok := p.grammar.Rule(rule.Type)
		if !ok {
			return nil, gramma.NewParseError("No matching rule found")
		}
		return p.parseElement(gramma.R(ref), rule.Type, endToken)
	default:
		return nil, gramma.NewParseError("No matching rule found")
	}
}

// parseCapture implements spec §4.4 step 4: clone with Capture cleared,
// evaluate the rest of the shape, wrap the result in a tagged Node
// (invariant I5).
func (p *Parser) parseCapture(rule *gramma.Rule, currentType string, endToken *gramma.RuleOrKeyword) (interface{}, *gramma.ParseError) {
	inner := withoutCapture(rule)

	var line, col int
	if p.debug {
		if tok, ok := p.stream.Peek(); ok {
			line, col = tok.Line, tok.Column
		}
	}

	val, err := p.parseElement(gramma.R(inner), currentType, endToken)
	if err != nil {
		return nil, err
	}
	node := &gramma.Node{Type: rule.Type, Value: val}
	if p.debug {
		node.Line, node.Column = line, col
	}
	return node, nil
}
