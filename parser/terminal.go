package parser

import "github.com/dkuhlman/gramma"

// parseTerminal implements spec §4.6: consume one token, hand it to the
// rule's Parse callback, surface a raised error as a ParseError attached
// to the consumed token. The callback's return value is passed through
// unwrapped — turning it into a Node is an enclosing Capture's job.
func (p *Parser) parseTerminal(rule *gramma.Rule) (interface{}, *gramma.ParseError) {
	tok, err := p.stream.Consume()
	if err != nil {
		return nil, toParseError(err)
	}
	val, convErr := rule.Parse(tok)
	if convErr != nil {
		return nil, gramma.NewParseErrorAt(tok, "%s", convErr.Error())
	}
	return val, nil
}
