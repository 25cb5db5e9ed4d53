package parser

import "github.com/dkuhlman/gramma"

// parseOptional implements spec §4.9: try the underlying shape once; on
// success return its value, on any failure restore the cursor and report
// absence (nil) without failing the parent. There is no sibling to defer
// to, so — unlike Options — an Exit-marked failure is swallowed here too.
func (p *Parser) parseOptional(rule *gramma.Rule, currentType string, endToken *gramma.RuleOrKeyword) (interface{}, *gramma.ParseError) {
	checkpoint := p.stream.Position()
	inner := withoutOptional(rule)

	val, err := p.parseElement(gramma.R(inner), currentType, endToken)
	if err != nil {
		p.stream.Seek(checkpoint)
		return nil, nil
	}
	return val, nil
}
