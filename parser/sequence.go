package parser

import (
	"github.com/emirpasic/gods/lists/arraylist"

	"github.com/dkuhlman/gramma"
)

// parseSequence implements spec §4.7. Each child is evaluated in turn; the
// i-th child's endToken hint is the next child in line, or — past the last
// child — whatever endToken this sequence itself was invoked with, so a
// Repeat nested as a sequence's final element can still see the enclosing
// context's stop condition. Non-nil results accumulate into an ordered
// list; exactly one captured result unwraps to that element directly
// (the "unwrap-singleton" rule), otherwise the list is returned whole.
func (p *Parser) parseSequence(rule *gramma.Rule, currentType string, endToken *gramma.RuleOrKeyword) (interface{}, *gramma.ParseError) {
	children := rule.Sequence
	results := arraylist.New()

	for i, child := range children {
		next := endToken
		if i+1 < len(children) {
			next = &children[i+1]
		}
		val, err := p.parseElement(child, currentType, next)
		if err != nil {
			return nil, err
		}
		if val != nil {
			results.Add(val)
		}
	}

	switch results.Size() {
	case 0:
		return nil, nil
	case 1:
		v, _ := results.Get(0)
		return v, nil
	default:
		return results.Values(), nil
	}
}
