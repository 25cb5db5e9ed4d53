package parser

import (
	"github.com/emirpasic/gods/lists/arraylist"

	"github.com/dkuhlman/gramma"
)

// parseRepeat implements spec §4.8. Iteration continues while a
// non-comment token remains (leading comments are skipped first, so a
// trailing comment ends the repetition). Before each iteration, if an endToken
// sentinel was handed down from an enclosing sequence, the repeat
// speculatively probes whether the sentinel matches right here; if it does,
// the cursor is restored (the sentinel is left for the sequence to actually
// consume) and repetition stops. A failure inside the repeated shape itself
// is marked Exit and rethrown immediately: it is deep enough — the user's
// real source, not a speculative alternative — that higher layers must not
// paper over it by trying a sibling branch (spec §4.10, §7).
func (p *Parser) parseRepeat(rule *gramma.Rule, currentType string, endToken *gramma.RuleOrKeyword) (interface{}, *gramma.ParseError) {
	inner := withoutRepeat(rule)
	results := arraylist.New()

	for p.prepare() == nil {
		if endToken != nil && p.sentinelMatches(*endToken, currentType) {
			break
		}
		val, err := p.parseElement(gramma.R(inner), currentType, endToken)
		if err != nil {
			err.Exit = true
			return nil, err
		}
		if val != nil {
			results.Add(val)
		}
	}
	return results.Values(), nil
}

func (p *Parser) sentinelMatches(endToken gramma.RuleOrKeyword, currentType string) bool {
	checkpoint := p.stream.Position()
	_, err := p.parseElement(endToken, currentType, nil)
	p.stream.Seek(checkpoint)
	return err == nil
}
