package lexer

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"

	"github.com/dkuhlman/gramma"
)

// ExtractKeywords walks a Grammar and collects every bare keyword literal
// appearing inside a Sequence or Options list, recursively, including
// nested inline rules (spec §4.3). The resulting set is what a Parser
// hands to Lex so that those words become Keyword tokens rather than
// Identifier tokens.
//
// The walk collects into a sorted treeset, but the result is returned as a
// plain map, so iterating it yields Go's unspecified map order, not the
// sorted order.
func ExtractKeywords(g *gramma.Grammar) map[string]struct{} {
	set := treeset.NewWith(utils.StringComparator)
	for _, name := range g.Names() {
		rule, _ := g.Rule(name)
		walkKeywords(rule, set)
	}
	out := make(map[string]struct{}, set.Size())
	for _, v := range set.Values() {
		out[v.(string)] = struct{}{}
	}
	return out
}

func walkKeywords(rule *gramma.Rule, set *treeset.Set) {
	if rule == nil {
		return
	}
	collectFrom(rule.Sequence, set)
	collectFrom(rule.Options, set)
}

func collectFrom(elems []gramma.RuleOrKeyword, set *treeset.Set) {
	for _, e := range elems {
		if e.IsKeyword() {
			set.Add(e.Keyword())
			continue
		}
		walkKeywords(e.Rule(), set)
	}
}
