/*
Package samplegrammar holds small Grammar values used by the parser engine's
own tests and by cmd/gdemo's REPL menu. None of them are meant to describe a
real language; they exist to exercise specific corners of spec.md — the
unwrap-singleton rule, right-recursive precedence, furthest-error selection
across alternatives, and comment transparency.
*/
package samplegrammar

import (
	"github.com/dkuhlman/gramma"
)

// Hello returns the grammar from spec §8 scenarios E1/E2/E6:
//
//	hello = "hello" noun
//	noun  = <identifier>
func Hello() *gramma.Grammar {
	rules := map[string]*gramma.Rule{
		"hello": {
			Type:    "hello",
			Capture: true,
			Sequence: []gramma.RuleOrKeyword{
				gramma.K("hello"),
				gramma.Ref("noun"),
			},
		},
		"noun": {
			Type:    "noun",
			Capture: true,
			Parse:   gramma.Identity,
		},
	}
	return gramma.NewGrammar(rules, "hello")
}

// HelloScript wraps Hello's "hello" rule in a repeated SCRIPT entry, used by
// E6 to check that comments never surface in the CST: every statement is a
// "hello" node and the accumulated list's length equals the number of
// statements, comments and blank runs notwithstanding.
func HelloScript() *gramma.Grammar {
	g := Hello()
	rules := map[string]*gramma.Rule{
		"SCRIPT": {
			Repeat: true,
			Type:   "hello",
		},
	}
	for _, name := range g.Names() {
		r, _ := g.Rule(name)
		rules[name] = r
	}
	return gramma.NewGrammar(rules, "SCRIPT")
}

// Arithmetic returns the right-recursive precedence grammar of spec §8
// scenario E3:
//
//	ADDITIVE       = MULTIPLICATIVE ("+"|"-") ADDITIVE | MULTIPLICATIVE
//	MULTIPLICATIVE = VALUE ("*"|"/"|"%") MULTIPLICATIVE | VALUE
//	VALUE          = <number>
//
// Layering precedence this way (rather than left recursion, which the
// dispatcher cannot handle — spec §9) gives right-associative operators; a
// grammar author wanting left associativity needs a different Rule shape
// entirely (design notes: "a port should implement a precedence-climbing
// mode").
func Arithmetic() *gramma.Grammar {
	rules := map[string]*gramma.Rule{
		"ADDITIVE": {
			Type: "ADDITIVE",
			Options: []gramma.RuleOrKeyword{
				gramma.R(&gramma.Rule{
					Type:    "ADD",
					Capture: true,
					Sequence: []gramma.RuleOrKeyword{
						gramma.Ref("MULTIPLICATIVE"),
						gramma.R(&gramma.Rule{
							Options: []gramma.RuleOrKeyword{gramma.K("+"), gramma.K("-")},
						}),
						gramma.Ref("ADDITIVE"),
					},
				}),
				gramma.Ref("MULTIPLICATIVE"),
			},
		},
		"MULTIPLICATIVE": {
			Type: "MULTIPLICATIVE",
			Options: []gramma.RuleOrKeyword{
				gramma.R(&gramma.Rule{
					Type:    "MULTIPLY",
					Capture: true,
					Sequence: []gramma.RuleOrKeyword{
						gramma.Ref("VALUE"),
						gramma.R(&gramma.Rule{
							Options: []gramma.RuleOrKeyword{gramma.K("*"), gramma.K("/"), gramma.K("%")},
						}),
						gramma.Ref("MULTIPLICATIVE"),
					},
				}),
				gramma.Ref("VALUE"),
			},
		},
		"VALUE": {
			Type:    "VALUE",
			Capture: true,
			Parse:   gramma.ParseNumber,
		},
	}
	return gramma.NewGrammar(rules, "ADDITIVE")
}

// SayScript returns the grammar from spec §8 scenario E4: a SCRIPT of
// repeated statements, where the only statement shape is
//
//	STATEMENT = "say" EXPRESSION
//
// and EXPRESSION resolves to VALUE, so "say" with nothing following raises
// an "Unexpected end of input" error. That error carries no token, so it
// has no line number or source excerpt attached.
func SayScript() *gramma.Grammar {
	rules := map[string]*gramma.Rule{
		"SCRIPT": {
			Repeat: true,
			Type:   "STATEMENT",
		},
		"STATEMENT": {
			Type:    "STATEMENT",
			Capture: true,
			Sequence: []gramma.RuleOrKeyword{
				gramma.K("say"),
				gramma.Ref("EXPRESSION"),
			},
		},
		"EXPRESSION": {Type: "VALUE"},
		"VALUE": {
			Type:    "VALUE",
			Capture: true,
			Parse:   gramma.ParseNumber,
		},
	}
	return gramma.NewGrammar(rules, "SCRIPT")
}

// IfElse returns a grammar shaped after spec §8 scenario E5:
//
//	STATEMENT = options[IF_ELSE, IF]
//	IF_ELSE   = "if" COND "then" BLOCK "else" BLOCK
//	IF        = "if" COND "then" BLOCK "end"
//	BLOCK     = "{" "}"
//	COND      = <identifier>
//
// Both alternatives are self-terminated (IF closes with a trailing "end"
// keyword rather than being a bare prefix of IF_ELSE) so that on input
// `if x then { } else 5` neither can succeed by matching only a leading
// portion of the other's tokens: IF_ELSE gets all the way to its second
// BLOCK and fails there, on token "5" (deep); IF never reaches a second
// BLOCK at all and fails expecting "end" where "else" sits (shallow). The
// furthest-error heuristic (spec §4.10) must surface IF_ELSE's failure.
func IfElse() *gramma.Grammar {
	rules := map[string]*gramma.Rule{
		"STATEMENT": {
			Type: "STATEMENT",
			Options: []gramma.RuleOrKeyword{
				gramma.Ref("IF_ELSE"),
				gramma.Ref("IF"),
			},
		},
		"IF_ELSE": {
			Type:    "IF_ELSE",
			Capture: true,
			Sequence: []gramma.RuleOrKeyword{
				gramma.K("if"),
				gramma.Ref("COND"),
				gramma.K("then"),
				gramma.Ref("BLOCK"),
				gramma.K("else"),
				gramma.Ref("BLOCK"),
			},
		},
		"IF": {
			Type:    "IF",
			Capture: true,
			Sequence: []gramma.RuleOrKeyword{
				gramma.K("if"),
				gramma.Ref("COND"),
				gramma.K("then"),
				gramma.Ref("BLOCK"),
				gramma.K("end"),
			},
		},
		"COND": {
			Type:    "COND",
			Capture: true,
			Parse:   gramma.Identity,
		},
		"BLOCK": {
			Type:    "BLOCK",
			Capture: true,
			Sequence: []gramma.RuleOrKeyword{
				gramma.K("{"),
				gramma.K("}"),
			},
		},
	}
	return gramma.NewGrammar(rules, "STATEMENT")
}
