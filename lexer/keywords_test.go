package lexer

import (
	"testing"

	"github.com/dkuhlman/gramma"
)

func TestExtractKeywordsSequenceAndOptions(t *testing.T) {
	rules := map[string]*gramma.Rule{
		"hello": {
			Sequence: []gramma.RuleOrKeyword{
				gramma.K("hello"),
				gramma.Ref("noun"),
			},
		},
		"noun": {
			Type: "noun",
			Options: []gramma.RuleOrKeyword{
				gramma.K("world"),
				gramma.K("everyone"),
			},
		},
	}
	g := gramma.NewGrammar(rules, "hello")
	got := ExtractKeywords(g)
	want := []string{"hello", "world", "everyone"}
	if len(got) != len(want) {
		t.Fatalf("ExtractKeywords = %v, want %d entries", got, len(want))
	}
	for _, w := range want {
		if _, ok := got[w]; !ok {
			t.Errorf("ExtractKeywords missing %q", w)
		}
	}
}

func TestExtractKeywordsNestedInline(t *testing.T) {
	rules := map[string]*gramma.Rule{
		"additive": {
			Options: []gramma.RuleOrKeyword{
				gramma.R(&gramma.Rule{
					Sequence: []gramma.RuleOrKeyword{
						gramma.Ref("value"),
						gramma.R(&gramma.Rule{
							Options: []gramma.RuleOrKeyword{gramma.K("plus"), gramma.K("minus")},
						}),
						gramma.Ref("value"),
					},
				}),
				gramma.Ref("value"),
			},
		},
		"value": {Type: "value", Parse: gramma.Identity},
	}
	g := gramma.NewGrammar(rules, "additive")
	got := ExtractKeywords(g)
	if _, ok := got["plus"]; !ok {
		t.Errorf("ExtractKeywords did not reach a keyword nested two inline rules deep")
	}
	if _, ok := got["minus"]; !ok {
		t.Errorf("ExtractKeywords did not reach %q nested two inline rules deep", "minus")
	}
}

func TestExtractKeywordsEmptyGrammar(t *testing.T) {
	rules := map[string]*gramma.Rule{"noun": {Type: "noun", Parse: gramma.Identity}}
	g := gramma.NewGrammar(rules, "noun")
	got := ExtractKeywords(g)
	if len(got) != 0 {
		t.Errorf("ExtractKeywords of a grammar with no literals = %v, want empty", got)
	}
}
