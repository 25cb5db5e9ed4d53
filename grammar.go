package gramma

import (
	"fmt"
	"sort"

	"github.com/cnf/structhash"
)

// TerminalFunc converts a matched Token into a scalar CST value (a string or
// a number, spec-wise; Go widens that to any comparable scalar the host
// wants). It is a plain func type, so a host can pass one of the built-in
// terminals (StripQuotes, ParseNumber, Identity) or a closure over
// grammar-specific state.
type TerminalFunc func(Token) (interface{}, error)

// Rule is a tagged record: exactly one combination of its fields is
// meaningful for a given node, and parser.Parse dispatches on field
// presence in the fixed order documented in spec §4.4. Capture is
// orthogonal to all of them — it may wrap any of the other shapes.
type Rule struct {
	// Type names another rule (a reference) or labels the CST node emitted
	// when Capture is set.
	Type string

	// Capture wraps the result of evaluating the rest of this Rule's
	// fields in a Node tagged Type.
	Capture bool

	// Parse denotes a terminal rule: consume one token, convert it.
	Parse TerminalFunc

	// Sequence: every element must match, in order.
	Sequence []RuleOrKeyword

	// Options: try each element in order, leftmost match wins.
	Options []RuleOrKeyword

	// Repeat: match the rest of this Rule's shape zero or more times.
	Repeat bool

	// Optional: match zero or one occurrence without failing the parent.
	Optional bool

	// Separator is accepted but not enforced by the engine; see DESIGN.md.
	Separator string
}

// RuleOrKeyword is either an inline Rule or a bare keyword literal, matched
// case-insensitively against the next token's text. Exactly one of Rule()
// and Keyword() is meaningful; IsKeyword reports which.
type RuleOrKeyword struct {
	rule    *Rule
	keyword string
	isKw    bool
}

// K builds a bare-keyword grammar element.
func K(word string) RuleOrKeyword {
	return RuleOrKeyword{keyword: word, isKw: true}
}

// R wraps an inline Rule as a grammar element.
func R(rule *Rule) RuleOrKeyword {
	return RuleOrKeyword{rule: rule}
}

// Ref is shorthand for R(&Rule{Type: name}) — a reference to another rule.
func Ref(name string) RuleOrKeyword {
	return R(&Rule{Type: name})
}

func (rk RuleOrKeyword) IsKeyword() bool { return rk.isKw }
func (rk RuleOrKeyword) Keyword() string { return rk.keyword }
func (rk RuleOrKeyword) Rule() *Rule     { return rk.rule }

// Grammar is an immutable mapping from rule name to Rule, authored by the
// host and read-only for the lifetime of any Parser built over it.
type Grammar struct {
	Entry string
	rules map[string]*Rule
}

// DefaultEntry is the conventional entry-rule name (spec §3).
const DefaultEntry = "SCRIPT"

// NewGrammar builds a Grammar from a name→Rule mapping. entry defaults to
// DefaultEntry when empty.
func NewGrammar(rules map[string]*Rule, entry string) *Grammar {
	if entry == "" {
		entry = DefaultEntry
	}
	return &Grammar{Entry: entry, rules: rules}
}

// Rule looks up a named rule.
func (g *Grammar) Rule(name string) (*Rule, bool) {
	r, ok := g.rules[name]
	return r, ok
}

// Names returns all rule names, sorted, for deterministic iteration (e.g.
// by Validate's error list or a debug dump).
func (g *Grammar) Names() []string {
	names := make([]string, 0, len(g.rules))
	for name := range g.rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks that the entry rule exists and that every rule reference
// reachable from a Type field, a Sequence or an Options list resolves to a
// known rule name. It reports every broken reference at once rather than
// failing lazily the first time a parse happens to reach one.
func (g *Grammar) Validate() error {
	var problems []string
	if _, ok := g.rules[g.Entry]; !ok {
		problems = append(problems, fmt.Sprintf("entry rule %q not defined", g.Entry))
	}
	for name, rule := range g.rules {
		walkRuleRefs(rule, func(ref string) {
			if _, ok := g.rules[ref]; !ok {
				problems = append(problems, fmt.Sprintf("rule %q references undefined rule %q", name, ref))
			}
		})
	}
	if len(problems) == 0 {
		return nil
	}
	sort.Strings(problems)
	return fmt.Errorf("invalid grammar: %v", problems)
}

func walkRuleRefs(rule *Rule, visit func(string)) {
	if rule == nil {
		return
	}
	if rule.Parse == nil && rule.Sequence == nil && rule.Options == nil && rule.Type != "" {
		visit(rule.Type)
	}
	for _, child := range rule.Sequence {
		if !child.IsKeyword() {
			walkRuleRefs(child.Rule(), visit)
		}
	}
	for _, child := range rule.Options {
		if !child.IsKeyword() {
			walkRuleRefs(child.Rule(), visit)
		}
	}
}

// Fingerprint returns a short structural hash of the Grammar. A host
// embedding the engine in a live editor can compare fingerprints across
// edits to tell whether a grammar actually changed before re-running a
// parse or re-coloring a buffer.
func (g *Grammar) Fingerprint() (string, error) {
	names := g.Names()
	shapes := make([]ruleShape, 0, len(names))
	for _, name := range names {
		shapes = append(shapes, shapeOf(g.rules[name]))
	}
	hash, err := structhash.Hash(struct {
		Entry string
		Names []string
		Rules []ruleShape
	}{g.Entry, names, shapes}, 1)
	if err != nil {
		return "", fmt.Errorf("gramma: computing fingerprint: %w", err)
	}
	return hash, nil
}

// ruleShape is a hashable projection of a Rule: structhash walks fields by
// reflection and a bare func value (Rule.Parse) has no stable encoding, so
// we carry only whether a terminal callback is present.
type ruleShape struct {
	Type      string
	Capture   bool
	HasParse  bool
	Sequence  []elementShape
	Options   []elementShape
	Repeat    bool
	Optional  bool
	Separator string
}

type elementShape struct {
	Keyword string
	IsKw    bool
	Rule    *ruleShape
}

func shapeOf(r *Rule) ruleShape {
	if r == nil {
		return ruleShape{}
	}
	return ruleShape{
		Type:      r.Type,
		Capture:   r.Capture,
		HasParse:  r.Parse != nil,
		Sequence:  shapeElements(r.Sequence),
		Options:   shapeElements(r.Options),
		Repeat:    r.Repeat,
		Optional:  r.Optional,
		Separator: r.Separator,
	}
}

func shapeElements(elems []RuleOrKeyword) []elementShape {
	out := make([]elementShape, 0, len(elems))
	for _, e := range elems {
		if e.IsKeyword() {
			out = append(out, elementShape{Keyword: e.Keyword(), IsKw: true})
			continue
		}
		shape := shapeOf(e.Rule())
		out = append(out, elementShape{Rule: &shape})
	}
	return out
}
