package lexer

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/dkuhlman/gramma"
)

func TestScanAllKinds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramma.lexer")
	defer teardown()
	//
	src := `hello "a string" ( +5 ) // trailing
`
	toks, err := ScanAll(src, map[string]struct{}{"hello": {}})
	if err != nil {
		t.Fatalf("ScanAll error: %v", err)
	}
	var kinds []gramma.TokKind
	for _, tk := range toks {
		if tk.Kind == gramma.Whitespace {
			continue
		}
		kinds = append(kinds, tk.Kind)
	}
	want := []gramma.TokKind{
		gramma.Keyword, gramma.String, gramma.Bracket, gramma.Number,
		gramma.Bracket, gramma.Comment,
	}
	if len(kinds) != len(want) {
		t.Fatalf("got %d non-whitespace tokens %v, want %d: %v", len(kinds), kinds, len(want), want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("token %d kind = %v, want %v", i, kinds[i], want[i])
		}
	}
}

// TestRoundTrip checks spec §8 P6: concatenating every emitted token's Text
// (including whitespace and comments) reproduces the source exactly.
func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"hello world",
		"1 + 2 * 3\n",
		`say "quoted text" // a comment` + "\n",
		"a-1",
		"  \t leading and trailing  \n",
	}
	for _, src := range inputs {
		toks, err := ScanAll(src, nil)
		if err != nil {
			t.Fatalf("ScanAll(%q) error: %v", src, err)
		}
		var b strings.Builder
		for _, tk := range toks {
			b.WriteString(tk.Text)
		}
		if b.String() != src {
			t.Errorf("round-trip failed for %q: got %q", src, b.String())
		}
	}
}

func TestUnterminatedString(t *testing.T) {
	_, err := ScanAll(`"unterminated`, nil)
	if err == nil {
		t.Fatalf("ScanAll of an unterminated string did not error")
	}
	if _, ok := err.(*Error); !ok {
		t.Errorf("error type = %T, want *lexer.Error", err)
	}
}

func TestKeywordCaseSensitiveExtraction(t *testing.T) {
	// Design notes §9: keyword extraction is case-sensitive even though
	// matching at the engine layer is case-insensitive. "Hello" registered
	// as a keyword does not make lexing "hello" produce a Keyword token.
	toks, err := ScanAll("hello", map[string]struct{}{"Hello": {}})
	if err != nil {
		t.Fatalf("ScanAll error: %v", err)
	}
	if toks[0].Kind != gramma.Identifier {
		t.Errorf("token kind = %v, want Identifier (keyword set only had %q)", toks[0].Kind, "Hello")
	}
}

func TestSignAttachesToDigitByDefault(t *testing.T) {
	toks, err := ScanAll("-1", nil)
	if err != nil {
		t.Fatalf("ScanAll error: %v", err)
	}
	if len(toks) != 1 || toks[0].Kind != gramma.Number || toks[0].Text != "-1" {
		t.Errorf("ScanAll(%q) = %v, want a single Number(-1)", "-1", toks)
	}
}

func TestSignIsOperatorAfterOperand(t *testing.T) {
	// spec §4.1 rule 3 / §9: "a-1" lexes as Identifier("a"), Operator("-"),
	// Number("1") because '-' follows an operand (a known ambiguity).
	toks, err := ScanAll("a-1", nil)
	if err != nil {
		t.Fatalf("ScanAll error: %v", err)
	}
	if len(toks) != 3 {
		t.Fatalf("ScanAll(%q) = %v, want 3 tokens", "a-1", toks)
	}
	if toks[0].Kind != gramma.Identifier || toks[1].Kind != gramma.Operator || toks[2].Kind != gramma.Number {
		t.Errorf("ScanAll(%q) kinds = %v %v %v, want Identifier Operator Number", "a-1", toks[0].Kind, toks[1].Kind, toks[2].Kind)
	}
}

func TestSignsAsOperatorsOption(t *testing.T) {
	toks, err := ScanAll("-1", nil, SignsAsOperators(true))
	if err != nil {
		t.Fatalf("ScanAll error: %v", err)
	}
	if len(toks) != 2 || toks[0].Kind != gramma.Operator || toks[1].Kind != gramma.Number {
		t.Errorf("ScanAll(%q, SignsAsOperators(true)) = %v, want Operator(-) Number(1)", "-1", toks)
	}
}

func TestLineColumnTracking(t *testing.T) {
	src := "hello\nworld"
	toks, err := ScanAll(src, nil)
	if err != nil {
		t.Fatalf("ScanAll error: %v", err)
	}
	var ident []gramma.Token
	for _, tk := range toks {
		if tk.Kind == gramma.Identifier {
			ident = append(ident, tk)
		}
	}
	if len(ident) != 2 {
		t.Fatalf("got %d identifiers, want 2", len(ident))
	}
	if ident[0].Line != 1 || ident[0].Column != 1 {
		t.Errorf("first identifier at %d:%d, want 1:1", ident[0].Line, ident[0].Column)
	}
	if ident[1].Line != 2 || ident[1].Column != 1 {
		t.Errorf("second identifier at %d:%d, want 2:1", ident[1].Line, ident[1].Column)
	}
}

func TestLexFiltersWhitespaceKeepsComments(t *testing.T) {
	stream, err := Lex("// note\nhello", map[string]struct{}{"hello": {}})
	if err != nil {
		t.Fatalf("Lex error: %v", err)
	}
	var kinds []gramma.TokKind
	for {
		tok, ok := stream.Peek()
		if !ok {
			break
		}
		kinds = append(kinds, tok.Kind)
		stream.Consume()
	}
	want := []gramma.TokKind{gramma.Comment, gramma.Keyword}
	if len(kinds) != len(want) {
		t.Fatalf("kinds = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("kind %d = %v, want %v", i, kinds[i], want[i])
		}
	}
}
