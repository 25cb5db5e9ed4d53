package lexmach

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/dkuhlman/gramma"
)

// Inputs keep a space around '+'/'-' so the DFA's number rule (which, unlike
// the hand-written lexer, has no notion of "preceding token" to disambiguate
// a sign) never has a digit immediately to its right and so cannot swallow
// the operator into a signed number lexeme.
var inputStrings = []string{
	"1",
	"1 + 12",
	"hello world",
	`x="mystring" // commented`,
	"( 1 )",
}

var tokenCounts = []int{1, 3, 2, 4, 3}

func TestTokenizeMatchesHandWrittenLexer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramma.lexer")
	defer teardown()
	//
	keywords := map[string]struct{}{"hello": {}}
	adapter, err := New(keywords)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	for i, input := range inputStrings {
		stream, err := adapter.Tokenize(input)
		if err != nil {
			t.Fatalf("Tokenize(%q) error: %v", input, err)
		}
		count := 0
		for {
			if _, ok := stream.Peek(); !ok {
				break
			}
			stream.Consume()
			count++
		}
		if count != tokenCounts[i] {
			t.Errorf("Tokenize(%q): got %d tokens, want %d", input, count, tokenCounts[i])
		}
	}
}

func TestTokenizeClassifiesKeyword(t *testing.T) {
	adapter, err := New(map[string]struct{}{"hello": {}})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	stream, err := adapter.Tokenize("hello world")
	if err != nil {
		t.Fatalf("Tokenize error: %v", err)
	}
	first, ok := stream.Peek()
	if !ok || first.Kind != gramma.Keyword || first.Text != "hello" {
		t.Errorf("first token = %v, want Keyword(\"hello\")", first)
	}
	stream.Consume()
	second, ok := stream.Peek()
	if !ok || second.Kind != gramma.Identifier || second.Text != "world" {
		t.Errorf("second token = %v, want Identifier(\"world\")", second)
	}
}
