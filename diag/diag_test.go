package diag

import (
	"strings"
	"testing"

	"github.com/dkuhlman/gramma"
	"github.com/dkuhlman/gramma/lexer"
)

func TestAnnotateNoToken(t *testing.T) {
	err := gramma.NewParseError("No matching rule found")
	got := Annotate(err, lexer.NewStream(nil, ""))
	if got != err {
		t.Errorf("Annotate(err-without-token) = %v, want the same error unchanged", got)
	}
}

func TestAnnotateFormatsExcerptAndCaret(t *testing.T) {
	src := "line one\nline two\nsay\nline four"
	stream := lexer.NewStream(nil, src)
	tok := gramma.Token{Kind: gramma.Identifier, Text: "say", Line: 3, Column: 1}
	err := gramma.NewParseErrorAt(tok, "Unexpected end of input")

	got := Annotate(err, stream)
	msg := got.Error()

	if !strings.Contains(msg, "Unexpected end of input at line 3:1") {
		t.Errorf("message %q does not contain the expected header line", msg)
	}
	if !strings.Contains(msg, "3 | say") {
		t.Errorf("message %q does not contain the source excerpt for line 3", msg)
	}
	if !strings.Contains(msg, "1 | line one") {
		t.Errorf("message %q does not contain the excerpt's leading context line", msg)
	}
	lines := strings.Split(msg, "\n")
	caretLine := lines[len(lines)-1]
	if !strings.Contains(caretLine, "^") {
		t.Errorf("last line %q does not contain a caret", caretLine)
	}
}

func TestAnnotateDoesNotMutateOriginal(t *testing.T) {
	src := "say"
	stream := lexer.NewStream(nil, src)
	tok := gramma.Token{Kind: gramma.Identifier, Text: "say", Line: 1, Column: 1}
	err := gramma.NewParseErrorAt(tok, "boom")
	before := err.Message
	Annotate(err, stream)
	if err.Message != before {
		t.Errorf("Annotate mutated the original error's Message")
	}
}

func TestRenderAndPrettyPrintDoNotPanicOnNil(t *testing.T) {
	if Render(nil) != "" {
		t.Errorf("Render(nil) = %q, want empty string", Render(nil))
	}
	PrettyPrint(nil)
}
