// Package diag renders a gramma.ParseError into the source-annotated
// diagnostic spec.md §4.11 describes, plus an optional colorized rendering
// built on pterm — the same library the teacher package's terex/terexlang/
// trepl demo uses for its "fancy output".
package diag

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/dkuhlman/gramma"
	"github.com/dkuhlman/gramma/lexer"
)

// Annotate implements spec §4.11. If err has no attached token, it is
// returned unchanged — only the bare message escapes. Otherwise a copy of
// err is returned whose Message has " at line L:C", two blank lines, a
// three-line source excerpt and a caret pointing at the offending column
// appended.
func Annotate(err *gramma.ParseError, stream *lexer.Stream) *gramma.ParseError {
	if err == nil || err.Token == nil {
		return err
	}
	t := *err.Token
	excerpt := stream.LinesOfCode(t.Line-2, t.Line)
	gutterWidth := len(strconv.Itoa(t.Line))
	caretCol := gutterWidth + 3 + t.Column - 1

	var b strings.Builder
	fmt.Fprintf(&b, "%s at line %d:%d\n\n\n", err.Message, t.Line, t.Column)
	b.WriteString(excerpt)
	b.WriteByte('\n')
	b.WriteString(strings.Repeat(" ", caretCol))
	b.WriteByte('^')

	cp := *err
	cp.Message = b.String()
	return &cp
}

// Render returns the plain diagnostic text for err, which is exactly
// err.Error() once Annotate has run — this is a readability alias for
// callers that only have the error in hand.
func Render(err *gramma.ParseError) string {
	if err == nil {
		return ""
	}
	return err.Message
}

// PrettyPrint prints a colorized rendering of err using pterm: a red
// "PARSE ERROR" banner with the full annotated message as its body. Hosts that
// don't want colored terminal output should just print err.Error().
func PrettyPrint(err *gramma.ParseError) {
	if err == nil {
		return
	}
	pterm.Error.Println(err.Message)
}

// init mirrors the teacher package's trepl demo, which customizes pterm's
// built-in Error/Info prefixes before first use.
func init() {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " PARSE ERROR ",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
