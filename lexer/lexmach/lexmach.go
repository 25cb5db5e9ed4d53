// Package lexmach adapts timtadh/lexmachine as an alternative, DFA-compiled
// tokenizer for package lexer — adapted from the teacher package's
// lr/scanner/lexmach and lr/scanner/lexmachine.go, which wrapped lexmachine
// behind the same gorgo.Token contract the hand-written scanner used.
//
// The hand-written lexer.Lex in the parent package is the lexer of record:
// it implements spec.md §4.1's priority-ordered rules exactly, including the
// sign-attachment ambiguity. This adapter is for hosts whose grammars carry
// large keyword/operator tables, where compiling once to a DFA amortizes
// better than the rule-by-rule scan. It emits the same token kinds as
// lexer.Lex (Keyword/Identifier/Number/String/Operator/Bracket/Comment), but
// its output differs in some cases: a '+'/'-' directly followed by a digit
// always joins the number, even right after an operand; an unterminated
// string is skipped rather than reported as a *lexer.Error; '_' is not an
// identifier character; and a number holds at most one decimal point.
package lexmach

import (
	"strings"

	"github.com/npillmayer/schuko/tracing"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"

	"github.com/dkuhlman/gramma"
	"github.com/dkuhlman/gramma/lexer"
)

func tracer() tracing.Trace { return tracing.Select("gramma.lexer") }

// Adapter wraps a compiled lexmachine.Lexer producing gramma.Token values.
type Adapter struct {
	lex *lexmachine.Lexer
}

// New compiles a DFA recognizing the fixed token shapes of spec.md §4.1
// plus the given keyword set. Call it once per keyword set (i.e. once per
// Grammar, via lexer.ExtractKeywords) and reuse the Adapter across inputs.
func New(keywords map[string]struct{}) (*Adapter, error) {
	lex := lexmachine.NewLexer()
	lex.Add([]byte(`//[^\n]*`), makeAction(gramma.Comment))
	lex.Add([]byte(`\"[^"]*\"`), makeAction(gramma.String))
	lex.Add([]byte(`[\+\-]?[0-9]+(\.[0-9]+)?`), makeAction(gramma.Number))
	lex.Add([]byte(`[\+\-\*/><=%]`), makeAction(gramma.Operator))
	lex.Add([]byte(`[\(\)\[\]\{\}]`), makeAction(gramma.Bracket))
	lex.Add([]byte(`[A-Za-z][A-Za-z0-9]*`), makeIdentAction(keywords))
	lex.Add([]byte(`( |\t|\n|\r)+`), skip)
	if err := lex.Compile(); err != nil {
		tracer().Errorf("lexmach: error compiling DFA: %v", err)
		return nil, err
	}
	return &Adapter{lex: lex}, nil
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func makeAction(kind gramma.TokKind) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(kind), string(m.Bytes), m), nil
	}
}

func makeIdentAction(keywords map[string]struct{}) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		lexeme := string(m.Bytes)
		kind := gramma.Identifier
		if _, isKw := keywords[lexeme]; isKw {
			kind = gramma.Keyword
		}
		return s.Token(int(kind), lexeme, m), nil
	}
}

// Tokenize scans source and returns a lexer.Stream, with the same shape
// (whitespace discarded, comments retained) the hand-written lexer.Lex
// produces.
func (a *Adapter) Tokenize(source string) (*lexer.Stream, error) {
	scan, err := a.lex.Scanner([]byte(source))
	if err != nil {
		return nil, err
	}
	var tokens []gramma.Token
	searchFrom := 0
	for {
		tok, scanErr, eof := scan.Next()
		if scanErr != nil {
			if ui, is := scanErr.(*machines.UnconsumedInput); is {
				tracer().Errorf("lexmach: unconsumed input at %d", ui.FailTC)
				scan.TC = ui.FailTC
				continue
			}
			return nil, scanErr
		}
		if eof {
			break
		}
		token := tok.(*lexmachine.Token)
		lexeme := string(token.Lexeme)
		idx := strings.Index(source[searchFrom:], lexeme)
		if idx < 0 {
			idx = 0
		}
		abs := searchFrom + idx
		line, col := lineColAt(source, abs)
		tokens = append(tokens, gramma.Token{
			Kind:   gramma.TokKind(token.Type),
			Text:   lexeme,
			Line:   line,
			Column: col,
			Index:  abs,
		})
		searchFrom = abs + len(lexeme)
	}
	return lexer.NewStream(tokens, source), nil
}

func lineColAt(source string, index int) (line, col int) {
	line, col = 1, 1
	for i := 0; i < index && i < len(source); i++ {
		if source[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}
