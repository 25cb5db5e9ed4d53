package gramma

import "strconv"

// Built-in TerminalFunc implementations. A grammar author writing a Rule
// with Parse set almost always wants one of these three shapes — strip the
// quotes off a String token, convert a Number token's lexeme to a float64,
// or pass an Identifier's text through unchanged — so they are provided as
// concrete values rather than making every sample grammar redefine them
// (design notes §9: "Built-in terminals... are concrete implementations").

// StripQuotes returns a String token's text with its surrounding double
// quotes removed. It does not process escapes (spec §6: "no escape
// processing").
func StripQuotes(t Token) (interface{}, error) {
	if len(t.Text) >= 2 && t.Text[0] == '"' && t.Text[len(t.Text)-1] == '"' {
		return t.Text[1 : len(t.Text)-1], nil
	}
	return t.Text, nil
}

// ParseNumber converts a Number token's lexeme to a float64 (spec §4.1: "the
// lexeme; numeric conversion happens later at the terminal callback").
func ParseNumber(t Token) (interface{}, error) {
	v, err := strconv.ParseFloat(t.Text, 64)
	if err != nil {
		return nil, NewParseErrorAt(t, "invalid number %q", t.Text)
	}
	return v, nil
}

// Identity returns a token's text unchanged, for Identifier (or Keyword)
// terminals whose value is just the lexeme itself.
func Identity(t Token) (interface{}, error) {
	return t.Text, nil
}
