package gramma

import "testing"

func TestStripQuotes(t *testing.T) {
	v, err := StripQuotes(Token{Kind: String, Text: `"hi there"`})
	if err != nil || v != "hi there" {
		t.Errorf("StripQuotes(%q) = %v, %v, want %q, nil", `"hi there"`, v, err, "hi there")
	}
}

func TestStripQuotesUnquoted(t *testing.T) {
	v, err := StripQuotes(Token{Kind: Identifier, Text: "bare"})
	if err != nil || v != "bare" {
		t.Errorf("StripQuotes(%q) = %v, %v, want passthrough", "bare", v, err)
	}
}

func TestParseNumber(t *testing.T) {
	v, err := ParseNumber(Token{Kind: Number, Text: "3.5"})
	if err != nil || v != 3.5 {
		t.Errorf("ParseNumber(%q) = %v, %v, want 3.5, nil", "3.5", v, err)
	}
}

func TestParseNumberInvalid(t *testing.T) {
	_, err := ParseNumber(Token{Kind: Number, Text: "not-a-number", Line: 1, Column: 1})
	if err == nil {
		t.Errorf("ParseNumber(%q) = nil error, want a failure", "not-a-number")
	}
}

func TestIdentity(t *testing.T) {
	v, err := Identity(Token{Kind: Identifier, Text: "x"})
	if err != nil || v != "x" {
		t.Errorf("Identity(%q) = %v, %v, want %q, nil", "x", v, err, "x")
	}
}
