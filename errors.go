package gramma

import "fmt"

// ParseError is the error type parser.Parse raises for every parse-time
// failure; a lexical failure surfaces as a *lexer.Error instead. Exit is the
// "don't backtrack further" signal described in spec §4.8/§4.10 and §9: the
// source language used a mutable field on a thrown exception for this;
// since Go errors don't carry mutable shared state across a call stack the
// same way, Exit is just a plain bool a caller (here, the alternation loop
// in package parser) inspects before deciding whether to try a sibling.
type ParseError struct {
	Message  string
	Token    *Token
	Expected string
	Exit     bool
}

func (e *ParseError) Error() string {
	return e.Message
}

// AtToken returns a copy of e with Token set, used when a lower layer
// raises a bare message and an enclosing one attaches the offending token.
func (e *ParseError) AtToken(t Token) *ParseError {
	cp := *e
	cp.Token = &t
	return &cp
}

// NewParseError builds a plain ParseError, unattached to any token.
func NewParseError(format string, args ...interface{}) *ParseError {
	return &ParseError{Message: fmt.Sprintf(format, args...)}
}

// NewParseErrorAt builds a ParseError attached to the token that caused it.
func NewParseErrorAt(t Token, format string, args ...interface{}) *ParseError {
	tok := t
	return &ParseError{Message: fmt.Sprintf(format, args...), Token: &tok}
}
