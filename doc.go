/*
Package gramma is a runtime-configurable parser generator for small textual
DSLs.

A host application builds a Grammar from Rule values — sequences, options,
repetitions, optionals, terminal callbacks and rule references — and hands it
to a Parser together with a source string. The Parser lexes the source,
interprets the Grammar recursively against the resulting token stream, and
either returns a concrete syntax tree (CST) or a ParseError pointing at the
furthest position the parse actually reached.

Package structure:

■ lexer: tokenizes source text into a Stream of Tokens, given a set of
reserved keywords extracted from a Grammar. lexer/lexmach offers an
alternative, DFA-compiled tokenizer for large keyword tables.

■ parser: the recursive-descent engine that interprets a Grammar against a
lexer.Stream.

■ diag: renders a ParseError into a source-annotated diagnostic, optionally
colorized.

The base package (this one) holds the data types shared across all of them:
Token, Grammar, Rule, Node and ParseError.
*/
package gramma
