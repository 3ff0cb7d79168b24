// Package ast defines the abstract syntax tree produced by the parser and
// consumed by the compiler and the reference evaluator.
//
// Every node except Program carries the token it was built from (for
// TokenLiteral and diagnostics), and every node implements String(), which
// renders it as text with each prefix, infix and index expression wrapped
// in parentheses. That text is not always valid Monkey source and does not
// in general reparse: block bodies of if and fn print without braces,
// expression statements print without a trailing semicolon, a named
// function literal prints as `fn<name>(...)`, and string literals print
// without re-escaping.
package ast

import (
	"strings"
)

// Node is the base of every AST node.
type Node interface {
	TokenLiteral() string
	String() string
}

// Statement is a Node that does not produce a value.
type Statement interface {
	Node
	statementNode()
}

// Expression is a Node that evaluates to a value.
type Expression interface {
	Node
	expressionNode()
}

// Program is the root node: a sequence of top-level statements.
type Program struct {
	Statements []Statement
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

func (p *Program) String() string {
	var out strings.Builder
	for _, s := range p.Statements {
		out.WriteString(s.String())
	}
	return out.String()
}
