// Package ast defines the syntax tree the parser produces: statements,
// expressions, type instances and definitions, plus the Missing*
// placeholder variants used for recovery.
//
// Nodes are immutable after parsing except for three documented
// late-binding slots: token Analyzed tags, the Compiled slot on Info,
// and the *FunctionRef fields filled by the external semantic analyzer.
// The walker treats all of them as optional.
package ast

import (
	"ember/internal/source"
)

// CompiledType is the opaque type-checker result slot. The front-end
// never inspects it.
type CompiledType interface{}

// FunctionRef is the late-bound link from a call-like node to the
// compiled function definition the semantic phase resolved it to.
// Identity (pointer equality) is meaningful: the walker de-duplicates
// references through it.
type FunctionRef struct {
	Name string
	Def  *FunctionDefinition
}

// Info is the shared node header: every node embeds it and carries its
// source range and file.
type Info struct {
	Span   source.Position
	Source source.FileID
	// Compiled is filled by the external semantic analyzer.
	Compiled CompiledType
}

// MakeInfo builds a node header.
func MakeInfo(pos source.Position, file source.FileID) Info {
	return Info{Span: pos, Source: file}
}

// Pos returns the node's source range.
func (i *Info) Pos() source.Position { return i.Span }

// File returns the node's file.
func (i *Info) File() source.FileID { return i.Source }

// SetPos widens or replaces the node's range; parser-internal.
func (i *Info) SetPos(pos source.Position) { i.Span = pos }

// Node is anything with a source range.
type Node interface {
	Pos() source.Position
	File() source.FileID
}

// Statement is a non-value-producing node.
type Statement interface {
	Node
	stmtNode()
}

// Expression is a value-producing node.
type Expression interface {
	Node
	exprNode()
}

// TypeInstance is an expression in type position.
type TypeInstance interface {
	Node
	typeNode()
}

// Definition is a top-level or struct-member definition.
type Definition interface {
	Node
	defNode()
}

// missingMarker is implemented by every Missing* variant.
type missingMarker interface {
	missingNode()
}

// IsMissing reports whether n is a synthesized placeholder node.
func IsMissing(n Node) bool {
	_, ok := n.(missingMarker)
	return ok
}
