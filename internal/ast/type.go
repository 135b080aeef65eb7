package ast

import (
	"ember/internal/token"
)

// TypeInstanceSimple is `Name` or `Name<T, U>`.
type TypeInstanceSimple struct {
	Info
	Name     token.Token
	Generics []TypeInstance
}

func (*TypeInstanceSimple) typeNode() {}

// TypeInstancePointer is `T*`.
type TypeInstancePointer struct {
	Info
	Inner TypeInstance
}

func (*TypeInstancePointer) typeNode() {}

// TypeInstanceFunction is `Ret(P1, P2)`, optionally prefixed with a
// closure modifier `@name`.
type TypeInstanceFunction struct {
	Info
	Return  TypeInstance
	Params  []TypeInstance
	Closure *token.Token // the `name` of a leading `@name`, nil otherwise
}

func (*TypeInstanceFunction) typeNode() {}

// TypeInstanceStackArray is `T[len]` or `T[]`.
type TypeInstanceStackArray struct {
	Info
	Element TypeInstance
	Length  Expression // nil for `T[]`
}

func (*TypeInstanceStackArray) typeNode() {}
