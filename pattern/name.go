package pattern

// NameMeta identifies a resolved name: the bare name plus the module and
// package it was defined in. Two NameMetas are the same identifier iff all
// three fields are equal.
type NameMeta struct {
	Name    string
	Module  string
	Package string
}

func (m NameMeta) String() string {
	return m.Package + "/" + m.Module + "." + m.Name
}

// TypePattern describes the shape of an inferred type. This package treats
// the value as opaque; matching is delegated to whatever type matcher the
// evaluator was configured with.
type TypePattern any

type anyType struct{}

func (anyType) String() string { return "AnyType" }

// AnyType is the universal type pattern. Every conforming type matcher
// accepts it against any type, including a missing one.
var AnyType TypePattern = anyType{}
