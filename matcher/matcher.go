// Package matcher evaluates patterns against concrete syntax-tree nodes.
//
// Evaluation is a pure predicate: it never walks siblings or ancestors of
// the node it is handed, so recursion depth is bounded by pattern depth,
// not tree size. Driving the matcher across a whole tree is the caller's
// job (see tree.Inspect).
package matcher

import (
	"github.com/gnolang/hlin/pattern"
)

// Type is an opaque handle to a node's inferred type. Only the configured
// TypeMatcher ever looks inside it.
type Type any

// Node is the capability set the matcher needs from a concrete syntax-tree
// node. The tree representation itself is supplied from outside.
type Node interface {
	// Tag returns the node's own tag pair.
	Tag() pattern.TagPair

	// Children returns the node's children in source order.
	Children() []Node

	// Literal returns the literal value the node carries, if any.
	Literal() (pattern.Value, bool)

	// Name returns the resolved identifier the node refers to, if any.
	Name() (pattern.NameMeta, bool)

	// Var returns the bound variable name the node references, if any.
	Var() (string, bool)

	// NodeType returns the node's inferred type, if known.
	NodeType() (Type, bool)
}

// TypeMatcher decides whether a type pattern accepts an inferred type.
// typ is nil when the node has no known type.
type TypeMatcher func(tp pattern.TypePattern, typ Type) bool

// Evaluator evaluates patterns. The zero configuration accepts only
// pattern.AnyType as a type pattern; plug a real matcher in with
// WithTypeMatcher. Evaluators are safe for concurrent use.
type Evaluator struct {
	typeMatches TypeMatcher
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithTypeMatcher sets the delegate used for Named patterns' type checks.
func WithTypeMatcher(m TypeMatcher) Option {
	return func(e *Evaluator) {
		e.typeMatches = m
	}
}

// New returns an Evaluator with the given options applied.
func New(opts ...Option) *Evaluator {
	e := &Evaluator{
		typeMatches: func(tp pattern.TypePattern, _ Type) bool {
			return tp == pattern.AnyType
		},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Eval reports whether p matches n. It is total: missing node features,
// tag mismatches and child-count mismatches all evaluate to false, never
// to an error.
func (e *Evaluator) Eval(p pattern.Pattern, n Node) bool {
	switch p := p.(type) {
	case pattern.Constant:
		v, ok := n.Literal()
		return ok && p.Lit.Match(v)

	case pattern.Named:
		meta, ok := n.Name()
		if !ok || meta != p.Meta {
			return false
		}
		typ, _ := n.NodeType()
		return e.typeMatches(p.Type, typ)

	case pattern.VarName:
		name, ok := n.Var()
		return ok && name == p.Name

	case pattern.Node:
		return p.Tags.Has(n.Tag())

	case pattern.NodeExact:
		if !p.Tags.Has(n.Tag()) {
			return false
		}
		kids := n.Children()
		if len(kids) != len(p.Children) {
			return false
		}
		for i, cp := range p.Children {
			if !e.Eval(cp, kids[i]) {
				return false
			}
		}
		return true

	case pattern.Wildcard:
		return true

	case pattern.Or:
		return e.Eval(p.A, n) || e.Eval(p.B, n)

	case pattern.And:
		return e.Eval(p.A, n) && e.Eval(p.B, n)

	case pattern.Neg:
		return !e.Eval(p.P, n)
	}
	return false
}

var defaultEvaluator = New()

// Eval evaluates p against n with the default Evaluator.
func Eval(p pattern.Pattern, n Node) bool {
	return defaultEvaluator.Eval(p, n)
}
