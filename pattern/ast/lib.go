package ast

import (
	"github.com/gnolang/hlin/pattern"
)

// SchemaVersion identifies the tree schema a dump was produced under.
// Newer front ends attach one extra leading child to every Match node (the
// match context), which changes the exact arity of branch patterns.
type SchemaVersion int

const (
	Schema810 SchemaVersion = iota // 8.10-era dumps
	Schema90
	Schema92 // first schema with the leading match-context child
	Schema94
)

// Lib builds the branch patterns whose exact child list depends on the
// schema version. Assemble it once per target schema; the arity decision
// happens here, never during evaluation.
type Lib struct {
	leadingMatchCtx bool
}

// NewLib returns a Lib targeting the given schema version.
func NewLib(v SchemaVersion) Lib {
	return Lib{leadingMatchCtx: v >= Schema92}
}

// PatternMatch matches a branch binding bind with right-hand side rhs.
func (l Lib) PatternMatch(bind, rhs pattern.Pattern) pattern.Pattern {
	children := []pattern.Pattern{bind, rhs}
	if l.leadingMatchCtx {
		children = append([]pattern.Pattern{WildPat()}, children...)
	}
	return pattern.NodeExact{Tags: matchTags, Children: children}
}

// PatternMatchWild matches a branch on the wildcard pattern "_".
func (l Lib) PatternMatchWild(rhs pattern.Pattern) pattern.Pattern {
	return l.PatternMatch(WildPat(), rhs)
}
