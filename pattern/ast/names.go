package ast

import (
	"errors"

	"github.com/gnolang/hlin/pattern"
)

// NamedType pairs a resolved identifier with the type pattern its use site
// must carry.
type NamedType struct {
	Meta pattern.NameMeta
	Type pattern.TypePattern
}

var errNoNames = errors.New("pattern/ast: name list must not be empty")

// NamesToPattern builds a pattern matching a use of any of the given
// names with its paired type pattern. A single entry yields a bare Named
// pattern; more entries yield a right-associated Or chain. An empty list
// is a construction error: silently producing an always-false pattern
// would hide a misconfigured rule.
func NamesToPattern(names []NamedType) (pattern.Pattern, error) {
	if len(names) == 0 {
		return nil, errNoNames
	}

	last := names[len(names)-1]
	p := pattern.Pattern(pattern.Named{Meta: last.Meta, Type: last.Type})
	for i := len(names) - 2; i >= 0; i-- {
		p = pattern.Or{
			A: pattern.Named{Meta: names[i].Meta, Type: names[i].Type},
			B: p,
		}
	}
	return p, nil
}

// AnyNamesToPattern is NamesToPattern with every type pattern fixed to the
// universal wildcard: the names match whatever their type is.
func AnyNamesToPattern(metas []pattern.NameMeta) (pattern.Pattern, error) {
	names := make([]NamedType, len(metas))
	for i, m := range metas {
		names[i] = NamedType{Meta: m, Type: pattern.AnyType}
	}
	return NamesToPattern(names)
}
