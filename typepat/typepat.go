// Package typepat supplies text-level type patterns and the type matcher
// the engine plugs into pattern evaluation. Patterns compare against the
// rendered type text the front end attached to a node; anything richer
// stays in the front end.
package typepat

import (
	"strings"

	"github.com/gnolang/hlin/matcher"
	"github.com/gnolang/hlin/pattern"
)

// Exact matches a type rendered exactly as the given text.
type Exact string

// Prefix matches a type whose rendering starts with the given text, e.g.
// Prefix("IO ") for any IO action.
type Prefix string

// Contains matches a type whose rendering contains the given text.
type Contains string

// Matcher is a matcher.TypeMatcher over the patterns in this package.
// pattern.AnyType is accepted against any type, including a missing one;
// every other pattern requires the node's type to be known.
func Matcher(tp pattern.TypePattern, typ matcher.Type) bool {
	if tp == pattern.AnyType {
		return true
	}
	s, ok := typ.(string)
	if !ok {
		return false
	}
	switch p := tp.(type) {
	case Exact:
		return s == string(p)
	case Prefix:
		return strings.HasPrefix(s, string(p))
	case Contains:
		return strings.Contains(s, string(p))
	}
	return false
}
