package pattern

import (
	"sort"
	"strings"
)

// TagPair identifies a syntax-tree node's shape: the constructor that built
// the node and the syntactic category it belongs to. Written in source in
// the same order the front end reports them, e.g. ("HsApp", "HsExpr").
type TagPair struct {
	Constructor string
	Category    string
}

// Pair is shorthand for constructing a TagPair.
func Pair(constructor, category string) TagPair {
	return TagPair{Constructor: constructor, Category: category}
}

func (t TagPair) String() string {
	return t.Constructor + ":" + t.Category
}

// TagSet is an unordered set of tag pairs with O(1) membership. A Node or
// NodeExact pattern accepts a node when the node's own tag pair is a member,
// which lets one pattern cover several version-dependent spellings of the
// same construct. Treat a TagSet as immutable once it is inside a pattern.
type TagSet map[TagPair]struct{}

// Tags builds a TagSet from the given pairs.
func Tags(pairs ...TagPair) TagSet {
	s := make(TagSet, len(pairs))
	for _, p := range pairs {
		s[p] = struct{}{}
	}
	return s
}

// Has reports whether t is a member of the set.
func (s TagSet) Has(t TagPair) bool {
	_, ok := s[t]
	return ok
}

func (s TagSet) String() string {
	elems := make([]string, 0, len(s))
	for t := range s {
		elems = append(elems, t.String())
	}
	sort.Strings(elems)
	return "{" + strings.Join(elems, ", ") + "}"
}
