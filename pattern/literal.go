package pattern

import (
	"fmt"
	"strconv"
	"strings"
)

// Value is a concrete literal carried by a syntax-tree node: an exact
// integer or a byte string.
type Value interface {
	isValue()
}

// Num is an integer literal value.
type Num int64

// Str is a byte-string literal value.
type Str string

func (Num) isValue() {}
func (Str) isValue() {}

// Literal describes how a node's literal value must compare for a Constant
// pattern to match.
type Literal interface {
	isLiteral()

	// Match reports whether the concrete literal v satisfies this
	// comparison mode.
	Match(v Value) bool

	String() string
}

var (
	_ Literal = ExactNum(0)
	_ Literal = ExactStr("")
	_ Literal = PrefixStr("")
	_ Literal = ContainStr("")
	_ Literal = anyLiteral{}
)

// ExactNum matches an integer literal equal to it.
type ExactNum int64

func (ExactNum) isLiteral() {}
func (e ExactNum) Match(v Value) bool {
	n, ok := v.(Num)
	return ok && int64(n) == int64(e)
}
func (e ExactNum) String() string { return strconv.FormatInt(int64(e), 10) }

// ExactStr matches a byte-string literal equal to it.
type ExactStr string

func (ExactStr) isLiteral() {}
func (e ExactStr) Match(v Value) bool {
	s, ok := v.(Str)
	return ok && string(s) == string(e)
}
func (e ExactStr) String() string { return strconv.Quote(string(e)) }

// PrefixStr matches a byte-string literal that starts with it.
type PrefixStr string

func (PrefixStr) isLiteral() {}
func (p PrefixStr) Match(v Value) bool {
	s, ok := v.(Str)
	return ok && strings.HasPrefix(string(s), string(p))
}
func (p PrefixStr) String() string { return fmt.Sprintf("%s..", strconv.Quote(string(p))) }

// ContainStr matches a byte-string literal that contains it anywhere.
type ContainStr string

func (ContainStr) isLiteral() {}
func (c ContainStr) Match(v Value) bool {
	s, ok := v.(Str)
	return ok && strings.Contains(string(s), string(c))
}
func (c ContainStr) String() string { return fmt.Sprintf("..%s..", strconv.Quote(string(c))) }

type anyLiteral struct{}

func (anyLiteral) isLiteral() {}

func (anyLiteral) Match(v Value) bool { return v != nil }

func (anyLiteral) String() string { return "lit" }

// AnyLiteral matches any node that carries some literal value, whatever it is.
var AnyLiteral Literal = anyLiteral{}
