package pattern

import (
	"fmt"
	"strings"
)

// Pattern is an immutable description of a class of syntax-tree shapes.
// The variant set is closed: every pattern is one of the types below.
type Pattern interface {
	isPattern()
	String() string
}

var (
	_ Pattern = Constant{}
	_ Pattern = Named{}
	_ Pattern = VarName{}
	_ Pattern = Node{}
	_ Pattern = NodeExact{}
	_ Pattern = Wildcard{}
	_ Pattern = Or{}
	_ Pattern = And{}
	_ Pattern = Neg{}
)

// Constant matches a node that carries a literal value satisfying Lit.
type Constant struct {
	Lit Literal
}

func (Constant) isPattern() {}
func (c Constant) String() string {
	return fmt.Sprintf("Constant(%s)", c.Lit)
}

// Named matches a node that resolves to Meta and whose inferred type
// satisfies Type. Type matching is delegated to an external matcher; this
// package never inspects the value.
type Named struct {
	Meta NameMeta
	Type TypePattern
}

func (Named) isPattern() {}
func (n Named) String() string {
	return fmt.Sprintf("Named(%s)", n.Meta)
}

// VarName matches a node that is a bound variable reference named Name.
type VarName struct {
	Name string
}

func (VarName) isPattern() {}
func (v VarName) String() string {
	return fmt.Sprintf("Var(%s)", v.Name)
}

// Node matches any node whose tag pair is a member of Tags. Children are
// not inspected.
type Node struct {
	Tags TagSet
}

func (Node) isPattern() {}
func (n Node) String() string {
	return fmt.Sprintf("Node%s", n.Tags)
}

// NodeExact matches a node whose tag pair is a member of Tags and whose
// children correspond one-to-one, in order, to Children. A node with a
// different child count never matches.
type NodeExact struct {
	Tags     TagSet
	Children []Pattern
}

func (NodeExact) isPattern() {}
func (n NodeExact) String() string {
	kids := make([]string, len(n.Children))
	for i, c := range n.Children {
		kids[i] = c.String()
	}
	return fmt.Sprintf("NodeExact%s[%s]", n.Tags, strings.Join(kids, ", "))
}

// Wildcard matches any node unconditionally. Use the Anything value rather
// than constructing Wildcard directly.
type Wildcard struct{}

func (Wildcard) isPattern()     {}
func (Wildcard) String() string { return "Anything" }

// Anything matches any node. It is the identity element for And and the
// absorbing element for Or.
var Anything Pattern = Wildcard{}

// Or matches a node that satisfies A or B. Evaluation short-circuits on A.
type Or struct {
	A, B Pattern
}

func (Or) isPattern() {}
func (o Or) String() string {
	return fmt.Sprintf("(%s | %s)", o.A, o.B)
}

// And matches a node that satisfies both A and B. Evaluation short-circuits
// on A.
type And struct {
	A, B Pattern
}

func (And) isPattern() {}
func (a And) String() string {
	return fmt.Sprintf("(%s & %s)", a.A, a.B)
}

// Neg matches a node iff P does not match it.
type Neg struct {
	P Pattern
}

func (Neg) isPattern() {}
func (n Neg) String() string {
	return fmt.Sprintf("!%s", n.P)
}

// Not negates p.
func Not(p Pattern) Pattern {
	return Neg{P: p}
}

// AnyOf builds a right-associated Or chain over p and rest.
func AnyOf(p Pattern, rest ...Pattern) Pattern {
	if len(rest) == 0 {
		return p
	}
	return Or{A: p, B: AnyOf(rest[0], rest[1:]...)}
}

// AllOf builds a right-associated And chain over p and rest.
func AllOf(p Pattern, rest ...Pattern) Pattern {
	if len(rest) == 0 {
		return p
	}
	return And{A: p, B: AllOf(rest[0], rest[1:]...)}
}
