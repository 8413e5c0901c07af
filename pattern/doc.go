/*
Package pattern defines the value model for syntax-tree patterns.

A Pattern describes a class of tree shapes: a node with a given tag, a node
with an exact ordered list of children, a node carrying a literal value, a
reference to a known name, and so on. Patterns compose with the boolean
combinators Or, And and Neg, and with the Anything wildcard.

Patterns are plain immutable values. Once built they are never mutated, so
they can be shared between rules (including sharing of sub-patterns, which
forms a DAG) and evaluated concurrently without coordination. Evaluation
against a concrete tree node lives in the matcher package; the builder
vocabulary for common syntactic constructs lives in pattern/ast.
*/
package pattern
