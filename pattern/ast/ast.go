// Package ast builds patterns for common syntactic constructs.
//
// The builders close over the fixed tag vocabulary the front end emits for
// each construct; rules compose them instead of spelling tag pairs by hand.
// Where a construct has several version-dependent spellings, the builder's
// tag set carries all of them so one pattern covers every schema.
package ast

import (
	"github.com/gnolang/hlin/pattern"
)

// Tag vocabulary. Constructor first, category second, matching the order
// the front end reports node annotations, e.g. ("HsApp", "HsExpr").
var (
	appTags        = pattern.Tags(pattern.Pair("HsApp", "HsExpr"))
	opAppTags      = pattern.Tags(pattern.Pair("OpApp", "HsExpr"))
	rangeTags      = pattern.Tags(pattern.Pair("ArithSeq", "HsExpr"))
	lambdaCaseTags = pattern.Tags(pattern.Pair("HsLamCase", "HsExpr"))
	caseTags       = pattern.Tags(pattern.Pair("HsCase", "HsExpr"))
	matchTags      = pattern.Tags(pattern.Pair("Match", "Match"))
	wildPatTags    = pattern.Tags(pattern.Pair("WildPat", "Pat"))
	literalPatTags = pattern.Tags(
		pattern.Pair("LitPat", "Pat"),
		pattern.Pair("NPat", "Pat"),
	)
	fixityTags = pattern.Tags(
		pattern.Pair("FixitySig", "FixitySig"),
		pattern.Pair("FixSig", "Sig"),
	)
	typeSigTags = pattern.Tags(pattern.Pair("TypeSig", "Sig"))
	funTags     = pattern.Tags(
		pattern.Pair("FunBind", "HsBindLR"),
		pattern.Pair("FunBind", "HsBind"),
	)
	dataDeclTags    = pattern.Tags(pattern.Pair("DataDecl", "TyClDecl"))
	constructorTags = pattern.Tags(pattern.Pair("ConDeclH98", "ConDecl"))
	guardBranchTags = pattern.Tags(pattern.Pair("BodyStmt", "StmtLR"))
	rhsTags         = pattern.Tags(pattern.Pair("GRHS", "GRHS"))

	tupleExprTags = pattern.Tags(pattern.Pair("ExplicitTuple", "HsExpr"))
	tuplePatTags  = pattern.Tags(pattern.Pair("TuplePat", "Pat"))
	tupleTyTags   = pattern.Tags(pattern.Pair("HsTupleTy", "HsType"))

	recordFieldTags = pattern.Tags(
		pattern.Pair("ConDeclField", "ConDeclField"),
		pattern.Pair("ConDeclField", "ConDecl"),
	)
	fieldBinderTags = [2]pattern.TagSet{
		pattern.Tags(pattern.Pair("FieldOcc", "FieldOcc")),
		pattern.Tags(pattern.Pair("XFieldOcc", "FieldOcc")),
	}
)

// Shared composites. Built once; builders hand out the same value, so
// patterns that embed them share sub-patterns rather than re-allocating.
var (
	// typePat accepts any of the plain type-expression shapes: a bare
	// type variable, an applied (higher-kinded) type, a parenthesized
	// type, a tuple type, a list type or a function arrow.
	typePat = pattern.AnyOf(
		pattern.Node{Tags: pattern.Tags(pattern.Pair("HsTyVar", "HsType"))},
		pattern.Node{Tags: pattern.Tags(pattern.Pair("HsAppTy", "HsType"))},
		pattern.Node{Tags: pattern.Tags(pattern.Pair("HsParTy", "HsType"))},
		pattern.Node{Tags: tupleTyTags},
		pattern.Node{Tags: pattern.Tags(pattern.Pair("HsListTy", "HsType"))},
		pattern.Node{Tags: pattern.Tags(pattern.Pair("HsFunTy", "HsType"))},
	)

	tuplePat = pattern.AnyOf(
		pattern.Node{Tags: tupleExprTags},
		pattern.Node{Tags: tuplePatTags},
		pattern.NodeExact{Tags: tupleTyTags, Children: []pattern.Pattern{typePat, typePat}},
	)

	lazyRecordFieldPat = pattern.NodeExact{
		Tags: recordFieldTags,
		Children: []pattern.Pattern{
			pattern.AnyOf(
				pattern.Node{Tags: fieldBinderTags[0]},
				pattern.Node{Tags: fieldBinderTags[1]},
			),
			typePat,
		},
	}
)

// App matches a function application with exactly two children: the
// function and its argument.
func App(fn, arg pattern.Pattern) pattern.Pattern {
	return pattern.NodeExact{Tags: appTags, Children: []pattern.Pattern{fn, arg}}
}

// OpApp matches an infix operator application: left operand, operator,
// right operand.
func OpApp(left, op, right pattern.Pattern) pattern.Pattern {
	return pattern.NodeExact{Tags: opAppTags, Children: []pattern.Pattern{left, op, right}}
}

// Range matches an enumeration with explicit lower and upper bounds,
// e.g. [a .. b]. Single-ended and stepped ranges have different shapes and
// are deliberately not covered here.
func Range(from, to pattern.Pattern) pattern.Pattern {
	return pattern.NodeExact{Tags: rangeTags, Children: []pattern.Pattern{from, to}}
}

// PatternMatchArrow matches the right-hand side of a branch, constraining
// only the result value.
func PatternMatchArrow(rhs pattern.Pattern) pattern.Pattern {
	return pattern.NodeExact{Tags: rhsTags, Children: []pattern.Pattern{rhs}}
}

// LambdaCase matches a \case expression.
func LambdaCase() pattern.Pattern {
	return pattern.Node{Tags: lambdaCaseTags}
}

// Case matches a case expression.
func Case() pattern.Pattern {
	return pattern.Node{Tags: caseTags}
}

// PatternMatchBranch matches any single branch of a case expression or
// function definition, whatever it binds.
func PatternMatchBranch() pattern.Pattern {
	return pattern.Node{Tags: matchTags}
}

// WildPat matches the wildcard binding pattern "_".
func WildPat() pattern.Pattern {
	return pattern.Node{Tags: wildPatTags}
}

// LiteralPat matches a literal used in a binding position, in either
// spelling the front end produces.
func LiteralPat() pattern.Pattern {
	return pattern.Node{Tags: literalPatTags}
}

// Fixity matches an operator fixity declaration.
func Fixity() pattern.Pattern {
	return pattern.Node{Tags: fixityTags}
}

// TypeSig matches a standalone type signature.
func TypeSig() pattern.Pattern {
	return pattern.Node{Tags: typeSigTags}
}

// Fun matches a function definition binding.
func Fun() pattern.Pattern {
	return pattern.Node{Tags: funTags}
}

// DataDecl matches a data declaration.
func DataDecl() pattern.Pattern {
	return pattern.Node{Tags: dataDeclTags}
}

// Constructor matches a plain (Haskell-98 style) data constructor
// declaration.
func Constructor() pattern.Pattern {
	return pattern.Node{Tags: constructorTags}
}

// GuardBranch matches a guard statement inside a guarded right-hand side.
func GuardBranch() pattern.Pattern {
	return pattern.Node{Tags: guardBranchTags}
}

// RHS matches a right-hand side, guarded or not.
func RHS() pattern.Pattern {
	return pattern.Node{Tags: rhsTags}
}

// Type matches any plain type-expression shape.
func Type() pattern.Pattern {
	return typePat
}

// Tuple matches a tuple in expression, binding or type position.
func Tuple() pattern.Pattern {
	return tuplePat
}

// LazyField matches a record field type that is not strict. A strict field
// wraps its type in a bang annotation node, so any plain type shape in
// field position is lazy.
func LazyField() pattern.Pattern {
	return typePat
}

// LazyRecordField matches a record field declaration whose field type is
// lazy: the field binder (in either spelling) followed by a plain type.
func LazyRecordField() pattern.Pattern {
	return lazyRecordFieldPat
}
