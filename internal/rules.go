package internal

import (
	tt "github.com/gnolang/hlin/internal/types"
	"github.com/gnolang/hlin/pattern"
	"github.com/gnolang/hlin/pattern/ast"
	"github.com/gnolang/hlin/tree"
	"github.com/gnolang/hlin/typepat"
)

// Rule couples a pattern with the report it produces at each matching node.
type Rule struct {
	Name     string
	Category string
	Severity tt.Severity
	Message  string
	Note     string
	Pattern  pattern.Pattern
}

func (r Rule) issueAt(filename string, n *tree.Node) tt.Issue {
	return tt.Issue{
		Rule:     r.Name,
		Category: r.Category,
		Filename: filename,
		Message:  r.Message,
		Note:     r.Note,
		Severity: r.Severity,
		Start:    tt.Position{Line: n.Span.StartLine, Column: n.Span.StartColumn},
		End:      tt.Position{Line: n.Span.EndLine, Column: n.Span.EndColumn},
	}
}

// branchLib targets the current dump schema. Older dumps still match the
// tag-only builders; only the exact-arity branch patterns depend on it.
var branchLib = ast.NewLib(ast.Schema92)

func base(name, module string) pattern.NameMeta {
	return pattern.NameMeta{Name: name, Module: module, Package: "base"}
}

// mustAnyNames is for the static registry below, where an empty name list
// is a programming error.
func mustAnyNames(metas ...pattern.NameMeta) pattern.Pattern {
	p, err := ast.AnyNamesToPattern(metas)
	if err != nil {
		panic(err)
	}
	return p
}

func defaultRules() []Rule {
	partialFns := mustAnyNames(
		base("head", "GHC.List"),
		base("tail", "GHC.List"),
		base("init", "GHC.List"),
		base("last", "GHC.List"),
		base("fromJust", "Data.Maybe"),
		base("foldl1", "GHC.List"),
		base("maximum", "Data.Foldable"),
		base("minimum", "Data.Foldable"),
	)

	unsafeFns := mustAnyNames(
		base("unsafePerformIO", "System.IO.Unsafe"),
		base("unsafeInterleaveIO", "System.IO.Unsafe"),
		base("unsafeDupablePerformIO", "System.IO.Unsafe"),
		pattern.NameMeta{Name: "unsafeCoerce", Module: "Unsafe.Coerce", Package: "base"},
	)

	traceFns := mustAnyNames(
		base("trace", "Debug.Trace"),
		base("traceShow", "Debug.Trace"),
		base("traceM", "Debug.Trace"),
		base("traceShowM", "Debug.Trace"),
	)

	// length xs == 0, in any type the comparison resolves at
	eqOp := pattern.Named{
		Meta: pattern.NameMeta{Name: "==", Module: "GHC.Classes", Package: "ghc-prim"},
		Type: pattern.AnyType,
	}
	lengthFn := pattern.Named{
		Meta: base("length", "Data.Foldable"),
		Type: typepat.Prefix("Foldable"),
	}
	return []Rule{
		{
			Name:     "partial-function",
			Category: "partiality",
			Severity: tt.SeverityError,
			Message:  "use of a partial function that crashes on some inputs",
			Note:     "prefer total alternatives such as listToMaybe, uncons or explicit pattern matching",
			Pattern:  partialFns,
		},
		{
			Name:     "unsafe-function",
			Category: "safety",
			Severity: tt.SeverityError,
			Message:  "use of an unsafe escape hatch",
			Note:     "unsafePerformIO and unsafeCoerce break referential transparency",
			Pattern:  unsafeFns,
		},
		{
			Name:     "debug-trace",
			Category: "hygiene",
			Severity: tt.SeverityWarning,
			Message:  "Debug.Trace call left in code",
			Pattern:  traceFns,
		},
		{
			Name:     "avoid-undefined",
			Category: "partiality",
			Severity: tt.SeverityWarning,
			Message:  "reference to undefined",
			Note:     "undefined crashes at the point of use; consider error with a message, or a total rewrite",
			Pattern:  pattern.VarName{Name: "undefined"},
		},
		{
			Name:     "length-eq-zero",
			Category: "performance",
			Severity: tt.SeverityWarning,
			Message:  "length compared against zero forces the whole spine",
			Note:     "null runs in constant time",
			Pattern: ast.OpApp(
				ast.App(lengthFn, pattern.Anything),
				eqOp,
				pattern.Constant{Lit: pattern.ExactNum(0)},
			),
		},
		{
			Name:     "lazy-record-field",
			Category: "strictness",
			Severity: tt.SeverityWarning,
			Message:  "record field with a lazy type",
			Note:     "lazy fields accumulate thunks; add a strictness annotation",
			Pattern:  ast.LazyRecordField(),
		},
		{
			Name:     "wildcard-case-branch",
			Category: "exhaustiveness",
			Severity: tt.SeverityInfo,
			Message:  "wildcard branch swallows future constructors",
			Note:     "matching every constructor explicitly keeps case expressions warning-complete",
			Pattern:  branchLib.PatternMatchWild(pattern.Anything),
		},
		{
			Name:     "literal-enum-range",
			Category: "style",
			Severity: tt.SeverityInfo,
			Message:  "enumeration between two literals",
			Note:     "spell the list out if it is short; ranges between literals hide off-by-one mistakes",
			Pattern: ast.Range(
				pattern.Constant{Lit: pattern.AnyLiteral},
				pattern.Constant{Lit: pattern.AnyLiteral},
			),
		},
	}
}
