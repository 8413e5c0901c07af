package ast

import (
	"testing"

	"github.com/gnolang/hlin/matcher"
	"github.com/gnolang/hlin/pattern"
)

// stubNode is just enough of a tree to drive the builders through the matcher.
type stubNode struct {
	tag  pattern.TagPair
	kids []matcher.Node
	lit  pattern.Value
	name *pattern.NameMeta
}

func (n *stubNode) Tag() pattern.TagPair { return n.tag }

func (n *stubNode) Children() []matcher.Node { return n.kids }

func (n *stubNode) Var() (string, bool) { return "", false }

func (n *stubNode) NodeType() (matcher.Type, bool) {
	return nil, false
}

func (n *stubNode) Literal() (pattern.Value, bool) {
	return n.lit, n.lit != nil
}

func (n *stubNode) Name() (pattern.NameMeta, bool) {
	if n.name == nil {
		return pattern.NameMeta{}, false
	}
	return *n.name, true
}

func node(ctor, cat string, kids ...matcher.Node) *stubNode {
	return &stubNode{tag: pattern.Pair(ctor, cat), kids: kids}
}

func TestAppEndToEnd(t *testing.T) {
	mapName := pattern.NameMeta{Name: "map", Module: "GHC.Base", Package: "base"}

	f := &stubNode{tag: pattern.Pair("HsVar", "HsExpr"), name: &mapName}
	x := &stubNode{tag: pattern.Pair("HsLit", "HsExpr"), lit: pattern.Num(5)}

	p := App(
		pattern.Node{Tags: pattern.Tags(pattern.Pair("HsVar", "HsExpr"))},
		pattern.Constant{Lit: pattern.ExactNum(5)},
	)

	two := node("HsApp", "HsExpr", f, x)
	if !matcher.Eval(p, two) {
		t.Errorf("app pattern must match a two-child application node")
	}

	three := node("HsApp", "HsExpr", f, x, x)
	if matcher.Eval(p, three) {
		t.Errorf("app pattern must not match a three-child node even if the first two children match")
	}

	swapped := node("HsApp", "HsExpr", x, f)
	if matcher.Eval(p, swapped) {
		t.Errorf("app children are positional")
	}
}

func TestOpAppArity(t *testing.T) {
	p := OpApp(pattern.Anything, pattern.Anything, pattern.Anything)

	l := node("HsLit", "HsExpr")
	op := node("HsVar", "HsExpr")
	r := node("HsLit", "HsExpr")

	if !matcher.Eval(p, node("OpApp", "HsExpr", l, op, r)) {
		t.Errorf("opApp must match a three-child operator application")
	}
	if matcher.Eval(p, node("OpApp", "HsExpr", l, op)) {
		t.Errorf("opApp must not match two children")
	}
	if matcher.Eval(p, node("HsApp", "HsExpr", l, op, r)) {
		t.Errorf("opApp must not match a plain application")
	}
}

func TestRangeShape(t *testing.T) {
	p := Range(
		pattern.Constant{Lit: pattern.AnyLiteral},
		pattern.Constant{Lit: pattern.AnyLiteral},
	)

	lo := &stubNode{tag: pattern.Pair("HsLit", "HsExpr"), lit: pattern.Num(1)}
	hi := &stubNode{tag: pattern.Pair("HsLit", "HsExpr"), lit: pattern.Num(9)}

	if !matcher.Eval(p, node("ArithSeq", "HsExpr", lo, hi)) {
		t.Errorf("range must match a two-endpoint enumeration")
	}
	if matcher.Eval(p, node("ArithSeq", "HsExpr", lo)) {
		t.Errorf("range is strictly two-endpoint")
	}
}

func TestLeafBuilders(t *testing.T) {
	tests := []struct {
		name string
		p    pattern.Pattern
		n    matcher.Node
		want bool
	}{
		{"lambda case", LambdaCase(), node("HsLamCase", "HsExpr"), true},
		{"case", Case(), node("HsCase", "HsExpr"), true},
		{"case rejects lambda case", Case(), node("HsLamCase", "HsExpr"), false},
		{"branch", PatternMatchBranch(), node("Match", "Match"), true},
		{"wild pat", WildPat(), node("WildPat", "Pat"), true},
		{"literal pat first spelling", LiteralPat(), node("LitPat", "Pat"), true},
		{"literal pat second spelling", LiteralPat(), node("NPat", "Pat"), true},
		{"fixity old spelling", Fixity(), node("FixSig", "Sig"), true},
		{"fixity new spelling", Fixity(), node("FixitySig", "FixitySig"), true},
		{"type sig", TypeSig(), node("TypeSig", "Sig"), true},
		{"fun either spelling", Fun(), node("FunBind", "HsBind"), true},
		{"data decl", DataDecl(), node("DataDecl", "TyClDecl"), true},
		{"constructor", Constructor(), node("ConDeclH98", "ConDecl"), true},
		{"guard branch", GuardBranch(), node("BodyStmt", "StmtLR"), true},
		{"rhs", RHS(), node("GRHS", "GRHS"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := matcher.Eval(tt.p, tt.n); got != tt.want {
				t.Errorf("Eval(%s) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestTypeAlternatives(t *testing.T) {
	accepted := []string{"HsTyVar", "HsAppTy", "HsParTy", "HsTupleTy", "HsListTy", "HsFunTy"}
	for _, ctor := range accepted {
		if !matcher.Eval(Type(), node(ctor, "HsType")) {
			t.Errorf("type_ must accept %s", ctor)
		}
	}
	if matcher.Eval(Type(), node("HsBangTy", "HsType")) {
		t.Errorf("type_ must not accept a strictness-annotated type")
	}
}

func TestTupleShapes(t *testing.T) {
	if !matcher.Eval(Tuple(), node("ExplicitTuple", "HsExpr")) {
		t.Errorf("tuple must accept a tuple expression")
	}
	if !matcher.Eval(Tuple(), node("TuplePat", "Pat")) {
		t.Errorf("tuple must accept a tuple binding")
	}
	pairTy := node("HsTupleTy", "HsType",
		node("HsTyVar", "HsType"),
		node("HsTyVar", "HsType"),
	)
	if !matcher.Eval(Tuple(), pairTy) {
		t.Errorf("tuple must accept a two-element tuple type")
	}
}

func TestLazyRecordField(t *testing.T) {
	lazy := node("ConDeclField", "ConDeclField",
		node("FieldOcc", "FieldOcc"),
		node("HsTyVar", "HsType"),
	)
	if !matcher.Eval(LazyRecordField(), lazy) {
		t.Errorf("lazyRecordField must match a binder followed by a plain type")
	}

	strict := node("ConDeclField", "ConDeclField",
		node("FieldOcc", "FieldOcc"),
		node("HsBangTy", "HsType"),
	)
	if matcher.Eval(LazyRecordField(), strict) {
		t.Errorf("lazyRecordField must not match a banged field type")
	}
}

func TestLibConditionalArity(t *testing.T) {
	rhs := node("GRHS", "GRHS")
	wild := node("WildPat", "Pat")
	ctx := node("WildPat", "Pat")

	oldBranch := node("Match", "Match", wild, rhs)
	newBranch := node("Match", "Match", ctx, wild, rhs)

	oldLib := NewLib(Schema810)
	newLib := NewLib(Schema92)

	oldPat := oldLib.PatternMatchWild(RHS())
	newPat := newLib.PatternMatchWild(RHS())

	if !matcher.Eval(oldPat, oldBranch) {
		t.Errorf("pre-9.2 lib must match the two-child branch")
	}
	if matcher.Eval(oldPat, newBranch) {
		t.Errorf("pre-9.2 lib must reject the three-child branch")
	}
	if !matcher.Eval(newPat, newBranch) {
		t.Errorf("9.2 lib must match the three-child branch")
	}
	if matcher.Eval(newPat, oldBranch) {
		t.Errorf("9.2 lib must reject the two-child branch")
	}
}
