package tree

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnolang/hlin/matcher"
	"github.com/gnolang/hlin/pattern"
)

const sampleDump = `
module: Example.Main
schema: 92
root:
  ctor: HsApp
  cat: HsExpr
  span: {sl: 3, sc: 1, el: 3, ec: 10}
  children:
    - ctor: HsVar
      cat: HsExpr
      ident: {name: map, module: GHC.Base, package: base}
      type: "(a -> b) -> [a] -> [b]"
      span: {sl: 3, sc: 1, el: 3, ec: 4}
    - ctor: HsLit
      cat: HsExpr
      num: 5
      span: {sl: 3, sc: 5, el: 3, ec: 6}
`

func TestParse(t *testing.T) {
	dump, err := Parse([]byte(sampleDump))
	require.NoError(t, err)

	assert.Equal(t, "Example.Main", dump.Module)
	assert.Equal(t, 92, dump.Schema)

	root := dump.Root
	require.NotNil(t, root)
	assert.Equal(t, pattern.Pair("HsApp", "HsExpr"), root.Tag())
	require.Len(t, root.Kids, 2)

	fn := root.Kids[0]
	meta, ok := fn.Name()
	require.True(t, ok)
	assert.Equal(t, pattern.NameMeta{Name: "map", Module: "GHC.Base", Package: "base"}, meta)

	typ, ok := fn.NodeType()
	require.True(t, ok)
	assert.Equal(t, "(a -> b) -> [a] -> [b]", typ)

	arg := root.Kids[1]
	v, ok := arg.Literal()
	require.True(t, ok)
	assert.Equal(t, pattern.Num(5), v)

	assert.Equal(t, "3:5-3:6", arg.Span.String())
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("::::"))
	assert.Error(t, err)

	_, err = Parse([]byte("module: Empty\n"))
	assert.Error(t, err, "a dump without a root node is rejected")
}

func TestLoadJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dump.json")
	data := `{
		"module": "Example.Json",
		"schema": 92,
		"root": {"ctor": "HsVar", "cat": "HsExpr", "var": "undefined"}
	}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	dump, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Example.Json", dump.Module)

	name, ok := dump.Root.Var()
	require.True(t, ok)
	assert.Equal(t, "undefined", name)
}

func TestNodeSatisfiesMatcher(t *testing.T) {
	dump, err := Parse([]byte(sampleDump))
	require.NoError(t, err)

	p := pattern.NodeExact{
		Tags: pattern.Tags(pattern.Pair("HsApp", "HsExpr")),
		Children: []pattern.Pattern{
			pattern.Node{Tags: pattern.Tags(pattern.Pair("HsVar", "HsExpr"))},
			pattern.Constant{Lit: pattern.ExactNum(5)},
		},
	}
	assert.True(t, matcher.Eval(p, dump.Root))
}

func TestInspect(t *testing.T) {
	dump, err := Parse([]byte(sampleDump))
	require.NoError(t, err)

	var visited []string
	Inspect(dump.Root, func(n *Node) bool {
		visited = append(visited, n.Ctor)
		return true
	})
	assert.Equal(t, []string{"HsApp", "HsVar", "HsLit"}, visited)

	// returning false prunes the subtree
	visited = nil
	Inspect(dump.Root, func(n *Node) bool {
		visited = append(visited, n.Ctor)
		return false
	})
	assert.Equal(t, []string{"HsApp"}, visited)
}

func TestNodeString(t *testing.T) {
	dump, err := Parse([]byte(sampleDump))
	require.NoError(t, err)

	s := dump.Root.String()
	assert.Contains(t, s, "HsApp:HsExpr")
	assert.Contains(t, s, "  HsVar:HsExpr")
	assert.Contains(t, s, "name=base/GHC.Base.map")
}
