// Package tree holds the concrete syntax-tree representation the analyzer
// consumes: node dumps exported by the front end as YAML or JSON.
package tree

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gnolang/hlin/matcher"
	"github.com/gnolang/hlin/pattern"
)

// Ident is a resolved identifier attached to a node.
type Ident struct {
	Name    string `yaml:"name" json:"name"`
	Module  string `yaml:"module" json:"module"`
	Package string `yaml:"package" json:"package"`
}

// Span is the source region a node covers, 1-based.
type Span struct {
	StartLine   int `yaml:"sl" json:"sl"`
	StartColumn int `yaml:"sc" json:"sc"`
	EndLine     int `yaml:"el" json:"el"`
	EndColumn   int `yaml:"ec" json:"ec"`
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d:%d", s.StartLine, s.StartColumn, s.EndLine, s.EndColumn)
}

// Node is one node of an exported tree dump.
type Node struct {
	Ctor string  `yaml:"ctor" json:"ctor"`
	Cat  string  `yaml:"cat" json:"cat"`
	Kids []*Node `yaml:"children,omitempty" json:"children,omitempty"`

	// At most one of Num and Str is set on a literal node.
	Num *int64  `yaml:"num,omitempty" json:"num,omitempty"`
	Str *string `yaml:"str,omitempty" json:"str,omitempty"`

	VarRef string `yaml:"var,omitempty" json:"var,omitempty"`
	Ident  *Ident `yaml:"ident,omitempty" json:"ident,omitempty"`
	Type   string `yaml:"type,omitempty" json:"type,omitempty"`

	Span Span `yaml:"span,omitempty" json:"span,omitempty"`
}

var _ matcher.Node = (*Node)(nil)

// Tag returns the node's tag pair.
func (n *Node) Tag() pattern.TagPair {
	return pattern.TagPair{Constructor: n.Ctor, Category: n.Cat}
}

// Children returns the node's children in source order.
func (n *Node) Children() []matcher.Node {
	if len(n.Kids) == 0 {
		return nil
	}
	kids := make([]matcher.Node, len(n.Kids))
	for i, k := range n.Kids {
		kids[i] = k
	}
	return kids
}

// Literal returns the literal value the node carries, if any.
func (n *Node) Literal() (pattern.Value, bool) {
	switch {
	case n.Num != nil:
		return pattern.Num(*n.Num), true
	case n.Str != nil:
		return pattern.Str(*n.Str), true
	}
	return nil, false
}

// Name returns the resolved identifier the node refers to, if any.
func (n *Node) Name() (pattern.NameMeta, bool) {
	if n.Ident == nil {
		return pattern.NameMeta{}, false
	}
	return pattern.NameMeta{
		Name:    n.Ident.Name,
		Module:  n.Ident.Module,
		Package: n.Ident.Package,
	}, true
}

// Var returns the bound variable name the node references, if any.
func (n *Node) Var() (string, bool) {
	return n.VarRef, n.VarRef != ""
}

// NodeType returns the rendered type of the node, if the front end knew it.
func (n *Node) NodeType() (matcher.Type, bool) {
	if n.Type == "" {
		return nil, false
	}
	return n.Type, true
}

// String renders the node and its children with indentation, for debugging.
func (n *Node) String() string {
	var b strings.Builder
	n.writeTo(&b, 0)
	return strings.TrimRight(b.String(), "\n")
}

func (n *Node) writeTo(b *strings.Builder, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(b, "%s%s:%s", indent, n.Ctor, n.Cat)
	if v, ok := n.Literal(); ok {
		fmt.Fprintf(b, " %v", v)
	}
	if n.VarRef != "" {
		fmt.Fprintf(b, " var=%s", n.VarRef)
	}
	if meta, ok := n.Name(); ok {
		fmt.Fprintf(b, " name=%s", meta)
	}
	b.WriteString("\n")
	for _, k := range n.Kids {
		k.writeTo(b, depth+1)
	}
}

// Dump is a whole exported file: the module it came from, the schema
// version the front end used, and the tree itself.
type Dump struct {
	Module string `yaml:"module" json:"module"`
	Schema int    `yaml:"schema" json:"schema"`
	Root   *Node  `yaml:"root" json:"root"`
}

// Parse decodes a YAML tree dump.
func Parse(data []byte) (*Dump, error) {
	var d Dump
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parsing tree dump: %w", err)
	}
	if d.Root == nil {
		return nil, fmt.Errorf("parsing tree dump: no root node")
	}
	return &d, nil
}

// Load reads and decodes a dump file, picking the decoder by extension.
func Load(path string) (*Dump, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading tree dump: %w", err)
	}

	if filepath.Ext(path) == ".json" {
		var d Dump
		if err := json.Unmarshal(data, &d); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		if d.Root == nil {
			return nil, fmt.Errorf("parsing %s: no root node", path)
		}
		return &d, nil
	}
	return Parse(data)
}

// Inspect visits root and every node below it in depth-first order,
// calling fn at each node. If fn returns false the node's children are
// skipped. This is the search driver that repeatedly hands candidate
// nodes to the matcher.
func Inspect(root *Node, fn func(*Node) bool) {
	if root == nil {
		return
	}
	if !fn(root) {
		return
	}
	for _, k := range root.Kids {
		Inspect(k, fn)
	}
}
