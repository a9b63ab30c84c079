package treesitter

import (
	"github.com/hashicorp/go-set/v2"
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/pescuma/cogmeter/lib/syntax"
)

// Grammar maps the node types of one tree-sitter grammar to syntax kinds.
type Grammar struct {
	Name     string
	Language func() *sitter.Language

	Kinds   map[string]syntax.Kind
	Classes *set.Set[string]

	// Operator tokens, as the anonymous node types the grammar produces
	And *set.Set[string]
	Or  *set.Set[string]

	// Wrappers removed when looking for the condition expression
	Parentheses *set.Set[string]
	// Wrappers removed when looking for the else branch
	ElseClauses *set.Set[string]

	ConditionField   string
	AlternativeField string

	// Optional, for grammars where the name is not in the "name" field
	NameOf func(n *sitter.Node, content []byte) string
}

func (g *Grammar) kind(n *sitter.Node) syntax.Kind {
	if !n.IsNamed() {
		return syntax.Other
	}

	return g.Kinds[n.Type()]
}

func (g *Grammar) operator(n *sitter.Node) syntax.Operator {
	if n.IsNamed() {
		return syntax.NoOperator
	}

	switch t := n.Type(); {
	case g.And.Contains(t):
		return syntax.LogicalAnd
	case g.Or.Contains(t):
		return syntax.LogicalOr
	default:
		return syntax.NoOperator
	}
}

func (g *Grammar) name(n *sitter.Node, content []byte) string {
	if g.NameOf != nil {
		if name := g.NameOf(n, content); name != "" {
			return name
		}
	}

	return fieldName(n, content)
}

// fieldName follows "name" and then "declarator" fields until an identifier.
func fieldName(n *sitter.Node, content []byte) string {
	for i := 0; n != nil && i < 10; i++ {
		if name := n.ChildByFieldName("name"); name != nil {
			return name.Content(content)
		}

		switch n.Type() {
		case "identifier", "field_identifier", "type_identifier", "property_identifier":
			return n.Content(content)
		}

		n = n.ChildByFieldName("declarator")
	}

	return ""
}

func kinds(ks map[syntax.Kind][]string) map[string]syntax.Kind {
	result := map[string]syntax.Kind{}
	for k, types := range ks {
		for _, t := range types {
			result[t] = k
		}
	}
	return result
}

func nodeTypes(vs ...string) *set.Set[string] {
	return set.From[string](vs)
}
