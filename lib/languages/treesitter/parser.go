package treesitter

import (
	"context"
	"os"

	"github.com/pkg/errors"
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/pescuma/cogmeter/lib/languages"
	"github.com/pescuma/cogmeter/lib/syntax"
)

func ParseFile(ctx context.Context, g *Grammar, path string) (*syntax.Node, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Parse(ctx, g, path, content)
}

// Parse builds the syntax tree of a whole file. Syntax errors do not fail the parse:
// tree-sitter recovers and the broken parts end up as nodes of unknown kind.
func Parse(ctx context.Context, g *Grammar, path string, content []byte) (*syntax.Node, error) {
	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(g.Language())

	tree, err := parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, errors.Wrapf(err, "error parsing %v", path)
	}
	defer tree.Close()

	c := &converter{
		grammar:  g,
		content:  content,
		location: languages.NewLocationTracker(path),
	}

	return c.convert(tree.RootNode()), nil
}

type converter struct {
	grammar  *Grammar
	content  []byte
	location *languages.LocationTracker
}

func (c *converter) convert(n *sitter.Node) *syntax.Node {
	g := c.grammar

	result := &syntax.Node{
		Kind:     g.kind(n),
		Operator: g.operator(n),
		Pos:      position(n),
	}

	if n.IsNamed() && g.Classes.Contains(n.Type()) {
		c.location.EnterClass(c.nameOr(n, "<anonymous>"))
		defer c.location.ExitClass()
	}

	if result.Kind == syntax.FunctionDefinition {
		result.Name = c.location.EnterFunction(g.name(n, c.content))
		defer c.location.ExitFunction()
	}

	var cond, alternative *sitter.Node
	switch result.Kind {
	case syntax.If:
		cond = n.ChildByFieldName(g.ConditionField)
		alternative = n.ChildByFieldName(g.AlternativeField)
	case syntax.While, syntax.DoWhile:
		cond = n.ChildByFieldName(g.ConditionField)
	}

	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child == nil {
			continue
		}

		if alternative != nil && sameNode(child, alternative) {
			els := c.convert(c.unwrapElse(child))
			result.Else = els
			result.Add(els)
			continue
		}

		converted := c.convert(child)
		result.Add(converted)

		if cond != nil && sameNode(child, cond) {
			result.Cond = c.unwrapCondition(child, converted)
		}
	}

	return result
}

func (c *converter) nameOr(n *sitter.Node, def string) string {
	name := c.grammar.name(n, c.content)
	if name == "" {
		return def
	}
	return name
}

// unwrapElse returns the statement inside an else clause.
func (c *converter) unwrapElse(n *sitter.Node) *sitter.Node {
	for c.grammar.ElseClauses.Contains(n.Type()) && n.NamedChildCount() > 0 {
		n = n.NamedChild(int(n.NamedChildCount()) - 1)
	}
	return n
}

// unwrapCondition walks down parentheses, keeping the converted tree in sync, so
// the operators of the condition are direct children of the result.
func (c *converter) unwrapCondition(n *sitter.Node, converted *syntax.Node) *syntax.Node {
	for c.grammar.Parentheses.Contains(n.Type()) {
		idx := firstNamedChildIndex(n)
		if idx < 0 || idx >= len(converted.Children) {
			break
		}

		n = n.Child(idx)
		converted = converted.Children[idx]
	}

	return converted
}

func firstNamedChildIndex(n *sitter.Node) int {
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child != nil && child.IsNamed() && child.Type() != "comment" {
			return i
		}
	}
	return -1
}

func sameNode(a, b *sitter.Node) bool {
	return a.StartByte() == b.StartByte() && a.EndByte() == b.EndByte() && a.Type() == b.Type()
}

func position(n *sitter.Node) syntax.Position {
	p := n.StartPoint()
	return syntax.Position{
		Line:   int(p.Row) + 1,
		Column: int(p.Column) + 1,
	}
}
