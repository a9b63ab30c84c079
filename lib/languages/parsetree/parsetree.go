package parsetree

import (
	"github.com/antlr/antlr4/runtime/Go/antlr/v4"

	"github.com/pescuma/cogmeter/lib/languages"
	"github.com/pescuma/cogmeter/lib/syntax"
)

// Convert builds the syntax tree of an ANTLR parse tree. Rules unknown to the
// grammar become nodes of kind Other, and their children are still converted.
func Convert(path string, tree antlr.Tree, g *Grammar) *syntax.Node {
	c := &converter{
		grammar:  g,
		location: languages.NewLocationTracker(path),
	}

	return c.convert(tree)
}

type converter struct {
	grammar  *Grammar
	location *languages.LocationTracker
}

func (c *converter) convert(tree antlr.Tree) *syntax.Node {
	switch t := tree.(type) {
	case antlr.TerminalNode:
		return c.convertToken(t)
	case antlr.RuleContext:
		return c.convertRule(t)
	default:
		return &syntax.Node{Kind: syntax.Other}
	}
}

func (c *converter) convertToken(t antlr.TerminalNode) *syntax.Node {
	result := &syntax.Node{Kind: syntax.Other}

	if symbol := t.GetSymbol(); symbol != nil {
		result.Operator = c.grammar.operator(symbol.GetTokenType())
		result.Pos = tokenPosition(symbol)
	}

	return result
}

func (c *converter) convertRule(ctx antlr.RuleContext) *syntax.Node {
	g := c.grammar

	result := &syntax.Node{
		Kind: g.kind(ctx.GetRuleIndex()),
	}

	if prc, ok := ctx.(antlr.ParserRuleContext); ok && prc.GetStart() != nil {
		result.Pos = tokenPosition(prc.GetStart())
	}

	if result.Kind == syntax.FunctionDefinition {
		result.Name = c.location.EnterFunction(c.functionName(ctx, 0))
		defer c.location.ExitFunction()
	}

	children := ctx.GetChildren()

	condIndex := -1
	elseIndex := -1
	switch result.Kind {
	case syntax.If:
		condIndex = c.findCondition(children)
		elseIndex = c.findElse(children)
	case syntax.While, syntax.DoWhile:
		condIndex = c.findCondition(children)
	}

	for i, child := range children {
		if child == nil {
			continue
		}

		if i == elseIndex {
			els := c.convert(unwrap(child, g))
			result.Else = els
			result.Add(els)
			continue
		}

		converted := c.convert(child)
		result.Add(converted)

		if i == condIndex {
			result.Cond = converted
		}
	}

	return result
}

// findCondition returns the index of the first child expression rule.
func (c *converter) findCondition(children []antlr.Tree) int {
	for i, child := range children {
		if rc, ok := child.(antlr.RuleContext); ok && c.grammar.kind(rc.GetRuleIndex()) == syntax.Expression {
			return i
		}
	}
	return -1
}

// findElse returns the index of the rule that follows the else keyword.
func (c *converter) findElse(children []antlr.Tree) int {
	for i, child := range children {
		tn, ok := child.(antlr.TerminalNode)
		if !ok || tn.GetSymbol() == nil || tn.GetSymbol().GetTokenType() != c.grammar.Else {
			continue
		}

		for j := i + 1; j < len(children); j++ {
			if _, ok := children[j].(antlr.RuleContext); ok {
				return j
			}
		}
	}
	return -1
}

// functionName looks for the identifier rule in the function header, without
// entering statements.
func (c *converter) functionName(ctx antlr.RuleContext, depth int) string {
	if depth > 3 {
		return ""
	}

	for _, child := range ctx.GetChildren() {
		rc, ok := child.(antlr.RuleContext)
		if !ok {
			continue
		}

		if c.grammar.Identifiers[rc.GetRuleIndex()] {
			if pt, ok := child.(antlr.ParseTree); ok {
				return pt.GetText()
			}
		}

		if c.grammar.kind(rc.GetRuleIndex()) != syntax.Other {
			continue
		}

		if name := c.functionName(rc, depth+1); name != "" {
			return name
		}
	}

	return ""
}

// unwrap removes wrapper rules with a single rule child, such as a statement rule
// holding an if statement, so that an else-if becomes a direct child.
func unwrap(tree antlr.Tree, g *Grammar) antlr.Tree {
	for {
		rc, ok := tree.(antlr.RuleContext)
		if !ok || g.kind(rc.GetRuleIndex()) != syntax.Other || rc.GetChildCount() != 1 {
			return tree
		}

		child := rc.GetChild(0)
		if _, ok := child.(antlr.RuleContext); !ok {
			return tree
		}

		tree = child
	}
}

func tokenPosition(t antlr.Token) syntax.Position {
	return syntax.Position{
		Line:   t.GetLine(),
		Column: t.GetColumn() + 1,
	}
}
