package complexity

import "github.com/pescuma/cogmeter/lib/syntax"

type CyclomaticComplexity struct {
	complexity int
}

func NewCyclomaticComplexity() *CyclomaticComplexity {
	return &CyclomaticComplexity{
		complexity: 0,
	}
}

func (c *CyclomaticComplexity) Compute() int {
	return c.complexity
}

func (c *CyclomaticComplexity) OnEnterFunction() {
	c.complexity++
}

func (c *CyclomaticComplexity) OnLogicalOperators(operators int) {
	c.complexity += operators
}

func (c *CyclomaticComplexity) OnJump() {
	c.complexity++
}

func (c *CyclomaticComplexity) OnConditional() {
	c.complexity++
}

func (c *CyclomaticComplexity) OnLoop() {
	c.complexity++
}

func ScoreCyclomatic(fn *syntax.Node) int {
	c := NewCyclomaticComplexity()
	c.OnEnterFunction()

	if fn == nil {
		return c.Compute()
	}

	for _, child := range fn.Children {
		syntax.Walk(child, func(n *syntax.Node) bool {
			switch {
			case n.Kind == syntax.FunctionDefinition:
				return false
			case n.Kind == syntax.If:
				c.OnConditional()
			case n.Kind.IsLoop():
				c.OnLoop()
			case n.Kind == syntax.Break, n.Kind == syntax.Continue:
				c.OnJump()
			case n.Operator.IsBoolean():
				c.OnLogicalOperators(1)
			}
			return true
		})
	}

	return c.Compute()
}
