package complexity

import (
	"github.com/pescuma/cogmeter/lib/syntax"
)

// https://www.sonarsource.com/docs/CognitiveComplexity.pdf

type CognitiveComplexity struct {
	complexity int
	nesting    int
}

func NewCognitiveComplexity() *CognitiveComplexity {
	return &CognitiveComplexity{}
}

func (c *CognitiveComplexity) Compute() int {
	return c.complexity
}

func (c *CognitiveComplexity) reset() {
	c.complexity = 0
	c.nesting = 0
}

func (c *CognitiveComplexity) addNestedComplexity() {
	c.nesting++
	c.complexity += c.nesting
}

func (c *CognitiveComplexity) addSimpleComplexity() {
	c.complexity++
}

func (c *CognitiveComplexity) onEnterLoop() {
	c.addNestedComplexity()
}

func (c *CognitiveComplexity) onExitLoop() {
	c.nesting--
}

func (c *CognitiveComplexity) onEnterConditional(first bool) {
	if first {
		c.addNestedComplexity()
	} else {
		c.addSimpleComplexity()
	}
}

func (c *CognitiveComplexity) onExitConditional(first bool) {
	if first {
		c.nesting--
	}
}

func (c *CognitiveComplexity) onElse() {
	c.addSimpleComplexity()
}

func (c *CognitiveComplexity) onJump() {
	c.addSimpleComplexity()
}

// onCondition counts the boolean operators that are direct children of the
// condition. Operators nested deeper belong to sub-expressions and are not counted.
func (c *CognitiveComplexity) onCondition(cond *syntax.Node) {
	if cond == nil {
		return
	}

	for _, child := range cond.Children {
		if child != nil && child.Operator.IsBoolean() {
			c.addSimpleComplexity()
		}
	}
}

// ScoreCognitive returns the cognitive complexity of a function definition.
func ScoreCognitive(fn *syntax.Node) int {
	c := NewCognitiveComplexity()
	c.Score(fn)
	return c.Compute()
}

// Score resets the state and walks fn. The accumulated value is available through
// Compute until the next call.
func (c *CognitiveComplexity) Score(fn *syntax.Node) int {
	c.reset()

	if fn == nil {
		return 0
	}

	for _, child := range fn.Children {
		walkCognitive(c, fn, child)
	}

	return c.complexity
}

func walkCognitive(c *CognitiveComplexity, parent *syntax.Node, node *syntax.Node) {
	if node == nil {
		return
	}

	switch node.Kind {
	case syntax.FunctionDefinition:
		// Scored on its own by ComputeFunctions
		return

	case syntax.For:
		c.onEnterLoop()
		walkCognitiveChildren(c, node)
		c.onExitLoop()

	case syntax.While, syntax.DoWhile:
		c.onEnterLoop()
		c.onCondition(node.Cond)
		walkCognitiveChildren(c, node)
		c.onExitLoop()

	case syntax.If:
		first := !parent.IsElseIf(node)

		c.onEnterConditional(first)
		c.onCondition(node.Cond)
		if node.HasPlainElse() {
			c.onElse()
		}

		walkCognitiveChildren(c, node)

		c.onExitConditional(first)

	case syntax.Break, syntax.Continue:
		c.onJump()
		walkCognitiveChildren(c, node)

	default:
		walkCognitiveChildren(c, node)
	}
}

func walkCognitiveChildren(c *CognitiveComplexity, node *syntax.Node) {
	for _, child := range node.Children {
		walkCognitive(c, node, child)
	}
}
