package complexity

import (
	"github.com/pescuma/cogmeter/lib/syntax"
)

type Result struct {
	Name   string
	Line   int
	Column int

	CyclomaticComplexity int
	CognitiveComplexity  int
}

// ComputeFunctions scores every function definition found under root, nested ones
// included, in pre-order. Each function is scored right after it is found so no
// state leaks from one to the next.
func ComputeFunctions(root *syntax.Node) []Result {
	var result []Result

	cognitive := NewCognitiveComplexity()

	syntax.Walk(root, func(n *syntax.Node) bool {
		if n.Kind != syntax.FunctionDefinition {
			return true
		}

		result = append(result, Result{
			Name:                 n.Name,
			Line:                 n.Pos.Line,
			Column:               n.Pos.Column,
			CyclomaticComplexity: ScoreCyclomatic(n),
			CognitiveComplexity:  cognitive.Score(n),
		})

		return true
	})

	return result
}
