package complexity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/pescuma/cogmeter/lib/syntax"
)

func TestCognitiveNoCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, ScoreCognitive(Function("f")))
}

func TestCognitiveNil(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, ScoreCognitive(nil))
}

func TestCognitiveNestedLoops(t *testing.T) {
	t.Parallel()

	fn := Function("f",
		Loop(For, nil, Block(
			Loop(For, nil, Block()),
		)),
	)

	assert.Equal(t, 3, ScoreCognitive(fn))
}

func TestCognitiveIfAndElse(t *testing.T) {
	t.Parallel()

	fn := Function("f",
		IfElse(Binary(Ident("a"), LogicalAnd, Ident("b")), Block(), Block()),
	)

	assert.Equal(t, 3, ScoreCognitive(fn))
}

func TestCognitiveElseIfChain(t *testing.T) {
	t.Parallel()

	fn := Function("f",
		IfElse(Ident("x"), Block(),
			IfElse(Ident("y"), Block(),
				IfElse(Ident("z"), Block(), Block()))),
	)

	assert.Equal(t, 4, ScoreCognitive(fn))
}

func TestCognitiveElseIfWithoutFinalElse(t *testing.T) {
	t.Parallel()

	fn := Function("f",
		IfElse(Ident("x"), Block(),
			IfThen(Ident("y"), Block())),
	)

	assert.Equal(t, 2, ScoreCognitive(fn))
}

func TestCognitiveIfInsideElseBlockIsNested(t *testing.T) {
	t.Parallel()

	fn := Function("f",
		IfElse(Ident("x"), Block(),
			Block(IfThen(Ident("y"), Block()))),
	)

	// if = 1, else = 1, nested if = 2
	assert.Equal(t, 4, ScoreCognitive(fn))
}

func TestCognitiveElseIfKeepsOuterNesting(t *testing.T) {
	t.Parallel()

	fn := Function("f",
		IfElse(Ident("x"), Block(),
			IfThen(Ident("y"), Block(
				IfThen(Ident("z"), Block()),
			))),
	)

	// if = 1, else-if = 1, if inside the else-if body is at nesting 2
	assert.Equal(t, 4, ScoreCognitive(fn))
}

func TestCognitiveBreakAndContinue(t *testing.T) {
	t.Parallel()

	fn := Function("f",
		Loop(While, Ident("a"), Block(
			Loop(For, nil, Block(
				BreakStatement(),
				ContinueStatement(),
			)),
		)),
	)

	assert.Equal(t, 1+2+1+1, ScoreCognitive(fn))
}

func TestCognitiveBreakIgnoresNesting(t *testing.T) {
	t.Parallel()

	fn := Function("f", BreakStatement(), ContinueStatement())

	assert.Equal(t, 2, ScoreCognitive(fn))
}

func TestCognitiveWhileCondition(t *testing.T) {
	t.Parallel()

	cond := Binary(Ident("a"), LogicalOr, Ident("b"))
	fn := Function("f", Loop(While, cond, Block()))

	assert.Equal(t, 2, ScoreCognitive(fn))
}

func TestCognitiveDoWhileCondition(t *testing.T) {
	t.Parallel()

	cond := NewNode(Expression, Ident("a"), NewToken(LogicalAnd), Ident("b"), NewToken(LogicalAnd), Ident("c"))
	fn := Function("f", Loop(DoWhile, cond, Block()))

	assert.Equal(t, 3, ScoreCognitive(fn))
}

func TestCognitiveForConditionIsNotScanned(t *testing.T) {
	t.Parallel()

	cond := Binary(Ident("a"), LogicalAnd, Ident("b"))
	fn := Function("f", Loop(For, cond, Block()))

	assert.Equal(t, 1, ScoreCognitive(fn))
}

func TestCognitiveFlatRunCountsEveryOperator(t *testing.T) {
	t.Parallel()

	cond := NewNode(Expression, Ident("a"), NewToken(LogicalAnd), Ident("b"), NewToken(LogicalAnd), Ident("c"))
	fn := Function("f", IfThen(cond, Block()))

	assert.Equal(t, 3, ScoreCognitive(fn))
}

func TestCognitiveNestedSubExpressionIsNotScanned(t *testing.T) {
	t.Parallel()

	inner := Binary(Ident("a"), LogicalAnd, Ident("b"))
	cond := Binary(inner, LogicalOr, Ident("c"))
	fn := Function("f", IfThen(cond, Block()))

	assert.Equal(t, 2, ScoreCognitive(fn))
}

func TestCognitiveExpressionOutsideConditionIsNotScanned(t *testing.T) {
	t.Parallel()

	fn := Function("f", Binary(Ident("a"), LogicalAnd, Ident("b")))

	assert.Equal(t, 0, ScoreCognitive(fn))
}

func TestCognitiveMixedNesting(t *testing.T) {
	t.Parallel()

	fn := Function("f",
		Loop(While, Ident("a"), Block(
			IfThen(Ident("b"), Block(
				Loop(For, nil, Block()),
			)),
		)),
	)

	assert.Equal(t, 1+2+3, ScoreCognitive(fn))
}

func TestCognitiveMissingCondition(t *testing.T) {
	t.Parallel()

	fn := Function("f", NewNode(If, Block()), NewNode(While, Block()))

	assert.Equal(t, 2, ScoreCognitive(fn))
}

func TestCognitiveNilChildren(t *testing.T) {
	t.Parallel()

	fn := Function("f", nil, Loop(For, nil, Block(nil)))

	assert.Equal(t, 1, ScoreCognitive(fn))
}

func TestCognitiveUnknownWrapperIsTraversed(t *testing.T) {
	t.Parallel()

	fn := Function("f", Block(Block(Block(Loop(For, nil, Block())))))

	assert.Equal(t, 1, ScoreCognitive(fn))
}

func TestCognitiveNestedFunctionIsNotCounted(t *testing.T) {
	t.Parallel()

	fn := Function("f",
		Loop(For, nil, Block(
			Function("g", IfThen(Ident("a"), Block())),
		)),
	)

	assert.Equal(t, 1, ScoreCognitive(fn))
}

func TestCognitiveIdempotent(t *testing.T) {
	t.Parallel()

	fn := Function("f",
		IfElse(Binary(Ident("a"), LogicalAnd, Ident("b")), Block(
			Loop(For, nil, Block(BreakStatement())),
		), Block()),
	)

	first := ScoreCognitive(fn)
	second := ScoreCognitive(fn)

	assert.Equal(t, first, second)
	assert.Equal(t, 1+1+1+2+1, first)
}

func TestCognitiveStateIsResetBetweenFunctions(t *testing.T) {
	t.Parallel()

	a := Function("a", Loop(For, nil, Block(Loop(For, nil, Block()))))
	b := Function("b", IfThen(Ident("x"), Block()))

	c := NewCognitiveComplexity()

	assert.Equal(t, 3, c.Score(a))
	assert.Equal(t, 1, c.Score(b))
	assert.Equal(t, 1, c.Compute())
	assert.Equal(t, 0, c.nesting)
}
