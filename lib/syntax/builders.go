package syntax

// Helpers to build trees by hand. Front ends fill Node directly, these exist mostly
// for tests and for small embedded trees.

func Function(name string, body ...*Node) *Node {
	n := NewNode(FunctionDefinition, body...)
	n.Name = name
	return n
}

func Block(statements ...*Node) *Node {
	return NewNode(Other, statements...)
}

// Binary builds an expression with the operands and operator tokens as direct
// children, the way most parse trees represent a single binary operation.
func Binary(left *Node, op Operator, right *Node) *Node {
	return NewNode(Expression, left, NewToken(op), right)
}

func Ident(name string) *Node {
	n := NewNode(Expression)
	n.Name = name
	return n
}

func IfElse(cond *Node, then *Node, els *Node) *Node {
	n := NewNode(If, cond, then)
	n.Cond = cond
	if els != nil {
		n.Else = els
		n.Add(els)
	}
	return n
}

func IfThen(cond *Node, then *Node) *Node {
	return IfElse(cond, then, nil)
}

func Loop(kind Kind, cond *Node, body *Node) *Node {
	n := NewNode(kind)
	if cond != nil {
		n.Cond = cond
		n.Add(cond)
	}
	n.Add(body)
	return n
}

func BreakStatement() *Node {
	return NewNode(Break)
}

func ContinueStatement() *Node {
	return NewNode(Continue)
}
