package syntax

import "fmt"

type Kind int

const (
	Other Kind = iota
	FunctionDefinition
	If
	For
	While
	DoWhile
	Break
	Continue
	Expression
)

func (k Kind) String() string {
	switch k {
	case FunctionDefinition:
		return "FunctionDefinition"
	case If:
		return "If"
	case For:
		return "For"
	case While:
		return "While"
	case DoWhile:
		return "DoWhile"
	case Break:
		return "Break"
	case Continue:
		return "Continue"
	case Expression:
		return "Expression"
	default:
		return "Other"
	}
}

func (k Kind) IsLoop() bool {
	return k == For || k == While || k == DoWhile
}

// Operator is the classification of a token node. Front ends map their own token
// types to it.
type Operator int

const (
	NoOperator Operator = iota
	LogicalAnd
	LogicalOr
)

func (o Operator) IsBoolean() bool {
	return o == LogicalAnd || o == LogicalOr
}

type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%v:%v", p.Line, p.Column)
}

// Node is one node of the abstract tree a front end builds for a file.
//
// Cond points to the condition expression of If, While and DoWhile nodes. It is
// usually a descendant of the node, not a direct child.
//
// Else points to the else branch of an If node and is always one of its direct
// children.
type Node struct {
	Kind     Kind
	Operator Operator
	Name     string
	Pos      Position
	Children []*Node

	Cond *Node
	Else *Node
}

func NewNode(kind Kind, children ...*Node) *Node {
	return &Node{
		Kind:     kind,
		Children: children,
	}
}

func NewToken(op Operator) *Node {
	return &Node{
		Kind:     Other,
		Operator: op,
	}
}

func (n *Node) Add(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

func (n *Node) IsElseIf(child *Node) bool {
	return n.Kind == If && child != nil && child.Kind == If && n.Else == child
}

func (n *Node) HasPlainElse() bool {
	return n.Else != nil && n.Else.Kind != If
}

func (n *Node) String() string {
	if n.Name != "" {
		return fmt.Sprintf("%v %v", n.Kind, n.Name)
	}
	return n.Kind.String()
}

// Walk visits n and its descendants in pre-order. Returning false from f skips the
// children of the current node.
func Walk(n *Node, f func(*Node) bool) {
	if n == nil {
		return
	}

	if !f(n) {
		return
	}

	for _, c := range n.Children {
		Walk(c, f)
	}
}
