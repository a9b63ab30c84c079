package parsetree

import (
	"github.com/pkg/errors"

	"github.com/pescuma/cogmeter/lib/languages"
	"github.com/pescuma/cogmeter/lib/syntax"
)

// Grammar describes an ANTLR generated parser: which rule indexes are which kind of
// node and which token types are boolean operators.
type Grammar struct {
	Name string

	Rules map[int]syntax.Kind

	// Rules holding the declared name of a function
	Identifiers map[int]bool

	And  map[int]bool
	Or   map[int]bool
	Else int
}

func (g *Grammar) kind(ruleIndex int) syntax.Kind {
	return g.Rules[ruleIndex]
}

func (g *Grammar) operator(tokenType int) syntax.Operator {
	switch {
	case g.And[tokenType]:
		return syntax.LogicalAnd
	case g.Or[tokenType]:
		return syntax.LogicalOr
	default:
		return syntax.NoOperator
	}
}

// Token types of && and || in the lexer generated from the Solidity grammar.
const (
	SolidityTokenAnd = 69
	SolidityTokenOr  = 70
)

// SolidityRules holds the rule indexes of a generated Solidity parser (its RULE_*
// constants) and the token type of the else keyword.
type SolidityRules struct {
	FunctionDefinition int
	Identifier         int
	Expression         int
	IfStatement        int
	WhileStatement     int
	ForStatement       int
	DoWhileStatement   int
	ContinueStatement  int
	BreakStatement     int
	ElseToken          int
}

// SolidityGrammar builds the table for a generated Solidity parser. Every rule field
// is required and must hold a distinct index.
func SolidityGrammar(r SolidityRules) (*Grammar, error) {
	rules := []struct {
		name  string
		index int
		kind  syntax.Kind
	}{
		{"FunctionDefinition", r.FunctionDefinition, syntax.FunctionDefinition},
		{"Expression", r.Expression, syntax.Expression},
		{"IfStatement", r.IfStatement, syntax.If},
		{"WhileStatement", r.WhileStatement, syntax.While},
		{"ForStatement", r.ForStatement, syntax.For},
		{"DoWhileStatement", r.DoWhileStatement, syntax.DoWhile},
		{"ContinueStatement", r.ContinueStatement, syntax.Continue},
		{"BreakStatement", r.BreakStatement, syntax.Break},
		{"Identifier", r.Identifier, syntax.Other},
	}

	g := &Grammar{
		Name:        languages.Solidity,
		Rules:       map[int]syntax.Kind{},
		Identifiers: map[int]bool{r.Identifier: true},
		And:         map[int]bool{SolidityTokenAnd: true},
		Or:          map[int]bool{SolidityTokenOr: true},
		Else:        r.ElseToken,
	}

	used := map[int]string{}
	for _, rule := range rules {
		if other, ok := used[rule.index]; ok {
			return nil, errors.Errorf("rules %v and %v have the same index %v", other, rule.name, rule.index)
		}
		used[rule.index] = rule.name

		if rule.kind != syntax.Other {
			g.Rules[rule.index] = rule.kind
		}
	}

	return g, nil
}
