package treesitter

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/c"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/smacker/go-tree-sitter/java"
	"github.com/smacker/go-tree-sitter/javascript"

	"github.com/pescuma/cogmeter/lib/languages"
	"github.com/pescuma/cogmeter/lib/syntax"
)

var grammars = map[string]*Grammar{
	languages.Go:         newGoGrammar(),
	languages.Java:       newJavaGrammar(),
	languages.JavaScript: newJavaScriptGrammar(),
	languages.C:          newCGrammar(),
}

// GrammarFor returns nil for languages without a grammar.
func GrammarFor(language string) *Grammar {
	return grammars[language]
}

func newGoGrammar() *Grammar {
	return &Grammar{
		Name:     languages.Go,
		Language: golang.GetLanguage,
		Kinds: kinds(map[syntax.Kind][]string{
			syntax.FunctionDefinition: {"function_declaration", "method_declaration", "func_literal"},
			syntax.If:                 {"if_statement"},
			syntax.For:                {"for_statement"},
			syntax.Break:              {"break_statement"},
			syntax.Continue:           {"continue_statement"},
			syntax.Expression:         {"binary_expression", "unary_expression", "parenthesized_expression", "call_expression"},
		}),
		Classes:          nodeTypes(),
		And:              nodeTypes("&&"),
		Or:               nodeTypes("||"),
		Parentheses:      nodeTypes("parenthesized_expression"),
		ElseClauses:      nodeTypes(),
		ConditionField:   "condition",
		AlternativeField: "alternative",
		NameOf:           goName,
	}
}

// goName prefixes methods with the receiver type: (t *T) M() -> T.M
func goName(n *sitter.Node, content []byte) string {
	if n.Type() != "method_declaration" {
		return ""
	}

	name := n.ChildByFieldName("name")
	receiver := n.ChildByFieldName("receiver")
	if name == nil || receiver == nil {
		return ""
	}

	for i := 0; i < int(receiver.NamedChildCount()); i++ {
		param := receiver.NamedChild(i)
		if param.Type() != "parameter_declaration" {
			continue
		}

		t := param.ChildByFieldName("type")
		for t != nil && t.Type() == "pointer_type" {
			t = t.NamedChild(0)
		}
		if t != nil && t.Type() == "generic_type" {
			t = t.ChildByFieldName("type")
		}
		if t != nil {
			return t.Content(content) + "." + name.Content(content)
		}
	}

	return name.Content(content)
}

func newJavaGrammar() *Grammar {
	return &Grammar{
		Name:     languages.Java,
		Language: java.GetLanguage,
		Kinds: kinds(map[syntax.Kind][]string{
			syntax.FunctionDefinition: {"method_declaration", "constructor_declaration", "lambda_expression"},
			syntax.If:                 {"if_statement"},
			syntax.For:                {"for_statement", "enhanced_for_statement"},
			syntax.While:              {"while_statement"},
			syntax.DoWhile:            {"do_statement"},
			syntax.Break:              {"break_statement"},
			syntax.Continue:           {"continue_statement"},
			syntax.Expression:         {"binary_expression", "unary_expression", "parenthesized_expression", "method_invocation"},
		}),
		Classes:          nodeTypes("class_declaration", "interface_declaration", "enum_declaration", "record_declaration"),
		And:              nodeTypes("&&"),
		Or:               nodeTypes("||"),
		Parentheses:      nodeTypes("parenthesized_expression"),
		ElseClauses:      nodeTypes(),
		ConditionField:   "condition",
		AlternativeField: "alternative",
	}
}

func newJavaScriptGrammar() *Grammar {
	return &Grammar{
		Name:     languages.JavaScript,
		Language: javascript.GetLanguage,
		Kinds: kinds(map[syntax.Kind][]string{
			syntax.FunctionDefinition: {
				"function_declaration", "function_expression", "function",
				"generator_function_declaration", "generator_function",
				"arrow_function", "method_definition",
			},
			syntax.If:         {"if_statement"},
			syntax.For:        {"for_statement", "for_in_statement"},
			syntax.While:      {"while_statement"},
			syntax.DoWhile:    {"do_statement"},
			syntax.Break:      {"break_statement"},
			syntax.Continue:   {"continue_statement"},
			syntax.Expression: {"binary_expression", "unary_expression", "parenthesized_expression", "call_expression"},
		}),
		Classes:          nodeTypes("class_declaration", "class"),
		And:              nodeTypes("&&"),
		Or:               nodeTypes("||"),
		Parentheses:      nodeTypes("parenthesized_expression"),
		ElseClauses:      nodeTypes("else_clause"),
		ConditionField:   "condition",
		AlternativeField: "alternative",
		NameOf:           javaScriptName,
	}
}

// javaScriptName names anonymous functions after the variable or property they are
// assigned to.
func javaScriptName(n *sitter.Node, content []byte) string {
	if n.ChildByFieldName("name") != nil {
		return ""
	}

	parent := n.Parent()
	if parent == nil {
		return ""
	}

	switch parent.Type() {
	case "variable_declarator":
		if name := parent.ChildByFieldName("name"); name != nil && name.Type() == "identifier" {
			return name.Content(content)
		}
	case "pair":
		if key := parent.ChildByFieldName("key"); key != nil {
			return key.Content(content)
		}
	}

	return ""
}

func newCGrammar() *Grammar {
	return &Grammar{
		Name:     languages.C,
		Language: c.GetLanguage,
		Kinds: kinds(map[syntax.Kind][]string{
			syntax.FunctionDefinition: {"function_definition"},
			syntax.If:                 {"if_statement"},
			syntax.For:                {"for_statement"},
			syntax.While:              {"while_statement"},
			syntax.DoWhile:            {"do_statement"},
			syntax.Break:              {"break_statement"},
			syntax.Continue:           {"continue_statement"},
			syntax.Expression:         {"binary_expression", "unary_expression", "parenthesized_expression", "call_expression"},
		}),
		Classes:          nodeTypes(),
		And:              nodeTypes("&&"),
		Or:               nodeTypes("||"),
		Parentheses:      nodeTypes("parenthesized_expression"),
		ElseClauses:      nodeTypes("else_clause"),
		ConditionField:   "condition",
		AlternativeField: "alternative",
	}
}
