package calc

import (
	"encoding/json"
	"strings"
)

// DocsOption configures documentation retrieval.
type DocsOption func(*docsOptions)

type docsOptions struct {
	category string
	topic    string
	quick    bool
	all      bool
}

// DocsCategory filters documentation to a specific category.
// Valid categories: "operators", "syntax", "errors"
func DocsCategory(cat string) DocsOption {
	return func(o *docsOptions) {
		o.category = cat
	}
}

// DocsTopic retrieves documentation for a specific topic.
// Examples: "=", "%", "E1003"
func DocsTopic(topic string) DocsOption {
	return func(o *docsOptions) {
		o.topic = topic
	}
}

// DocsQuick returns a concise quick reference.
func DocsQuick() DocsOption {
	return func(o *docsOptions) {
		o.quick = true
	}
}

// DocsAll returns complete documentation.
func DocsAll() DocsOption {
	return func(o *docsOptions) {
		o.all = true
	}
}

// Documentation provides structured access to Calc documentation.
type Documentation struct {
	data any
}

// JSON returns the documentation as a JSON string.
func (d *Documentation) JSON() string {
	b, _ := json.MarshalIndent(d.data, "", "  ")
	return string(b)
}

// Data returns the raw documentation data.
func (d *Documentation) Data() any {
	return d.data
}

// Version is the current Calc version.
const Version = "0.1.0"

// docsCalcInfo provides basic Calc information.
type docsCalcInfo struct {
	Version      string `json:"version"`
	Description  string `json:"description"`
	ParsingModel string `json:"parsing_model"`
}

// docsOperatorInfo describes one operator.
type docsOperatorInfo struct {
	Lexeme        string `json:"lexeme"`
	Name          string `json:"name"`
	Precedence    int    `json:"precedence"`
	Associativity string `json:"associativity"`
	Example       string `json:"example"`
	Parsed        string `json:"parsed"`
}

// docsSyntaxPattern describes a syntax pattern.
type docsSyntaxPattern struct {
	Pattern     string `json:"pattern"`
	Description string `json:"description"`
}

// docsSyntaxSection groups related syntax items.
type docsSyntaxSection struct {
	Name  string           `json:"name"`
	Items []docsSyntaxItem `json:"items"`
}

// docsSyntaxItem describes a single syntax construct.
type docsSyntaxItem struct {
	Syntax string `json:"syntax"`
	Type   string `json:"type,omitempty"`
	Notes  string `json:"notes"`
}

// docsErrorPattern describes a common error pattern.
type docsErrorPattern struct {
	Code           string             `json:"code"`
	MessagePattern string             `json:"message_pattern"`
	Causes         []string           `json:"causes"`
	Examples       []docsErrorExample `json:"examples"`
}

// docsErrorExample shows a specific error case.
type docsErrorExample struct {
	Error       string `json:"error"`
	BadCode     string `json:"bad_code"`
	Fix         string `json:"fix"`
	Explanation string `json:"explanation"`
}

// docsQuickReference is the quick reference structure.
type docsQuickReference struct {
	Calc           docsCalcInfo        `json:"calc"`
	SyntaxQuickRef []docsSyntaxPattern `json:"syntax_quick_ref"`
	Topics         map[string]string   `json:"topics"`
	Next           []string            `json:"next"`
}

// docsFullDocumentation contains all documentation.
type docsFullDocumentation struct {
	Calc      docsCalcInfo        `json:"calc"`
	Operators []docsOperatorInfo  `json:"operators"`
	Syntax    []docsSyntaxSection `json:"syntax"`
	Errors    []docsErrorPattern  `json:"errors"`
}

// Docs returns structured documentation about the Calc language.
// Useful for tooling, editor integrations, and LLM agents.
//
// Example:
//
//	// Quick reference
//	docs := calc.Docs(calc.DocsQuick())
//	fmt.Println(docs.JSON())
//
//	// Full documentation
//	docs := calc.Docs(calc.DocsAll())
//
//	// Specific category
//	docs := calc.Docs(calc.DocsCategory("operators"))
func Docs(opts ...DocsOption) *Documentation {
	o := &docsOptions{}
	for _, opt := range opts {
		opt(o)
	}

	if o.quick {
		return &Documentation{data: buildQuickReference()}
	}

	if o.all {
		return &Documentation{data: buildFullDocumentation()}
	}

	if o.category != "" {
		return &Documentation{data: buildCategoryDocs(o.category)}
	}

	if o.topic != "" {
		return &Documentation{data: buildTopicDocs(o.topic)}
	}

	// Default: return quick reference
	return &Documentation{data: buildQuickReference()}
}

func buildQuickReference() docsQuickReference {
	return docsQuickReference{
		Calc: docsCalcInfo{
			Version:      Version,
			Description:  "Tiny infix expression language with a friendly parser",
			ParsingModel: "source -> lexer -> parser -> syntax tree",
		},
		SyntaxQuickRef: docsSyntaxQuickRef,
		Topics: map[string]string{
			"operators": "Operators by precedence tier (=, |, ^, &, ==, <, +, *, ...)",
			"syntax":    "Literals, identifiers, grouping, statements",
			"errors":    "Syntax error codes and how to fix them",
		},
		Next: []string{
			"calc.Docs(calc.DocsCategory(\"operators\"))",
			"calc.Docs(calc.DocsCategory(\"errors\"))",
			"calc.Docs(calc.DocsAll())",
		},
	}
}

func buildFullDocumentation() docsFullDocumentation {
	return docsFullDocumentation{
		Calc: docsCalcInfo{
			Version:      Version,
			Description:  "Tiny infix expression language with a friendly parser",
			ParsingModel: "source -> lexer -> parser -> syntax tree",
		},
		Operators: docsOperators,
		Syntax:    docsSyntaxSections,
		Errors:    docsErrorPatterns,
	}
}

func buildCategoryDocs(category string) any {
	switch category {
	case "operators":
		return map[string]any{
			"category":    "operators",
			"description": "Operators from loosest to tightest binding; same tier folds left",
			"count":       len(docsOperators),
			"operators":   docsOperators,
		}
	case "syntax":
		return map[string]any{
			"category":    "syntax",
			"description": "Complete syntax reference",
			"sections":    docsSyntaxSections,
		}
	case "errors":
		return map[string]any{
			"category":    "errors",
			"description": "Syntax error codes, common causes, and fixes",
			"patterns":    docsErrorPatterns,
		}
	default:
		return map[string]any{
			"error": "unknown category: " + category,
		}
	}
}

func buildTopicDocs(topic string) any {
	// Check operators by lexeme
	for _, op := range docsOperators {
		if op.Lexeme == topic {
			return map[string]any{
				"type":     "operator",
				"operator": op,
			}
		}
	}

	// Check error patterns by code
	code := strings.ToUpper(topic)
	for _, pattern := range docsErrorPatterns {
		if pattern.Code == code {
			return map[string]any{
				"type":    "error",
				"pattern": pattern,
			}
		}
	}

	return map[string]any{
		"error": "unknown topic: " + topic,
	}
}

// Operator documentation, ordered from loosest to tightest binding.
var docsOperators = []docsOperatorInfo{
	{Lexeme: "=", Name: "assignment", Precedence: 1, Associativity: "right", Example: "a = b = 3", Parsed: "(a = (b = 3))"},
	{Lexeme: "|", Name: "logical or", Precedence: 2, Associativity: "left", Example: "a | b | c", Parsed: "((a | b) | c)"},
	{Lexeme: "^", Name: "logical xor", Precedence: 3, Associativity: "left", Example: "a ^ b ^ c", Parsed: "((a ^ b) ^ c)"},
	{Lexeme: "&", Name: "logical and", Precedence: 4, Associativity: "left", Example: "a & b & c", Parsed: "((a & b) & c)"},
	{Lexeme: "==", Name: "equal", Precedence: 5, Associativity: "left", Example: "1 < 2 == true", Parsed: "((1 < 2) == true)"},
	{Lexeme: "!=", Name: "not equal", Precedence: 5, Associativity: "left", Example: "a != b", Parsed: "(a != b)"},
	{Lexeme: "<", Name: "less than", Precedence: 6, Associativity: "left", Example: "a < b", Parsed: "(a < b)"},
	{Lexeme: "<=", Name: "less or equal", Precedence: 6, Associativity: "left", Example: "a <= b", Parsed: "(a <= b)"},
	{Lexeme: ">", Name: "greater than", Precedence: 6, Associativity: "left", Example: "a > b", Parsed: "(a > b)"},
	{Lexeme: ">=", Name: "greater or equal", Precedence: 6, Associativity: "left", Example: "a >= b", Parsed: "(a >= b)"},
	{Lexeme: "+", Name: "addition", Precedence: 7, Associativity: "left", Example: "1 + 2 * 3", Parsed: "(1 + (2 * 3))"},
	{Lexeme: "-", Name: "subtraction", Precedence: 7, Associativity: "left", Example: "1 - 2 - 3", Parsed: "((1 - 2) - 3)"},
	{Lexeme: "*", Name: "multiplication", Precedence: 8, Associativity: "left", Example: "2 * 3 * 4", Parsed: "((2 * 3) * 4)"},
	{Lexeme: "/", Name: "division", Precedence: 8, Associativity: "left", Example: "8 / 4 / 2", Parsed: "((8 / 4) / 2)"},
	{Lexeme: "%", Name: "modulo", Precedence: 8, Associativity: "left", Example: "10 % 3", Parsed: "(10 % 3)"},
}

// Syntax quick reference
var docsSyntaxQuickRef = []docsSyntaxPattern{
	{Pattern: "x = 42", Description: "Assignment (right associative)"},
	{Pattern: "1 + 2 * 3", Description: "Arithmetic with precedence"},
	{Pattern: "(1 + 2) * 3", Description: "Parenthesized grouping"},
	{Pattern: "a < b == true", Description: "Comparison and equality"},
	{Pattern: "x & y | z", Description: "Logical operators"},
	{Pattern: "a = 1\nb = 2", Description: "One statement per line"},
}

// Syntax sections
var docsSyntaxSections = []docsSyntaxSection{
	{
		Name: "literals",
		Items: []docsSyntaxItem{
			{Syntax: "42", Type: "number", Notes: "Numbers are double precision floats"},
			{Syntax: "3.14", Type: "number", Notes: "At most one decimal point, with digits on both sides"},
			{Syntax: "true, false", Type: "boolean", Notes: "Boolean literals"},
		},
	},
	{
		Name: "identifiers",
		Items: []docsSyntaxItem{
			{Syntax: "x", Type: "identifier", Notes: "Letters, digits, and underscores; must not start with a digit"},
			{Syntax: "total_2", Type: "identifier", Notes: "Underscores and trailing digits are fine"},
		},
	},
	{
		Name: "expressions",
		Items: []docsSyntaxItem{
			{Syntax: "x = value", Notes: "Assignment; the left side must be an identifier"},
			{Syntax: "(expr)", Notes: "Grouping overrides precedence"},
			{Syntax: "a + b - c", Notes: "Same tier folds left: ((a + b) - c)"},
		},
	},
	{
		Name: "statements",
		Items: []docsSyntaxItem{
			{Syntax: "a = 1\nb = a + 1", Notes: "Statements are split by line; two expressions on one line is an error"},
			{Syntax: "x = (1 +\n2)", Notes: "An expression may continue across lines while it is incomplete"},
		},
	},
}

// Error patterns
var docsErrorPatterns = []docsErrorPattern{
	{
		Code:           "E1001",
		MessagePattern: "invalid syntax (unexpected ...)",
		Causes: []string{
			"An operator with a missing operand",
			"Input that ends in the middle of an expression",
		},
		Examples: []docsErrorExample{
			{
				Error:       `syntax error: invalid syntax (unexpected "*")`,
				BadCode:     "1 + * 2",
				Fix:         "1 + 2",
				Explanation: "Every operator needs a value on both sides",
			},
		},
	},
	{
		Code:           "E1002",
		MessagePattern: "unexpected token ... following statement",
		Causes: []string{
			"Two expressions on the same line",
			"A stray value after a complete expression",
		},
		Examples: []docsErrorExample{
			{
				Error:       `syntax error: unexpected token "3" following statement`,
				BadCode:     "1 + 2 3",
				Fix:         "1 + 2\n3",
				Explanation: "Each statement must start on its own line",
			},
		},
	},
	{
		Code:           "E1003",
		MessagePattern: "unexpected ... while parsing grouped expression",
		Causes: []string{
			"An opening parenthesis that was never closed",
		},
		Examples: []docsErrorExample{
			{
				Error:       `syntax error: unexpected end of input while parsing grouped expression (expected ")")`,
				BadCode:     "(1 + 2",
				Fix:         "(1 + 2)",
				Explanation: "Every ( needs a matching )",
			},
		},
	},
	{
		Code:           "E1004",
		MessagePattern: "invalid number literal: ...",
		Causes: []string{
			"A digit run too large for a double precision float",
		},
		Examples: []docsErrorExample{
			{
				Error:       "syntax error: invalid number literal: 99999...9",
				BadCode:     "99999...9 (400 digits)",
				Fix:         "use a value that fits in a double precision float",
				Explanation: "A literal the lexer accepts must still convert to a float64",
			},
		},
	},
	{
		Code:           "E1005",
		MessagePattern: "invalid assignment target",
		Causes: []string{
			"The left side of = is not a plain identifier",
		},
		Examples: []docsErrorExample{
			{
				Error:       `syntax error: invalid assignment target (expected an identifier on the left side of "=")`,
				BadCode:     "1 = 2",
				Fix:         "x = 2",
				Explanation: "Only identifiers can be assigned to",
			},
		},
	},
	{
		Code:           "E1006",
		MessagePattern: "invalid decimal literal / unexpected character",
		Causes: []string{
			"A number with more than one decimal point",
			"A character the language does not use",
		},
		Examples: []docsErrorExample{
			{
				Error:       "syntax error: invalid decimal literal: 1.2.3",
				BadCode:     "1.2.3",
				Fix:         "1.23",
				Explanation: "Numbers may contain at most one decimal point",
			},
		},
	},
	{
		Code:           "E1007",
		MessagePattern: "maximum nesting depth exceeded",
		Causes: []string{
			"Expressions nested more deeply than the configured limit",
		},
		Examples: []docsErrorExample{
			{
				Error:       "syntax error: maximum nesting depth exceeded",
				BadCode:     "((((((...))))))",
				Fix:         "flatten the expression or raise the limit with WithMaxDepth",
				Explanation: "The parser refuses pathological nesting instead of exhausting the stack",
			},
		},
	},
}
