package main

import (
	"fmt"
	"strings"

	"github.com/deepnoodle-ai/calc"
	"github.com/deepnoodle-ai/calc/ast"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var astCmd = &cobra.Command{
	Use:   "ast [file]",
	Short: "Display the syntax tree for Calc code",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		code, filename, err := getCode(cmd, args)
		if err != nil {
			return err
		}

		program, err := calc.Parse(cmd.Context(), code, getParseOptions(filename)...)
		if err != nil {
			return err
		}

		outputFormat, _ := cmd.Flags().GetString("output")
		if strings.ToLower(outputFormat) == "json" {
			return printJSON(nodeToJSON(program))
		}
		printAST(program)
		return nil
	},
}

func init() {
	astCmd.Flags().StringP("output", "o", "", "output format (json or text)")
	rootCmd.AddCommand(astCmd)
}

// astNode is a node in the JSON syntax tree output.
type astNode struct {
	Type     string     `json:"type"`
	Value    any        `json:"value,omitempty"`
	Children []*astNode `json:"children,omitempty"`
}

func nodeToJSON(node ast.Node) *astNode {
	if node == nil {
		return nil
	}

	switch n := node.(type) {
	case *ast.Program:
		result := &astNode{Type: "Program"}
		for _, stmt := range n.Stmts {
			if child := nodeToJSON(stmt); child != nil {
				result.Children = append(result.Children, child)
			}
		}
		return result

	case *ast.Assign:
		result := &astNode{Type: "Assign"}
		if n.Name != nil {
			result.Children = append(result.Children, nodeToJSON(n.Name))
		}
		if n.Value != nil {
			result.Children = append(result.Children, nodeToJSON(n.Value))
		}
		return result

	case *ast.Infix:
		result := &astNode{Type: "Infix", Value: n.Op}
		if n.X != nil {
			result.Children = append(result.Children, nodeToJSON(n.X))
		}
		if n.Y != nil {
			result.Children = append(result.Children, nodeToJSON(n.Y))
		}
		return result

	case *ast.Ident:
		return &astNode{Type: "Ident", Value: n.Name}

	case *ast.Number:
		return &astNode{Type: "Number", Value: n.Value}

	case *ast.Bool:
		return &astNode{Type: "Bool", Value: n.Value}
	}
	return nil
}

// Color styles for the syntax tree display
var (
	astNodeColor   = color.New(color.FgHiCyan, color.Bold)
	astOpColor     = color.New(color.FgHiMagenta)
	astValueColor  = color.New(color.FgHiYellow)
	astBranchColor = color.New(color.FgHiBlack)
)

func printAST(program *ast.Program) {
	fmt.Println(astNodeColor.Sprint("Program"))
	for i, stmt := range program.Stmts {
		printNode(stmt, "", i == len(program.Stmts)-1)
	}
}

func printNode(node ast.Node, indent string, isLast bool) {
	if node == nil {
		return
	}

	connector := "├─ "
	childIndent := indent + "│  "
	if isLast {
		connector = "└─ "
		childIndent = indent + "   "
	}
	prefix := astBranchColor.Sprint(indent + connector)

	switch n := node.(type) {
	case *ast.Program:
		for i, stmt := range n.Stmts {
			printNode(stmt, indent, i == len(n.Stmts)-1)
		}

	case *ast.Assign:
		fmt.Println(prefix + astNodeColor.Sprint("Assign"))
		if n.Name != nil {
			printNode(n.Name, childIndent, n.Value == nil)
		}
		if n.Value != nil {
			printNode(n.Value, childIndent, true)
		}

	case *ast.Infix:
		fmt.Println(prefix + astNodeColor.Sprint("Infix") + astOpColor.Sprintf(" %s", n.Op))
		if n.X != nil {
			printNode(n.X, childIndent, n.Y == nil)
		}
		if n.Y != nil {
			printNode(n.Y, childIndent, true)
		}

	case *ast.Ident:
		fmt.Println(prefix + astNodeColor.Sprint("Ident") + astValueColor.Sprintf(" %q", n.Name))

	case *ast.Number:
		fmt.Println(prefix + astNodeColor.Sprint("Number") + astValueColor.Sprintf(" %g", n.Value))

	case *ast.Bool:
		fmt.Println(prefix + astNodeColor.Sprint("Bool") + astValueColor.Sprintf(" %v", n.Value))
	}
}
