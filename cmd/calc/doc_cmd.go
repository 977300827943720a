package main

import (
	"github.com/deepnoodle-ai/calc"
	"github.com/spf13/cobra"
)

var docCmd = &cobra.Command{
	Use:     "doc [topic]",
	Aliases: []string{"d"},
	Short:   "Show language documentation",
	Long: `Doc prints built in documentation for the Calc language as JSON.

With no arguments it prints a quick reference. A topic argument selects a
single operator or error code, for example "doc =" or "doc E1003".`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var opts []calc.DocsOption
		all, _ := cmd.Flags().GetBool("all")
		category, _ := cmd.Flags().GetString("category")
		switch {
		case all:
			opts = append(opts, calc.DocsAll())
		case category != "":
			opts = append(opts, calc.DocsCategory(category))
		case len(args) == 1:
			opts = append(opts, calc.DocsTopic(args[0]))
		default:
			opts = append(opts, calc.DocsQuick())
		}
		return printJSON(calc.Docs(opts...).Data())
	},
}

func init() {
	docCmd.Flags().Bool("all", false, "show the full documentation")
	docCmd.Flags().String("category", "", "show one category (operators, syntax, errors)")
	rootCmd.AddCommand(docCmd)
}
