package main

import (
	"fmt"
	"os"
	"time"

	"github.com/deepnoodle-ai/calc"
	"github.com/fatih/color"
	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var okColor = color.New(color.FgHiGreen)

var checkCmd = &cobra.Command{
	Use:   "check [files...]",
	Short: "Parse files and report syntax errors",
	Long: `Check parses each file and reports the first syntax error in it.
No output is produced for the trees; this is a parse-only pass.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolP("quiet", "q", false, "only print the error summary")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	quiet, _ := cmd.Flags().GetBool("quiet")

	var result *multierror.Error
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			result = multierror.Append(result, err)
			if !quiet {
				printError(err)
			}
			continue
		}

		start := time.Now()
		program, err := calc.Parse(cmd.Context(), string(data), getParseOptions(path)...)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("%s: %w", path, err))
			if !quiet {
				printError(err)
			}
			continue
		}

		log.Debug().
			Str("file", path).
			Int("statements", len(program.Stmts)).
			Dur("elapsed", time.Since(start)).
			Msg("parsed")
		if !quiet {
			fmt.Printf("%s: %s\n", path, okColor.Sprint("OK"))
		}
	}

	if err := result.ErrorOrNil(); err != nil {
		if quiet {
			return err
		}
		return fmt.Errorf("%d of %d files failed", len(result.Errors), len(args))
	}
	return nil
}
