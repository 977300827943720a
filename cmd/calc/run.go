package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/deepnoodle-ai/calc"
	"github.com/deepnoodle-ai/calc/format"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func runRender(cmd *cobra.Command, args []string) error {
	code, filename, err := getCode(cmd, args)
	if err != nil {
		return err
	}

	start := time.Now()
	program, err := calc.Parse(cmd.Context(), code, getParseOptions(filename)...)
	if err != nil {
		return err
	}
	log.Debug().
		Str("file", filename).
		Int("statements", len(program.Stmts)).
		Dur("elapsed", time.Since(start)).
		Msg("parse complete")

	outputFormat, _ := cmd.Flags().GetString("output")
	switch strings.ToLower(outputFormat) {
	case "", "text":
		if out := format.Format(program); out != "" {
			fmt.Println(out)
		}
		return nil
	case "json":
		return printJSON(nodeToJSON(program))
	default:
		return fmt.Errorf("unknown output format: %s", outputFormat)
	}
}
