package main

import (
	"errors"
	"io"
	"os"

	"github.com/deepnoodle-ai/calc"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Returns the parse options implied by the global flags and config.
func getParseOptions(filename string) []calc.Option {
	var opts []calc.Option
	if filename != "" {
		opts = append(opts, calc.WithFilename(filename))
	}
	if depth := viper.GetInt("max-depth"); depth > 0 {
		opts = append(opts, calc.WithMaxDepth(depth))
	}
	return opts
}

func shouldRunRepl(cmd *cobra.Command, args []string) bool {
	if noRepl, _ := cmd.Flags().GetBool("no-repl"); noRepl {
		return false
	}
	if viper.GetBool("stdin") {
		return false
	}
	if f := cmd.Flags().Lookup("code"); f != nil && f.Changed {
		return false
	}
	if viper.GetString("code") != "" {
		return false
	}
	if len(args) > 0 {
		return false
	}
	return isTerminalIO()
}

// getCode determines what code is to be parsed. There are three possibilities:
// 1. --code <code>
// 2. --stdin (read code from stdin)
// 3. path as args[0]
// The returned filename is empty unless the code came from a file.
func getCode(cmd *cobra.Command, args []string) (string, string, error) {
	var codeFlagSet bool
	if f := cmd.Flags().Lookup("code"); f != nil && f.Changed {
		codeFlagSet = true
	}
	stdinFlagSet := viper.GetBool("stdin")
	pathSupplied := len(args) > 0

	// Error if multiple input sources are specified
	count := 0
	for _, set := range []bool{codeFlagSet, stdinFlagSet, pathSupplied} {
		if set {
			count++
		}
	}
	if count > 1 {
		return "", "", errors.New("multiple input sources specified")
	}

	if stdinFlagSet {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", err
		}
		return string(data), "", nil
	}

	if pathSupplied {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", err
		}
		return string(data), args[0], nil
	}

	if codeFlagSet || viper.GetString("code") != "" {
		return viper.GetString("code"), "", nil
	}

	// No explicit source. Piped input still works without --stdin.
	if !isTerminalIO() {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", err
		}
		return string(data), "", nil
	}

	return "", "", errors.New("no input provided")
}
