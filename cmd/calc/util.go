package main

import (
	goerrors "errors"
	"fmt"
	"os"

	calcerrors "github.com/deepnoodle-ai/calc/errors"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/viper"
)

var errColor = color.New(color.FgHiRed, color.Bold)

func fatal(msg interface{}) {
	var s string
	switch msg := msg.(type) {
	case string:
		s = msg
	case error:
		s = msg.Error()
	default:
		s = fmt.Sprintf("%v", msg)
	}
	fmt.Fprintf(os.Stderr, "%s\n", errColor.Sprint(s))
	os.Exit(1)
}

// printError writes err to stderr. Parse errors render with source context
// and a caret; everything else prints as a single red line.
func printError(err error) {
	var formattable calcerrors.FormattableError
	if goerrors.As(err, &formattable) {
		f := calcerrors.NewFormatter(useErrorColor())
		fmt.Fprint(os.Stderr, f.Format(formattable.ToFormatted()))
		return
	}
	fmt.Fprintf(os.Stderr, "%s\n", errColor.Sprintf("error: %s", err.Error()))
}

func isTerminalIO() bool {
	stdin := os.Stdin.Fd()
	stdout := os.Stdout.Fd()
	inTerm := isatty.IsTerminal(stdin) || isatty.IsCygwinTerminal(stdin)
	outTerm := isatty.IsTerminal(stdout) || isatty.IsCygwinTerminal(stdout)
	return inTerm && outTerm
}

func useErrorColor() bool {
	if color.NoColor {
		return false
	}
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Reads global flags from Viper and adjusts the environment accordingly.
func processGlobalFlags() {
	if viper.GetBool("no-color") {
		color.NoColor = true
	}
}
