package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/deepnoodle-ai/calc"
	"github.com/deepnoodle-ai/calc/format"
	"github.com/fatih/color"
	homedir "github.com/mitchellh/go-homedir"
)

const historyFileName = ".calc_history"

var promptColor = color.New(color.FgHiBlue, color.Bold)

// runRepl reads expressions line by line and prints each one back in
// canonical form. Input that stops mid-expression, an unclosed paren or
// a trailing operator, carries over into the next line.
func runRepl(ctx context.Context) error {
	fmt.Printf("calc %s (type :help for commands, ctrl-d to exit)\n", version)

	history := loadHistory()
	scanner := bufio.NewScanner(os.Stdin)

	var pending []string
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		prompt := ">>> "
		if len(pending) > 0 {
			prompt = "... "
		}
		fmt.Print(promptColor.Sprint(prompt))

		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}
		line := scanner.Text()

		if len(pending) == 0 {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" {
				continue
			}
			if strings.HasPrefix(trimmed, ":") {
				if quit := runReplCommand(trimmed, history); quit {
					return nil
				}
				continue
			}
		}

		pending = append(pending, line)
		source := strings.Join(pending, "\n")

		program, err := calc.Parse(ctx, source, getParseOptions("")...)
		if err != nil {
			if isIncompleteInput(err) {
				continue
			}
			pending = nil
			history = appendToHistory(history, source)
			printError(err)
			continue
		}

		pending = nil
		history = appendToHistory(history, source)
		if out := format.Format(program); out != "" {
			fmt.Println(out)
		}
	}
}

// isIncompleteInput reports whether err indicates the input ended
// mid-expression, in which case the repl keeps reading lines instead of
// reporting a syntax error.
func isIncompleteInput(err error) bool {
	return strings.Contains(err.Error(), "unexpected end of input")
}

func runReplCommand(command string, history []string) (quit bool) {
	switch command {
	case ":help", ":h":
		fmt.Println("commands:")
		fmt.Println("  :help      show this help")
		fmt.Println("  :history   show recent input")
		fmt.Println("  :quit      exit the repl")
	case ":history":
		start := 0
		if len(history) > 10 {
			start = len(history) - 10
		}
		for _, entry := range history[start:] {
			fmt.Println(entry)
		}
	case ":quit", ":exit", ":q":
		return true
	default:
		fmt.Printf("unknown command: %s\n", command)
	}
	return false
}

func historyPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, historyFileName), nil
}

func loadHistory() []string {
	path, err := historyPath()
	if err != nil {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	var history []string
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) != "" {
			history = append(history, line)
		}
	}
	return history
}

// appendToHistory records entry in memory and in the history file. File
// errors are ignored; history is a convenience, not a requirement.
func appendToHistory(history []string, entry string) []string {
	entry = strings.ReplaceAll(entry, "\n", " ")
	history = append(history, entry)
	path, err := historyPath()
	if err != nil {
		return history
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return history
	}
	defer f.Close()
	fmt.Fprintln(f, entry)
	return history
}
