package parser

import (
	"context"
	"strings"
	"testing"
	"time"
	"unicode/utf8"
)

// FuzzParse tests that the parser doesn't panic on arbitrary input.
// The parser should either return a valid AST or an error, never crash.
func FuzzParse(f *testing.F) {
	// Seed corpus with valid Calc code
	seeds := []string{
		// Basic expressions
		"1 + 2",
		"x",
		"true",
		"false",
		"3.14",
		"0",
		"007",

		// Operators
		"a + b - c * d / e % f",
		"a == b != c",
		"a < b <= c > d >= e",
		"a & b ^ c | d",
		"1 + 2 * 3",
		"1 - 2 - 3",
		"1 < 2 == true",

		// Assignments
		"x = 10",
		"a = b = 3",
		"x = y = z = 0",
		"total = price * quantity + tax",

		// Grouping
		"(1 + 2) * 3",
		"((((x))))",
		"2 * (3 + 4) / (1 + 1)",

		// Multiline
		"a\nb",
		"1 + 2\n3 * 4",
		"a = 1\nb = a + 2",
		"a +\nb",
		"x = (1 +\n2)",

		// Edge cases - invalid but should not crash
		"",
		" ",
		"\n",
		"\t",
		"@",
		"#",
		"$",
		"~",
		"(",
		")",
		"1 +",
		"+ 1",
		"((",
		"))",
		"x =",
		"x = =",
		"= x",
		"1 = 2",
		"1 2 3",
		"x y z",
		"a ? b",
		"!",
		"a ! b",

		// Numbers
		"0",
		"00",
		"0.0",
		"1.5",
		".5",
		"5.",
		"1.2.3",
		"1..2",
		"999999999999999999999999999999",

		// Unicode
		"日本語",
		"\"hello\"",
		"emoji 🎉",

		// Long inputs
		"((((((((((((((((((((x))))))))))))))))))))",
		"a + b + c + d + e + f + g + h + i + j + k",
	}

	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, input string) {
		// Skip very long inputs to avoid timeout
		if len(input) > 10000 {
			return
		}

		// Create a context with timeout to prevent infinite loops
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer cancel()

		// The parser should NEVER panic, regardless of input
		// It should either return a valid result or an error
		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("Parser panicked on input %q: %v", truncate(input, 100), r)
				}
			}()

			program, err := Parse(ctx, input, nil)

			// Parsing is all or nothing: a nil program means an error and a
			// returned program means no error
			if err == nil && program == nil {
				t.Errorf("Parse returned nil program without error for input %q", truncate(input, 100))
			}
			if err != nil && program != nil {
				t.Errorf("Parse returned both a program and an error for input %q", truncate(input, 100))
			}

			// If we got a program, verify it's valid
			if program != nil {
				// String() should not panic
				_ = program.String()

				// Verify statements are accessible
				for _, stmt := range program.Stmts {
					if stmt != nil {
						_ = stmt.String()
					}
				}
			}
		}()
	})
}

// FuzzParseStringConsistency tests that parsing produces consistent String()
// output. Note: AST String() is for debugging, not code generation. This test
// verifies that String() is at least consistent (calling it twice produces
// the same result) and doesn't panic.
func FuzzParseStringConsistency(f *testing.F) {
	seeds := []string{
		"1 + 2",
		"x",
		"x = 1",
		"a = b = 3",
		"(1 + 2) * 3",
		"a | b ^ c & d",
		"1 < 2 == true",
		"a = 1\nb = 2",
	}

	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, input string) {
		if len(input) > 5000 {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer cancel()

		defer func() {
			if r := recover(); r != nil {
				t.Errorf("Panic on input %q: %v", truncate(input, 100), r)
			}
		}()

		program, err := Parse(ctx, input, nil)
		if err != nil || program == nil {
			return
		}

		// String() should be consistent (calling twice gives same result)
		str1 := program.String()
		str2 := program.String()
		if str1 != str2 {
			t.Errorf("String() not consistent: first=%q second=%q",
				truncate(str1, 200), truncate(str2, 200))
		}

		// String() output should be valid UTF-8 when the input was
		if utf8.ValidString(input) && !utf8.ValidString(str1) {
			t.Errorf("String() produced invalid UTF-8 for input %q", truncate(input, 100))
		}
	})
}

// FuzzParseDeepNesting tests the parser handles deeply nested structures
func FuzzParseDeepNesting(f *testing.F) {
	f.Add(10)
	f.Add(50)
	f.Add(100)
	f.Add(200)
	f.Add(500)

	f.Fuzz(func(t *testing.T, depth int) {
		if depth < 1 || depth > 1000 {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer cancel()

		defer func() {
			if r := recover(); r != nil {
				t.Errorf("Parser panicked at depth %d: %v", depth, r)
			}
		}()

		// Deeply nested parentheses
		var sb strings.Builder
		for i := 0; i < depth; i++ {
			sb.WriteString("(")
		}
		sb.WriteString("x")
		for i := 0; i < depth; i++ {
			sb.WriteString(")")
		}
		_, _ = Parse(ctx, sb.String(), nil)

		// Long operator chains fold iteratively and should always succeed
		sb.Reset()
		sb.WriteString("1")
		for i := 0; i < depth; i++ {
			sb.WriteString(" + 1")
		}
		if _, err := Parse(ctx, sb.String(), nil); err != nil {
			if ctx.Err() == nil {
				t.Errorf("operator chain of length %d failed: %v", depth, err)
			}
		}

		// Chained assignments recurse on the right side
		sb.Reset()
		for i := 0; i < depth; i++ {
			sb.WriteString("x = ")
		}
		sb.WriteString("1")
		_, _ = Parse(ctx, sb.String(), nil)
	})
}

// FuzzParseOperatorCombinations tests various operator combinations
func FuzzParseOperatorCombinations(f *testing.F) {
	operators := []string{"+", "-", "*", "/", "%", "==", "!=", "<", ">", "<=", ">=", "&", "^", "|", "="}

	for _, op1 := range operators[:5] {
		for _, op2 := range operators[:5] {
			f.Add(op1, op2)
		}
	}

	f.Fuzz(func(t *testing.T, op1, op2 string) {
		// Test: a op1 b op2 c
		input := "a " + op1 + " b " + op2 + " c"

		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer cancel()

		defer func() {
			if r := recover(); r != nil {
				t.Errorf("Parser panicked on operator combo %q %q: %v", op1, op2, r)
			}
		}()

		_, _ = Parse(ctx, input, nil)
	})
}

// FuzzParseStatementBoundaries tests edge cases around statement boundaries.
// Statements are split by line number, so these target the line heuristic.
func FuzzParseStatementBoundaries(f *testing.F) {
	seeds := []string{
		// Multiple statements
		"a\nb",
		"a\n\nb",
		"a\nb\nc",

		// Newlines in expressions
		"a +\nb",
		"a\n+ b",
		"a\n+\nb",
		"x =\n1",
		"x\n= 1",

		// Same-line violations
		"1 2",
		"a b",
		"1 + 2 3",
		"a = 1 b = 2",

		// Empty lines
		"\n\n\n",
		"a\n\n\nb",
		"  \n  \n  ",

		// Trailing/leading newlines
		"\na",
		"a\n",
		"\na\n",
		"\n\na\n\n",

		// Windows line endings
		"a\r\nb",
		"a = 1\r\nb = 2",

		// Parens spanning lines
		"(a\n)",
		"(\na)",
		"(a +\nb) * c",
	}

	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, input string) {
		if len(input) > 5000 {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer cancel()

		defer func() {
			if r := recover(); r != nil {
				t.Errorf("Panic on statement boundary input %q: %v", truncate(input, 100), r)
			}
		}()

		program, _ := Parse(ctx, input, nil)

		if program != nil {
			_ = program.String()
		}
	})
}

// FuzzParseRandomBytes tests the parser with arbitrary byte sequences.
// This can find issues with invalid UTF-8, control characters, etc.
func FuzzParseRandomBytes(f *testing.F) {
	seeds := [][]byte{
		[]byte("normal"),
		{0x00},                     // NULL byte
		{0x7f},                     // DEL
		{0xff},                     // Invalid UTF-8
		{0x80},                     // Invalid UTF-8 continuation
		{0xc0, 0x80},               // Overlong encoding
		{0xfe, 0xff},               // UTF-16 BOM
		{0xef, 0xbb, 0xbf},         // UTF-8 BOM
		[]byte("x = \x00"),         // NULL in code
		[]byte("x = \xff"),         // Invalid byte in code
		[]byte("\x1b[31m"),         // ANSI escape sequence
		[]byte("a\rb"),             // Carriage return
		[]byte("a\r\nb"),           // Windows newline
		[]byte("a\x0bb"),           // Vertical tab
		[]byte("a\x0cb"),           // Form feed
		{0xf0, 0x9f, 0x98, 0x80},   // Emoji bytes
		[]byte("x\xf0\x9f\x98\x80"), // Emoji after identifier
	}

	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, input []byte) {
		if len(input) > 5000 {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer cancel()

		defer func() {
			if r := recover(); r != nil {
				t.Errorf("Panic on random bytes %v: %v", input[:min(len(input), 20)], r)
			}
		}()

		program, _ := Parse(ctx, string(input), nil)

		if program != nil {
			_ = program.String()
		}
	})
}

// truncate truncates a string for display
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
