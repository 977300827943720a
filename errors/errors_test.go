package errors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceLocationString(t *testing.T) {
	tests := []struct {
		name     string
		loc      SourceLocation
		expected string
	}{
		{
			name:     "with filename",
			loc:      SourceLocation{Filename: "main.calc", Line: 10, Column: 5},
			expected: "main.calc:10:5",
		},
		{
			name:     "without filename",
			loc:      SourceLocation{Line: 10, Column: 5},
			expected: "10:5",
		},
		{
			name:     "zero location",
			loc:      SourceLocation{},
			expected: "0:0",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.loc.String())
		})
	}
}

func TestSourceLocationIsZero(t *testing.T) {
	tests := []struct {
		name     string
		loc      SourceLocation
		expected bool
	}{
		{
			name:     "zero location",
			loc:      SourceLocation{},
			expected: true,
		},
		{
			name:     "with line only",
			loc:      SourceLocation{Line: 1},
			expected: false,
		},
		{
			name:     "with column only",
			loc:      SourceLocation{Column: 1},
			expected: false,
		},
		{
			name:     "filename doesn't affect IsZero",
			loc:      SourceLocation{Filename: "test.calc"},
			expected: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.loc.IsZero())
		})
	}
}

func TestErrorCodes(t *testing.T) {
	assert.Equal(t, "unexpected token", E1001.Description())
	assert.Equal(t, "unexpected token following statement", E1002.Description())
	assert.Equal(t, "unclosed delimiter", E1003.Description())
	assert.Equal(t, "invalid number literal", E1004.Description())
	assert.Equal(t, "invalid assignment target", E1005.Description())
	assert.Equal(t, "invalid token", E1006.Description())
	assert.Equal(t, "maximum nesting depth exceeded", E1007.Description())
	assert.Equal(t, "unknown error", ErrorCode("E9999").Description())

	assert.Equal(t, "E1001", E1001.String())
	assert.Equal(t, "parse", E1001.Category())
	assert.Equal(t, "unknown", ErrorCode("").Category())
	assert.Equal(t, "unknown", ErrorCode("X").Category())
}

func TestFormatterBasic(t *testing.T) {
	f := NewFormatter(false)
	err := &FormattedError{
		Code:      E1001,
		Kind:      "syntax error",
		Message:   `invalid syntax (unexpected "+")`,
		Filename:  "example.calc",
		Line:      3,
		Column:    5,
		EndColumn: 5,
		SourceLines: []SourceLineEntry{
			{Number: 3, Text: "1 + + 2", IsMain: true},
		},
	}
	expected := strings.Join([]string{
		`syntax error[E1001]: invalid syntax (unexpected "+")`,
		"  --> example.calc:3:5",
		"   |",
		" 3 | 1 + + 2",
		"   |     ^",
	}, "\n") + "\n"
	require.Equal(t, expected, f.Format(err))
}

func TestFormatterMultiCharUnderline(t *testing.T) {
	f := NewFormatter(false)
	err := &FormattedError{
		Code:      E1002,
		Kind:      "syntax error",
		Message:   `unexpected token "33" following statement`,
		Line:      1,
		Column:    7,
		EndColumn: 8,
		SourceLines: []SourceLineEntry{
			{Number: 1, Text: "1 + 2 33", IsMain: true},
		},
	}
	out := f.Format(err)
	require.Contains(t, out, " 1 | 1 + 2 33\n")
	require.Contains(t, out, "   |       ^^\n")
}

func TestFormatterHintAndNote(t *testing.T) {
	f := NewFormatter(false)
	err := &FormattedError{
		Code:      E1003,
		Kind:      "syntax error",
		Message:   `unexpected end of input while parsing grouped expression (expected ")")`,
		Line:      1,
		Column:    7,
		EndColumn: 7,
		SourceLines: []SourceLineEntry{
			{Number: 1, Text: "(1 + 2", IsMain: true},
		},
		Hint: "the opening parenthesis at line 1 column 1 was never closed",
		Note: "expressions end at the end of the line",
	}
	out := f.Format(err)
	require.Contains(t, out, "   = hint: the opening parenthesis at line 1 column 1 was never closed\n")
	require.Contains(t, out, "   = note: expressions end at the end of the line\n")
}

func TestFormatterWithoutLocation(t *testing.T) {
	f := NewFormatter(false)
	err := &FormattedError{Message: "something went wrong"}
	require.Equal(t, "error: something went wrong\n", f.Format(err))
}

func TestFormatterPrefix(t *testing.T) {
	f := NewFormatter(false)
	err := &FormattedError{Message: "first problem"}
	require.Equal(t, "error[1/2]: first problem\n", f.FormatWithPrefix(err, "1/2"))

	// An error code takes precedence over the prefix
	coded := &FormattedError{Code: E1001, Kind: "syntax error", Message: "bad token"}
	require.Equal(t, "syntax error[E1001]: bad token\n", f.FormatWithPrefix(coded, "1/2"))
}

func TestFormatMultiple(t *testing.T) {
	f := NewFormatter(false)

	require.Equal(t, "", f.FormatMultiple(nil))

	single := []*FormattedError{{Message: "only one"}}
	require.Equal(t, "error: only one\n", f.FormatMultiple(single))

	multiple := []*FormattedError{
		{Message: "first problem"},
		{Message: "second problem"},
	}
	out := f.FormatMultiple(multiple)
	require.Contains(t, out, "error[1/2]: first problem\n")
	require.Contains(t, out, "error[2/2]: second problem\n")
	require.True(t, strings.HasSuffix(out, "found 2 errors\n"))
}

func TestFormatterColorOutputContainsMessage(t *testing.T) {
	f := NewFormatter(true)
	err := &FormattedError{
		Code:    E1001,
		Kind:    "syntax error",
		Message: "bad token",
	}
	out := f.Format(err)
	require.Contains(t, out, "bad token")
}

func TestFormatterWideLineNumbers(t *testing.T) {
	f := NewFormatter(false)
	err := &FormattedError{
		Message:   "late failure",
		Line:      120,
		Column:    1,
		EndColumn: 1,
		SourceLines: []SourceLineEntry{
			{Number: 120, Text: "x", IsMain: true},
		},
	}
	out := f.Format(err)
	require.Contains(t, out, "120 | x\n")
	require.Contains(t, out, "    |\n")
}

func TestFormatterContextLines(t *testing.T) {
	f := NewFormatter(false)
	err := &FormattedError{
		Kind:      "syntax error",
		Message:   "unexpected token",
		Line:      2,
		Column:    1,
		EndColumn: 1,
		SourceLines: []SourceLineEntry{
			{Number: 1, Text: "a = 1"},
			{Number: 2, Text: "?", IsMain: true},
			{Number: 3, Text: "b = 2"},
		},
	}
	out := f.Format(err)
	require.Contains(t, out, " 1 | a = 1\n")
	require.Contains(t, out, " 2 | ?\n   | ^\n")
	require.Contains(t, out, " 3 | b = 2\n")
}
