package errors

// ErrorCode represents a unique identifier for error types.
// Codes are organized by category, with E1xxx reserved for parse errors.
type ErrorCode string

const (
	// Parse errors (E1xxx)
	E1001 ErrorCode = "E1001" // Unexpected token
	E1002 ErrorCode = "E1002" // Unexpected token following statement
	E1003 ErrorCode = "E1003" // Unclosed delimiter
	E1004 ErrorCode = "E1004" // Invalid number literal
	E1005 ErrorCode = "E1005" // Invalid assignment target
	E1006 ErrorCode = "E1006" // Invalid token
	E1007 ErrorCode = "E1007" // Maximum nesting depth exceeded
)

// codeDescriptions maps error codes to their short descriptions.
var codeDescriptions = map[ErrorCode]string{
	E1001: "unexpected token",
	E1002: "unexpected token following statement",
	E1003: "unclosed delimiter",
	E1004: "invalid number literal",
	E1005: "invalid assignment target",
	E1006: "invalid token",
	E1007: "maximum nesting depth exceeded",
}

// Description returns the short description for an error code.
func (c ErrorCode) Description() string {
	if desc, ok := codeDescriptions[c]; ok {
		return desc
	}
	return "unknown error"
}

// String returns the error code as a string.
func (c ErrorCode) String() string {
	return string(c)
}

// Category returns the error category based on the code prefix.
func (c ErrorCode) Category() string {
	if len(c) < 2 {
		return "unknown"
	}
	switch c[1] {
	case '1':
		return "parse"
	default:
		return "unknown"
	}
}
