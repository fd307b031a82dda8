package encoder

import (
	"fmt"

	"github.com/shalan/zx16/parser"
)

// EncodingError provides source-location context for a pass-2 failure:
// the line that failed to encode, alongside the underlying structured
// cause. It mirrors how a compiler error wraps the position it fired at
// without discarding the original diagnostic.
type EncodingError struct {
	Line  *parser.Line
	Cause *parser.Error
}

func (e *EncodingError) Error() string {
	msg := e.Cause.Error()
	if e.Line != nil && e.Line.Original != "" {
		msg = fmt.Sprintf("%s\n  source: %s", msg, e.Line.Original)
	}
	return msg
}

// Unwrap exposes the underlying *parser.Error for errors.As/errors.Is.
func (e *EncodingError) Unwrap() error { return e.Cause }

func wrapErr(line *parser.Line, cause *parser.Error) *EncodingError {
	return &EncodingError{Line: line, Cause: cause}
}
