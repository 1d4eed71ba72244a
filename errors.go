package nthline

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sentinel errors, matched with errors.Is.
var (
	ErrFileOpen      = errors.New("input could not be opened")
	ErrUnexpectedEOF = errors.New("unexpected end of input")
	ErrInvalidStride = errors.New("stride must be a positive integer")
)

// Process exit codes.
const (
	ExitOK         = 0
	ExitUsage      = 1
	ExitFileOpen   = 2
	ExitFirstLine  = 3
	ExitSecondLine = 4
	ExitIO         = 5
)

// UsageError reports missing or malformed command line arguments.
type UsageError struct {
	Msg string
	Err error
}

func (e *UsageError) Error() string {
	switch {
	case e.Err == nil:
		return e.Msg
	case e.Msg == "":
		return e.Err.Error()
	default:
		return e.Msg + ": " + e.Err.Error()
	}
}

// Unwrap returns the underlying error.
func (e *UsageError) Unwrap() error { return e.Err }

// FileOpenError reports an input that could not be opened.
type FileOpenError struct {
	Path string
	Err  error
}

func (e *FileOpenError) Error() string {
	return fmt.Sprintf("could not open %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *FileOpenError) Unwrap() error { return e.Err }

// Is reports whether target is ErrFileOpen.
func (e *FileOpenError) Is(target error) bool { return target == ErrFileOpen }

// PrefixError reports an input that ended, or could not be read, before mandatory
// line Line was available.
type PrefixError struct {
	Line int
	// Err is the read failure, nil when the input simply ended.
	Err error
}

func (e *PrefixError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("mandatory line %d unreadable: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("%v: mandatory line %d missing", ErrUnexpectedEOF, e.Line)
}

// Unwrap returns the read failure, if any.
func (e *PrefixError) Unwrap() error { return e.Err }

// Is reports whether target is ErrUnexpectedEOF and the input simply ended.
func (e *PrefixError) Is(target error) bool { return e.Err == nil && target == ErrUnexpectedEOF }

// ExitCode maps err onto the process exit code.
func ExitCode(err error) int {
	var uerr *UsageError
	var perr *PrefixError
	switch {
	case err == nil:
		return ExitOK
	case errors.As(err, &uerr):
		return ExitUsage
	case errors.Is(err, ErrFileOpen):
		return ExitFileOpen
	case errors.As(err, &perr):
		if perr.Line <= 1 {
			return ExitFirstLine
		}
		return ExitSecondLine
	default:
		return ExitIO
	}
}
