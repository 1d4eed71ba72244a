package osio

import (
	"bufio"
	"io"
	"os"

	"github.com/jbvmio/nthline/plugin"
	"github.com/pkg/errors"
)

// StdOutputConfig contains configuration details when using the StdOutput Plugin.
type StdOutputConfig struct {
}

// CreateOutput creates an Output writing to stdout.
func (c *StdOutputConfig) CreateOutput() (plugin.Output, error) {
	return NewWriterOutput(os.Stdout), nil
}

// WriterOutputConfig contains configuration details when using the WriterOutput Plugin.
type WriterOutputConfig struct {
	W io.Writer
}

// CreateOutput creates an Output writing to W.
func (c *WriterOutputConfig) CreateOutput() (plugin.Output, error) {
	if c.W == nil {
		return nil, errors.New("no writer defined for writer output")
	}
	return NewWriterOutput(c.W), nil
}

// WriterOutput writes newline terminated lines to a buffered io.Writer.
type WriterOutput struct {
	w *bufio.Writer
}

// NewWriterOutput returns a WriterOutput for w.
func NewWriterOutput(w io.Writer) *WriterOutput {
	return &WriterOutput{w: bufio.NewWriter(w)}
}

// WriteLine writes s and a trailing newline.
func (out *WriterOutput) WriteLine(s string) error {
	if _, err := out.w.WriteString(s); err != nil {
		return err
	}
	return out.w.WriteByte('\n')
}

// Flush flushes buffered lines.
func (out *WriterOutput) Flush() error {
	return out.w.Flush()
}
