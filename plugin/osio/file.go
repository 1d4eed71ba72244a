package osio

import (
	"bufio"
	"context"
	"io"
	"os"
	"strings"

	"github.com/jbvmio/nthline/plugin"
	"github.com/nxadm/tail"
	"github.com/pkg/errors"
)

// FileInputConfig contains configuration details when using the FileInput Plugin.
type FileInputConfig struct {
	Path string
}

// CreateInput creates an Input based on the Config.
func (c *FileInputConfig) CreateInput() (plugin.Input, error) {
	if c.Path == "" {
		return nil, errors.New("no path defined for file input")
	}
	return &FileInput{Path: c.Path}, nil
}

// FileInput reads a file once from start to end.
type FileInput struct {
	Path string
	f    *os.File
	r    *bufio.Reader
}

// Open opens the file for reading.
func (in *FileInput) Open() error {
	f, err := os.Open(in.Path)
	if err != nil {
		return err
	}
	in.f = f
	in.r = bufio.NewReader(f)
	return nil
}

// ReadLine returns the next line. A final line lacking a newline is still returned.
// The context is not consulted; reads from a regular file do not block indefinitely.
func (in *FileInput) ReadLine(_ context.Context) (string, error) {
	if in.r == nil {
		return "", errors.Errorf("file input %s is not open", in.Path)
	}
	return readLine(in.r)
}

// Close closes the file.
func (in *FileInput) Close() error {
	if in.f == nil {
		return nil
	}
	err := in.f.Close()
	in.f, in.r = nil, nil
	return err
}

// ReaderInput reads lines from an io.Reader owned by the caller.
type ReaderInput struct {
	r *bufio.Reader
}

// NewReaderInput returns a ReaderInput for r.
func NewReaderInput(r io.Reader) *ReaderInput {
	return &ReaderInput{r: bufio.NewReader(r)}
}

// Open is a no-op; the reader is already open.
func (in *ReaderInput) Open() error { return nil }

// ReadLine returns the next line. A final line lacking a newline is still returned.
func (in *ReaderInput) ReadLine(_ context.Context) (string, error) {
	return readLine(in.r)
}

// Close is a no-op; the reader belongs to the caller.
func (in *ReaderInput) Close() error { return nil }

func readLine(r *bufio.Reader) (string, error) {
	s, err := r.ReadString('\n')
	switch {
	case err == nil:
		return strings.TrimSuffix(s, "\n"), nil
	case err == io.EOF && s != "":
		return s, nil
	default:
		return "", err
	}
}

// FollowInputConfig contains configuration details when using the FollowInput Plugin.
type FollowInputConfig struct {
	Path string
	// Poll watches the file by polling instead of inotify.
	Poll bool
}

// CreateInput creates an Input based on the Config.
func (c *FollowInputConfig) CreateInput() (plugin.Input, error) {
	if c.Path == "" {
		return nil, errors.New("no path defined for follow input")
	}
	return &FollowInput{Path: c.Path, Poll: c.Poll}, nil
}

// FollowInput reads a file from the start and keeps waiting for appended lines
// until its context is cancelled.
type FollowInput struct {
	Path string
	Poll bool
	t    *tail.Tail
}

// Open starts tailing the file. The file must exist.
func (in *FollowInput) Open() error {
	t, err := tail.TailFile(in.Path, tail.Config{
		Follow:    true,
		MustExist: true,
		Poll:      in.Poll,
		Logger:    tail.DiscardingLogger,
		Location:  &tail.SeekInfo{Whence: io.SeekStart},
	})
	if err != nil {
		return err
	}
	in.t = t
	return nil
}

// ReadLine blocks until a line is available. Cancelling ctx ends the input with io.EOF.
func (in *FollowInput) ReadLine(ctx context.Context) (string, error) {
	if in.t == nil {
		return "", errors.Errorf("follow input %s is not open", in.Path)
	}
	select {
	case <-ctx.Done():
		return "", io.EOF
	case line, ok := <-in.t.Lines:
		if !ok {
			if err := in.t.Err(); err != nil {
				return "", errors.Wrap(err, "file ended")
			}
			return "", io.EOF
		}
		if line.Err != nil {
			return "", line.Err
		}
		return line.Text, nil
	}
}

// Close stops tailing the file.
func (in *FollowInput) Close() error {
	if in.t == nil {
		return nil
	}
	err := in.t.Stop()
	in.t.Cleanup()
	in.t = nil
	return err
}
