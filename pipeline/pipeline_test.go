package pipeline

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sliceInput struct {
	lines []string
	err   error
}

func (in *sliceInput) Open() error  { return nil }
func (in *sliceInput) Close() error { return nil }

func (in *sliceInput) ReadLine(_ context.Context) (string, error) {
	if len(in.lines) == 0 {
		if in.err != nil {
			return "", in.err
		}
		return "", io.EOF
	}
	s := in.lines[0]
	in.lines = in.lines[1:]
	return s, nil
}

type sliceOutput struct {
	lines   []string
	flushed int
}

func (out *sliceOutput) WriteLine(s string) error {
	out.lines = append(out.lines, s)
	return nil
}

func (out *sliceOutput) Flush() error {
	out.flushed++
	return nil
}

type finishFunc func() error

func (f finishFunc) Finish() error { return f() }

func TestPipelineRun(t *testing.T) {
	in := &sliceInput{lines: []string{"a", "bb", "c", "dd"}}
	out := &sliceOutput{}
	p := NewPipeline(in, out, nil)

	long := func(d *Line) (bool, error) { return len(d.Text) > 1, nil }
	upper := func(d *Line) (bool, error) {
		d.Text = strings.ToUpper(d.Text)
		return true, nil
	}
	s1 := NewStage(nil, long)
	s2 := NewStage(nil, upper, NoopData)
	p.AddStages(&s1, &s2)

	finished := 0
	p.AddFinishers(finishFunc(func() error {
		finished++
		return nil
	}))

	require.NoError(t, p.Run(context.Background()))
	assert.Equal(t, []string{"BB", "DD"}, out.lines)
	assert.Equal(t, 1, finished)
	assert.Equal(t, 1, out.flushed)
}

func TestPipelineLineNumbers(t *testing.T) {
	in := &sliceInput{lines: []string{"x", "y", "z"}}
	out := &sliceOutput{}
	p := NewPipeline(in, out, nil)
	var nums []int
	s := NewStage(nil, func(d *Line) (bool, error) {
		nums = append(nums, d.Num)
		return true, nil
	})
	p.AddStages(&s)
	require.NoError(t, p.Run(context.Background()))
	assert.Equal(t, []int{1, 2, 3}, nums)
}

func TestPipelineProcessorError(t *testing.T) {
	boom := errors.New("boom")
	in := &sliceInput{lines: []string{"a", "b", "c"}}
	out := &sliceOutput{}
	p := NewPipeline(in, out, nil)
	s := NewStage(nil, func(d *Line) (bool, error) {
		if d.Num == 2 {
			return false, boom
		}
		return true, nil
	})
	p.AddStages(&s)
	p.AddFinishers(finishFunc(func() error {
		t.Fatal("finisher must not run after a failure")
		return nil
	}))

	err := p.Run(context.Background())
	assert.Equal(t, boom, err)
	assert.Equal(t, []string{"a"}, out.lines)
	assert.Equal(t, 1, out.flushed, "output is flushed on failure")
}

func TestPipelineReadError(t *testing.T) {
	boom := errors.New("disk gone")
	in := &sliceInput{lines: []string{"a"}, err: boom}
	out := &sliceOutput{}
	p := NewPipeline(in, out, nil)

	err := p.Run(context.Background())
	var rerr *ReadError
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, 2, rerr.Line)
	assert.True(t, errors.Is(err, boom))
	assert.Equal(t, []string{"a"}, out.lines)
}

func TestPipelineFinisherError(t *testing.T) {
	boom := errors.New("short")
	in := &sliceInput{lines: []string{"a"}}
	out := &sliceOutput{}
	p := NewPipeline(in, out, nil)
	p.AddFinishers(finishFunc(func() error { return boom }))

	assert.Equal(t, boom, p.Run(context.Background()))
	assert.Equal(t, []string{"a"}, out.lines)
	assert.Equal(t, 1, out.flushed)
}
