package average

import (
	"context"
	"errors"
	"testing"

	"github.com/jbvmio/nthline/log"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type closeFailInput struct{}

func (closeFailInput) Open() error                                { return nil }
func (closeFailInput) ReadLine(_ context.Context) (string, error) { return "", nil }
func (closeFailInput) Close() error                               { return errors.New("bad descriptor") }

func TestCloseInputLogsError(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	closeInput(closeFailInput{}, "log.csv", log.FromZap(zap.New(core)))

	entries := logs.AllUntimed()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, "closing log.csv: bad descriptor", entries[0].Message)
		assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	}
}
