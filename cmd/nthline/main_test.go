package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jbvmio/nthline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunExitCodes(t *testing.T) {
	dir := t.TempDir()
	two := filepath.Join(dir, "two.txt")
	require.NoError(t, os.WriteFile(two, []byte("A\nB\n"), 0o644))
	one := filepath.Join(dir, "one.txt")
	require.NoError(t, os.WriteFile(one, []byte("A\n"), 0o644))
	empty := filepath.Join(dir, "empty.txt")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"help", []string{"--help"}, nthline.ExitOK},
		{"ok", []string{two, "3"}, nthline.ExitOK},
		{"usage", []string{two}, nthline.ExitUsage},
		{"bad stride", []string{two, "x"}, nthline.ExitUsage},
		{"missing file", []string{filepath.Join(dir, "nope"), "2"}, nthline.ExitFileOpen},
		{"empty file", []string{empty, "2"}, nthline.ExitFirstLine},
		{"one line", []string{one, "2"}, nthline.ExitSecondLine},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, run(tt.args))
		})
	}
}
