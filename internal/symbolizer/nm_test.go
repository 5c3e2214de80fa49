package symbolizer

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFakeNm writes a shell script standing in for nm and returns its absolute path.
func writeFakeNm(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake nm scripts need a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "fake-nm")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
	return path
}

func TestNmLoader_ReadLines(t *testing.T) {
	t.Run("passes_sort_flag_and_path", func(t *testing.T) {
		tool := writeFakeNm(t, `echo "args: $*"`)
		lines, err := NewNmLoader(tool, "fw_jump.elf").ReadLines(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"args: -n fw_jump.elf"}, lines)
	})

	t.Run("returns_stdout_lines", func(t *testing.T) {
		tool := writeFakeNm(t, `printf '0000000080000000 T _start\n0000000080000328 T _start_warm\n'
echo "warning: ignored" >&2`)
		lines, err := NewNmLoader(tool, "fw_jump.elf").ReadLines(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"0000000080000000 T _start", "0000000080000328 T _start_warm"}, lines)
	})

	t.Run("lines_longer_than_scanner_buffer", func(t *testing.T) {
		listing := filepath.Join(t.TempDir(), "listing.txt")
		long := "0000000080000100 T _ZN" + strings.Repeat("x", 70000)
		require.NoError(t, os.WriteFile(listing, []byte(long+"\n0000000080000328 T _start_warm\n"), 0o644))
		tool := writeFakeNm(t, "cat '"+listing+"'")

		lines, err := NewNmLoader(tool, "fw_jump.elf").ReadLines(context.Background())
		require.NoError(t, err)
		require.Len(t, lines, 2)
		assert.Equal(t, long, lines[0])
		assert.Equal(t, "0000000080000328 T _start_warm", lines[1])
	})

	t.Run("non_zero_exit", func(t *testing.T) {
		tool := writeFakeNm(t, `echo "nm: 'missing.elf': No such file" >&2
exit 1`)
		_, err := NewNmLoader(tool, "missing.elf").ReadLines(context.Background())
		require.ErrorIs(t, err, ErrToolInvocation)
		assert.Contains(t, err.Error(), "No such file")
		assert.NotContains(t, err.Error(), "\n")
	})

	t.Run("missing_tool", func(t *testing.T) {
		tool := filepath.Join(t.TempDir(), "does-not-exist")
		_, err := NewNmLoader(tool, "fw_jump.elf").ReadLines(context.Background())
		require.ErrorIs(t, err, ErrToolInvocation)
	})

	t.Run("cancelled_context", func(t *testing.T) {
		tool := writeFakeNm(t, `echo "0000000080000328 T _start_warm"`)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := NewNmLoader(tool, "fw_jump.elf").ReadLines(ctx)
		require.ErrorIs(t, err, ErrToolInvocation)
	})
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"\n", nil},
		{"a", []string{"a"}},
		{"a\nb\n", []string{"a", "b"}},
		{"a\r\nb\r\n", []string{"a", "b"}},
		{"a\n\nb", []string{"a", "", "b"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, splitLines([]byte(tt.in)), "splitLines(%q)", tt.in)
	}
}

func TestFirstLine(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"\n\n", ""},
		{"one\ntwo\n", "one"},
		{"\n  padded  \nnext", "padded"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, firstLine([]byte(tt.in)), "firstLine(%q)", tt.in)
	}
}
