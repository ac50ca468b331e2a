package wordlist

import (
	"bufio"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

func TestReadLowercasesAndDedupes(t *testing.T) {
	input := "Banana\napple\nAPPLE\ncherry\nbanana\n"

	words, err := Read(zaptest.NewLogger(t), strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, []string{"apple", "banana", "cherry"}, words)
}

func TestReadLineEndings(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"no trailing newline", "b\na", []string{"a", "b"}},
		{"trailing newline", "b\na\n", []string{"a", "b"}},
		{"crlf", "b\r\na\r\n", []string{"a", "b"}},
		{"blank lines", "\n\nb\n\n\na\n", []string{"a", "b"}},
		{"empty", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			words, err := Read(zap.NewNop(), strings.NewReader(tt.input))
			require.NoError(t, err)
			require.Equal(t, tt.want, words)
		})
	}
}

func TestReadSortedByteOrder(t *testing.T) {
	words, err := Read(zap.NewNop(), strings.NewReader("zebra\nÉclair\naardvark\nmango's\nmango\n"))
	require.NoError(t, err)
	require.Equal(t, []string{"aardvark", "mango", "mango's", "zebra", "éclair"}, words)
}

func TestReadError(t *testing.T) {
	_, err := Read(zap.NewNop(), iotest.ErrReader(iotest.ErrTimeout))
	require.ErrorIs(t, err, iotest.ErrTimeout)
}

func TestReadLongLines(t *testing.T) {
	long := strings.Repeat("X", 100*1024)

	words, err := Read(zap.NewNop(), strings.NewReader("short\n"+long+"\n"))
	require.NoError(t, err)
	require.Equal(t, []string{"short", strings.ToLower(long)}, words)

	tooLong := strings.Repeat("y", MaxLineBytes+1)
	_, err = Read(zap.NewNop(), strings.NewReader(tooLong+"\n"))
	require.ErrorIs(t, err, bufio.ErrTooLong)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words")
	require.NoError(t, os.WriteFile(path, []byte("Dog\ncat\ndog\n"), 0o600))

	words, err := Load(zap.NewNop(), path)
	require.NoError(t, err)
	require.Equal(t, []string{"cat", "dog"}, words)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(zap.NewNop(), filepath.Join(t.TempDir(), "nope"))
	require.ErrorIs(t, err, fs.ErrNotExist)
	require.Contains(t, err.Error(), "open word list")
}
