// Package wordlist loads a newline-separated dictionary into the distinct,
// lowercased keys used to populate a filter.
package wordlist

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/huandu/skiplist"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// MaxLineBytes bounds line length in Read: lines must be shorter than this or
// Read fails with bufio.ErrTooLong.
const MaxLineBytes = 1 << 20

// Load reads the dictionary at path. See Read.
func Load(logger *zap.Logger, path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open word list %s", path)
	}
	defer f.Close()

	words, err := Read(logger, f)
	if err != nil {
		return nil, errors.Wrapf(err, "read word list %s", path)
	}
	return words, nil
}

// Read returns the distinct lowercased lines of r in ascending byte order.
// A trailing carriage return is dropped from each line and empty lines are
// skipped.
func Read(logger *zap.Logger, r io.Reader) ([]string, error) {
	set := skiplist.New(skiplist.String)

	var lines int
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), MaxLineBytes)
	for sc.Scan() {
		line := strings.TrimSuffix(sc.Text(), "\r")
		if line == "" {
			continue
		}
		lines++
		set.Set(strings.ToLower(line), struct{}{})
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "scan")
	}

	words := make([]string, 0, set.Len())
	for elem := set.Front(); elem != nil; elem = elem.Next() {
		words = append(words, elem.Key().(string))
	}

	logger.Debug("word list loaded",
		zap.Int("lines", lines),
		zap.Int("distinct", len(words)),
	)
	return words, nil
}
