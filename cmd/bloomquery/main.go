// Command bloomquery loads a dictionary into a bloom filter and reports
// whether a single word might be in it, printing 1 or 0.
//
//	bloomquery WORD
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jcalabro/tribloom"
	"github.com/jcalabro/tribloom/internal/wordlist"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// config holds the fixed settings of the tool.
type config struct {
	DictionaryPath    string
	FalsePositiveRate float64
}

var defaultConfig = config{
	DictionaryPath:    "american-english",
	FalsePositiveRate: 0.001,
}

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	logger, err := newLogger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "bloomquery: build logger:", err)
		os.Exit(exitError)
	}

	code := run(defaultConfig, os.Args[1:], os.Stdout, logger)
	_ = logger.Sync()
	os.Exit(code)
}

// newLogger logs warnings and errors to stderr, leaving stdout for the answer.
func newLogger() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	cfg.Encoding = "console"
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}

func run(cfg config, args []string, stdout io.Writer, logger *zap.Logger) int {
	if len(args) != 1 {
		logger.Warn("usage: bloomquery WORD", zap.Int("args", len(args)))
		return exitUsage
	}

	words, err := wordlist.Load(logger, cfg.DictionaryPath)
	if err != nil {
		logger.Error("failed to load dictionary", zap.Error(err))
		return exitError
	}

	f, err := tribloom.New(uint64(len(words)), cfg.FalsePositiveRate, tribloom.WithLogger(logger))
	if err != nil {
		logger.Error("failed to build filter", zap.Error(err), zap.Int("words", len(words)))
		return exitError
	}
	for _, w := range words {
		f.AddString(w)
	}

	answer := 0
	if f.HasString(args[0]) {
		answer = 1
	}
	if _, err := fmt.Fprintln(stdout, answer); err != nil {
		logger.Error("failed to write answer", zap.Error(err))
		return exitError
	}
	return exitOK
}
