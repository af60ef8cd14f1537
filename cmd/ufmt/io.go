package main

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/natefinch/atomic"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// readTemplate returns the inline template, or reads it from a file or
// stdin.
func readTemplate(path, expr string, stdin io.Reader) (string, error) {
	switch {
	case path != "" && expr != "":
		return "", errors.New(ErrMsgTemplateConflict)
	case expr != "":
		return expr, nil
	case path == InputSourceStdin:
		data, err := io.ReadAll(stdin)
		return string(data), err
	default:
		data, err := os.ReadFile(path)
		return string(data), err
	}
}

// writeOutput writes to stdout, or replaces the file at path atomically.
func writeOutput(path, data string, stdout io.Writer) error {
	if path == FlagDefaultOutput {
		_, err := io.WriteString(stdout, data)
		return err
	}
	return atomic.WriteFile(path, strings.NewReader(data))
}

// newLogger returns a development console logger writing to w, or a no-op
// logger unless verbose is set.
func newLogger(verbose bool, w io.Writer) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), zapcore.DebugLevel))
}
