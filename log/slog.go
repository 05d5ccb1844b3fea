package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

type RelayLogger struct {
	slog.Logger
}

var relayLogger *RelayLogger

func InitLogger(logLevel, format, output string) error {
	var writer io.Writer
	switch output {
	case "stdout":
		writer = os.Stdout
	case "stderr":
		writer = os.Stderr
	default:
		return errors.New("invalid log output")
	}
	return InitLoggerWithWriter(logLevel, format, writer, true)
}

func InitLoggerWithWriter(logLevel, format string, writer io.Writer, addSource bool) error {
	var slogLevel slog.Level
	switch strings.ToUpper(logLevel) {
	case "DEBUG":
		slogLevel = slog.LevelDebug
	case "INFO":
		slogLevel = slog.LevelInfo
	case "WARN":
		slogLevel = slog.LevelWarn
	case "ERROR":
		slogLevel = slog.LevelError
	default:
		return errors.New("invalid log level")
	}
	handlerOpts := &slog.HandlerOptions{
		Level:     slogLevel,
		AddSource: addSource,
	}

	var slogLogger *slog.Logger
	switch format {
	case "text":
		slogLogger = slog.New(slog.NewTextHandler(
			writer,
			handlerOpts,
		))
	case "json":
		slogLogger = slog.New(slog.NewJSONHandler(
			writer,
			handlerOpts,
		))
	default:
		return errors.New("invalid log format")
	}

	// set global logger
	relayLogger = &RelayLogger{
		*slogLogger,
	}
	return nil
}

func GetLogger() *RelayLogger {
	if relayLogger == nil {
		// commands that fail before InitLogger still need somewhere to log
		relayLogger = &RelayLogger{*slog.Default()}
	}
	return relayLogger
}

func (rl *RelayLogger) Error(msg string, err error, otherArgs ...any) {
	err = errors.WithStackDepth(err, 1)
	args := []any{
		"error", fmt.Sprintf("%v", err),
		"stack", fmt.Sprintf("%+v", err),
	}
	args = append(args, otherArgs...)
	rl.Logger.Error(msg, args...)
}

// TimeTrack logs how long the named operation took. Use with defer:
//
//	defer logger.TimeTrack(time.Now(), "QueryClientFullState")
func (rl *RelayLogger) TimeTrack(start time.Time, name string, otherArgs ...any) {
	elapsed := time.Since(start)
	args := []any{
		"name", name,
		"elapsed", elapsed.String(),
	}
	args = append(args, otherArgs...)
	rl.Logger.Info("time track", args...)
}

func (rl *RelayLogger) WithChain(
	chainID string,
) *RelayLogger {
	return &RelayLogger{
		*rl.With(
			"chain_id", chainID,
		),
	}
}

func (rl *RelayLogger) WithChainPair(
	srcChainID string,
	dstChainID string,
) *RelayLogger {
	return &RelayLogger{
		*rl.With(
			"src_chain_id", srcChainID,
			"dst_chain_id", dstChainID,
		),
	}
}

func (rl *RelayLogger) WithClient(
	chainID string,
	clientID string,
) *RelayLogger {
	return &RelayLogger{
		*rl.With(
			"chain_id", chainID,
			"client_id", clientID,
		),
	}
}

func (rl *RelayLogger) WithModule(
	moduleName string,
) *RelayLogger {
	return &RelayLogger{
		*rl.With(
			"module", moduleName,
		),
	}
}
