package core

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

var once sync.Once

type logger struct {
	*log.Logger

	// mu serializes sink changes; the charm logger guards its own writes.
	mu   sync.Mutex
	sink *lumberjack.Logger
}

var singleton *logger

func getLogger() *logger {
	once.Do(
		func() {
			singleton = &logger{Logger: newLogger(os.Stderr)}
			singleton.SetLevel(log.InfoLevel)
		})
	return singleton
}

func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportCaller:    true,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          "Navigator 🧭 ",
	})
}

// LogOptions controls the level and destination of the engine logger.
type LogOptions struct {
	// Level is one of debug, info, warn, error or fatal. Empty keeps the current level.
	Level string
	// File, when set, sends output to a size-rotated log file instead of stderr.
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// LogConfigure applies opts to the engine logger. A file sink is reused while
// its settings are unchanged and closed once it is replaced. An empty File
// sends output back to stderr.
func LogConfigure(opts LogOptions) error {
	var level log.Level
	if opts.Level != "" {
		parsed, err := log.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return err
		}
		level = parsed
	}

	l := getLogger()
	l.mu.Lock()
	defer l.mu.Unlock()

	switch {
	case opts.File == "":
		if l.sink != nil {
			l.swapSink(nil, os.Stderr)
		}
	case !sameSink(l.sink, opts):
		sink := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAgeDays,
		}
		l.swapSink(sink, sink)
	}

	if opts.Level != "" {
		l.SetLevel(level)
	}
	return nil
}

// LogSetOutput redirects the engine logger, mostly useful in tests.
// Any file sink opened by LogConfigure is closed.
func LogSetOutput(w io.Writer) {
	l := getLogger()
	l.mu.Lock()
	defer l.mu.Unlock()
	l.swapSink(nil, w)
}

// swapSink points the logger at w before closing the previous file sink, so
// no write can reopen it. Callers hold l.mu.
func (l *logger) swapSink(sink *lumberjack.Logger, w io.Writer) {
	l.SetOutput(w)
	if l.sink != nil && l.sink != sink {
		if err := l.sink.Close(); err != nil {
			l.Warnf("closing log file %s: %v", l.sink.Filename, err)
		}
	}
	l.sink = sink
}

func sameSink(sink *lumberjack.Logger, opts LogOptions) bool {
	return sink != nil &&
		sink.Filename == opts.File &&
		sink.MaxSize == opts.MaxSizeMB &&
		sink.MaxBackups == opts.MaxBackups &&
		sink.MaxAge == opts.MaxAgeDays
}

func LogDebug(msg string, args ...interface{}) {
	getLogger().Debugf(msg, args...)
}

func LogInfo(msg string, args ...interface{}) {
	getLogger().Infof(msg, args...)
}

func LogWarn(msg string, args ...interface{}) {
	getLogger().Warnf(msg, args...)
}

func LogError(msg string, args ...interface{}) {
	getLogger().Errorf(msg, args...)
}

func LogFatal(msg string, args ...interface{}) {
	getLogger().Fatalf(msg, args...)
}
