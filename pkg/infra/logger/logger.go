package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	defaultLogDir    = "logs"
	fileBufferSize   = 32 * 1024
	consoleQueueSize = 1024
)

type Options struct {
	// Dir holds the log file; defaults to "logs".
	Dir string
	// Name is the file stem, "tagger" writes logs/tagger.log.
	Name    string
	Level   string
	Console bool
}

// Logger bundles the logrus logger with the async sinks that must be flushed on shutdown.
type Logger struct {
	*logrus.Logger
	file    *AsyncFileWriter
	console *AsyncConsoleHook
}

func NewLogger(opts Options) (*Logger, error) {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime: "time",
			logrus.FieldKeyMsg:  "msg",
		},
	})
	log.SetLevel(parseLevel(opts.Level))

	dir := opts.Dir
	if dir == "" {
		dir = defaultLogDir
	}
	name := opts.Name
	if name == "" || strings.ContainsAny(name, `/\`) {
		return nil, fmt.Errorf("invalid log name %q", opts.Name)
	}

	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create logs directory: %w", err)
	}
	fileWriter, err := NewAsyncFileWriter(filepath.Join(dir, name+".log"), fileBufferSize)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize async log writer: %w", err)
	}
	log.SetOutput(fileWriter)

	l := &Logger{Logger: log, file: fileWriter}
	if opts.Console {
		l.console = NewAsyncConsoleHook(consoleQueueSize)
		log.AddHook(l.console)
	}
	return l, nil
}

// Close drains the console queue and flushes the log file.
func (l *Logger) Close() {
	if l.console != nil {
		l.console.Close()
	}
	if l.file != nil {
		l.file.Close()
	}
}

func parseLevel(level string) logrus.Level {
	if level == "" {
		level = os.Getenv("LOG_LEVEL")
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return logrus.InfoLevel
	}
	return parsed
}
