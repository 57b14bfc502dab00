// Package rlog is a thin leveled-logging wrapper over go-logging, used by
// the CLI and driver for progress and diagnostic output. The estimators
// themselves never log — logging in the hot path would defeat the
// no-suspension concurrency contract.
package rlog

import (
	"io"
	"os"
	"sync"
	"time"

	logging "github.com/op/go-logging"
)

// Level is the wrapper's own verbosity enum, decoupled from go-logging's.
type Level int

const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

var format = logging.MustStringFormatter(
	`%{color}[%{time:15:04:05.000}] [%{module}] [%{level}]%{color:reset} %{message}`,
)

var leveledBackend logging.LeveledBackend

// Logger is a named logger instance, one per package (main, renderer).
type Logger = logging.Logger

// Get returns a named logger sharing the process-wide backend and level.
func Get(name string) *Logger {
	return logging.MustGetLogger(name)
}

// SetSink redirects log output, used by tests to capture or silence it.
func SetSink(sink io.Writer) {
	backend := logging.NewLogBackend(sink, "", 0)
	backendWithFormatter := logging.NewBackendFormatter(backend, format)
	leveledBackend = logging.AddModuleLevel(backendWithFormatter)
	leveledBackend.SetLevel(logging.NOTICE, "")
	logging.SetBackend(leveledBackend)
}

// SetLevel sets the process-wide log verbosity. init sets it to Notice; no
// CLI flag changes it.
func SetLevel(level Level) {
	var loggerLevel logging.Level
	switch level {
	case Debug:
		loggerLevel = logging.DEBUG
	case Info:
		loggerLevel = logging.INFO
	case Notice:
		loggerLevel = logging.NOTICE
	case Warning:
		loggerLevel = logging.WARNING
	case Error:
		loggerLevel = logging.ERROR
	}
	leveledBackend.SetLevel(loggerLevel, "")
}

func init() {
	SetSink(os.Stdout)
	SetLevel(Notice)
}

// ProgressLogger rate-limits per-iteration render progress lines. A render
// invoked with a large -i or a multi-second -t would otherwise print one
// line per iteration and flood stdout; ProgressLogger only emits a line
// when the configured interval has elapsed since the last one, plus
// unconditionally on the final iteration.
//
// Safe for concurrent Report calls, though the driver's iteration loop
// currently reports from a single goroutine between tile fan-outs.
type ProgressLogger struct {
	logger   *Logger
	interval time.Duration

	mu   sync.Mutex
	last time.Time
}

// NewProgressLogger builds a ProgressLogger that reports at most once per
// interval.
func NewProgressLogger(logger *Logger, interval time.Duration) *ProgressLogger {
	return &ProgressLogger{logger: logger, interval: interval}
}

// Report logs "iteration N/total complete" if the interval has elapsed
// since the last report, or if this is the final iteration (0-indexed
// iteration == total-1). total <= 0 means an open-ended (time-budgeted)
// render, in which case every report past the interval is emitted and
// "final" is judged by the caller passing iteration == total-1 == -1,
// which never matches — every report is throttled by time alone.
func (p *ProgressLogger) Report(iteration, total int) {
	now := time.Now()
	final := total > 0 && iteration == total-1

	p.mu.Lock()
	elapsed := now.Sub(p.last)
	shouldLog := final || p.last.IsZero() || elapsed >= p.interval
	if shouldLog {
		p.last = now
	}
	p.mu.Unlock()

	if !shouldLog {
		return
	}
	if total > 0 {
		p.logger.Noticef("iteration %d/%d complete", iteration+1, total)
	} else {
		p.logger.Noticef("iteration %d complete (time budget)", iteration+1)
	}
}
