package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"
)

// LogLevel defines the severity of the log entry.
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String makes LogLevel satisfy the fmt.Stringer interface.
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// SlogLevel maps l onto log/slog levels.
func (l LogLevel) SlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseLevel converts a config string ("debug", "info", "warn", "error")
// into a LogLevel.
func ParseLevel(s string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// LogEntry is the structured log entry passed to the TUI.
type LogEntry struct {
	Timestamp time.Time
	Level     LogLevel
	Subsystem string
	Message   string
	Err       error
}

// String renders e as a single activity-log line.
func (e LogEntry) String() string {
	line := fmt.Sprintf("%s %-5s [%s] %s", e.Timestamp.Format("15:04:05"), e.Level, e.Subsystem, e.Message)
	if e.Err != nil {
		line += ": " + e.Err.Error()
	}
	return line
}

const tuiChannelBufferSize = 512

var (
	mu            sync.RWMutex
	defaultLogger *slog.Logger
	minLevel      = LevelInfo
	tuiLogChannel chan LogEntry
)

// InitForCLI routes logs to output through a slog text handler.
func InitForCLI(filterLevel LogLevel, output io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	minLevel = filterLevel
	tuiLogChannel = nil
	defaultLogger = slog.New(slog.NewTextHandler(output, &slog.HandlerOptions{
		Level: filterLevel.SlogLevel(),
	}))
	slog.SetDefault(defaultLogger)
}

// InitForTUI switches logging to a buffered channel that the TUI drains
// into its activity log. Writing to the terminal while Bubble Tea owns it
// would corrupt the screen.
func InitForTUI(filterLevel LogLevel) <-chan LogEntry {
	mu.Lock()
	defer mu.Unlock()

	minLevel = filterLevel
	tuiLogChannel = make(chan LogEntry, tuiChannelBufferSize)
	return tuiLogChannel
}

// CloseTUIChannel closes the TUI log channel and returns to stderr logging.
// Should be called on application shutdown.
func CloseTUIChannel() {
	mu.Lock()
	defer mu.Unlock()

	if tuiLogChannel != nil {
		close(tuiLogChannel)
		tuiLogChannel = nil
	}
}

func logInternal(level LogLevel, subsystem string, err error, messageFmt string, args ...interface{}) {
	mu.RLock()
	defer mu.RUnlock()

	if level < minLevel {
		return
	}

	msg := messageFmt
	if len(args) > 0 {
		msg = fmt.Sprintf(messageFmt, args...)
	}

	if tuiLogChannel != nil {
		entry := LogEntry{
			Timestamp: time.Now(),
			Level:     level,
			Subsystem: subsystem,
			Message:   msg,
			Err:       err,
		}
		select {
		case tuiLogChannel <- entry:
		default:
			// TUI is behind; drop.
		}
		return
	}

	logger := defaultLogger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
	}

	attrs := []slog.Attr{slog.String("subsystem", subsystem)}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	logger.LogAttrs(context.Background(), level.SlogLevel(), msg, attrs...)
}

// Debug logs a debug message.
func Debug(subsystem string, messageFmt string, args ...interface{}) {
	logInternal(LevelDebug, subsystem, nil, messageFmt, args...)
}

// Info logs an informational message.
func Info(subsystem string, messageFmt string, args ...interface{}) {
	logInternal(LevelInfo, subsystem, nil, messageFmt, args...)
}

// Warn logs a warning message.
func Warn(subsystem string, messageFmt string, args ...interface{}) {
	logInternal(LevelWarn, subsystem, nil, messageFmt, args...)
}

// Error logs an error message.
func Error(subsystem string, err error, messageFmt string, args ...interface{}) {
	logInternal(LevelError, subsystem, err, messageFmt, args...)
}
