package monitoring

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
)

type LogEntry struct {
	Timestamp time.Time      `json:"timestamp"`
	Level     string         `json:"level"`
	Message   string         `json:"message"`
	Component string         `json:"component"`
	EventType string         `json:"event_type"`
	Details   map[string]any `json:"details,omitempty"`
}

type Logger interface {
	Log(ctx context.Context, level LogLevel, eventType string, message string, details map[string]any)
}

type logger struct {
	mu        sync.Mutex
	enc       *json.Encoder
	component string
	minLevel  LogLevel
	now       func() time.Time
}

// NewLogger returns a Logger writing one JSON entry per line to w. Entries
// below minLevel are dropped.
func NewLogger(w io.Writer, component string, minLevel LogLevel) Logger {
	return &logger{
		enc:       json.NewEncoder(w),
		component: component,
		minLevel:  minLevel,
		now:       time.Now,
	}
}

func (l *logger) Log(_ context.Context, level LogLevel, eventType string, message string, details map[string]any) {
	if level < l.minLevel {
		return
	}
	entry := LogEntry{
		Timestamp: l.now().UTC(),
		Level:     level.String(),
		Message:   message,
		Component: l.component,
		EventType: eventType,
		Details:   details,
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	//nolint:errcheck // logging must not fail the caller
	l.enc.Encode(entry)
}

type nop struct{}

func (nop) Log(context.Context, LogLevel, string, string, map[string]any) {}

// Nop discards every entry.
var Nop Logger = nop{}

func (l LogLevel) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel is the inverse of LogLevel.String and is case insensitive.
func ParseLevel(s string) (LogLevel, error) {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return DEBUG, nil
	case "INFO":
		return INFO, nil
	case "WARN", "WARNING":
		return WARN, nil
	case "ERROR":
		return ERROR, nil
	default:
		return INFO, fmt.Errorf("monitoring: unknown log level %q", s)
	}
}
