// Package logger is the log module: it hands a fire-and-forget API to any
// module that binds it, and ships lines to a backend.
package logger

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"junoadc-go/bus"
	"junoadc-go/errcode"
	"junoadc-go/services/registry"
)

const ModuleID registry.ModuleID = "log"

// APIID is the log API handed out by ProcessBindRequest.
var APIID = registry.APIID{Module: ModuleID, Name: "log"}

type Severity uint8

const (
	Debug Severity = iota
	Info
	Warn
	Error
)

func (s Severity) String() string {
	switch s {
	case Debug:
		return "debug"
	case Info:
		return "info"
	case Warn:
		return "warn"
	case Error:
		return "error"
	}
	return "unknown"
}

// API is the logging capability. Log must not block or fail the caller.
type API interface {
	Log(sev Severity, msg string)
}

// Line is the bus payload for one log entry.
type Line struct {
	Sev  Severity
	Text string
	TsMs int64
}

// ---- Backends ----

// BusLogger publishes lines on log/<severity>.
type BusLogger struct {
	conn *bus.Connection
	min  Severity
}

func NewBusLogger(conn *bus.Connection, min Severity) *BusLogger {
	return &BusLogger{conn: conn, min: min}
}

func (l *BusLogger) Log(sev Severity, msg string) {
	if sev < l.min {
		return
	}
	l.conn.Publish(l.conn.NewMessage(
		bus.T("log", sev.String()),
		Line{Sev: sev, Text: msg, TsMs: time.Now().UnixMilli()},
		false,
	))
}

// SlogLogger forwards lines to an slog.Logger, minus trailing newlines.
type SlogLogger struct {
	l *slog.Logger
}

func NewSlogLogger(l *slog.Logger) *SlogLogger { return &SlogLogger{l: l} }

func (s *SlogLogger) Log(sev Severity, msg string) {
	lvl := slog.LevelInfo
	switch sev {
	case Debug:
		lvl = slog.LevelDebug
	case Warn:
		lvl = slog.LevelWarn
	case Error:
		lvl = slog.LevelError
	}
	s.l.Log(context.Background(), lvl, strings.TrimRight(msg, "\n"))
}

// WriterLogger writes lines verbatim. Write errors are dropped.
type WriterLogger struct {
	w   io.Writer
	min Severity
}

func NewWriterLogger(w io.Writer, min Severity) *WriterLogger {
	return &WriterLogger{w: w, min: min}
}

func (l *WriterLogger) Log(sev Severity, msg string) {
	if sev < l.min {
		return
	}
	_, _ = io.WriteString(l.w, msg)
}

// ---- Module ----

// Module exposes one backend to every requester.
type Module struct {
	api API
}

func New(api API) *Module { return &Module{api: api} }

func (m *Module) ElementCount() int { return 0 }

func (m *Module) Init() error {
	if m.api == nil {
		return errcode.NoData
	}
	return nil
}

func (m *Module) Bind(*registry.Registry, registry.ID, uint) error { return nil }

func (m *Module) ProcessBindRequest(req registry.Request) (any, error) {
	if req.API != APIID {
		return nil, errcode.AccessDenied
	}
	return m.api, nil
}
