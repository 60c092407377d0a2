package structs

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

// Logger is the diagnostic sink the document loader accepts via
// WithLoaderLogger. The core engine (value.go, find.go, the codecs) never logs
// on its own: it performs no locking and promises none, and that extends
// to no implicit I/O (spec.md §5/§9). Levels follow syslog severity order,
// emerg highest.
type Logger interface {
	Emerg(format string, args ...any)
	Alert(format string, args ...any)
	Crit(format string, args ...any)
	Err(format string, args ...any)
	Warning(format string, args ...any)
	Notice(format string, args ...any)
	Info(format string, args ...any)
	Debug(format string, args ...any)
}

// NullLogger discards everything. It is the loader's default.
type NullLogger struct{}

func (NullLogger) Emerg(string, ...any)   {}
func (NullLogger) Alert(string, ...any)   {}
func (NullLogger) Crit(string, ...any)    {}
func (NullLogger) Err(string, ...any)     {}
func (NullLogger) Warning(string, ...any) {}
func (NullLogger) Notice(string, ...any)  {}
func (NullLogger) Info(string, ...any)    {}
func (NullLogger) Debug(string, ...any)   {}

// StderrLogger writes every level, prefixed with its severity, to
// standard error. Useful for quick diagnosis, not for production use.
type StderrLogger struct{}

func (StderrLogger) log(level, format string, args ...any) {
	fmt.Fprintf(os.Stderr, "["+level+"] "+format+"\n", args...)
}

func (l StderrLogger) Emerg(format string, args ...any)   { l.log("emerg", format, args...) }
func (l StderrLogger) Alert(format string, args ...any)   { l.log("alert", format, args...) }
func (l StderrLogger) Crit(format string, args ...any)    { l.log("crit", format, args...) }
func (l StderrLogger) Err(format string, args ...any)     { l.log("err", format, args...) }
func (l StderrLogger) Warning(format string, args ...any) { l.log("warning", format, args...) }
func (l StderrLogger) Notice(format string, args ...any)  { l.log("notice", format, args...) }
func (l StderrLogger) Info(format string, args ...any)    { l.log("info", format, args...) }
func (l StderrLogger) Debug(format string, args ...any)   { l.log("debug", format, args...) }

// TraceLogger records every call it receives, in order, for tests that
// assert on loader diagnostics without touching stderr.
type TraceLogger struct {
	Lines []string
}

func (l *TraceLogger) record(level, format string, args ...any) {
	l.Lines = append(l.Lines, "["+level+"] "+fmt.Sprintf(format, args...))
}

func (l *TraceLogger) Emerg(format string, args ...any)   { l.record("emerg", format, args...) }
func (l *TraceLogger) Alert(format string, args ...any)   { l.record("alert", format, args...) }
func (l *TraceLogger) Crit(format string, args ...any)    { l.record("crit", format, args...) }
func (l *TraceLogger) Err(format string, args ...any)     { l.record("err", format, args...) }
func (l *TraceLogger) Warning(format string, args ...any) { l.record("warning", format, args...) }
func (l *TraceLogger) Notice(format string, args ...any)  { l.record("notice", format, args...) }
func (l *TraceLogger) Info(format string, args ...any)    { l.record("info", format, args...) }
func (l *TraceLogger) Debug(format string, args ...any)   { l.record("debug", format, args...) }

// ZapLogger adapts a *zap.SugaredLogger to the Logger interface, for
// callers who already run zap elsewhere in their process and want the
// loader's diagnostics folded into the same structured stream.
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

// NewZapLogger wraps z. Passing nil uses zap.NewNop(), matching the
// package's own fallback for an unconfigured logger.
func NewZapLogger(z *zap.Logger) *ZapLogger {
	if z == nil {
		z = zap.NewNop()
	}
	return &ZapLogger{sugar: z.Sugar()}
}

// Emerg and Alert both map to zap's Error level: zap's Fatal/Panic levels
// exit or panic the process, which a library must never do on a caller's
// behalf.
func (l *ZapLogger) Emerg(format string, args ...any)   { l.sugar.Errorf(format, args...) }
func (l *ZapLogger) Alert(format string, args ...any)   { l.sugar.Errorf(format, args...) }
func (l *ZapLogger) Crit(format string, args ...any)    { l.sugar.Errorf(format, args...) }
func (l *ZapLogger) Err(format string, args ...any)     { l.sugar.Errorf(format, args...) }
func (l *ZapLogger) Warning(format string, args ...any) { l.sugar.Warnf(format, args...) }
func (l *ZapLogger) Notice(format string, args ...any)  { l.sugar.Infof(format, args...) }
func (l *ZapLogger) Info(format string, args ...any)    { l.sugar.Infof(format, args...) }
func (l *ZapLogger) Debug(format string, args ...any)   { l.sugar.Debugf(format, args...) }
