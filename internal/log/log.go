package log

import (
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelError
	LevelNone
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelError:
		return "ERROR"
	case LevelNone:
		return "NONE"
	default:
		return "UNKNOWN"
	}
}

func LevelFromString(s string) Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return LevelDebug
	case "INFO":
		return LevelInfo
	case "ERROR":
		return LevelError
	case "NONE":
		return LevelNone
	default:
		return LevelDebug // Default to DEBUG
	}
}

// zapLevel maps a Level onto the zap level that enables it. LevelNone sits
// above every level zap can emit.
func (l Level) zapLevel() zapcore.Level {
	switch l {
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelInfo:
		return zapcore.InfoLevel
	case LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.FatalLevel + 1
	}
}

type Logger struct {
	sugar *zap.SugaredLogger
	atom  zap.AtomicLevel
	level Level
}

// New writes console-encoded lines to out. Warnings are shown at Info level or
// higher, like the other levels they are gated by the atomic level.
func New(out io.Writer, level Level) *Logger {
	atom := zap.NewAtomicLevelAt(level.zapLevel())
	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = ""
	enc.CallerKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(out), atom)
	return &Logger{sugar: zap.New(core).Sugar(), atom: atom, level: level}
}

// NewWithCore wraps an existing core; the level only gates what this wrapper
// forwards, the core keeps its own enabler.
func NewWithCore(core zapcore.Core, level Level) *Logger {
	atom := zap.NewAtomicLevelAt(level.zapLevel())
	gated := &levelCore{Core: core, atom: atom}
	return &Logger{sugar: zap.New(gated).Sugar(), atom: atom, level: level}
}

// With returns a child logger that attaches key=value to every entry.
func (l *Logger) With(key string, value interface{}) *Logger {
	return &Logger{sugar: l.sugar.With(key, value), atom: l.atom, level: l.level}
}

func (l *Logger) Debugf(format string, v ...interface{}) {
	l.sugar.Debugf(format, v...)
}

func (l *Logger) Infof(format string, v ...interface{}) {
	l.sugar.Infof(format, v...)
}

func (l *Logger) Errorf(format string, v ...interface{}) {
	l.sugar.Errorf(format, v...)
}

func (l *Logger) Warnf(format string, v ...interface{}) {
	if l.level <= LevelInfo {
		l.sugar.Warnf(format, v...)
	}
}

func (l *Logger) SetLevel(level Level) {
	l.level = level
	l.atom.SetLevel(level.zapLevel())
}

func (l *Logger) Level() Level {
	return l.level
}

// Sync flushes buffered entries.
func (l *Logger) Sync() error {
	return l.sugar.Sync()
}

type levelCore struct {
	zapcore.Core
	atom zap.AtomicLevel
}

func (c *levelCore) Enabled(lvl zapcore.Level) bool {
	return c.atom.Enabled(lvl) && c.Core.Enabled(lvl)
}

func (c *levelCore) With(fields []zapcore.Field) zapcore.Core {
	return &levelCore{Core: c.Core.With(fields), atom: c.atom}
}

func (c *levelCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if !c.atom.Enabled(ent.Level) {
		return ce
	}
	return c.Core.Check(ent, ce)
}
