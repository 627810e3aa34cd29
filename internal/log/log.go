// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package log

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EnvLogLevel is the environment variable selecting the shim's log level.
const EnvLogLevel = "GCSHIM_LOG_LEVEL"

// Level is the verbosity of the shim's diagnostic output.
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarning
	LevelError
	LevelOff
)

// LevelNamed returns the log level corresponding to the given name, or LevelOff
// if the name corresponds to no known log level.
func LevelNamed(name string) Level {
	switch strings.ToLower(name) {
	case "trace":
		return LevelTrace
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarning
	case "error":
		return LevelError
	case "off":
		return LevelOff
	default:
		return LevelOff
	}
}

func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "TRACE"
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelOff:
		return "OFF"
	default:
		return fmt.Sprintf("0x%X", uintptr(l))
	}
}

// zapLevel maps the level to zap's. Trace has no zap equivalent and shares
// DebugLevel; it is filtered by Enabled instead.
func (l Level) zapLevel() zapcore.Level {
	switch l {
	case LevelTrace, LevelDebug:
		return zapcore.DebugLevel
	case LevelInfo:
		return zapcore.InfoLevel
	case LevelWarning:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}

var (
	mu     sync.RWMutex
	level  Level
	logger *zap.Logger
	once   sync.Once
)

func ensure() {
	once.Do(func() {
		lvl := LevelInfo
		if name, ok := os.LookupEnv(EnvLogLevel); ok {
			lvl = LevelNamed(name)
		}
		setLevel(lvl)
	})
}

// SetLevel replaces the process-wide logger with one writing to stderr at the
// given level.
func SetLevel(lvl Level) {
	ensure()
	setLevel(lvl)
}

func setLevel(lvl Level) {
	var l *zap.Logger
	if lvl == LevelOff {
		l = zap.NewNop()
	} else {
		encoderConfig := zap.NewDevelopmentEncoderConfig()
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		core := zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderConfig),
			zapcore.Lock(os.Stderr),
			zap.NewAtomicLevelAt(lvl.zapLevel()),
		)
		l = zap.New(core).Named("gcshim")
	}

	mu.Lock()
	defer mu.Unlock()
	level = lvl
	logger = l
}

// SetLogger installs a caller-provided logger, e.g. zaptest's in tests.
func SetLogger(l *zap.Logger, lvl Level) {
	ensure()
	mu.Lock()
	defer mu.Unlock()
	level = lvl
	logger = l
}

// Logger returns the process-wide logger.
func Logger() *zap.Logger {
	ensure()
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Enabled reports whether messages at lvl are emitted.
func Enabled(lvl Level) bool {
	ensure()
	mu.RLock()
	defer mu.RUnlock()
	return level != LevelOff && lvl >= level
}

// Tracef logs a formatted message at trace level. The arguments are only
// formatted when trace logging is enabled.
func Tracef(format string, args ...any) {
	if !Enabled(LevelTrace) {
		return
	}
	Logger().Debug(fmt.Sprintf(format, args...))
}
