// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package log

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLevelNamed(t *testing.T) {
	for name, expected := range map[string]Level{
		"trace":   LevelTrace,
		"DEBUG":   LevelDebug,
		"Info":    LevelInfo,
		"warn":    LevelWarning,
		"warning": LevelWarning,
		"error":   LevelError,
		"off":     LevelOff,
		"bogus":   LevelOff,
		"":        LevelOff,
	} {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, expected, LevelNamed(name))
		})
	}
}

func TestLevelString(t *testing.T) {
	require.Equal(t, "WARN", LevelWarning.String())
	require.Equal(t, "0x2A", Level(42).String())
}

func TestTracef(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	t.Cleanup(func() { SetLevel(LevelInfo) })

	SetLogger(zap.New(core), LevelDebug)
	Tracef("dropped %d", 1)
	require.Zero(t, logs.Len())

	SetLogger(zap.New(core), LevelTrace)
	Tracef("kept %d", 2)
	require.Equal(t, 1, logs.Len())
	require.Equal(t, "kept 2", logs.All()[0].Message)
}

func TestEnabled(t *testing.T) {
	t.Cleanup(func() { SetLevel(LevelInfo) })

	SetLevel(LevelWarning)
	require.False(t, Enabled(LevelInfo))
	require.True(t, Enabled(LevelError))

	SetLevel(LevelOff)
	require.False(t, Enabled(LevelError))
	require.NotNil(t, Logger())
}
