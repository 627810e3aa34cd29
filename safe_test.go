// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package gcshim

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTryCall(t *testing.T) {
	myPanicErr := errors.New("my error")

	t.Run("panic", func(t *testing.T) {
		t.Run("error", func(t *testing.T) {
			// panic called with an error
			err := tryCall("GC_Initialize", func() {
				panic(myPanicErr)
			})
			require.Error(t, err)
			var panicErr *PanicError
			require.True(t, errors.As(err, &panicErr))
			require.True(t, errors.Is(err, myPanicErr))
			require.Equal(t, "GC_Initialize", panicErr.EntryPoint)
		})

		t.Run("string", func(t *testing.T) {
			// panic called with a string
			str := "woops"
			err := tryCall("GC_VersionInfo", func() {
				panic(str)
			})
			require.Error(t, err)
			var panicErr *PanicError
			require.True(t, errors.As(err, &panicErr))
			require.Contains(t, panicErr.Err.Error(), str)
		})

		t.Run("int", func(t *testing.T) {
			// panic called with an int to cover the default fallback in tryCall
			var i int64 = 42
			err := tryCall("GC_VersionInfo", func() {
				panic(i)
			})
			require.Error(t, err)
			var panicErr *PanicError
			require.True(t, errors.As(err, &panicErr))
			require.Contains(t, panicErr.Err.Error(), strconv.FormatInt(i, 10))
		})
	})

	t.Run("no panic", func(t *testing.T) {
		called := false
		err := tryCall("GC_Initialize", func() {
			called = true
		})
		require.NoError(t, err)
		require.True(t, called)
	})
}
