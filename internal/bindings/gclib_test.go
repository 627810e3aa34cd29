// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

//go:build (linux || darwin) && (amd64 || arm64)

package bindings

import (
	"errors"
	"runtime"
	"testing"
	"unsafe"

	"github.com/DataDog/go-gcshim/gcerrors"
	"github.com/stretchr/testify/require"
)

func libcName() string {
	if runtime.GOOS == "darwin" {
		return "/usr/lib/libSystem.B.dylib"
	}
	return "libc.so.6"
}

// libc functions standing in for the GC entry points: labs() echoes its first
// argument back and strlen() only reads through its single pointer argument.
var libcSymbols = Symbols{Initialize: "labs", VersionInfo: "strlen"}

func TestNewGCLib(t *testing.T) {
	t.Run("module not found", func(t *testing.T) {
		lib, err := NewGCLib("libgcshim-does-not-exist.so", libcSymbols)
		require.Nil(t, lib)

		var loadErr *gcerrors.ModuleLoadError
		require.True(t, errors.As(err, &loadErr))
		require.Equal(t, "libgcshim-does-not-exist.so", loadErr.Module)
	})

	t.Run("missing initialize symbol", func(t *testing.T) {
		lib, err := NewGCLib(libcName(), Symbols{Initialize: "Custom_GC_Initialize", VersionInfo: "strlen"})
		require.Nil(t, lib)

		var symbolErr *gcerrors.SymbolResolutionError
		require.True(t, errors.As(err, &symbolErr))
		require.Equal(t, "Custom_GC_Initialize", symbolErr.Symbol)
	})

	t.Run("missing version info symbol", func(t *testing.T) {
		lib, err := NewGCLib(libcName(), Symbols{Initialize: "labs", VersionInfo: "Custom_GC_VersionInfo"})
		require.Nil(t, lib)

		var symbolErr *gcerrors.SymbolResolutionError
		require.True(t, errors.As(err, &symbolErr))
		require.Equal(t, "Custom_GC_VersionInfo", symbolErr.Symbol)
	})

	t.Run("forwards calls", func(t *testing.T) {
		lib, err := NewGCLib(libcName(), libcSymbols)
		require.NoError(t, err)
		defer lib.Close()

		require.Equal(t, int32(42), lib.Initialize(42, 1, 2, 3))
		require.Equal(t, int32(7), lib.Initialize(^uintptr(6), 0, 0, 0))

		buf := []byte("gc\x00")
		lib.VersionInfo(uintptr(unsafe.Pointer(&buf[0])))
		runtime.KeepAlive(buf)
		require.Equal(t, []byte("gc\x00"), buf)
	})

	t.Run("close is idempotent", func(t *testing.T) {
		lib, err := NewGCLib(libcName(), libcSymbols)
		require.NoError(t, err)
		require.NoError(t, lib.Close())
		require.NoError(t, lib.Close())
	})
}

func TestDynamicOpener(t *testing.T) {
	module, err := DynamicOpener{}.Open("libgcshim-does-not-exist.so", libcSymbols)
	require.Error(t, err)
	require.Nil(t, module)

	module, err = DynamicOpener{}.Open(libcName(), libcSymbols)
	require.NoError(t, err)
	require.NotNil(t, module)
	require.NoError(t, module.Close())
}

func TestVersionInfoLayout(t *testing.T) {
	var info VersionInfo
	require.Equal(t, uintptr(0), unsafe.Offsetof(info.MajorVersion))
	require.Equal(t, uintptr(4), unsafe.Offsetof(info.MinorVersion))
	require.Equal(t, uintptr(8), unsafe.Offsetof(info.BuildVersion))
	require.Equal(t, uintptr(16), unsafe.Offsetof(info.Name))
	require.Equal(t, uintptr(24), unsafe.Sizeof(info))
}

func TestGoString(t *testing.T) {
	require.Equal(t, "", GoString(0))

	buf := []byte("ManagedDotnetGC\x00trailing")
	require.Equal(t, "ManagedDotnetGC", GoString(uintptr(unsafe.Pointer(&buf[0]))))
	runtime.KeepAlive(buf)
}
