// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

//go:build (linux || darwin || windows) && (amd64 || arm64)

package bindings

import (
	"errors"

	"github.com/DataDog/go-gcshim/gcerrors"
	"github.com/DataDog/go-gcshim/internal/purego"
)

// GCLib is the type wrapper for all C calls to the real GC module.
// All calls must go though this one liner to be type safe
// since purego calls are not type safe
type GCLib struct {
	name   string
	handle uintptr

	initialize  uintptr
	versionInfo uintptr
}

// NewGCLib loads the shared library name and resolves both entry points.
// The library is closed again if any of them is missing.
func NewGCLib(name string, symbols Symbols) (*GCLib, error) {
	handle, err := loadSharedObject(name)
	if err != nil {
		return nil, &gcerrors.ModuleLoadError{Module: name, Err: err}
	}

	lib := &GCLib{name: name, handle: handle}

	if lib.initialize, err = lib.resolve(symbols.Initialize); err != nil {
		return nil, errors.Join(err, lib.Close())
	}
	if lib.versionInfo, err = lib.resolve(symbols.VersionInfo); err != nil {
		return nil, errors.Join(err, lib.Close())
	}

	return lib, nil
}

func (lib *GCLib) resolve(symbol string) (uintptr, error) {
	addr, err := resolveSymbol(lib.handle, symbol)
	if err != nil {
		return 0, &gcerrors.SymbolResolutionError{Module: lib.name, Symbol: symbol, Err: err}
	}
	if addr == 0 {
		return 0, &gcerrors.SymbolResolutionError{Module: lib.name, Symbol: symbol}
	}
	return addr, nil
}

func (lib *GCLib) Initialize(clrToGC, gcHeap, gcHandleManager, gcDacVars uintptr) int32 {
	ret, _, _ := purego.SyscallN(lib.initialize, clrToGC, gcHeap, gcHandleManager, gcDacVars)
	// HRESULT is 32 bits wide, the upper half of the register is unspecified.
	return int32(ret)
}

func (lib *GCLib) VersionInfo(result uintptr) {
	purego.SyscallN(lib.versionInfo, result)
}

func (lib *GCLib) Close() error {
	if lib.handle == 0 {
		return nil
	}
	handle := lib.handle
	lib.handle, lib.initialize, lib.versionInfo = 0, 0, 0
	return closeSharedObject(handle)
}
