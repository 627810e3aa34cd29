// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package gcerrors

import (
	"errors"
	"fmt"
)

// Forwarding errors
var (
	// ErrNotReady is returned when a forwarding call is made before a
	// successful attach.
	ErrNotReady = errors.New("gc shim is not ready")
	// ErrDetached is returned by any operation issued after detach.
	ErrDetached = errors.New("gc shim is detached")
	// ErrNilResult is returned when VersionInfo is given a nil output location.
	ErrNilResult = errors.New("nil version info output location")
)

// ModuleLoadError is returned when the real GC module cannot be found or
// loaded.
type ModuleLoadError struct {
	Module string
	Err    error
}

func (e *ModuleLoadError) Error() string {
	return fmt.Sprintf("could not load GC module %q: %v", e.Module, e.Err)
}

func (e *ModuleLoadError) Unwrap() error {
	return e.Err
}

// SymbolResolutionError is returned when the real GC module was loaded but
// one of the required entry points is absent from it.
type SymbolResolutionError struct {
	Module string
	Symbol string
	Err    error
}

func (e *SymbolResolutionError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("symbol %q resolved to a null address in GC module %q", e.Symbol, e.Module)
	}
	return fmt.Sprintf("cannot resolve symbol %q in GC module %q: %v", e.Symbol, e.Module, e.Err)
}

func (e *SymbolResolutionError) Unwrap() error {
	return e.Err
}

// UnsupportedTargetError is returned when the current OS/arch cannot load
// shared libraries dynamically.
type UnsupportedTargetError struct {
	OS   string
	Arch string
}

func (e UnsupportedTargetError) Error() string {
	return fmt.Sprintf("the target operating-system %s or architecture %s are not supported", e.OS, e.Arch)
}
