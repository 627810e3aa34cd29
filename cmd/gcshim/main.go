// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

// Command gcshim is built with -buildmode=c-shared and loaded by the host
// runtime as its GC module. It exports GC_Initialize and GC_VersionInfo and
// forwards both to the real GC module named by the GCSHIM_* environment
// variables.
package main

/*
#include <stdint.h>
*/
import "C"

import (
	"unsafe"

	gcshim "github.com/DataDog/go-gcshim"
	"github.com/DataDog/go-gcshim/gcerrors"
	"github.com/DataDog/go-gcshim/internal/log"
	"go.uber.org/zap"
)

// shim is nil when the configuration could not be read.
var shim *gcshim.Shim

// The Go runtime runs init when the library is loaded, before any export can
// be called.
func init() {
	cfg, err := gcshim.ConfigFromEnv()
	if err != nil {
		log.Logger().Error("invalid gc shim configuration", zap.Error(err))
		return
	}

	shim = gcshim.New(cfg)
	// Attach logs its own failure; the exports report it to the host.
	_ = shim.Attach()
}

//export GC_Initialize
func GC_Initialize(clrToGC unsafe.Pointer, gcHeap *unsafe.Pointer, gcHandleManager *unsafe.Pointer, gcDacVars unsafe.Pointer) C.int32_t {
	if shim == nil {
		return C.int32_t(gcerrors.HResultOf(gcerrors.ErrNotReady))
	}

	// The shim logs why a call was refused or failed.
	hr, _ := shim.Initialize(
		uintptr(clrToGC),
		uintptr(unsafe.Pointer(gcHeap)),
		uintptr(unsafe.Pointer(gcHandleManager)),
		uintptr(gcDacVars),
	)
	return C.int32_t(hr)
}

//export GC_VersionInfo
func GC_VersionInfo(result unsafe.Pointer) {
	if shim == nil {
		return
	}
	_ = shim.VersionInfo(uintptr(result))
}

//export gcshimDetach
func gcshimDetach() {
	if shim == nil {
		return
	}
	if err := shim.Detach(); err != nil {
		log.Logger().Warn("error detaching gc shim", zap.Error(err))
	}
}

func main() {}
