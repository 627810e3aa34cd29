// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package bindings

// Symbols names the two entry points the real GC module must export.
type Symbols struct {
	Initialize  string
	VersionInfo string
}

// Module is the capability set of a loaded GC implementation. A Module value
// always has both entry points resolved.
type Module interface {
	// Initialize calls the module's GC initialization entry point with the
	// four host-provided addresses and returns its HRESULT.
	Initialize(clrToGC, gcHeap, gcHandleManager, gcDacVars uintptr) int32
	// VersionInfo calls the module's version entry point, which fills the
	// record at result.
	VersionInfo(result uintptr)
	// Close releases the module.
	Close() error
}

// Opener loads a GC module by name and resolves its entry points.
type Opener interface {
	Open(name string, symbols Symbols) (Module, error)
}

// DynamicOpener opens GC modules as shared libraries of the current process.
type DynamicOpener struct{}

func (DynamicOpener) Open(name string, symbols Symbols) (Module, error) {
	lib, err := NewGCLib(name, symbols)
	if err != nil {
		return nil, err
	}
	return lib, nil
}
