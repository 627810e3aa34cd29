// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package gcshim

import (
	"testing"
	"unsafe"

	"github.com/DataDog/go-gcshim/internal/bindings"
	"github.com/DataDog/go-gcshim/internal/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// stubModuleName is a NUL-terminated C string owned by the test binary.
var stubModuleName = []byte("StubGC\x00")

// stubModule stands in for a real GC module: it records the arguments it was
// called with and writes into its output locations like a real one would.
type stubModule struct {
	status int32

	initializeArgs [][4]uintptr
	versionCalls   int
	closed         int

	panicWith any
}

func (m *stubModule) Initialize(clrToGC, gcHeap, gcHandleManager, gcDacVars uintptr) int32 {
	if m.panicWith != nil {
		panic(m.panicWith)
	}
	m.initializeArgs = append(m.initializeArgs, [4]uintptr{clrToGC, gcHeap, gcHandleManager, gcDacVars})
	if gcHeap != 0 {
		*(*uintptr)(*(*unsafe.Pointer)(unsafe.Pointer(&gcHeap))) = clrToGC + 1
	}
	if gcHandleManager != 0 {
		*(*uintptr)(*(*unsafe.Pointer)(unsafe.Pointer(&gcHandleManager))) = clrToGC + 2
	}
	return m.status
}

func (m *stubModule) VersionInfo(result uintptr) {
	if m.panicWith != nil {
		panic(m.panicWith)
	}
	m.versionCalls++
	info := (*bindings.VersionInfo)(*(*unsafe.Pointer)(unsafe.Pointer(&result)))
	info.MajorVersion = 5
	info.MinorVersion = 1
	info.Name = uintptr(unsafe.Pointer(&stubModuleName[0]))
}

func (m *stubModule) Close() error {
	m.closed++
	return nil
}

// stubOpener hands out its module, or fails with err.
type stubOpener struct {
	module *stubModule
	err    error

	opened  []string
	symbols []Symbols
}

func (o *stubOpener) Open(name string, symbols Symbols) (Module, error) {
	o.opened = append(o.opened, name)
	o.symbols = append(o.symbols, symbols)
	if o.err != nil {
		return nil, o.err
	}
	return o.module, nil
}

func newStubShim(options ...Option) (*Shim, *stubOpener) {
	opener := &stubOpener{module: &stubModule{}}
	return New(DefaultConfig(), append([]Option{WithOpener(opener)}, options...)...), opener
}

// observeLogs routes the shim's logs to an in-memory sink for the rest of the
// test.
func observeLogs(t *testing.T) *observer.ObservedLogs {
	core, logs := observer.New(zap.DebugLevel)
	log.SetLogger(zap.New(core), log.LevelDebug)
	t.Cleanup(func() { log.SetLevel(log.LevelInfo) })
	return logs
}
