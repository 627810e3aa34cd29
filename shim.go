// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

// Package gcshim loads a garbage collector implementation on behalf of a host
// runtime and forwards the host's GC entry points to it.
package gcshim

import (
	"fmt"
	"sync"
	"time"

	"github.com/DataDog/go-gcshim/gcerrors"
	"github.com/DataDog/go-gcshim/internal/bindings"
	"github.com/DataDog/go-gcshim/internal/log"
	"github.com/DataDog/go-gcshim/internal/support"
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

// Shim stands in for the GC module expected by the host runtime and forwards
// every call to the real GC module it loads on [Shim.Attach].
//
// The real module and its entry points are written once by Attach and only
// read afterwards, so the forwarding methods never lock.
type Shim struct {
	config         Config
	opener         bindings.Opener
	unloadOnDetach bool

	// Serializes Attach and Detach.
	mu      sync.Mutex
	current atomic.Pointer[attachment]
	metrics metricsStore
}

// attachment is an immutable snapshot of the shim's lifecycle.
type attachment struct {
	state  State
	module bindings.Module
	err    error
}

// Option configures a [Shim].
type Option func(*Shim)

// WithOpener replaces the dynamic loader used to open the real GC module.
func WithOpener(opener Opener) Option {
	return func(s *Shim) {
		s.opener = opener
	}
}

// WithUnloadOnDetach makes [Shim.Detach] close the real GC module. By default
// the module stays mapped until the process exits.
func WithUnloadOnDetach() Option {
	return func(s *Shim) {
		s.unloadOnDetach = true
	}
}

// New returns an unattached shim for the given configuration.
func New(config Config, options ...Option) *Shim {
	s := &Shim{
		config: config,
		opener: bindings.DynamicOpener{},
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Config returns the configuration the shim was created with.
func (s *Shim) Config() Config {
	return s.config
}

// State returns the current lifecycle stage.
func (s *Shim) State() State {
	if a := s.current.Load(); a != nil {
		return a.state
	}
	return StateUnloaded
}

// Stats returns a snapshot of the shim's metrics.
func (s *Shim) Stats() Stats {
	return s.metrics.stats()
}

// Attach loads the real GC module and resolves both of its entry points. It
// returns a [*gcerrors.ModuleLoadError] when the module cannot be loaded and a
// [*gcerrors.SymbolResolutionError] when an entry point is missing; the shim
// is then failed and refuses to forward any call.
//
// Only the first call does any work: later calls return its outcome, or
// [gcerrors.ErrDetached] once the shim was detached.
func (s *Shim) Attach() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if a := s.current.Load(); a != nil {
		if a.state == StateDetached {
			return gcerrors.ErrDetached
		}
		return a.err
	}

	logger := log.Logger().With(zap.String("module", s.config.ModuleName))
	logger.Info("loading GC module")
	s.current.Store(&attachment{state: StateLoading})

	start := time.Now()
	module, err := s.load()
	s.metrics.attachDuration.Store(time.Since(start))

	if err != nil {
		logger.Error("could not load GC module", zap.Error(err))
		s.current.Store(&attachment{state: StateFailed, err: err})
		return err
	}

	logger.Info("successfully loaded GC module",
		zap.String("initialize", s.config.InitializeSymbol),
		zap.String("version_info", s.config.VersionInfoSymbol))
	s.current.Store(&attachment{state: StateReady, module: module})
	return nil
}

func (s *Shim) load() (bindings.Module, error) {
	if err := support.SupportErrors(); err != nil {
		return nil, err
	}
	if err := s.config.Validate(); err != nil {
		return nil, err
	}

	s.metrics.moduleLoads.Inc()
	return s.opener.Open(s.config.ModuleName, s.config.symbols())
}

// Detach ends the shim's lifecycle. No call is forwarded afterwards.
func (s *Shim) Detach() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous := s.current.Load()
	if previous != nil && previous.state == StateDetached {
		return nil
	}

	log.Logger().Info("detaching GC shim")
	s.current.Store(&attachment{state: StateDetached, err: gcerrors.ErrDetached})

	if previous == nil || previous.module == nil || !s.unloadOnDetach {
		return nil
	}
	if err := previous.module.Close(); err != nil {
		return fmt.Errorf("error closing GC module %q: %w", s.config.ModuleName, err)
	}
	return nil
}

// ready returns the resolved module, or the reason why no call may be
// forwarded to it.
func (s *Shim) ready() (bindings.Module, error) {
	a := s.current.Load()
	switch {
	case a == nil, a.state == StateLoading:
		return nil, gcerrors.ErrNotReady
	case a.state == StateReady:
		return a.module, nil
	case a.state == StateDetached:
		return nil, gcerrors.ErrDetached
	default:
		return nil, fmt.Errorf("%w: %w", gcerrors.ErrNotReady, a.err)
	}
}

func (s *Shim) reject(entryPoint string, err error) {
	s.metrics.rejectedCalls.Inc()
	log.Logger().Warn("refusing to forward call", zap.String("entry_point", entryPoint), zap.Error(err))
}

func (s *Shim) fail(entryPoint string, err error) {
	log.Logger().Error("forwarded call failed", zap.String("entry_point", entryPoint), zap.Error(err))
}

// Initialize forwards a GC_Initialize call to the real GC module. The four
// addresses are passed through unchanged and the module's status code is
// returned as is. When the shim is not ready, the module is not called and the
// returned error explains why; the status code then reflects that error.
func (s *Shim) Initialize(clrToGC, gcHeap, gcHandleManager, gcDacVars uintptr) (gcerrors.HResult, error) {
	const entryPoint = "GC_Initialize"

	module, err := s.ready()
	if err != nil {
		s.reject(entryPoint, err)
		return gcerrors.HResultOf(err), err
	}

	log.Logger().Debug("forwarding call", zap.String("entry_point", entryPoint))
	s.metrics.initializeCalls.Inc()

	var hr int32
	if err := tryCall(entryPoint, func() {
		hr = module.Initialize(clrToGC, gcHeap, gcHandleManager, gcDacVars)
	}); err != nil {
		s.fail(entryPoint, err)
		return gcerrors.E_FAIL, err
	}
	return gcerrors.HResult(hr), nil
}

// VersionInfo forwards a GC_VersionInfo call to the real GC module, which
// fills the version record at result.
func (s *Shim) VersionInfo(result uintptr) error {
	const entryPoint = "GC_VersionInfo"

	module, err := s.ready()
	if err == nil && result == 0 {
		err = gcerrors.ErrNilResult
	}
	if err != nil {
		s.reject(entryPoint, err)
		return err
	}

	log.Logger().Debug("forwarding call", zap.String("entry_point", entryPoint))
	s.metrics.versionInfoCalls.Inc()

	if err := tryCall(entryPoint, func() {
		module.VersionInfo(result)
	}); err != nil {
		s.fail(entryPoint, err)
		return err
	}
	return nil
}
