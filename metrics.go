// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package gcshim

import (
	"time"

	"go.uber.org/atomic"
)

// Stats stores the metrics collected by a [Shim].
type Stats struct {
	// AttachDuration is the time spent loading the module and resolving its
	// entry points.
	AttachDuration time.Duration
	// ModuleLoads counts the attempts to open the real GC module.
	ModuleLoads uint64
	// InitializeCalls counts the calls forwarded to the initialize entry point.
	InitializeCalls uint64
	// VersionInfoCalls counts the calls forwarded to the version entry point.
	VersionInfoCalls uint64
	// RejectedCalls counts the forwarding calls refused because the shim was
	// not ready.
	RejectedCalls uint64
}

const (
	attachDurationTag   = "attach.duration"
	moduleLoadsTag      = "attach.module_loads"
	initializeCallsTag  = "forward.initialize"
	versionInfoCallsTag = "forward.version_info"
	rejectedCallsTag    = "forward.rejected"
)

// Metrics transform the stats into a map of key value metrics.
func (stats Stats) Metrics() map[string]any {
	return map[string]any{
		attachDurationTag:   float64(stats.AttachDuration.Nanoseconds()) / float64(time.Microsecond), // The metrics should be in microseconds
		moduleLoadsTag:      stats.ModuleLoads,
		initializeCallsTag:  stats.InitializeCalls,
		versionInfoCallsTag: stats.VersionInfoCalls,
		rejectedCallsTag:    stats.RejectedCalls,
	}
}

type metricsStore struct {
	attachDuration   atomic.Duration
	moduleLoads      atomic.Uint64
	initializeCalls  atomic.Uint64
	versionInfoCalls atomic.Uint64
	rejectedCalls    atomic.Uint64
}

func (m *metricsStore) stats() Stats {
	return Stats{
		AttachDuration:   m.attachDuration.Load(),
		ModuleLoads:      m.moduleLoads.Load(),
		InitializeCalls:  m.initializeCalls.Load(),
		VersionInfoCalls: m.versionInfoCalls.Load(),
		RejectedCalls:    m.rejectedCalls.Load(),
	}
}
