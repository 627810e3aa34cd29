// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package gcshim

import "fmt"

// State is the lifecycle stage of a [Shim].
type State int

const (
	// StateUnloaded is the initial state: nothing was loaded yet.
	StateUnloaded State = iota
	// StateLoading is held while Attach loads the module.
	StateLoading
	// StateReady means the module is loaded and both entry points resolved.
	StateReady
	// StateFailed means the module or one of its entry points could not be
	// loaded. It is terminal until detach.
	StateFailed
	// StateDetached is terminal.
	StateDetached
)

func (s State) String() string {
	switch s {
	case StateUnloaded:
		return "unloaded"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	case StateDetached:
		return "detached"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}
