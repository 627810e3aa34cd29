// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package gcshim

import "github.com/DataDog/go-gcshim/internal/bindings"

type (
	// Module is a loaded GC implementation exposing the two entry points the
	// shim forwards to.
	Module = bindings.Module
	// Opener loads a [Module] by name, resolving the given [Symbols].
	Opener = bindings.Opener
	// Symbols names the entry points resolved from the real GC module.
	Symbols = bindings.Symbols
)
