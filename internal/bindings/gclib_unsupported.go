// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

// Build when the target OS or architecture are not supported
//go:build !(linux || darwin || windows) || !(amd64 || arm64)

package bindings

import (
	"runtime"

	"github.com/DataDog/go-gcshim/gcerrors"
)

type GCLib struct{}

func NewGCLib(string, Symbols) (*GCLib, error) {
	return nil, gcerrors.UnsupportedTargetError{OS: runtime.GOOS, Arch: runtime.GOARCH}
}

func (*GCLib) Initialize(_, _, _, _ uintptr) int32 {
	return int32(gcerrors.E_NOTIMPL)
}

func (*GCLib) VersionInfo(uintptr) {}

func (*GCLib) Close() error {
	return nil
}
