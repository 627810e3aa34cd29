// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package gcshim

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/DataDog/go-gcshim/internal/bindings"
)

// VersionInfo is the version record reported by the real GC module.
type VersionInfo struct {
	Major int32
	Minor int32
	Build int32
	Name  string
}

func (v VersionInfo) String() string {
	if v.Name == "" {
		return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Build)
	}
	return fmt.Sprintf("%s %d.%d.%d", v.Name, v.Major, v.Minor, v.Build)
}

// Version queries the real GC module's version entry point with a
// Go-allocated record and returns its content.
func (s *Shim) Version() (VersionInfo, error) {
	info := new(bindings.VersionInfo)
	err := s.VersionInfo(uintptr(unsafe.Pointer(info)))
	runtime.KeepAlive(info)
	if err != nil {
		return VersionInfo{}, err
	}

	return VersionInfo{
		Major: info.MajorVersion,
		Minor: info.MinorVersion,
		Build: info.BuildVersion,
		Name:  bindings.GoString(info.Name),
	}, nil
}
