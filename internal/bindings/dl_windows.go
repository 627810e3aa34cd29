// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

//go:build windows && (amd64 || arm64)

package bindings

import (
	"github.com/DataDog/go-gcshim/internal/log"
	"golang.org/x/sys/windows"
)

func loadSharedObject(file string) (uintptr, error) {
	handle, err := windows.LoadLibrary(file)
	log.Tracef("LoadLibrary(%q) = 0x%x, %v", file, handle, err)
	return uintptr(handle), err
}

func resolveSymbol(handle uintptr, name string) (uintptr, error) {
	addr, err := windows.GetProcAddress(windows.Handle(handle), name)
	log.Tracef("GetProcAddress(0x%x, %q) = 0x%x, %v", handle, name, addr, err)
	return addr, err
}

func closeSharedObject(handle uintptr) error {
	return windows.FreeLibrary(windows.Handle(handle))
}
