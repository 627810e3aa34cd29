// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

//go:build (linux || darwin) && (amd64 || arm64)

package purego

import (
	"github.com/DataDog/go-gcshim/internal/log"
	"github.com/ebitengine/purego"
)

const (
	RTLD_NOW    = purego.RTLD_NOW
	RTLD_LOCAL  = purego.RTLD_LOCAL
	RTLD_GLOBAL = purego.RTLD_GLOBAL
)

func Dlopen(path string, flags int) (uintptr, error) {
	log.Tracef("Dlopen(%q, 0x%x)", path, flags)
	handle, err := purego.Dlopen(path, flags)
	log.Tracef("Dlopen(%q, 0x%x) = 0x%x, %v", path, flags, handle, err)
	return handle, err
}

func Dlsym(handle uintptr, name string) (uintptr, error) {
	log.Tracef("Dlsym(0x%x, %q)", handle, name)
	ptr, err := purego.Dlsym(handle, name)
	log.Tracef("Dlsym(0x%x, %q) = 0x%x, %v", handle, name, ptr, err)
	return ptr, err
}

func Dlclose(handle uintptr) error {
	log.Tracef("Dlclose(0x%x)", handle)
	err := purego.Dlclose(handle)
	log.Tracef("Dlclose(0x%x) = %v", handle, err)
	return err
}
