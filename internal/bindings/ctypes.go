// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package bindings

import "unsafe"

// VersionInfo mirrors the host's VersionInfo C struct filled by the
// GC_VersionInfo entry point.
type VersionInfo struct {
	MajorVersion int32
	MinorVersion int32
	BuildVersion int32
	_            [4]byte // padding
	Name         uintptr // const char*
}

// GoString copies the NUL-terminated C string at c.
func GoString(c uintptr) string {
	// We take the address and then dereference it to trick go vet from creating a possible misuse of unsafe.Pointer
	ptr := *(*unsafe.Pointer)(unsafe.Pointer(&c))
	if ptr == nil {
		return ""
	}
	var length int
	for *(*byte)(unsafe.Add(ptr, uintptr(length))) != '\x00' {
		length++
	}
	//string builtin copies the slice
	return string(unsafe.Slice((*byte)(ptr), length))
}
