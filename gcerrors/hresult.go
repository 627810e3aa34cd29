// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package gcerrors

import (
	"errors"
	"fmt"
)

// HResult is the 32-bit status code exchanged with the host runtime.
type HResult int32

// Status codes the shim produces on its own. Any other value is one the real
// GC module returned and is passed through untouched.
const (
	S_OK             HResult = 0
	E_NOTIMPL        HResult = -0x7fffbfff // 0x80004001
	E_POINTER        HResult = -0x7fffbffd // 0x80004003
	E_FAIL           HResult = -0x7fffbffb // 0x80004005
	E_UNEXPECTED     HResult = -0x7fff0001 // 0x8000FFFF
	E_MOD_NOT_FOUND  HResult = -0x7ff8ff82 // 0x8007007E
	E_PROC_NOT_FOUND HResult = -0x7ff8ff81 // 0x8007007F
	E_INVALID_STATE  HResult = -0x7ff8ec61 // 0x8007139F
)

// Succeeded reports whether the status code denotes success.
func (hr HResult) Succeeded() bool {
	return hr >= 0
}

func (hr HResult) String() string {
	switch hr {
	case S_OK:
		return "S_OK"
	case E_NOTIMPL:
		return "E_NOTIMPL"
	case E_POINTER:
		return "E_POINTER"
	case E_FAIL:
		return "E_FAIL"
	case E_UNEXPECTED:
		return "E_UNEXPECTED"
	case E_MOD_NOT_FOUND:
		return "E_MOD_NOT_FOUND"
	case E_PROC_NOT_FOUND:
		return "E_PROC_NOT_FOUND"
	case E_INVALID_STATE:
		return "E_INVALID_STATE"
	default:
		return fmt.Sprintf("0x%08X", uint32(hr))
	}
}

// HResultOf maps an error returned by the shim to the status code reported
// to the host.
func HResultOf(err error) HResult {
	if err == nil {
		return S_OK
	}

	var (
		loadErr   *ModuleLoadError
		symbolErr *SymbolResolutionError
		targetErr UnsupportedTargetError
	)
	switch {
	case errors.As(err, &loadErr):
		return E_MOD_NOT_FOUND
	case errors.As(err, &symbolErr):
		return E_PROC_NOT_FOUND
	case errors.As(err, &targetErr):
		return E_NOTIMPL
	case errors.Is(err, ErrNilResult):
		return E_POINTER
	case errors.Is(err, ErrDetached):
		return E_UNEXPECTED
	case errors.Is(err, ErrNotReady):
		return E_INVALID_STATE
	default:
		return E_FAIL
	}
}
