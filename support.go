// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package gcshim

import "github.com/DataDog/go-gcshim/internal/support"

// Supported returns true if the current target can load the real GC module
// dynamically, false and an error otherwise.
func Supported() (bool, error) {
	if err := support.SupportErrors(); err != nil {
		return false, err
	}
	return true, nil
}
