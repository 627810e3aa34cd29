// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package gcshim

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/DataDog/go-gcshim/internal/bindings"
	jsoniter "github.com/json-iterator/go"
)

// Environment variables read by [ConfigFromEnv].
const (
	EnvConfigFile        = "GCSHIM_CONFIG"
	EnvModule            = "GCSHIM_MODULE"
	EnvInitializeSymbol  = "GCSHIM_INITIALIZE_SYMBOL"
	EnvVersionInfoSymbol = "GCSHIM_VERSION_INFO_SYMBOL"
)

// Entry points the real GC module is expected to export by default.
const (
	DefaultInitializeSymbol  = "Custom_GC_Initialize"
	DefaultVersionInfoSymbol = "Custom_GC_VersionInfo"
)

// Config names the real GC module and the two entry points resolved from it.
type Config struct {
	// ModuleName is the file name or path of the real GC module, as given to
	// the platform's dynamic loader.
	ModuleName string `json:"module"`
	// InitializeSymbol is the entry point GC_Initialize forwards to.
	InitializeSymbol string `json:"initialize_symbol"`
	// VersionInfoSymbol is the entry point GC_VersionInfo forwards to.
	VersionInfoSymbol string `json:"version_info_symbol"`
}

// DefaultConfig returns the configuration used when nothing overrides it.
func DefaultConfig() Config {
	return Config{
		ModuleName:        defaultModuleName(runtime.GOOS),
		InitializeSymbol:  DefaultInitializeSymbol,
		VersionInfoSymbol: DefaultVersionInfoSymbol,
	}
}

func defaultModuleName(goos string) string {
	switch goos {
	case "windows":
		return "ManagedDotnetGC.dll"
	case "darwin":
		return "libManagedDotnetGC.dylib"
	default:
		return "libManagedDotnetGC.so"
	}
}

// Validate returns an error if any field is empty.
func (c Config) Validate() error {
	var errs []error
	if c.ModuleName == "" {
		errs = append(errs, errors.New("module name is empty"))
	}
	if c.InitializeSymbol == "" {
		errs = append(errs, errors.New("initialize symbol name is empty"))
	}
	if c.VersionInfoSymbol == "" {
		errs = append(errs, errors.New("version info symbol name is empty"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid gc shim configuration: %w", errors.Join(errs...))
	}
	return nil
}

func (c Config) symbols() bindings.Symbols {
	return bindings.Symbols{
		Initialize:  c.InitializeSymbol,
		VersionInfo: c.VersionInfoSymbol,
	}
}

// merge overwrites the fields of c with the non-empty fields of other.
func (c Config) merge(other Config) Config {
	if other.ModuleName != "" {
		c.ModuleName = other.ModuleName
	}
	if other.InitializeSymbol != "" {
		c.InitializeSymbol = other.InitializeSymbol
	}
	if other.VersionInfoSymbol != "" {
		c.VersionInfoSymbol = other.VersionInfoSymbol
	}
	return c
}

var configJSON = jsoniter.Config{
	EscapeHTML:             true,
	DisallowUnknownFields:  true,
	ValidateJsonRawMessage: true,
}.Froze()

// LoadConfigFile reads a JSON configuration file on top of [DefaultConfig].
// Fields absent from the file keep their default value.
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("error reading gc shim configuration file: %w", err)
	}

	var fromFile Config
	if err := configJSON.Unmarshal(data, &fromFile); err != nil {
		return Config{}, fmt.Errorf("error parsing gc shim configuration file %q: %w", path, err)
	}

	return DefaultConfig().merge(fromFile), nil
}

// ConfigFromEnv builds the configuration from [DefaultConfig], then the file
// named by GCSHIM_CONFIG if set, then the individual GCSHIM_* variables.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if path := os.Getenv(EnvConfigFile); path != "" {
		var err error
		if cfg, err = LoadConfigFile(path); err != nil {
			return Config{}, err
		}
	}

	return cfg.merge(Config{
		ModuleName:        os.Getenv(EnvModule),
		InitializeSymbol:  os.Getenv(EnvInitializeSymbol),
		VersionInfoSymbol: os.Getenv(EnvVersionInfoSymbol),
	}), nil
}
