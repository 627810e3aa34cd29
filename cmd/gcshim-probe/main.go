// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

// Command gcshim-probe loads a GC module the way the gcshim library would and
// queries its version, without starting a host runtime.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	gcshim "github.com/DataDog/go-gcshim"
	"github.com/DataDog/go-gcshim/gcerrors"
	"github.com/DataDog/go-gcshim/internal/log"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

type report struct {
	Module  string         `json:"module"`
	State   string         `json:"state"`
	Status  string         `json:"status"`
	Error   string         `json:"error,omitempty"`
	Version string         `json:"version,omitempty"`
	Metrics map[string]any `json:"metrics"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, out io.Writer) int {
	flags := flag.NewFlagSet("gcshim-probe", flag.ContinueOnError)
	var (
		configFile    = flags.String("config", "", "JSON configuration file, replaces the GCSHIM_* environment variables")
		module        = flags.String("module", "", "GC module to load, overrides the configuration")
		initSymbol    = flags.String("initialize-symbol", "", "initialize entry point, overrides the configuration")
		versionSymbol = flags.String("version-symbol", "", "version entry point, overrides the configuration")
		logLevel      = flags.String("log-level", "warn", "log level (trace, debug, info, warn, error, off)")
		asJSON        = flags.Bool("json", false, "print the report as JSON")
	)
	if err := flags.Parse(args); err != nil {
		return 2
	}

	log.SetLevel(log.LevelNamed(*logLevel))
	defer func() { _ = log.Logger().Sync() }()

	// Without -config, resolve the module exactly like the library does.
	var (
		cfg gcshim.Config
		err error
	)
	if *configFile != "" {
		cfg, err = gcshim.LoadConfigFile(*configFile)
	} else {
		cfg, err = gcshim.ConfigFromEnv()
	}
	if err != nil {
		log.Logger().Error("could not read configuration", zap.Error(err))
		return 1
	}
	if *module != "" {
		cfg.ModuleName = *module
	}
	if *initSymbol != "" {
		cfg.InitializeSymbol = *initSymbol
	}
	if *versionSymbol != "" {
		cfg.VersionInfoSymbol = *versionSymbol
	}

	rep, ok := probe(gcshim.New(cfg, gcshim.WithUnloadOnDetach()))
	if err := write(out, rep, *asJSON); err != nil {
		log.Logger().Error("could not write report", zap.Error(err))
		return 1
	}
	if !ok {
		return 1
	}
	return 0
}

func probe(shim *gcshim.Shim) (report, bool) {
	rep := report{Module: shim.Config().ModuleName}

	err := shim.Attach()
	if err == nil {
		var version gcshim.VersionInfo
		if version, err = shim.Version(); err == nil {
			rep.Version = version.String()
		}
	}

	rep.State = shim.State().String()
	rep.Status = gcerrors.HResultOf(err).String()
	if err != nil {
		rep.Error = err.Error()
	}
	rep.Metrics = shim.Stats().Metrics()

	if detachErr := shim.Detach(); detachErr != nil {
		log.Logger().Warn("error unloading GC module", zap.Error(detachErr))
	}
	return rep, err == nil
}

func write(out io.Writer, rep report, asJSON bool) error {
	if asJSON {
		stream := jsoniter.ConfigCompatibleWithStandardLibrary.BorrowStream(out)
		defer jsoniter.ConfigCompatibleWithStandardLibrary.ReturnStream(stream)
		stream.WriteVal(rep)
		stream.WriteRaw("\n")
		return stream.Flush()
	}

	if _, err := fmt.Fprintf(out, "module:  %s\nstate:   %s\nstatus:  %s\n", rep.Module, rep.State, rep.Status); err != nil {
		return err
	}
	if rep.Version != "" {
		if _, err := fmt.Fprintf(out, "version: %s\n", rep.Version); err != nil {
			return err
		}
	}
	if rep.Error != "" {
		if _, err := fmt.Fprintf(out, "error:   %s\n", rep.Error); err != nil {
			return err
		}
	}
	return nil
}
