// Copyright 2025 The TigerBeetle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
	"github.com/google/subcommands"
	"github.com/mattn/go-isatty"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/ippsav/tigerbeetle/tools/pybind"
	"github.com/ippsav/tigerbeetle/tools/pybind/backends/python"
	"github.com/ippsav/tigerbeetle/tools/pybind/statemachine"
)

type generateCommand struct {
	// Path of the generated Python source file.
	output string

	// Optional YAML file overriding the default Python-side names and
	// skip lists.
	config string

	// Python module the generated code imports its runtime support from.
	runtimeModule string
}

func (generateCommand) Name() string {
	return "generate"
}

func (generateCommand) Synopsis() string {
	return "generate the Python client bindings"
}

func (generateCommand) Usage() string {
	return `
generate -output $BINDINGS_PY [-config $CONFIG_YAML] [-runtime-module $MODULE]
`
}

func (cmd *generateCommand) SetFlags(f *flag.FlagSet) {
	f.StringVar(&cmd.output, "output", "", "path of the generated Python source file")
	f.StringVar(&cmd.config, "config", "", "YAML file overriding Python-side names and skip lists")
	f.StringVar(&cmd.runtimeModule, "runtime-module", "", "Python module providing the generated code's runtime support")
}

func (cmd *generateCommand) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !isatty.IsTerminal(os.Stderr.Fd()) {
		color.NoColor = true
	}
	if err := cmd.execute(ctx); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "pybind: %v\n", err)
		if cmd.output == "" {
			return subcommands.ExitUsageError
		}
		return subcommands.ExitFailure
	}
	color.New(color.FgGreen).Fprintf(os.Stderr, "pybind: wrote %s\n", cmd.output)
	return subcommands.ExitSuccess
}

// configFile is the YAML override format. Types are referred to by their
// native names; domain entries rename the generated Python classes, skip
// entries extend the default skip lists.
type configFile struct {
	Output        string              `yaml:"output"`
	RuntimeModule string              `yaml:"runtime_module"`
	Domain        []configBinding     `yaml:"domain"`
	Skip          map[string][]string `yaml:"skip"`
}

type configBinding struct {
	Type string `yaml:"type"`
	Name string `yaml:"name"`
}

func (cmd *generateCommand) execute(ctx context.Context) error {
	domain := statemachine.Bindings()
	skips := statemachine.SkipLists()

	if cmd.config != "" {
		raw, err := os.ReadFile(cmd.config)
		if err != nil {
			return err
		}
		var cf configFile
		if err := yaml.Unmarshal(raw, &cf); err != nil {
			return fmt.Errorf("%s: %w", cmd.config, err)
		}
		if cmd.output == "" {
			cmd.output = cf.Output
		}
		if cmd.runtimeModule == "" {
			cmd.runtimeModule = cf.RuntimeModule
		}
		for _, override := range cf.Domain {
			typ, ok := statemachine.TypeByName(override.Type)
			if !ok {
				return fmt.Errorf("%s: unknown type %q", cmd.config, override.Type)
			}
			renamed := false
			for i := range domain {
				if domain[i].Type == typ {
					domain[i].Name = override.Name
					renamed = true
					break
				}
			}
			if !renamed {
				return fmt.Errorf("%s: type %q has no default binding to rename", cmd.config, override.Type)
			}
		}
		// Merge skip overrides in a stable order so failures reproduce.
		typeNames := maps.Keys(cf.Skip)
		slices.Sort(typeNames)
		for _, name := range typeNames {
			typ, ok := statemachine.TypeByName(name)
			if !ok {
				return fmt.Errorf("%s: unknown type %q", cmd.config, name)
			}
			skips[typ] = append(slices.Clone(skips[typ]), cf.Skip[name]...)
		}
	}

	if cmd.output == "" {
		return fmt.Errorf("-output is required")
	}

	gen := python.NewGenerator(python.Config{
		Domain:        domain,
		OperationEnum: statemachine.OperationType,
		Operations:    statemachine.Operations(),
		Skips:         skips,
		RuntimeModule: cmd.runtimeModule,
	})
	contents, err := gen.Generate()
	if err != nil {
		return err
	}
	return pybind.WriteFileIfChanged(cmd.output, contents)
}
