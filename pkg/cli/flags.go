/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/gridcraft/gridcraft/pkg/converter"
	"github.com/gridcraft/gridcraft/pkg/defaults"
	"github.com/gridcraft/gridcraft/pkg/errors"
	"github.com/gridcraft/gridcraft/pkg/header"
	"github.com/gridcraft/gridcraft/pkg/item"
	"github.com/gridcraft/gridcraft/pkg/recipe"
	"github.com/gridcraft/gridcraft/pkg/registry"
	"github.com/gridcraft/gridcraft/pkg/script"
	"github.com/gridcraft/gridcraft/pkg/serializer"
)

// scriptFlags returns the flags shared by every command that loads recipes.
func scriptFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:     "script",
			Aliases:  []string{"s"},
			Usage:    "Lua recipe script to run, can be repeated; scripts run in order",
			Required: true,
		},
		&cli.DurationFlag{
			Name:  "script-timeout",
			Usage: "Time limit for running all scripts",
			Value: defaults.ScriptTimeout,
		},
		&cli.BoolFlag{
			Name:  "trace",
			Usage: "Log every template built and output resolved at debug level",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output file path (default: stdout)",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"t"},
			Value:   defaults.OutputFormat,
			Usage:   fmt.Sprintf("Output format (supported values: %s)", strings.Join(serializer.SupportedFormats(), ", ")),
		},
	}
}

// parseOutputFormat validates the --format flag.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(cmd.String("format"))
	if f.IsUnknown() {
		return "", errors.New(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("unknown output format: %q, supported values: %s", f, strings.Join(serializer.SupportedFormats(), ", ")))
	}
	return f, nil
}

// loaded is the recipe list produced by running the scripts.
type loaded struct {
	dict     *item.Dictionary
	registry *registry.Registry
	engine   *script.Engine
	scripts  []string
}

// loadScripts runs every --script file against a fresh recipe list.
func loadScripts(ctx context.Context, cmd *cli.Command) (*loaded, error) {
	paths := cmd.StringSlice("script")
	if len(paths) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "at least one --script is required")
	}

	dict := item.NewDictionary()
	reg := registry.New(converter.New(dict))

	var opts []script.Option
	if cmd.Bool("trace") {
		opts = append(opts, script.WithObserver(recipe.LogObserver{}))
	}
	eng := script.New(reg, dict, opts...)

	ctx, cancel := context.WithTimeout(ctx, cmd.Duration("script-timeout"))
	defer cancel()

	for _, p := range paths {
		slog.Debug("running script", "path", p)
		if err := eng.Run(ctx, p); err != nil {
			return nil, fmt.Errorf("script %q failed: %w", p, err)
		}
	}

	slog.Info("scripts loaded", "scripts", len(paths), "recipes", reg.Len(), "actions", len(eng.Actions()))

	return &loaded{dict: dict, registry: reg, engine: eng, scripts: paths}, nil
}

// stamp initializes a document header for the loaded scripts.
func (ld *loaded) stamp(h *header.Header, kind header.Kind) {
	h.Init(kind, version)
	h.Set("scripts", strings.Join(ld.scripts, ","))
}

// write serializes v to the --output destination in the --format format.
func write(ctx context.Context, cmd *cli.Command, v any) error {
	format, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	ser := serializer.NewFileWriterOrStdout(format, cmd.String("output"))
	defer func() {
		if err := ser.Close(); err != nil {
			slog.Warn("failed to close serializer", "error", err)
		}
	}()

	return ser.Serialize(ctx, v)
}
