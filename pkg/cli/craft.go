/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/gridcraft/gridcraft/pkg/defaults"
	"github.com/gridcraft/gridcraft/pkg/errors"
	"github.com/gridcraft/gridcraft/pkg/grid"
	"github.com/gridcraft/gridcraft/pkg/header"
	"github.com/gridcraft/gridcraft/pkg/item"
	"github.com/gridcraft/gridcraft/pkg/registry"
	"github.com/gridcraft/gridcraft/pkg/serializer"
)

// CraftReport is the document written by the craft command.
type CraftReport struct {
	header.Header `json:",inline" yaml:",inline"`

	Actor string        `json:"actor,omitempty" yaml:"actor,omitempty"`
	Grids []GridOutcome `json:"grids" yaml:"grids"`
}

// GridOutcome is the result of crafting one grid file.
type GridOutcome struct {
	Path    string     `json:"path" yaml:"path"`
	Crafted int        `json:"crafted" yaml:"crafted"`
	Outputs []string   `json:"outputs,omitempty" yaml:"outputs,omitempty"`
	Recipe  string     `json:"recipe,omitempty" yaml:"recipe,omitempty"`
	Match   *MatchInfo `json:"match,omitempty" yaml:"match,omitempty"`
	Before  grid.Spec  `json:"before" yaml:"before"`
	After   grid.Spec  `json:"after" yaml:"after"`
}

// MatchInfo is where the first crafted recipe was found in the grid.
type MatchInfo struct {
	OffsetX  int  `json:"offsetX" yaml:"offsetX"`
	OffsetY  int  `json:"offsetY" yaml:"offsetY"`
	Mirrored bool `json:"mirrored,omitempty" yaml:"mirrored,omitempty"`
}

// TableHeader implements serializer.Tabular.
func (r *CraftReport) TableHeader() []string {
	return []string{"GRID", "CRAFTED", "OUTPUTS", "MATCH", "AFTER"}
}

// TableRows implements serializer.Tabular.
func (r *CraftReport) TableRows() [][]string {
	rows := make([][]string, 0, len(r.Grids))
	for _, g := range r.Grids {
		match := "-"
		if g.Match != nil {
			match = fmt.Sprintf("%d,%d", g.Match.OffsetX, g.Match.OffsetY)
			if g.Match.Mirrored {
				match += " mirrored"
			}
		}
		after := "-"
		if m, err := grid.FromSpec(g.After); err == nil {
			after = strings.ReplaceAll(m.String(), "\n", " / ")
		}
		rows = append(rows, []string{g.Path, strconv.Itoa(g.Crafted), strings.Join(g.Outputs, " "), match, after})
	}
	return rows
}

// craftGrid crafts m up to times times, stopping at the first failed craft.
func craftGrid(ctx context.Context, reg *registry.Registry, path string, m *grid.Matrix, actor item.Actor, times int) (GridOutcome, error) {
	out := GridOutcome{Path: path, Before: m.Spec()}
	for range times {
		if err := ctx.Err(); err != nil {
			return out, fmt.Errorf("crafting %q cancelled: %w", path, err)
		}
		res, ok := reg.Craft(m, actor)
		if !ok {
			break
		}
		if out.Crafted == 0 {
			out.Recipe = res.Template.ScriptString()
			out.Match = &MatchInfo{
				OffsetX:  res.Match.OffsetX,
				OffsetY:  res.Match.OffsetY,
				Mirrored: res.Match.Mirrored,
			}
		}
		out.Crafted++
		out.Outputs = append(out.Outputs, res.Output.Describe())
	}
	out.After = m.Spec()

	slog.Debug("grid crafted", "path", path, "crafted", out.Crafted)
	return out, nil
}

// loadGrid reads a grid file in any supported serialization format.
func loadGrid(path string) (*grid.Matrix, error) {
	spec, err := serializer.FromFile[grid.Spec](path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest, fmt.Sprintf("failed to read grid %q", path), err)
	}
	m, err := grid.FromSpec(*spec)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest, fmt.Sprintf("invalid grid %q", path), err)
	}
	return m, nil
}

// craftAll crafts every grid file concurrently. Each goroutine owns its grid.
func craftAll(ctx context.Context, reg *registry.Registry, paths []string, actor item.Actor, times, parallel int) ([]GridOutcome, error) {
	outcomes := make([]GridOutcome, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)

	for i, p := range paths {
		g.Go(func() error {
			m, err := loadGrid(p)
			if err != nil {
				return err
			}
			o, err := craftGrid(ctx, reg, p, m, actor, times)
			if err != nil {
				return err
			}
			outcomes[i] = o
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}

func craftCmd() *cli.Command {
	return &cli.Command{
		Name:                  "craft",
		EnableShellCompletion: true,
		Usage:                 "Craft grid files against the recipes registered by the scripts",
		Description: `Run the given Lua scripts, then craft each grid file the way the host engine
does: the first recipe matching the grid produces the output, transforming
ingredients leave their leftovers and every other ingredient is consumed.

Grid files are YAML or JSON:

  width: 3
  height: 3
  rows:
    - [minecraft:coal, null, null]
    - [minecraft:stick, null, null]

Cells are item ids with an optional amount and durability
(minecraft:stick*4, minecraft:iron_pickaxe@10/250).

The report can be output in JSON, YAML, or table format.`,
		Flags: append(scriptFlags(),
			&cli.StringSliceFlag{
				Name:     "grid",
				Aliases:  []string{"g"},
				Usage:    "Grid file to craft, can be repeated",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "actor",
				Usage: "Name of the player performing the craft (default: automated crafting)",
			},
			&cli.IntFlag{
				Name:  "repeat",
				Usage: "Craft each grid up to this many times, stopping when it no longer crafts",
				Value: 1,
			},
			&cli.IntFlag{
				Name:  "parallel",
				Usage: "Number of grids crafted concurrently",
				Value: defaults.MaxConcurrentGrids,
			},
			&cli.DurationFlag{
				Name:  "craft-timeout",
				Usage: "Time limit for crafting all grids",
				Value: defaults.CraftTimeout,
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := parseOutputFormat(cmd); err != nil {
				return err
			}

			times := int(cmd.Int("repeat"))
			if times < 1 {
				return errors.New(errors.ErrCodeInvalidRequest, fmt.Sprintf("repeat must be at least 1, got %d", times))
			}
			parallel := int(cmd.Int("parallel"))
			if parallel < 1 {
				return errors.New(errors.ErrCodeInvalidRequest, fmt.Sprintf("parallel must be at least 1, got %d", parallel))
			}

			ld, err := loadScripts(ctx, cmd)
			if err != nil {
				return err
			}

			var actor item.Actor
			if name := cmd.String("actor"); name != "" {
				actor = item.NamedActor(name)
			}

			craftCtx, cancel := context.WithTimeout(ctx, cmd.Duration("craft-timeout"))
			defer cancel()
			ld.engine.SetCraftContext(craftCtx)

			outcomes, err := craftAll(craftCtx, ld.registry, cmd.StringSlice("grid"), actor, times, parallel)
			if err != nil {
				return err
			}

			report := &CraftReport{Actor: cmd.String("actor"), Grids: outcomes}
			ld.stamp(&report.Header, header.KindCraftReport)

			return write(ctx, cmd, report)
		},
	}
}
