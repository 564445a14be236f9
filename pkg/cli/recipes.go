/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/gridcraft/gridcraft/pkg/header"
	"github.com/gridcraft/gridcraft/pkg/host"
	"github.com/gridcraft/gridcraft/pkg/registry"
)

// RecipeList is the document written by the recipes command.
type RecipeList struct {
	header.Header `json:",inline" yaml:",inline"`

	Recipes []RecipeInfo      `json:"recipes" yaml:"recipes"`
	Actions []registry.Action `json:"actions,omitempty" yaml:"actions,omitempty"`
}

// RecipeInfo describes one registered recipe.
type RecipeInfo struct {
	Index  int    `json:"index" yaml:"index"`
	Kind   string `json:"kind" yaml:"kind"`
	Tier   string `json:"tier" yaml:"tier"`
	Output string `json:"output" yaml:"output"`
	Script string `json:"script" yaml:"script"`
}

// TableHeader implements serializer.Tabular.
func (l *RecipeList) TableHeader() []string {
	return []string{"#", "KIND", "TIER", "OUTPUT", "SCRIPT"}
}

// TableRows implements serializer.Tabular.
func (l *RecipeList) TableRows() [][]string {
	rows := make([][]string, 0, len(l.Recipes))
	for _, r := range l.Recipes {
		rows = append(rows, []string{strconv.Itoa(r.Index), r.Kind, r.Tier, r.Output, r.Script})
	}
	return rows
}

func newRecipeList(reg *registry.Registry, actions []registry.Action) *RecipeList {
	entries := reg.Entries()
	l := &RecipeList{
		Recipes: make([]RecipeInfo, 0, len(entries)),
		Actions: actions,
	}
	for i, e := range entries {
		l.Recipes = append(l.Recipes, RecipeInfo{
			Index:  i,
			Kind:   host.Kind(e.Recipe),
			Tier:   e.Tier.String(),
			Output: e.Template.Output().Describe(),
			Script: e.Template.ScriptString(),
		})
	}
	return l
}

func recipesCmd() *cli.Command {
	return &cli.Command{
		Name:                  "recipes",
		EnableShellCompletion: true,
		Usage:                 "List the recipes registered by one or more scripts",
		Description: `Run the given Lua scripts and list every recipe left in the recipe list,
in list order, including:
  - The host-native kind chosen for the recipe
  - Its specificity tier (exact, tagged, dynamic)
  - The recipe rendered back as a script statement

Use --actions to include the add/remove actions the scripts performed.

The list can be output in JSON, YAML, or table format.`,
		Flags: append(scriptFlags(),
			&cli.BoolFlag{
				Name:  "actions",
				Usage: "Include the actions performed by the scripts",
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := parseOutputFormat(cmd); err != nil {
				return err
			}

			ld, err := loadScripts(ctx, cmd)
			if err != nil {
				return err
			}

			var actions []registry.Action
			if cmd.Bool("actions") {
				actions = ld.engine.Actions()
			}

			list := newRecipeList(ld.registry, actions)
			ld.stamp(&list.Header, header.KindRecipeList)

			return write(ctx, cmd, list)
		},
	}
}
