/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/gridcraft/gridcraft/pkg/header"
	"github.com/gridcraft/gridcraft/pkg/host"
	"github.com/gridcraft/gridcraft/pkg/item"
	"github.com/gridcraft/gridcraft/pkg/registry"
)

// ConversionReport is the document written by the convert command.
type ConversionReport struct {
	header.Header `json:",inline" yaml:",inline"`

	Recipes []Conversion `json:"recipes" yaml:"recipes"`
}

// Conversion is the host-native form of one recipe. Only the fields of the
// native kind are set; dynamic recipes carry none.
type Conversion struct {
	Index    int               `json:"index" yaml:"index"`
	Kind     string            `json:"kind" yaml:"kind"`
	Tier     string            `json:"tier" yaml:"tier"`
	Output   string            `json:"output" yaml:"output"`
	Width    int               `json:"width,omitempty" yaml:"width,omitempty"`
	Height   int               `json:"height,omitempty" yaml:"height,omitempty"`
	Mirrored bool              `json:"mirrored,omitempty" yaml:"mirrored,omitempty"`
	Pattern  []string          `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	Keys     map[string]string `json:"keys,omitempty" yaml:"keys,omitempty"`
	Items    []string          `json:"items,omitempty" yaml:"items,omitempty"`
	Inputs   []string          `json:"inputs,omitempty" yaml:"inputs,omitempty"`
}

// TableHeader implements serializer.Tabular.
func (r *ConversionReport) TableHeader() []string {
	return []string{"#", "KIND", "TIER", "OUTPUT", "NATIVE"}
}

// TableRows implements serializer.Tabular.
func (r *ConversionReport) TableRows() [][]string {
	rows := make([][]string, 0, len(r.Recipes))
	for _, c := range r.Recipes {
		rows = append(rows, []string{strconv.Itoa(c.Index), c.Kind, c.Tier, c.Output, c.native()})
	}
	return rows
}

// native renders the native contents on one line.
func (c *Conversion) native() string {
	switch {
	case len(c.Pattern) > 0:
		keys := make([]string, 0, len(c.Keys))
		for _, k := range slices.Sorted(maps.Keys(c.Keys)) {
			keys = append(keys, k+"="+c.Keys[k])
		}
		return strings.Join(c.Pattern, "/") + " " + strings.Join(keys, " ")
	case len(c.Items) > 0:
		return strings.Join(c.Items, " ")
	case len(c.Inputs) > 0:
		return strings.Join(c.Inputs, " ")
	default:
		return "-"
	}
}

func newConversionReport(reg *registry.Registry) *ConversionReport {
	entries := reg.Entries()
	r := &ConversionReport{Recipes: make([]Conversion, 0, len(entries))}
	for i, e := range entries {
		c := Conversion{
			Index:  i,
			Kind:   host.Kind(e.Recipe),
			Tier:   e.Tier.String(),
			Output: e.Recipe.RecipeOutput().Describe(),
		}
		describeNative(&c, e.Recipe)
		r.Recipes = append(r.Recipes, c)
	}
	return r
}

// describeNative copies the native fields of hr into c.
func describeNative(c *Conversion, hr host.Recipe) {
	switch r := hr.(type) {
	case *host.ShapedBasic:
		describeShapedRecipes(c, &r.ShapedRecipes)
	case *host.ShapedRecipes:
		describeShapedRecipes(c, r)
	case *host.ShapedOre:
		describeShapedOre(c, &r.ShapedOreRecipe)
	case *host.ShapedOreRecipe:
		describeShapedOre(c, r)
	case *host.ShapelessBasic:
		describeShapeless(c, &r.ShapelessRecipes)
	case *host.ShapelessRecipes:
		describeShapeless(c, r)
	case *host.ShapelessOre:
		describeShapelessOre(c, &r.ShapelessOreRecipe)
	case *host.ShapelessOreRecipe:
		describeShapelessOre(c, r)
	case host.Adapter:
		c.Width, c.Height = r.DeclaredWidth(), r.DeclaredHeight()
	}
}

func describeShapedRecipes(c *Conversion, r *host.ShapedRecipes) {
	c.Width, c.Height = r.Width, r.Height
	c.Items = make([]string, len(r.Items))
	for i, s := range r.Items {
		c.Items[i] = stackText(s)
	}
}

func describeShapedOre(c *Conversion, r *host.ShapedOreRecipe) {
	c.Width, c.Height = r.Width, r.Height
	c.Mirrored = r.Mirrored
	c.Pattern = slices.Clone(r.Pattern)
	c.Keys = make(map[string]string, len(r.Keys))
	for k, in := range r.Keys {
		c.Keys[k] = in.String()
	}
}

func describeShapeless(c *Conversion, r *host.ShapelessRecipes) {
	c.Inputs = make([]string, len(r.Items))
	for i, s := range r.Items {
		c.Inputs[i] = s.Describe()
	}
}

func describeShapelessOre(c *Conversion, r *host.ShapelessOreRecipe) {
	c.Inputs = make([]string, len(r.Inputs))
	for i, in := range r.Inputs {
		c.Inputs[i] = in.String()
	}
}

func stackText(s *item.Stack) string {
	if s == nil {
		return "null"
	}
	return s.Describe()
}

func convertCmd() *cli.Command {
	return &cli.Command{
		Name:                  "convert",
		EnableShellCompletion: true,
		Usage:                 "Show the host-native representation of each registered recipe",
		Description: `Run the given Lua scripts and print the native form the host engine holds
for every recipe:
  - Exact-item recipes as a dense item table
  - Tagged recipes as a symbol pattern with keys
  - Dynamic recipes with no native contents

The report can be output in JSON, YAML, or table format.`,
		Flags: scriptFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := parseOutputFormat(cmd); err != nil {
				return err
			}

			ld, err := loadScripts(ctx, cmd)
			if err != nil {
				return err
			}

			report := newConversionReport(ld.registry)
			ld.stamp(&report.Header, header.KindConversionReport)

			return write(ctx, cmd, report)
		},
	}
}
