// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cli

import (
	"context"
	"testing"

	"github.com/urfave/cli/v3"

	"github.com/gridcraft/gridcraft/pkg/errors"
	"github.com/gridcraft/gridcraft/pkg/host"
	"github.com/gridcraft/gridcraft/pkg/item"
	"github.com/gridcraft/gridcraft/pkg/serializer"
)

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		name       string
		format     string
		wantFormat serializer.Format
		wantErr    bool
	}{
		{name: "yaml", format: "yaml", wantFormat: serializer.FormatYAML},
		{name: "json", format: "json", wantFormat: serializer.FormatJSON},
		{name: "table", format: "table", wantFormat: serializer.FormatTable},
		{name: "xml", format: "xml", wantErr: true},
		{name: "upper case", format: "JSON", wantErr: true},
		{name: "empty", format: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &cli.Command{
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "format", Value: tt.format},
				},
				Action: func(_ context.Context, c *cli.Command) error {
					got, err := parseOutputFormat(c)
					if (err != nil) != tt.wantErr {
						t.Errorf("parseOutputFormat() error = %v, wantErr %v", err, tt.wantErr)
						return nil
					}
					if tt.wantErr {
						if !errors.IsCode(err, errors.ErrCodeInvalidRequest) {
							t.Errorf("parseOutputFormat() error code, got %v", err)
						}
						return nil
					}
					if got != tt.wantFormat {
						t.Errorf("parseOutputFormat() = %v, want %v", got, tt.wantFormat)
					}
					return nil
				},
			}

			if err := cmd.Run(context.Background(), []string{"test"}); err != nil {
				t.Fatalf("failed to run command: %v", err)
			}
		})
	}
}

func TestDescribeNative(t *testing.T) {
	coal := item.New("minecraft:coal")
	stick := item.New("minecraft:stick")

	tests := []struct {
		name   string
		recipe host.Recipe
		want   string
	}{
		{
			name: "dense items",
			recipe: &host.ShapedRecipes{
				Width: 1, Height: 2,
				Items:  []*item.Stack{coal.Ptr(), nil},
				Output: item.New("minecraft:torch"),
			},
			want: "minecraft:coal null",
		},
		{
			name: "pattern",
			recipe: &host.ShapedOreRecipe{
				Width: 2, Height: 1,
				Pattern: []string{"AB"},
				Keys: map[string]host.Input{
					"B": {Ore: "plankWood"},
					"A": {Item: stick.Ptr()},
				},
			},
			want: "AB A=<minecraft:stick> B=<ore:plankWood>",
		},
		{
			name:   "shapeless items",
			recipe: &host.ShapelessRecipes{Items: []item.Stack{coal, stick.WithAmount(2)}},
			want:   "minecraft:coal minecraft:stick*2",
		},
		{
			name:   "shapeless inputs",
			recipe: &host.ShapelessOreRecipe{Inputs: []host.Input{{Ore: "dyeRed"}}},
			want:   "<ore:dyeRed>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Conversion
			describeNative(&c, tt.recipe)
			if got := c.native(); got != tt.want {
				t.Errorf("native() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDescribeNativeDynamic(t *testing.T) {
	var c Conversion
	describeNative(&c, unknownRecipe{})
	if got := c.native(); got != "-" {
		t.Errorf("native() = %q, want -", got)
	}
}

type unknownRecipe struct{}

func (unknownRecipe) RecipeOutput() item.Stack { return item.New("mod:mystery") }
func (unknownRecipe) RecipeSize() int          { return 0 }
