// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-pinyin"
)

var validateCommand = &cli.Command{
	Name:      "validate",
	Usage:     "check that syllables are standard Pinyin in diacritic notation",
	ArgsUsage: "[SYLLABLE]...",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:               "allow-unused",
			Usage:              "accept valid syllables with tones no character uses",
			Aliases:            []string{"u"},
			DisableDefaultText: true,
		},
		&cli.StringSliceFlag{
			Name:    "include",
			Usage:   "always accept `SYLLABLE`",
			Aliases: []string{"i"},
		},
		&cli.StringSliceFlag{
			Name:    "exclude",
			Usage:   "never accept `SYLLABLE`",
			Aliases: []string{"x"},
		},
	},
	OnUsageError: onUsageError,
	Action: func(c *cli.Context) error {
		input, err := syllables(c)
		if err != nil {
			return err
		}

		v := pinyin.NewValidator(&pinyin.ValidOptions{
			AllowUnused: c.Bool("allow-unused"),
			Include:     c.StringSlice("include"),
			Exclude:     c.StringSlice("exclude"),
		})

		tbl := table.New("Syllable", "Valid").WithWriter(c.App.Writer)
		invalid := 0
		for i, ok := range v.ValidAll(input) {
			if !ok {
				invalid++
			}
			tbl.AddRow(input[i], ok)
		}
		tbl.Print()

		if invalid > 0 {
			return fmt.Errorf("%w: %d of %d", ErrInvalid, invalid, len(input))
		}
		return nil
	},
}
