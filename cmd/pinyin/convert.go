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

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-pinyin"
)

var numberCommand = newConvertCommand(
	"number",
	"convert diacritic notation to numeric notation (nǐ → ni3)",
	pinyin.DiacriticToNumberAll,
)

var diacriticCommand = newConvertCommand(
	"diacritic",
	"convert numeric notation to diacritic notation (ni3 → nǐ)",
	pinyin.NumberToDiacriticAll,
)

var removeCommand = newConvertCommand(
	"remove",
	"remove tone marks, keeping case and tone numbers (Nǚ3 → Nv3)",
	pinyin.RemoveToneAll,
)

var stripCommand = newConvertCommand(
	"strip",
	"remove tone marks and tone numbers (Nǚ3 → nv)",
	pinyin.StripToneAll,
)

var cedictCommand = newConvertCommand(
	"cedict",
	"convert numeric notation to CC-CEDICT style (nv3 → nu:3)",
	pinyin.ToCedictAll,
)

// newConvertCommand returns a command that converts each syllable with f and
// prints the results one per line.
func newConvertCommand(name, usage string, f func([]string) []string) *cli.Command {
	return &cli.Command{
		Name:         name,
		Usage:        usage,
		ArgsUsage:    "[SYLLABLE]...",
		OnUsageError: onUsageError,
		Action: func(c *cli.Context) error {
			input, err := syllables(c)
			if err != nil {
				return err
			}

			for _, s := range f(input) {
				if _, err := fmt.Fprintln(c.App.Writer, s); err != nil {
					return fmt.Errorf("%w: %w", ErrPinyin, err)
				}
			}
			return nil
		},
	}
}
