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
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"
	"sigs.k8s.io/release-utils/version"

	"github.com/ianlewis/go-pinyin/vocab"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError

	// ExitCodeInvalid is the exit code when a syllable fails validation.
	ExitCodeInvalid
)

// ErrPinyin is a parent error for all command errors.
var ErrPinyin = errors.New("pinyin")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrPinyin)

// ErrInvalid indicates that one or more syllables are not valid Pinyin.
var ErrInvalid = fmt.Errorf("%w: invalid syllables", ErrPinyin)

var copyrightNames = []string{
	"2025 Ian Lewis",
}

func onUsageError(_ *cli.Context, err error, _ bool) error {
	return fmt.Errorf("%w: %w", ErrFlagParse, err)
}

func newPinyinApp() *cli.App {
	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Convert and validate Pinyin syllables.",
		Description: strings.Join([]string{
			"Pinyin tone conversion utility written in Go.",
			"Syllables are read from the arguments or, if none are given, from",
			"standard input separated by whitespace.",
			"http://github.com/ianlewis/go-pinyin",
		}, "\n"),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:               "version",
				Usage:              "print version information and exit",
				Aliases:            []string{"V"},
				DisableDefaultText: true,
			},
		},
		Copyright:       strings.Join(copyrightNames, "\n"),
		HideHelpCommand: true,
		OnUsageError:    onUsageError,
		Action: func(c *cli.Context) error {
			if c.Bool("version") {
				return printVersion(c)
			}

			return cli.ShowAppHelp(c)
		},
		Commands: []*cli.Command{
			numberCommand,
			diacriticCommand,
			removeCommand,
			stripCommand,
			cedictCommand,
			validateCommand,
		},
	}
}

func printVersion(c *cli.Context) error {
	versionInfo := version.GetVersionInfo()

	_, err := fmt.Fprintf(c.App.Writer, "%s %s\n%s\n\n%s",
		c.App.Name,
		versionInfo.GitVersion,
		c.App.Copyright,
		versionInfo.String(),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPinyin, err)
	}
	return nil
}

// syllables returns the syllables given as arguments or read from the app's
// reader if there are no arguments.
func syllables(c *cli.Context) ([]string, error) {
	if c.Args().Present() {
		return c.Args().Slice(), nil
	}

	var r io.Reader = os.Stdin
	if c.App.Reader != nil {
		r = c.App.Reader
	}

	var result []string
	s := vocab.NewScanner(r)
	for s.Scan() {
		result = append(result, s.Syllable())
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading input: %w", ErrPinyin, err)
	}
	return result, nil
}
