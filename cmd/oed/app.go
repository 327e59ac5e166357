// Copyright 2025 Ian Lewis
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

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	oed "github.com/ianlewis/go-oed"
	"github.com/ianlewis/go-oed/internal/logging"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeNotFound is the exit code for a query without results.
	ExitCodeNotFound

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError
)

// metaFile is the name of the corpus metadata file in a data directory.
const metaFile = "oed.yaml"

// ErrOED is a parent error for all command errors.
var ErrOED = errors.New("oed")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrOED)

// ErrNoCorpus indicates that no corpus was found in the data directories.
var ErrNoCorpus = fmt.Errorf("%w: no corpus found", ErrOED)

// ErrInvalidSelection indicates that a candidate selection was not understood.
var ErrInvalidSelection = fmt.Errorf("%w: invalid selection", ErrOED)

var copyrightNames = []string{
	"2021 Google LLC",
	"2025 Ian Lewis",
}

//nolint:gochecknoinits // init needed needed for global variable.
func init() {
	// Set the HelpFlag to a random name so that it isn't used. `cli` handles
	// the flag with the root command such that it takes a command name argument
	// but the query is a positional argument.
	//
	// This is done because `oed --help foo` will display a
	// "command foo not found" error instead of the help.
	//
	// This flag is hidden by the help output.
	// See: github.com/urfave/cli/issues/1809
	cli.HelpFlag = &cli.BoolFlag{
		// NOTE: Use a random name no one would guess.
		Name:               "d41d8cd98f00b204e980",
		DisableDefaultText: true,
	}
}

// check checks the error and panics if not nil.
func check(err error) {
	if err != nil {
		panic(err)
	}
}

// exitCode maps an error returned by the app to a process exit code.
func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitCodeSuccess
	case errors.Is(err, ErrFlagParse):
		return ExitCodeFlagParseError
	case errors.Is(err, oed.ErrNotFound):
		return ExitCodeNotFound
	default:
		return ExitCodeUnknownError
	}
}

func newLogger(c *cli.Context) *slog.Logger {
	return slog.New(slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{
		Level: logging.ParseLevel(c.String("log")),
	}))
}

// findCorpus returns the path to the first corpus metadata file found in
// dirs. An entry in dirs may also name a metadata file directly.
func findCorpus(dirs []string) (string, error) {
	for _, dir := range dirs {
		fi, err := os.Stat(dir)
		if err != nil {
			continue
		}
		if !fi.IsDir() {
			return dir, nil
		}
		path := filepath.Join(dir, metaFile)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: searched %s", ErrNoCorpus, strings.Join(dirs, ", "))
}

func openCorpus(c *cli.Context, logger *slog.Logger) (*oed.Corpus, error) {
	path, err := findCorpus(c.StringSlice("data-dir"))
	if err != nil {
		return nil, err
	}
	logger.Debug("opening corpus", "path", path)

	corpus, err := oed.Open(path, &oed.Options{
		Logger:       logger,
		StopAfterRun: c.Bool("stop-after-run"),
	})
	if err != nil {
		return nil, fmt.Errorf("opening corpus: %w", err)
	}
	return corpus, nil
}

func newOEDApp() *cli.App {
	return &cli.App{
		Name:      filepath.Base(os.Args[0]),
		Usage:     "Search the Oxford English Dictionary.",
		ArgsUsage: "[QUERY]",
		Description: strings.Join([]string{
			"Offline Oxford English Dictionary (2nd ed.) lookup written in Go.",
			"http://github.com/ianlewis/go-oed",
		}, "\n"),
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "data-dir",
				Usage:   "search for the corpus in `DIR`",
				Aliases: []string{"d"},
				EnvVars: []string{"OED_DATA_DIR"},
				Value:   cli.NewStringSlice(dictLocations()...),
			},
			&cli.BoolFlag{
				Name:               "interactive",
				Usage:              "query repeatedly and page entries with less",
				Aliases:            []string{"i"},
				DisableDefaultText: true,
			},
			&cli.IntFlag{
				Name:        "width",
				Usage:       "wrap entries to `COLUMNS` (interactive default: terminal width - 10)",
				Aliases:     []string{"w"},
				DefaultText: "no wrapping",
			},
			&cli.BoolFlag{
				Name:               "plain",
				Usage:              "print entries without colors",
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "stop-after-run",
				Usage:              "stop searching after the first run of matching headwords",
				DisableDefaultText: true,
			},
			&cli.StringFlag{
				Name:  "log",
				Usage: "set the logging `LEVEL` (debug, info, warn, error)",
				Value: "warn",
			},

			// Special flags are shown at the end.
			&cli.BoolFlag{
				Name:               "help",
				Usage:              "print this help text and exit",
				Aliases:            []string{"h"},
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "version",
				Usage:              "print version information and exit",
				Aliases:            []string{"V"},
				DisableDefaultText: true,
			},
		},
		Copyright:       strings.Join(copyrightNames, "\n"),
		HideHelp:        true,
		HideHelpCommand: true,
		OnUsageError: func(_ *cli.Context, err error, _ bool) error {
			return fmt.Errorf("%w: %w", ErrFlagParse, err)
		},
		Action: func(c *cli.Context) error {
			if c.Bool("help") {
				check(cli.ShowAppHelp(c))
				return nil
			}
			if c.Bool("version") {
				return printVersion(c)
			}

			logger := newLogger(c)
			corpus, err := openCorpus(c, logger)
			if err != nil {
				return err
			}

			interactive := c.Bool("interactive")
			width := c.Int("width")
			if interactive && width == 0 {
				width = terminalWidth() - 10
			}

			s := &session{
				corpus:      corpus,
				in:          newLineReader(c.App.Reader),
				out:         c.App.Writer,
				interactive: interactive,
				width:       width,
				plain:       c.Bool("plain"),
				page:        pageLess,
			}
			return s.run(strings.Join(c.Args().Slice(), " "))
		},
		Commands: []*cli.Command{
			infoCommand,
		},
	}
}
