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
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rodaine/table"

	oed "github.com/ianlewis/go-oed"
	"github.com/ianlewis/go-oed/markup"
)

// session is a query session over a corpus.
type session struct {
	corpus      *oed.Corpus
	in          *bufio.Reader
	out         io.Writer
	interactive bool
	width       int
	plain       bool

	// page displays an entry in interactive mode.
	page func(text string) error
}

func newLineReader(r io.Reader) *bufio.Reader {
	return bufio.NewReader(r)
}

// run runs the session starting with query. An empty query is read from the
// input. In interactive mode queries are read until the input ends.
func (s *session) run(query string) error {
	s.banner()

	for {
		if query == "" {
			q, err := s.prompt("Enter search term: ")
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(s.out)
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(s.out)
			query = q
		}

		err := s.lookup(query)
		switch {
		case err == nil:
		case s.interactive && errors.Is(err, oed.ErrNotFound):
			fmt.Fprintf(s.out, "Search for %s returned no results\n\n", query)
		default:
			return err
		}

		if !s.interactive {
			return nil
		}
		query = ""
	}
}

func (s *session) banner() {
	if name := s.corpus.Name(); name != "" {
		fmt.Fprintln(s.out, name)
	}
	if c := s.corpus.Copyright(); c != "" {
		fmt.Fprintln(s.out, c)
	}
	mode := "default"
	if s.interactive {
		mode = "interactive"
	}
	fmt.Fprintf(s.out, "\nRunning in %s mode. Use Ctrl-C to quit, Ctrl-D to return.\n\n", mode)
}

// prompt writes p and reads a line without its line ending.
func (s *session) prompt(p string) (string, error) {
	fmt.Fprint(s.out, p)
	line, err := s.in.ReadString('\n')
	if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
		//nolint:wrapcheck // io.EOF is checked by callers.
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// lookup searches for query and shows the matching entry. With several
// matches the candidates are listed for selection. In interactive mode the
// list is shown again after each entry until the selection prompt is ended.
func (s *session) lookup(query string) error {
	matches, err := s.corpus.Search(query)
	if err != nil {
		//nolint:wrapcheck // returned as is for exit code mapping.
		return err
	}
	if len(matches) == 1 {
		return s.show(matches[0].Position)
	}

	fmt.Fprintf(s.out, "Found multiple entries matching '%s':\n\n", query)
	for {
		s.list(matches)
		m, err := s.selectMatch(matches)
		if errors.Is(err, io.EOF) {
			fmt.Fprint(s.out, "\n\n")
			return nil
		}
		if err != nil {
			return err
		}
		if err := s.show(m.Position); err != nil {
			return err
		}
		if !s.interactive {
			return nil
		}
	}
}

// list prints the numbered candidates.
func (s *session) list(matches []*oed.Match) {
	tbl := table.New("#", "Headword").WithWriter(s.out)
	for i, m := range matches {
		tbl.AddRow(i+1, markup.Strip(m.Headword))
	}
	tbl.Print()
	fmt.Fprintln(s.out)
}

// selectMatch prompts until a valid candidate is selected.
func (s *session) selectMatch(matches []*oed.Match) (*oed.Match, error) {
	for {
		line, err := s.prompt("Please select an entry: ")
		if err != nil {
			return nil, err
		}
		i, err := parseSelection(line, len(matches))
		if err != nil {
			fmt.Fprintf(s.out, "%v\n\n", err)
			continue
		}
		fmt.Fprintln(s.out)
		return matches[i], nil
	}
}

// parseSelection parses a 1-based selection out of n candidates and returns
// its 0-based index.
func parseSelection(sel string, n int) (int, error) {
	if sel == "" {
		return 0, fmt.Errorf("%w: no entry selected", ErrInvalidSelection)
	}
	for _, r := range sel {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: '%s' is not a number", ErrInvalidSelection, sel)
		}
	}
	i, err := strconv.Atoi(sel)
	if err != nil || i < 1 || i > n {
		return 0, fmt.Errorf("%w: '%s' is out of range", ErrInvalidSelection, sel)
	}
	return i - 1, nil
}

// show prints or pages the entry at pos.
func (s *session) show(pos int) error {
	e, err := s.corpus.Entry(pos)
	if err != nil {
		//nolint:wrapcheck // corpus errors carry their own context.
		return err
	}

	text := e.Render(s.width)
	if s.plain {
		text = e.Plain(s.width)
	}

	if s.interactive {
		return s.page(text)
	}
	fmt.Fprintln(s.out, text)
	return nil
}
