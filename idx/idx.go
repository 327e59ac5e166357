// Copyright 2021 Google LLC
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

package idx

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ianlewis/go-oed/entity"
	"github.com/ianlewis/go-oed/internal/index"
	"github.com/ianlewis/go-oed/internal/logging"
)

// Match is an index entry matching a query.
type Match = index.Match

// Options are options for the idx data.
type Options struct {
	// Separator is the record separator.
	Separator byte

	// Preamble indicates that the first fragment of the index is a preamble
	// and not an entry.
	Preamble bool

	// StopAfterRun stops a search once the first contiguous run of matches
	// ends. Only set it for indexes sorted by headword.
	StopAfterRun bool

	// Logger is used to log index loading. Defaults to discarding output.
	Logger *slog.Logger
}

// DefaultOptions is the default options for an Idx. They describe the
// headword index.
var DefaultOptions = &Options{
	Separator: '^',
}

// Idx is an in-memory index. Entries are held in position order and never
// change once loaded.
type Idx struct {
	entries      []string
	stopAfterRun bool
}

// New returns a new in-memory index by reading the compressed index from r.
func New(r io.ReadCloser, options *Options) (*Idx, error) {
	if options == nil {
		options = DefaultOptions
	}
	logger := logging.Default(options.Logger).With("component", "idx")

	s, err := NewScanner(r, &ScannerOptions{
		Separator: options.Separator,
	})
	if err != nil {
		return nil, err
	}

	idx := &Idx{
		stopAfterRun: options.StopAfterRun,
	}
	skip := options.Preamble
	for s.Scan() {
		if skip {
			skip = false
			continue
		}
		idx.entries = append(idx.entries, s.Text())
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("scanning index: %w", err)
	}

	logger.Debug("index loaded", "entries", len(idx.entries))
	return idx, nil
}

// NewFromPath reads the index file at path. The file is closed once read.
func NewFromPath(path string, options *Options) (*Idx, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening index: %w", err)
	}
	defer f.Close()

	idx, err := New(f, options)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	return idx, nil
}

// Len returns the number of entries.
func (idx *Idx) Len() int {
	return len(idx.entries)
}

// Entry returns the raw entry text at position pos.
func (idx *Idx) Entry(pos int) (string, bool) {
	if pos < 0 || pos >= len(idx.entries) {
		return "", false
	}
	return idx.entries[pos], true
}

// Entries returns the raw entries in position order.
func (idx *Idx) Entries() []string {
	return append([]string(nil), idx.entries...)
}

// Search returns the entries whose text starts with query at a word boundary
// either as stored or after entity substitution. Matches are in position
// order.
func (idx *Idx) Search(query string, entities *entity.Table) []*Match {
	return index.Find(idx.entries, query, entities.Replace, &index.Options{
		StopAfterRun: idx.stopAfterRun,
	})
}
