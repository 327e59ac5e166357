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

package oed

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/ianlewis/go-oed/dict"
	"github.com/ianlewis/go-oed/entity"
	"github.com/ianlewis/go-oed/idx"
	"github.com/ianlewis/go-oed/internal/logging"
	"github.com/ianlewis/go-oed/meta"
	"github.com/ianlewis/go-oed/syn"
)

// Match is an index entry matching a query.
type Match = idx.Match

// Options are options for opening a corpus.
type Options struct {
	// Logger is used for diagnostics. Defaults to discarding output.
	Logger *slog.Logger

	// StopAfterRun stops a headword search once the first contiguous run of
	// matches ends.
	StopAfterRun bool
}

// Corpus is an opened dictionary corpus. Indexes are loaded on first use and
// kept in memory.
type Corpus struct {
	meta     *meta.Meta
	entities *entity.Table
	locator  *dict.Locator

	// mu guards idx and syn.
	mu  sync.Mutex
	idx *idx.Idx
	syn *syn.Syn

	metaPath     string
	stopAfterRun bool
	logger       *slog.Logger
}

// Open opens the corpus described by the metadata file at path. Data file
// paths are relative to the directory of the metadata file.
func Open(path string, options *Options) (*Corpus, error) {
	if options == nil {
		options = &Options{}
	}

	m, err := meta.Open(path)
	if err != nil {
		return nil, err
	}

	entities, err := entity.New(m.Entities)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}

	locator, err := dict.NewLocator(m.Counts)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	if err := dict.ValidateOffsets(m.Offsets); err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}

	c := &Corpus{
		meta:         m,
		entities:     entities,
		locator:      locator,
		metaPath:     path,
		stopAfterRun: options.StopAfterRun,
		logger:       logging.Default(options.Logger).With("component", "oed"),
	}
	c.logger.Debug("corpus opened",
		"path", path,
		"blocks", locator.Blocks(),
		"entries", locator.Entries(),
		"entities", entities.Len(),
	)
	return c, nil
}

// Name returns the corpus name.
func (c *Corpus) Name() string {
	return c.meta.Name
}

// Copyright returns the corpus copyright notice.
func (c *Corpus) Copyright() string {
	return c.meta.Copyright
}

// Meta returns the corpus metadata.
func (c *Corpus) Meta() *meta.Meta {
	return c.meta
}

// Entities returns the corpus entity table.
func (c *Corpus) Entities() *entity.Table {
	return c.entities
}

// Entries returns the number of entries in the data file.
func (c *Corpus) Entries() int {
	return c.locator.Entries()
}

// Blocks returns the number of blocks in the data file.
func (c *Corpus) Blocks() int {
	return c.locator.Blocks()
}

// HasKeys reports whether the corpus has a key index.
func (c *Corpus) HasKeys() bool {
	return c.meta.Files.Keys != ""
}

// Index returns an in-memory version of the headword index.
func (c *Corpus) Index() (*idx.Idx, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.idx != nil {
		return c.idx, nil
	}
	index, err := idx.NewFromPath(c.path(c.meta.Files.Headwords), &idx.Options{
		Separator:    c.meta.Separators.Headwords[0],
		StopAfterRun: c.stopAfterRun,
		Logger:       c.logger,
	})
	if err != nil {
		return nil, err
	}
	c.idx = index
	return c.idx, nil
}

// Keys returns an in-memory version of the key index. It returns nil if the
// corpus has no key index.
func (c *Corpus) Keys() (*syn.Syn, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.syn != nil || !c.HasKeys() {
		return c.syn, nil
	}
	keys, err := syn.NewFromPath(c.path(c.meta.Files.Keys), &syn.Options{
		Separator: c.meta.Separators.Keys[0],
		Logger:    c.logger,
	})
	if err != nil {
		return nil, err
	}
	c.syn = keys
	return c.syn, nil
}

// Search returns the entries matching query. The headword index is searched
// first. The key index is only searched when no headword matches.
func (c *Corpus) Search(query string) ([]*Match, error) {
	index, err := c.Index()
	if err != nil {
		return nil, err
	}
	if matches := index.Search(query, c.entities); len(matches) > 0 {
		return matches, nil
	}

	keys, err := c.Keys()
	if err != nil {
		return nil, err
	}
	if keys != nil {
		if matches := keys.Search(query, c.entities); len(matches) > 0 {
			c.logger.Debug("matched key index", "query", query, "matches", len(matches))
			return matches, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrNotFound, query)
}

// Entry returns the entry at position pos. The data file is opened for the
// duration of the read.
func (c *Corpus) Entry(pos int) (*Entry, error) {
	block, local, err := c.locator.Locate(pos)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("entry located", "position", pos, "block", block, "index", local)

	dataPath := c.path(c.meta.Files.Data)
	f, err := os.Open(dataPath)
	if err != nil {
		return nil, fmt.Errorf("opening data: %w", err)
	}
	defer f.Close()

	d, err := dict.New(f, c.meta.Offsets, &dict.Options{
		Delimiter: c.meta.Separators.Blocks[0],
		Logger:    c.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", dataPath, err)
	}
	raw, err := d.Definition(block, local)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", dataPath, err)
	}

	e := &Entry{
		position: pos,
		markup:   Resolve(raw, c.entities),
	}
	c.mu.Lock()
	index := c.idx
	c.mu.Unlock()
	if index != nil {
		if hw, ok := index.Entry(pos); ok {
			e.headword = c.entities.Replace(hw)
		}
	}
	return e, nil
}

func (c *Corpus) path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(filepath.Dir(c.metaPath), name)
}
