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

// Package syn implements reading the secondary key index (ky.t).
//
// The key index lists alternative search keys for corpus entries. It is
// consulted when a query matches no headword. Key index records use '#' as
// separator and the index starts with a preamble fragment. A record's
// position is the position of the entry it refers to.
package syn

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/ianlewis/go-oed/entity"
	"github.com/ianlewis/go-oed/idx"
)

// Separator is the default key index record separator.
const Separator = '#'

// Options are options for the key index.
type Options struct {
	// Separator is the record separator. Defaults to Separator.
	Separator byte

	// Logger is used to log index loading.
	Logger *slog.Logger
}

// DefaultOptions is the default options for a Syn.
var DefaultOptions = &Options{
	Separator: Separator,
}

// Syn is the key index.
type Syn struct {
	index *idx.Idx
}

func (o *Options) idxOptions() *idx.Options {
	if o == nil {
		o = DefaultOptions
	}
	sep := o.Separator
	if sep == 0 {
		sep = Separator
	}
	return &idx.Options{
		Separator: sep,
		Preamble:  true,
		Logger:    o.Logger,
	}
}

// New returns a new Syn by reading the compressed key index from r.
func New(r io.ReadCloser, options *Options) (*Syn, error) {
	index, err := idx.New(r, options.idxOptions())
	if err != nil {
		return nil, fmt.Errorf("reading key index: %w", err)
	}
	return &Syn{index: index}, nil
}

// NewFromPath reads the key index file at path.
func NewFromPath(path string, options *Options) (*Syn, error) {
	index, err := idx.NewFromPath(path, options.idxOptions())
	if err != nil {
		return nil, fmt.Errorf("reading key index: %w", err)
	}
	return &Syn{index: index}, nil
}

// Len returns the number of keys.
func (syn *Syn) Len() int {
	return syn.index.Len()
}

// Search performs a query of the key index and returns matching keys in
// position order.
func (syn *Syn) Search(query string, entities *entity.Table) []*idx.Match {
	return syn.index.Search(query, entities)
}
