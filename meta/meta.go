// Copyright 2026 Ian Lewis
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

// Package meta implements reading the corpus metadata file.
//
// The metadata file is a YAML document that names the corpus data files and
// carries the static tables needed to read them:
//
//	name: Oxford English Dictionary
//	files:
//	  headwords: hw.t
//	  keys: ky.t
//	  data: oed.t
//	counts: [0, 5, 12]
//	offsets: [0, 1024, 2311]
//	entities:
//	  - code: "&ae."
//	    text: "æ"
//
// counts is the cumulative entry count table and offsets the byte offset table
// of the data file's compressed blocks. Both have one element more than the
// number of blocks.
package meta

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ianlewis/go-oed/entity"
)

// ErrInvalid indicates that the metadata is invalid.
var ErrInvalid = errors.New("invalid metadata")

// Default separators.
const (
	DefaultHeadwordSeparator = "^"
	DefaultKeySeparator      = "#"
	DefaultBlockDelimiter    = "#"
)

// Files names the corpus files. Relative paths are relative to the directory
// of the metadata file.
type Files struct {
	Headwords string `yaml:"headwords"`
	Keys      string `yaml:"keys"`
	Data      string `yaml:"data"`
}

// Separators are the single character delimiters used by the corpus files.
type Separators struct {
	// Headwords separates headword index records. The headword index has no
	// preamble.
	Headwords string `yaml:"headwords"`

	// Keys separates key index records. The first fragment is a preamble.
	Keys string `yaml:"keys"`

	// Blocks separates definitions inside an inflated data block. The first
	// fragment is a preamble.
	Blocks string `yaml:"blocks"`
}

// Meta is the corpus metadata.
type Meta struct {
	Name       string        `yaml:"name"`
	Copyright  string        `yaml:"copyright"`
	Files      Files         `yaml:"files"`
	Separators Separators    `yaml:"separators"`
	Counts     []int         `yaml:"counts"`
	Offsets    []int64       `yaml:"offsets"`
	Entities   []entity.Pair `yaml:"entities"`
}

// New reads metadata from r, applies defaults and validates it.
func New(r io.Reader) (*Meta, error) {
	var m Meta
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	if m.Separators.Headwords == "" {
		m.Separators.Headwords = DefaultHeadwordSeparator
	}
	if m.Separators.Keys == "" {
		m.Separators.Keys = DefaultKeySeparator
	}
	if m.Separators.Blocks == "" {
		m.Separators.Blocks = DefaultBlockDelimiter
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Open reads the metadata file at path.
func Open(path string) (*Meta, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening metadata: %w", err)
	}
	defer f.Close()

	m, err := New(f)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	return m, nil
}

// Blocks returns the number of data blocks.
func (m *Meta) Blocks() int {
	return len(m.Offsets) - 1
}

// Validate checks the structural invariants of the metadata. The contents of
// the count and offset tables are validated by the dict package.
func (m *Meta) Validate() error {
	if m.Files.Headwords == "" {
		return fmt.Errorf("%w: missing headword index file", ErrInvalid)
	}
	if m.Files.Data == "" {
		return fmt.Errorf("%w: missing data file", ErrInvalid)
	}

	for name, sep := range map[string]string{
		"headwords": m.Separators.Headwords,
		"keys":      m.Separators.Keys,
		"blocks":    m.Separators.Blocks,
	} {
		if len(sep) != 1 {
			return fmt.Errorf("%w: %s separator must be a single byte: %q", ErrInvalid, name, sep)
		}
	}

	if len(m.Offsets) < 2 {
		return fmt.Errorf("%w: offset table needs at least 2 entries", ErrInvalid)
	}
	if len(m.Counts) != len(m.Offsets) {
		return fmt.Errorf("%w: count table has %d entries, offset table has %d",
			ErrInvalid, len(m.Counts), len(m.Offsets))
	}
	return nil
}
