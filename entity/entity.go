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

// Package entity implements the corpus entity table.
//
// Headwords and definitions in the corpus encode characters that fall outside
// the markup's base character set as placeholder codes (e.g. "&ae.") which
// must be replaced by their literal text before matching or rendering.
package entity

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrMalformed indicates that an entity table is not well-formed.
var ErrMalformed = errors.New("malformed entity table")

// Pair maps a placeholder code to its literal replacement text.
type Pair struct {
	Code string `yaml:"code"`
	Text string `yaml:"text"`
}

// Table is a read-only entity table. A nil *Table is a valid empty table.
type Table struct {
	pairs    []Pair
	replacer *strings.Replacer
}

// New returns a new Table for the given pairs. Codes must be non-empty and
// unique and no code may appear inside any replacement text. The latter
// guarantees that a single substitution pass reaches a fixed point.
func New(pairs []Pair) (*Table, error) {
	seen := make(map[string]bool, len(pairs))
	for _, p := range pairs {
		if p.Code == "" {
			return nil, fmt.Errorf("%w: empty code", ErrMalformed)
		}
		if seen[p.Code] {
			return nil, fmt.Errorf("%w: duplicate code %q", ErrMalformed, p.Code)
		}
		seen[p.Code] = true
	}

	for _, p := range pairs {
		for _, q := range pairs {
			if strings.Contains(q.Text, p.Code) {
				return nil, fmt.Errorf("%w: code %q appears in replacement for %q", ErrMalformed, p.Code, q.Code)
			}
		}
	}

	// Longer codes take priority when codes share a prefix so that the result
	// does not depend on the order of the pairs.
	sorted := append([]Pair(nil), pairs...)
	slices.SortStableFunc(sorted, func(a, b Pair) int {
		return len(b.Code) - len(a.Code)
	})
	oldnew := make([]string, 0, 2*len(sorted))
	for _, p := range sorted {
		oldnew = append(oldnew, p.Code, p.Text)
	}

	return &Table{
		pairs:    append([]Pair(nil), pairs...),
		replacer: strings.NewReplacer(oldnew...),
	}, nil
}

// Replace substitutes every placeholder code in s with its literal text.
func (t *Table) Replace(s string) string {
	if t == nil || len(t.pairs) == 0 {
		return s
	}
	return t.replacer.Replace(s)
}

// Len returns the number of entities in the table.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.pairs)
}

// Pairs returns a copy of the table's entries.
func (t *Table) Pairs() []Pair {
	if t == nil {
		return nil
	}
	return append([]Pair(nil), t.pairs...)
}
