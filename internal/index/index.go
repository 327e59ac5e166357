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

// Package index implements headword matching over a flat entry index.
package index

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Match is an index entry matching a query.
type Match struct {
	// Position is the entry's position in the index.
	Position int

	// Headword is the entry text with entities substituted.
	Headword string
}

// Options are options for Find.
type Options struct {
	// StopAfterRun stops scanning once the first contiguous run of matches
	// ends. This is only correct for indexes sorted by headword.
	StopAfterRun bool
}

// Find scans entries in position order and returns the entries that start
// with query at a word boundary. Entries that do not match as stored are
// matched again after replace has substituted their entities. replace may be
// nil.
func Find(entries []string, query string, replace func(string) string, opts *Options) []*Match {
	if query == "" {
		return nil
	}
	if opts == nil {
		opts = &Options{}
	}
	if replace == nil {
		replace = func(s string) string { return s }
	}

	var matches []*Match
	for i, raw := range entries {
		headword := replace(raw)
		if !HasPrefixWord(raw, query) && !HasPrefixWord(headword, query) {
			if opts.StopAfterRun && len(matches) > 0 {
				break
			}
			continue
		}
		matches = append(matches, &Match{
			Position: i,
			Headword: headword,
		})
	}
	return matches
}

// HasPrefixWord reports whether s begins with prefix and prefix ends on a word
// boundary in s. A word boundary lies between a word and a non-word rune, the
// end of s counting as non-word.
func HasPrefixWord(s, prefix string) bool {
	if prefix == "" || !strings.HasPrefix(s, prefix) {
		return false
	}

	last, _ := utf8.DecodeLastRuneInString(prefix)
	next := false
	if len(s) > len(prefix) {
		r, _ := utf8.DecodeRuneInString(s[len(prefix):])
		next = IsWordRune(r)
	}
	return IsWordRune(last) != next
}

// IsWordRune reports whether r is a word rune: a letter, digit, mark or
// underscore.
func IsWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}
