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

package index

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFind(t *testing.T) {
	t.Parallel()

	replacer := strings.NewReplacer("&ae.", "æ", "&e'", "é").Replace

	tests := []struct {
		name     string
		entries  []string
		query    string
		opts     *Options
		expected []*Match
	}{
		{
			name:    "boundary excludes longer word",
			entries: []string{"cat", "catalog", "dog"},
			query:   "cat",
			expected: []*Match{
				{Position: 0, Headword: "cat"},
			},
		},
		{
			name:    "followed by punctuation and markup",
			entries: []string{"cat, n.", "cat<hw>", "cats", "cat-o'-nine-tails"},
			query:   "cat",
			expected: []*Match{
				{Position: 0, Headword: "cat, n."},
				{Position: 1, Headword: "cat<hw>"},
				{Position: 3, Headword: "cat-o'-nine-tails"},
			},
		},
		{
			name:     "no match",
			entries:  []string{"cat", "dog"},
			query:    "hoge",
			expected: nil,
		},
		{
			name:     "empty query",
			entries:  []string{"cat", "dog"},
			query:    "",
			expected: nil,
		},
		{
			name:     "empty index",
			entries:  nil,
			query:    "cat",
			expected: nil,
		},
		{
			name:     "no case folding",
			entries:  []string{"Cat", "cat"},
			query:    "cat",
			expected: []*Match{{Position: 1, Headword: "cat"}},
		},
		{
			name:    "entity substitution",
			entries: []string{"&ae.ther", "aether", "caf&e'"},
			query:   "æther",
			expected: []*Match{
				{Position: 0, Headword: "æther"},
			},
		},
		{
			name:    "entity changes boundary",
			entries: []string{"caf&e'", "caf&e' au lait"},
			query:   "café",
			expected: []*Match{
				{Position: 0, Headword: "café"},
				{Position: 1, Headword: "café au lait"},
			},
		},
		{
			name:    "raw match reports substituted headword",
			entries: []string{"m&ae.l"},
			query:   "m",
			expected: []*Match{
				{Position: 0, Headword: "mæl"},
			},
		},
		{
			name:    "full scan collects later runs",
			entries: []string{"run", "run, v.", "walk", "run, n."},
			query:   "run",
			expected: []*Match{
				{Position: 0, Headword: "run"},
				{Position: 1, Headword: "run, v."},
				{Position: 3, Headword: "run, n."},
			},
		},
		{
			name:    "stop after first run",
			entries: []string{"run", "run, v.", "walk", "run, n."},
			query:   "run",
			opts:    &Options{StopAfterRun: true},
			expected: []*Match{
				{Position: 0, Headword: "run"},
				{Position: 1, Headword: "run, v."},
			},
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got := Find(test.entries, test.query, replacer, test.opts)
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Fatalf("Find (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestHasPrefixWord(t *testing.T) {
	t.Parallel()

	tests := []struct {
		s, prefix string
		expected  bool
	}{
		{"cat", "cat", true},
		{"cat dog", "cat", true},
		{"catalog", "cat", false},
		{"cat_", "cat", false},
		{"cat2", "cat", false},
		{"café", "caf", false},
		{"café", "cafe", false},
		{"dog", "cat", false},
		{"ca", "cat", false},
		{"cat ", "cat ", false},
		{"cat x", "cat ", true},
		{"-x", "-", true},
		{"anything", "", false},
	}

	for _, test := range tests {
		test := test
		if got := HasPrefixWord(test.s, test.prefix); got != test.expected {
			t.Errorf("HasPrefixWord(%q, %q); want: %v, got: %v", test.s, test.prefix, test.expected, got)
		}
	}
}
