// Copyright 2024 Google LLC
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

package idx_test

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ianlewis/go-oed/entity"
	"github.com/ianlewis/go-oed/idx"
	"github.com/ianlewis/go-oed/internal/inflate"
	"github.com/ianlewis/go-oed/internal/testutil"
)

func newIdx(t *testing.T, entries []string, opts *idx.Options, iopts *testutil.IndexOptions) *idx.Idx {
	t.Helper()

	b := testutil.MakeIndex(t, entries, iopts)
	index, err := idx.New(io.NopCloser(bytes.NewReader(b)), opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return index
}

// TestNew tests the separator and preamble policies.
func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		entries  []string
		iopts    *testutil.IndexOptions
		opts     *idx.Options
		expected []string
	}{
		{
			name:     "headword index keeps all fragments",
			entries:  []string{"cat", "catalog", "dog"},
			expected: []string{"cat", "catalog", "dog"},
		},
		{
			name:    "key index drops preamble",
			entries: []string{"cat", "dog"},
			iopts: &testutil.IndexOptions{
				Separator: '#',
				Preamble:  "header",
			},
			opts: &idx.Options{
				Separator: '#',
				Preamble:  true,
			},
			expected: []string{"cat", "dog"},
		},
		{
			name:    "preamble kept without preamble policy",
			entries: []string{"cat", "dog"},
			iopts: &testutil.IndexOptions{
				Separator: '#',
				Preamble:  "header",
			},
			opts: &idx.Options{
				Separator: '#',
			},
			expected: []string{"header", "cat", "dog"},
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			index := newIdx(t, test.entries, test.opts, test.iopts)
			if diff := cmp.Diff(test.expected, index.Entries()); diff != "" {
				t.Fatalf("Entries (-want, +got):\n%s", diff)
			}
			if got, want := index.Len(), len(test.expected); got != want {
				t.Fatalf("Len; want: %d, got: %d", want, got)
			}
			for i, want := range test.expected {
				got, ok := index.Entry(i)
				if !ok || got != want {
					t.Errorf("Entry(%d); want: %q, got: %q (%v)", i, want, got, ok)
				}
			}
			if _, ok := index.Entry(len(test.expected)); ok {
				t.Errorf("Entry(%d): expected out of range", len(test.expected))
			}
		})
	}
}

// TestNew_corrupt tests that a corrupt index is a decompression error.
func TestNew_corrupt(t *testing.T) {
	t.Parallel()

	_, err := idx.New(io.NopCloser(bytes.NewReader([]byte("cat^dog"))), nil)
	if diff := cmp.Diff(inflate.ErrDecompression, err, cmpopts.EquateErrors()); diff != "" {
		t.Fatalf("New error (-want, +got):\n%s", diff)
	}
}

// TestNewFromPath tests NewFromPath.
func TestNewFromPath(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "hw.t")
	if err := os.WriteFile(path, testutil.MakeIndex(t, []string{"cat", "dog"}, nil), 0o600); err != nil {
		t.Fatal(err)
	}

	index, err := idx.NewFromPath(path, nil)
	if err != nil {
		t.Fatalf("NewFromPath: %v", err)
	}
	if diff := cmp.Diff([]string{"cat", "dog"}, index.Entries()); diff != "" {
		t.Fatalf("Entries (-want, +got):\n%s", diff)
	}

	if _, err := idx.NewFromPath(filepath.Join(t.TempDir(), "missing.t"), nil); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("NewFromPath: want os.ErrNotExist, got: %v", err)
	}
}

// TestIdx_Search tests Idx.Search.
func TestIdx_Search(t *testing.T) {
	t.Parallel()

	entities, err := entity.New([]entity.Pair{
		{Code: "&ae.", Text: "æ"},
	})
	if err != nil {
		t.Fatalf("entity.New: %v", err)
	}

	tests := []struct {
		name     string
		query    string
		entries  []string
		opts     *idx.Options
		expected []*idx.Match
	}{
		{
			name:     "empty index",
			query:    "foo",
			entries:  []string{},
			expected: nil,
		},
		{
			name:    "boundary match",
			query:   "cat",
			entries: []string{"cat", "catalog", "dog"},
			expected: []*idx.Match{
				{Position: 0, Headword: "cat"},
			},
		},
		{
			name:    "entity match",
			query:   "æther",
			entries: []string{"aether", "&ae.ther", "ether"},
			expected: []*idx.Match{
				{Position: 1, Headword: "æther"},
			},
		},
		{
			name:    "multi-match full scan",
			query:   "hoge",
			entries: []string{"hoge", "hoge, n.", "pico", "hoge, v."},
			expected: []*idx.Match{
				{Position: 0, Headword: "hoge"},
				{Position: 1, Headword: "hoge, n."},
				{Position: 3, Headword: "hoge, v."},
			},
		},
		{
			name:    "multi-match stop after run",
			query:   "hoge",
			entries: []string{"hoge", "hoge, n.", "pico", "hoge, v."},
			opts: &idx.Options{
				Separator:    '^',
				StopAfterRun: true,
			},
			expected: []*idx.Match{
				{Position: 0, Headword: "hoge"},
				{Position: 1, Headword: "hoge, n."},
			},
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			index := newIdx(t, test.entries, test.opts, nil)
			if diff := cmp.Diff(test.expected, index.Search(test.query, entities)); diff != "" {
				t.Fatalf("Search (-want, +got):\n%s", diff)
			}
		})
	}
}
