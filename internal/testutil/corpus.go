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

// Package testutil builds corpus files for tests.
package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zlib"
	"gopkg.in/yaml.v3"

	"github.com/ianlewis/go-oed/entity"
	"github.com/ianlewis/go-oed/meta"
)

// Compress compresses b as a zlib stream at the best compression level. The
// stream starts with the 0x78 0xDA header.
func Compress(t *testing.T, b []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	z, err := zlib.NewWriterLevel(&buf, zlib.BestCompression)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := z.Write(b); err != nil {
		t.Fatal(err)
	}
	if err := z.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

// IndexOptions are options for MakeIndex.
type IndexOptions struct {
	// Separator separates the records. Defaults to '^'.
	Separator byte

	// Preamble is written as the first fragment when non-empty.
	Preamble string
}

// MakeIndex creates a compressed index file.
func MakeIndex(t *testing.T, entries []string, opts *IndexOptions) []byte {
	t.Helper()
	if opts == nil {
		opts = &IndexOptions{}
	}
	sep := opts.Separator
	if sep == 0 {
		sep = '^'
	}

	var parts []string
	if opts.Preamble != "" {
		parts = append(parts, opts.Preamble)
	}
	parts = append(parts, entries...)
	return Compress(t, []byte(strings.Join(parts, string(sep))))
}

// MakeBlock creates a single data block as it is stored on disk: a zlib
// stream whose two header bytes are zeroed.
func MakeBlock(t *testing.T, preamble string, definitions []string, delim byte) []byte {
	t.Helper()

	parts := append([]string{preamble}, definitions...)
	b := Compress(t, []byte(strings.Join(parts, string(delim))))
	b[0] = 0x00
	b[1] = 0x00
	return b
}

// MakeData creates a data file from blocks of definitions and returns it
// along with its offset table.
func MakeData(t *testing.T, blocks [][]string, delim byte) ([]byte, []int64) {
	t.Helper()

	var data []byte
	offsets := []int64{0}
	for i, defs := range blocks {
		data = append(data, MakeBlock(t, "block "+string(rune('0'+i%10)), defs, delim)...)
		offsets = append(offsets, int64(len(data)))
	}
	return data, offsets
}

// Counts returns the cumulative entry count table for blocks.
func Counts(blocks [][]string) []int {
	counts := []int{0}
	for _, b := range blocks {
		counts = append(counts, counts[len(counts)-1]+len(b))
	}
	return counts
}

// Corpus describes a test corpus.
type Corpus struct {
	Name      string
	Headwords []string
	Keys      []string
	Blocks    [][]string
	Entities  []entity.Pair
}

// WriteCorpus writes the corpus files and metadata to a temporary directory
// and returns the path to the metadata file.
func WriteCorpus(t *testing.T, c *Corpus) string {
	t.Helper()

	dir := t.TempDir()
	m := meta.Meta{
		Name: c.Name,
		Files: meta.Files{
			Headwords: "hw.t",
			Data:      "oed.t",
		},
		Counts:   Counts(c.Blocks),
		Entities: c.Entities,
	}

	writeFile(t, filepath.Join(dir, m.Files.Headwords), MakeIndex(t, c.Headwords, nil))
	if c.Keys != nil {
		m.Files.Keys = "ky.t"
		writeFile(t, filepath.Join(dir, m.Files.Keys), MakeIndex(t, c.Keys, &IndexOptions{
			Separator: '#',
			Preamble:  "keys",
		}))
	}

	data, offsets := MakeData(t, c.Blocks, '#')
	m.Offsets = offsets
	writeFile(t, filepath.Join(dir, m.Files.Data), data)

	b, err := yaml.Marshal(&m)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "oed.yaml")
	writeFile(t, path, b)
	return path
}

func writeFile(t *testing.T, path string, b []byte) {
	t.Helper()
	if err := os.WriteFile(path, b, 0o600); err != nil {
		t.Fatal(err)
	}
}
