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

// Package dict implements reading the corpus data file.
//
// The data file is a concatenation of zlib compressed blocks. Block
// boundaries are given by an offset table held in the corpus metadata. The
// first two bytes of every block are stored zeroed and must be restored to
// the zlib header before the block can be inflated. An inflated block is utf-8
// text: a preamble followed by the definitions of the block's entries, all
// separated by a delimiter character.
package dict

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/ianlewis/go-oed/internal/inflate"
	"github.com/ianlewis/go-oed/internal/logging"
)

// ErrDataIntegrity indicates that the corpus tables are inconsistent with
// each other or with the request.
var ErrDataIntegrity = errors.New("data integrity error")

// HeaderMagic is the zlib header written over the first two bytes of every
// block.
var HeaderMagic = [2]byte{0x78, 0xda}

// Options are options for a Dict.
type Options struct {
	// Delimiter separates definitions in an inflated block. Defaults to '#'.
	Delimiter byte

	// Logger is used to log block reads.
	Logger *slog.Logger
}

// DefaultOptions is the default options for a Dict.
var DefaultOptions = &Options{
	Delimiter: '#',
}

// Dict represents the corpus data file.
type Dict struct {
	r       io.ReaderAt
	offsets []int64
	delim   byte
	logger  *slog.Logger
}

// New returns a new Dict reading blocks from r. offsets must be strictly
// increasing and describe at least one block. The caller retains ownership of
// r.
func New(r io.ReaderAt, offsets []int64, options *Options) (*Dict, error) {
	if options == nil {
		options = DefaultOptions
	}
	delim := options.Delimiter
	if delim == 0 {
		delim = DefaultOptions.Delimiter
	}

	if err := ValidateOffsets(offsets); err != nil {
		return nil, err
	}

	return &Dict{
		r:       r,
		offsets: append([]int64(nil), offsets...),
		delim:   delim,
		logger:  logging.Default(options.Logger).With("component", "dict"),
	}, nil
}

// ValidateOffsets checks that offsets is a valid block offset table: at least
// one block, non-negative and strictly increasing.
func ValidateOffsets(offsets []int64) error {
	if len(offsets) < 2 {
		return fmt.Errorf("%w: offset table needs at least 2 entries", ErrDataIntegrity)
	}
	if offsets[0] < 0 {
		return fmt.Errorf("%w: negative offset %d", ErrDataIntegrity, offsets[0])
	}
	for i := 1; i < len(offsets); i++ {
		if offsets[i] <= offsets[i-1] {
			return fmt.Errorf("%w: offset table not increasing at %d", ErrDataIntegrity, i)
		}
	}
	return nil
}

// Blocks returns the number of blocks.
func (d *Dict) Blocks() int {
	return len(d.offsets) - 1
}

// Block reads, inflates and splits the block with the given id and returns
// the definitions it holds in order.
func (d *Dict) Block(id int) ([]string, error) {
	if id < 0 || id >= d.Blocks() {
		return nil, fmt.Errorf("%w: block %d out of range [0, %d)", ErrDataIntegrity, id, d.Blocks())
	}

	start, end := d.offsets[id], d.offsets[id+1]
	b := make([]byte, end-start)
	// NOTE: ReadAt returns an error if it reads fewer than len(b) bytes. It
	// may return io.EOF along with a full read of the last block.
	n, err := d.r.ReadAt(b, start)
	if err != nil && (!errors.Is(err, io.EOF) || n < len(b)) {
		return nil, fmt.Errorf("reading block %d at offset %d: %w", id, start, err)
	}

	repairHeader(b)
	text, err := inflate.Bytes(b)
	if err != nil {
		return nil, fmt.Errorf("block %d: %w", id, err)
	}

	d.logger.Debug("block read", "block", id, "offset", start, "size", len(b), "inflated", len(text))

	defs := strings.Split(string(text), string(d.delim))
	return defs[1:], nil
}

// Definition returns the raw definition of the entry at position local within
// block id.
func (d *Dict) Definition(id, local int) (string, error) {
	defs, err := d.Block(id)
	if err != nil {
		return "", err
	}
	if local < 0 || local >= len(defs) {
		return "", fmt.Errorf("%w: entry %d not in block %d of %d entries", ErrDataIntegrity, local, id, len(defs))
	}
	return defs[local], nil
}

// repairHeader restores the zlib header that is zeroed on disk.
func repairHeader(b []byte) {
	if len(b) < len(HeaderMagic) {
		return
	}
	copy(b, HeaderMagic[:])
}
