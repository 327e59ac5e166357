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

package dict

import (
	"fmt"
	"sort"
)

// Locator maps entry positions to data blocks using the cumulative entry
// count table. counts[i] is the number of entries held by blocks [0, i).
type Locator struct {
	counts []int
}

// NewLocator returns a new Locator. counts must start at zero, be
// non-decreasing and describe at least one block.
func NewLocator(counts []int) (*Locator, error) {
	if len(counts) < 2 {
		return nil, fmt.Errorf("%w: count table needs at least 2 entries", ErrDataIntegrity)
	}
	if counts[0] != 0 {
		return nil, fmt.Errorf("%w: count table starts at %d", ErrDataIntegrity, counts[0])
	}
	for i := 1; i < len(counts); i++ {
		if counts[i] < counts[i-1] {
			return nil, fmt.Errorf("%w: count table decreases at %d", ErrDataIntegrity, i)
		}
	}

	return &Locator{
		counts: append([]int(nil), counts...),
	}, nil
}

// Locate returns the block holding the entry at position pos and the
// entry's position within that block.
func (l *Locator) Locate(pos int) (block, local int, err error) {
	if pos < 0 || pos >= l.counts[len(l.counts)-1] {
		return 0, 0, fmt.Errorf("%w: entry %d is not in any block", ErrDataIntegrity, pos)
	}

	// The first count past pos ends the containing block. Empty blocks
	// repeat a count and are skipped.
	block = sort.Search(len(l.counts), func(i int) bool {
		return l.counts[i] > pos
	}) - 1
	return block, pos - l.counts[block], nil
}

// Blocks returns the number of blocks.
func (l *Locator) Blocks() int {
	return len(l.counts) - 1
}

// Entries returns the total number of entries.
func (l *Locator) Entries() int {
	return l.counts[len(l.counts)-1]
}
