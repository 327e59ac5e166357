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

package folding

import (
	"unicode/utf8"

	"golang.org/x/text/transform"
)

const nbsp = '\u00a0'

// maxSpaces is the longest space run SpaceFolder emits.
const maxSpaces = 2

// SpaceFolder prepares text for line folding. It replaces non-breaking
// spaces with ASCII spaces and shortens runs of three or more spaces to two.
type SpaceFolder struct {
	// spaces is the number of spaces read but not yet emitted, capped at
	// maxSpaces.
	spaces int
}

// Transform implements [transform.Transformer.Transform].
func (f *SpaceFolder) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var nSrc, nDst int
	for nSrc < len(src) {
		c, size := utf8.DecodeRune(src[nSrc:])
		if c == utf8.RuneError && size <= 1 && !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}

		if c == ' ' || c == nbsp {
			nSrc += size
			if f.spaces < maxSpaces {
				f.spaces++
			}
			continue
		}

		// Emit the pending space run before the character.
		for ; f.spaces > 0; f.spaces-- {
			if nDst >= len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = ' '
			nDst++
		}

		// NOTE: the source bytes are copied as is so that invalid utf-8
		// passes through unchanged.
		if nDst+size > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], src[nSrc:nSrc+size])
		nSrc += size
	}

	if atEOF {
		for ; f.spaces > 0; f.spaces-- {
			if nDst >= len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = ' '
			nDst++
		}
	}

	return nDst, nSrc, nil
}

// Reset implements [transform.Transformer.Reset].
func (f *SpaceFolder) Reset() {
	*f = SpaceFolder{}
}
