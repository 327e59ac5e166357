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

// Package folding implements wrapping styled text to a column width.
package folding

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

const escape = '\x1b'

// VisibleLen returns the number of runes in s that are displayed, not
// counting escape sequences. An escape sequence runs from the escape
// character up to and including the next 'm'.
func VisibleLen(s string) int {
	n := 0
	for i := 0; i < len(s); {
		if s[i] == escape {
			j := strings.IndexByte(s[i:], 'm')
			if j < 0 {
				break
			}
			i += j + 1
			continue
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		n++
	}
	return n
}

// Fold wraps each line of text at word boundaries so that no line is visibly
// wider than width. Words are separated by single spaces and are never split;
// a word wider than width is put on a line of its own. Escape sequences do
// not count toward the width. Every input line ends with a newline in the
// output. A width less than one returns text unchanged.
func Fold(text string, width int) string {
	if width < 1 {
		return text
	}

	folded, _, err := transform.String(&SpaceFolder{}, text)
	if err == nil {
		text = folded
	}

	var b strings.Builder
	b.Grow(len(text) + len(text)/width + 1)
	for _, line := range strings.Split(text, "\n") {
		col := 0
		start := true
		for _, word := range strings.Split(line, " ") {
			n := VisibleLen(word)
			if !start && col+1+n > width {
				b.WriteByte('\n')
				col = 0
				start = true
				if word == "" {
					continue
				}
			}
			if !start {
				b.WriteByte(' ')
				col++
			}
			b.WriteString(word)
			col += n
			start = false
		}
		b.WriteByte('\n')
	}
	return b.String()
}
