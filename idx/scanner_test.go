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

package idx_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ianlewis/go-oed/idx"
	"github.com/ianlewis/go-oed/internal/inflate"
	"github.com/ianlewis/go-oed/internal/testutil"
)

// TestScanner tests Scanner.
func TestScanner(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		text     string
		sep      byte
		expected []string
	}{
		{
			name:     "headwords",
			text:     "cat^catalog^dog",
			sep:      '^',
			expected: []string{"cat", "catalog", "dog"},
		},
		{
			name:     "keys",
			text:     "preamble#cat#dog",
			sep:      '#',
			expected: []string{"preamble", "cat", "dog"},
		},
		{
			name:     "trailing separator",
			text:     "cat^dog^",
			sep:      '^',
			expected: []string{"cat", "dog", ""},
		},
		{
			name:     "empty records",
			text:     "^cat^^dog",
			sep:      '^',
			expected: []string{"", "cat", "", "dog"},
		},
		{
			name:     "unicode",
			text:     "ユニコード^æther",
			sep:      '^',
			expected: []string{"ユニコード", "æther"},
		},
		{
			name:     "large record",
			text:     strings.Repeat("x", 100000) + "^y",
			sep:      '^',
			expected: []string{strings.Repeat("x", 100000), "y"},
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			b := testutil.Compress(t, []byte(test.text))
			s, err := idx.NewScanner(io.NopCloser(bytes.NewReader(b)), &idx.ScannerOptions{
				Separator: test.sep,
			})
			if err != nil {
				t.Fatalf("NewScanner: %v", err)
			}
			defer s.Close()

			var got []string
			for s.Scan() {
				got = append(got, s.Text())
			}
			if err := s.Err(); err != nil {
				t.Fatalf("Err: %v", err)
			}

			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Fatalf("records (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestScanner_errors(t *testing.T) {
	t.Parallel()

	t.Run("invalid separator", func(t *testing.T) {
		t.Parallel()

		_, err := idx.NewScanner(io.NopCloser(bytes.NewReader(nil)), &idx.ScannerOptions{})
		if diff := cmp.Diff(idx.ErrInvalidSeparator, err, cmpopts.EquateErrors()); diff != "" {
			t.Fatalf("NewScanner error (-want, +got):\n%s", diff)
		}
	})

	t.Run("not compressed", func(t *testing.T) {
		t.Parallel()

		_, err := idx.NewScanner(io.NopCloser(strings.NewReader("cat^dog")), nil)
		if diff := cmp.Diff(inflate.ErrDecompression, err, cmpopts.EquateErrors()); diff != "" {
			t.Fatalf("NewScanner error (-want, +got):\n%s", diff)
		}
	})

	t.Run("corrupt stream", func(t *testing.T) {
		t.Parallel()

		b := testutil.Compress(t, []byte(strings.Repeat("cat^dog^", 100)))
		b = b[:len(b)/2]
		s, err := idx.NewScanner(io.NopCloser(bytes.NewReader(b)), nil)
		if err != nil {
			t.Fatalf("NewScanner: %v", err)
		}
		for s.Scan() {
		}
		if diff := cmp.Diff(inflate.ErrDecompression, s.Err(), cmpopts.EquateErrors()); diff != "" {
			t.Fatalf("Err (-want, +got):\n%s", diff)
		}
	})
}
