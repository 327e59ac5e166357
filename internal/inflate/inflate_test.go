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

package inflate_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ianlewis/go-oed/internal/inflate"
	"github.com/ianlewis/go-oed/internal/testutil"
)

func TestBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		data     []byte
		expected []byte
		err      error
	}{
		{
			name:     "valid stream",
			data:     testutil.Compress(t, []byte("hoge fuga")),
			expected: []byte("hoge fuga"),
		},
		{
			name: "empty input",
			data: []byte{},
			err:  inflate.ErrDecompression,
		},
		{
			name: "not zlib",
			data: []byte("plain text is not zlib"),
			err:  inflate.ErrDecompression,
		},
		{
			name: "truncated stream",
			data: func() []byte {
				b := testutil.Compress(t, []byte("hoge fuga pico"))
				return b[:len(b)-4]
			}(),
			err: inflate.ErrDecompression,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got, err := inflate.Bytes(test.data)
			if diff := cmp.Diff(test.err, err, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("Bytes error (-want, +got):\n%s", diff)
			}
			if test.err != nil {
				return
			}
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Fatalf("Bytes (-want, +got):\n%s", diff)
			}
		})
	}
}
