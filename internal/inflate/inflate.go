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

// Package inflate decompresses the zlib streams used by the corpus files.
package inflate

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
)

// ErrDecompression indicates that a zlib stream could not be inflated. It
// signals a damaged or mismatched corpus file.
var ErrDecompression = errors.New("decompression failed")

// NewReader returns a reader that inflates the zlib stream in r. Errors
// returned by Read are wrapped with ErrDecompression.
func NewReader(r io.Reader) (io.ReadCloser, error) {
	z, err := zlib.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecompression, err)
	}
	return &reader{z: z}, nil
}

// Bytes inflates a complete zlib stream.
func Bytes(b []byte) ([]byte, error) {
	r, err := NewReader(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		//nolint:wrapcheck // already wrapped by reader.
		return nil, err
	}
	return out, nil
}

type reader struct {
	z io.ReadCloser
}

func (r *reader) Read(p []byte) (int, error) {
	n, err := r.z.Read(p)
	if err != nil && !errors.Is(err, io.EOF) {
		return n, fmt.Errorf("%w: %w", ErrDecompression, err)
	}
	//nolint:wrapcheck // io.EOF must not be wrapped.
	return n, err
}

func (r *reader) Close() error {
	if err := r.z.Close(); err != nil {
		return fmt.Errorf("closing zlib reader: %w", err)
	}
	return nil
}
