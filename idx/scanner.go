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

package idx

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/ianlewis/go-oed/internal/inflate"
)

// ErrInvalidSeparator indicates that the separator is an invalid value.
var ErrInvalidSeparator = errors.New("invalid separator")

// maxRecordSize is the largest record the Scanner accepts.
const maxRecordSize = 1 << 20

// Scanner scans an index from start to end.
type Scanner struct {
	r   io.Closer
	s   *bufio.Scanner
	sep byte

	// open is true while the last record returned was terminated by a
	// separator, meaning a (possibly empty) record follows it.
	open bool
}

// ScannerOptions are options for scanning an index file.
type ScannerOptions struct {
	// Separator is the record separator.
	Separator byte
}

// DefaultScannerOptions is the default options for a Scanner.
var DefaultScannerOptions = &ScannerOptions{
	Separator: '^',
}

// NewScanner returns a new index scanner that inflates the compressed index
// in r and scans it from start to end. The Scanner assumes ownership of the
// reader and should be closed with the Close method.
func NewScanner(r io.ReadCloser, options *ScannerOptions) (*Scanner, error) {
	if options == nil {
		options = DefaultScannerOptions
	}

	if options.Separator == 0 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSeparator, options.Separator)
	}

	z, err := inflate.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("reading index: %w", err)
	}

	s := &Scanner{
		r:    r,
		s:    bufio.NewScanner(bufio.NewReader(z)),
		sep:  options.Separator,
		open: true,
	}
	s.s.Buffer(nil, maxRecordSize)
	s.s.Split(s.splitRecord)
	return s, nil
}

// Scan advances the index to the next record. It returns false if the scan
// stops either by reaching the end of the index or an error.
func (s *Scanner) Scan() bool {
	return s.s.Scan()
}

// Err returns the first error encountered.
func (s *Scanner) Err() error {
	//nolint:wrapcheck // error should not be wrapped
	return s.s.Err()
}

// Close closes the underlying reader.
func (s *Scanner) Close() error {
	err := s.r.Close()
	if err != nil {
		return fmt.Errorf("closing index file: %w", err)
	}
	return nil
}

// Text returns the current record.
func (s *Scanner) Text() string {
	return s.s.Text()
}

// splitRecord splits a record in the index file. Like strings.Split, a
// trailing separator yields a final empty record.
func (s *Scanner) splitRecord(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if i := bytes.IndexByte(data, s.sep); i >= 0 {
		s.open = true
		return i + 1, data[:i], nil
	}

	if atEOF {
		if len(data) == 0 {
			if s.open {
				s.open = false
				return 0, []byte{}, nil
			}
			return 0, nil, nil
		}
		s.open = false
		return len(data), data, nil
	}

	// Request more data.
	return 0, nil, nil
}
