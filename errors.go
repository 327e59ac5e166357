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

package oed

import (
	"errors"

	"github.com/ianlewis/go-oed/dict"
	"github.com/ianlewis/go-oed/internal/inflate"
)

var (
	// ErrNotFound indicates that a query matched no headword or key.
	ErrNotFound = errors.New("not found")

	// ErrDataIntegrity indicates that the corpus tables are inconsistent.
	ErrDataIntegrity = dict.ErrDataIntegrity

	// ErrDecompression indicates that a compressed stream is corrupt.
	ErrDecompression = inflate.ErrDecompression
)
