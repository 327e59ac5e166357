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

// Package oed implements offline lookup in the Oxford English Dictionary
// (2nd ed.) CD-ROM corpus in pure Go.
//
// The corpus consists of several files:
//  1. A metadata file (oed.yaml) that names the other files and carries the
//     block count and offset tables and the entity table.
//  2. A headword index (hw.t). It is a single zlib stream of '^' separated
//     headwords. A headword's position in the index is its entry position.
//  3. An optional key index (ky.t) that holds alternative search keys. It is
//     consulted when a query matches no headword.
//  4. A data file (oed.t) holding the definitions as a sequence of zlib
//     compressed blocks whose two header bytes are stored zeroed.
//
// Definitions are written in an SGML-like markup which can be rendered to
// ANSI styled text with the markup package.
package oed
