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

// Package idx implements reading corpus index files.
//
// An index file is a single zlib stream. Once inflated it is utf-8 text made
// of entry records separated by a single character:
//  1. The headword index (hw.t) separates records with '^' and has no
//     preamble.
//  2. The key index (ky.t) separates records with '#' and starts with a
//     preamble fragment which is not an entry.
//
// An entry's position is its place in split order. Positions are the stable
// identifiers used to locate an entry's definition in the data file.
package idx
