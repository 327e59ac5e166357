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

package markup

// Style is a visual attribute applied to a run of text.
type Style int

const (
	// Bold is used for headwords.
	Bold Style = iota + 1

	// CrossReference is used for cross references.
	CrossReference

	// Update is used for update markers.
	Update

	// Emphasis is used for definitions.
	Emphasis
)

// Reset is the ANSI escape sequence that clears all styles.
const Reset = "\033[0m"

// ANSI returns the escape sequence that turns on the style.
func (s Style) ANSI() string {
	switch s {
	case Bold:
		return "\033[1m"
	case CrossReference:
		return "\033[94m"
	case Update:
		return "\033[91m"
	case Emphasis:
		return "\033[95m\033[1m"
	default:
		return ""
	}
}

// String returns the style name.
func (s Style) String() string {
	switch s {
	case Bold:
		return "bold"
	case CrossReference:
		return "cross-reference"
	case Update:
		return "update"
	case Emphasis:
		return "emphasis"
	default:
		return "unknown"
	}
}
