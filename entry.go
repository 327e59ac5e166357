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

package oed

import (
	"github.com/ianlewis/go-oed/internal/folding"
	"github.com/ianlewis/go-oed/markup"
)

// Entry is a dictionary entry.
type Entry struct {
	position int
	headword string
	markup   string
}

// Position returns the entry's position.
func (e *Entry) Position() int {
	return e.position
}

// Title returns the entry's headword with entities substituted. It is empty
// if the headword index was not loaded.
func (e *Entry) Title() string {
	return e.headword
}

// Markup returns the resolved definition markup.
func (e *Entry) Markup() string {
	return e.markup
}

// Text returns the rendered definition.
func (e *Entry) Text() *markup.Text {
	return markup.Render(e.markup)
}

// Render returns the definition as ANSI styled text folded to width. A width
// less than 1 disables folding.
func (e *Entry) Render(width int) string {
	return folding.Fold(e.Text().ANSI(), width)
}

// Plain returns the definition as unstyled text folded to width.
func (e *Entry) Plain(width int) string {
	return folding.Fold(e.Text().String(), width)
}

// String returns the unstyled, unfolded definition.
func (e *Entry) String() string {
	return e.Text().String()
}
