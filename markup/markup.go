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

// Package markup renders the corpus markup dialect as styled text.
//
// The dialect is an HTML-like tag language of which only a few tags affect
// the output:
//
//	<br>          line break
//	<hw>..</hw>   headword, bold
//	<xr>..</xr>   cross reference
//	<upd>..</upd> update marker
//	<d>..</d>     definition
//	</e>, </sube> end of entry or sub-entry, paragraph break
//
// Other tags are dropped and their content is kept. Unbalanced tags are not
// an error: an unmatched close tag does nothing and an unclosed style stays
// active until the end of the input.
package markup

import (
	"slices"
	"strings"

	"github.com/k3a/html2text"
	"golang.org/x/net/html"
)

var tagStyles = map[string]Style{
	"hw":  Bold,
	"xr":  CrossReference,
	"upd": Update,
	"d":   Emphasis,
}

const (
	lineBreak      = "\n"
	paragraphBreak = "\n\n"
)

// Segment is a run of text and the styles active over it, outermost first.
type Segment struct {
	Text   string
	Styles []Style
}

// Text is rendered markup.
type Text struct {
	Segments []Segment
}

// Render renders markup.
func Render(s string) *Text {
	r := &renderer{}
	z := html.NewTokenizer(strings.NewReader(s))
	for {
		switch z.Next() {
		case html.ErrorToken:
			// The reader never fails so this is io.EOF.
			return &Text{Segments: r.segments}
		case html.TextToken:
			r.text(string(z.Text()))
		case html.StartTagToken:
			name, _ := z.TagName()
			r.open(string(name))
		case html.EndTagToken:
			name, _ := z.TagName()
			r.close(string(name))
		case html.SelfClosingTagToken:
			name, _ := z.TagName()
			r.open(string(name))
			r.close(string(name))
		case html.CommentToken, html.DoctypeToken:
		}
	}
}

// renderer is the rendering state machine. stack holds the active styles.
type renderer struct {
	stack    []Style
	segments []Segment
}

func (r *renderer) open(tag string) {
	if tag == "br" {
		r.emit(lineBreak, nil)
		return
	}
	if s, ok := tagStyles[tag]; ok {
		r.stack = append(r.stack, s)
	}
}

func (r *renderer) close(tag string) {
	switch tag {
	case "e", "sube":
		r.emit(paragraphBreak, nil)
		return
	}

	s, ok := tagStyles[tag]
	if !ok {
		return
	}
	// Pop the innermost matching style. An unmatched close is a no-op.
	for i := len(r.stack) - 1; i >= 0; i-- {
		if r.stack[i] == s {
			r.stack = slices.Delete(r.stack, i, i+1)
			return
		}
	}
}

func (r *renderer) text(s string) {
	r.emit(s, r.stack)
}

func (r *renderer) emit(s string, styles []Style) {
	if s == "" {
		return
	}
	if len(styles) == 0 {
		styles = nil
	}
	if n := len(r.segments); n > 0 && slices.Equal(r.segments[n-1].Styles, styles) {
		r.segments[n-1].Text += s
		return
	}
	r.segments = append(r.segments, Segment{
		Text:   s,
		Styles: slices.Clone(styles),
	})
}

// String returns the text without styles.
func (t *Text) String() string {
	var b strings.Builder
	for _, s := range t.Segments {
		b.WriteString(s.Text)
	}
	return b.String()
}

// ANSI returns the text with styles applied as ANSI escape sequences. Each
// styled run is wrapped in its styles' sequences and a reset. Runs spanning
// lines are wrapped line by line.
func (t *Text) ANSI() string {
	var b strings.Builder
	for _, s := range t.Segments {
		if len(s.Styles) == 0 {
			b.WriteString(s.Text)
			continue
		}
		for i, line := range strings.Split(s.Text, "\n") {
			if i > 0 {
				b.WriteByte('\n')
			}
			if line == "" {
				continue
			}
			for _, style := range s.Styles {
				b.WriteString(style.ANSI())
			}
			b.WriteString(line)
			b.WriteString(Reset)
		}
	}
	return b.String()
}

// Strip returns markup as single line plain text suitable for listings.
func Strip(s string) string {
	return strings.Join(strings.Fields(html2text.HTML2Text(s)), " ")
}
