// Copyright 2025 Florian Zenker (flo@znkr.io)
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

// Package style defines the markers used to annotate changes in rendered diffs.
package style

import "strings"

// Style is the set of markers used to annotate a diff.
type Style struct {
	// Markers around a run of inserted text.
	InsertStart, InsertEnd string

	// Markers around a run of deleted text.
	DeleteStart, DeleteEnd string

	// Annotations for inserted and deleted tags. The tag is passed verbatim, an annotation must
	// escape it if necessary. A nil function annotates nothing.
	InsertTag, DeleteTag func(tag string) string

	// CSS for the markers. Empty if the markers don't need a stylesheet.
	Stylesheet string
}

// Default CSS for the Decorated and TagSuppressed styles.
const css = `
.insert { background-color: #aaffaa }
.delete { background-color: #ff8888; text-decoration: line-through }
.tagInsert { background-color: #007700; color: #ffffff }
.tagDelete { background-color: #770000; color: #ffffff }
`

var (
	// Decorated wraps changes in <span> elements with CSS classes and annotates changed tags
	// with an escaped copy of the tag.
	Decorated = Style{
		InsertStart: `<span class="insert">`,
		InsertEnd:   `</span>`,
		DeleteStart: `<span class="delete">`,
		DeleteEnd:   `</span>`,
		InsertTag: func(tag string) string {
			return `<span class="tagInsert">insert: <tt>` + Escape(tag) + `</tt></span>`
		},
		DeleteTag: func(tag string) string {
			return `<span class="tagDelete">delete: <tt>` + Escape(tag) + `</tt></span>`
		},
		Stylesheet: css,
	}

	// TagSuppressed is like Decorated but doesn't annotate changed tags.
	TagSuppressed = Style{
		InsertStart: Decorated.InsertStart,
		InsertEnd:   Decorated.InsertEnd,
		DeleteStart: Decorated.DeleteStart,
		DeleteEnd:   Decorated.DeleteEnd,
		Stylesheet:  css,
	}

	// Bracket marks changes with +[...] and -[...]. Tags are reproduced verbatim inside the
	// brackets.
	Bracket = Style{
		InsertStart: "+[",
		InsertEnd:   "]",
		DeleteStart: "-[",
		DeleteEnd:   "]",
		InsertTag:   func(tag string) string { return "+[" + tag + "]" },
		DeleteTag:   func(tag string) string { return "-[" + tag + "]" },
	}
)

// AnnotateInsert returns the annotation for an inserted tag.
func (s Style) AnnotateInsert(tag string) string {
	if s.InsertTag == nil {
		return ""
	}
	return s.InsertTag(tag)
}

// AnnotateDelete returns the annotation for a deleted tag.
func (s Style) AnnotateDelete(tag string) string {
	if s.DeleteTag == nil {
		return ""
	}
	return s.DeleteTag(tag)
}

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// Escape replaces &, <, > and " in s with HTML entities. Single quotes are kept.
func Escape(s string) string { return escaper.Replace(s) }
