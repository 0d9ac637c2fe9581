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

// Package htmldiff compares two HTML documents word by word and renders the differences as HTML.
//
// Unlike a line based diff, [Diff] splits both documents into tags, words, whitespace and
// punctuation (see [Tokenize]), aligns the two token sequences with a minimal edit script, and
// writes the new document with markers around deleted and inserted text. Tags are atomic: a changed
// tag is never split and never wrapped in a marker, so the output keeps the tag structure of the
// new document. Whitespace runs only match next to other matches and a replacement that only
// changes whitespace is not marked at all.
//
// By default, only text changes are marked with <span class="insert"> and <span class="delete">.
// Use [Tags] to annotate changed tags as well, [Simple] for a plain text +[...] and -[...]
// notation, or [WithStyle] for custom markers. [Stylesheet] adds CSS for the default markers to
// the output.
//
// Performance: Time complexity is O(ND) where N is the number of tokens in both documents and D is
// the number of changed tokens.
//
// Note: For a line-by-line diff of text rendered as HTML, please see [znkr.io/htmldiff/textdiff].
//
// [znkr.io/htmldiff/textdiff]: https://pkg.go.dev/znkr.io/htmldiff/textdiff
package htmldiff
