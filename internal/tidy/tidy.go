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

// Package tidy normalizes HTML before it is compared. Whitespace is collapsed and comments are
// removed, the document structure and all tags are kept.
package tidy

import (
	"sync"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/html"
)

const mediaType = "text/html"

var minifier = sync.OnceValue(func() *minify.M {
	m := minify.New()
	m.Add(mediaType, &html.Minifier{
		KeepDocumentTags:    true,
		KeepEndTags:         true,
		KeepQuotes:          true,
		KeepDefaultAttrVals: true,
	})
	return m
})

// HTML returns the normalized form of s. If s can't be normalized, it's returned unchanged.
func HTML(s string) string {
	out, err := minifier().String(mediaType, s)
	if err != nil {
		return s
	}
	return out
}
