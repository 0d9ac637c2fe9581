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

package htmldiff

import (
	"fmt"
	"strings"
	"testing"
)

// largeDocument returns a document with n paragraphs. Every k-th paragraph is changed in y.
func largeDocument(n, k int) (x, y string) {
	var xb, yb strings.Builder
	xb.WriteString("<html><head><title>bench</title></head><body>\n")
	yb.WriteString("<html><head><title>bench</title></head><body>\n")
	for i := range n {
		fmt.Fprintf(&xb, "<p class=\"p%d\">Paragraph %d has <b>some</b> text, and more text.</p>\n", i%7, i)
		if i%k == 0 {
			fmt.Fprintf(&yb, "<p class=\"p%d\">Paragraph %d had <i>other</i> text; and more.</p>\n", i%7, i)
		} else {
			fmt.Fprintf(&yb, "<p class=\"p%d\">Paragraph %d has <b>some</b> text, and more text.</p>\n", i%7, i)
		}
	}
	xb.WriteString("</body></html>\n")
	yb.WriteString("</body></html>\n")
	return xb.String(), yb.String()
}

func BenchmarkDiff(b *testing.B) {
	for _, tt := range parseTests(b) {
		b.Run("name="+tt.name, func(b *testing.B) {
			for b.Loop() {
				_ = Diff(tt.x, tt.y)
			}
		})
	}

	for _, n := range []int{100, 1000} {
		x, y := largeDocument(n, 10)
		for _, boundaries := range []bool{false, true} {
			var opts []Option
			if boundaries {
				opts = append(opts, BoundaryHeuristic())
			}
			b.Run(fmt.Sprintf("paragraphs=%d/boundaries=%v", n, boundaries), func(b *testing.B) {
				b.SetBytes(int64(len(x) + len(y)))
				for b.Loop() {
					_ = Diff(x, y, opts...)
				}
			})
		}
	}
}

func BenchmarkTokenize(b *testing.B) {
	x, _ := largeDocument(1000, 10)
	b.SetBytes(int64(len(x)))
	for b.Loop() {
		_ = Tokenize(x)
	}
}
