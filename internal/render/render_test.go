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

package render

import (
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"znkr.io/htmldiff/internal/byteview"
	"znkr.io/htmldiff/internal/rvecs"
	"znkr.io/htmldiff/internal/style"
	"znkr.io/htmldiff/internal/tokenizer"
)

func TestTokens(t *testing.T) {
	tests := []struct {
		name  string
		x, y  string
		spans []rvecs.Span
		style style.Style
		want  string
	}{
		{
			name:  "replace-word",
			x:     "test1",
			y:     "test2",
			spans: []rvecs.Span{{Op: rvecs.Replace, S0: 0, S1: 1, T0: 0, T1: 1}},
			style: style.Decorated,
			want:  `<span class="delete">test1</span><span class="insert">test2</span>`,
		},
		{
			name: "invisible-replace",
			x:    "a b",
			y:    "a\nb",
			spans: []rvecs.Span{
				{Op: rvecs.Equal, S0: 0, S1: 1, T0: 0, T1: 1},
				{Op: rvecs.Replace, S0: 1, S1: 2, T0: 1, T1: 2},
				{Op: rvecs.Equal, S0: 2, S1: 3, T0: 2, T1: 3},
			},
			style: style.Decorated,
			want:  "a\nb",
		},
		{
			name:  "delete-tags-decorated",
			x:     "<b>x y</b>",
			y:     "",
			spans: []rvecs.Span{{Op: rvecs.Delete, S0: 0, S1: 5, T0: 0, T1: 0}},
			style: style.Decorated,
			want: `<span class="tagDelete">delete: <tt>&lt;b&gt;</tt></span>` +
				`<span class="delete">x y</span>` +
				`<span class="tagDelete">delete: <tt>&lt;/b&gt;</tt></span>`,
		},
		{
			name:  "delete-tags-bracket",
			x:     "<b>x y</b>",
			y:     "",
			spans: []rvecs.Span{{Op: rvecs.Delete, S0: 0, S1: 5, T0: 0, T1: 0}},
			style: style.Bracket,
			want:  "-[<b>]-[x y]-[</b>]",
		},
		{
			name:  "delete-tags-suppressed",
			x:     "<b>x y</b>",
			y:     "",
			spans: []rvecs.Span{{Op: rvecs.Delete, S0: 0, S1: 5, T0: 0, T1: 0}},
			style: style.TagSuppressed,
			want:  `<span class="delete">x y</span>`,
		},
		{
			name:  "insert-tags-bracket",
			x:     "",
			y:     "<i>new</i>",
			spans: []rvecs.Span{{Op: rvecs.Insert, S0: 0, S1: 0, T0: 0, T1: 3}},
			style: style.Bracket,
			want:  "+[<i>]<i>+[new]+[</i>]</i>",
		},
		{
			name:  "insert-tags-suppressed",
			x:     "",
			y:     "<i>new</i>",
			spans: []rvecs.Span{{Op: rvecs.Insert, S0: 0, S1: 0, T0: 0, T1: 3}},
			style: style.TagSuppressed,
			want:  `<i><span class="insert">new</span></i>`,
		},
		{
			name: "blank-text-is-not-marked",
			x:    "a b",
			y:    "ab",
			spans: []rvecs.Span{
				{Op: rvecs.Equal, S0: 0, S1: 1, T0: 0, T1: 1},
				{Op: rvecs.Delete, S0: 1, S1: 2, T0: 1, T1: 1},
				{Op: rvecs.Equal, S0: 2, S1: 3, T0: 1, T1: 2},
			},
			style: style.Bracket,
			want:  "a b",
		},
		{
			name:  "nbsp-is-marked",
			x:     "",
			y:     "&nbsp;",
			spans: []rvecs.Span{{Op: rvecs.Insert, S0: 0, S1: 0, T0: 0, T1: 1}},
			style: style.Bracket,
			want:  "+[&nbsp;]",
		},
		{
			name: "visible-replace",
			x:    "a, b",
			y:    "a; b",
			spans: []rvecs.Span{
				{Op: rvecs.Equal, S0: 0, S1: 1, T0: 0, T1: 1},
				{Op: rvecs.Replace, S0: 1, S1: 2, T0: 1, T1: 2},
				{Op: rvecs.Equal, S0: 2, S1: 4, T0: 2, T1: 4},
			},
			style: style.Bracket,
			want:  "a-[,]+[;] b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sb strings.Builder
			Tokens(&sb, tokenizer.Tokenize(tt.x), tokenizer.Tokenize(tt.y), slices.Values(tt.spans), tt.style)
			if diff := cmp.Diff(tt.want, sb.String()); diff != "" {
				t.Errorf("Tokens(...) result is different [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestInvisible(t *testing.T) {
	tests := []struct {
		x, y string
		want bool
	}{
		{"", "", true},
		{" ", "\n", true},
		{"a b", "a&nbsp;b", true},
		{"a b", "a  b", true},
		{"a b", "ab", false},
		{"a b", "a c", false},
		{"<b>", "<i>", false},
		{"a", "b", false},
		{" ", "x", false},
	}
	for _, tt := range tests {
		got := Invisible(tokenizer.Tokenize(tt.x), tokenizer.Tokenize(tt.y))
		if got != tt.want {
			t.Errorf("Invisible(%q, %q) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
		// Invisibility is symmetric.
		if rev := Invisible(tokenizer.Tokenize(tt.y), tokenizer.Tokenize(tt.x)); rev != got {
			t.Errorf("Invisible(%q, %q) = %v, but Invisible(%q, %q) = %v", tt.x, tt.y, got, tt.y, tt.x, rev)
		}
	}
}

func TestLines(t *testing.T) {
	x := []string{"a", "  b", "\tc"}
	y := []string{"a", "x", " d"}
	spans := []rvecs.Span{
		{Op: rvecs.Equal, S0: 0, S1: 1, T0: 0, T1: 1},
		{Op: rvecs.Replace, S0: 1, S1: 3, T0: 1, T1: 3},
	}
	want := "<tt>a</tt><br>\n" +
		"-[<tt>&nbsp; b</tt><br>\n<tt>&nbsp; &nbsp; &nbsp; &nbsp; c</tt><br>\n]" +
		"+[<tt>x</tt><br>\n<tt>&nbsp;d</tt><br>\n]"

	var sb strings.Builder
	Lines(&sb, x, y, slices.Values(spans), style.Bracket)
	if diff := cmp.Diff(want, sb.String()); diff != "" {
		t.Errorf("Lines(...) result is different [-want,+got]:\n%s", diff)
	}
}

func TestEscapeLine(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"a<b", "a&lt;b"},
		{`"q"`, "&quot;q&quot;"},
		{"   x", "&nbsp;  x"},
		{" x  y", "&nbsp;x&nbsp; y"},
		{"\t ", "&nbsp; &nbsp; &nbsp; &nbsp;  "},
	}
	for _, tt := range tests {
		if got := EscapeLine(tt.in); got != tt.want {
			t.Errorf("EscapeLine(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestHeadEnd(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"no head here", 0},
		{"<html><HEAD>", 12},
		{"< head >x", 8},
		{"<head\n>", 7},
		{"<header>", 0},
		{"<head><head>", 6},
	}
	for _, tt := range tests {
		if got := HeadEnd(tt.in); got != tt.want {
			t.Errorf("HeadEnd(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestStyleBlock(t *testing.T) {
	got := StyleBlock("\n.x { }\n")
	want := "<style type=\"text/css\"><!--\n\n.x { }\n\n--></style>"
	if got != want {
		t.Errorf("StyleBlock(...) = %q, want %q", got, want)
	}
}

func TestAddStylesheet(t *testing.T) {
	tests := []struct {
		name, in, css, want string
	}{
		{
			name: "no-head",
			in:   "<p>x</p>",
			css:  "c",
			want: "<style type=\"text/css\"><!--\nc\n--></style><p>x</p>",
		},
		{
			name: "after-head",
			in:   "<html><Head><title>t</title>",
			css:  "c",
			want: "<html><Head><style type=\"text/css\"><!--\nc\n--></style><title>t</title>",
		},
		{
			name: "empty-css",
			in:   "<p>x</p>",
			css:  "",
			want: "<p>x</p>",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b byteview.Builder[string]
			b.WriteString(tt.in)
			AddStylesheet(&b, tt.css)
			if diff := cmp.Diff(tt.want, b.Build()); diff != "" {
				t.Errorf("AddStylesheet(...) result is different [-want,+got]:\n%s", diff)
			}
		})
	}
}
