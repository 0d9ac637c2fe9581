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

// Package render turns aligned token or line sequences into annotated HTML.
//
// All functions write to an in-memory buffer, write errors are ignored.
package render

import (
	"io"
	"iter"
	"regexp"
	"strings"

	"znkr.io/htmldiff/internal/byteview"
	"znkr.io/htmldiff/internal/rvecs"
	"znkr.io/htmldiff/internal/style"
	"znkr.io/htmldiff/internal/tokenizer"
)

// Tokens writes the diff of x and y to w.
//
// Equal tokens are written as is. Runs of deleted or inserted text are wrapped in the markers of
// st, unless they are blank. Changed tags are annotated individually: A deleted tag is replaced by
// its annotation, an inserted tag is written after its annotation so that the output has the
// structure of y.
func Tokens(w io.StringWriter, x, y []tokenizer.Token, spans iter.Seq[rvecs.Span], st style.Style) {
	for sp := range spans {
		switch sp.Op {
		case rvecs.Equal:
			writeTokens(w, x[sp.S0:sp.S1])
		case rvecs.Delete:
			deleted(w, x[sp.S0:sp.S1], st)
		case rvecs.Insert:
			inserted(w, y[sp.T0:sp.T1], st)
		case rvecs.Replace:
			if Invisible(x[sp.S0:sp.S1], y[sp.T0:sp.T1]) {
				writeTokens(w, y[sp.T0:sp.T1])
			} else {
				deleted(w, x[sp.S0:sp.S1], st)
				inserted(w, y[sp.T0:sp.T1], st)
			}
		}
	}
}

// Invisible reports if replacing x with y doesn't change the visible text: Both must have the same
// length and every pair of tokens at the same position must either be equal or both be whitespace.
func Invisible(x, y []tokenizer.Token) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if x[i].Kind == tokenizer.Whitespace && y[i].Kind == tokenizer.Whitespace {
			continue
		}
		if x[i].Text != y[i].Text {
			return false
		}
	}
	return true
}

func writeTokens(w io.StringWriter, toks []tokenizer.Token) {
	for _, tok := range toks {
		w.WriteString(tok.Text)
	}
}

func deleted(w io.StringWriter, toks []tokenizer.Token, st style.Style) {
	changed(w, toks, st.DeleteStart, st.DeleteEnd, st.AnnotateDelete, false)
}

func inserted(w io.StringWriter, toks []tokenizer.Token, st style.Style) {
	changed(w, toks, st.InsertStart, st.InsertEnd, st.AnnotateInsert, true)
}

// changed writes a run of deleted or inserted tokens. Text between tags is collected and written
// in one piece.
func changed(w io.StringWriter, toks []tokenizer.Token, start, end string, annotate func(string) string, keepTags bool) {
	var text strings.Builder
	for _, tok := range toks {
		if tok.Kind != tokenizer.Tag {
			text.WriteString(tok.Text)
			continue
		}
		flush(w, text.String(), start, end)
		text.Reset()
		w.WriteString(annotate(tok.Text))
		if keepTags {
			w.WriteString(tok.Text)
		}
	}
	flush(w, text.String(), start, end)
}

// Characters considered blank when deciding if a run of text needs markers.
const asciiSpace = " \t\n\v\f\r"

func flush(w io.StringWriter, text, start, end string) {
	if strings.Trim(text, asciiSpace) == "" {
		w.WriteString(text)
		return
	}
	w.WriteString(start)
	w.WriteString(text)
	w.WriteString(end)
}

// Lines writes the line diff of x and y to w.
//
// Every line is escaped, spaces and tabs are replaced so that the indentation is preserved, and
// the line is wrapped in <tt>...</tt><br>. Deleted and inserted lines are wrapped as a block in the
// markers of st.
func Lines(w io.StringWriter, x, y []string, spans iter.Seq[rvecs.Span], st style.Style) {
	for sp := range spans {
		if sp.Op == rvecs.Equal {
			writeLines(w, x[sp.S0:sp.S1])
			continue
		}
		if sp.Op == rvecs.Delete || sp.Op == rvecs.Replace {
			w.WriteString(st.DeleteStart)
			writeLines(w, x[sp.S0:sp.S1])
			w.WriteString(st.DeleteEnd)
		}
		if sp.Op == rvecs.Insert || sp.Op == rvecs.Replace {
			w.WriteString(st.InsertStart)
			writeLines(w, y[sp.T0:sp.T1])
			w.WriteString(st.InsertEnd)
		}
	}
}

var lineReplacer = strings.NewReplacer(
	"  ", "&nbsp; ",
	"\t", "&nbsp; &nbsp; &nbsp; &nbsp; ",
)

func writeLines(w io.StringWriter, lines []string) {
	for _, line := range lines {
		w.WriteString("<tt>")
		w.WriteString(EscapeLine(line))
		w.WriteString("</tt><br>\n")
	}
}

// EscapeLine escapes line for display in HTML and keeps runs of spaces and tabs visible.
func EscapeLine(line string) string {
	line = lineReplacer.Replace(style.Escape(line))
	if strings.HasPrefix(line, " ") {
		line = "&nbsp;" + line[1:]
	}
	return line
}

var headRE = regexp.MustCompile(`(?i)<[ \t\n\r\f\v]*head[ \t\n\r\f\v]*>`)

// HeadEnd returns the offset just after the first <head> tag in s or 0 if there is none.
func HeadEnd(s string) int {
	loc := headRE.FindStringIndex(s)
	if loc == nil {
		return 0
	}
	return loc[1]
}

// StyleBlock returns a <style> element containing css.
func StyleBlock(css string) string {
	return "<style type=\"text/css\"><!--\n" + css + "\n--></style>"
}

// AddStylesheet inserts a <style> element with css after the first <head> tag written to b, or at
// the start of b if there is none. Nothing is inserted if css is empty.
func AddStylesheet[T string | []byte](b *byteview.Builder[T], css string) {
	if css == "" {
		return
	}
	b.Insert(HeadEnd(b.View().String()), StyleBlock(css))
}
