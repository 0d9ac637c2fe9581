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

// Package tokenizer splits HTML into the units that are compared by the diff: tags, words,
// whitespace runs and punctuation.
//
// The tokenizer is deliberately not an HTML parser. It applies three rules in a fixed order:
//
//  1. Comments (<!-- ... -->) are removed.
//  2. Tags are cut out. A <script ...>...</script> block is a single tag, any other <...> region up
//     to the first '>' is a tag.
//  3. The text between tags is split into words, whitespace runs (including &nbsp;) and single
//     punctuation characters.
//
// Except for comments, concatenating the text of all tokens reproduces the input.
package tokenizer

import "strings"

// Kind describes the kind of a token.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Kind
type Kind int

const (
	Tag         Kind = iota // A tag including all attributes, or a whole script block
	Word                    // A run of characters that are neither whitespace nor punctuation
	Whitespace              // A run of spaces, tabs, newlines, carriage returns and &nbsp;
	Punctuation             // A single punctuation character
)

// Token is the smallest unit of comparison.
//
// The kind of a token is determined by its text, two tokens are equal iff their text is equal.
type Token struct {
	Kind Kind
	Text string
}

const (
	commentStart = "<!--"
	commentEnd   = "-->"
	scriptStart  = "<script"
	scriptEnd    = "</script>"
	nbsp         = "&nbsp;"
)

// Tokenize removes all comments from s and splits the remainder into tokens.
func Tokenize(s string) []Token {
	s = StripComments(s)
	var toks []Token
	for len(s) > 0 {
		start, end := nextTag(s)
		if start < 0 {
			// Unterminated tags end up here and are split like any other text.
			toks = appendText(toks, s)
			break
		}
		toks = appendText(toks, s[:start])
		toks = append(toks, Token{Tag, s[start:end]})
		s = s[end:]
	}
	return toks
}

// StripComments removes all <!-- ... --> comments from s. A comment may span multiple lines and
// ends at the first "-->".
func StripComments(s string) string {
	i := strings.Index(s, commentStart)
	if i < 0 {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for i >= 0 {
		j := strings.Index(s[i+len(commentStart):], commentEnd)
		if j < 0 {
			break // unterminated comment, keep it as text
		}
		sb.WriteString(s[:i])
		s = s[i+len(commentStart)+j+len(commentEnd):]
		i = strings.Index(s, commentStart)
	}
	sb.WriteString(s)
	return sb.String()
}

// nextTag returns the bounds of the leftmost tag in s or -1, -1 if there is none.
func nextTag(s string) (start, end int) {
	start = strings.IndexByte(s, '<')
	if start < 0 {
		return -1, -1
	}
	// If there is no '>' after the first '<', there can't be one after any later '<' either.
	gt := strings.IndexByte(s[start+1:], '>')
	if gt < 0 {
		return -1, -1
	}
	if strings.HasPrefix(s[start:], scriptStart) {
		rest := s[start+len(scriptStart):]
		if open := strings.IndexByte(rest, '>'); open >= 0 {
			if close := strings.Index(rest[open+1:], scriptEnd); close >= 0 {
				return start, start + len(scriptStart) + open + 1 + close + len(scriptEnd)
			}
		}
	}
	return start, start + 1 + gt + 1
}

// appendText splits s into words, whitespace and punctuation and appends them to toks.
func appendText(toks []Token, s string) []Token {
	for i := 0; i < len(s); {
		switch {
		case isSpace(s[i]) || strings.HasPrefix(s[i:], nbsp):
			j := skipBlank(s, i)
			toks = append(toks, Token{Whitespace, s[i:j]})
			i = j
		case isPunct(s[i]):
			toks = append(toks, Token{Punctuation, s[i : i+1]})
			i++
		default:
			j := i + 1
			for j < len(s) && !isSpace(s[j]) && !isPunct(s[j]) {
				j++
			}
			toks = append(toks, Token{Word, s[i:j]})
			i = j
		}
	}
	return toks
}

// skipBlank returns the end of the whitespace run that starts at s[i].
func skipBlank(s string, i int) int {
	for i < len(s) {
		switch {
		case isSpace(s[i]):
			i++
		case strings.HasPrefix(s[i:], nbsp):
			i += len(nbsp)
		default:
			return i
		}
	}
	return i
}

// IsBlank reports if s is a non-empty run of spaces, tabs, newlines, carriage returns and &nbsp;
// entities. Blank elements are junk for the alignment: they never anchor a match on their own.
func IsBlank(s string) bool {
	return len(s) > 0 && skipBlank(s, 0) == len(s)
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isPunct(c byte) bool {
	switch c {
	case ',', '.', '&', ';', '/', '#', '=', '<', '>', '(', ')', '-':
		return true
	default:
		return false
	}
}
