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
	"strings"

	"znkr.io/htmldiff/internal/slider"
)

// Penalties for splitting a token sequence between two tokens, lower is better.
const (
	elementBoundaryPenalty = 0 // Before an opening tag or after a closing tag
	whitespacePenalty      = 1 // Next to whitespace
	innerBoundaryPenalty   = 2 // After an opening tag or before a closing tag
	punctuationPenalty     = 3 // Next to punctuation
	wordPenalty            = 4 // Between two words
)

// boundaryScore rates a split of toks in front of toks[split].
func boundaryScore(toks []Token, split int) slider.Score {
	if split == 0 || split == len(toks) {
		return slider.Score{Penalty: elementBoundaryPenalty}
	}
	before, after := toks[split-1], toks[split]
	var p int
	switch {
	case isOpeningTag(after) || isClosingTag(before):
		p = elementBoundaryPenalty
	case before.Kind == Whitespace || after.Kind == Whitespace:
		p = whitespacePenalty
	case isClosingTag(after) || isOpeningTag(before):
		p = innerBoundaryPenalty
	case before.Kind == Punctuation || after.Kind == Punctuation:
		p = punctuationPenalty
	default:
		p = wordPenalty
	}
	return slider.Score{Penalty: p}
}

func isClosingTag(tok Token) bool {
	return tok.Kind == Tag && strings.HasPrefix(tok.Text, "</")
}

func isOpeningTag(tok Token) bool {
	return tok.Kind == Tag && !strings.HasPrefix(tok.Text, "</")
}
