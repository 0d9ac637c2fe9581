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

package slider

// Indentation is clamped to maxIndent.
const maxIndent = 200

// Don't look at more than this number of consecutive blank lines around a split.
const maxBlanks = 20

const (
	startOfFilePenalty              = 1   // No non-blank lines before the split
	endOfFilePenalty                = 21  // No non-blank lines after the split
	totalBlankWeight                = -30 // Weight for number of blank lines around the split
	postBlankWeight                 = 6   // Weight for number of blank lines after the split
	relativeIndentPenalty           = -4  // Indented more than predecessor
	relativeIndentWithBlankPenalty  = 10  // Indented more than predecessor, with blank lines
	relativeOutdentPenalty          = 24  // Indented less than predecessor
	relativeOutdentWithBlankPenalty = 17  // Indented less than predecessor, with blank lines
	relativeDentPenalty             = 23  // Indented less than predecessor but not less than successor
	relativeDentWithBlankPenalty    = 17  // Indented less than predecessor but not less than successor, with blank lines
)

// IndentScore rates a split between lines by the indentation and the blank lines around it. Level
// is the effective indentation at the split.
func IndentScore(lines []string, split int) Score {
	indent := -1 // -1 for blank lines and the end of the input
	if split < len(lines) {
		indent = lineIndent(lines[split])
	}

	preBlank, preIndent := 0, -1
	for i := split - 1; i >= 0; i-- {
		if preIndent = lineIndent(lines[i]); preIndent != -1 {
			break
		}
		if preBlank++; preBlank == maxBlanks {
			preIndent = 0
			break
		}
	}

	postBlank, postIndent := 0, -1
	for i := split + 1; i < len(lines); i++ {
		if postIndent = lineIndent(lines[i]); postIndent != -1 {
			break
		}
		if postBlank++; postBlank == maxBlanks {
			postIndent = 0
			break
		}
	}

	var sc Score
	if preIndent == -1 && preBlank == 0 {
		sc.Penalty += startOfFilePenalty
	}
	if split >= len(lines) {
		sc.Penalty += endOfFilePenalty
	}

	if indent == -1 {
		postBlank++
	} else {
		postBlank = 0
	}
	totalBlank := preBlank + postBlank
	sc.Penalty += totalBlankWeight*totalBlank + postBlankWeight*postBlank

	if indent == -1 {
		indent = postIndent
	}
	sc.Level = indent

	switch {
	case indent == -1 || preIndent == -1 || indent == preIndent:
		// No adjustment.
	case indent > preIndent:
		if totalBlank != 0 {
			sc.Penalty += relativeIndentWithBlankPenalty
		} else {
			sc.Penalty += relativeIndentPenalty
		}
	case postIndent != -1 && postIndent > indent:
		// Indented less than the predecessor but the next line is indented more, this is likely
		// the start of a new block.
		if totalBlank != 0 {
			sc.Penalty += relativeOutdentWithBlankPenalty
		} else {
			sc.Penalty += relativeOutdentPenalty
		}
	default:
		if totalBlank != 0 {
			sc.Penalty += relativeDentWithBlankPenalty
		} else {
			sc.Penalty += relativeDentPenalty
		}
	}
	return sc
}

// lineIndent returns the indentation of line with tabs expanded to multiples of 8, or -1 if the
// line is blank.
func lineIndent(line string) int {
	indent := 0
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case ' ':
			indent++
		case '\t':
			indent += 8 - indent%8
		case '\n', '\v', '\r', '\f':
		default:
			return indent
		}
		if indent >= maxIndent {
			return maxIndent
		}
	}
	return -1
}
