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
	"znkr.io/htmldiff/internal/byteview"
	"znkr.io/htmldiff/internal/config"
	"znkr.io/htmldiff/internal/myers"
	"znkr.io/htmldiff/internal/render"
	"znkr.io/htmldiff/internal/rvecs"
	"znkr.io/htmldiff/internal/slider"
	"znkr.io/htmldiff/internal/tidy"
	"znkr.io/htmldiff/internal/tokenizer"
)

// Token is the unit of comparison: a tag, a word, a whitespace run, or a punctuation character.
type Token = tokenizer.Token

// Kind describes the kind of a token.
type Kind = tokenizer.Kind

const (
	Tag         = tokenizer.Tag         // A tag including all attributes, or a whole script block
	Word        = tokenizer.Word        // A run of characters that are neither whitespace nor punctuation
	Whitespace  = tokenizer.Whitespace  // A run of spaces, tabs, newlines, carriage returns and &nbsp;
	Punctuation = tokenizer.Punctuation // A single punctuation character out of ,.&;/#=<>()-
)

// Op describes an edit operation.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Op
type Op int

const (
	Equal   Op = iota // x[PosX:EndX] and y[PosY:EndY] are equal
	Delete            // x[PosX:EndX] is deleted, PosY == EndY
	Insert            // y[PosY:EndY] is inserted, PosX == EndX
	Replace           // x[PosX:EndX] is replaced by y[PosY:EndY]
)

// Edit describes a contiguous region of both inputs with a single edit operation.
type Edit struct {
	Op         Op
	PosX, EndX int // Start and end position in x.
	PosY, EndY int // Start and end position in y.
}

// Tokenize removes all comments from s and splits the rest into tokens. Concatenating the text of
// all tokens yields s without comments.
//
// Tags are cut out first: <script ...>...</script> is a single tag, any other <...> up to the first
// '>' is a tag. The text between tags is split into words, whitespace runs (including &nbsp;), and
// single punctuation characters.
func Tokenize[T string | []byte](s T) []Token {
	return tokenizer.Tokenize(string(s))
}

// Edits compares x and y and returns the edit operations to convert x to y.
//
// The edits are ordered and cover both inputs: the X ranges partition x and the Y ranges partition
// y. Consecutive deletions and insertions between two matches are combined into one Replace edit.
// Whitespace tokens never anchor a match, they only match next to other matching tokens. Two
// tokens are equal if both their kind and their text are equal.
//
// If x and y are identical, the output is a single Equal edit (or nothing if both are empty).
//
// The following option is supported: [htmldiff.BoundaryHeuristic]
//
// Important: The output is not guaranteed to be stable and may change with minor version upgrades.
// DO NOT rely on the output being stable.
func Edits(x, y []Token, opts ...Option) []Edit {
	cfg := config.FromOptions(opts, config.BoundaryHeuristic)
	rx, ry := align(x, y, cfg)
	var out []Edit
	for sp := range rvecs.Ops(rx, ry) {
		out = append(out, Edit{
			Op:   opFrom(sp.Op),
			PosX: sp.S0,
			EndX: sp.S1,
			PosY: sp.T0,
			EndY: sp.T1,
		})
	}
	return out
}

// Diff compares the HTML documents x and y and returns y annotated with the differences.
//
// Deleted text is inserted at the position it was deleted from and marked as deleted, inserted
// text is marked as inserted, and runs of whitespace are never marked. Deleted tags are dropped and
// inserted tags are kept, so that the output has the tag structure of y. Depending on the style,
// changed tags are annotated with a marker next to their position.
//
// The following options are supported: [htmldiff.Tags], [htmldiff.Simple], [htmldiff.WithStyle],
// [htmldiff.Stylesheet], [htmldiff.Tidy], [htmldiff.BoundaryHeuristic]
//
// Important: The output is not guaranteed to be stable and may change with minor version upgrades.
// DO NOT rely on the output being stable.
func Diff[T string | []byte](x, y T, opts ...Option) T {
	cfg := config.FromOptions(opts, config.Style|config.Stylesheet|config.Tidy|config.BoundaryHeuristic)

	// The views and the tokens never leave this function, the output is copied into a new buffer.
	xs, ys := byteview.From(x).String(), byteview.From(y).String()
	if cfg.Tidy {
		xs, ys = tidy.HTML(xs), tidy.HTML(ys)
	}
	xt, yt := tokenizer.Tokenize(xs), tokenizer.Tokenize(ys)
	rx, ry := align(xt, yt, cfg)

	var b byteview.Builder[T]
	b.Grow(len(ys))
	render.Tokens(&b, xt, yt, rvecs.Ops(rx, ry), cfg.Style)
	if cfg.Stylesheet {
		render.AddStylesheet(&b, cfg.Style.Stylesheet)
	}
	return b.Build()
}

func align(x, y []Token, cfg config.Config) (rx, ry []bool) {
	rx, ry = myers.Diff(x, y, isJunk)
	if cfg.BoundaryHeuristic {
		slider.Apply(x, y, rx, ry, boundaryScore)
	}
	return rx, ry
}

func isJunk(tok Token) bool { return tok.Kind == Whitespace }

func opFrom(op rvecs.Op) Op {
	switch op {
	case rvecs.Equal:
		return Equal
	case rvecs.Delete:
		return Delete
	case rvecs.Insert:
		return Insert
	case rvecs.Replace:
		return Replace
	default:
		panic("never reached")
	}
}
