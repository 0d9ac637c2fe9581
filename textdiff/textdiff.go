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

// Package textdiff compares text line by line and renders the result as HTML.
package textdiff

import (
	"znkr.io/htmldiff"
	"znkr.io/htmldiff/internal/byteview"
	"znkr.io/htmldiff/internal/config"
	"znkr.io/htmldiff/internal/myers"
	"znkr.io/htmldiff/internal/render"
	"znkr.io/htmldiff/internal/rvecs"
	"znkr.io/htmldiff/internal/slider"
	"znkr.io/htmldiff/internal/tokenizer"
)

// HTML compares the lines in x and y and returns an HTML rendering of the differences.
//
// Lines are split at '\n'. Every line is escaped, spaces and tabs are replaced with non-breaking
// spaces so that the indentation is preserved, and the line is written as <tt>...</tt><br>
// followed by a newline. Runs of deleted and inserted lines are wrapped as a block in the markers
// of the style. Blank lines never anchor a match.
//
// The following options are supported: [htmldiff.Tags], [htmldiff.Simple],
// [htmldiff.WithStyle], [htmldiff.Stylesheet], [IndentHeuristic]
//
// Important: The output is not guaranteed to be stable and may change with minor version upgrades.
// DO NOT rely on the output being stable.
func HTML[T string | []byte](x, y T, opts ...htmldiff.Option) T {
	cfg := config.FromOptions(opts, config.Style|config.Stylesheet|config.IndentHeuristic)

	xlines, ylines := byteview.From(x).Lines(), byteview.From(y).Lines()
	rx, ry := myers.Diff(xlines, ylines, tokenizer.IsBlank)
	if cfg.IndentHeuristic {
		slider.Apply(xlines, ylines, rx, ry, slider.IndentScore)
	}

	var b byteview.Builder[T]
	b.Grow(len(x) + len(y))
	render.Lines(&b, xlines, ylines, rvecs.Ops(rx, ry), cfg.Style)
	if cfg.Stylesheet {
		render.AddStylesheet(&b, cfg.Style.Stylesheet)
	}
	return b.Build()
}
