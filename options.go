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
	"znkr.io/htmldiff/internal/config"
	"znkr.io/htmldiff/internal/style"
)

// Option configures the behavior of comparison functions.
type Option = config.Option

// Style is a set of markers used to annotate changes. See [WithStyle].
type Style = style.Style

// Predefined styles.
var (
	// Decorated marks text changes with <span class="insert"> and <span class="delete"> and
	// annotates changed tags with <span class="tagInsert"> and <span class="tagDelete">.
	Decorated = style.Decorated

	// TagSuppressed is Decorated without tag annotations. This is the default.
	TagSuppressed = style.TagSuppressed

	// Bracket marks changes with +[...] and -[...], changed tags are written verbatim inside the
	// brackets. It has no stylesheet.
	Bracket = style.Bracket
)

// Tags annotates changed tags in addition to changed text, using the [Decorated] style.
func Tags() Option {
	return WithStyle(style.Decorated)
}

// Simple uses the [Bracket] style. This is mostly useful for testing.
func Simple() Option {
	return WithStyle(style.Bracket)
}

// WithStyle uses the markers in s to annotate changes. If more than one of [Tags], [Simple], or
// [WithStyle] is used, the last one wins.
func WithStyle(s Style) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Style = s
		return config.Style
	}
}

// Stylesheet adds a <style> element with the stylesheet of the selected style to the output. The
// element is inserted directly after the first <head> tag, or at the very beginning of the output
// if there is no <head> tag. Nothing is added for styles without a stylesheet.
func Stylesheet() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Stylesheet = true
		return config.Stylesheet
	}
}

// Tidy normalizes both documents before comparing them: Whitespace is collapsed and comments are
// removed. This avoids many insignificant changes for documents that were formatted differently.
func Tidy() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Tidy = true
		return config.Tidy
	}
}

// BoundaryHeuristic applies a heuristic to make diffs easier to read by improving the placement of
// edit boundaries.
//
// The diff often has some freedom where to put a run of changes, e.g. inserting "<b>a</b> " after
// "<b>a</b> " is the same as inserting " <b>a</b>" after "<b>a</b>". The heuristic moves runs of
// changes so that they start and end at tag boundaries, or at least at whitespace.
func BoundaryHeuristic() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.BoundaryHeuristic = true
		return config.BoundaryHeuristic
	}
}
