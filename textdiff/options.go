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

package textdiff

import (
	"znkr.io/htmldiff"
	"znkr.io/htmldiff/internal/config"
)

// IndentHeuristic moves blocks of deleted or inserted lines in the output of [HTML] so that they
// start and end at indentation boundaries. A block of lines can often be placed in more than one
// position with the same number of changed lines; the heuristic prefers the position where the
// marked block covers whole indented sections and blank lines separate it from its neighbours.
func IndentHeuristic() htmldiff.Option {
	return func(cfg *config.Config) config.Flag {
		cfg.IndentHeuristic = true
		return config.IndentHeuristic
	}
}
