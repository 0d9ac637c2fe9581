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

// Package config provides shared configuration mechanisms for packages this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// htmldiff.Option.
package config

import "znkr.io/htmldiff/internal/style"

// Config collects all configurable parameters for comparison functions in this module.
type Config struct {
	// Markers used to annotate changes.
	Style style.Style

	// If set, a <style> block with Style.Stylesheet is added to the output.
	Stylesheet bool

	// If set, both inputs are normalized with internal/tidy before they are compared.
	Tidy bool

	// If set, change groups are moved to tag and word boundaries.
	BoundaryHeuristic bool

	// If set, textdiff will apply indent heuristics.
	IndentHeuristic bool
}

// Default is the default configuration. Changed tags are not annotated by default.
var Default = Config{
	Style:             style.TagSuppressed,
	Stylesheet:        false,
	Tidy:              false,
	BoundaryHeuristic: false,
	IndentHeuristic:   false,
}

// Flag describes a single config entry. This is used to detect if configurations are being set
// that are not supported by a function.
type Flag int

const (
	Style Flag = 1 << iota
	Stylesheet
	Tidy
	BoundaryHeuristic
	IndentHeuristic
)

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case Style:
		return "htmldiff.Tags, htmldiff.Simple, or htmldiff.WithStyle"
	case Stylesheet:
		return "htmldiff.Stylesheet"
	case Tidy:
		return "htmldiff.Tidy"
	case BoundaryHeuristic:
		return "htmldiff.BoundaryHeuristic"
	case IndentHeuristic:
		return "textdiff.IndentHeuristic"
	default:
		panic("never reached")
	}
}
