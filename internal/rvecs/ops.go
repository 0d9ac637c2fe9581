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

package rvecs

import "iter"

// Op describes the kind of a span.
type Op int

const (
	Equal   Op = iota // x[S0:S1] and y[T0:T1] match
	Delete            // x[S0:S1] is deleted, T0 == T1
	Insert            // y[T0:T1] is inserted, S0 == S1
	Replace           // x[S0:S1] is replaced by y[T0:T1]
)

// Span describes a contiguous region of both inputs with a single edit operation.
type Span struct {
	Op     Op
	S0, S1 int // Start and end of the span in x.
	T0, T1 int // Start and end of the span in y.
}

// Ops returns the spans described by rx and ry in order. Consecutive matches are combined into
// one Equal span and all deletions and insertions between two matches are combined into one
// Delete, Insert, or Replace span.
//
// The spans partition x and y: the end of a span is the start of the next one and the last span
// ends at len(x) and len(y) respectively.
func Ops(rx, ry []bool) iter.Seq[Span] {
	return func(yield func(Span) bool) {
		s, t := 0, 0 // current index into x, y
		n, m := len(rx)-1, len(ry)-1
		for s < n || t < m {
			s0, t0 := s, t
			var op Op
			if rx[s] || ry[t] {
				for s < n && rx[s] {
					s++
				}
				for t < m && ry[t] {
					t++
				}
				switch {
				case s > s0 && t > t0:
					op = Replace
				case s > s0:
					op = Delete
				default:
					op = Insert
				}
			} else {
				for s < n && t < m && !rx[s] && !ry[t] {
					s++
					t++
				}
				if s == s0 {
					panic("result vectors are out of sync")
				}
				op = Equal
			}
			if !yield(Span{op, s0, s, t0, t}) {
				return
			}
		}
	}
}
