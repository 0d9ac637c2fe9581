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

// Package slider moves groups of deletions and insertions to positions that are easier to read
// without changing the size of the diff.
//
// A group of changes is a slider if it can be moved: A deletion of x[i:j] followed by a match of
// x[j] == x[i] is the same diff as a match of x[i] followed by a deletion of x[i+1:j+1]. The same is
// true for insertions and in the other direction. Apply uses this freedom as follows:
//
//  1. Groups are slid as far as possible in both directions and merged with adjacent groups.
//  2. If a deletion group can be aligned with an insertion group so that they form a single
//     replacement, it is aligned.
//  3. Otherwise, the group is moved to the position with the best score. The score is computed by a
//     caller provided function for the elements around the start and the end of the group.
//
// The idea and the scanner are based on the indentation heuristic by Michael Haggerty
// (https://github.com/mhagger/diff-slider-tools).
package slider

import "cmp"

// Never move a group more than this many elements.
const maxSliding = 100

// The level of two scores is only compared by sign, the result is weighted with levelWeight and
// added to the difference of the penalties.
const levelWeight = 60

// Score rates a split between two elements, smaller is better.
type Score struct {
	Level   int
	Penalty int
}

// add adds the score of one end of a group.
func (s Score) add(o Score) Score {
	return Score{s.Level + o.Level, s.Penalty + o.Penalty}
}

func (s Score) cmp(o Score) int {
	return levelWeight*cmp.Compare(s.Level, o.Level) + s.Penalty - o.Penalty
}

// ScoreFunc rates the split of seq in front of seq[split]. The split is in [0, len(seq)].
type ScoreFunc[T any] func(seq []T, split int) Score

// Apply slides the groups in rx and ry. It's applied to deletions first and then to insertions.
func Apply[T comparable](x, y []T, rx, ry []bool, score ScoreFunc[T]) {
	apply0(x, rx, ry, score) // for deletions
	apply0(y, ry, rx, score) // for insertions
}

// apply0 slides the groups in r, ro is the result vector for the other input and is only used to
// align groups.
func apply0[T comparable](seq []T, r, ro []bool, score ScoreFunc[T]) {
	s, so := newScanner(seq, r), newScanner[T](nil, ro)
	for s.nextGroup() {
		if !so.nextGroup() {
			panic("scanner sync broken")
		}

		if s.groupLen() == 0 {
			continue
		}

		matchingEnd := -1 // End of group that aligns with other input.
		minEnd := s.end   // Smallest end that the group can be shifted to.
		grpLen := 0
		for grpLen != s.groupLen() {
			grpLen = s.groupLen()
			matchingEnd = -1

			// Slide up as much as possible and merge with adjacent groups.
			for s.slideGroupUp() {
				if !so.prevGroup() {
					panic("scanner sync broken")
				}
			}

			minEnd = s.end
			if so.groupLen() > 0 {
				matchingEnd = s.end
			}

			// Slide down as much as possible and merge with adjacent groups.
			for s.slideGroupDown() {
				if !so.nextGroup() {
					panic("scanner sync broken")
				}
				if so.groupLen() > 0 {
					matchingEnd = s.end
				}
			}
		}

		switch {
		case minEnd == s.end:
			// no shifting possible
		case matchingEnd != -1:
			// Align with the group in the other input.
			for so.groupLen() == 0 {
				if !s.slideGroupUp() {
					panic("match disappeared")
				}
				if !so.prevGroup() {
					panic("scanner sync broken")
				}
			}
		default:
			// The group is at its lowest position, only upward shifts need to be considered.
			bestShift := -1
			var bestScore Score
			for shift := max(minEnd, s.end-grpLen-1, s.end-maxSliding); shift <= s.end; shift++ {
				sc := score(seq, shift).add(score(seq, shift-grpLen))
				if bestShift == -1 || sc.cmp(bestScore) <= 0 {
					bestShift = shift
					bestScore = sc
				}
			}

			for s.end > bestShift {
				if !s.slideGroupUp() {
					panic("best shift not found")
				}
				if !so.prevGroup() {
					panic("scanner sync broken")
				}
			}
		}
	}

	if so.nextGroup() {
		panic("scanner sync broken")
	}
}

// scanner walks over the groups in a result vector. Every run of changes is a group and between
// two unchanged elements there's an empty group.
type scanner[T comparable] struct {
	start int // First changed element of the current group if non-empty, or unchanged element if empty.
	end   int // First unchanged element after the group. For an empty group, start == end.
	seq   []T
	r     []bool
}

func newScanner[T comparable](seq []T, r []bool) *scanner[T] {
	return &scanner[T]{
		start: -1,
		end:   -1,
		seq:   seq,
		r:     r,
	}
}

// groupLen returns the length of the current group.
func (s *scanner[T]) groupLen() int { return s.end - s.start }

// nextGroup moves s to the next (possibly empty) group and returns true. Returns false if the end
// is reached.
func (s *scanner[T]) nextGroup() bool {
	if s.end == len(s.r)-1 {
		return false
	}
	s.start, s.end = s.end+1, s.end+1
	for s.end < len(s.r)-1 && s.r[s.end] {
		s.end++
	}
	return true
}

// prevGroup moves s to the previous (possibly empty) group and returns true. Returns false if the
// beginning is reached.
func (s *scanner[T]) prevGroup() bool {
	if s.start == 0 {
		return false
	}
	s.start, s.end = s.start-1, s.start-1
	for s.start > 0 && s.r[s.start-1] {
		s.start--
	}
	return true
}

// slideGroupDown tries to slide the group down by one and merges it with the group below if they
// touch. Returns false if the group can't be moved.
func (s *scanner[T]) slideGroupDown() bool {
	if s.end >= len(s.r)-1 || s.seq[s.start] != s.seq[s.end] {
		return false
	}
	s.r[s.start], s.r[s.end] = false, true
	s.start++
	s.end++
	for s.end < len(s.r)-1 && s.r[s.end] {
		s.end++
	}
	return true
}

// slideGroupUp tries to slide the group up by one and merges it with the group above if they
// touch. Returns false if the group can't be moved.
func (s *scanner[T]) slideGroupUp() bool {
	if s.start <= 0 || s.seq[s.start-1] != s.seq[s.end-1] {
		return false
	}
	s.r[s.start-1], s.r[s.end-1] = true, false
	s.start--
	s.end--
	for s.start > 0 && s.r[s.start-1] {
		s.start--
	}
	return true
}
