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

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestOps(t *testing.T) {
	tests := []struct {
		name   string
		rx, ry []bool // without border
		want   []Span
	}{
		{
			name: "empty",
			want: nil,
		},
		{
			name: "identical",
			rx:   []bool{false, false, false},
			ry:   []bool{false, false, false},
			want: []Span{{Equal, 0, 3, 0, 3}},
		},
		{
			name: "x-empty",
			ry:   []bool{true, true},
			want: []Span{{Insert, 0, 0, 0, 2}},
		},
		{
			name: "y-empty",
			rx:   []bool{true, true},
			want: []Span{{Delete, 0, 2, 0, 0}},
		},
		{
			name: "ABCABBA_to_CBABAC",
			//  A      B      C     A      B      B     A
			rx: []bool{true, false, true, false, false, true, false},
			//  C      B      A      B      A      C
			ry: []bool{true, false, false, false, false, true},
			want: []Span{
				{Replace, 0, 1, 0, 1},
				{Equal, 1, 2, 1, 2},
				{Delete, 2, 3, 2, 2},
				{Equal, 3, 5, 2, 4},
				{Delete, 5, 6, 4, 4},
				{Equal, 6, 7, 4, 5},
				{Insert, 7, 7, 5, 6},
			},
		},
		{
			name: "replace-in-the-middle",
			rx:   []bool{false, true, true, false},
			ry:   []bool{false, true, false},
			want: []Span{
				{Equal, 0, 1, 0, 1},
				{Replace, 1, 3, 1, 2},
				{Equal, 3, 4, 2, 3},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rx := append(slices.Clone(tt.rx), false)
			ry := append(slices.Clone(tt.ry), false)
			got := slices.Collect(Ops(rx, ry))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Ops(...) result is different [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestOpsOutOfSync(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Ops(...) didn't panic for result vectors with a different number of matches")
		}
	}()
	for range Ops([]bool{false, false, false}, []bool{false, false}) {
	}
}
