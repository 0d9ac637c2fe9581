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

// Package myers aligns two sequences with the linear space variant of Myers' algorithm and returns
// the alignment as result vectors (see package rvecs).
//
// The alignment knows about junk: elements that are never used to anchor a match. Junk elements
// are removed before the search and are only matched afterwards, when they are adjacent to a match
// (or to the common prefix or suffix) on both sides. For HTML this means that a run of whitespace
// matches only when a neighbouring word, tag or punctuation character matches too.
//
// The search itself always produces a minimal edit script. Inputs are tokenized HTML documents and
// rarely large enough to warrant the usual cost limiting heuristics.
//
// # Myers Algorithm
//
// All edit scripts from x to y are paths through a grid from (0,0) to (N,M). A step to the right
// deletes x[s], a step down inserts y[t], and a diagonal step from (s,t) to (s+1,t+1) is a match
// and only exists where x[s] == y[t]. A minimal edit script is a path with the fewest non-diagonal
// steps. Diagonals are numbered with k = s - t.
//
// Myers' greedy algorithm keeps, for every diagonal k, the furthest reaching path with d
// non-diagonal steps in a v-array and extends it to d+1 steps. The linear space variant runs a
// forward search from (0,0) and a backward search from (N,M) simultaneously until they overlap.
// The overlap yields a, possibly empty, run of diagonals in the middle of an optimal path and the
// problem is split into the rectangles before and after it.
//
// Myers, E.W. An O(ND) difference algorithm and its variations. Algorithmica 1, 251-266 (1986).
// https://doi.org/10.1007/BF01840446
package myers

import (
	"math"

	"znkr.io/htmldiff/internal/rvecs"
)

// Diff aligns x and y and returns the result vectors. If junk is not nil, elements for which it
// returns true don't take part in the search and are only matched next to other matches.
func Diff[T comparable](x, y []T, junk func(T) bool) (rx, ry []bool) {
	if junk == nil {
		junk = func(T) bool { return false }
	}

	smin, tmin := 0, 0
	smax, tmax := len(x), len(y)

	// Strip common prefix.
	for smin < smax && tmin < tmax && x[smin] == y[tmin] {
		smin++
		tmin++
	}

	// Strip common suffix.
	for smax > smin && tmax > tmin && x[smax-1] == y[tmax-1] {
		smax--
		tmax--
	}

	rx, ry = rvecs.Make(x, y)

	// Handle trivial cases without doing anything extra.
	switch {
	case smin != smax && tmin == tmax:
		for s := smin; s < smax; s++ {
			rx[s] = true
		}
		return rx, ry
	case smin == smax && tmin != tmax:
		for t := tmin; t < tmax; t++ {
			ry[t] = true
		}
		return rx, ry
	case smin == smax && tmin == tmax:
		return rx, ry
	}

	// Reduce the problem to the elements that can anchor a match: Junk and elements that appear
	// only in x or only in y are marked as changes right away. All other elements get an integer
	// ID for the search.
	//
	//  - scan x and assign a negative id to every element in x
	//  - scan y and flip the sign of every element that also appears in x
	ids := make(map[T]int, smax-smin)
	for s := smin; s < smax; s++ {
		if !junk(x[s]) && ids[x[s]] == 0 {
			ids[x[s]] = -(len(ids) + 1)
		}
	}
	ny := 0
	for t := tmin; t < tmax; t++ {
		if junk(y[t]) {
			continue
		}
		if id := ids[y[t]]; id < 0 {
			ids[y[t]] = -id
			ny++
		} else if id > 0 {
			ny++
		}
	}
	nx := 0
	for s := smin; s < smax; s++ {
		if !junk(x[s]) && ids[x[s]] > 0 {
			nx++
		}
	}
	buf := make([]int, 2*(nx+ny))
	var x0, y0, xidx, yidx []int
	x0, buf = buf[:0:nx], buf[nx:]
	y0, buf = buf[:0:ny], buf[ny:]
	xidx, buf = buf[:0:nx], buf[nx:]
	yidx = buf[:0:ny]
	for s := smin; s < smax; s++ {
		if id := ids[x[s]]; id > 0 && !junk(x[s]) {
			xidx = append(xidx, s)
			x0 = append(x0, id)
		} else {
			rx[s] = true
		}
	}
	for t := tmin; t < tmax; t++ {
		if id := ids[y[t]]; id > 0 && !junk(y[t]) {
			yidx = append(yidx, t)
			y0 = append(y0, id)
		} else {
			ry[t] = true
		}
	}

	var m myers
	m.xidx, m.yidx = xidx, yidx
	m.rx, m.ry = rx, ry
	m.compare(m.init(x0, y0))

	attachJunk(x, y, rx, ry, smin, smax, tmin, tmax, junk)
	return rx, ry
}

// attachJunk matches runs of equal junk elements in x[smin:smax] and y[tmin:tmax] that directly
// follow or precede a match. The boundaries of the range count as matches.
func attachJunk[T comparable](x, y []T, rx, ry []bool, smin, smax, tmin, tmax int, junk func(T) bool) {
	ok := func(s, t int) bool {
		return rx[s] && ry[t] && x[s] == y[t] && junk(x[s])
	}
	forward := func(s, t int) {
		for s++; s < smax && t+1 < tmax && ok(s, t+1); s++ {
			t++
			rx[s], ry[t] = false, false
		}
	}
	backward := func(s, t int) {
		for s--; s >= smin && t-1 >= tmin && ok(s, t-1); s-- {
			t--
			rx[s], ry[t] = false, false
		}
	}

	// Collect the matches first, extending them right away would create new matches.
	var pairs [][2]int
	s, t := smin, tmin
	for {
		for s < smax && rx[s] {
			s++
		}
		for t < tmax && ry[t] {
			t++
		}
		if s == smax || t == tmax {
			break
		}
		pairs = append(pairs, [2]int{s, t})
		s++
		t++
	}

	forward(smin-1, tmin-1)
	for _, p := range pairs {
		backward(p[0], p[1])
		forward(p[0], p[1])
	}
	backward(smax, tmax)
}

type myers struct {
	// Inputs to compare.
	x, y []int

	// v-arrays for forwards and backwards iteration respectively. A v-array stores the furthest
	// reaching endpoint of a d-path in diagonal k in v[v0+k] where v0 is the offset that
	// translates k in [-d, d] to k0 = v0+k in [0, 2*d]. The endpoints only store the s-coordinate
	// since t = s - k.
	vf, vb []int
	v0     int

	// Mapping of s, t indices to the location in the result vectors.
	xidx, yidx []int

	// Result vectors.
	rx, ry []bool
}

func (m *myers) init(x, y []int) (smin, smax, tmin, tmax int) {
	diagonals := len(x) + len(y)
	vlen := 2*diagonals + 3    // +1 for the middle point and +2 for the borders
	buf := make([]int, 2*vlen) // allocate space for vf and vb with a single allocation

	m.x = x
	m.y = y
	m.vf = buf[:vlen]
	m.vb = buf[vlen:]
	m.v0 = diagonals + 1 // +1 for the middle point

	if m.xidx == nil || m.yidx == nil {
		idx := make([]int, max(len(x), len(y)))
		for i := range idx {
			idx[i] = i
		}
		m.xidx = idx[:len(x)]
		m.yidx = idx[:len(y)]
	}

	if m.rx == nil || m.ry == nil {
		m.rx, m.ry = rvecs.Make(x, y)
	}
	return 0, len(x), 0, len(y)
}

// compare finds an optimal d-path from (smin, tmin) to (smax, tmax).
func (m *myers) compare(smin, smax, tmin, tmax int) {
	x, y := m.x, m.y
	for smin < smax && tmin < tmax && x[smin] == y[tmin] {
		smin++
		tmin++
	}
	for smax > smin && tmax > tmin && x[smax-1] == y[tmax-1] {
		smax--
		tmax--
	}

	switch {
	case smin == smax:
		// x is empty, therefore everything in tmin to tmax is an insertion.
		for t := tmin; t < tmax; t++ {
			m.ry[m.yidx[t]] = true
		}
	case tmin == tmax:
		// y is empty, therefore everything in smin to smax is a deletion.
		for s := smin; s < smax; s++ {
			m.rx[m.xidx[s]] = true
		}
	default:
		// Divide the input into the rectangle before the middle diagonals, the diagonals, and the
		// rectangle after them.
		s0, s1, t0, t1 := m.split(smin, smax, tmin, tmax)
		m.compare(smin, s0, tmin, t0)
		m.compare(s1, smax, t1, tmax)
	}
}

// split finds the endpoints of a, potentially empty, sequence of diagonals in the middle of an
// optimal path from (smin, tmin) to (smax, tmax).
//
// Important: x[smin:smax] and y[tmin:tmax] must not have a common prefix or a common suffix and
// they may not both be empty.
func (m *myers) split(smin, smax, tmin, tmax int) (s0, s1, t0, t1 int) {
	N, M := smax-smin, tmax-tmin
	x, y := m.x, m.y
	vf, vb := m.vf, m.vb
	v0 := m.v0

	// Bounds for k = s - t.
	kmin, kmax := smin-tmax, smax-tmin

	// The forward and backward searches are centered around different diagonals, this way both
	// use the same numbering for k and no conversion is needed when checking for an overlap.
	fmid, bmid := smin-tmin, smax-tmax
	fmin, fmax := fmid, fmid
	bmin, bmax := bmid, bmid

	// The length of an optimal path is odd iff N-M is odd. An overlap can only be found in the
	// forward search for odd lengths and only in the backward search for even lengths.
	odd := (N-M)%2 != 0

	// There is no common prefix or suffix, so d=0 is trivial and the loop starts at d=1.
	vf[v0+fmid] = smin
	vb[v0+bmid] = smax
	for d := 1; ; d++ {
		// Forwards iteration.
		//
		// The bounds for k are kept inside the grid. The diagonal just outside the bounds is set
		// to a sentinel so that the borders don't need special handling in the k-loop.
		if fmin > kmin {
			fmin--
			vf[v0+fmin-1] = math.MinInt
		} else {
			fmin++
		}
		if fmax < kmax {
			fmax++
			vf[v0+fmax+1] = math.MinInt
		} else {
			fmax--
		}
		for k := fmin; k <= fmax; k += 2 {
			k0 := k + v0

			// Extend the furthest reaching path from diagonal k+1 with a vertical step or the one
			// from diagonal k-1 with a horizontal step. On a tie, deletions come first.
			var s int
			if vf[k0-1] < vf[k0+1] {
				s = vf[k0+1]
			} else {
				s = vf[k0-1] + 1
			}
			t := s - k

			// Then follow the diagonals as long as possible.
			s0, t0 := s, t
			for s < smax && t < tmax && x[s] == y[t] {
				s++
				t++
			}
			vf[k0] = s

			if odd && bmin <= k && k <= bmax && s >= vb[k0] {
				return s0, s, t0, t
			}
		}

		// Backwards iteration, mirrors the forward iteration.
		if bmin > kmin {
			bmin--
			vb[v0+bmin-1] = math.MaxInt
		} else {
			bmin++
		}
		if bmax < kmax {
			bmax++
			vb[v0+bmax+1] = math.MaxInt
		} else {
			bmax--
		}
		for k := bmin; k <= bmax; k += 2 {
			k0 := k + v0
			var s int
			if vb[k0-1] < vb[k0+1] {
				s = vb[k0-1]
			} else {
				s = vb[k0+1] - 1
			}
			t := s - k

			s0, t0 := s, t
			for s > smin && t > tmin && x[s-1] == y[t-1] {
				s--
				t--
			}
			vb[k0] = s

			if !odd && fmin <= k && k <= fmax && s <= vf[v0+k] {
				return s, s0, t, t0
			}
		}
	}
}
