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

// Package byteview provides a mechanism to handle strings and []byte as immutable byte views.
//
// The views returned for a []byte share memory with the slice. They must not outlive a call into
// this module and the slice must not be modified while they are in use.
package byteview

import (
	"slices"
	"strings"
	"sync"
	"unsafe"
)

type ByteView struct {
	data string
}

func From[T string | []byte](in T) ByteView {
	switch in := any(in).(type) {
	case string:
		return ByteView{in}
	case []byte:
		return ByteView{unsafe.String(unsafe.SliceData(in), len(in))}
	}
	panic("never reached")
}

func (v ByteView) Len() int { return len(v.data) }

// String returns the view as a string without copying.
func (v ByteView) String() string { return v.data }

// Lines splits v on '\n' and removes the separators. Like strings.Split, the result has one more
// element than there are newlines in v.
func (v ByteView) Lines() []string {
	return strings.Split(v.data, "\n")
}

// Builder builds a string or []byte with as few allocations as possible.
type Builder[T string | []byte] struct {
	_   [0]sync.Mutex // don't copy
	buf []byte
}

func (b *Builder[T]) Grow(n int) {
	b.buf = slices.Grow(b.buf, n)
}

func (b *Builder[T]) Len() int { return len(b.buf) }

func (b *Builder[T]) Write(v []byte) (n int, err error) {
	b.buf = append(b.buf, v...)
	return len(v), nil
}

func (b *Builder[T]) WriteString(v string) (n int, err error) {
	b.buf = append(b.buf, v...)
	return len(v), nil
}

// View returns the bytes written so far. The view is invalidated by the next write.
func (b *Builder[T]) View() ByteView {
	return ByteView{unsafe.String(unsafe.SliceData(b.buf), len(b.buf))}
}

// Insert inserts s at byte offset pos.
func (b *Builder[T]) Insert(pos int, s string) {
	b.buf = slices.Insert(b.buf, pos, []byte(s)...)
}

func (b *Builder[T]) Build() T {
	defer func() {
		b.buf = nil
	}()
	switch any((*T)(nil)).(type) {
	case *string:
		return T(unsafe.String(unsafe.SliceData(b.buf), len(b.buf)))
	case *[]byte:
		return T(b.buf)
	}
	panic("never reached")
}
