// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package fixedarray

import (
	"iter"
	"slices"

	"github.com/bufbuild/fixedarray/internal/ext/unsafex"
)

// All returns an iterator over the indices and values of the live elements,
// like [slices.All].
//
// The set of elements is fixed when iteration begins.
func (a *Array[T, S]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range a.Slice() {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Values returns an iterator over the live elements, like [slices.Values].
func (a *Array[T, S]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range a.Slice() {
			if !yield(v) {
				return
			}
		}
	}
}

// Backward returns an iterator over the live elements in reverse, like
// [slices.Backward].
func (a *Array[T, S]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range slices.Backward(a.Slice()) {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Pointers returns an iterator over pointers to the live elements, which may
// be used to modify them in place.
func (a *Array[T, S]) Pointers() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		s := a.Slice()
		for i := range s {
			if !yield(i, &s[i]) {
				return
			}
		}
	}
}

// UnsafeIter returns an iterator that reads elements directly out of the
// backing storage.
//
// The iterator captures the array's address and its current length. It never
// looks at the array's length again, so it does not observe pushes, pops, or
// any other mutation: after such a change it may yield stale or zeroed slots,
// or stop early. Callers must not mutate the array while the iterator is in
// use; the iterator cannot detect a violation of this rule.
func (a *Array[T, S]) UnsafeIter() UnsafeIter[T] {
	return UnsafeIter[T]{base: a.Ptr(), len: a.len}
}

// UnsafeIter is a forward-only iterator over raw storage, produced by
// [Array.UnsafeIter].
//
// Once exhausted, it stays exhausted.
type UnsafeIter[T any] struct {
	base     *T
	idx, len int
}

// Next returns the next element and advances the iterator. Returns false once
// every element has been read.
func (it *UnsafeIter[T]) Next() (v T, ok bool) {
	if it.idx >= it.len {
		return v, false
	}
	v = *unsafex.Add(it.base, it.idx)
	it.idx++
	return v, true
}

// Len returns the number of elements left to read.
func (it *UnsafeIter[T]) Len() int {
	return it.len - it.idx
}

// All returns an iterator that drains it.
func (it *UnsafeIter[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
