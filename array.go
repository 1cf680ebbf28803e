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
	"fmt"
	"unsafe"

	"github.com/bufbuild/fixedarray/internal/ext/slicesx"
	"github.com/bufbuild/fixedarray/internal/ext/unsafex"
)

// Array is a vector of at most len(S) elements, stored inline.
//
// Only the first [Array.Len] slots of the backing array are live. The
// remaining slots always hold valid values of type T, but those values carry
// no meaning: they are either zero or left over from earlier operations.
//
// Copying an Array copies all of its slots. An Array is not comparable with
// ==; use [Equal] instead, which only compares live elements.
//
// A zero Array is empty and ready to use.
type Array[T any, S Storage[T]] struct {
	_ [0]chan int // Make the type incomparable.

	data S
	len  int // Invariant: 0 <= len <= len(data).
}

// Sequence is anything that can be viewed as a slice, such as an [Array] of
// any capacity.
type Sequence[T any] interface {
	Slice() []T
}

// Len returns the number of live elements.
func (a *Array[T, S]) Len() int {
	return a.len
}

// Cap returns the capacity of the array, which is the length of S.
func (a *Array[T, S]) Cap() int {
	return len(a.data)
}

// IsEmpty returns whether the array holds no elements.
func (a *Array[T, S]) IsEmpty() bool {
	return a.len == 0
}

// IsFull returns whether the array has no room for another element.
func (a *Array[T, S]) IsFull() bool {
	return a.len == len(a.data)
}

// SetLen sets the number of live elements.
//
// Growing the array this way makes whatever values are in the newly live
// slots visible, which may be zeros or stale values.
//
// Panics if n is negative or greater than the capacity.
func (a *Array[T, S]) SetLen(n int) {
	if n < 0 || n > len(a.data) {
		panic(&CapacityError{Op: "set length", Want: n, Cap: len(a.data)})
	}
	a.len = n
}

// UnsafeBuf returns a pointer to the whole backing array, including slots past
// the length of the array.
//
// Writes through the returned pointer bypass every invariant that the other
// methods maintain, except that they cannot change the length.
func (a *Array[T, S]) UnsafeBuf() *S {
	return &a.data
}

// Slice returns a slice aliasing the live elements of the array.
//
// The returned slice's capacity is clipped to its length, so appending to it
// will not write into the array's free slots. It is invalidated by any
// operation that changes the array's length.
func (a *Array[T, S]) Slice() []T {
	return a.buf()[:a.len:a.len]
}

// ToSlice returns a freshly allocated copy of the live elements.
func (a *Array[T, S]) ToSlice() []T {
	out := make([]T, a.len)
	copy(out, a.buf())
	return out
}

// Get returns the element at idx, or false if idx is not less than the
// length.
func (a *Array[T, S]) Get(idx int) (T, bool) {
	return slicesx.Get(a.Slice(), idx)
}

// Ref is like [Array.Get], but returns a pointer to the element, which may be
// used to modify it in place. Returns nil if idx is out of range.
func (a *Array[T, S]) Ref(idx int) *T {
	return slicesx.GetPointer(a.Slice(), idx)
}

// At returns the element at idx.
//
// Panics if idx is out of range.
func (a *Array[T, S]) At(idx int) T {
	p := a.Ref(idx)
	if p == nil {
		panic(&IndexError{Op: "at", Index: idx, Len: a.len})
	}
	return *p
}

// SetAt sets the element at idx.
//
// Panics if idx is out of range.
func (a *Array[T, S]) SetAt(idx int, v T) {
	p := a.Ref(idx)
	if p == nil {
		panic(&IndexError{Op: "set", Index: idx, Len: a.len})
	}
	*p = v
}

// UncheckedAt returns the slot at idx without checking it against the length
// or the capacity.
//
// idx must be in [0, Len()). Indices past the length read stale slots, and
// indices past the capacity read arbitrary memory.
func (a *Array[T, S]) UncheckedAt(idx int) T {
	return *unsafex.Add(a.Ptr(), idx)
}

// UncheckedRef is like [Array.UncheckedAt], but returns a pointer to the slot.
func (a *Array[T, S]) UncheckedRef(idx int) *T {
	return unsafex.Add(a.Ptr(), idx)
}

// First returns the first element, or false if the array is empty.
func (a *Array[T, S]) First() (T, bool) {
	return a.Get(0)
}

// FirstRef returns a pointer to the first element, or nil if the array is
// empty.
func (a *Array[T, S]) FirstRef() *T {
	return a.Ref(0)
}

// Last returns the last element, or false if the array is empty.
func (a *Array[T, S]) Last() (T, bool) {
	return slicesx.Last(a.Slice())
}

// LastRef returns a pointer to the last element, or nil if the array is
// empty.
func (a *Array[T, S]) LastRef() *T {
	return slicesx.LastPointer(a.Slice())
}

// Push appends v to the end of the array.
//
// Panics if the array is full; check [Array.IsFull] first if that is possible.
func (a *Array[T, S]) Push(v T) {
	if a.len == len(a.data) {
		panic(&CapacityError{Op: "push", Want: a.len + 1, Cap: len(a.data)})
	}
	a.data[a.len] = v
	a.len++
}

// Pop removes and returns the last element, or returns false if the array is
// empty.
//
// The vacated slot is zeroed, so the array does not keep the popped value
// reachable.
func (a *Array[T, S]) Pop() (v T, ok bool) {
	if a.len == 0 {
		return v, false
	}
	a.len--
	v = a.data[a.len]
	var zero T
	a.data[a.len] = zero
	return v, true
}

// Insert inserts v at idx, shifting the elements at and after idx one slot to
// the right. idx may be equal to the length, in which case this is the same as
// [Array.Push].
//
// Panics if idx is negative or greater than the length, or if the array is
// full.
func (a *Array[T, S]) Insert(idx int, v T) {
	if idx < 0 || idx > a.len {
		panic(&IndexError{Op: "insert", Index: idx, Len: a.len})
	}
	if a.len == len(a.data) {
		panic(&CapacityError{Op: "insert", Want: a.len + 1, Cap: len(a.data)})
	}

	buf := a.buf()
	// copy has memmove semantics, so the overlapping ranges are fine.
	copy(buf[idx+1:a.len+1], buf[idx:a.len])
	buf[idx] = v
	a.len++
}

// Remove removes and returns the element at idx, shifting the elements after
// it one slot to the left.
//
// Panics if idx is out of range.
func (a *Array[T, S]) Remove(idx int) T {
	if idx < 0 || idx >= a.len {
		panic(&IndexError{Op: "remove", Index: idx, Len: a.len})
	}

	buf := a.buf()
	v := buf[idx]
	copy(buf[idx:a.len-1], buf[idx+1:a.len])
	a.len--

	var zero T
	buf[a.len] = zero
	return v
}

// Append copies the elements of other onto the end of this array. other may
// have any capacity, and may be this array itself.
//
// Panics if the combined length exceeds this array's capacity.
func (a *Array[T, S]) Append(other Sequence[T]) {
	a.append("append", other.Slice())
}

// AppendSlice is like [Array.Append], but takes the elements to append
// directly.
func (a *Array[T, S]) AppendSlice(values ...T) {
	a.append("append slice", values)
}

func (a *Array[T, S]) append(op string, values []T) {
	if len(values) > len(a.data)-a.len {
		panic(&CapacityError{Op: op, Want: a.len + len(values), Cap: len(a.data)})
	}
	copy(a.buf()[a.len:], values)
	a.len += len(values)
}

// Truncate shortens the array to n elements. If n is not less than the
// length, this does nothing. A negative n empties the array.
//
// The slots past the new length are left as they are.
func (a *Array[T, S]) Truncate(n int) {
	if n >= a.len {
		return
	}
	a.len = max(n, 0)
}

// Clear empties the array. The backing storage is left as it is.
func (a *Array[T, S]) Clear() {
	a.len = 0
}

// Retain removes every element for which keep returns false, preserving the
// order of the others.
//
// Slots vacated at the end of the array are zeroed.
func (a *Array[T, S]) Retain(keep func(T) bool) {
	buf := a.buf()
	n := 0
	for i := range a.len {
		if keep(buf[i]) {
			buf[n] = buf[i]
			n++
		}
	}
	clear(buf[n:a.len])
	a.len = n
}

// Filter returns a copy of this array with only the elements for which keep
// returns true, in their original order. The receiver is not modified.
func (a *Array[T, S]) Filter(keep func(T) bool) Array[T, S] {
	var out Array[T, S]
	buf := out.buf()
	for _, v := range a.Slice() {
		if keep(v) {
			buf[out.len] = v
			out.len++
		}
	}
	return out
}

// Clone returns a copy of this array holding the same live elements. Unlike
// a plain assignment, slots past the length are left zero in the copy.
func (a *Array[T, S]) Clone() Array[T, S] {
	var out Array[T, S]
	out.len = copy(out.buf(), a.Slice())
	return out
}

// CloneFunc returns a copy of this array whose live elements are produced by
// calling clone on each of this array's elements.
//
// A plain assignment already copies an Array; CloneFunc is for element types
// that need a deep copy, such as slices or maps.
func (a *Array[T, S]) CloneFunc(clone func(T) T) Array[T, S] {
	var out Array[T, S]
	buf := out.buf()
	for i, v := range a.Slice() {
		buf[i] = clone(v)
	}
	out.len = a.len
	return out
}

// Ptr returns a pointer to the first slot of the backing storage.
//
// The pointer is valid even when the array is empty, in which case it must not
// be dereferenced. Offsetting it past [Array.Cap] is undefined behavior.
func (a *Array[T, S]) Ptr() *T {
	return unsafex.Cast[T](&a.data)
}

// PtrRange returns the range of slots spanned by the backing storage,
// including slots past the length: start is [Array.Ptr] and n is [Array.Cap].
//
// Go cannot hold a pointer one past the end of an object, so the end of the
// range is expressed as a count. unsafe.Slice(start, n) views the whole range.
func (a *Array[T, S]) PtrRange() (start *T, n int) {
	return a.Ptr(), len(a.data)
}

// Offset returns the index of the slot that p points to, or -1 if p does not
// point at a live element of this array.
func (a *Array[T, S]) Offset(p *T) int {
	return slicesx.PointerIndex(a.Slice(), p)
}

// Format implements [fmt.Formatter].
//
// The array is printed as if it were a slice of its live elements.
func (a Array[T, S]) Format(state fmt.State, verb rune) {
	fmt.Fprintf(state, fmt.FormatString(state, verb), a.Slice())
}

// buf returns the whole backing storage, live and stale slots alike.
func (a *Array[T, S]) buf() []T {
	return unsafe.Slice(a.Ptr(), len(a.data))
}
