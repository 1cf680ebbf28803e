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
	"cmp"
	"slices"
)

// New returns an empty array backed by S. It is equivalent to the zero Array.
//
// Because Go cannot infer T from S, both must be given:
//
//	a := fixedarray.New[[16]byte, byte]()
func New[S Storage[T], T any]() Array[T, S] {
	return Array[T, S]{}
}

// From returns an array backed by S whose live elements are values.
//
// Panics if len(values) exceeds the capacity of S.
func From[S Storage[T], T any](values ...T) Array[T, S] {
	var a Array[T, S]
	a.append("construct", values)
	return a
}

// FromArray returns an array whose live elements are all of the elements of
// values; the result is full.
func FromArray[T any, S Storage[T]](values S) Array[T, S] {
	return Array[T, S]{data: values, len: len(values)}
}

// Repeat returns a full array backed by S in which every element is v.
func Repeat[S Storage[T], T any](v T) Array[T, S] {
	var a Array[T, S]
	buf := a.buf()
	for i := range buf {
		buf[i] = v
	}
	a.len = len(buf)
	return a
}

// Map returns a new array containing the result of calling f on each element
// of a, in order.
//
// The new array is backed by S2, which must be given explicitly and must have
// the same capacity as S:
//
//	evens := fixedarray.Map[[4]bool](&ints, func(n int) bool { return n%2 == 0 })
//
// Panics if S2 and S have different capacities.
func Map[S2 Storage[U], U, T any, S Storage[T]](a *Array[T, S], f func(T) U) Array[U, S2] {
	var out Array[U, S2]
	if len(out.data) != len(a.data) {
		panic(&CapacityError{Op: "map", Want: len(a.data), Cap: len(out.data)})
	}

	buf := out.buf()
	for i, v := range a.Slice() {
		buf[i] = f(v)
	}
	out.len = a.len
	return out
}

// Equal returns whether a and b have the same live elements. The capacities
// of a and b are not compared.
func Equal[T comparable, S1 Storage[T], S2 Storage[T]](a *Array[T, S1], b *Array[T, S2]) bool {
	return slices.Equal(a.Slice(), b.Slice())
}

// EqualFunc is like [Equal], but uses eq to compare elements.
func EqualFunc[T, U any, S1 Storage[T], S2 Storage[U]](a *Array[T, S1], b *Array[U, S2], eq func(T, U) bool) bool {
	return slices.EqualFunc(a.Slice(), b.Slice(), eq)
}

// Compare compares the live elements of a and b lexicographically, as in
// [slices.Compare].
func Compare[T cmp.Ordered, S1 Storage[T], S2 Storage[T]](a *Array[T, S1], b *Array[T, S2]) int {
	return slices.Compare(a.Slice(), b.Slice())
}
