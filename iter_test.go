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

package fixedarray_test

import (
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/fixedarray"
)

func TestAll(t *testing.T) {
	t.Parallel()

	a := fixedarray.From[[8]string]("a", "b", "c")
	assert.Equal(t, map[int]string{0: "a", 1: "b", 2: "c"}, maps.Collect(a.All()))
	assert.Equal(t, []string{"a", "b", "c"}, slices.Collect(a.Values()))

	var backward []int
	for i := range a.Backward() {
		backward = append(backward, i)
	}
	assert.Equal(t, []int{2, 1, 0}, backward)

	var first []string
	for _, v := range a.All() {
		first = append(first, v)
		break
	}
	assert.Equal(t, []string{"a"}, first)

	var empty fixedarray.Array[string, [8]string]
	assert.Empty(t, slices.Collect(empty.Values()))
}

func TestPointers(t *testing.T) {
	t.Parallel()

	a := fixedarray.Of3(1, 2, 3)
	for _, p := range a.Pointers() {
		*p *= 2
	}
	want := fixedarray.Of3(2, 4, 6)
	assert.True(t, fixedarray.Equal(&a, &want), "got %v", a)

	for i, p := range a.Pointers() {
		assert.Equal(t, i, a.Offset(p))
	}
}

func TestUnsafeIter(t *testing.T) {
	t.Parallel()

	a := fixedarray.From[[10]uint8, uint8](1, 2, 3)
	it := a.UnsafeIter()
	assert.Equal(t, 3, it.Len())

	type p struct {
		v  uint8
		ok bool
	}
	pack := func(v uint8, ok bool) p { return p{v, ok} }
	assert.Equal(t, p{1, true}, pack(it.Next()))
	assert.Equal(t, p{2, true}, pack(it.Next()))
	assert.Equal(t, p{3, true}, pack(it.Next()))
	assert.Equal(t, 0, it.Len())
	assert.Equal(t, p{0, false}, pack(it.Next()))
	assert.Equal(t, p{0, false}, pack(it.Next()))

	// Every call produces a fresh iterator.
	it = a.UnsafeIter()
	assert.Equal(t, []uint8{1, 2, 3}, slices.Collect(it.All()))
	assert.Empty(t, slices.Collect(it.All()))
}

func TestUnsafeIterSnapshot(t *testing.T) {
	t.Parallel()

	a := fixedarray.From[[10]int](1, 2, 3)
	it := a.UnsafeIter()
	a.Push(4)
	assert.Equal(t, []int{1, 2, 3}, slices.Collect(it.All()))

	it = a.UnsafeIter()
	*a.Ref(0) = 5
	v, _ := it.Next()
	assert.Equal(t, 5, v)
}
