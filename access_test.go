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
	"fmt"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/fixedarray"
)

func TestGet(t *testing.T) {
	t.Parallel()

	a := fixedarray.From[[5]int](1, 2, 3)
	v, ok := a.Get(1)
	assert.True(t, ok)
	assert.Equal(t, 2, v)

	// Slots past the length are never reachable through checked accessors,
	// even though they are within the capacity.
	for _, idx := range []int{-1, 3, 4, 5} {
		_, ok := a.Get(idx)
		assert.False(t, ok, "Get(%d)", idx)
		assert.Nil(t, a.Ref(idx), "Ref(%d)", idx)
	}

	*a.Ref(1) = 4
	v, _ = a.Get(1)
	assert.Equal(t, 4, v)

	a.SetAt(2, 5)
	assert.Equal(t, 5, a.At(2))
	assert.PanicsWithError(t, "fixedarray: at: index 3 out of range for length 3", func() {
		a.At(3)
	})
	assert.PanicsWithError(t, "fixedarray: set: index 3 out of range for length 3", func() {
		a.SetAt(3, 0)
	})
}

func TestUnchecked(t *testing.T) {
	t.Parallel()

	a := fixedarray.Of3(1, 2, 3)
	assert.Equal(t, 2, a.UncheckedAt(1))
	*a.UncheckedRef(2) = 9
	assert.Equal(t, []int{1, 2, 9}, a.Slice())

	b := fixedarray.From[[4]int](1, 2, 3, 4)
	b.Truncate(2)
	// Stale, but still initialized.
	assert.Equal(t, 4, b.UncheckedAt(3))
}

func TestFirstLast(t *testing.T) {
	t.Parallel()

	a := fixedarray.Of3(1, 2, 3)
	first, ok := a.First()
	assert.True(t, ok)
	assert.Equal(t, 1, first)
	last, ok := a.Last()
	assert.True(t, ok)
	assert.Equal(t, 3, last)

	*a.FirstRef() = 4
	*a.LastRef() = 6
	assert.Equal(t, []int{4, 2, 6}, a.Slice())

	var empty fixedarray.Array[int, [3]int]
	_, ok = empty.First()
	assert.False(t, ok)
	_, ok = empty.Last()
	assert.False(t, ok)
	assert.Nil(t, empty.FirstRef())
	assert.Nil(t, empty.LastRef())

	// A truncated array's last element is at the new length.
	a.Truncate(2)
	last, _ = a.Last()
	assert.Equal(t, 2, last)
}

func TestPtr(t *testing.T) {
	t.Parallel()

	a := fixedarray.Of3(1, 2, 3)
	assert.Equal(t, 1, *a.Ptr())
	*a.Ptr() = 4
	v, _ := a.Get(0)
	assert.Equal(t, 4, v)
	assert.Same(t, &a.UnsafeBuf()[0], a.Ptr())
}

func TestPtrRange(t *testing.T) {
	t.Parallel()

	a := fixedarray.From[[5]int64, int64](1, 2)
	start, n := a.PtrRange()
	assert.Same(t, a.Ptr(), start)
	assert.Equal(t, 5, n)

	storage := unsafe.Slice(start, n)
	assert.Same(t, &a.UnsafeBuf()[4], &storage[n-1])
	assert.Equal(t, []int64{1, 2, 0, 0, 0}, storage)
	storage[2] = 3
	a.SetLen(3)
	assert.Equal(t, []int64{1, 2, 3}, a.Slice())
}

func TestOffset(t *testing.T) {
	t.Parallel()

	a := fixedarray.From[[5]int](1, 2, 3)
	assert.Equal(t, 0, a.Offset(a.Ptr()))
	assert.Equal(t, 2, a.Offset(a.Ref(2)))
	assert.Equal(t, -1, a.Offset(&a.UnsafeBuf()[3]))
	assert.Equal(t, -1, a.Offset(new(int)))
	assert.Equal(t, -1, a.Offset(nil))
}

func TestEqual(t *testing.T) {
	t.Parallel()

	five := fixedarray.From[[5]int](1, 2, 3)
	ten := fixedarray.From[[10]int](1, 2, 3)
	assert.True(t, fixedarray.Equal(&five, &ten))
	assert.True(t, fixedarray.Equal(&ten, &five))
	assert.True(t, fixedarray.Equal(&five, &five))

	shorter := fixedarray.Of2(1, 2)
	assert.False(t, fixedarray.Equal(&five, &shorter))
	assert.False(t, fixedarray.Equal(&shorter, &five))

	// Stale slots do not participate.
	stale := fixedarray.From[[5]int](1, 2, 3, 4)
	stale.Truncate(3)
	assert.True(t, fixedarray.Equal(&five, &stale))

	var e1 fixedarray.Array[int, [0]int]
	var e2 fixedarray.Array[int, [7]int]
	assert.True(t, fixedarray.Equal(&e1, &e2))
}

func TestEqualFunc(t *testing.T) {
	t.Parallel()

	ints := fixedarray.Of3(1, 2, 3)
	strs := fixedarray.From[[4]string]("1", "2", "3")
	assert.True(t, fixedarray.EqualFunc(&ints, &strs, func(n int, s string) bool {
		return fmt.Sprint(n) == s
	}))

	strs.Push("4")
	assert.False(t, fixedarray.EqualFunc(&ints, &strs, func(int, string) bool { return true }))
}

func TestCompare(t *testing.T) {
	t.Parallel()

	a := fixedarray.Of3(1, 2, 3)
	b := fixedarray.From[[8]int](1, 2, 4)
	c := fixedarray.Of2(1, 2)
	assert.Equal(t, -1, fixedarray.Compare(&a, &b))
	assert.Equal(t, 1, fixedarray.Compare(&b, &a))
	assert.Equal(t, 1, fixedarray.Compare(&a, &c))
	assert.Equal(t, 0, fixedarray.Compare(&a, &a))
}

func TestFormat(t *testing.T) {
	t.Parallel()

	a := fixedarray.From[[10]int](1, 2, 3)
	assert.Equal(t, "[1 2 3]", fmt.Sprint(a))
	assert.Equal(t, "[1 2 3]", fmt.Sprintf("%v", &a))
	assert.Equal(t, "[001 002 003]", fmt.Sprintf("%03d", a))
	assert.Equal(t, "[]int{1, 2, 3}", fmt.Sprintf("%#v", a))

	b := fixedarray.Map[[10]string](&a, func(n int) string {
		if n%2 == 0 {
			return "even"
		}
		return "odd"
	})
	assert.Equal(t, `["odd" "even" "odd"]`, fmt.Sprintf("%q", b))
}
