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

// Package fixedarray provides [Array], a vector whose elements live inline in
// a fixed-size Go array.
//
// An Array never allocates: its backing storage is part of the value, and its
// capacity is part of its type. The capacity is chosen by instantiating Array
// with the array type that backs it, so an Array[int, [8]int] holds up to
// eight ints. The set of usable backing types is given by [Storage].
//
// # Construction
//
// The zero Array is empty and ready to use:
//
//	var a fixedarray.Array[int, [8]int]
//	a.Push(1)
//
// Arrays can also be built from literal elements. The OfN functions size the
// array to exactly the number of elements given, while [From] takes the
// backing type explicitly and leaves any extra capacity free:
//
//	tight := fixedarray.Of3(1, 2, 3)              // Array[int, [3]int]
//	roomy := fixedarray.From[[10]int](1, 2, 3)    // Array[int, [10]int]
//	full := fixedarray.Repeat[[4]string]("hi")    // four copies of "hi"
//
// # Failure modes
//
// Operations that would overflow the capacity or that are given an
// out-of-range index for a mutation panic with a [*CapacityError] or
// [*IndexError]. Lookups that may reasonably miss, such as [Array.Get] and
// [Array.Pop], report absence with a boolean or a nil pointer instead.
//
// # Unsafe access
//
// [Array.UncheckedAt], [Array.UncheckedRef], [Array.Ptr], [Array.PtrRange],
// [Array.UnsafeBuf] and [Array.UnsafeIter] expose the backing storage without
// regard for the array's length. They exist for interop with code that wants
// raw memory, and callers are responsible for staying within bounds and for
// not racing them against mutations.
//
// Arrays are plain values with no internal synchronization.
package fixedarray

//go:generate go run github.com/bufbuild/fixedarray/internal/gen capacity.yaml
