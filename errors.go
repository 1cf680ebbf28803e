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

import "fmt"

// CapacityError is the panic value raised by an operation that would need
// more room than an [Array]'s capacity provides.
//
// It is a programming error to trigger one; it is only exported so that code
// which recovers panics can inspect it with [errors.As].
type CapacityError struct {
	Op   string // The operation that panicked, such as "push" or "append".
	Want int    // The length the operation needed; for "map", the source capacity.
	Cap  int    // The capacity of the array.
}

// Error implements [error].
func (e *CapacityError) Error() string {
	if e.Op == "map" {
		return fmt.Sprintf("fixedarray: map: result capacity %d does not match capacity %d", e.Cap, e.Want)
	}
	return fmt.Sprintf("fixedarray: %s: length %d does not fit in capacity %d", e.Op, e.Want, e.Cap)
}

// IndexError is the panic value raised by an operation given an index outside
// of the range it accepts.
type IndexError struct {
	Op    string // The operation that panicked, such as "insert" or "remove".
	Index int
	Len   int // The length of the array at the time of the operation.
}

// Error implements [error].
func (e *IndexError) Error() string {
	return fmt.Sprintf("fixedarray: %s: index %d out of range for length %d", e.Op, e.Index, e.Len)
}
