// Copyright 2025 Ian Lewis
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

package index

import (
	"slices"
	"strings"
)

// Set is an immutable set of strings backed by a sorted array.
type Set struct {
	// values is sorted and deduplicated.
	values []string
}

// NewSet creates a set from the given values. The values slice is copied so
// the caller may reuse it.
func NewSet(values []string) *Set {
	sorted := make([]string, len(values))
	copy(sorted, values)
	slices.SortFunc(sorted, strings.Compare)

	return &Set{
		values: slices.Compact(sorted),
	}
}

// Contains performs a binary search over the set and reports whether value is
// a member.
func (s *Set) Contains(value string) bool {
	if s == nil {
		return false
	}
	_, found := slices.BinarySearch(s.values, value)
	return found
}

// Len returns the number of unique values in the set.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.values)
}

// All returns a copy of the set's values in sorted order.
func (s *Set) All() []string {
	if s == nil {
		return nil
	}
	return slices.Clone(s.values)
}
