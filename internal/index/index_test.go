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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSet_Contains(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		values   []string
		query    string
		expected bool
	}{
		{
			name:     "member",
			values:   []string{"foo", "bar", "baz", "bar"},
			query:    "foo",
			expected: true,
		},
		{
			name:     "duplicate member",
			values:   []string{"foo", "bar", "baz", "bar"},
			query:    "bar",
			expected: true,
		},
		{
			name:     "not a member",
			values:   []string{"foo", "bar", "baz", "bar"},
			query:    "none",
			expected: false,
		},
		{
			name:     "multi-byte",
			values:   []string{"nǚ", "lüè", "ma"},
			query:    "lüè",
			expected: true,
		},
		{
			name:     "case sensitive",
			values:   []string{"pin"},
			query:    "PIN",
			expected: false,
		},
		{
			name:     "empty set",
			values:   nil,
			query:    "",
			expected: false,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			s := NewSet(test.values)

			if got := s.Contains(test.query); got != test.expected {
				t.Fatalf("Contains(%q): want %v, got %v", test.query, test.expected, got)
			}
		})
	}
}

func TestSet_All(t *testing.T) {
	t.Parallel()

	values := []string{"foo", "bar", "baz", "bar"}
	s := NewSet(values)

	// Mutating the input must not affect the set.
	values[0] = "hoge"

	if diff := cmp.Diff([]string{"bar", "baz", "foo"}, s.All()); diff != "" {
		t.Fatalf("All (-want, +got):\n%s", diff)
	}
	if got, want := s.Len(), 3; got != want {
		t.Fatalf("Len: want %d, got %d", want, got)
	}
}

func TestSet_nil(t *testing.T) {
	t.Parallel()

	var s *Set
	if s.Contains("foo") {
		t.Fatalf("nil set contains value")
	}
	if got := s.Len(); got != 0 {
		t.Fatalf("Len: want 0, got %d", got)
	}
}
