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

package folding

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/text/transform"
)

func TestToneFolder_Transform(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		src   []byte
		dst   []byte
		atEOF bool

		expected []byte
		nDst     int
		nSrc     int
		err      error
	}{
		{
			name:  "marked vowel",
			src:   []byte("mǎ"),
			dst:   make([]byte, 4),
			atEOF: true,

			expected: []byte{'m', 'a', 0, 0},
			nDst:     2,
			nSrc:     3,
			err:      nil,
		},
		{
			name:  "u umlaut",
			src:   []byte("nü3"),
			dst:   make([]byte, 4),
			atEOF: true,

			expected: []byte{'n', 'v', '3', 0},
			nDst:     3,
			nSrc:     4,
			err:      nil,
		},
		{
			name:  "combining sequence",
			src:   []byte("\u00ea\u0304"),
			dst:   make([]byte, 4),
			atEOF: true,

			expected: []byte{'e', 0, 0, 0},
			nDst:     1,
			nSrc:     4,
			err:      nil,
		},
		{
			name:  "split combining sequence",
			src:   []byte("nê"),
			dst:   make([]byte, 4),
			atEOF: false,

			expected: []byte{'n', 0, 0, 0},
			nDst:     1,
			nSrc:     1,
			err:      transform.ErrShortSrc,
		},
		{
			name:  "bare e circumflex at EOF",
			src:   []byte("nê"),
			dst:   make([]byte, 4),
			atEOF: true,

			expected: []byte{'n', 0xc3, 0xaa, 0},
			nDst:     3,
			nSrc:     3,
			err:      nil,
		},
		{
			name:  "split rune",
			src:   []byte("mǎ")[:2],
			dst:   make([]byte, 4),
			atEOF: false,

			expected: []byte{'m', 0, 0, 0},
			nDst:     1,
			nSrc:     1,
			err:      transform.ErrShortSrc,
		},
		{
			name:  "short dst",
			src:   []byte("ma"),
			dst:   make([]byte, 1),
			atEOF: true,

			expected: []byte{'m'},
			nDst:     1,
			nSrc:     1,
			err:      transform.ErrShortDst,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			f := &ToneFolder{}
			nDst, nSrc, err := f.Transform(test.dst, test.src, test.atEOF)
			if diff := cmp.Diff(test.expected, test.dst); diff != "" {
				t.Errorf("unexpected dst (-want, +got):\n%s", diff)
			}
			if got, want := nDst, test.nDst; got != want {
				t.Errorf("unexpected nDst, want: %v, got: %v", want, got)
			}
			if got, want := nSrc, test.nSrc; got != want {
				t.Errorf("unexpected nSrc, want: %v, got: %v", want, got)
			}
			if diff := cmp.Diff(test.err, err, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("unexpected err (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestTones(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "lower case",
			input:    "zhōng",
			expected: "zhong",
		},
		{
			name:     "case preserved",
			input:    "Zhōng",
			expected: "Zhong",
		},
		{
			name:     "upper case umlaut",
			input:    "Lǚ",
			expected: "Lv",
		},
		{
			name:     "unmarked umlaut",
			input:    "lüè",
			expected: "lve",
		},
		{
			name:     "precomposed e circumflex",
			input:    "ế",
			expected: "e",
		},
		{
			name:     "upper case combining sequence",
			input:    "\u00ca\u030c",
			expected: "E",
		},
		{
			name:     "decomposed input",
			input:    "ma\u0301",
			expected: "ma",
		},
		{
			name:     "unmarked e circumflex",
			input:    "ê",
			expected: "ê",
		},
		{
			name:     "digits kept",
			input:    "ni3",
			expected: "ni3",
		},
		{
			name:     "unknown diacritic",
			input:    "hữai",
			expected: "hữai",
		},
		{
			name:     "long input",
			input:    strings.Repeat("\u00ea\u0304", 5000),
			expected: strings.Repeat("e", 5000),
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(test.expected, String(Tones(), test.input)); diff != "" {
				t.Errorf("String(Tones()) (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestLower(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{input: "MÍNG", expected: "míng"},
		{input: "zHǒu", expected: "zhǒu"},
		{input: "\u00ca\u0304", expected: "\u00ea\u0304"},
		{input: "A\u0301", expected: "\u00e1"},
		{input: "hello world", expected: "hello world"},
	}

	for _, test := range tests {
		if diff := cmp.Diff(test.expected, String(Lower(), test.input)); diff != "" {
			t.Errorf("String(Lower(), %q) (-want, +got):\n%s", test.input, diff)
		}
	}
}
