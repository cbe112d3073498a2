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

package pinyin

import (
	"strings"

	"github.com/rivo/uniseg"

	"github.com/ianlewis/go-pinyin/tone"
)

// NumberToDiacritic converts a syllable in numeric notation to diacritic
// notation, e.g. "ni3" becomes "nǐ". The result is lower case and v is
// written as ü.
//
// The tone number is taken mod 5 so both 0 and 5 denote the neutral tone,
// which has no mark. A syllable without a tone number is returned in lower
// case with v replaced.
//
// The tone mark is placed using the standard rules:
//  1. a or e takes the mark if present.
//  2. In "ou", o takes the mark.
//  3. Otherwise the last vowel takes the mark.
func NumberToDiacritic(syllable string) string {
	base, digits := splitDigits(lower(syllable))
	base = strings.ReplaceAll(base, "v", "ü")
	if digits == "" {
		return base
	}

	vowel, ok := markedVowel(base)
	if !ok {
		return base
	}

	glyph, ok := tone.Glyph(vowel, tone.FromDigits(digits))
	if !ok {
		return base
	}
	return strings.Replace(base, vowel, glyph, 1)
}

// NumberToDiacriticAll calls [NumberToDiacritic] for each syllable.
func NumberToDiacriticAll(syllables []string) []string {
	return mapAll(syllables, NumberToDiacritic)
}

// markedVowel returns the vowel in s that takes the tone mark.
func markedVowel(s string) (string, bool) {
	switch {
	case strings.Contains(s, "a"):
		return "a", true
	case strings.Contains(s, "e"):
		return "e", true
	case strings.Contains(s, "ou"):
		return "o", true
	}

	var last string
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		if c := g.Str(); tone.IsVowel(c) {
			last = c
		}
	}
	return last, last != ""
}
