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
	"strconv"

	"github.com/rivo/uniseg"

	"github.com/ianlewis/go-pinyin/tone"
)

// DiacriticToNumber converts a syllable in diacritic notation to numeric
// notation, e.g. "nǐ" becomes "ni3". The result is lower case and ü is
// written as v.
//
// A syllable without a tone mark is returned in lower case with no tone
// number. If a syllable has more than one tone mark, the first one
// determines the tone number.
func DiacriticToNumber(syllable string) string {
	s := lower(syllable)

	t, ok := firstTone(s)
	if !ok {
		return s
	}

	return RemoveTone(s) + strconv.Itoa(t.Number())
}

// DiacriticToNumberAll calls [DiacriticToNumber] for each syllable.
func DiacriticToNumberAll(syllables []string) []string {
	return mapAll(syllables, DiacriticToNumber)
}

// firstTone returns the tone of the first tone marked glyph in s.
func firstTone(s string) (tone.Tone, bool) {
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		if _, t, ok := tone.Parse(g.Str()); ok {
			return t, true
		}
	}
	return tone.Neutral, false
}
