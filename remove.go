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
	"github.com/ianlewis/go-pinyin/internal/folding"
)

// RemoveTone removes diacritic tone marks from a syllable. The letter ü is
// replaced with v. The case of each letter and any trailing tone number are
// preserved. A syllable with no tone mark is returned unchanged, except for
// ü.
//
// Tone marks that are not valid Pinyin, e.g. "hữai", are left in place.
func RemoveTone(syllable string) string {
	return folding.String(folding.Tones(), syllable)
}

// RemoveToneAll calls [RemoveTone] for each syllable.
func RemoveToneAll(syllables []string) []string {
	return mapAll(syllables, RemoveTone)
}

// StripTone returns the bare lower case form of a syllable. Tone marks are
// removed, ü is replaced with v, and any trailing tone number is removed. For
// example, both "Nǚ" and "nv3" become "nv".
func StripTone(syllable string) string {
	base, _ := splitDigits(RemoveTone(lower(syllable)))
	return base
}

// StripToneAll calls [StripTone] for each syllable.
func StripToneAll(syllables []string) []string {
	return mapAll(syllables, StripTone)
}
