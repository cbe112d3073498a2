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

package tone

import (
	"fmt"
	"strings"
)

// Tone is a Pinyin tone.
type Tone int

const (
	// Neutral is the neutral tone. It is written without a tone mark.
	Neutral Tone = iota

	// First is the first (high level) tone, e.g. ā.
	First

	// Second is the second (rising) tone, e.g. á.
	Second

	// Third is the third (dipping) tone, e.g. ǎ.
	Third

	// Fourth is the fourth (falling) tone, e.g. à.
	Fourth
)

// numTones is the number of tone classes including the neutral tone.
const numTones = 5

// FromNumber returns the tone for the tone number n. Tone numbers are taken
// mod 5 so both 0 and 5 denote the neutral tone.
func FromNumber(n int) Tone {
	t := n % numTones
	if t < 0 {
		t += numTones
	}
	return Tone(t)
}

// FromDigits returns the tone for a run of ASCII digits interpreted as a
// base-10 integer. Runs of any length are accepted. Non-digit runes are
// ignored.
func FromDigits(digits string) Tone {
	n := 0
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		if c < '0' || c > '9' {
			continue
		}
		n = (n*10 + int(c-'0')) % numTones
	}
	return Tone(n)
}

// Number returns the tone number. The neutral tone is 0.
func (t Tone) Number() int {
	return int(t)
}

// String implements [fmt.Stringer].
func (t Tone) String() string {
	switch t {
	case Neutral:
		return "neutral"
	case First, Second, Third, Fourth:
		return fmt.Sprintf("tone %d", int(t))
	default:
		return fmt.Sprintf("Tone(%d)", int(t))
	}
}

// Vowels are the Pinyin vowel letters that can carry a tone mark.
var Vowels = []string{"a", "e", "ê", "i", "o", "u", "ü"}

// glyphs maps each lower case vowel to its neutral, first, second, third,
// and fourth tone forms.
var glyphs = map[string][numTones]string{
	"a": {"a", "ā", "á", "ǎ", "à"},
	"e": {"e", "ē", "é", "ě", "è"},
	"\u00ea": {"\u00ea", "\u00ea\u0304", "\u1ebf", "\u00ea\u030c", "\u1ec1"},
	"i": {"i", "ī", "í", "ǐ", "ì"},
	"o": {"o", "ō", "ó", "ǒ", "ò"},
	"u": {"u", "ū", "ú", "ǔ", "ù"},
	"ü": {"ü", "ǖ", "ǘ", "ǚ", "ǜ"},
}

type mark struct {
	vowel string
	tone  Tone
}

// marks is the reverse of glyphs for all tone marked glyphs in both upper
// and lower case.
var marks = func() map[string]mark {
	m := make(map[string]mark, len(glyphs)*(numTones-1)*2)
	for vowel, forms := range glyphs {
		for t := First; t <= Fourth; t++ {
			m[forms[t]] = mark{vowel: vowel, tone: t}
			m[strings.ToUpper(forms[t])] = mark{
				vowel: strings.ToUpper(vowel),
				tone:  t,
			}
		}
	}
	return m
}()

// Glyph returns the form of the lower case vowel marked with the tone t. It
// returns false if vowel is not a Pinyin vowel or t is not a valid tone.
func Glyph(vowel string, t Tone) (string, bool) {
	forms, ok := glyphs[vowel]
	if !ok || t < Neutral || t > Fourth {
		return "", false
	}
	return forms[t], true
}

// IsVowel reports whether s is one of the lower case Pinyin vowels.
func IsVowel(s string) bool {
	_, ok := glyphs[s]
	return ok
}

// Parse returns the bare vowel and tone of a tone marked glyph. The vowel is
// returned in the same case as the glyph. Parse returns false if glyph is not
// a vowel marked with one of the four tones; bare vowels are not matched.
func Parse(glyph string) (string, Tone, bool) {
	m, ok := marks[glyph]
	if !ok {
		return "", Neutral, false
	}
	return m.vowel, m.tone, true
}
