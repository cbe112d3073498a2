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
	"unicode/utf8"

	"golang.org/x/text/transform"

	"github.com/ianlewis/go-pinyin/tone"
)

const (
	combiningMacron = '\u0304'
	combiningCaron  = '\u030c'
)

// ToneFolder replaces tone marked Pinyin vowels with their bare letters. The
// letter ü is replaced with v in both its marked and unmarked forms. The case
// of each letter is preserved. All other input is copied unchanged.
//
// ToneFolder expects NFC normalized input. Use [Tones] to get a transformer
// that normalizes first.
type ToneFolder struct{}

// Transform implements [transform.Transformer.Transform].
func (*ToneFolder) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var nSrc, nDst int
	for nSrc < len(src) {
		if !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		c, size := utf8.DecodeRune(src[nSrc:])

		// ê with a combining macron or caron is a single glyph with no
		// precomposed form.
		if c == 'ê' || c == 'Ê' {
			rest := src[nSrc+size:]
			if !atEOF && !utf8.FullRune(rest) {
				return nDst, nSrc, transform.ErrShortSrc
			}
			if m, mSize := utf8.DecodeRune(rest); m == combiningMacron || m == combiningCaron {
				size += mSize
			}
		}

		out := fold(src[nSrc : nSrc+size])
		if nDst+len(out) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], out)
		nSrc += size
	}

	return nDst, nSrc, nil
}

// Reset implements [transform.Transformer.Reset].
func (*ToneFolder) Reset() {}

// fold returns the folded form of a single glyph.
func fold(glyph []byte) []byte {
	vowel, _, ok := tone.Parse(string(glyph))
	if !ok {
		vowel = string(glyph)
	}

	switch vowel {
	case "ü":
		return []byte("v")
	case "Ü":
		return []byte("V")
	}
	if !ok {
		return glyph
	}

	switch vowel {
	case "ê":
		return []byte("e")
	case "Ê":
		return []byte("E")
	}
	return []byte(vowel)
}
