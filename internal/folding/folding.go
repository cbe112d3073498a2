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

// Package folding implements text transformers used to normalize Pinyin
// syllables.
package folding

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Lower returns a transformer that NFC normalizes and lower cases text.
// The returned transformer is not safe for concurrent use.
func Lower() transform.Transformer {
	return transform.Chain(norm.NFC, cases.Lower(language.Und))
}

// Tones returns a transformer that NFC normalizes text and removes Pinyin
// tone marks using a [ToneFolder].
func Tones() transform.Transformer {
	return transform.Chain(norm.NFC, &ToneFolder{})
}

// String applies the transformer t to s. Transformer errors are not possible
// for the transformers in this package so s is returned unchanged if one
// occurs.
func String(t transform.Transformer, s string) string {
	result, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return result
}
