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

// Package pinyin implements conversion and validation of Hanyu Pinyin
// syllables.
//
// Pinyin tones can be written in two notations:
//  1. Diacritic notation marks the main vowel of the syllable, e.g. "nǐ".
//  2. Numeric notation appends the tone number to the syllable, e.g. "ni3".
//     The neutral tone is written as 0 or 5, or with no number at all.
//
// Every function accepts exactly one syllable. Strings containing multiple
// syllables are not segmented. Each function has a counterpart with an "All"
// suffix that accepts a slice of syllables and returns a slice of results in
// the same order.
//
// All input is assumed to be valid Pinyin. Invalid input never causes a
// panic but may yield unpredictable results.
//
// The letter ü is written as "v" in numeric notation, following common Pinyin
// typing practice, and converted back to "ü" in diacritic notation.
package pinyin
