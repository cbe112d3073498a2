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

	"github.com/ianlewis/go-pinyin/internal/folding"
)

// mapAll applies f to each syllable and returns the results in order.
func mapAll[T any](syllables []string, f func(string) T) []T {
	results := make([]T, len(syllables))
	for i, s := range syllables {
		results[i] = f(s)
	}
	return results
}

// lower returns the NFC normalized, lower case form of s.
func lower(s string) string {
	return folding.String(folding.Lower(), s)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// splitDigits splits s into its base and its trailing run of ASCII digits.
func splitDigits(s string) (string, string) {
	base := strings.TrimRightFunc(s, isDigit)
	return base, s[len(base):]
}
