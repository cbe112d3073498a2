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
)

var cedictReplacer = strings.NewReplacer("ü", "u:", "v", "u:")

// ToCedict converts a syllable to CC-CEDICT style by replacing ü and v with
// "u:", e.g. "nv3" becomes "nu:3". The result is lower case. ToCedict is
// intended to be used on the output of [DiacriticToNumber].
func ToCedict(syllable string) string {
	return cedictReplacer.Replace(lower(syllable))
}

// ToCedictAll calls [ToCedict] for each syllable.
func ToCedictAll(syllables []string) []string {
	return mapAll(syllables, ToCedict)
}
