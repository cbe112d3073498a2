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
	"github.com/ianlewis/go-pinyin/internal/index"
	"github.com/ianlewis/go-pinyin/vocab"
)

// ValidOptions are options for validating syllables.
type ValidOptions struct {
	// AllowUnused accepts syllables that are phonetically valid but whose
	// tone does not correspond to any Chinese character, e.g. "tě".
	AllowUnused bool

	// Include is a list of strings that are always valid. Strings are
	// matched exactly as given; no case folding is performed.
	Include []string

	// Exclude is a list of strings that are never valid. Exclude takes
	// precedence over Include. Strings are matched exactly as given; no case
	// folding is performed.
	Exclude []string
}

// DefaultValidOptions is the default options for a Validator.
var DefaultValidOptions = &ValidOptions{}

// Validator checks syllables against the Pinyin vocabularies. A Validator is
// safe for concurrent use.
type Validator struct {
	allowUnused bool
	include     *index.Set
	exclude     *index.Set
}

// NewValidator returns a new Validator with the given options. If options is
// nil, [DefaultValidOptions] is used.
func NewValidator(options *ValidOptions) *Validator {
	if options == nil {
		options = DefaultValidOptions
	}

	return &Validator{
		allowUnused: options.AllowUnused,
		include:     index.NewSet(options.Include),
		exclude:     index.NewSet(options.Exclude),
	}
}

// Valid reports whether syllable is a standard Pinyin syllable in diacritic
// notation. Matching against the vocabularies is case insensitive.
// Syllables in numeric notation, e.g. "ni3", are never valid unless
// included explicitly.
func (v *Validator) Valid(syllable string) bool {
	if v.exclude.Contains(syllable) {
		return false
	}
	if v.include.Contains(syllable) {
		return true
	}

	s := lower(syllable)
	if vocab.Standard().Contains(s) {
		return true
	}
	return v.allowUnused && vocab.Unused().Contains(s)
}

// ValidAll calls [Validator.Valid] for each syllable.
func (v *Validator) ValidAll(syllables []string) []bool {
	return mapAll(syllables, v.Valid)
}

// IsValid reports whether syllable is a standard Pinyin syllable in
// diacritic notation. See [Validator.Valid].
func IsValid(syllable string, options *ValidOptions) bool {
	return NewValidator(options).Valid(syllable)
}

// IsValidAll reports whether each syllable is a standard Pinyin syllable in
// diacritic notation.
func IsValidAll(syllables []string, options *ValidOptions) []bool {
	return NewValidator(options).ValidAll(syllables)
}
