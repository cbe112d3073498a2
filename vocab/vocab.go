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

package vocab

import (
	_ "embed"
	"fmt"
	"io"
	"strings"

	"github.com/ianlewis/go-pinyin/internal/index"
)

//go:embed standard.txt
var standardData string

//go:embed unused.txt
var unusedData string

var (
	standard = mustLoad("standard.txt", standardData)
	unused   = mustLoad("unused.txt", unusedData)
)

// Vocabulary is an immutable set of syllables. Membership is an exact string
// match. A Vocabulary is safe for concurrent use.
type Vocabulary struct {
	set *index.Set
}

// Load reads a vocabulary from r.
func Load(r io.Reader) (*Vocabulary, error) {
	var syllables []string
	s := NewScanner(r)
	for s.Scan() {
		syllables = append(syllables, s.Syllable())
	}
	if err := s.Err(); err != nil {
		return nil, err
	}

	return &Vocabulary{
		set: index.NewSet(syllables),
	}, nil
}

func mustLoad(name, data string) *Vocabulary {
	v, err := Load(strings.NewReader(data))
	if err != nil {
		panic(fmt.Sprintf("loading %s: %v", name, err))
	}
	return v
}

// Standard returns the vocabulary of standard Pinyin syllables.
func Standard() *Vocabulary {
	return standard
}

// Unused returns the vocabulary of phonetically valid syllables with tones
// that do not correspond to any Chinese character.
func Unused() *Vocabulary {
	return unused
}

// Contains reports whether syllable is in the vocabulary. The syllable is not
// normalized in any way.
func (v *Vocabulary) Contains(syllable string) bool {
	return v.set.Contains(syllable)
}

// Len returns the number of syllables in the vocabulary.
func (v *Vocabulary) Len() int {
	return v.set.Len()
}

// Syllables returns the syllables in the vocabulary in sorted order.
func (v *Vocabulary) Syllables() []string {
	return v.set.All()
}
