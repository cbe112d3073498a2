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

// Package vocab implements the Pinyin syllable vocabularies.
//
// Vocabulary files are plain UTF-8 text containing syllables separated by
// whitespace. A word beginning with '#' starts a comment that runs to the
// end of the line.
//
// Two vocabularies are built in:
//  1. The standard vocabulary contains syllables, in diacritic notation,
//     that correspond to at least one Chinese character.
//  2. The unused vocabulary contains phonetically valid syllables with tones
//     that do not correspond to any Chinese character (e.g. "tě").
//
// The two built-in vocabularies are disjoint.
package vocab
