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

// Package tone implements the Pinyin tone table.
//
// Each of the seven Pinyin vowel letters (a, e, ê, i, o, u, ü) has five
// rendered forms: the bare letter for the neutral tone followed by the
// letter marked for tones one through four. The tone marks on ê for the
// first and third tones have no precomposed Unicode code point and are
// represented as ê followed by a combining macron (U+0304) or combining caron
// (U+030C).
package tone
