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
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode"
	"unicode/utf8"
)

// Scanner scans a vocabulary file from start to end.
type Scanner struct {
	s *bufio.Scanner
}

// NewScanner returns a new vocabulary scanner that reads syllables from r.
func NewScanner(r io.Reader) *Scanner {
	s := &Scanner{
		s: bufio.NewScanner(bufio.NewReader(r)),
	}
	s.s.Split(splitSyllables)
	return s
}

// Scan advances the scanner to the next syllable. It returns false if the
// scan stops either by reaching the end of the input or an error.
func (s *Scanner) Scan() bool {
	return s.s.Scan()
}

// Err returns the first error encountered.
func (s *Scanner) Err() error {
	if err := s.s.Err(); err != nil {
		return fmt.Errorf("scanning vocabulary: %w", err)
	}
	return nil
}

// Syllable returns the most recent syllable read by Scan.
func (s *Scanner) Syllable() string {
	return s.s.Text()
}

// splitSyllables splits whitespace separated syllables and skips comments.
func splitSyllables(data []byte, atEOF bool) (advance int, token []byte, err error) {
	start := 0
	for start < len(data) {
		if data[start] == '#' {
			i := bytes.IndexByte(data[start:], '\n')
			if i < 0 {
				if atEOF {
					return len(data), nil, nil
				}
				// Request more data.
				return start, nil, nil
			}
			start += i + 1
			continue
		}

		r, width := utf8.DecodeRune(data[start:])
		if !unicode.IsSpace(r) {
			break
		}
		start += width
	}

	advance, token, err = bufio.ScanWords(data[start:], atEOF)
	return start + advance, token, err
}
