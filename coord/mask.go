// Copyright 2026 The geoconv Authors. All rights reserved.
// Use of this source code is governed by the MIT-license that can be
// found in the LICENSE file.

package coord

import (
	"strings"
	"unicode"
)

// Mask reshapes the attempted input text into the canonical delimited form
// for the given mode.
//
// Characters outside the mode's alphabet are dropped and the rest are
// packed left-to-right into the fixed-width blocks of Layout(m). A direction
// letter may close the last digit block before it early (e.g. "15300S"
// masks to "15,30,0,S"). Letters that don't fit the open block, and digits
// typed while a letter block is open, are dropped.
//
// Mask never clamps numeric values. Range checking is left to Validate.
func Mask(m Mode, text string) string {
	layout := Layout(m)
	alphabet := Alphabet(m)

	blocks := make([][]rune, len(layout))
	i := 0 // index of the open block
	for _, r := range text {
		if i >= len(layout) {
			break
		}
		r = unicode.ToUpper(r)
		switch {
		case r >= '0' && r <= '9':
			if layout[i].Kind != KindDigits {
				continue
			}
			blocks[i] = append(blocks[i], r)
			if len(blocks[i]) == layout[i].MaxWidth {
				i++
			}
		case strings.ContainsRune(alphabet, r):
			if layout[i].Kind == KindDigits {
				if len(blocks[i]) == 0 || i+1 >= len(layout) || layout[i+1].Kind != KindLetter {
					continue
				}
				i++ // close the digit block early
			}
			blocks[i] = append(blocks[i], r)
			i++
		}
	}

	var b strings.Builder
	for _, blk := range blocks {
		if len(blk) == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteString(Delimiter)
		}
		b.WriteString(string(blk))
	}
	return b.String()
}

// Symbolic renders a masked GMS string using degree, minute and second
// marks, e.g. `15° 30' 0" S 47° 55' 20" W`. Partial input renders partially.
// Other modes are returned unchanged.
//
// The result is accepted by Validate.
func Symbolic(m Mode, masked string) string {
	if m != ModeGMS || masked == "" {
		return masked
	}
	marks := []string{"°", "'", `"`, "", "°", "'", `"`, ""}
	parts := strings.Split(masked, Delimiter)
	var b strings.Builder
	for i, p := range parts {
		if i >= len(marks) {
			break
		}
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(p)
		b.WriteString(marks[i])
	}
	return b.String()
}
