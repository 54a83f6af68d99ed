package search

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// Acceptance envelope for approximate matching. Threshold is the fraction
// of allowed mismatch (higher tolerates more typos), Distance the
// character-position slack for where within a field a match may begin,
// MinMatchLength the shortest pattern worth aligning.
const (
	Threshold      = 0.4
	Distance       = 100
	MinMatchLength = 2

	// bitap packs the pattern into a single machine word.
	maxBitapPattern = 32
)

// fuzzyScore aligns the pattern against the text and returns the best
// alignment score in [0,1] (0 is perfect) and whether it falls inside the
// acceptance envelope. Both inputs must already be lower-cased.
func fuzzyScore(pattern, text []rune) (float64, bool) {
	if len(pattern) < MinMatchLength || len(text) == 0 {
		return 1, false
	}
	if len(pattern) > maxBitapPattern {
		return levenshteinScore(pattern, text)
	}
	return bitapScore(pattern, text)
}

// alignmentScore combines alignment errors with the distance of the match
// start from the beginning of the field.
func alignmentScore(errors, location, patternLen int) float64 {
	accuracy := float64(errors) / float64(patternLen)
	if location < 0 {
		location = -location
	}
	return accuracy + float64(location)/float64(Distance)
}

// bitapScore is the bit-parallel approximate match over a single machine
// word, scanning error counts upward and tightening the accepted score as
// better alignments appear.
func bitapScore(pattern, text []rune) (float64, bool) {
	m, n := len(pattern), len(text)

	masks := make(map[rune]uint64, m)
	for i, r := range pattern {
		masks[r] |= 1 << uint(m-1-i)
	}

	scoreThreshold := Threshold
	found := false

	// Exact containment is the cheapest alignment; use it to prime the
	// accepted score before the error scan.
	if loc := indexRunes(text, pattern); loc >= 0 {
		if s := alignmentScore(0, loc, m); s <= scoreThreshold {
			scoreThreshold = s
			found = true
		}
	}

	matchMask := uint64(1) << uint(m-1)
	binMax := m + n
	var lastRd []uint64

	for e := 0; e < m; e++ {
		// Furthest match start still inside the accepted score at this
		// error count.
		binMin, binMid := 0, binMax
		for binMin < binMid {
			if alignmentScore(e, binMid, m) <= scoreThreshold {
				binMin = binMid
			} else {
				binMax = binMid
			}
			binMid = (binMax-binMin)/2 + binMin
		}
		binMax = binMid

		start := 1
		finish := binMid
		if finish > n {
			finish = n
		}
		finish += m

		rd := make([]uint64, finish+2)
		rd[finish+1] = (1 << uint(e)) - 1

	scan:
		for j := finish; j >= start; j-- {
			var charMatch uint64
			if j-1 < n {
				charMatch = masks[text[j-1]]
			}
			if e == 0 {
				rd[j] = ((rd[j+1] << 1) | 1) & charMatch
			} else {
				rd[j] = (((rd[j+1]<<1)|1)&charMatch) |
					(((at(lastRd, j+1)|at(lastRd, j))<<1)|1) |
					at(lastRd, j+1)
			}
			if rd[j]&matchMask != 0 {
				if s := alignmentScore(e, j-1, m); s <= scoreThreshold {
					scoreThreshold = s
					found = true
					if j-1 <= 0 {
						break scan
					}
				}
			}
		}

		if alignmentScore(e+1, 0, m) > scoreThreshold {
			break
		}
		lastRd = rd
	}

	return scoreThreshold, found
}

// levenshteinScore handles patterns too long for a bitap word: exact
// containment scores by its offset, anything else by normalized edit
// distance over the whole field.
func levenshteinScore(pattern, text []rune) (float64, bool) {
	p, t := string(pattern), string(text)
	if idx := strings.Index(t, p); idx >= 0 {
		s := alignmentScore(0, utf8.RuneCountInString(t[:idx]), len(pattern))
		return s, s <= Threshold
	}

	longest := len(pattern)
	if len(text) > longest {
		longest = len(text)
	}
	s := float64(levenshtein.ComputeDistance(p, t)) / float64(longest)
	return s, s <= Threshold
}

func at(rd []uint64, i int) uint64 {
	if i < 0 || i >= len(rd) {
		return 0
	}
	return rd[i]
}

// indexRunes returns the rune offset of the first occurrence of pattern
// in text, or -1.
func indexRunes(text, pattern []rune) int {
	if idx := strings.Index(string(text), string(pattern)); idx >= 0 {
		return utf8.RuneCountInString(string(text)[:idx])
	}
	return -1
}
