package search

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func score(t *testing.T, pattern, text string) (float64, bool) {
	t.Helper()
	return fuzzyScore([]rune(strings.ToLower(pattern)), []rune(strings.ToLower(text)))
}

func TestFuzzyScoreExactMatch(t *testing.T) {
	s, ok := score(t, "костопіль", "костопіль")
	require.True(t, ok)
	assert.Equal(t, 0.0, s)
}

func TestFuzzyScorePrefixOfLongerField(t *testing.T) {
	s, ok := score(t, "костопіль", "костопільське")
	require.True(t, ok)
	assert.Equal(t, 0.0, s, "containment at offset zero is a perfect alignment")
}

func TestFuzzyScoreSingleTypo(t *testing.T) {
	s, ok := score(t, "костопил", "костопіль")
	require.True(t, ok, "one substitution should stay inside the envelope")
	assert.Less(t, s, Threshold)
	assert.Greater(t, s, 0.0)
}

func TestFuzzyScoreCaseInsensitivity(t *testing.T) {
	s, ok := score(t, "Костопіль", "КОСТОПІЛЬ")
	require.True(t, ok)
	assert.Equal(t, 0.0, s)
}

func TestFuzzyScoreUnrelated(t *testing.T) {
	_, ok := score(t, "лондон", "костопіль")
	assert.False(t, ok)
}

func TestFuzzyScoreOffsetPenalty(t *testing.T) {
	atStart, ok := score(t, "рівне", "рівне місто")
	require.True(t, ok)

	shifted, ok := score(t, "рівне", "місто рівне")
	require.True(t, ok)

	assert.Greater(t, shifted, atStart, "a later match start must score worse")
}

func TestFuzzyScoreShortInputs(t *testing.T) {
	_, ok := score(t, "р", "рівне")
	assert.False(t, ok, "patterns below the minimum length never match")

	_, ok = score(t, "рівне", "")
	assert.False(t, ok)
}

func TestFuzzyScoreLongPatternContainment(t *testing.T) {
	long := strings.Repeat("свято-михайлівська ", 2) + "церква костопільського благочиння"
	pattern := "свято-михайлівська свято-михайлівська церква"
	require.Greater(t, len([]rune(pattern)), maxBitapPattern)

	s, ok := score(t, pattern, long)
	require.True(t, ok)
	assert.Equal(t, 0.0, s)
}

func TestFuzzyScoreLongPatternEditDistance(t *testing.T) {
	text := "свято-покровська парафія села великий житин"
	pattern := "свято-покровська парафія села великий життин"
	require.Greater(t, len([]rune(pattern)), maxBitapPattern)

	s, ok := score(t, pattern, text)
	require.True(t, ok)
	assert.Greater(t, s, 0.0)
	assert.Less(t, s, Threshold)
}
