package numword

import (
	"fmt"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpell(t *testing.T) {
	tests := []struct {
		name     string
		year     int
		expected string
	}{
		{"all positions populated", 1984, "One thousand Nine hundred Eighty Four"},
		{"round thousand", 2000, "Two thousand"},
		{"teens replace tens and ones", 1015, "One thousand Fifteen"},
		{"lower bound", 1000, "One thousand"},
		{"upper bound", 9999, "Nine thousand Nine hundred Ninety Nine"},
		{"teen with hundreds", 1918, "One thousand Nine hundred Eighteen"},
		{"ten exactly", 2010, "Two thousand Ten"},
		{"nineteen", 1019, "One thousand Nineteen"},
		{"zero tens nonzero ones", 2004, "Two thousand Four"},
		{"nonzero tens zero ones", 1960, "One thousand Nine hundred Sixty"},
		{"round hundred", 2300, "Two thousand Three hundred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			words, err := Spell(tt.year)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, words)
		})
	}
}

func TestSpellOutOfRange(t *testing.T) {
	for _, year := range []int{500, 999, 10000, 0, -1984} {
		t.Run(fmt.Sprintf("%d", year), func(t *testing.T) {
			_, err := Spell(year)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrNotFourDigits)
		})
	}
}

func TestDecompose(t *testing.T) {
	digits, err := Decompose(1984)
	require.NoError(t, err)

	assert.Equal(t, 1, digits.Thousands)
	assert.Equal(t, 9, digits.Hundreds)
	assert.Equal(t, 8, digits.Tens)
	assert.Equal(t, 4, digits.Ones)
}

func TestDecomposeRoundTrip(t *testing.T) {
	// Every valid year must survive decompose/reassemble unchanged.
	for year := MinYear; year <= MaxYear; year++ {
		digits, err := Decompose(year)
		require.NoError(t, err)
		require.Equal(t, year, digits.Year(), "decomposition of %d does not recompose", year)
	}
}

func TestWordsNeverMalformed(t *testing.T) {
	for year := MinYear; year <= MaxYear; year++ {
		words, err := Spell(year)
		require.NoError(t, err)

		require.NotEmpty(t, words)
		require.False(t, strings.HasPrefix(words, " "), "leading space for %d: %q", year, words)
		require.False(t, strings.HasSuffix(words, " "), "trailing space for %d: %q", year, words)
		require.NotContains(t, words, "  ", "doubled space for %d: %q", year, words)
		require.Contains(t, words, "thousand")
	}
}

func TestSpellSnapshot(t *testing.T) {
	years := []int{1000, 1009, 1010, 1015, 1019, 1020, 1100, 1492, 1776,
		1900, 1918, 1984, 1999, 2000, 2001, 2010, 2020, 2525, 9999}

	var b strings.Builder
	for _, year := range years {
		words, err := Spell(year)
		require.NoError(t, err)
		fmt.Fprintf(&b, "%d: %s\n", year, words)
	}

	snaps.MatchSnapshot(t, b.String())
}
