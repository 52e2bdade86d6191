// Package numword converts four-digit years into their English-word
// representation. The conversion is table-driven: one word table for
// single digits, one for the tens place, and one for the teens, which
// replace the tens/ones pair entirely when the tens digit is 1.
package numword

import (
	"errors"
	"fmt"
	"strings"
)

// MinYear and MaxYear bound the supported input range. Anything outside
// it does not have four digits.
const (
	MinYear = 1000
	MaxYear = 9999
)

// ErrNotFourDigits is returned for years outside [MinYear, MaxYear].
var ErrNotFourDigits = errors.New("the year must contain 4 digits")

var ones = [10]string{"", "One", "Two", "Three", "Four", "Five", "Six",
	"Seven", "Eight", "Nine"}

// Entries 0 and 1 are empty: a zero tens digit contributes nothing, and
// a tens digit of 1 is handled by the teens table instead.
var tens = [10]string{"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty",
	"Seventy", "Eighty", "Ninety"}

var teens = [10]string{"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen",
	"Fifteen", "Sixteen", "Seventeen", "Eighteen", "Nineteen"}

// Digits holds the decimal decomposition of a four-digit year.
type Digits struct {
	Thousands int
	Hundreds  int
	Tens      int
	Ones      int
}

// Decompose splits year into its four decimal digits. It returns
// ErrNotFourDigits when year is outside [MinYear, MaxYear].
func Decompose(year int) (Digits, error) {
	if year < MinYear || year > MaxYear {
		return Digits{}, fmt.Errorf("%w: got %d", ErrNotFourDigits, year)
	}

	return Digits{
		Thousands: year / 1000,
		Hundreds:  (year % 1000) / 100,
		Tens:      (year % 100) / 10,
		Ones:      year % 10,
	}, nil
}

// Year reassembles the digits into the year they came from.
func (d Digits) Year() int {
	return d.Thousands*1000 + d.Hundreds*100 + d.Tens*10 + d.Ones
}

// Words renders the digits as an English phrase. The hundreds fragment
// is omitted when the hundreds digit is zero, and the teens table
// replaces the tens/ones pair when the tens digit is 1.
func (d Digits) Words() string {
	fragments := []string{ones[d.Thousands], "thousand"}

	if d.Hundreds != 0 {
		fragments = append(fragments, ones[d.Hundreds], "hundred")
	}

	if d.Tens != 1 {
		fragments = append(fragments, tens[d.Tens], ones[d.Ones])
	} else {
		fragments = append(fragments, teens[d.Ones])
	}

	// Zero digits map to empty fragments; drop them so the phrase
	// never carries doubled or trailing spaces.
	nonEmpty := fragments[:0]
	for _, f := range fragments {
		if f != "" {
			nonEmpty = append(nonEmpty, f)
		}
	}

	return strings.Join(nonEmpty, " ")
}

// Spell converts a year directly to its English-word phrase.
func Spell(year int) (string, error) {
	digits, err := Decompose(year)
	if err != nil {
		return "", err
	}

	return digits.Words(), nil
}
