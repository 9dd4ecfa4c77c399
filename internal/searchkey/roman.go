package searchkey

import (
	"regexp"
	"strconv"
	"strings"
)

// romanPattern is the canonical numeral grammar: thousands, hundreds, tens, units.
var romanPattern = regexp.MustCompile(`^m*(c[md]|d?c{0,3})(x[cl]|l?x{0,3})(i[xv]|v?i{0,3})$`)

var romanValues = map[rune]int{
	'm': 1000,
	'd': 500,
	'c': 100,
	'l': 50,
	'x': 10,
	'v': 5,
	'i': 1,
}

// NormalizeRoman converts a roman numeral token to its decimal string.
// Tokens that are not valid numerals are returned unchanged.
func NormalizeRoman(token string) string {
	lower := strings.ToLower(token)
	if lower == "" || !romanPattern.MatchString(lower) {
		return token
	}
	return strconv.Itoa(romanToInt(lower))
}

// romanToInt sums digit values left to right, subtracting a digit that is
// strictly smaller than its right neighbour.
func romanToInt(s string) int {
	values := make([]int, 0, len(s))
	for _, r := range s {
		if v, ok := romanValues[r]; ok {
			values = append(values, v)
		}
	}

	total := 0
	for i, v := range values {
		if i+1 < len(values) && v < values[i+1] {
			total -= v
			continue
		}
		total += v
	}
	return total
}
