package utils

import "strings"

// SplitNumal splits a question number like "12a" into its digit prefix and
// alphabetic suffix. A missing prefix or suffix comes back as the empty
// string, so "12", "a" and "" are all well-formed.
func SplitNumal(number string) (string, string) {
	i := 0
	for i < len(number) && number[i] >= '0' && number[i] <= '9' {
		i++
	}
	return number[:i], number[i:]
}

// CompareNumbers orders two question numbers by numeric prefix first and
// alphabetic suffix second, returning -1, 0 or +1 like strings.Compare.
// "2a" sorts before "10a" even though plain string comparison disagrees.
// Prefixes compare as numbers of unbounded length, so a digit run that
// would overflow an int still orders correctly.
func CompareNumbers(a, b string) int {
	aDigits, aSuffix := SplitNumal(a)
	bDigits, bSuffix := SplitNumal(b)
	if cmp := compareDigits(aDigits, bDigits); cmp != 0 {
		return cmp
	}
	return strings.Compare(aSuffix, bSuffix)
}

// compareDigits compares two digit runs numerically. Leading zeros carry
// no weight, a longer run is the bigger number, equal lengths compare
// byte for byte.
func compareDigits(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}

// DisplayNumber returns the suffix alone for sub-numbered questions ("12a"
// renders as an indented "a" under question 12) and the full number
// otherwise.
func DisplayNumber(number string) string {
	digits, suffix := SplitNumal(number)
	if strings.TrimLeft(digits, "0") != "" && suffix != "" {
		return suffix
	}
	return number
}
