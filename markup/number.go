package markup

import "strconv"

// leadingInt reads an optionally signed run of decimal digits at the start of s,
// ignoring whatever follows it: "7", "+7", "-1" and "7 (spell)" all parse.
// It reports false when s has no leading digits or the value overflows int64.
func leadingInt(s string) (int64, bool) {
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}

	digitsStart := end
	for end < len(s) && '0' <= s[end] && s[end] <= '9' {
		end++
	}

	if end == digitsStart {
		return 0, false
	}

	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0, false
	}

	return n, true
}
