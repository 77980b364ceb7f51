package lib

import (
	"regexp"
	"strings"
)

// LeadingDigits returns the run of ASCII digits s starts with.
// Unlike unicode.IsDigit it does not accept other scripts' digits.
func LeadingDigits(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return s[:i]
		}
	}
	return s
}

// TrimLeadingSpaces removes one run of ' ' characters.
// Tabs and other whitespace are kept.
func TrimLeadingSpaces(s string) string {
	i := 0
	for i < len(s) && s[i] == ' ' {
		i++
	}
	return s[i:]
}

var reValidID = regexp.MustCompile("^[a-zA-Z0-9][a-zA-Z0-9-_.]*$")

func IsValidID(s string) bool {
	if !reValidID.MatchString(s) {
		return false
	}
	if strings.Contains(s, "..") {
		return false
	}
	return true
}
