package domain

import "strings"

// CoalesceTrimmed returns the first value that is not empty after trimming
// whitespace. The chosen value is returned trimmed.
func CoalesceTrimmed(vals ...string) string {
	for _, v := range vals {
		if t := strings.TrimSpace(v); t != "" {
			return t
		}
	}
	return ""
}
