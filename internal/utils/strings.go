package utils

import (
	"strings"
)

// SplitSlotList splits comma/semicolon separated time-slot strings into
// cleaned slices, preserving order.
func SplitSlotList(raw string) []string {
	out := []string{}
	parts := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';' || r == '\n'
	})
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

// JoinSlotList is the inverse of SplitSlotList for storage.
func JoinSlotList(slots []string) string {
	clean := make([]string, 0, len(slots))
	for _, s := range slots {
		s = strings.TrimSpace(s)
		if s != "" {
			clean = append(clean, s)
		}
	}
	return strings.Join(clean, ",")
}
