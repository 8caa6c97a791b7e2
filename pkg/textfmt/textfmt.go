// Package textfmt provides bounded, truncating string formatting.
//
// All formatted writes in treemark land in fixed-capacity fields. The
// functions here guarantee truncation-not-overflow semantics: output never
// exceeds the stated capacity, and excess input is silently dropped.
// Truncation is byte-wise, so a multi-byte rune straddling the limit is cut
// mid-sequence, exactly as a byte-oriented copy would.
package textfmt

import "fmt"

// Truncate returns at most max bytes of s.
// A negative max is treated as zero.
func Truncate(s string, max int) string {
	if max < 0 {
		max = 0
	}
	if len(s) <= max {
		return s
	}
	return s[:max]
}

// Sprintf formats according to format and clamps the result to max bytes.
// Truncation is silent; the caller cannot distinguish a clamped result from
// one that fit.
func Sprintf(max int, format string, args ...any) string {
	return Truncate(fmt.Sprintf(format, args...), max)
}
