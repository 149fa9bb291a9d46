package usecase

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize lowercases s and strips combining diacritical marks, so that
// "Hermès", "HERMES" and "hermes" all compare equal. Idempotent: normalizing
// an already-normalized string is a no-op.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	// The transformer is stateful, so build a fresh chain per call rather
	// than sharing one across concurrent requests.
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(stripMarks, strings.ToLower(s))
	if err != nil {
		// Malformed input falls back to plain lowercasing rather than failing
		// the whole match.
		return strings.ToLower(s)
	}
	return out
}

// NormalizeJoin normalizes each part and joins them with single spaces.
// Empty parts collapse away, so absent fields never contribute padding.
// Upstream records occasionally carry list-valued text fields; callers
// flatten those into parts before matching.
func NormalizeJoin(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		n := strings.TrimSpace(Normalize(p))
		if n != "" {
			kept = append(kept, n)
		}
	}
	return strings.Join(kept, " ")
}
