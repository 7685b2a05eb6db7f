package domain

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeHeaders ASCII-folds every header. The result has the same length
// as the input; headers that fold to nothing become "".
func NormalizeHeaders(headers []string) []string {
	out := make([]string, len(headers))
	for i, h := range headers {
		out[i] = FoldASCII(repairMojibake(h))
	}
	return out
}

// FoldASCII applies NFKD decomposition and drops every code point outside
// 7-bit ASCII, e.g. "ESTAÇÃO" -> "ESTACAO". ASCII input is returned unchanged.
func FoldASCII(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.Predicate(isNonASCII)))
	folded, _, _ := transform.String(t, s)
	return folded
}

func isNonASCII(r rune) bool {
	return r > unicode.MaxASCII
}

// repairMojibake undoes UTF-8 text that was decoded as Latin-1, so a header
// exported as UTF-8 ("ESTAÃ\u0087Ã\u0083O") folds to "ESTACAO" instead of "ESTAAAO".
// Strings that are not such a round trip are returned unchanged.
func repairMojibake(s string) string {
	if isASCII(s) {
		return s
	}
	raw, err := charmap.ISO8859_1.NewEncoder().String(s)
	if err != nil || !utf8.ValidString(raw) {
		return s
	}
	return raw
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > unicode.MaxASCII {
			return false
		}
	}
	return true
}
