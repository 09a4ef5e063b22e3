package stemmer

import "strings"

var (
	inflectionalParticles = []string{"lah", "kah", "tah", "pun"}
	possessivePronouns    = []string{"nya", "ku", "mu"}
	// kan before an: a word ending in -kan loses the whole suffix.
	derivationalSuffixes = []string{"kan", "an", "i"}
	plainPrefixes        = []string{"di", "ke", "se"}
)

// RemoveInflectionalParticle strips one trailing lah, kah, tah or pun.
func RemoveInflectionalParticle(word string) (string, bool) {
	return trimSuffix(word, inflectionalParticles)
}

// RemoveInflectionalPossessivePronoun strips one trailing ku, mu or nya.
func RemoveInflectionalPossessivePronoun(word string) (string, bool) {
	return trimSuffix(word, possessivePronouns)
}

// RemoveDerivationalSuffix strips one trailing i, kan or an.
func RemoveDerivationalSuffix(word string) (string, bool) {
	return trimSuffix(word, derivationalSuffixes)
}

// RemovePlainPrefix strips one leading di, ke or se.
func RemovePlainPrefix(word string) (string, bool) {
	return trimPrefix(word, plainPrefixes)
}

// RemovedAffix returns what was taken off complete to produce stripped.
func RemovedAffix(complete, stripped string) string {
	return strings.Replace(complete, stripped, "", 1)
}

// A strip that would consume the whole word is not a match.
func trimSuffix(word string, suffixes []string) (string, bool) {
	for _, suffix := range suffixes {
		if !strings.HasSuffix(word, suffix) {
			continue
		}
		if len(word) == len(suffix) {
			break
		}
		return word[:len(word)-len(suffix)], true
	}
	return word, false
}

func trimPrefix(word string, prefixes []string) (string, bool) {
	for _, prefix := range prefixes {
		if !strings.HasPrefix(word, prefix) {
			continue
		}
		if len(word) == len(prefix) {
			break
		}
		return word[len(prefix):], true
	}
	return word, false
}

// DisambiguatePrefixRule1a reads berV as ber-V: berayun -> ayun.
func DisambiguatePrefixRule1a(word string) (string, bool) {
	i := indexBerVowel(word)
	if i < 0 {
		return "", false
	}
	return word[i+3:], true
}

// DisambiguatePrefixRule1b reads berV as be-rV: berayun -> rayun.
func DisambiguatePrefixRule1b(word string) (string, bool) {
	i := indexBerVowel(word)
	if i < 0 {
		return "", false
	}
	return "r" + word[i+3:], true
}

// DisambiguatePrefixRule2 reads berCAP as ber-CAP where P does not start
// with er: berkelas -> kelas.
func DisambiguatePrefixRule2(word string) (string, bool) {
	for i := strings.Index(word, "ber"); i >= 0; {
		rest := word[i+3:]
		if len(rest) >= 2 && isConsonant(rest[0]) && isVowel(rest[1]) {
			if strings.HasPrefix(rest[2:], "er") {
				return "", false
			}
			return rest, true
		}

		next := strings.Index(word[i+1:], "ber")
		if next < 0 {
			break
		}
		i += next + 1
	}
	return "", false
}

// indexBerVowel returns the position of the leftmost "ber" followed by a
// vowel, or -1.
func indexBerVowel(word string) int {
	for i := 0; i+3 < len(word); i++ {
		if word[i:i+3] == "ber" && isVowel(word[i+3]) {
			return i
		}
	}
	return -1
}

func isVowel(c byte) bool {
	return strings.IndexByte("aiueo", c) >= 0
}

func isConsonant(c byte) bool {
	return strings.IndexByte("bcdfghjklmnpqrstvwxyz", c) >= 0
}

type affixPair struct {
	prefix string
	suffix string
}

var invalidAffixPairs = []affixPair{
	{"ber", "i"},
	{"di", "an"},
	{"ke", "i"},
	{"ke", "an"},
	{"me", "an"},
	{"ter", "an"},
	{"per", "an"},
}

// ContainsInvalidAffixPair reports whether word carries a prefix and suffix
// that never combine: ber-i, di-an, ke-i, ke-an, me-an, ter-an, per-an.
// me-kan and the word ketahui are always valid.
func ContainsInvalidAffixPair(word string) bool {
	if hasAffixPair(word, affixPair{"me", "kan"}) {
		return false
	}

	if word == "ketahui" {
		return false
	}

	for _, pair := range invalidAffixPairs {
		if hasAffixPair(word, pair) {
			return true
		}
	}
	return false
}

func hasAffixPair(word string, pair affixPair) bool {
	return len(word) >= len(pair.prefix)+len(pair.suffix) &&
		strings.HasPrefix(word, pair.prefix) &&
		strings.HasSuffix(word, pair.suffix)
}
