package stemmer

import "unicode/utf8"

// Dictionary maps a known word form to its canonical stem.
type Dictionary interface {
	Lookup(word string) (string, bool)
}

// Stemmer reduces an inflected Indonesian word to its dictionary stem.
// It holds no mutable state; concurrent use is safe as long as the
// dictionary is safe for concurrent reads.
type Stemmer struct {
	dict Dictionary
}

func New(dict Dictionary) *Stemmer {
	return &Stemmer{dict: dict}
}

func (s *Stemmer) Dictionary() Dictionary {
	return s.dict
}

type stripFunc func(string) (string, bool)

// Stem strips particles, possessive pronouns, derivational suffixes and
// plain prefixes in that order, returning as soon as the dictionary knows
// the intermediate form. Without a hit the word left after prefix removal
// is returned.
//
//	mengalahkan -> kalah
func (s *Stemmer) Stem(word string) string {
	if isShortWord(word) {
		return word
	}

	if stem, ok := s.dict.Lookup(word); ok {
		return stem
	}

	stages := []stripFunc{
		RemoveInflectionalParticle,
		RemoveInflectionalPossessivePronoun,
		RemoveDerivationalSuffix,
		RemovePlainPrefix,
	}

	stemmed := word
	for _, strip := range stages {
		var hit bool
		stemmed, hit = s.try(stemmed, strip)
		if hit {
			return stemmed
		}
	}

	rules := []stripFunc{
		DisambiguatePrefixRule1a,
		DisambiguatePrefixRule1b,
		DisambiguatePrefixRule2,
	}

	for _, rule := range rules {
		candidate, ok := rule(stemmed)
		if !ok {
			continue
		}
		if stem, ok := s.dict.Lookup(candidate); ok {
			return stem
		}
	}

	return stemmed
}

// try applies one stripping stage and looks the result up. On a hit it
// returns the dictionary stem and true, otherwise the stripped word.
func (s *Stemmer) try(word string, strip stripFunc) (string, bool) {
	if stripped, ok := strip(word); ok {
		word = stripped
	}

	if stem, ok := s.dict.Lookup(word); ok {
		return stem, true
	}

	return word, false
}

func isShortWord(word string) bool {
	return utf8.RuneCountInString(word) <= 3
}
