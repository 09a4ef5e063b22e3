package words

import (
	"errors"
	"regexp"
	"strings"
)

type Stemmer interface {
	Stem(word string) string
}

var (
	ErrEmptyInput  = errors.New("please provide a string to be stemmed")
	ErrEmptyResult = errors.New("result is empty, please provide a better string")
)

var nonLetters = regexp.MustCompile("[^a-zA-Z]+")

var stopWords = map[string]struct{}{
	"ada": {}, "adalah": {}, "agar": {}, "akan": {}, "aku": {}, "anda": {}, "atau": {},
	"bagi": {}, "bahwa": {}, "banyak": {}, "begitu": {}, "belum": {}, "bisa": {},
	"dan": {}, "dari": {}, "dengan": {}, "di": {}, "dia": {}, "harus": {}, "hanya": {},
	"ini": {}, "itu": {}, "jika": {}, "juga": {}, "kami": {}, "kamu": {}, "karena": {},
	"ke": {}, "kita": {}, "lagi": {}, "mereka": {}, "oleh": {}, "pada": {}, "saat": {},
	"sangat": {}, "saya": {}, "sebagai": {}, "sedang": {}, "sudah": {}, "tetapi": {},
	"untuk": {}, "yang": {},
}

func IsStopWord(word string) bool {
	_, ok := stopWords[word]
	return ok
}

// Steminator splits str into words, drops stop words and returns the unique
// stems in order of first appearance.
func Steminator(str string, stemmer Stemmer) ([]string, error) {
	if len(strings.TrimSpace(str)) == 0 {
		return nil, ErrEmptyInput
	}

	newStr := strings.ToLower(nonLetters.ReplaceAllString(str, " "))

	seen := make(map[string]struct{})
	var res []string

	for _, word := range strings.Fields(newStr) {
		if IsStopWord(word) {
			continue
		}

		stemmed := stemmer.Stem(word)
		if stemmed == "" {
			continue
		}

		if _, ok := seen[stemmed]; ok {
			continue
		}
		seen[stemmed] = struct{}{}
		res = append(res, stemmed)
	}

	if len(res) == 0 {
		return nil, ErrEmptyResult
	}

	return res, nil
}
