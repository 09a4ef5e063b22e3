package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/basedalex/yadro-kata/pkg/dictionary"
	"github.com/basedalex/yadro-kata/pkg/stemmer"
	log "github.com/sirupsen/logrus"
)

func main() {
	var str, dictPath string
	var verbose bool

	flag.StringVar(&str, "s", "", "input words to be stemmed")
	flag.StringVar(&dictPath, "d", "words.txt", "path to the word list")
	flag.BoolVar(&verbose, "v", false, "also report invalid affix pairs")
	flag.Parse()

	if len(strings.TrimSpace(str)) == 0 {
		log.Fatalln("Please provide a string to be stemmed")
	}

	entries, err := dictionary.LoadFile(dictPath)
	if err != nil {
		log.Fatal(err)
	}

	dict := dictionary.New()
	if err := dict.AddWords(entries); err != nil {
		log.Fatal(err)
	}
	s := stemmer.New(dict)

	for _, word := range strings.Fields(strings.ToLower(str)) {
		if verbose {
			fmt.Println(word, s.Stem(word), stemmer.ContainsInvalidAffixPair(word))
			continue
		}
		fmt.Println(word, s.Stem(word))
	}
}
