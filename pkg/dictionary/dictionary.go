package dictionary

import (
	"errors"
	"strings"
	"sync"
)

var ErrEmptyWord = errors.New("empty word")

// Memory is an in-memory word list safe for concurrent use.
// A word added without an explicit stem is its own stem.
type Memory struct {
	mu    sync.RWMutex
	words map[string]string
}

func New(words ...string) *Memory {
	d := &Memory{words: make(map[string]string, len(words))}
	for _, w := range words {
		_ = d.Add(w, "")
	}
	return d
}

func (d *Memory) Lookup(word string) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	stem, ok := d.words[word]
	return stem, ok
}

func (d *Memory) Contains(word string) bool {
	_, ok := d.Lookup(word)
	return ok
}

func (d *Memory) Count() int {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return len(d.words)
}

func (d *Memory) Add(word, stem string) error {
	word, stem, err := normalize(word, stem)
	if err != nil {
		return err
	}

	d.mu.Lock()
	d.words[word] = stem
	d.mu.Unlock()

	return nil
}

// AddWords adds every word -> stem pair. Nothing is added if any word is empty.
func (d *Memory) AddWords(entries map[string]string) error {
	normalized, err := Normalize(entries)
	if err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	for w, s := range normalized {
		d.words[w] = s
	}

	return nil
}

func (d *Memory) Remove(word string) {
	d.mu.Lock()
	delete(d.words, strings.ToLower(strings.TrimSpace(word)))
	d.mu.Unlock()
}

// Replace swaps the whole word list at once, so readers never observe a
// half-loaded dictionary.
func (d *Memory) Replace(entries map[string]string) error {
	normalized, err := Normalize(entries)
	if err != nil {
		return err
	}

	d.mu.Lock()
	d.words = normalized
	d.mu.Unlock()

	return nil
}

// Entries returns a copy of the word list.
func (d *Memory) Entries() map[string]string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	entries := make(map[string]string, len(d.words))
	for w, s := range d.words {
		entries[w] = s
	}
	return entries
}

func normalize(word, stem string) (string, string, error) {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return "", "", ErrEmptyWord
	}

	stem = strings.ToLower(strings.TrimSpace(stem))
	if stem == "" {
		stem = word
	}

	return word, stem, nil
}

// Normalize lowercases and trims every pair, filling in missing stems.
func Normalize(entries map[string]string) (map[string]string, error) {
	normalized := make(map[string]string, len(entries))
	for w, s := range entries {
		word, stem, err := normalize(w, s)
		if err != nil {
			return nil, err
		}
		normalized[word] = stem
	}
	return normalized, nil
}
