package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Load reads a word list, one entry per line: either "word" or
// "word stem". Blank lines and lines starting with # are skipped.
func Load(r io.Reader) (map[string]string, error) {
	entries := make(map[string]string)

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		switch len(fields) {
		case 1:
			entries[strings.ToLower(fields[0])] = strings.ToLower(fields[0])
		case 2:
			entries[strings.ToLower(fields[0])] = strings.ToLower(fields[1])
		default:
			return nil, fmt.Errorf("line %d: expected \"word\" or \"word stem\", got %q", line, text)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading dictionary: %w", err)
	}

	return entries, nil
}

func LoadFile(path string) (map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	entries, err := Load(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return entries, nil
}
