// Package importer reads cards from a tilde-delimited text file.
//
// Each non-empty line holds question~answer~guidance. Lines that do not
// split into exactly three fields are dropped without comment.
package importer

import (
	"bufio"
	"io"
	"os"
	"strings"
)

const delimiter = "~"

// Entry is one parsed import line.
type Entry struct {
	Question string
	Answer   string
	Guidance string
}

// File reads a file from the given path and extracts all entries.
func File(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads from an io.Reader and extracts all entries.
func Parse(r io.Reader) ([]Entry, error) {
	scanner := bufio.NewScanner(r)
	var entries []Entry

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		parts := strings.Split(line, delimiter)
		if len(parts) != 3 {
			continue
		}
		entries = append(entries, Entry{
			Question: strings.TrimSpace(parts[0]),
			Answer:   strings.TrimSpace(parts[1]),
			Guidance: strings.TrimSpace(parts[2]),
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}
