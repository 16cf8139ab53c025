package dotenv

import (
	"fmt"
	"strings"
)

// Parse reads the raw contents of an env file into ordered KEY=VALUE pairs.
// Empty lines are skipped. Every other line must consist of a non-empty key,
// a single '=' separator, and a value; the value may itself contain further
// '=' characters. No quoting, comment, or escape syntax is recognised. The
// first malformed line aborts the parse and nothing is returned.
func Parse(data []byte) ([]Pair, error) {
	lines := strings.Split(string(data), "\n")
	pairs := make([]Pair, 0, len(lines))

	for i, line := range lines {
		// Tolerate CRLF line endings.
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("line %d: %q: %w", i+1, line, ErrMalformedLine)
		}

		pairs = append(pairs, Pair{Key: key, Value: value})
	}

	return pairs, nil
}
