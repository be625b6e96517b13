package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Creds holds the static API-key pair read from the creds file.
type Creds struct {
	APIKey string
	APIID  string
}

// ParseCreds reads KEY:VALUE lines. Keys are case-insensitive; values are
// split at the first colon. A non-empty line without a colon fails the parse,
// and both API_KEY and API_ID must be present.
func ParseCreds(r io.Reader) (Creds, error) {
	var creds Creds
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		key, value, ok := strings.Cut(text, ":")
		if !ok {
			return Creds{}, fmt.Errorf("creds line %d: missing ':' separator", line)
		}
		switch strings.ToLower(strings.TrimSpace(key)) {
		case "api_key":
			creds.APIKey = strings.TrimSpace(value)
		case "api_id":
			creds.APIID = strings.TrimSpace(value)
		}
	}
	if err := scanner.Err(); err != nil {
		return Creds{}, fmt.Errorf("read creds: %w", err)
	}
	if creds.APIKey == "" || creds.APIID == "" {
		return Creds{}, fmt.Errorf("creds file must set both API_KEY and API_ID")
	}
	return creds, nil
}

// LoadCreds parses the creds file at path.
func LoadCreds(path string) (Creds, error) {
	f, err := os.Open(path)
	if err != nil {
		return Creds{}, fmt.Errorf("open creds file: %w", err)
	}
	defer f.Close()
	creds, err := ParseCreds(f)
	if err != nil {
		return Creds{}, fmt.Errorf("%s: %w", path, err)
	}
	return creds, nil
}
