package notion

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var databaseIDPattern = regexp.MustCompile(`[0-9a-fA-F]{32}`)

// NormalizeDatabaseID accepts a raw 32-hex ID, a hyphenated UUID, or a full
// Notion URL and returns the canonical hyphenated lowercase form. Unparseable
// input is returned unchanged and left for the API to reject.
func NormalizeDatabaseID(raw string) string {
	flattened := strings.ReplaceAll(raw, "-", "")
	match := databaseIDPattern.FindString(flattened)
	if match == "" {
		return raw
	}
	id, err := uuid.Parse(match)
	if err != nil {
		return raw
	}
	return id.String()
}

// Obfuscate shortens a secret for log output.
func Obfuscate(s string) string {
	switch {
	case len(s) > 8:
		return s[:4] + "..." + s[len(s)-4:]
	case s != "":
		return "set"
	}
	return "EMPTY"
}
