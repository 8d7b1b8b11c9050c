package slug

import (
	"regexp"
	"strings"
)

// slugPattern matches lowercase alphanumeric segments joined by single
// hyphens, the only shape a catalog slug may have.
var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

var nonAlnum = regexp.MustCompile(`[^a-z0-9 ]+`)

// IsValid reports whether s is a well-formed tour slug.
func IsValid(s string) bool {
	return slugPattern.MatchString(s)
}

// Generate derives a URL-friendly slug from a tour name.
// Example: "Greek Islands Escape" -> "greek-islands-escape"
func Generate(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = nonAlnum.ReplaceAllString(s, "")
	fields := strings.Fields(s)
	return strings.Join(fields, "-")
}
