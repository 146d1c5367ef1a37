package domain

import (
	"regexp"
	"strings"
)

// Characters that are unsafe in a path segment on at least one supported OS.
var unsafeFilenameChars = regexp.MustCompile(`[<>:"/\\|?*]`)

const maxFilenameLen = 200

// SanitizeFilename maps a page title to a filesystem-safe path segment:
// unsafe characters become underscores, leading/trailing spaces and periods
// are trimmed, and the result is truncated to 200 bytes. The truncation is a
// plain byte prefix and may split a multi-byte character. Never fails; an
// empty title yields an empty segment.
func SanitizeFilename(title string) string {
	name := unsafeFilenameChars.ReplaceAllString(title, "_")
	name = strings.Trim(name, ". ")
	if len(name) > maxFilenameLen {
		name = name[:maxFilenameLen]
	}
	return name
}
