package extract

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	// AbstractLimit is the number of characters kept from a post body.
	AbstractLimit = 200
	// TruncationMarker is appended when the body was longer than AbstractLimit.
	TruncationMarker = "..."

	markdownSuffix = ".md"
	bodyDelimiter  = "---"
)

var (
	titlePattern       = regexp.MustCompile(`title:\s*"([^"]*)"`)
	tagsPattern        = regexp.MustCompile(`tags:\s*\[([^\]]*)\]`)
	yearMonthPattern   = regexp.MustCompile(`(?:^|\D)(\d{6})(?:\D|$)`)
	descriptionPattern = regexp.MustCompile(`description:\s*["']?([^"\n']*)`)
)

// SplitFilename splits name on '_'. With at least two segments it returns the
// first segment as the series fallback and the second, minus a trailing .md,
// as the episode number. Otherwise the whole name is the fallback.
func SplitFilename(name string) (seriesFallback, epNum string) {
	parts := strings.SplitN(name, "_", 3)
	if len(parts) < 2 {
		return name, ""
	}
	return parts[0], strings.TrimSuffix(parts[1], markdownSuffix)
}

// ExtractTitle returns the first double-quoted front matter title.
func ExtractTitle(content string) (string, bool) {
	m := titlePattern.FindStringSubmatch(content)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// CleanSeriesName drops a trailing word made only of digits and dots, so
// "Foo Bar 12" and "Foo Bar 12.5" both become "Foo Bar".
func CleanSeriesName(name string) string {
	idx := strings.LastIndexByte(name, ' ')
	if idx < 0 {
		return name
	}
	tail := strings.TrimSpace(name[idx:])
	for _, r := range tail {
		if (r < '0' || r > '9') && r != '.' {
			return name
		}
	}
	return strings.TrimSpace(name[:idx])
}

// ExtractTagsYYYYMM returns year and month from the first six-digit run inside
// the front matter tags list. Longer digit runs are not split.
func ExtractTagsYYYYMM(content string) (year, month string) {
	tags := tagsPattern.FindStringSubmatch(content)
	if tags == nil {
		return "", ""
	}
	m := yearMonthPattern.FindStringSubmatch(tags[1])
	if m == nil {
		return "", ""
	}
	return m[1][:4], m[1][4:]
}

// ExtractDescription returns the trimmed front matter description, quoted or not.
func ExtractDescription(content string) string {
	m := descriptionPattern.FindStringSubmatch(content)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// ExtractFallbackAbstract joins the trimmed lines following the second "---"
// line and caps the result at AbstractLimit characters.
func ExtractFallbackAbstract(content string) string {
	lines := strings.Split(content, "\n")
	delimiters := 0
	start := len(lines)
	for i, line := range lines {
		if strings.TrimSpace(line) != bodyDelimiter {
			continue
		}
		delimiters++
		if delimiters == 2 {
			start = i + 1
			break
		}
	}

	body := make([]string, 0, len(lines)-start)
	for _, line := range lines[start:] {
		body = append(body, strings.TrimSpace(line))
	}
	return Truncate(strings.TrimSpace(strings.Join(body, " ")), AbstractLimit)
}

// Truncate keeps the first limit characters of s and appends TruncationMarker
// when something was cut.
func Truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	count := 0
	for i := range s {
		if count == limit {
			return s[:i] + TruncationMarker
		}
		count++
	}
	return s
}
