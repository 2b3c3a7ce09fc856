package provider

import (
	"errors"
	"regexp"
	"strings"
)

var errNoStatement = errors.New("no SQL statement in response")

var (
	reFenceOpen  = regexp.MustCompile("(?i)^```(sql)?")
	reFenceClose = regexp.MustCompile("```$")
	reSelect     = regexp.MustCompile(`(?i)\b(with|select)\b`)
)

// ExtractSQL pulls a single SELECT statement out of raw model output.
// Surrounding code fences are stripped first. A reply containing the literal
// words "insufficient data" is the provider's terminal answer, reported as
// ErrInsufficientData.
func ExtractSQL(text string) (string, error) {
	t := strings.TrimSpace(text)
	if t == "" {
		return "", errNoStatement
	}
	if strings.Contains(strings.ToLower(t), "insufficient data") {
		return "", ErrInsufficientData
	}

	t = strings.TrimSpace(reFenceOpen.ReplaceAllString(t, ""))
	t = strings.TrimSpace(reFenceClose.ReplaceAllString(t, ""))

	loc := reSelect.FindStringIndex(t)
	if loc == nil {
		return "", errNoStatement
	}
	sql := strings.TrimSpace(t[loc[0]:])
	// A closing fence mid-text means commentary followed the statement.
	if cut := strings.Index(sql, "```"); cut != -1 {
		sql = strings.TrimSpace(sql[:cut])
	}
	return sql, nil
}
