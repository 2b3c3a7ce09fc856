package query

import (
	"regexp"
	"strings"
)

// ValidationError reports why a generated statement was rejected. It is an
// adapter-local outcome: the chain moves on to the next provider.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return "invalid query: " + e.Reason }

// reMutation scans for data- or schema-mutation verbs anywhere in the
// statement, not just at the start.
var reMutation = regexp.MustCompile(`(?i)\b(insert|update|delete|drop|alter|create|truncate|merge|exec|execute|grant|revoke|attach|install|pragma|copy)\b`)

// reTableRef captures whatever follows FROM or JOIN: a view name, a quoted
// identifier, a subquery paren, or a function call.
var reTableRef = regexp.MustCompile(`(?i)\b(?:from|join)\s+([^\s,;)]+|\()`)

// reCTEName captures names bound by WITH ... AS so they are not mistaken for
// external tables.
var reCTEName = regexp.MustCompile(`(?i)(?:\bwith\s+|,\s*)([a-z_][a-z0-9_]*)\s+as\s*\(`)

// Validator accepts only a single read-only statement over the one dataset
// view. The rule set is deliberately a denylist plus an allowlist, checked
// lexically before the engine ever sees the statement.
type Validator struct {
	viewName string
}

func NewValidator(viewName string) *Validator {
	return &Validator{viewName: strings.ToLower(viewName)}
}

// Validate returns nil when sql is a single SELECT (or CTE) that references
// only the dataset view.
func (v *Validator) Validate(sql string) error {
	trimmed := strings.TrimSpace(sql)
	if trimmed == "" {
		return &ValidationError{Reason: "empty statement"}
	}

	upper := strings.ToUpper(trimmed)
	if !strings.HasPrefix(upper, "SELECT") && !strings.HasPrefix(upper, "WITH") {
		return &ValidationError{Reason: "only SELECT statements are allowed"}
	}

	if m := reMutation.FindString(trimmed); m != "" {
		return &ValidationError{Reason: "mutation keyword not allowed: " + strings.ToLower(m)}
	}

	// A semicolon may only terminate the statement.
	if i := strings.Index(trimmed, ";"); i != -1 && strings.TrimSpace(trimmed[i+1:]) != "" {
		return &ValidationError{Reason: "multiple statements are not allowed"}
	}

	return v.checkTableRefs(trimmed)
}

func (v *Validator) checkTableRefs(sql string) error {
	ctes := map[string]bool{}
	for _, m := range reCTEName.FindAllStringSubmatch(strings.ToLower(sql), -1) {
		ctes[m[1]] = true
	}

	for _, m := range reTableRef.FindAllStringSubmatch(sql, -1) {
		ref := m[1]
		if strings.HasPrefix(ref, "(") {
			continue // derived table
		}
		name := strings.ToLower(strings.Trim(ref, `"`))
		name = strings.TrimSuffix(name, ";")
		if name == v.viewName || ctes[name] {
			continue
		}
		return &ValidationError{Reason: "reference to disallowed table: " + name}
	}
	return nil
}
