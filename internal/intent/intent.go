package intent

import (
	"regexp"
	"strings"
)

// Intent is the visualization shape a question asks for. It constrains the
// column aliases the generated SQL must produce.
type Intent int

const (
	None Intent = iota
	Pie
	Scatter
	Histogram
)

func (i Intent) String() string {
	switch i {
	case Pie:
		return "pie"
	case Scatter:
		return "scatter"
	case Histogram:
		return "histogram"
	default:
		return "none"
	}
}

// ExpectedColumns returns the column contract the chart renderer requires,
// or nil for free-form tabular results.
func (i Intent) ExpectedColumns() []string {
	switch i {
	case Pie:
		return []string{"label", "pct"}
	case Scatter:
		return []string{"x", "y"}
	case Histogram:
		return []string{"bin", "n"}
	default:
		return nil
	}
}

var (
	rePie       = regexp.MustCompile(`\bpie\s*-?\s*chart\b`)
	reScatter   = regexp.MustCompile(`\bscatter\b`)
	reHistogram = regexp.MustCompile(`\b(histogram|distributions?)\b`)
)

// Classify derives the chart intent from the question text. Matching is
// case-insensitive; when several phrasings co-occur the first match in the
// fixed priority pie, scatter, histogram wins. Pure function: it never
// consults the dataset or the network.
func Classify(question string) Intent {
	q := strings.ToLower(strings.TrimSpace(question))
	switch {
	case rePie.MatchString(q):
		return Pie
	case reScatter.MatchString(q):
		return Scatter
	case reHistogram.MatchString(q):
		return Histogram
	default:
		return None
	}
}
