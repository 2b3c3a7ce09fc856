package provider

import (
	"regexp"
	"strings"

	"github.com/praxpk/prompt-visualizer/internal/catalog"
	"github.com/praxpk/prompt-visualizer/internal/intent"
)

var reNeedsQuoting = regexp.MustCompile(`[^A-Za-z0-9_]`)

// BuildSystem renders the instruction block shared by all adapters: the view
// name, the schema, and the intent's column contract when one applies.
func BuildSystem(columns []catalog.Column, viewName string, it intent.Intent) string {
	names := make([]string, len(columns))
	for i, c := range columns {
		name := c.Name
		if reNeedsQuoting.MatchString(name) {
			name = `"` + name + `"`
		}
		names[i] = name + " (" + string(c.Type) + ")"
	}

	var sb strings.Builder
	sb.WriteString("You are an assistant that writes DuckDB SQL for a single table.\n")
	sb.WriteString("- Table name: " + viewName + "\n")
	sb.WriteString("- Columns: " + strings.Join(names, ", ") + "\n")
	sb.WriteString("- If the user question cannot be answered from only this table, reply exactly: insufficient data\n")
	sb.WriteString("- Output only a single SQL SELECT statement referencing table " + viewName + ".\n")
	sb.WriteString("- Quote identifiers with spaces using double quotes.\n")
	sb.WriteString("- Prefer including a LIMIT when appropriate.\n")

	switch it {
	case intent.Pie:
		sb.WriteString("- The user asked for a pie chart. Write SQL that returns percentages per category.\n")
		sb.WriteString("- The result MUST include at least columns: label, pct (percentage 0-100). Optionally include value (count).\n")
		sb.WriteString("- Choose a categorical column for label based on the question.\n")
		sb.WriteString("- Compute pct as 100.0 * value / SUM(value) OVER () and round appropriately.\n")
		sb.WriteString("- Alias the columns exactly as label and pct (and value if included).\n")
	case intent.Scatter:
		sb.WriteString("- The user asked for a scatter plot. Write SQL that returns two numeric columns.\n")
		sb.WriteString("- The result MUST include columns: x and y. Optionally include label.\n")
		sb.WriteString("- Choose appropriate numeric fields for x and y from the available columns.\n")
		sb.WriteString("- Ensure the query filters out NULLs in x and y.\n")
		sb.WriteString("- Alias the columns exactly as x and y (and label if included).\n")
		sb.WriteString("- Prefer including a LIMIT to keep result sets reasonable.\n")
	case intent.Histogram:
		sb.WriteString("- The user asked for a histogram/distribution. Write SQL that groups numeric values into bins and counts rows per bin.\n")
		sb.WriteString("- Choose an appropriate numeric column based on the question.\n")
		sb.WriteString("- The result MUST include columns: bin and n (count).\n")
		sb.WriteString("- Use FLOOR(value/<bin_width>) to create integer bin indices where suitable; filter out NULLs.\n")
		sb.WriteString("- Order results by bin ascending.\n")
		sb.WriteString("- Alias columns exactly as bin and n.\n")
	}

	return sb.String()
}
