package provider_test

import (
	"errors"
	"testing"

	"github.com/praxpk/prompt-visualizer/internal/provider"
)

func TestExtractSQL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "bare statement",
			in:   "SELECT * FROM data LIMIT 10",
			want: "SELECT * FROM data LIMIT 10",
		},
		{
			name: "sql fence",
			in:   "```sql\nSELECT Industry, COUNT(*) FROM data GROUP BY Industry\n```",
			want: "SELECT Industry, COUNT(*) FROM data GROUP BY Industry",
		},
		{
			name: "plain fence",
			in:   "```\nSELECT 1\n```",
			want: "SELECT 1",
		},
		{
			name: "leading commentary",
			in:   "Here is the query you asked for:\nSELECT hq, COUNT(*) AS n FROM data GROUP BY hq",
			want: "SELECT hq, COUNT(*) AS n FROM data GROUP BY hq",
		},
		{
			name: "cte preserved",
			in:   "WITH totals AS (SELECT COUNT(*) c FROM data) SELECT * FROM totals",
			want: "WITH totals AS (SELECT COUNT(*) c FROM data) SELECT * FROM totals",
		},
		{
			name: "lowercase keyword",
			in:   "select * from data",
			want: "select * from data",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := provider.ExtractSQL(tt.in)
			if err != nil {
				t.Fatalf("ExtractSQL(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ExtractSQL(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestExtractSQLInsufficientData(t *testing.T) {
	for _, in := range []string{
		"insufficient data",
		"Insufficient Data",
		"I'm sorry, insufficient data for that question.",
	} {
		if _, err := provider.ExtractSQL(in); !errors.Is(err, provider.ErrInsufficientData) {
			t.Errorf("ExtractSQL(%q) error = %v, want ErrInsufficientData", in, err)
		}
	}
}

func TestExtractSQLNoStatement(t *testing.T) {
	for _, in := range []string{
		"",
		"I cannot help with that.",
		"```\nDROP everything\n```",
	} {
		if _, err := provider.ExtractSQL(in); err == nil {
			t.Errorf("ExtractSQL(%q) expected error, got nil", in)
		}
	}
}
