package query_test

import (
	"testing"

	"github.com/praxpk/prompt-visualizer/internal/query"
)

func TestValidatorAccepts(t *testing.T) {
	v := query.NewValidator("data")

	valid := []string{
		"SELECT * FROM data",
		"select Industry, count(*) as n from data group by Industry",
		`SELECT "Company Name", arr_num FROM data WHERE arr_num IS NOT NULL LIMIT 50`,
		"SELECT * FROM data ORDER BY valuation_num DESC LIMIT 10;",
		"WITH totals AS (SELECT Industry, COUNT(*) AS value FROM data GROUP BY Industry) SELECT Industry AS label, 100.0 * value / SUM(value) OVER () AS pct FROM totals",
		"SELECT FLOOR(employees_num/100) AS bin, COUNT(*) AS n FROM data GROUP BY bin ORDER BY bin",
		"SELECT a.Industry FROM (SELECT * FROM data) a",
	}
	for _, sql := range valid {
		if err := v.Validate(sql); err != nil {
			t.Errorf("Validate(%q) = %v, want nil", sql, err)
		}
	}
}

func TestValidatorRejectsMutations(t *testing.T) {
	v := query.NewValidator("data")

	invalid := []string{
		"DROP TABLE data",
		"drop table data",
		"SELECT * FROM data; DROP TABLE data",
		"INSERT INTO data VALUES (1)",
		"UPDATE data SET x = 1",
		"DELETE FROM data",
		"ALTER TABLE data ADD COLUMN x INT",
		"CREATE TABLE evil AS SELECT * FROM data",
		"SELECT * FROM data; SELECT * FROM data",
		"",
		"EXPLAIN SELECT * FROM data",
	}
	for _, sql := range invalid {
		if err := v.Validate(sql); err == nil {
			t.Errorf("Validate(%q) = nil, want error", sql)
		}
	}
}

func TestValidatorRejectsForeignTables(t *testing.T) {
	v := query.NewValidator("data")

	invalid := []string{
		"SELECT * FROM users",
		"SELECT * FROM data JOIN secrets ON true",
		"SELECT * FROM read_parquet('/etc/passwd')",
		"SELECT * FROM information_schema.tables",
	}
	for _, sql := range invalid {
		if err := v.Validate(sql); err == nil {
			t.Errorf("Validate(%q) = nil, want error", sql)
		}
	}
}

func TestValidatorAllowsCTENames(t *testing.T) {
	v := query.NewValidator("data")

	sql := "WITH a AS (SELECT * FROM data), b AS (SELECT * FROM a) SELECT * FROM b"
	if err := v.Validate(sql); err != nil {
		t.Errorf("Validate(%q) = %v, want nil", sql, err)
	}
}

func TestValidationErrorMessage(t *testing.T) {
	v := query.NewValidator("data")
	err := v.Validate("DROP TABLE data")
	verr, ok := err.(*query.ValidationError)
	if !ok {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if verr.Reason == "" {
		t.Error("validation error should carry a reason")
	}
}
