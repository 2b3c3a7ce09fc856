package models

// ResultSet is the tabular payload of a successful /ask answer.
type ResultSet struct {
	Columns  []string         `json:"columns"`
	Rows     []map[string]any `json:"rows"`
	RowCount int              `json:"rowcount"`
}

// AskResponse is returned by POST /ask when a provider produced SQL that
// executed. Exactly one of the chart flags may be true.
type AskResponse struct {
	Status          string     `json:"status"`
	Question        string     `json:"question"`
	Source          string     `json:"source"`
	SQL             string     `json:"sql"`
	PieChart        bool       `json:"pie_chart"`
	ScatterPlot     bool       `json:"scatter_plot"`
	Histogram       bool       `json:"histogram"`
	ExpectedColumns []string   `json:"expected_columns,omitempty"`
	Result          *ResultSet `json:"result"`
}

// InsufficientResponse is the terminal non-error answer when no provider
// yielded a valid, executable query. It carries no result and no source.
type InsufficientResponse struct {
	Status   string `json:"status"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// InsufficientAnswer is the literal answer text the frontend displays.
const InsufficientAnswer = "insufficient data"

// NewInsufficientResponse preserves the question for display alongside the
// terminal answer.
func NewInsufficientResponse(question string) InsufficientResponse {
	return InsufficientResponse{
		Status:   "ok",
		Question: question,
		Answer:   InsufficientAnswer,
	}
}

// HealthResponse is returned by GET /healthz and GET /health
type HealthResponse struct {
	Status string `json:"status"`
}

// ReadyResponse is returned by GET /readyz
type ReadyResponse struct {
	Status string `json:"status"`
	DB     bool   `json:"db"`
	Reason string `json:"reason,omitempty"`
}

// RootResponse is returned by GET /
type RootResponse struct {
	Status       string   `json:"status"`
	Message      string   `json:"message"`
	DatasetReady bool     `json:"dataset_ready"`
	View         string   `json:"view,omitempty"`
	Columns      []string `json:"columns,omitempty"`
	RowCount     int64    `json:"row_count,omitempty"`
}
