package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/praxpk/prompt-visualizer/internal/catalog"
	"github.com/praxpk/prompt-visualizer/internal/intent"
	"github.com/praxpk/prompt-visualizer/internal/models"
	"github.com/praxpk/prompt-visualizer/internal/provider"
	"github.com/rs/zerolog/log"
)

// Schema is the slice of the dataset catalog the ask pipeline needs.
type Schema interface {
	Columns() []catalog.Column
	ViewName() string
}

// Resolver runs the provider chain for one question.
type Resolver interface {
	Resolve(ctx context.Context, p provider.Prompt) (*provider.Query, error)
}

// Executor runs validated SQL against the dataset view.
type Executor interface {
	Execute(ctx context.Context, sql string) (*models.ResultSet, error)
}

// AskHandler drives the question-answering pipeline: classify intent, walk
// the provider chain, execute the winning SQL, shape the response.
type AskHandler struct {
	schema Schema
	chain  Resolver
	exec   Executor
}

func NewAskHandler(schema Schema, chain Resolver, exec Executor) *AskHandler {
	return &AskHandler{schema: schema, chain: chain, exec: exec}
}

// Ask handles POST /ask
func (h *AskHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req models.AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		models.WriteError(w, http.StatusBadRequest, "invalid_request", "invalid request body: "+err.Error())
		return
	}

	question := req.Text()
	if question == "" {
		models.WriteError(w, http.StatusBadRequest, "invalid_request", "provide natural language question in 'question'")
		return
	}

	it := intent.Classify(question)
	system := provider.BuildSystem(h.schema.Columns(), h.schema.ViewName(), it)

	q, err := h.chain.Resolve(r.Context(), provider.Prompt{System: system, Question: question})
	if err != nil {
		// Both outcomes are terminal non-errors: no provider produced a
		// usable query for this question.
		if !errors.Is(err, provider.ErrInsufficientData) && !errors.Is(err, provider.ErrAllProvidersFailed) {
			log.Warn().Err(err).Msg("provider chain returned unexpected error")
		}
		log.Info().Str("question", question).Msg("no provider yielded a valid query")
		models.WriteJSON(w, http.StatusOK, models.NewInsufficientResponse(question))
		return
	}

	result, err := h.exec.Execute(r.Context(), q.SQL)
	if err != nil {
		// The first validated SQL is the one that runs, win or lose; the
		// chain is not resumed on execution failure.
		log.Warn().Err(err).Str("source", q.Source).Str("sql", q.SQL).Msg("execution failed, answering insufficient data")
		models.WriteJSON(w, http.StatusOK, models.NewInsufficientResponse(question))
		return
	}

	models.WriteJSON(w, http.StatusOK, models.AskResponse{
		Status:          "ok",
		Question:        question,
		Source:          q.Source,
		SQL:             q.SQL,
		PieChart:        it == intent.Pie,
		ScatterPlot:     it == intent.Scatter,
		Histogram:       it == intent.Histogram,
		ExpectedColumns: it.ExpectedColumns(),
		Result:          result,
	})
}
