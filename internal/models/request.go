package models

import "strings"

// AskRequest for POST /ask. The frontend sends "question"; "q" and "prompt"
// are accepted as aliases for older clients.
type AskRequest struct {
	Question string `json:"question"`
	Q        string `json:"q,omitempty"`
	Prompt   string `json:"prompt,omitempty"`
}

// Text returns the question from whichever field was populated, trimmed.
func (r *AskRequest) Text() string {
	for _, s := range []string{r.Question, r.Q, r.Prompt} {
		if t := strings.TrimSpace(s); t != "" {
			return t
		}
	}
	return ""
}
