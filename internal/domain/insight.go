package domain

import "context"

// TextGenerator answers a free-form prompt using an external generative-text model
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// InsightAnswer is the reply to a user question about the dashboard data
type InsightAnswer struct {
	Question  string    `json:"question"`
	Prompt    string    `json:"prompt"`
	Answer    string    `json:"answer"`
	Failed    bool      `json:"failed"`
	Dashboard Dashboard `json:"dashboard"`
}
