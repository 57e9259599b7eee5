package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/smartcity/traffic-analyzer/internal/domain"
)

// DefaultInsightTimeout bounds a single text generation call
const DefaultInsightTimeout = 30 * time.Second

// InsightService answers user questions through a text generator.
// It never returns an error: failures become a readable answer.
type InsightService struct {
	generator domain.TextGenerator
	timeout   time.Duration
}

// NewInsightService creates a new insight service
func NewInsightService(generator domain.TextGenerator, timeout time.Duration) *InsightService {
	if timeout <= 0 {
		timeout = DefaultInsightTimeout
	}
	return &InsightService{
		generator: generator,
		timeout:   timeout,
	}
}

// Answer sends prompt to the generator. The bool reports whether generation failed,
// in which case the text describes the failure.
func (s *InsightService) Answer(ctx context.Context, prompt string) (string, bool) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	answer, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		log.Warn().Err(err).Dur("elapsed", time.Since(start)).Msg("Insight generation failed")
		return DescribeError(err), true
	}

	log.Debug().Dur("elapsed", time.Since(start)).Int("answer_len", len(answer)).Msg("Insight generated")
	return answer, false
}

// DescribeError renders a generation failure for display, with a short message
// followed by the full error detail.
func DescribeError(err error) string {
	return fmt.Sprintf("Error getting traffic insights: %s\nFull error: %T: %v", err.Error(), err, err)
}
