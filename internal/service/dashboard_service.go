package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/smartcity/traffic-analyzer/internal/domain"
	"github.com/smartcity/traffic-analyzer/internal/registry"
	"github.com/smartcity/traffic-analyzer/pkg/utils"
)

const (
	// HistoryWindowDays is the length of the default historical range
	HistoryWindowDays = 30
	// MaxHistoryDays caps the number of points in one history series
	MaxHistoryDays = 366
)

// DashboardQuery selects what one render cycle generates
type DashboardQuery struct {
	Location domain.Location
	Count    int
	Seed     uint64
}

// HistoryQuery selects a historical range. Zero dates mean the last HistoryWindowDays days.
type HistoryQuery struct {
	Location domain.Location
	Start    time.Time
	End      time.Time
	Seed     uint64
}

// PredictionQuery selects a prediction date. A zero date means tomorrow.
type PredictionQuery struct {
	Location domain.Location
	Date     time.Time
	Seed     uint64
}

// HistoryResult is a historical series for one location
type HistoryResult struct {
	Location domain.Location       `json:"location"`
	Start    time.Time             `json:"start"`
	End      time.Time             `json:"end"`
	Points   []domain.HistoryPoint `json:"points"`
}

// DashboardService runs the generate, filter and aggregate cycle behind every view
type DashboardService struct {
	registry     *registry.Registry
	insights     *InsightService
	defaultCount int
	seed         uint64
	now          func() time.Time
}

// NewDashboardService creates a new dashboard service. A non-zero seed makes every
// request without its own seed reproduce the same data. A request seed of 0 means
// "use this default", and 0 here means "pick a fresh seed per request".
func NewDashboardService(reg *registry.Registry, insights *InsightService, defaultCount int, seed uint64) *DashboardService {
	if defaultCount <= 0 {
		defaultCount = DefaultIncidentCount
	}
	return &DashboardService{
		registry:     reg,
		insights:     insights,
		defaultCount: defaultCount,
		seed:         seed,
		now:          time.Now,
	}
}

// Registry returns the location registry the service draws from
func (s *DashboardService) Registry() *registry.Registry {
	return s.registry
}

func (s *DashboardService) source(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = s.seed
	}
	return NewRand(seed)
}

// GetDashboard generates a fresh batch, filters it to the selected location and aggregates it.
// Summary is nil when nothing matches the selection.
func (s *DashboardService) GetDashboard(ctx context.Context, q DashboardQuery) (domain.Dashboard, error) {
	if q.Location == "" {
		q.Location = domain.AllLocations
	}
	if err := s.registry.Validate(q.Location, true); err != nil {
		return domain.Dashboard{}, fmt.Errorf("dashboard: %w", err)
	}
	if q.Count <= 0 {
		q.Count = s.defaultCount
	}

	batch := GenerateIncidents(s.source(q.Seed), s.registry.Locations(), q.Count)
	selected := FilterByLocation(batch, q.Location)

	dash := domain.Dashboard{
		SnapshotID:       uuid.NewString(),
		City:             s.registry.City(),
		Location:         q.Location,
		Date:             s.now().Format(DisplayDateLayout),
		TypeDistribution: []domain.TypeCount{},
		TopAffected:      []domain.FormattedIncident{},
		Incidents:        selected,
		Ranked:           []domain.RankedIncident{},
	}

	if len(selected) > 0 {
		stats := Summarize(selected)
		dash.Summary = &stats
		dash.TypeDistribution = SortedDistribution(Distribution(selected))
		dash.Ranked = TopAffected(selected, DefaultTopAffected)
		dash.TopAffected = FormatRanked(dash.Ranked)
	}

	log.Debug().
		Str("snapshot", dash.SnapshotID).
		Str("location", string(q.Location)).
		Int("generated", len(batch)).
		Int("selected", len(selected)).
		Msg("Dashboard generated")

	return dash, nil
}

// Ask runs a render cycle for the location and answers question against it.
// Generation failures are reported inside the answer, not as an error.
func (s *DashboardService) Ask(ctx context.Context, q DashboardQuery, question string) (domain.InsightAnswer, error) {
	dash, err := s.GetDashboard(ctx, q)
	if err != nil {
		return domain.InsightAnswer{}, err
	}

	prompt := BuildPrompt(PromptInput{
		City:        dash.City,
		Location:    dash.Location,
		Date:        dash.Date,
		Stats:       dash.Summary,
		TopAffected: dash.Ranked,
		Question:    question,
	})

	answer, failed := s.insights.Answer(ctx, prompt)

	return domain.InsightAnswer{
		Question:  question,
		Prompt:    prompt,
		Answer:    answer,
		Failed:    failed,
		Dashboard: dash,
	}, nil
}

// GetHistory generates the synthetic daily series for a location
func (s *DashboardService) GetHistory(ctx context.Context, q HistoryQuery) (HistoryResult, error) {
	if err := s.registry.Validate(q.Location, false); err != nil {
		return HistoryResult{}, fmt.Errorf("history: %w", err)
	}

	today := utils.CalendarDate(s.now())
	if q.End.IsZero() {
		q.End = today
	}
	if q.Start.IsZero() {
		q.Start = utils.CalendarDate(q.End).AddDate(0, 0, -HistoryWindowDays)
	}

	start, end := utils.CalendarDate(q.Start), utils.CalendarDate(q.End)
	if !end.Before(start) && int(end.Sub(start).Hours()/24)+1 > MaxHistoryDays {
		return HistoryResult{}, fmt.Errorf("history: %s to %s exceeds %d days: %w",
			start.Format(time.DateOnly), end.Format(time.DateOnly), MaxHistoryDays, domain.ErrRangeTooLong)
	}

	points, err := GenerateHistory(s.source(q.Seed), start, end)
	if err != nil {
		return HistoryResult{}, err
	}

	return HistoryResult{
		Location: q.Location,
		Start:    start,
		End:      end,
		Points:   points,
	}, nil
}

// GetPrediction draws a point prediction for a location and date
func (s *DashboardService) GetPrediction(ctx context.Context, q PredictionQuery) (domain.PointPrediction, error) {
	if err := s.registry.Validate(q.Location, false); err != nil {
		return domain.PointPrediction{}, fmt.Errorf("prediction: %w", err)
	}

	if q.Date.IsZero() {
		q.Date = utils.CalendarDate(s.now()).AddDate(0, 0, 1)
	}

	return Predict(s.source(q.Seed), q.Date, q.Location), nil
}
