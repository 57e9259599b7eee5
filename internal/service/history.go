package service

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/smartcity/traffic-analyzer/internal/domain"
	"github.com/smartcity/traffic-analyzer/pkg/utils"
)

// Parameters of the synthetic daily series
const (
	HistoryMinIncidents = 10
	HistoryMaxIncidents = 100 // exclusive
	HistoryDelayMean    = 300.0
	HistoryDelayStdDev  = 100.0
)

// GenerateHistory returns one point per calendar day from start to end inclusive.
// Counts are uniform and delays are normally distributed, so a delay can come out negative.
// The values are noise and do not depend on any incident batch.
func GenerateHistory(rng *rand.Rand, start, end time.Time) ([]domain.HistoryPoint, error) {
	start, end = utils.CalendarDate(start), utils.CalendarDate(end)
	if end.Before(start) {
		return nil, fmt.Errorf("history: %s to %s: %w",
			start.Format(time.DateOnly), end.Format(time.DateOnly), domain.ErrInvalidRange)
	}

	points := make([]domain.HistoryPoint, 0, int(end.Sub(start).Hours()/24)+1)
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		points = append(points, domain.HistoryPoint{
			Date:                day,
			IncidentCount:       HistoryMinIncidents + rng.IntN(HistoryMaxIncidents-HistoryMinIncidents),
			AverageDelaySeconds: HistoryDelayMean + rng.NormFloat64()*HistoryDelayStdDev,
		})
	}

	return points, nil
}
