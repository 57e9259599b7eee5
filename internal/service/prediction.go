package service

import (
	"math/rand/v2"
	"time"

	"github.com/smartcity/traffic-analyzer/internal/domain"
	"github.com/smartcity/traffic-analyzer/pkg/utils"
)

const (
	PredictionMinIncidents = 5
	PredictionMaxIncidents = 50 // exclusive
	PredictionDelayMean    = 300.0
	PredictionDelayStdDev  = 50.0
)

// Predict draws a single point prediction. Neither the date nor the location
// influences the numbers; they are carried through for display only.
func Predict(rng *rand.Rand, date time.Time, location domain.Location) domain.PointPrediction {
	return domain.PointPrediction{
		Date:                         utils.CalendarDate(date),
		Location:                     location,
		PredictedIncidentCount:       PredictionMinIncidents + rng.IntN(PredictionMaxIncidents-PredictionMinIncidents),
		PredictedAverageDelaySeconds: PredictionDelayMean + rng.NormFloat64()*PredictionDelayStdDev,
	}
}
