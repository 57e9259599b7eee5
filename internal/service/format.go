package service

import (
	"fmt"

	"github.com/smartcity/traffic-analyzer/internal/domain"
	"github.com/smartcity/traffic-analyzer/pkg/utils"
)

// DisplayDateLayout is how the dashboard shows the current date
const DisplayDateLayout = "January 02, 2006"

// FormatDelay renders a delay as "X seconds (Y.YY minutes)"
func FormatDelay(seconds int) string {
	return fmt.Sprintf("%d seconds (%.2f minutes)", seconds, utils.Minutes(float64(seconds)))
}

// FormatAverageDelay renders a mean delay as "X.XX seconds (Y.YY minutes)"
func FormatAverageDelay(seconds float64) string {
	return fmt.Sprintf("%.2f seconds (%.2f minutes)", seconds, utils.Minutes(seconds))
}

// FormatLength renders a length as "X meters (Y.YY km)"
func FormatLength(meters int) string {
	return fmt.Sprintf("%d meters (%.2f km)", meters, utils.Kilometers(float64(meters)))
}

// FormatRanked converts the numeric ranking into table rows
func FormatRanked(ranked []domain.RankedIncident) []domain.FormattedIncident {
	rows := make([]domain.FormattedIncident, len(ranked))
	for i, r := range ranked {
		rows[i] = domain.FormattedIncident{
			Rank:   r.Rank,
			From:   r.From,
			To:     r.To,
			Delay:  FormatDelay(r.DelaySeconds),
			Length: FormatLength(r.LengthMeters),
			Type:   r.Type,
		}
	}
	return rows
}
