package service

import (
	"fmt"
	"strings"

	"github.com/smartcity/traffic-analyzer/internal/domain"
	"github.com/smartcity/traffic-analyzer/pkg/utils"
)

const (
	notAvailable  = "N/A"
	noTopAffected = "No data available"
)

// PromptInput carries everything the insight prompt embeds.
// Stats and TopAffected are optional; nil stats render as N/A.
type PromptInput struct {
	City        string
	Location    domain.Location
	Date        string
	Stats       *domain.SummaryStats
	TopAffected []domain.RankedIncident
	Question    string
}

// BuildPrompt formats the dashboard figures and the user's question into a single prompt
func BuildPrompt(in PromptInput) string {
	total, delay, length := notAvailable, notAvailable, notAvailable
	if in.Stats != nil {
		total = fmt.Sprintf("%d", in.Stats.Count)
		if avg, err := in.Stats.AverageDelay(); err == nil {
			delay = FormatAverageDelay(avg)
		}
		meters := float64(in.Stats.TotalLengthMeters)
		length = fmt.Sprintf("%.2f meters (%.2f km)", meters, utils.Kilometers(meters))
	}

	areas := noTopAffected
	if len(in.TopAffected) > 0 {
		names := make([]string, len(in.TopAffected))
		for i, r := range in.TopAffected {
			names[i] = string(r.From)
		}
		areas = strings.Join(names, ", ")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Analyze the following traffic incident data for %s in %s on %s and answer the user's question:\n\n",
		in.Location, in.City, in.Date)
	fmt.Fprintf(&b, "Total traffic incidents: %s\n", total)
	fmt.Fprintf(&b, "Average delay: %s\n", delay)
	fmt.Fprintf(&b, "Total affected road length: %s\n", length)
	fmt.Fprintf(&b, "Top affected areas: %s\n\n", areas)
	fmt.Fprintf(&b, "User question: %s\n\n", in.Question)
	fmt.Fprintf(&b, "Provide a detailed and informative answer based on the given data and your knowledge about "+
		"traffic patterns and %s's geography, focusing on %s if specified.", in.City, in.Location)

	return b.String()
}
