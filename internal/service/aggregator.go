package service

import (
	"sort"

	"github.com/smartcity/traffic-analyzer/internal/domain"
)

// DefaultTopAffected is the size of the most affected areas table
const DefaultTopAffected = 10

// Summarize computes count, mean delay and total length.
// The mean is left nil for an empty batch; use SummaryStats.AverageDelay to read it.
func Summarize(incidents []domain.Incident) domain.SummaryStats {
	stats := domain.SummaryStats{Count: len(incidents)}

	totalDelay := 0
	for _, inc := range incidents {
		totalDelay += inc.DelaySeconds
		stats.TotalLengthMeters += inc.LengthMeters
	}

	if stats.Count > 0 {
		avg := float64(totalDelay) / float64(stats.Count)
		stats.AverageDelaySeconds = &avg
	}

	return stats
}

// Distribution counts incidents per type. Absent types have no entry.
func Distribution(incidents []domain.Incident) domain.TypeDistribution {
	dist := make(domain.TypeDistribution)
	for _, inc := range incidents {
		dist[inc.Type]++
	}
	return dist
}

// SortedDistribution orders a distribution for charting: highest count first,
// ties in IncidentTypes order. Types outside the enum come last, by name.
func SortedDistribution(dist domain.TypeDistribution) []domain.TypeCount {
	order := make(map[domain.IncidentType]int, len(domain.IncidentTypes))
	for i, t := range domain.IncidentTypes {
		order[t] = i
	}
	rank := func(t domain.IncidentType) int {
		if i, ok := order[t]; ok {
			return i
		}
		return len(order)
	}

	counts := make([]domain.TypeCount, 0, len(dist))
	for t, n := range dist {
		counts = append(counts, domain.TypeCount{Type: t, Count: n})
	}

	sort.Slice(counts, func(i, j int) bool {
		a, b := counts[i], counts[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		if rank(a.Type) != rank(b.Type) {
			return rank(a.Type) < rank(b.Type)
		}
		return a.Type < b.Type
	})

	return counts
}

// TopAffected returns up to k incidents with the longest delay, longest first.
// Equal delays keep their batch order. The input is not modified.
func TopAffected(incidents []domain.Incident, k int) []domain.RankedIncident {
	if k <= 0 || len(incidents) == 0 {
		return []domain.RankedIncident{}
	}

	sorted := make([]domain.Incident, len(incidents))
	copy(sorted, incidents)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].DelaySeconds > sorted[j].DelaySeconds
	})

	if k > len(sorted) {
		k = len(sorted)
	}

	ranked := make([]domain.RankedIncident, k)
	for i := 0; i < k; i++ {
		ranked[i] = domain.RankedIncident{Rank: i + 1, Incident: sorted[i]}
	}

	return ranked
}
