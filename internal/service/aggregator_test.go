package service

import (
	"errors"
	"reflect"
	"testing"

	"github.com/smartcity/traffic-analyzer/internal/domain"
)

func TestSummarizeEmpty(t *testing.T) {
	t.Parallel()

	stats := Summarize(nil)
	if stats.Count != 0 || stats.TotalLengthMeters != 0 {
		t.Fatalf("Summarize(nil) = %+v, want zero count and length", stats)
	}
	if stats.AverageDelaySeconds != nil {
		t.Fatalf("AverageDelaySeconds = %v, want nil", *stats.AverageDelaySeconds)
	}
	if _, err := stats.AverageDelay(); !errors.Is(err, domain.ErrEmptyBatch) {
		t.Fatalf("AverageDelay() error = %v, want ErrEmptyBatch", err)
	}
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	batch := []domain.Incident{
		{DelaySeconds: 100, LengthMeters: 150},
		{DelaySeconds: 200, LengthMeters: 2500},
		{DelaySeconds: 300, LengthMeters: 4999},
	}

	stats := Summarize(batch)
	if stats.Count != 3 {
		t.Fatalf("Count = %d, want 3", stats.Count)
	}
	avg, err := stats.AverageDelay()
	if err != nil {
		t.Fatalf("AverageDelay() error = %v", err)
	}
	if avg != 200.0 {
		t.Fatalf("AverageDelay() = %v, want 200", avg)
	}
	if stats.TotalLengthMeters != 150+2500+4999 {
		t.Fatalf("TotalLengthMeters = %d, want %d", stats.TotalLengthMeters, 150+2500+4999)
	}
}

func TestDistribution(t *testing.T) {
	t.Parallel()

	dist := Distribution(sampleBatch())
	want := domain.TypeDistribution{
		domain.IncidentAccident:   1,
		domain.IncidentEvent:      1,
		domain.IncidentCongestion: 2,
	}
	if !reflect.DeepEqual(dist, want) {
		t.Fatalf("Distribution() = %v, want %v", dist, want)
	}
	if _, ok := dist[domain.IncidentConstruction]; ok {
		t.Fatalf("absent type should be omitted")
	}

	sorted := SortedDistribution(dist)
	wantSorted := []domain.TypeCount{
		{Type: domain.IncidentCongestion, Count: 2},
		{Type: domain.IncidentAccident, Count: 1},
		{Type: domain.IncidentEvent, Count: 1},
	}
	if !reflect.DeepEqual(sorted, wantSorted) {
		t.Fatalf("SortedDistribution() = %v, want %v", sorted, wantSorted)
	}
}

func TestTopAffectedStableOrder(t *testing.T) {
	t.Parallel()

	batch := []domain.Incident{
		{From: "A", DelaySeconds: 300},
		{From: "B", DelaySeconds: 100},
		{From: "C", DelaySeconds: 300},
	}

	got := TopAffected(batch, DefaultTopAffected)
	if len(got) != 3 {
		t.Fatalf("len(TopAffected) = %d, want 3", len(got))
	}

	order := []domain.Location{got[0].From, got[1].From, got[2].From}
	if !reflect.DeepEqual(order, []domain.Location{"A", "C", "B"}) {
		t.Fatalf("TopAffected order = %v, want [A C B]", order)
	}
	for i, r := range got {
		if r.Rank != i+1 {
			t.Fatalf("rank[%d] = %d, want %d", i, r.Rank, i+1)
		}
	}

	if batch[1].From != "B" {
		t.Fatalf("TopAffected reordered its input")
	}
}

func TestTopAffectedTruncates(t *testing.T) {
	t.Parallel()

	batch := GenerateIncidents(NewRand(9), []domain.Location{"X", "Y"}, 40)
	got := TopAffected(batch, 10)
	if len(got) != 10 {
		t.Fatalf("len(TopAffected) = %d, want 10", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].DelaySeconds > got[i-1].DelaySeconds {
			t.Fatalf("TopAffected not descending at %d: %d > %d", i, got[i].DelaySeconds, got[i-1].DelaySeconds)
		}
	}

	longest := 0
	for _, inc := range batch {
		if inc.DelaySeconds > longest {
			longest = inc.DelaySeconds
		}
	}
	if got[0].DelaySeconds != longest {
		t.Fatalf("first ranked delay = %d, want batch max %d", got[0].DelaySeconds, longest)
	}

	if got := TopAffected(batch, 0); len(got) != 0 {
		t.Fatalf("TopAffected(k=0) returned %d incidents", len(got))
	}
	if got := TopAffected(nil, 10); len(got) != 0 {
		t.Fatalf("TopAffected(nil) returned %d incidents", len(got))
	}
}

func TestFormatRanked(t *testing.T) {
	t.Parallel()

	rows := FormatRanked([]domain.RankedIncident{{
		Rank:     1,
		Incident: domain.Incident{Type: domain.IncidentAccident, From: "Adyar", To: "Guindy", DelaySeconds: 90, LengthMeters: 1250},
	}})

	want := domain.FormattedIncident{
		Rank:   1,
		From:   "Adyar",
		To:     "Guindy",
		Delay:  "90 seconds (1.50 minutes)",
		Length: "1250 meters (1.25 km)",
		Type:   domain.IncidentAccident,
	}
	if len(rows) != 1 || rows[0] != want {
		t.Fatalf("FormatRanked() = %+v, want %+v", rows, want)
	}
}
