package service

import (
	"reflect"
	"testing"

	"github.com/smartcity/traffic-analyzer/internal/domain"
)

func sampleBatch() []domain.Incident {
	return []domain.Incident{
		{Type: domain.IncidentAccident, From: "T Nagar", To: "Adyar", DelaySeconds: 300, LengthMeters: 1000},
		{Type: domain.IncidentEvent, From: "Guindy", To: "Egmore", DelaySeconds: 100, LengthMeters: 2000},
		{Type: domain.IncidentCongestion, From: "Porur", To: "Anna Nagar", DelaySeconds: 300, LengthMeters: 3000},
		{Type: domain.IncidentCongestion, From: "Pallavaram", To: "Pallavaram", DelaySeconds: 900, LengthMeters: 150},
	}
}

func TestFilterByLocation(t *testing.T) {
	t.Parallel()

	batch := sampleBatch()

	tests := []struct {
		name     string
		location domain.Location
		want     []int
	}{
		{name: "exact from", location: "Guindy", want: []int{1}},
		{name: "exact to", location: "Adyar", want: []int{0}},
		{name: "case insensitive substring", location: "nagar", want: []int{0, 2}},
		{name: "same from and to counted once", location: "Pallavaram", want: []int{3}},
		{name: "lower case all is a substring", location: "all", want: []int{3}},
		{name: "no match", location: "Tambaram", want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterByLocation(batch, tt.location)
			want := make([]domain.Incident, 0, len(tt.want))
			for _, i := range tt.want {
				want = append(want, batch[i])
			}
			if !reflect.DeepEqual(got, want) {
				t.Fatalf("FilterByLocation(%q) = %v, want %v", tt.location, got, want)
			}
		})
	}
}

func TestFilterAllReturnsCopy(t *testing.T) {
	t.Parallel()

	batch := sampleBatch()
	got := FilterByLocation(batch, domain.AllLocations)
	if !reflect.DeepEqual(got, batch) {
		t.Fatalf("FilterByLocation(All) = %v, want %v", got, batch)
	}

	got[0].DelaySeconds = 1
	if batch[0].DelaySeconds != 300 {
		t.Fatalf("filtering aliased the input batch")
	}
}
