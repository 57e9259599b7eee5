package service

import (
	"math/rand/v2"
	"reflect"
	"testing"

	"github.com/smartcity/traffic-analyzer/internal/registry"
)

func TestGenerateIncidentsRanges(t *testing.T) {
	t.Parallel()

	reg := registry.Default()
	rng := rand.New(rand.NewPCG(7, 7))

	validType := map[string]bool{"Congestion": true, "Accident": true, "Construction": true, "Event": true}

	for _, n := range []int{1, 50, 500} {
		batch := GenerateIncidents(rng, reg.Locations(), n)
		if len(batch) != n {
			t.Fatalf("len(batch) = %d, want %d", len(batch), n)
		}
		for i, inc := range batch {
			if !validType[string(inc.Type)] {
				t.Fatalf("incident %d: invalid type %q", i, inc.Type)
			}
			if !reg.Contains(inc.From) || !reg.Contains(inc.To) {
				t.Fatalf("incident %d: unknown location %q -> %q", i, inc.From, inc.To)
			}
			if inc.DelaySeconds < 60 || inc.DelaySeconds >= 1800 {
				t.Fatalf("incident %d: delay %d out of [60, 1800)", i, inc.DelaySeconds)
			}
			if inc.LengthMeters < 100 || inc.LengthMeters >= 5000 {
				t.Fatalf("incident %d: length %d out of [100, 5000)", i, inc.LengthMeters)
			}
		}
	}
}

func TestGenerateIncidentsDefaultCount(t *testing.T) {
	t.Parallel()

	batch := GenerateIncidents(NewRand(1), registry.Default().Locations(), 0)
	if len(batch) != DefaultIncidentCount {
		t.Fatalf("len(batch) = %d, want %d", len(batch), DefaultIncidentCount)
	}
}

func TestGenerateIncidentsSeeded(t *testing.T) {
	t.Parallel()

	locs := registry.Default().Locations()
	a := GenerateIncidents(NewRand(42), locs, 25)
	b := GenerateIncidents(NewRand(42), locs, 25)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("same seed produced different batches")
	}

	c := GenerateIncidents(NewRand(43), locs, 25)
	if reflect.DeepEqual(a, c) {
		t.Fatalf("different seeds produced identical batches")
	}
}

func TestGenerateIncidentsNoLocations(t *testing.T) {
	t.Parallel()

	if got := GenerateIncidents(NewRand(1), nil, 10); len(got) != 0 {
		t.Fatalf("len(batch) = %d, want 0", len(got))
	}
}
