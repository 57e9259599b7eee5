package registry

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/smartcity/traffic-analyzer/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed chennai.yaml
var defaultLocations []byte

// Registry is the fixed, ordered set of locations known to the analyzer.
// It is built once at startup and never modified.
type Registry struct {
	city      string
	locations []domain.Location
	index     map[domain.Location]struct{}
}

type locationFile struct {
	City      string   `yaml:"city"`
	Locations []string `yaml:"locations"`
}

// Default returns the built-in Chennai registry
func Default() *Registry {
	r, err := Parse(defaultLocations)
	if err != nil {
		panic(fmt.Sprintf("registry: embedded locations are invalid: %v", err))
	}
	return r
}

// Load reads a registry from a YAML file, or returns the default when path is empty
func Load(path string) (*Registry, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("registry: failed to read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse builds a registry from YAML. Names are trimmed; blank and duplicate names are rejected.
func Parse(data []byte) (*Registry, error) {
	var file locationFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("registry: failed to decode locations: %w", err)
	}

	city := strings.TrimSpace(file.City)
	if city == "" {
		return nil, fmt.Errorf("registry: city name is required")
	}
	if len(file.Locations) == 0 {
		return nil, fmt.Errorf("registry: at least one location is required")
	}

	r := &Registry{
		city:      city,
		locations: make([]domain.Location, 0, len(file.Locations)),
		index:     make(map[domain.Location]struct{}, len(file.Locations)),
	}
	for _, name := range file.Locations {
		loc := domain.Location(strings.TrimSpace(name))
		if loc == "" {
			return nil, fmt.Errorf("registry: blank location name")
		}
		if loc == domain.AllLocations {
			return nil, fmt.Errorf("registry: %q is reserved", domain.AllLocations)
		}
		if _, dup := r.index[loc]; dup {
			return nil, fmt.Errorf("registry: duplicate location %q", loc)
		}
		r.index[loc] = struct{}{}
		r.locations = append(r.locations, loc)
	}

	return r, nil
}

// City returns the name of the city the locations belong to
func (r *Registry) City() string {
	return r.city
}

// Locations returns a copy of the ordered location list
func (r *Registry) Locations() []domain.Location {
	out := make([]domain.Location, len(r.locations))
	copy(out, r.locations)
	return out
}

// Options returns the selection list shown to users: "All" followed by every location
func (r *Registry) Options() []domain.Location {
	return append([]domain.Location{domain.AllLocations}, r.locations...)
}

// Contains reports whether loc is a registered location
func (r *Registry) Contains(loc domain.Location) bool {
	_, ok := r.index[loc]
	return ok
}

// Validate checks a selection. "All" is accepted only when allowAll is set.
func (r *Registry) Validate(loc domain.Location, allowAll bool) error {
	if loc == domain.AllLocations && allowAll {
		return nil
	}
	if !r.Contains(loc) {
		return fmt.Errorf("%w: %q", domain.ErrUnknownLocation, loc)
	}
	return nil
}
