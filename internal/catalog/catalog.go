// Package catalog defines the fixed seed set of activities.
package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"example.com/signup/internal/domain"
)

//go:embed seed.yaml
var seedYAML []byte

// Catalog holds the seed activity definitions decoded from YAML.
type Catalog struct {
	Activities []domain.Activity `yaml:"activities"`
}

// Validate checks the catalog invariants: unique non-empty names, descriptive
// metadata, positive capacity, and no duplicate participants within an entry.
func (c *Catalog) Validate() error {
	if len(c.Activities) == 0 {
		return fmt.Errorf("catalog contains no activities")
	}
	names := make(map[string]struct{}, len(c.Activities))
	for _, activity := range c.Activities {
		if activity.Name == "" {
			return fmt.Errorf("activity with empty name")
		}
		if _, ok := names[activity.Name]; ok {
			return fmt.Errorf("duplicate activity name %q", activity.Name)
		}
		names[activity.Name] = struct{}{}

		if activity.Description == "" {
			return fmt.Errorf("activity %q has no description", activity.Name)
		}
		if activity.Schedule == "" {
			return fmt.Errorf("activity %q has no schedule", activity.Name)
		}
		if activity.MaxParticipants <= 0 {
			return fmt.Errorf("activity %q has non-positive max_participants", activity.Name)
		}

		seen := make(map[string]struct{}, len(activity.Participants))
		for _, email := range activity.Participants {
			if email == "" {
				return fmt.Errorf("activity %q has an empty participant entry", activity.Name)
			}
			if _, ok := seen[email]; ok {
				return fmt.Errorf("activity %q lists participant %q twice", activity.Name, email)
			}
			seen[email] = struct{}{}
		}
	}
	return nil
}

// Load returns the embedded seed catalog, or the catalog decoded from path
// when one is provided.
func Load(path string) (Catalog, error) {
	raw := seedYAML
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Catalog{}, fmt.Errorf("read catalog file: %w", err)
		}
		raw = data
	}

	var c Catalog
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return Catalog{}, fmt.Errorf("decode catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Catalog{}, fmt.Errorf("invalid catalog: %w", err)
	}
	return c, nil
}
