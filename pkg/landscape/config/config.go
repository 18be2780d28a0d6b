package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kant/landscapemetrics/pkg/landscape/internalerr"
	"github.com/kant/landscapemetrics/pkg/landscape/neighborhood"
)

// Job describes one co-occurrence run. Either a named neighborhood
// preset or an explicit direction list may be given, not both; when
// neither is set the rook neighborhood is used.
type Job struct {
	Neighborhood string  `yaml:"neighborhood"` // "rook", "queen" or "forward"
	Directions   [][]int `yaml:"directions"`   // explicit (Δrow, Δcol) rows
	Ordered      *bool   `yaml:"ordered"`      // default true
	Workers      int     `yaml:"workers"`
	Classes      int     `yaml:"classes"`
}

// LoadJob loads a job description from a YAML file.
func LoadJob(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var job Job
	if err := yaml.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("config: %s: %v: %w", path, err, internalerr.ErrInvalidConfig)
	}

	return &job, nil
}

// DirectionSet resolves the configured neighborhood into offsets.
func (j *Job) DirectionSet() (neighborhood.Set, error) {
	if j.Neighborhood != "" && len(j.Directions) > 0 {
		return nil, fmt.Errorf("config: both neighborhood preset and explicit directions set: %w",
			internalerr.ErrInvalidConfig)
	}

	if len(j.Directions) > 0 {
		return neighborhood.FromPairs(j.Directions)
	}

	switch strings.ToLower(j.Neighborhood) {
	case "", "rook", "4":
		return neighborhood.Rook(), nil
	case "queen", "8":
		return neighborhood.Queen(), nil
	case "forward":
		return neighborhood.Forward(), nil
	default:
		return nil, fmt.Errorf("config: unknown neighborhood %q: %w",
			j.Neighborhood, internalerr.ErrInvalidConfig)
	}
}

// IsOrdered reports the configured counting mode, defaulting to true.
func (j *Job) IsOrdered() bool {
	if j.Ordered == nil {
		return true
	}
	return *j.Ordered
}

// Stoplist represents the stopword list configuration
type Stoplist struct {
	Terms []string `yaml:"terms"`
}

// LoadStoplist loads stopwords from a YAML file
func LoadStoplist(path string) (*Stoplist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sl Stoplist
	if err := yaml.Unmarshal(data, &sl); err != nil {
		return nil, fmt.Errorf("config: %s: %v: %w", path, err, internalerr.ErrInvalidConfig)
	}

	return &sl, nil
}
