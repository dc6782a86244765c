package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario is one simulation run: two temperature deltas at a latitude,
// developed over a number of hourly steps. Range validation belongs to the
// model; the loader only checks structure.
type Scenario struct {
	Name              string  `yaml:"name"`
	SurfaceTempDelta  float64 `yaml:"surface_temp_delta"`
	AltitudeTempDelta float64 `yaml:"altitude_temp_delta"`
	Latitude          float64 `yaml:"latitude"`
	TimeSteps         int     `yaml:"time_steps"`
}

// scenarioFile is the YAML document structure for SCENARIO_FILE.
type scenarioFile struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// LoadScenarios parses a YAML scenario file.
func LoadScenarios(path string) ([]Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario file: %w", err)
	}

	var doc scenarioFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse scenario file: %w", err)
	}
	if len(doc.Scenarios) == 0 {
		return nil, fmt.Errorf("scenario file %s defines no scenarios", path)
	}

	for i := range doc.Scenarios {
		s := &doc.Scenarios[i]
		if s.Name == "" {
			s.Name = fmt.Sprintf("scenario-%d", i+1)
		}
		if s.TimeSteps < 0 {
			return nil, fmt.Errorf("scenario %q: time_steps must be non-negative", s.Name)
		}
	}

	return doc.Scenarios, nil
}

// Scenarios resolves the scenario list: the YAML file when configured,
// otherwise one default-delta scenario per configured latitude.
func (c *Config) Scenarios() ([]Scenario, error) {
	if c.ScenarioFile != "" {
		return LoadScenarios(c.ScenarioFile)
	}

	scenarios := make([]Scenario, 0, len(c.Latitudes))
	for _, lat := range c.Latitudes {
		scenarios = append(scenarios, Scenario{
			Name:              fmt.Sprintf("lat-%g", lat),
			SurfaceTempDelta:  c.SurfaceTempDelta,
			AltitudeTempDelta: c.AltitudeTempDelta,
			Latitude:          lat,
			TimeSteps:         c.TimeSteps,
		})
	}
	return scenarios, nil
}
