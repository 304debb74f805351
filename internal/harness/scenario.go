package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/roach88/noether/physics"
)

// Scenario defines one conformance case: solve Domain from Inputs and
// check the expectation.
type Scenario struct {
	// Name uniquely identifies this scenario; golden files use it.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description,omitempty"`

	// Domain is the external domain name ("kinematics", ...).
	Domain string `yaml:"domain"`

	// Inputs are the known quantities, keyed by external symbol name.
	Inputs map[string]float64 `yaml:"inputs"`

	// Expect specifies the expected outcome.
	Expect Expectation `yaml:"expect"`
}

// Expectation is either a set of expected values or an error kind.
type Expectation struct {
	// Values lists expected derived values; a subset match against the
	// solve output.
	Values map[string]float64 `yaml:"values,omitempty"`

	// Tolerance bounds the comparison; zero means DefaultTolerance.
	// Treated as relative for expected magnitudes above one.
	Tolerance float64 `yaml:"tolerance,omitempty"`

	// Error names the expected error kind ("physics_impossible", ...)
	// for scenarios that must fail. Mutually exclusive with Values.
	Error string `yaml:"error,omitempty"`
}

// LoadScenario reads and parses a scenario YAML file. Unknown fields
// are rejected so typos fail loudly instead of silently skipping an
// assertion.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}

	var s Scenario
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}

	if err := validateScenario(&s); err != nil {
		return nil, fmt.Errorf("invalid scenario %s: %w", path, err)
	}
	return &s, nil
}

// LoadDir loads every *.yaml and *.yml scenario under dir, sorted by
// file name so runs are deterministic.
func LoadDir(dir string) ([]*Scenario, error) {
	var paths []string
	for _, pattern := range []string{"*.yaml", "*.yml"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, err
		}
		paths = append(paths, matches...)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no scenario files in %s", dir)
	}
	sort.Strings(paths)

	scenarios := make([]*Scenario, 0, len(paths))
	names := make(map[string]string, len(paths))
	for _, path := range paths {
		s, err := LoadScenario(path)
		if err != nil {
			return nil, err
		}
		if prev, dup := names[s.Name]; dup {
			return nil, fmt.Errorf("duplicate scenario name %q in %s and %s", s.Name, prev, path)
		}
		names[s.Name] = path
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}

// validateScenario checks required fields before any solve runs.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Domain == "" {
		return fmt.Errorf("domain is required")
	}
	if _, ok := physics.ParseDomain(s.Domain); !ok {
		return fmt.Errorf("unknown domain %q", s.Domain)
	}
	if len(s.Inputs) == 0 {
		return fmt.Errorf("inputs map is required and must be non-empty")
	}
	if len(s.Expect.Values) == 0 && s.Expect.Error == "" {
		return fmt.Errorf("expect needs values or an error kind")
	}
	if len(s.Expect.Values) > 0 && s.Expect.Error != "" {
		return fmt.Errorf("expect cannot combine values with an error kind")
	}
	if s.Expect.Tolerance < 0 {
		return fmt.Errorf("tolerance must be non-negative")
	}
	return nil
}
