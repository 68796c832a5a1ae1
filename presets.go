package tumbler

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Difficulty names a generation preset.
type Difficulty string

const (
	Trivial         Difficulty = "trivial"
	Easy            Difficulty = "easy"
	Medium          Difficulty = "medium"
	Hard            Difficulty = "hard"
	PhaseTransition Difficulty = "phase-transition"
)

// A Preset fixes the constraint densities for one difficulty level.
// The numbers are tuning data rather than structural truth; use the
// bench subcommand of cmd/tumbler to re-calibrate them and LoadPresets
// to override them.
type Preset struct {
	// ClauseRatio is the number of OR clauses per dial.
	ClauseRatio float64 `yaml:"clause_ratio"`
	// NegationFraction is the number of negation links per dial.
	NegationFraction float64 `yaml:"negation_fraction"`
	// Open skips the solution-first filter, leaving satisfiability
	// undetermined. Clauses here are all-positive, so hardness comes
	// mostly from the negation links: unfiltered links form odd
	// cycles at roughly the density below, which is what puts the
	// phase-transition preset near 50% satisfiability.
	Open bool `yaml:"open"`
}

// DefaultPresets returns the built-in difficulty presets.
func DefaultPresets() map[Difficulty]Preset {
	return map[Difficulty]Preset{
		Trivial:         {ClauseRatio: 0.5, NegationFraction: 0.1},
		Easy:            {ClauseRatio: 1.5, NegationFraction: 0.2},
		Medium:          {ClauseRatio: 2.8, NegationFraction: 0.35},
		Hard:            {ClauseRatio: 4.2, NegationFraction: 0.5},
		PhaseTransition: {ClauseRatio: 4.2, NegationFraction: 0.6, Open: true},
	}
}

// LoadPresets reads preset overrides in YAML form and merges them over
// the defaults. Each top-level key must name a known difficulty:
//
//	hard:
//	  clause_ratio: 4.5
//	  negation_fraction: 0.4
//
// An empty document yields the defaults unchanged.
func LoadPresets(r io.Reader) (map[Difficulty]Preset, error) {
	presets := DefaultPresets()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var overrides map[Difficulty]Preset
	if err := dec.Decode(&overrides); err != nil {
		if errors.Is(err, io.EOF) {
			return presets, nil
		}
		return nil, fmt.Errorf("parsing presets: %w", err)
	}
	for name, p := range overrides {
		if _, ok := presets[name]; !ok {
			return nil, fmt.Errorf("presets: unknown difficulty %q", name)
		}
		if p.ClauseRatio < 0 || p.NegationFraction < 0 {
			return nil, fmt.Errorf("presets: difficulty %q: densities must be nonnegative", name)
		}
		presets[name] = p
	}
	return presets, nil
}
