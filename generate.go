package tumbler

import (
	"fmt"
	"math"
	"math/rand"
)

// Params configures Generate.
type Params struct {
	NumDials   int
	Difficulty Difficulty
	// Seed seeds the generator's PRNG. The same Params always produce
	// the same instance.
	Seed int64
	// Presets overrides the built-in difficulty presets; nil means
	// DefaultPresets.
	Presets map[Difficulty]Preset
}

// An ExhaustedError reports that rejection sampling could not place
// enough constraints of the requested density within its retry
// budget. The caller can retry with relaxed parameters; Generate
// never silently under-fills an instance.
type ExhaustedError struct {
	Stage    string
	Want     int
	Got      int
	Attempts int
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("generation exhausted: placed %d of %d %s in %d attempts",
		e.Got, e.Want, e.Stage, e.Attempts)
}

// Rejection-sampling budgets. Without a cap a pathological
// (dials, density) combination could loop forever.
const (
	sampleBudgetPerConstraint = 200
	sampleBudgetBase          = 100
)

func sampleBudget(want int) int {
	return want*sampleBudgetPerConstraint + sampleBudgetBase
}

// Generate synthesizes an instance of the requested difficulty,
// solution first: a random seed configuration is drawn up front and,
// for every difficulty except PhaseTransition, each sampled constraint
// is kept only if the seed satisfies it. Those instances are therefore
// satisfiable by construction and the seed is returned as a witness.
//
// PhaseTransition skips the filter so that satisfiability stays
// genuinely open; its Configuration result is nil.
func Generate(params Params) (*Instance, Configuration, error) {
	if params.NumDials < 3 {
		return nil, nil, fmt.Errorf("generate: OR clauses need 3 distinct dials, got %d", params.NumDials)
	}
	presets := params.Presets
	if presets == nil {
		presets = DefaultPresets()
	}
	preset, ok := presets[params.Difficulty]
	if !ok {
		return nil, nil, fmt.Errorf("generate: unknown difficulty %q", params.Difficulty)
	}

	rng := rand.New(rand.NewSource(params.Seed))
	n := params.NumDials
	seed := make(Configuration, n)
	for d := 1; d <= n; d++ {
		seed[d] = rng.Intn(2) == 1
	}

	wantLinks := int(math.Round(preset.NegationFraction * float64(n)))
	links, err := sampleLinks(rng, n, wantLinks, seed, !preset.Open)
	if err != nil {
		return nil, nil, err
	}
	wantClauses := int(math.Round(preset.ClauseRatio * float64(n)))
	clauses, err := sampleClauses(rng, n, wantClauses, seed, !preset.Open)
	if err != nil {
		return nil, nil, err
	}

	in, err := NewInstance(n, AllPins(n), links, clauses)
	if err != nil {
		return nil, nil, err
	}
	if preset.Open {
		return in, nil, nil
	}
	return in, seed, nil
}

// sampleLinks draws want distinct negation links. In filtered mode a
// pair is kept only when the seed assigns it opposite values, so the
// link holds under the seed by construction.
func sampleLinks(rng *rand.Rand, n, want int, seed Configuration, filtered bool) ([]Link, error) {
	links := make([]Link, 0, want)
	used := make(map[Link]bool, want)
	budget := sampleBudget(want)
	for attempts := 0; len(links) < want; attempts++ {
		if attempts >= budget {
			return nil, &ExhaustedError{Stage: "negation links", Want: want, Got: len(links), Attempts: attempts}
		}
		i, j := rng.Intn(n)+1, rng.Intn(n)+1
		if i == j {
			continue
		}
		if i > j {
			i, j = j, i
		}
		l := Link{I: i, J: j}
		if used[l] {
			continue
		}
		if filtered && seed[i] == seed[j] {
			continue
		}
		used[l] = true
		links = append(links, l)
	}
	return links, nil
}

// sampleClauses draws want clauses over three distinct dials each. In
// filtered mode a clause is kept only when at least one of its dials
// is true under the seed. Duplicate clauses are redundant but valid,
// so no deduplication is applied.
func sampleClauses(rng *rand.Rand, n, want int, seed Configuration, filtered bool) ([]Clause, error) {
	clauses := make([]Clause, 0, want)
	budget := sampleBudget(want)
	for attempts := 0; len(clauses) < want; attempts++ {
		if attempts >= budget {
			return nil, &ExhaustedError{Stage: "clauses", Want: want, Got: len(clauses), Attempts: attempts}
		}
		i, j, k := rng.Intn(n)+1, rng.Intn(n)+1, rng.Intn(n)+1
		if i == j || i == k || j == k {
			continue
		}
		if filtered && !seed[i] && !seed[j] && !seed[k] {
			continue
		}
		clauses = append(clauses, Clause{I: i, J: j, K: k})
	}
	return clauses, nil
}
