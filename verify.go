package tumbler

import (
	"fmt"
	"sort"
)

// ViolationKind classifies a verification failure.
type ViolationKind int

const (
	// MissingDial: the configuration has no entry for a dial of the
	// instance.
	MissingDial ViolationKind = iota
	// ExtraDial: the configuration sets a dial outside [1, n].
	ExtraDial
	// LinkViolated: both dials of a negation link hold the same value.
	LinkViolated
	// ClauseViolated: all three dials of an OR clause are false.
	ClauseViolated
)

// A Violation describes one constraint a configuration fails to
// satisfy.
type Violation struct {
	Kind   ViolationKind
	Dial   int    // MissingDial, ExtraDial
	Link   Link   // LinkViolated
	Clause Clause // ClauseViolated
}

func (v Violation) String() string {
	switch v.Kind {
	case MissingDial:
		return fmt.Sprintf("dial %d is not set", v.Dial)
	case ExtraDial:
		return fmt.Sprintf("dial %d is out of range", v.Dial)
	case LinkViolated:
		return fmt.Sprintf("negation link (%d, %d) violated: both dials hold the same value",
			v.Link.I, v.Link.J)
	case ClauseViolated:
		return fmt.Sprintf("clause (%d, %d, %d) violated: all three dials are false",
			v.Clause.I, v.Clause.J, v.Clause.K)
	default:
		return "unknown violation"
	}
}

// Verify checks cfg against every constraint of in and reports every
// violation, in input order, rather than stopping at the first. It
// mutates neither argument and is deterministic for a given pair; the
// scan is O(dials + links + clauses).
//
// Coverage problems (missing or out-of-range dials) are reported on
// their own: constraint results would be meaningless with dials
// unset, so the constraint scan only runs on a total configuration.
func Verify(in *Instance, cfg Configuration) (bool, []Violation) {
	var violations []Violation
	for d := 1; d <= in.NumDials; d++ {
		if _, ok := cfg[d]; !ok {
			violations = append(violations, Violation{Kind: MissingDial, Dial: d})
		}
	}
	var extras []int
	for d := range cfg {
		if d < 1 || d > in.NumDials {
			extras = append(extras, d)
		}
	}
	sort.Ints(extras)
	for _, d := range extras {
		violations = append(violations, Violation{Kind: ExtraDial, Dial: d})
	}
	if len(violations) > 0 {
		return false, violations
	}

	for _, l := range in.Links {
		if cfg[l.I] == cfg[l.J] {
			violations = append(violations, Violation{Kind: LinkViolated, Link: l})
		}
	}
	for _, c := range in.Clauses {
		if !cfg[c.I] && !cfg[c.J] && !cfg[c.K] {
			violations = append(violations, Violation{Kind: ClauseViolated, Clause: c})
		}
	}
	return len(violations) == 0, violations
}
