package tumbler

import "fmt"

// A Link is an unordered negation constraint: the two dials it joins
// must hold opposite values. Chains and cycles of links are permitted
// (an odd cycle is unsatisfiable over a two-valued domain).
type Link struct {
	I, J int
}

// A Clause is a ternary OR constraint over three pairwise-distinct
// dials: at least one of them must be true.
type Clause struct {
	I, J, K int
}

func (c Clause) dials() [3]int { return [3]int{c.I, c.J, c.K} }

// An Instance describes a lock: NumDials two-position dials plus the
// constraints between them. Instances are immutable once constructed
// and are never mutated by Solve or Verify. NewInstance is the only
// way to obtain a validated one; duplicate links or clauses across the
// instance are redundant but not invalid.
type Instance struct {
	NumDials int
	Pins     []int // dials restricted to the two-position domain; in practice all of them
	Links    []Link
	Clauses  []Clause
}

func (in *Instance) String() string {
	return fmt.Sprintf("Instance(dials=%d, pins=%d, links=%d, clauses=%d)",
		in.NumDials, len(in.Pins), len(in.Links), len(in.Clauses))
}

// A Configuration assigns a value to every dial of an instance, keyed
// by dial number in [1, n]. Solve and Generate produce one; Verify
// consumes it and additionally reports entries that are missing or out
// of range.
type Configuration map[int]bool

// A StructuralError reports a malformed instance: an out-of-range
// dial, a self-referencing link, a duplicate dial within one clause,
// or a duplicate pin. Structural problems are detected at construction
// or parse time, never in the middle of a search.
type StructuralError struct {
	Msg string
}

func (e *StructuralError) Error() string { return "invalid instance: " + e.Msg }

func structuralf(format string, args ...interface{}) error {
	return &StructuralError{Msg: fmt.Sprintf(format, args...)}
}

// AllPins returns the pin set covering every dial of an n-dial lock,
// which is the usual case.
func AllPins(n int) []int {
	pins := make([]int, n)
	for i := range pins {
		pins[i] = i + 1
	}
	return pins
}

// NewInstance constructs a validated Instance from raw parts. The
// inputs are copied, and no partially-invalid Instance is ever
// observable: either every structural invariant holds or a
// StructuralError describing the first violation is returned.
func NewInstance(numDials int, pins []int, links []Link, clauses []Clause) (*Instance, error) {
	in := &Instance{
		NumDials: numDials,
		Pins:     append([]int(nil), pins...),
		Links:    append([]Link(nil), links...),
		Clauses:  append([]Clause(nil), clauses...),
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return in, nil
}

// Validate checks the structural invariants and fails fast with the
// first violation found.
func (in *Instance) Validate() error {
	if in.NumDials < 0 {
		return structuralf("number of dials must be nonnegative, got %d", in.NumDials)
	}
	seen := make(map[int]bool, len(in.Pins))
	for _, pin := range in.Pins {
		if pin < 1 || pin > in.NumDials {
			return structuralf("binary pin dial %d is out of range [1, %d]", pin, in.NumDials)
		}
		if seen[pin] {
			return structuralf("duplicate binary pin dial %d", pin)
		}
		seen[pin] = true
	}
	for _, l := range in.Links {
		for _, d := range [2]int{l.I, l.J} {
			if d < 1 || d > in.NumDials {
				return structuralf("negation link (%d, %d): dial %d is out of range [1, %d]",
					l.I, l.J, d, in.NumDials)
			}
		}
		if l.I == l.J {
			return structuralf("negation link (%d, %d) must connect distinct dials", l.I, l.J)
		}
	}
	for _, c := range in.Clauses {
		for _, d := range c.dials() {
			if d < 1 || d > in.NumDials {
				return structuralf("clause (%d, %d, %d): dial %d is out of range [1, %d]",
					c.I, c.J, c.K, d, in.NumDials)
			}
		}
		if c.I == c.J || c.I == c.K || c.J == c.K {
			return structuralf("clause (%d, %d, %d) must use three distinct dials", c.I, c.J, c.K)
		}
	}
	return nil
}
