// Package tumbler models boolean satisfiability (3-SAT) as a
// combination lock: a row of two-position dials joined by negation
// links (the linked dials must disagree) and three-dial OR clauses (at
// least one of the three must be true).
//
// The package provides a backtracking solver with constraint
// propagation, a solution-first instance generator with difficulty
// presets, a linear-time verifier, and the JSON wire format for
// instances and configurations.
package tumbler

import (
	"context"
	"time"
)

// Status reports how a solve attempt ended.
type Status int

const (
	Satisfiable Status = iota
	Unsatisfiable
	// Timeout means the context expired before the search finished.
	// It must never be conflated with Unsatisfiable: the instance may
	// still have a solution.
	Timeout
)

func (s Status) String() string {
	switch s {
	case Satisfiable:
		return "satisfiable"
	case Unsatisfiable:
		return "unsatisfiable"
	case Timeout:
		return "timeout"
	default:
		panic("unreached")
	}
}

// Stats carries observability counters for one solve call. They are
// informational only and never affect the result.
type Stats struct {
	Decisions    int64
	Backtracks   int64
	Propagations int64 // propagation sweeps over the constraint set
	Elapsed      time.Duration
}

// An Outcome is the result of Solve: a satisfying Configuration, a
// proof of unsatisfiability, or Timeout, plus search statistics.
type Outcome struct {
	Status Status
	Config Configuration // set only when Status is Satisfiable
	Stats  Stats
}

// A Tracer observes solver transitions. Implementations must be
// cheap: the solver calls them once per decision and per backtrack.
type Tracer interface {
	Decide(dial int, value bool, depth int)
	Backtrack(dial int, value bool, depth int)
}

type noopTracer struct{}

func (noopTracer) Decide(int, bool, int)    {}
func (noopTracer) Backtrack(int, bool, int) {}

// A SolveOption adjusts solver behavior.
type SolveOption func(*solver)

// WithTracer registers t to observe decisions and backtracks.
func WithTracer(t Tracer) SolveOption {
	return func(sv *solver) { sv.tracer = t }
}

// frame is one entry of the explicit decision stack: the dial that was
// tentatively assigned, whether its alternative value has been tried,
// and the trail positions to rewind to when it is undone.
type frame struct {
	dial      int
	flipped   bool
	trailMark int
	satMark   int
}

type solver struct {
	in     *Instance
	p      *propagator
	stack  []frame
	tracer Tracer
	stats  Stats
}

func newSolver(in *Instance) *solver {
	return &solver{in: in, p: newPropagator(in), tracer: noopTracer{}}
}

// Solve decides whether in is satisfiable and, when it is, returns a
// witness Configuration. The instance must be structurally valid:
// Solve rejects invalid instances up front with a StructuralError and
// never fails mid-search. The absence of a solution is always an
// explicit Unsatisfiable outcome, never an empty Configuration.
//
// ctx is checked once per decision frame; when it expires the outcome
// status is Timeout.
//
// For a fixed instance the search order, and therefore the returned
// witness, is fully deterministic: the lowest-numbered unassigned dial
// is picked at every decision, true is tried before false.
func Solve(ctx context.Context, in *Instance, opts ...SolveOption) (*Outcome, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	sv := newSolver(in)
	for _, opt := range opts {
		opt(sv)
	}
	return sv.solve(ctx), nil
}

func (sv *solver) solve(ctx context.Context) *Outcome {
	start := time.Now()
	out := sv.run(ctx)
	out.Stats = sv.stats
	out.Stats.Propagations = sv.p.sweeps
	out.Stats.Elapsed = time.Since(start)
	return out
}

func (sv *solver) run(ctx context.Context) *Outcome {
	for {
		// Propagate to a fixed point before every decision and after
		// every backtrack.
		if _, confl := sv.p.propagate(); confl != nil {
			if !sv.backtrack() {
				return &Outcome{Status: Unsatisfiable}
			}
			continue
		}
		if ctx.Err() != nil {
			return &Outcome{Status: Timeout}
		}
		dial := sv.nextUnassigned()
		if dial == 0 {
			return &Outcome{Status: Satisfiable, Config: sv.p.configuration()}
		}
		sv.stack = append(sv.stack, frame{
			dial:      dial,
			trailMark: len(sv.p.trail),
			satMark:   len(sv.p.satTrail),
		})
		sv.p.set(dial, vTrue)
		sv.stats.Decisions++
		sv.tracer.Decide(dial, true, len(sv.stack))
	}
}

// backtrack unwinds the decision stack to the deepest frame whose
// alternative value has not been tried, flips that dial to false, and
// reports whether the search can continue. An empty stack proves
// unsatisfiability.
func (sv *solver) backtrack() bool {
	for len(sv.stack) > 0 {
		f := &sv.stack[len(sv.stack)-1]
		sv.p.rewind(f.trailMark, f.satMark)
		if !f.flipped {
			f.flipped = true
			sv.p.set(f.dial, vFalse)
			sv.stats.Backtracks++
			sv.tracer.Backtrack(f.dial, false, len(sv.stack))
			return true
		}
		sv.stack = sv.stack[:len(sv.stack)-1]
	}
	return false
}

func (sv *solver) nextUnassigned() int {
	for d := 1; d <= sv.in.NumDials; d++ {
		if sv.p.val(d) == unassigned {
			return d
		}
	}
	return 0
}
