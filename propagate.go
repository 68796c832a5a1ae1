package tumbler

// value is the state of a single dial during search.
type value uint8

const (
	unassigned value = 0
	vTrue      value = 1
	vFalse     value = 2
)

func (v value) inv() value { return v ^ 3 }

func (v value) String() string {
	switch v {
	case unassigned:
		return "unassigned"
	case vTrue:
		return "true"
	case vFalse:
		return "false"
	default:
		panic("unreached")
	}
}

// A conflict identifies the constraint that failed during propagation.
// Conflicts drive backtracking and are never surfaced to callers.
type conflict struct {
	link  bool // true: index into Links, false: index into Clauses
	index int
}

// propagator holds the partial assignment and derives forced values
// from it. Each propagate call costs O(links + clauses) per sweep and
// runs sweeps until a fixed point or a conflict.
//
// The trail records dials in assignment order so the solver can
// rewind; satTrail does the same for the mark-satisfied clause
// bookkeeping.
type propagator struct {
	in        *Instance
	assign    []value // indexed by dial-1
	trail     []int
	satisfied []bool // per clause, known satisfied under the current assignment
	satTrail  []int
	sweeps    int64
}

func newPropagator(in *Instance) *propagator {
	return &propagator{
		in:        in,
		assign:    make([]value, in.NumDials),
		satisfied: make([]bool, len(in.Clauses)),
	}
}

func (p *propagator) val(dial int) value { return p.assign[dial-1] }

// set assigns a dial and records it on the trail. The dial must be
// unassigned.
func (p *propagator) set(dial int, v value) {
	p.assign[dial-1] = v
	p.trail = append(p.trail, dial)
}

func (p *propagator) markSatisfied(clause int) {
	p.satisfied[clause] = true
	p.satTrail = append(p.satTrail, clause)
}

// rewind undoes every assignment and satisfied mark made after the
// given trail positions.
func (p *propagator) rewind(trailMark, satMark int) {
	for i := len(p.trail) - 1; i >= trailMark; i-- {
		p.assign[p.trail[i]-1] = unassigned
	}
	p.trail = p.trail[:trailMark]
	for i := len(p.satTrail) - 1; i >= satMark; i-- {
		p.satisfied[p.satTrail[i]] = false
	}
	p.satTrail = p.satTrail[:satMark]
}

// propagate derives forced assignments until no new one can be found.
// It returns the number of dials it assigned, plus the conflict that
// stopped it, if any.
//
// Negation links force the unassigned side to the opposite of the
// assigned side, and conflict when both sides are assigned equal.
// Clauses follow the unit rule: two false dials force the third true;
// three false dials conflict. A clause with a true dial is marked
// satisfied and skipped on later sweeps.
func (p *propagator) propagate() (int, *conflict) {
	forced := 0
	for {
		p.sweeps++
		progress := false
		for i, l := range p.in.Links {
			vi, vj := p.val(l.I), p.val(l.J)
			switch {
			case vi == unassigned && vj == unassigned:
			case vi == unassigned:
				p.set(l.I, vj.inv())
				forced++
				progress = true
			case vj == unassigned:
				p.set(l.J, vi.inv())
				forced++
				progress = true
			case vi == vj:
				return forced, &conflict{link: true, index: i}
			}
		}
		for i, c := range p.in.Clauses {
			if p.satisfied[i] {
				continue
			}
			falseCount, open := 0, 0
			sat := false
			for _, d := range c.dials() {
				switch p.val(d) {
				case vTrue:
					sat = true
				case vFalse:
					falseCount++
				default:
					open = d
				}
			}
			switch {
			case sat:
				p.markSatisfied(i)
			case falseCount == 3:
				return forced, &conflict{index: i}
			case falseCount == 2 && open != 0:
				p.set(open, vTrue)
				p.markSatisfied(i)
				forced++
				progress = true
			}
		}
		if !progress {
			return forced, nil
		}
	}
}

// configuration snapshots the assignment as a total Configuration. It
// must only be called once every dial is assigned.
func (p *propagator) configuration() Configuration {
	cfg := make(Configuration, p.in.NumDials)
	for d := 1; d <= p.in.NumDials; d++ {
		cfg[d] = p.assign[d-1] == vTrue
	}
	return cfg
}
