package tumbler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustInstance(t *testing.T, n int, links []Link, clauses []Clause) *Instance {
	t.Helper()
	in, err := NewInstance(n, AllPins(n), links, clauses)
	require.NoError(t, err)
	return in
}

func TestPropagateNoProgressOnEmptyAssignment(t *testing.T) {
	p := newPropagator(mustInstance(t, 3, []Link{{1, 2}}, []Clause{{1, 2, 3}}))
	forced, confl := p.propagate()
	assert.Zero(t, forced)
	assert.Nil(t, confl)
}

func TestPropagateLinkForcesOpposite(t *testing.T) {
	p := newPropagator(mustInstance(t, 2, []Link{{1, 2}}, nil))
	p.set(1, vTrue)
	forced, confl := p.propagate()
	require.Nil(t, confl)
	assert.Equal(t, 1, forced)
	assert.Equal(t, vFalse, p.val(2))
}

func TestPropagateLinkChainToFixedPoint(t *testing.T) {
	// One call must chase implications through the whole chain.
	p := newPropagator(mustInstance(t, 4, []Link{{1, 2}, {2, 3}, {3, 4}}, nil))
	p.set(1, vTrue)
	forced, confl := p.propagate()
	require.Nil(t, confl)
	assert.Equal(t, 3, forced)
	assert.Equal(t, vFalse, p.val(2))
	assert.Equal(t, vTrue, p.val(3))
	assert.Equal(t, vFalse, p.val(4))
}

func TestPropagateLinkConflict(t *testing.T) {
	p := newPropagator(mustInstance(t, 2, []Link{{1, 2}}, nil))
	p.set(1, vTrue)
	p.set(2, vTrue)
	_, confl := p.propagate()
	require.NotNil(t, confl)
	assert.True(t, confl.link)
	assert.Equal(t, 0, confl.index)
}

func TestPropagateUnitClause(t *testing.T) {
	p := newPropagator(mustInstance(t, 3, nil, []Clause{{1, 2, 3}}))
	p.set(1, vFalse)
	p.set(2, vFalse)
	forced, confl := p.propagate()
	require.Nil(t, confl)
	assert.Equal(t, 1, forced)
	assert.Equal(t, vTrue, p.val(3))
	assert.True(t, p.satisfied[0])
}

func TestPropagateClauseConflict(t *testing.T) {
	p := newPropagator(mustInstance(t, 3, nil, []Clause{{1, 2, 3}}))
	p.set(1, vFalse)
	p.set(2, vFalse)
	p.set(3, vFalse)
	_, confl := p.propagate()
	require.NotNil(t, confl)
	assert.False(t, confl.link)
	assert.Equal(t, 0, confl.index)
}

func TestPropagateMarksSatisfiedClauses(t *testing.T) {
	p := newPropagator(mustInstance(t, 3, nil, []Clause{{1, 2, 3}}))
	p.set(1, vTrue)
	forced, confl := p.propagate()
	require.Nil(t, confl)
	assert.Zero(t, forced)
	assert.True(t, p.satisfied[0])
}

func TestPropagateMixedConstraints(t *testing.T) {
	// Forcing via a link must feed the unit-clause rule in the same
	// call: 1=true forces 2=false; with 3=false the clause forces 4.
	p := newPropagator(mustInstance(t, 4, []Link{{1, 2}}, []Clause{{2, 3, 4}}))
	p.set(3, vFalse)
	p.set(1, vTrue)
	forced, confl := p.propagate()
	require.Nil(t, confl)
	assert.Equal(t, 2, forced)
	assert.Equal(t, vFalse, p.val(2))
	assert.Equal(t, vTrue, p.val(4))
}

func TestRewind(t *testing.T) {
	p := newPropagator(mustInstance(t, 3, []Link{{1, 2}}, []Clause{{1, 2, 3}}))
	trailMark, satMark := len(p.trail), len(p.satTrail)
	p.set(1, vTrue)
	_, confl := p.propagate()
	require.Nil(t, confl)
	require.Equal(t, vFalse, p.val(2))
	require.True(t, p.satisfied[0])

	p.rewind(trailMark, satMark)
	assert.Equal(t, unassigned, p.val(1))
	assert.Equal(t, unassigned, p.val(2))
	assert.False(t, p.satisfied[0])
	assert.Empty(t, p.trail)
	assert.Empty(t, p.satTrail)
}
