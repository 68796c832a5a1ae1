package tumbler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInstance(t *testing.T) {
	in, err := NewInstance(3, AllPins(3), []Link{{1, 2}}, []Clause{{1, 2, 3}})
	require.NoError(t, err)
	assert.Equal(t, 3, in.NumDials)
	assert.Equal(t, []int{1, 2, 3}, in.Pins)
	assert.Len(t, in.Links, 1)
	assert.Len(t, in.Clauses, 1)
}

func TestNewInstanceRejects(t *testing.T) {
	for _, tt := range []struct {
		name    string
		dials   int
		pins    []int
		links   []Link
		clauses []Clause
	}{
		{name: "negative dial count", dials: -1},
		{name: "pin out of range", dials: 3, pins: []int{1, 2, 5}},
		{name: "pin zero", dials: 3, pins: []int{0}},
		{name: "duplicate pin", dials: 3, pins: []int{1, 2, 2}},
		{name: "self-referencing link", dials: 3, links: []Link{{2, 2}}},
		{name: "link dial zero", dials: 3, links: []Link{{0, 1}}},
		{name: "link dial beyond n", dials: 3, links: []Link{{1, 4}}},
		{name: "repeated dial in clause", dials: 3, clauses: []Clause{{1, 1, 2}}},
		{name: "clause dial zero", dials: 3, clauses: []Clause{{0, 1, 2}}},
		{name: "clause dial beyond n", dials: 3, clauses: []Clause{{1, 2, 4}}},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			in, err := NewInstance(tt.dials, tt.pins, tt.links, tt.clauses)
			require.Error(t, err)
			assert.Nil(t, in, "no partially-invalid instance may be observable")
			var serr *StructuralError
			assert.ErrorAs(t, err, &serr)
		})
	}
}

func TestValidateAllowsRedundantConstraints(t *testing.T) {
	// Duplicate links and clauses across the instance are redundant
	// but not invalid.
	_, err := NewInstance(3, AllPins(3),
		[]Link{{1, 2}, {1, 2}, {2, 1}},
		[]Clause{{1, 2, 3}, {1, 2, 3}})
	assert.NoError(t, err)
}

func TestNewInstanceCopiesInputs(t *testing.T) {
	links := []Link{{1, 2}}
	in, err := NewInstance(2, nil, links, nil)
	require.NoError(t, err)
	links[0] = Link{I: 9, J: 9}
	assert.Equal(t, Link{I: 1, J: 2}, in.Links[0])
}
