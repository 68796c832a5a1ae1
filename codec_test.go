package tumbler

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInstance(t *testing.T) {
	text := `{
  "num_dials": 3,
  "binary_pins": [1, 2, 3],
  "negations": [[1, 2]],
  "clauses": [[1, 2, 3]]
}`
	got, err := ParseInstance(strings.NewReader(text))
	require.NoError(t, err)
	want := &Instance{
		NumDials: 3,
		Pins:     []int{1, 2, 3},
		Links:    []Link{{1, 2}},
		Clauses:  []Clause{{1, 2, 3}},
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("ParseInstance (-want, +got):\n%s", diff)
	}
}

func TestParseInstanceErrors(t *testing.T) {
	for _, tt := range []struct {
		name string
		text string
	}{
		{"not json", `dials: 3`},
		{"missing num_dials", `{"negations": [], "clauses": []}`},
		{"negation arity", `{"num_dials": 3, "negations": [[1, 2, 3]], "clauses": []}`},
		{"clause arity", `{"num_dials": 3, "negations": [], "clauses": [[1, 2]]}`},
		{"dial out of range", `{"num_dials": 2, "negations": [], "clauses": [[1, 2, 3]]}`},
		{"self-referencing negation", `{"num_dials": 2, "negations": [[1, 1]], "clauses": []}`},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			in, err := ParseInstance(strings.NewReader(tt.text))
			assert.Error(t, err)
			assert.Nil(t, in)
		})
	}
}

func TestParseSolution(t *testing.T) {
	got, err := ParseSolution(strings.NewReader(`{"dial_values": {"1": 6, "2": 1, "3": 6}}`))
	require.NoError(t, err)
	want := Configuration{1: true, 2: false, 3: true}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ParseSolution (-want, +got):\n%s", diff)
	}
}

func TestParseSolutionErrors(t *testing.T) {
	for _, tt := range []struct {
		name string
		text string
	}{
		{"missing dial_values", `{}`},
		{"bad token", `{"dial_values": {"1": 3}}`},
		{"bad dial id", `{"dial_values": {"one": 6}}`},
		{"zero dial id", `{"dial_values": {"0": 6}}`},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseSolution(strings.NewReader(tt.text))
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestInstanceRoundTrip(t *testing.T) {
	in, err := NewInstance(4, AllPins(4), []Link{{1, 2}, {3, 4}}, []Clause{{1, 2, 3}, {2, 3, 4}})
	require.NoError(t, err)
	var b strings.Builder
	require.NoError(t, WriteInstance(&b, in))
	got, err := ParseInstance(strings.NewReader(b.String()))
	require.NoError(t, err)
	if diff := cmp.Diff(in, got, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("round trip changed the instance (-want, +got):\n%s", diff)
	}
}

func TestSolutionRoundTrip(t *testing.T) {
	cfg := Configuration{1: true, 2: false, 3: true}
	var b strings.Builder
	require.NoError(t, WriteSolution(&b, cfg))
	got, err := ParseSolution(strings.NewReader(b.String()))
	require.NoError(t, err)
	if diff := cmp.Diff(cfg, got); diff != "" {
		t.Fatalf("round trip changed the configuration (-want, +got):\n%s", diff)
	}
}

func TestConfigurationString(t *testing.T) {
	cfg := Configuration{2: false, 1: true}
	assert.Equal(t, "Configuration(D1=true, D2=false)", cfg.String())
}
