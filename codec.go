package tumbler

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
)

// The wire format keeps the legacy dial-position tokens: position 1 is
// FALSE and position 6 is TRUE. Only this file knows about them; the
// rest of the package works with plain booleans.
const (
	tokenFalse = 1
	tokenTrue  = 6
)

type instanceJSON struct {
	NumDials   int     `json:"num_dials"`
	BinaryPins []int   `json:"binary_pins"`
	Negations  [][]int `json:"negations"`
	Clauses    [][]int `json:"clauses"`
}

type solutionJSON struct {
	DialValues map[string]int `json:"dial_values"`
}

// ParseInstance reads a lock instance in its JSON form:
//
//	{ "num_dials": 3,
//	  "binary_pins": [1, 2, 3],
//	  "negations":   [[1, 2]],
//	  "clauses":     [[1, 2, 3]] }
//
// The result is fully validated; a malformed document or a structural
// violation is reported as an error and no Instance is returned.
func ParseInstance(r io.Reader) (*Instance, error) {
	var raw struct {
		NumDials   *int    `json:"num_dials"`
		BinaryPins []int   `json:"binary_pins"`
		Negations  [][]int `json:"negations"`
		Clauses    [][]int `json:"clauses"`
	}
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("parsing instance: %w", err)
	}
	if raw.NumDials == nil {
		return nil, structuralf("missing required field num_dials")
	}
	links := make([]Link, len(raw.Negations))
	for i, neg := range raw.Negations {
		if len(neg) != 2 {
			return nil, structuralf("negation must have exactly 2 dials, got %d", len(neg))
		}
		links[i] = Link{I: neg[0], J: neg[1]}
	}
	clauses := make([]Clause, len(raw.Clauses))
	for i, cls := range raw.Clauses {
		if len(cls) != 3 {
			return nil, structuralf("clause must have exactly 3 dials, got %d", len(cls))
		}
		clauses[i] = Clause{I: cls[0], J: cls[1], K: cls[2]}
	}
	return NewInstance(*raw.NumDials, raw.BinaryPins, links, clauses)
}

// WriteInstance writes in to w in the JSON form read by ParseInstance.
func WriteInstance(w io.Writer, in *Instance) error {
	raw := instanceJSON{
		NumDials:   in.NumDials,
		BinaryPins: in.Pins,
		Negations:  make([][]int, len(in.Links)),
		Clauses:    make([][]int, len(in.Clauses)),
	}
	if raw.BinaryPins == nil {
		raw.BinaryPins = []int{}
	}
	for i, l := range in.Links {
		raw.Negations[i] = []int{l.I, l.J}
	}
	for i, c := range in.Clauses {
		raw.Clauses[i] = []int{c.I, c.J, c.K}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(raw)
}

// ParseSolution reads a dial configuration in its JSON form:
//
//	{ "dial_values": { "1": 6, "2": 1 } }
//
// Dial identifiers are the object keys; values must be one of the two
// legacy position tokens (1 for FALSE, 6 for TRUE). The configuration
// is not checked against any particular instance here; Verify reports
// missing or out-of-range dials.
func ParseSolution(r io.Reader) (Configuration, error) {
	var raw struct {
		DialValues map[string]int `json:"dial_values"`
	}
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("parsing solution: %w", err)
	}
	if raw.DialValues == nil {
		return nil, fmt.Errorf("parsing solution: missing required field dial_values")
	}
	cfg := make(Configuration, len(raw.DialValues))
	for key, token := range raw.DialValues {
		dial, err := strconv.Atoi(key)
		if err != nil || dial < 1 {
			return nil, fmt.Errorf("parsing solution: invalid dial identifier %q", key)
		}
		switch token {
		case tokenFalse:
			cfg[dial] = false
		case tokenTrue:
			cfg[dial] = true
		default:
			return nil, fmt.Errorf("parsing solution: dial %d has position %d; want %d (FALSE) or %d (TRUE)",
				dial, token, tokenFalse, tokenTrue)
		}
	}
	return cfg, nil
}

// WriteSolution writes cfg to w in the JSON form read by ParseSolution.
func WriteSolution(w io.Writer, cfg Configuration) error {
	raw := solutionJSON{DialValues: make(map[string]int, len(cfg))}
	for dial, v := range cfg {
		token := tokenFalse
		if v {
			token = tokenTrue
		}
		raw.DialValues[strconv.Itoa(dial)] = token
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(raw)
}

// ReadInstanceFile loads and validates an instance from a JSON file.
func ReadInstanceFile(path string) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	in, err := ParseInstance(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return in, nil
}

// WriteInstanceFile saves an instance to a JSON file.
func WriteInstanceFile(path string, in *Instance) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteInstance(f, in); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadSolutionFile loads a configuration from a JSON file.
func ReadSolutionFile(path string) (Configuration, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	cfg, err := ParseSolution(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// WriteSolutionFile saves a configuration to a JSON file.
func WriteSolutionFile(path string, cfg Configuration) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteSolution(f, cfg); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (c Configuration) String() string {
	dials := make([]int, 0, len(c))
	for d := range c {
		dials = append(dials, d)
	}
	sort.Ints(dials)
	var b strings.Builder
	b.WriteString("Configuration(")
	for i, d := range dials {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "D%d=%t", d, c[d])
	}
	b.WriteByte(')')
	return b.String()
}
