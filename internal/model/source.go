// Package model defines the data structures shared by the fault localization pipeline.
package model

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
)

// Path represents a file system path.
type Path string

// IndexMap maps an entity identifier to its dense logical index.
// The index is the value referenced by edge lists and by matrix layouts.
type IndexMap map[string]int

// Len returns the number of entities in the map.
func (im IndexMap) Len() int {
	return len(im)
}

// Indices returns the logical indices in ascending order.
func (im IndexMap) Indices() []int {
	indices := make([]int, 0, len(im))
	for _, index := range im {
		indices = append(indices, index)
	}

	slices.Sort(indices)

	return indices
}

// Edge is a [source, target] pair of logical indices.
type Edge [2]int

// Source returns the first element of the pair.
func (e Edge) Source() int { return e[0] }

// Target returns the second element of the pair.
func (e Edge) Target() int { return e[1] }

// CallEdges lists the callees of a single method.
type CallEdges struct {
	Method  int
	Targets []int
}

// FaultSet maps a faulty method index to its known faulty statement indices.
// An empty statement list means every statement contained in the method.
type FaultSet map[int][]int

// Methods returns the faulty method indices in ascending order.
func (fs FaultSet) Methods() []int {
	methods := make([]int, 0, len(fs))
	for method := range fs {
		methods = append(methods, method)
	}

	slices.Sort(methods)

	return methods
}

// UnmarshalJSON accepts either an object keyed by method index whose values are
// a statement index, a list of statement indices or null, or a plain list of
// method indices.
func (fs *FaultSet) UnmarshalJSON(data []byte) error {
	result := FaultSet{}

	var methods []int
	if err := json.Unmarshal(data, &methods); err == nil {
		for _, method := range methods {
			result[method] = nil
		}

		*fs = result

		return nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode fault set: %w", err)
	}

	for key, value := range raw {
		method, err := strconv.Atoi(key)
		if err != nil {
			return fmt.Errorf("decode fault set: method key %q: %w", key, err)
		}

		lines, err := decodeFaultLines(value)
		if err != nil {
			return fmt.Errorf("decode fault set: method %d: %w", method, err)
		}

		result[method] = lines
	}

	*fs = result

	return nil
}

func decodeFaultLines(value json.RawMessage) ([]int, error) {
	if string(value) == "null" {
		return nil, nil
	}

	var single int
	if err := json.Unmarshal(value, &single); err == nil {
		return []int{single}, nil
	}

	var many []int
	if err := json.Unmarshal(value, &many); err != nil {
		return nil, err
	}

	return many, nil
}

// ProgramVersion is one defective program instance of a dataset.
// It is loaded whole and treated as immutable for the duration of a run.
type ProgramVersion struct {
	Project     string   `json:"proj"`
	Methods     IndexMap `json:"methods"`
	Lines       IndexMap `json:"lines"`
	Mutants     IndexMap `json:"mutation"`
	FailedTests IndexMap `json:"ftest"`
	PassedTests IndexMap `json:"rtest"`

	LineFailed   []Edge `json:"edge"`   // statement -> failed test
	LinePassed   []Edge `json:"edge10"` // statement -> passed test
	MethodLines  []Edge `json:"edge2"`  // method -> statement
	MutantLines  []Edge `json:"edge12"` // mutant -> statement
	MutantPassed []Edge `json:"edge13"` // mutant -> passed test that kills it
	MutantFailed []Edge `json:"edge14"` // mutant -> failed test that kills it

	Faults FaultSet `json:"ans"`

	// Calls is attached from the call graph file, not from the dataset JSON.
	Calls []CallEdges `json:"-"`
}

// DatasetStat summarizes the size of one program version.
type DatasetStat struct {
	Project     string
	Methods     int
	Lines       int
	Mutants     int
	FailedTests int
	PassedTests int
	Faults      int
}

// Stat returns the size summary of the program version.
func (pv *ProgramVersion) Stat() DatasetStat {
	return DatasetStat{
		Project:     pv.Project,
		Methods:     pv.Methods.Len(),
		Lines:       pv.Lines.Len(),
		Mutants:     pv.Mutants.Len(),
		FailedTests: pv.FailedTests.Len(),
		PassedTests: pv.PassedTests.Len(),
		Faults:      len(pv.Faults),
	}
}

// Validate checks that every edge refers to indices inside the index maps and
// that the index maps are dense.
func (pv *ProgramVersion) Validate() error {
	maps := []struct {
		name string
		m    IndexMap
	}{
		{"methods", pv.Methods},
		{"lines", pv.Lines},
		{"mutation", pv.Mutants},
		{"ftest", pv.FailedTests},
		{"rtest", pv.PassedTests},
	}

	for _, entry := range maps {
		for i, index := range entry.m.Indices() {
			if index != i {
				return fmt.Errorf("%s: index map is not dense at %d", entry.name, i)
			}
		}
	}

	edges := []struct {
		name   string
		edges  []Edge
		source int
		target int
	}{
		{"edge", pv.LineFailed, pv.Lines.Len(), pv.FailedTests.Len()},
		{"edge10", pv.LinePassed, pv.Lines.Len(), pv.PassedTests.Len()},
		{"edge2", pv.MethodLines, pv.Methods.Len(), pv.Lines.Len()},
		{"edge12", pv.MutantLines, pv.Mutants.Len(), pv.Lines.Len()},
		{"edge13", pv.MutantPassed, pv.Mutants.Len(), pv.PassedTests.Len()},
		{"edge14", pv.MutantFailed, pv.Mutants.Len(), pv.FailedTests.Len()},
	}

	for _, entry := range edges {
		for _, e := range entry.edges {
			if e.Source() < 0 || e.Source() >= entry.source || e.Target() < 0 || e.Target() >= entry.target {
				return fmt.Errorf("%s: edge [%d, %d] out of range", entry.name, e.Source(), e.Target())
			}
		}
	}

	for _, call := range pv.Calls {
		if call.Method < 0 || call.Method >= pv.Methods.Len() {
			return fmt.Errorf("call graph: method %d out of range", call.Method)
		}

		for _, target := range call.Targets {
			if target < 0 || target >= pv.Methods.Len() {
				return fmt.Errorf("call graph: target %d out of range", target)
			}
		}
	}

	return nil
}
