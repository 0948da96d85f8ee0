package adapter

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	m "flreduce.dev/pkg/flreduce/internal/model"
)

const callGraphSeparator = " * "

// maxCallGraphLine bounds a single project line; large projects list tens of
// thousands of call edges on one line.
const maxCallGraphLine = 64 << 20

// ParseCallGraph decodes a method-to-method call graph file. Each non-blank
// line has the form `<project> * [(method, [targets...]), ...]`.
func ParseCallGraph(r io.Reader) (map[string][]m.CallEdges, error) {
	result := make(map[string][]m.CallEdges)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxCallGraphLine)

	lineNo := 0
	for scanner.Scan() {
		lineNo++

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		project, edges, err := parseCallGraphLine(line)
		if err != nil {
			return nil, fmt.Errorf("parse call graph line %d: %w", lineNo, err)
		}

		result[project] = edges
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read call graph: %w", err)
	}

	return result, nil
}

func parseCallGraphLine(line string) (string, []m.CallEdges, error) {
	project, payload, ok := strings.Cut(line, callGraphSeparator)
	if !ok {
		return "", nil, fmt.Errorf("missing %q separator", strings.TrimSpace(callGraphSeparator))
	}

	project = strings.TrimSpace(project)
	if project == "" {
		return "", nil, fmt.Errorf("empty project name")
	}

	// Tuples become arrays so the payload is valid JSON.
	payload = strings.NewReplacer("(", "[", ")", "]").Replace(payload)

	var raw [][]json.RawMessage
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		return "", nil, fmt.Errorf("project %s: %w", project, err)
	}

	edges := make([]m.CallEdges, 0, len(raw))
	for _, entry := range raw {
		if len(entry) != 2 {
			return "", nil, fmt.Errorf("project %s: call entry has %d elements, want 2", project, len(entry))
		}

		var edge m.CallEdges
		if err := json.Unmarshal(entry[0], &edge.Method); err != nil {
			return "", nil, fmt.Errorf("project %s: method: %w", project, err)
		}

		if err := json.Unmarshal(entry[1], &edge.Targets); err != nil {
			return "", nil, fmt.Errorf("project %s: targets of %d: %w", project, edge.Method, err)
		}

		edges = append(edges, edge)
	}

	return project, edges, nil
}
