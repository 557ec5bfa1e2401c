// Package graphfile reads the plain-text .graph format into the inputs of
// core.NewGraph.
//
// The format:
//
//	V E                  header: vertex count, edge count
//	name lat lon         × V vertex records, insertion order significant
//	u v [name]           × E edge records, 0-based vertex indices
//
// Tokens are whitespace-separated; blank lines are skipped; an edge's
// trailing name is optional and ignored beyond validation. The loader only
// parses: it performs no graph logic, and its output feeds core.NewGraph
// unchanged, so index validation stays the graph's job.
//
// Errors:
//
//	ErrBadHeader - missing or malformed count line.
//	ErrBadVertex - a vertex record is truncated or not numeric.
//	ErrBadEdge   - an edge record is truncated or not numeric.
//
// All errors wrap the sentinel with the offending line number.
package graphfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/geograph/core"
)

// Sentinel errors for .graph parsing.
var (
	// ErrBadHeader indicates a missing or malformed "V E" count line.
	ErrBadHeader = errors.New("graphfile: malformed count header")

	// ErrBadVertex indicates a truncated or non-numeric vertex record.
	ErrBadVertex = errors.New("graphfile: malformed vertex record")

	// ErrBadEdge indicates a truncated or non-numeric edge record.
	ErrBadEdge = errors.New("graphfile: malformed edge record")
)

// File is the parsed content of one .graph source: vertex names and
// coordinates in input order, and edges as index pairs. It is plain data; a
// File holds no graph semantics of its own.
type File struct {
	// Names holds the vertex names, parallel to Vertices.
	Names []string

	// Vertices holds the coordinates in input order.
	Vertices []core.Point

	// Edges holds 0-based index pairs into Vertices.
	Edges [][2]int
}

// Graph builds the adjacency graph from the parsed lists. Construction
// rules, including index validation, belong to core.NewGraph.
func (f *File) Graph() (*core.Graph, error) {
	return core.NewGraph(f.Vertices, f.Edges)
}

// Load parses a .graph document from r.
//
// Complexity: O(V + E) over the input size.
func Load(r io.Reader) (*File, error) {
	lines := bufio.NewScanner(r)
	lines.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	ln := &lineReader{scanner: lines}

	// Header: exactly two non-negative counts.
	fields, lineNo, err := ln.next()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadHeader, err)
	}
	if len(fields) < 2 {
		return nil, fmt.Errorf("%w: line %d: want two counts, got %d fields", ErrBadHeader, lineNo, len(fields))
	}
	numVertices, err := strconv.Atoi(fields[0])
	if err != nil || numVertices < 0 {
		return nil, fmt.Errorf("%w: line %d: vertex count %q", ErrBadHeader, lineNo, fields[0])
	}
	numEdges, err := strconv.Atoi(fields[1])
	if err != nil || numEdges < 0 {
		return nil, fmt.Errorf("%w: line %d: edge count %q", ErrBadHeader, lineNo, fields[1])
	}

	f := &File{
		Names:    make([]string, 0, numVertices),
		Vertices: make([]core.Point, 0, numVertices),
		Edges:    make([][2]int, 0, numEdges),
	}

	// Vertex records: name lat lon.
	for i := 0; i < numVertices; i++ {
		fields, lineNo, err = ln.next()
		if err != nil {
			return nil, fmt.Errorf("%w: vertex %d: %v", ErrBadVertex, i, err)
		}
		if len(fields) < 3 {
			return nil, fmt.Errorf("%w: line %d: want name lat lon", ErrBadVertex, lineNo)
		}
		lat, latErr := strconv.ParseFloat(fields[1], 64)
		lon, lonErr := strconv.ParseFloat(fields[2], 64)
		if latErr != nil || lonErr != nil {
			return nil, fmt.Errorf("%w: line %d: non-numeric coordinates", ErrBadVertex, lineNo)
		}
		f.Names = append(f.Names, fields[0])
		f.Vertices = append(f.Vertices, core.Point{Lat: lat, Lon: lon})
	}

	// Edge records: u v, with an optional trailing name we ignore.
	for i := 0; i < numEdges; i++ {
		fields, lineNo, err = ln.next()
		if err != nil {
			return nil, fmt.Errorf("%w: edge %d: %v", ErrBadEdge, i, err)
		}
		if len(fields) < 2 {
			return nil, fmt.Errorf("%w: line %d: want u v", ErrBadEdge, lineNo)
		}
		u, uErr := strconv.Atoi(fields[0])
		v, vErr := strconv.Atoi(fields[1])
		if uErr != nil || vErr != nil {
			return nil, fmt.Errorf("%w: line %d: non-numeric endpoint index", ErrBadEdge, lineNo)
		}
		f.Edges = append(f.Edges, [2]int{u, v})
	}

	return f, lines.Err()
}

// LoadFile opens path and parses it with Load.
func LoadFile(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphfile: open %s: %w", path, err)
	}
	defer fh.Close()

	return Load(fh)
}

// lineReader yields whitespace-split fields of the next non-blank line,
// tracking line numbers for error context.
type lineReader struct {
	scanner *bufio.Scanner
	lineNo  int
}

func (lr *lineReader) next() ([]string, int, error) {
	for lr.scanner.Scan() {
		lr.lineNo++
		fields := strings.Fields(lr.scanner.Text())
		if len(fields) == 0 {
			continue // blank line
		}

		return fields, lr.lineNo, nil
	}
	if err := lr.scanner.Err(); err != nil {
		return nil, lr.lineNo, err
	}

	return nil, lr.lineNo, io.ErrUnexpectedEOF
}
