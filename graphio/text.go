// File: text.go
// Role: the text edge-list format: an optional "# n m" header line
// followed by one "u v" arc per line.
package graphio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/vcolor/graph"
)

type textEdge struct{ u, v int }

// ReadText parses a text edge-list into a graph.Graph. Any line starting
// with "#" is a header or comment; if its first field parses as an integer
// n (the "# n m" header), n fixes the vertex count directly, the last such
// line winning and m being ignored. Without one, the vertex count is
// inferred as one plus the largest ID seen.
// Arcs are recorded exactly as written — an asymmetric file (a text edge
// list a caller assembled by hand, say) surfaces later as
// assess.EnsureUndirected failing, not as a silent repair here.
func ReadText(r io.Reader) (*graph.Graph, error) {
	scanner := bufio.NewScanner(r)

	var edges []textEdge
	headerN, maxID := -1, -1

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			fields := strings.Fields(strings.TrimPrefix(line, "#"))
			if len(fields) >= 1 {
				if v, err := strconv.Atoi(fields[0]); err == nil {
					headerN = v
				}
			}

			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("graphio: malformed edge line %q", line)
		}
		u, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("graphio: bad vertex id %q: %w", fields[0], err)
		}
		v, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("graphio: bad vertex id %q: %w", fields[1], err)
		}

		edges = append(edges, textEdge{u, v})
		if u > maxID {
			maxID = u
		}
		if v > maxID {
			maxID = v
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("graphio: %w", err)
	}

	n := headerN
	if n < 0 {
		n = maxID + 1
	}

	b, err := graph.NewBuilder(n)
	if err != nil {
		return nil, err
	}
	for _, e := range edges {
		if err := b.AddDirectedEdge(e.u, e.v); err != nil {
			return nil, fmt.Errorf("graphio: %w", err)
		}
	}

	return b.Build(), nil
}

// WriteText writes g as a "# n m" header followed by one line per arc, in
// the same directed-arc form ReadText consumes (an undirected edge {u,v}
// round-trips as both u->v and v->u lines).
func WriteText(w io.Writer, g graph.View) error {
	if _, err := fmt.Fprintf(w, "# %d %d\n", g.N(), g.M()); err != nil {
		return fmt.Errorf("graphio: %w", err)
	}
	for v := 0; v < g.N(); v++ {
		for i := 0; i < g.Degree(v); i++ {
			if _, err := fmt.Fprintf(w, "%d %d\n", v, g.Neighbor(v, i)); err != nil {
				return fmt.Errorf("graphio: %w", err)
			}
		}
	}

	return nil
}
