// File: binary.go
// Role: the fixed binary layout selected by the CLI's -b flag: n, m as
// little-endian uint64, then m (u,v) uint64 pairs.
package graphio

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/katalvlaran/vcolor/graph"
)

// ReadBinary parses the fixed binary layout into a graph.Graph.
func ReadBinary(r io.Reader) (*graph.Graph, error) {
	var n, m uint64
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return nil, fmt.Errorf("graphio: reading vertex count: %w", err)
	}
	if err := binary.Read(r, binary.LittleEndian, &m); err != nil {
		return nil, fmt.Errorf("graphio: reading arc count: %w", err)
	}

	b, err := graph.NewBuilder(int(n))
	if err != nil {
		return nil, err
	}
	for i := uint64(0); i < m; i++ {
		var u, v uint64
		if err := binary.Read(r, binary.LittleEndian, &u); err != nil {
			return nil, fmt.Errorf("graphio: reading arc %d: %w", i, err)
		}
		if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
			return nil, fmt.Errorf("graphio: reading arc %d: %w", i, err)
		}
		if err := b.AddDirectedEdge(int(u), int(v)); err != nil {
			return nil, fmt.Errorf("graphio: arc %d: %w", i, err)
		}
	}

	return b.Build(), nil
}

// WriteBinary writes g in the fixed binary layout ReadBinary consumes.
func WriteBinary(w io.Writer, g graph.View) error {
	if err := binary.Write(w, binary.LittleEndian, uint64(g.N())); err != nil {
		return fmt.Errorf("graphio: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, uint64(g.M())); err != nil {
		return fmt.Errorf("graphio: %w", err)
	}
	for v := 0; v < g.N(); v++ {
		for i := 0; i < g.Degree(v); i++ {
			u := g.Neighbor(v, i)
			if err := binary.Write(w, binary.LittleEndian, uint64(v)); err != nil {
				return fmt.Errorf("graphio: %w", err)
			}
			if err := binary.Write(w, binary.LittleEndian, uint64(u)); err != nil {
				return fmt.Errorf("graphio: %w", err)
			}
		}
	}

	return nil
}
