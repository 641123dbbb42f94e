// Package bitboard implements occupancy sets over a fixed board graph
// of at most 64 nodes. Node i is bit 1<<i.
package bitboard

type Constants struct {
	Size uint
	Mask uint64

	// Adjacent[i] is the set of neighbours of node i.
	Adjacent []uint64
}

// Precompute builds the neighbour masks for the graph whose node i is
// connected to every node listed in adj[i]. Edges are made symmetric.
func Precompute(adj [][]uint) Constants {
	if len(adj) > 64 {
		panic("bitboard: graph too large")
	}
	c := Constants{
		Size:     uint(len(adj)),
		Adjacent: make([]uint64, len(adj)),
	}
	if c.Size == 64 {
		c.Mask = ^uint64(0)
	} else {
		c.Mask = 1<<c.Size - 1
	}
	for i, ns := range adj {
		for _, n := range ns {
			c.Adjacent[i] |= 1 << n
			c.Adjacent[n] |= 1 << uint(i)
		}
	}
	return c
}

// Grow returns seed plus every node adjacent to seed, restricted to
// within.
func Grow(c *Constants, within uint64, seed uint64) uint64 {
	next := seed
	for bits := seed; bits != 0; bits &= bits - 1 {
		next |= c.Adjacent[TrailingZeros(bits)]
	}
	return next & within
}

// Edges counts the (a, b) pairs with a in from, b in to and a, b
// adjacent.
func Edges(c *Constants, from uint64, to uint64) int {
	n := 0
	for bits := from; bits != 0; bits &= bits - 1 {
		n += Popcount(c.Adjacent[TrailingZeros(bits)] & to)
	}
	return n
}

// Isolated returns the members of bits that have no neighbour in
// open.
func Isolated(c *Constants, bits uint64, open uint64) uint64 {
	var out uint64
	for b := bits; b != 0; b &= b - 1 {
		i := TrailingZeros(b)
		if c.Adjacent[i]&open == 0 {
			out |= 1 << i
		}
	}
	return out
}
