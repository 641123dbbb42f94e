package morris

import (
	"errors"

	"github.com/nelhage/lasker/bitboard"
)

// Point identifies one of the 24 intersections. Points are numbered
// in canonical order, top row to bottom row, left to right; every
// iteration that can influence a choice walks them in that order.
type Point int8

const NumPoints = 24

const NoPoint Point = -1

const (
	A7 Point = iota
	D7
	G7
	B6
	D6
	F6
	C5
	D5
	E5
	A4
	B4
	C4
	E4
	F4
	G4
	C3
	D3
	E3
	B2
	D2
	F2
	A1
	D1
	G1
)

var ErrInvalidPoint = errors.New("invalid point")

var pointNames = [NumPoints]string{
	"a7", "d7", "g7",
	"b6", "d6", "f6",
	"c5", "d5", "e5",
	"a4", "b4", "c4",
	"e4", "f4", "g4",
	"c3", "d3", "e3",
	"b2", "d2", "f2",
	"a1", "d1", "g1",
}

var adjacency = [NumPoints][]Point{
	A7: {A4, D7},
	D7: {A7, G7, D6},
	G7: {D7, G4},
	B6: {B4, D6},
	D6: {D7, B6, F6, D5},
	F6: {D6, F4},
	C5: {D5, C4},
	D5: {D6, C5, E5},
	E5: {D5, E4},
	A4: {A7, B4, A1},
	B4: {B6, A4, C4, B2},
	C4: {C5, B4, C3},
	E4: {E5, F4, E3},
	F4: {F6, E4, G4, F2},
	G4: {G7, F4, G1},
	C3: {C4, D3},
	D3: {C3, E3, D2},
	E3: {E4, D3},
	B2: {B4, D2},
	D2: {D3, B2, F2, D1},
	F2: {F4, D2},
	A1: {A4, D1},
	D1: {D2, A1, G1},
	G1: {G4, D1},
}

// Mills lists every line of three points that forms a mill.
var Mills = [16][3]Point{
	{A7, D7, G7}, {B6, D6, F6}, {C5, D5, E5},
	{A4, B4, C4}, {E4, F4, G4},
	{C3, D3, E3}, {B2, D2, F2}, {A1, D1, G1},
	{A7, A4, A1}, {B6, B4, B2}, {C5, C4, C3},
	{D7, D6, D5}, {D3, D2, D1},
	{E5, E4, E3}, {F6, F4, F2}, {G7, G4, G1},
}

var (
	graph      bitboard.Constants
	millMasks  [len(Mills)]uint64
	pointMills [NumPoints][]uint64
	nameIndex  map[string]Point
)

func init() {
	adj := make([][]uint, NumPoints)
	for i, ns := range adjacency {
		for _, n := range ns {
			adj[i] = append(adj[i], uint(n))
		}
	}
	graph = bitboard.Precompute(adj)

	for i, m := range Mills {
		for _, pt := range m {
			millMasks[i] |= pt.bit()
		}
		for _, pt := range m {
			pointMills[pt] = append(pointMills[pt], millMasks[i])
		}
	}

	nameIndex = make(map[string]Point, NumPoints)
	for i, n := range pointNames {
		nameIndex[n] = Point(i)
	}
}

// ParsePoint parses a point name like "d2". Names outside the 24
// intersections of the board are rejected.
func ParsePoint(s string) (Point, error) {
	if pt, ok := nameIndex[s]; ok {
		return pt, nil
	}
	return NoPoint, ErrInvalidPoint
}

func (p Point) Valid() bool {
	return p >= 0 && p < NumPoints
}

func (p Point) String() string {
	if !p.Valid() {
		return "none"
	}
	return pointNames[p]
}

// Neighbors returns the points adjacent to p. The slice is shared and
// must not be modified.
func (p Point) Neighbors() []Point {
	return adjacency[p]
}

func Adjacent(a, b Point) bool {
	if !a.Valid() || !b.Valid() {
		return false
	}
	return graph.Adjacent[a]&b.bit() != 0
}

func (p Point) bit() uint64 {
	return 1 << uint(p)
}
