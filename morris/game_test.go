package morris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func build(t testing.TB, blue, orange []Point, blueReserve, orangeReserve int) *Position {
	t.Helper()
	var sq [NumPoints]Color
	for _, pt := range blue {
		sq[pt] = Blue
	}
	for _, pt := range orange {
		sq[pt] = Orange
	}
	p, err := FromSquares(Config{}, sq, blueReserve, orangeReserve)
	require.NoError(t, err)
	return p
}

func checkInvariants(t testing.TB, p *Position) {
	t.Helper()
	require.Zero(t, p.Blue&p.Orange, "point owned by both sides")
	require.Zero(t, (p.Blue|p.Orange)&^graph.Mask, "piece off the board")
	for _, c := range []Color{Blue, Orange} {
		require.GreaterOrEqual(t, p.Reserve(c), 0)
		require.LessOrEqual(t, p.Pieces(c), p.Config().Pieces, "%s has too many pieces", c)
	}
}

func TestNew(t *testing.T) {
	p := New(Config{})
	for _, c := range []Color{Blue, Orange} {
		assert.Equal(t, 10, p.Reserve(c))
		assert.Equal(t, 0, p.OnBoard(c))
		assert.Equal(t, Placing, p.Phase(c))
	}
	for pt := Point(0); pt < NumPoints; pt++ {
		assert.Equal(t, NoColor, p.At(pt))
	}
	over, _ := p.GameOver()
	assert.False(t, over)

	p = New(Config{Pieces: 12})
	assert.Equal(t, 12, p.Reserve(Orange))
}

func TestPlace(t *testing.T) {
	p := New(Config{})

	require.NoError(t, p.Place(D2, Blue))
	assert.Equal(t, 9, p.Reserve(Blue))
	assert.Equal(t, 10, p.Reserve(Orange))
	assert.Equal(t, Blue, p.At(D2))

	before := p.Clone()
	assert.Equal(t, ErrOccupied, p.Place(D2, Blue))
	assert.Equal(t, ErrOccupied, p.Place(D2, Orange))
	assert.True(t, before.Equal(p), "failed placement changed the position")

	assert.Equal(t, ErrInvalidPoint, p.Place(NoPoint, Blue))
	assert.Equal(t, ErrInvalidPoint, p.Place(Point(NumPoints), Blue))
	assert.True(t, before.Equal(p))

	empty := build(t, []Point{A7}, nil, 0, 10)
	before = empty.Clone()
	assert.Equal(t, ErrNoReserve, empty.Place(D2, Blue))
	assert.True(t, before.Equal(empty))
	checkInvariants(t, p)
}

func TestSlideAndFly(t *testing.T) {
	p := build(t, []Point{A7, D7, B4, C4}, []Point{D6, A4}, 0, 0)
	before := p.Clone()

	cases := []struct {
		from, to Point
		c        Color
		err      error
	}{
		{A7, A1, Blue, ErrNotAdjacent},
		{A7, A4, Blue, ErrOccupied},
		{D6, D5, Blue, ErrNotOwner},
		{G7, G4, Blue, ErrNotOwner},
		{NoPoint, A4, Blue, ErrInvalidPoint},
		{A7, Point(30), Blue, ErrInvalidPoint},
	}
	for _, tc := range cases {
		err := p.Slide(tc.from, tc.to, tc.c)
		assert.Equal(t, tc.err, err, "Slide(%s, %s, %s)", tc.from, tc.to, tc.c)
		assert.True(t, before.Equal(p))
	}

	require.NoError(t, p.Slide(D7, G7, Blue))
	assert.Equal(t, NoColor, p.At(D7))
	assert.Equal(t, Blue, p.At(G7))

	assert.Equal(t, ErrOccupied, p.Fly(A7, D6, Blue))
	require.NoError(t, p.Fly(A7, G1, Blue))
	assert.Equal(t, Blue, p.At(G1))
	assert.Equal(t, 4, p.OnBoard(Blue))
	checkInvariants(t, p)
}

func TestCapture(t *testing.T) {
	p := build(t, []Point{A7}, []Point{D6}, 9, 9)
	before := p.Clone()

	assert.Equal(t, ErrIllegalCapture, p.Capture(A7, Blue))
	assert.Equal(t, ErrIllegalCapture, p.Capture(G1, Blue))
	assert.Equal(t, ErrInvalidPoint, p.Capture(NoPoint, Blue))
	assert.True(t, before.Equal(p))

	require.NoError(t, p.Capture(D6, Blue))
	assert.Equal(t, NoColor, p.At(D6))
	assert.Equal(t, 9, p.Pieces(Orange))
}

func TestPhase(t *testing.T) {
	cases := []struct {
		blue    []Point
		reserve int
		phase   Phase
	}{
		{nil, 10, Placing},
		{[]Point{A7, D7, G7}, 1, Placing},
		{[]Point{A7, D7, G7}, 0, Flying},
		{[]Point{A7, D7, G7, B6}, 0, Sliding},
		{[]Point{A7, D7}, 0, Sliding},
	}
	for i, tc := range cases {
		p := build(t, tc.blue, nil, tc.reserve, 10)
		assert.Equal(t, tc.phase, p.Phase(Blue), "case %d", i)
	}
}

func TestMillComplete(t *testing.T) {
	p := build(t, []Point{A7, D7, B6}, []Point{G7}, 7, 9)
	assert.False(t, p.MillComplete(Blue))
	assert.False(t, p.MillAt(D7, Blue))

	p = build(t, []Point{A7, D7, G7, B6}, []Point{A4}, 6, 9)
	assert.True(t, p.MillComplete(Blue))
	assert.True(t, p.MillAt(G7, Blue))
	assert.False(t, p.MillAt(B6, Blue))
	assert.False(t, p.MillComplete(Orange))
}

func TestFeatures(t *testing.T) {
	// Blue: a7 d7 (open mill on g7), b4. Orange: a4 boxed in by a7, b4
	// and a1.
	p := build(t, []Point{A7, D7, B4, A1}, []Point{A4}, 0, 9)
	assert.Equal(t, 1, p.OpenMills(Blue))
	assert.Equal(t, 1, p.Immobile(Orange))
	// a7: none; d7: g7 d6; b4: b6 c4 b2; a1: d1
	assert.Equal(t, 6, p.Mobility(Blue))
	// 19 empty points, no open edges
	assert.Equal(t, 19, p.Mobility(Orange))
}

func TestGameOver(t *testing.T) {
	p := build(t, []Point{A7, D7, G7}, []Point{A1, D1}, 0, 0)
	over, winner := p.GameOver()
	assert.True(t, over)
	assert.Equal(t, Blue, winner)

	p = build(t, []Point{A7, D7}, []Point{A1, D1}, 0, 0)
	over, winner = p.GameOver()
	assert.True(t, over)
	assert.Equal(t, NoColor, winner)

	p = build(t, []Point{A7}, []Point{A1, D1, G1}, 2, 0)
	over, _ = p.GameOver()
	assert.False(t, over, "reserve pieces count toward the total")

	var full [NumPoints]Color
	for i := range full {
		full[i] = Blue
		if i%2 == 1 {
			full[i] = Orange
		}
	}
	p, err := FromSquares(Config{Pieces: 12}, full, 0, 0)
	require.NoError(t, err)
	assert.False(t, p.HasMoves(Blue))
	assert.False(t, p.HasMoves(Orange))
	over, winner = p.GameOver()
	assert.True(t, over)
	assert.Equal(t, NoColor, winner)
}

func TestConfigValidate(t *testing.T) {
	for _, n := range []int{0, MinPieces, 10, MaxPieces} {
		assert.NoError(t, Config{Pieces: n}.Validate(), "pieces=%d", n)
	}
	for _, n := range []int{-1, 1, 2, MaxPieces + 1, 200} {
		assert.ErrorIs(t, Config{Pieces: n}.Validate(), ErrBadConfig, "pieces=%d", n)
	}
	assert.Panics(t, func() { New(Config{Pieces: 200}) })

	var sq [NumPoints]Color
	_, err := FromSquares(Config{Pieces: -5}, sq, 0, 0)
	assert.ErrorIs(t, err, ErrBadConfig)
}

func TestFromSquaresRejectsExcess(t *testing.T) {
	var sq [NumPoints]Color
	sq[A7] = Blue
	_, err := FromSquares(Config{}, sq, 300, 0)
	assert.Error(t, err)
	_, err = FromSquares(Config{}, sq, 10, 10)
	assert.Error(t, err)
	_, err = FromSquares(Config{}, sq, -1, 10)
	assert.Error(t, err)
	_, err = FromSquares(Config{}, sq, 9, 10)
	assert.NoError(t, err)
}
