package morristest

import (
	"testing"

	"github.com/nelhage/lasker/morris"
	"github.com/stretchr/testify/assert"
)

func TestPlay(t *testing.T) {
	p := Play("h1 a7 r0; h2 b6 r0; h1 d7 r0; h2 d6 r0; h1 g7 b6")
	assert.Equal(t, morris.Blue, p.At(morris.A7))
	assert.Equal(t, morris.Blue, p.At(morris.G7))
	assert.Equal(t, morris.NoColor, p.At(morris.B6))
	assert.Equal(t, morris.Orange, p.At(morris.D6))
	assert.Equal(t, 7, p.Reserve(morris.Blue))
	assert.Equal(t, 1, p.OnBoard(morris.Orange))
}

func TestFormatMoves(t *testing.T) {
	const line = "h1 a7 r0; h2 b6 r0; h1 d7 r0"
	assert.Equal(t, line, FormatMoves(morris.Blue, Moves(line)))
	assert.Nil(t, Moves(" "))
}

func TestPanics(t *testing.T) {
	assert.Panics(t, func() { Move("h1 z9 r0") })
	assert.Panics(t, func() { Position("x3 10 10") })
	assert.Panics(t, func() { Play("h1 a7 r0; h2 a7 r0") })
}
