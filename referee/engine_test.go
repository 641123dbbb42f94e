package referee

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"

	"github.com/nelhage/lasker/ai"
	"github.com/nelhage/lasker/morris"
	"github.com/nelhage/lasker/morristest"
	"github.com/nelhage/lasker/notation"
)

// firstMove always plays the first legal move.
type firstMove struct{}

func (firstMove) GetMove(ctx context.Context, p *morris.Position, c morris.Color) (morris.Move, error) {
	moves := p.AllMoves(c, nil)
	if len(moves) == 0 {
		return morris.Move{}, ai.ErrNoMoves
	}
	return moves[0], nil
}

func run(t *testing.T, transcript string, player ai.Player) (*Engine, []string, error) {
	t.Helper()
	var out bytes.Buffer
	e := NewEngine(strings.NewReader(transcript), &out)
	e.Player = player
	err := e.Run(context.Background())
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if out.Len() == 0 {
		lines = nil
	}
	return e, lines, err
}

func TestBlueMovesFirst(t *testing.T) {
	e, lines, err := run(t, "blue\nh2 d2 r0\nEND: blue wins\n", firstMove{})
	require.NoError(t, err)
	assert.Equal(t, []string{"h1 a7 r0", "h1 d7 r0", "END: blue wins"}, lines)

	p := e.Position()
	assert.Equal(t, morris.Blue, p.At(morris.A7))
	assert.Equal(t, morris.Blue, p.At(morris.D7))
	assert.Equal(t, morris.Orange, p.At(morris.D2))
	assert.Equal(t, 8, p.Reserve(morris.Blue))
	assert.Equal(t, 9, p.Reserve(morris.Orange))
}

func TestOrangeWaits(t *testing.T) {
	e, lines, err := run(t, "orange\n\nh1 a7 r0\nh1 g7 r0\n", firstMove{})
	require.NoError(t, err, "EOF ends the session")
	assert.Equal(t, []string{"h2 d7 r0", "h2 b6 r0"}, lines)
	assert.Equal(t, 8, e.Position().Reserve(morris.Orange))
}

func TestEndEchoed(t *testing.T) {
	_, lines, err := run(t, "orange\nEND: draw  \n", firstMove{})
	require.NoError(t, err)
	assert.Equal(t, []string{"END: draw"}, lines)
}

func TestOpponentCapture(t *testing.T) {
	// orange builds the top row and takes blue's b6
	transcript := strings.Join([]string{
		"blue",
		"h2 a7 r0",
		"h2 d7 r0",
		"h2 g7 b6",
		"END",
	}, "\n")
	script := morristest.Moves("h1 b6 r0; h1 b2 r0; h1 a1 r0; h1 d1 r0")
	e, lines, err := run(t, transcript, &scripted{moves: script})
	require.NoError(t, err)
	assert.Equal(t, []string{"h1 b6 r0", "h1 b2 r0", "h1 a1 r0", "h1 d1 r0", "END"}, lines)
	assert.Equal(t, morris.NoColor, e.Position().At(morris.B6))
	assert.Equal(t, 3, e.Position().OnBoard(morris.Blue))
}

type scripted struct {
	moves []morris.Move
}

func (s *scripted) GetMove(ctx context.Context, p *morris.Position, c morris.Color) (morris.Move, error) {
	m := s.moves[0]
	s.moves = s.moves[1:]
	return m, nil
}

func TestInvalidOpponentMove(t *testing.T) {
	cases := []struct {
		transcript string
		err        error
	}{
		{"orange\nh1 z9 r0\n", morris.ErrInvalidPoint},
		{"orange\nh1 a7\n", notation.ErrIllegalMove},
		{"orange\nh2 a7 r0\n", ErrWrongHand},
		{"blue\nh2 a7 r0\n", morris.ErrOccupied},
		{"blue\nh2 d7 d7\n", morris.ErrIllegalCapture},
		{"orange\na7 d7 r0\n", morris.ErrNotOwner},
		{"purple\n", ErrBadColor},
	}
	for _, tc := range cases {
		_, _, err := run(t, tc.transcript, firstMove{})
		assert.ErrorIs(t, err, tc.err, "%q", tc.transcript)
	}
}

func TestNoMoves(t *testing.T) {
	_, lines, err := run(t, "orange\nh1 a7 r0\n", noMoves{})
	assert.ErrorIs(t, err, ai.ErrNoMoves)
	assert.Empty(t, lines)
}

type noMoves struct{}

func (noMoves) GetMove(ctx context.Context, p *morris.Position, c morris.Color) (morris.Move, error) {
	return morris.Move{}, ai.ErrNoMoves
}

func TestMinimaxDefault(t *testing.T) {
	var out bytes.Buffer
	e := NewEngine(strings.NewReader("blue\n"), &out)
	e.ConfigFactory = func() ai.MinimaxConfig { return ai.MinimaxConfig{Depth: 1} }
	require.NoError(t, e.Run(context.Background()))

	m, err := notation.ParseMove(strings.TrimSpace(out.String()))
	require.NoError(t, err)
	assert.Equal(t, morris.Place, m.Type)
	assert.Equal(t, morris.Blue, e.Position().At(m.To))
}

func TestBadConfig(t *testing.T) {
	var out bytes.Buffer
	e := NewEngine(strings.NewReader("blue\n"), &out)
	e.Config = morris.Config{Pieces: 200}
	e.Player = firstMove{}
	assert.ErrorIs(t, e.Run(context.Background()), morris.ErrBadConfig)
	assert.Empty(t, out.String())
}
