package referee

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/net/context"

	"github.com/nelhage/lasker/ai"
	"github.com/nelhage/lasker/morris"
	"github.com/nelhage/lasker/notation"
)

// EndPrefix marks the referee's game-over line, which is echoed back.
const EndPrefix = "END"

var (
	ErrBadColor  = errors.New("expected `blue' or `orange'")
	ErrWrongHand = notation.ErrWrongHand
)

// Engine plays one game against a referee over a line protocol. The
// first line names our color; every later line is an opponent move,
// answered with one of ours.
type Engine struct {
	Config        morris.Config
	ConfigFactory func() ai.MinimaxConfig
	// Player overrides the minimax player built from ConfigFactory.
	Player ai.Player

	in  *bufio.Reader
	out io.Writer

	pos *morris.Position
	us  morris.Color
}

func NewEngine(in io.Reader, out io.Writer) *Engine {
	return &Engine{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Position returns the engine's view of the game.
func (e *Engine) Position() *morris.Position {
	return e.pos
}

func (e *Engine) readLine() (string, error) {
	for {
		line, err := e.in.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return "", err
		}
		line = strings.TrimSpace(line)
		if line != "" {
			return line, nil
		}
		if err == io.EOF {
			return "", io.EOF
		}
	}
}

func parseColor(s string) (morris.Color, error) {
	switch strings.ToLower(s) {
	case "blue":
		return morris.Blue, nil
	case "orange":
		return morris.Orange, nil
	}
	return morris.NoColor, fmt.Errorf("%w: got %q", ErrBadColor, s)
}

// Run plays until the referee ends the game or closes the stream.
func (e *Engine) Run(ctx context.Context) error {
	line, err := e.readLine()
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return err
	}
	if e.us, err = parseColor(line); err != nil {
		return err
	}
	if err := e.Config.Validate(); err != nil {
		return err
	}
	e.pos = morris.New(e.Config)
	if e.Player == nil {
		var cfg ai.MinimaxConfig
		if e.ConfigFactory != nil {
			cfg = e.ConfigFactory()
		}
		e.Player = ai.NewMinimax(cfg)
	}
	log.Info().Stringer("color", e.us).Msg("new game")

	if e.us == morris.Blue {
		if err := e.play(ctx); err != nil {
			return err
		}
	}
	for {
		line, err := e.readLine()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if strings.HasPrefix(line, EndPrefix) {
			fmt.Fprintln(e.out, line)
			log.Info().Str("result", line).Msg("game over")
			return nil
		}
		if err := e.opponent(line); err != nil {
			log.Error().Err(err).Str("move", line).Msg("invalid move received")
			return err
		}
		if err := e.play(ctx); err != nil {
			return err
		}
	}
}

func (e *Engine) opponent(line string) error {
	them := e.us.Flip()
	m, err := notation.ParseMoveFor(line, them)
	if err != nil {
		return fmt.Errorf("parse %q: %w", line, err)
	}
	if err := e.pos.MakeMove(them, m); err != nil {
		return fmt.Errorf("apply %q: %w", line, err)
	}
	return nil
}

func (e *Engine) play(ctx context.Context) error {
	m, err := e.Player.GetMove(ctx, e.pos, e.us)
	if err != nil {
		log.Warn().Err(err).Str("pos", notation.FormatPosition(e.pos)).Msg("no move")
		return err
	}
	if err := e.pos.MakeMove(e.us, m); err != nil {
		return fmt.Errorf("engine move %s: %w", notation.FormatMove(m, e.us), err)
	}
	move := notation.FormatMove(m, e.us)
	log.Debug().Str("move", move).Str("pos", notation.FormatPosition(e.pos)).Msg("played")
	_, err = fmt.Fprintln(e.out, move)
	return err
}
