package opt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nelhage/lasker/ai"
)

// ParsePlayer builds an engine from a name of the form rand[:SEED] or
// minimax[:DEPTH]. base supplies every other minimax setting.
func ParsePlayer(s string, base ai.MinimaxConfig) (ai.Player, error) {
	name, arg := s, ""
	if i := strings.IndexByte(s, ':'); i >= 0 {
		name, arg = s[:i], s[i+1:]
	}
	switch name {
	case "rand":
		var seed uint64
		if arg != "" {
			var err error
			if seed, err = strconv.ParseUint(arg, 10, 64); err != nil {
				return nil, fmt.Errorf("player %q: bad seed: %w", s, err)
			}
		}
		return ai.NewRandom(seed), nil
	case "minimax":
		cfg := base
		if arg != "" {
			depth, err := strconv.Atoi(arg)
			if err != nil || depth <= 0 {
				return nil, fmt.Errorf("player %q: bad depth", s)
			}
			cfg.Depth = depth
		}
		return ai.NewMinimax(cfg), nil
	}
	return nil, fmt.Errorf("unparseable player: %q", s)
}
