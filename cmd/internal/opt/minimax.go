package opt

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/nelhage/lasker/ai"
)

type Minimax struct {
	Debug   int
	Depth   int
	Weights string
	Config  string
}

// File is the YAML file named by -config. Flags given on the command
// line take precedence over it.
type File struct {
	Depth   int         `yaml:"depth"`
	Debug   int         `yaml:"debug"`
	Weights *ai.Weights `yaml:"weights"`
}

func (o *Minimax) AddFlags(flags *flag.FlagSet) {
	flags.IntVar(&o.Debug, "debug", 0, "debug level")
	flags.IntVar(&o.Depth, "depth", 0, "minimax depth")
	flags.StringVar(&o.Weights, "weights", "", "JSON-encoded evaluation weights")
	flags.StringVar(&o.Config, "config", "", "YAML file of search settings")
}

func readFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out File
	if err := yaml.NewDecoder(f).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return &out, nil
}

// Load merges the config file, if any, with the flags, and returns the
// search configuration along with the evaluation weights it uses.
func (o *Minimax) Load() (ai.MinimaxConfig, ai.Weights, error) {
	w := ai.DefaultWeights
	cfg := ai.MinimaxConfig{
		Depth: o.Depth,
		Debug: o.Debug,
	}
	if o.Config != "" {
		file, err := readFile(o.Config)
		if err != nil {
			return cfg, w, fmt.Errorf("-config: %w", err)
		}
		if cfg.Depth == 0 {
			cfg.Depth = file.Depth
		}
		if cfg.Debug == 0 {
			cfg.Debug = file.Debug
		}
		if file.Weights != nil {
			w = *file.Weights
		}
	}
	if o.Weights != "" {
		if err := json.Unmarshal([]byte(o.Weights), &w); err != nil {
			return cfg, w, fmt.Errorf("parse weights: %w", err)
		}
	}
	cfg.Evaluate = ai.MakeEvaluator(&w)
	if cfg.Debug > 0 && zerolog.GlobalLevel() > zerolog.DebugLevel {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	return cfg, w, nil
}

func (o *Minimax) BuildConfig() ai.MinimaxConfig {
	cfg, _, err := o.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("bad search options")
	}
	return cfg
}
