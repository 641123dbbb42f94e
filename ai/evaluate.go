package ai

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/nelhage/lasker/morris"
)

// EvaluationFunc scores p from c's point of view.
type EvaluationFunc func(p *morris.Position, c morris.Color) int64

type Weights struct {
	Material int
	Mobility int
	Mill     int
	Trapped  int
}

// Mill must dominate Material and Mobility or the engine trades
// material for mobility instead of building mills.
var DefaultWeights = Weights{
	Material: 5,
	Mobility: 2,
	Mill:     50,
	Trapped:  20,
}

type features struct {
	pieces   int
	mobility int
	mills    int
	trapped  int
}

func extract(p *morris.Position, c morris.Color) features {
	return features{
		pieces:   p.Pieces(c),
		mobility: p.Mobility(c),
		mills:    p.OpenMills(c),
		trapped:  p.Immobile(c.Flip()),
	}
}

func (f features) score(w *Weights) int64 {
	return int64(w.Material*f.pieces +
		w.Mobility*f.mobility +
		w.Mill*f.mills +
		w.Trapped*f.trapped)
}

func MakeEvaluator(w *Weights) EvaluationFunc {
	if w == nil {
		w = &DefaultWeights
	}
	return func(p *morris.Position, c morris.Color) int64 {
		return evaluate(w, p, c)
	}
}

var DefaultEvaluate = MakeEvaluator(&DefaultWeights)

func evaluate(w *Weights, p *morris.Position, c morris.Color) int64 {
	return extract(p, c).score(w)
}

// ExplainScore writes a per-feature breakdown of both sides' scores
// under w.
func ExplainScore(out io.Writer, w *Weights, p *morris.Position) {
	if w == nil {
		w = &DefaultWeights
	}
	blue := extract(p, morris.Blue)
	orange := extract(p, morris.Orange)

	tw := tabwriter.NewWriter(out, 4, 8, 1, '\t', 0)
	fmt.Fprintf(tw, "\tweight\tblue\torange\n")
	fmt.Fprintf(tw, "pieces\t%d\t%d\t%d\n", w.Material, blue.pieces, orange.pieces)
	fmt.Fprintf(tw, "mobility\t%d\t%d\t%d\n", w.Mobility, blue.mobility, orange.mobility)
	fmt.Fprintf(tw, "open mills\t%d\t%d\t%d\n", w.Mill, blue.mills, orange.mills)
	fmt.Fprintf(tw, "trapped\t%d\t%d\t%d\n", w.Trapped, blue.trapped, orange.trapped)
	fmt.Fprintf(tw, "score\t\t%d\t%d\n", blue.score(w), orange.score(w))
	tw.Flush()
}
