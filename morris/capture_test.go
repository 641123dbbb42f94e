package morris

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBestCapture(t *testing.T) {
	cases := []struct {
		name   string
		orange []Point
		expect Point
	}{
		{"no pieces", nil, NoPoint},
		{"tie goes to canonical order", []Point{A7, G7}, A7},
		{"least remaining mobility", []Point{A7, D2}, D2},
		{"protected mill skipped", []Point{A1, D1, G1, A7}, A7},
		{"all protected", []Point{A1, D1, G1}, A1},
		{"protected even when most mobile", []Point{B2, D2, F2, G7}, G7},
	}
	for _, tc := range cases {
		p := build(t, []Point{C5, D5, E5}, tc.orange, 0, 0)
		assert.Equal(t, tc.expect, p.BestCapture(Blue), tc.name)
	}
}

func TestBestCaptureSimulatesRemoval(t *testing.T) {
	// d6 has the most open edges, but removing it hands the same edges
	// to b6 and d5. Taking g1 is the only removal that costs orange.
	p := build(t, []Point{B4, D1, C5, E5}, []Point{B6, D6, D5, G1}, 0, 0)
	assert.Equal(t, 3, p.Mobility(Orange))
	assert.Equal(t, G1, p.BestCapture(Blue))

	assert.NoError(t, p.Capture(G1, Blue))
	assert.Equal(t, 2, p.Mobility(Orange))
}
