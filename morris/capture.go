package morris

// BestCapture chooses which opponent piece c removes after closing a
// mill. Pieces inside the opponent's own completed mills are skipped
// unless nothing else is available. Among the rest, the piece whose
// removal leaves the opponent with the least mobility wins; ties go to
// the first point in canonical order. Returns NoPoint when the
// opponent has nothing on the board.
func (p *Position) BestCapture(c Color) Point {
	opp := c.Flip()
	theirs := *p.bits(opp)
	if theirs == 0 {
		return NoPoint
	}
	eligible := theirs &^ p.protected(opp)
	if eligible == 0 {
		eligible = theirs
	}

	best := NoPoint
	bestMobility := 0
	for pt := Point(0); pt < NumPoints; pt++ {
		if eligible&pt.bit() == 0 {
			continue
		}
		scratch := *p
		*scratch.bits(opp) &^= pt.bit()
		mob := scratch.Mobility(opp)
		if best == NoPoint || mob < bestMobility {
			best = pt
			bestMobility = mob
		}
	}
	return best
}
