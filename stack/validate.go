package stack

import "math"

// Verdict is the outcome of placement validation.
type Verdict struct {
	Valid  bool
	Reason Reason
}

// Validator decides whether a settled piece's resting position is
// structurally legal for its tier. It works purely on position math;
// immediate ground contact by non-base pieces is penalized earlier by the
// collision-driven ground-violation path and never reaches the validator.
type Validator struct {
	// BaseTier is the only tier allowed direct ground contact once the
	// first piece of the run has been placed.
	BaseTier Tier
	// GroundY is the height of the ground surface.
	GroundY float64
	// SupportTol is the vertical slack allowed between a piece's bottom
	// face and its supporter's top face for them to count as resting.
	SupportTol float64
}

// Validate judges a settled piece against the other settled pieces.
//
// Rules, in order: a base-tier piece is legal when resting on the ground;
// any higher tier is legal only when supported, within its horizontal
// footprint, by a piece of the immediately lower tier.
func (v Validator) Validate(p *Piece, settled []*Piece) Verdict {
	if p.Tier == v.BaseTier {
		if v.restingOnGround(p) {
			return Verdict{Valid: true}
		}
		return Verdict{Valid: false, Reason: ReasonTierMismatch}
	}

	for _, s := range settled {
		if s.ID == p.ID {
			continue
		}
		if s.Tier != p.Tier-1 {
			continue
		}
		if v.supports(s, p) {
			return Verdict{Valid: true}
		}
	}
	return Verdict{Valid: false, Reason: ReasonTierMismatch}
}

func (v Validator) restingOnGround(p *Piece) bool {
	return math.Abs(p.min().Y-v.GroundY) <= v.SupportTol
}

// supports reports whether lower is carrying upper: their footprints
// overlap horizontally and upper's bottom face rests on lower's top face.
func (v Validator) supports(lower, upper *Piece) bool {
	if overlapX(lower, upper) <= 0 {
		return false
	}
	gap := upper.min().Y - lower.max().Y
	return gap >= -v.SupportTol && gap <= v.SupportTol
}

// clearTargets returns the pieces removed by a legal capstone placement:
// every settled piece vertically beneath the capstone whose footprint
// overlaps it horizontally. The capstone itself is not included.
func clearTargets(capstone *Piece, settled []*Piece) []*Piece {
	var out []*Piece
	for _, s := range settled {
		if s.ID == capstone.ID {
			continue
		}
		if s.Pos.Y >= capstone.Pos.Y {
			continue
		}
		if overlapX(capstone, s) <= 0 {
			continue
		}
		out = append(out, s)
	}
	return out
}
