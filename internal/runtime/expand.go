package runtime

import (
	"fmt"

	"github.com/aretw0/filler/pkg/domain"
	"github.com/aretw0/filler/pkg/region"
)

// Rules holds the optional rule switches applied by Expand.
type Rules struct {
	// ForbidOpponentColor rejects a choice equal to the opponent's anchor color.
	ForbidOpponentColor bool
}

// Expand commits chosen for p: the territory anchored at p's corner is
// recolored to chosen and, together with the connected cells already of
// chosen, claimed by p.
//
// Both the territory and the frontier are computed from the board as it is
// before any write, so absorption stops after one ring. Every check runs
// before the first write: on error the state is untouched.
func Expand(st *domain.State, p domain.Player, chosen domain.Color, rules Rules) (domain.ExpansionResult, error) {
	res := domain.ExpansionResult{Player: p, Color: chosen}

	if !chosen.Valid() {
		return res, fmt.Errorf("%w: %d", domain.ErrInvalidColor, chosen)
	}
	if st.Over() {
		return res, domain.ErrGameOver
	}
	if p != st.Active {
		return res, fmt.Errorf("%w: %v moved during %v's turn", domain.ErrNotActivePlayer, p, st.Active)
	}

	b := st.Board
	target, err := b.ColorAt(b.Anchor(p))
	if err != nil {
		return res, err
	}
	res.Previous = target

	if rules.ForbidOpponentColor {
		theirs, err := b.ColorAt(b.Anchor(p.Opponent()))
		if err == nil && theirs == chosen {
			return res, fmt.Errorf("%w: %v", domain.ErrOpponentColor, chosen)
		}
	}

	if target == chosen {
		res.NoOp = true
		return res, nil
	}

	captured, _ := region.Capturable(b, p, chosen)
	res.Claimed = captured.Sorted()

	for _, pos := range res.Claimed {
		if err := b.Paint(pos, chosen); err != nil {
			return res, err
		}
		changed, err := b.Claim(pos, p)
		if err != nil {
			return res, err
		}
		if changed {
			res.CellsAdded++
		}
	}
	return res, nil
}
