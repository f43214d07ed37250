package domain

// CellChange is the new content of one cell.
type CellChange struct {
	Pos   Pos    `json:"pos"`
	Color Color  `json:"color"`
	Owner Player `json:"owner"`
}

// SnapshotDiff represents the changes between two snapshots.
// It is serialized next to full snapshots so clients can patch their board.
type SnapshotDiff struct {
	// GameID is always present to identify the target.
	GameID string `json:"game_id"`

	// Cells lists changed cells in row-major order.
	Cells []CellChange `json:"cells,omitempty"`

	Active  *Player  `json:"active,omitempty"`
	Phase   *Phase   `json:"phase,omitempty"`
	Turn    *int     `json:"turn,omitempty"`
	Outcome *Outcome `json:"outcome,omitempty"`
}

// Diff calculates the difference between oldSnap and newSnap.
// If oldSnap is nil, every cell is reported (initial load).
// It returns nil when nothing changed.
func Diff(oldSnap *Snapshot, newSnap Snapshot) *SnapshotDiff {
	diff := &SnapshotDiff{
		GameID: newSnap.GameID,
		Cells:  diffCells(oldSnap, newSnap),
	}

	if oldSnap == nil || oldSnap.Active != newSnap.Active {
		diff.Active = &newSnap.Active
	}
	if oldSnap == nil || oldSnap.Phase != newSnap.Phase {
		diff.Phase = &newSnap.Phase
	}
	if oldSnap == nil || oldSnap.Turn != newSnap.Turn {
		diff.Turn = &newSnap.Turn
	}
	if oldSnap == nil || oldSnap.Outcome != newSnap.Outcome {
		diff.Outcome = &newSnap.Outcome
	}

	if diff.IsEmpty() {
		return nil
	}
	return diff
}

func diffCells(old *Snapshot, new Snapshot) []CellChange {
	var out []CellChange
	for r := range new.Colors {
		for c := range new.Colors[r] {
			color, owner := new.Colors[r][c], new.Owners[r][c]
			if old != nil && old.Size == new.Size && old.Colors[r][c] == color && old.Owners[r][c] == owner {
				continue
			}
			out = append(out, CellChange{Pos: Pos{r, c}, Color: color, Owner: owner})
		}
	}
	return out
}

// IsEmpty checks if the diff contains any actionable changes.
func (d *SnapshotDiff) IsEmpty() bool {
	return len(d.Cells) == 0 &&
		d.Active == nil &&
		d.Phase == nil &&
		d.Turn == nil &&
		d.Outcome == nil
}
