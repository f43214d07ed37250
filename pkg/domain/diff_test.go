package domain

import (
	"encoding/json"
	"strings"
	"testing"
)

func diffFixture() Snapshot {
	return Snapshot{
		GameID: "g",
		Size:   2,
		Colors: [][]Color{{Red, Green}, {Blue, Red}},
		Owners: [][]Player{{Player1, NoPlayer}, {NoPlayer, Player2}},
		Active: Player1,
		Phase:  PhaseAwaitingChoice,
		Outcome: Outcome{
			Player1Score: 1,
			Player2Score: 1,
		},
	}
}

func TestDiff(t *testing.T) {
	old := diffFixture()

	t.Run("Initial Load (Old is Nil)", func(t *testing.T) {
		d := Diff(nil, old)
		if d == nil {
			t.Fatal("Expected diff for initial load")
		}
		if len(d.Cells) != 4 {
			t.Errorf("Expected all 4 cells, got %d", len(d.Cells))
		}
		if d.Active == nil || d.Phase == nil || d.Turn == nil || d.Outcome == nil {
			t.Errorf("Expected every field on initial load, got %+v", d)
		}
	})

	t.Run("No Changes", func(t *testing.T) {
		if d := Diff(&old, diffFixture()); d != nil {
			t.Errorf("Expected nil diff, got %+v", d)
		}
	})

	t.Run("Move", func(t *testing.T) {
		next := diffFixture()
		next.Colors = [][]Color{{Green, Green}, {Blue, Red}}
		next.Owners = [][]Player{{Player1, Player1}, {NoPlayer, Player2}}
		next.Active = Player2
		next.Turn = 1
		next.Player1Score = 2

		d := Diff(&old, next)
		if d == nil {
			t.Fatal("Expected diff")
		}
		want := []CellChange{
			{Pos: Pos{0, 0}, Color: Green, Owner: Player1},
			{Pos: Pos{0, 1}, Color: Green, Owner: Player1},
		}
		if len(d.Cells) != len(want) {
			t.Fatalf("Expected %d cells, got %+v", len(want), d.Cells)
		}
		for i := range want {
			if d.Cells[i] != want[i] {
				t.Errorf("Cell %d: want %+v, got %+v", i, want[i], d.Cells[i])
			}
		}
		if d.Phase != nil {
			t.Errorf("Phase did not change, got %v", *d.Phase)
		}
		if d.Active == nil || *d.Active != Player2 {
			t.Errorf("Expected active player2, got %v", d.Active)
		}
		if d.Outcome == nil || d.Outcome.Player1Score != 2 {
			t.Errorf("Expected new score line, got %+v", d.Outcome)
		}
	})
}

func TestDiff_JSONOmitsUnchanged(t *testing.T) {
	old := diffFixture()
	next := diffFixture()
	next.Turn = 3

	b, err := json.Marshal(Diff(&old, next))
	if err != nil {
		t.Fatal(err)
	}
	s := string(b)
	if !strings.Contains(s, `"turn":3`) {
		t.Errorf("Expected turn in %s", s)
	}
	for _, key := range []string{`"cells"`, `"phase"`, `"active"`, `"outcome"`} {
		if strings.Contains(s, key) {
			t.Errorf("Unexpected %s in %s", key, s)
		}
	}
}
