package domain

import (
	"fmt"
	"strings"
)

// ScoringPolicy selects how live scores are reported.
// The winner is always decided by owned cell count.
type ScoringPolicy string

const (
	// ScoreCells counts owned cells. Authoritative for the winner.
	ScoreCells ScoringPolicy = "cells"
	// ScoreRegion additionally reports the connected region size from each
	// anchor as live progress. Equal to ScoreCells once the game is over.
	ScoreRegion ScoringPolicy = "region"
)

// ParseScoringPolicy validates a policy name. Empty selects ScoreCells.
func ParseScoringPolicy(s string) (ScoringPolicy, error) {
	switch ScoringPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", ScoreCells:
		return ScoreCells, nil
	case ScoreRegion:
		return ScoreRegion, nil
	default:
		return "", fmt.Errorf("unknown scoring policy %q (want %q or %q)", s, ScoreCells, ScoreRegion)
	}
}
