// Package graph draws the turn controller's phase machine as a Mermaid flowchart.
package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/filler/pkg/domain"
)

// Edge is one transition of the phase machine.
type Edge struct {
	From  domain.Phase
	To    domain.Phase
	Label string
}

// PhaseEdges lists every transition the turn controller can take.
var PhaseEdges = []Edge{
	{From: domain.PhaseAwaitingChoice, To: domain.PhaseExpanding, Label: "color chosen"},
	{From: domain.PhaseExpanding, To: domain.PhaseAwaitingChoice, Label: "anchor color or rejected"},
	{From: domain.PhaseExpanding, To: domain.PhaseScoringCheck, Label: "committed"},
	{From: domain.PhaseScoringCheck, To: domain.PhaseAwaitingChoice, Label: "cells left, swap player"},
	{From: domain.PhaseScoringCheck, To: domain.PhaseGameOver, Label: "board full"},
}

// Overlay marks phases on the diagram.
type Overlay struct {
	Visited []domain.Phase
	Current domain.Phase
}

// GenerateMermaid produces a Mermaid flowchart of the phase machine.
// Shapes:
// - AwaitingChoice: [/Parallelogram/] (waits on input)
// - GameOver: ((Circle))
// - Default: [Rectangle]
func GenerateMermaid(overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, p := range []domain.Phase{
		domain.PhaseAwaitingChoice,
		domain.PhaseExpanding,
		domain.PhaseScoringCheck,
		domain.PhaseGameOver,
	} {
		opener, closer := "[", "]"
		switch p {
		case domain.PhaseAwaitingChoice:
			opener, closer = "[/", "/]"
		case domain.PhaseGameOver:
			opener, closer = "((", "))"
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", sanitizeMermaidID(string(p)), opener, p, closer)
	}

	for _, e := range PhaseEdges {
		label := strings.ReplaceAll(e.Label, "\"", "'")
		fmt.Fprintf(&sb, "    %s -- \"%s\" --> %s\n", sanitizeMermaidID(string(e.From)), label, sanitizeMermaidID(string(e.To)))
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// black text stays readable on both light and dark themes
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		seen := make(map[string]bool)
		for _, p := range overlay.Visited {
			id := sanitizeMermaidID(string(p))
			if id != "" && !seen[id] {
				seen[id] = true
				fmt.Fprintf(&sb, "    class %s visited;\n", id)
			}
		}
		if overlay.Current != "" {
			fmt.Fprintf(&sb, "    class %s current;\n", sanitizeMermaidID(string(overlay.Current)))
		}
	}

	return sb.String()
}

func sanitizeMermaidID(id string) string {
	return strings.NewReplacer(".", "_", "-", "_", "/", "_", " ", "_").Replace(id)
}
