package tui

import _ "embed"

// RulesMarkdown is the player-facing rules text.
//
//go:embed rules.md
var RulesMarkdown string
