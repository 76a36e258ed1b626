// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the herdwatch TUI.

This package defines the complete color palette and the Theme type used
throughout the application. All colors use Lip Gloss AdaptiveColor for
automatic light/dark terminal detection.

# Color System (colors.go)

## Primary Accent Colors

  - Emerald - Brand color, healthy status, success states
  - Cyan - Shortcuts, focused form fields, user highlights
  - Purple - Advisor replies and selections
  - Amber - Warning and at-risk assessments
  - Rose - Critical assessments and errors

## Health Status Colors

Each assessment class (healthy, warning, critical, unknown) has a matched
foreground/background pair so result panels stay readable on both light
and dark terminals.

# Theme (theme.go)

NewTheme detects the terminal color profile and background via termenv,
then builds every Lip Gloss style the views need. Theme.ResultStyle maps
a status class name to its assessment panel style.
*/
package styles
