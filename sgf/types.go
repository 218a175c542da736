// Package sgf provides the core types for parsed SGF game records.
package sgf

import (
	"fmt"
	"strconv"
)

// Color represents the colour of a stone or player.
type Color int

const (
	Black Color = iota
	White
)

// String returns the string representation of a colour.
func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opponent returns the opposite colour.
func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

// Point is a zero-based board coordinate. (0, 0) is the upper-left corner.
type Point struct {
	X int
	Y int
}

// String returns the coordinate as "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// OutcomeKind categorizes how a game was decided.
type OutcomeKind int

const (
	WinByPoints OutcomeKind = iota
	WinByResign
	WinByTime
	WinByForfeit
	Draw
)

// Outcome represents a game result as recorded in an RE property.
type Outcome struct {
	Kind OutcomeKind

	// The winning colour. Meaningless when Kind is Draw.
	Victor Color

	// Winning margin in points. Only set when Kind is WinByPoints.
	Margin float64
}

// Winner returns the winning colour, if the outcome has one.
func (o Outcome) Winner() (Color, bool) {
	if o.Kind == Draw {
		return Black, false
	}
	return o.Victor, true
}

// String returns the outcome in SGF result notation.
func (o Outcome) String() string {
	prefix := "B"
	if o.Victor == White {
		prefix = "W"
	}
	switch o.Kind {
	case WinByPoints:
		return prefix + "+" + strconv.FormatFloat(o.Margin, 'f', -1, 64)
	case WinByResign:
		return prefix + "+R"
	case WinByTime:
		return prefix + "+T"
	case WinByForfeit:
		return prefix + "+F"
	default:
		return "Draw"
	}
}

// RuleSet identifies the rules a game was played under. SGF mandates names
// only for a handful of well known rule sets; anything else is carried as-is.
type RuleSet string

const (
	Japanese RuleSet = "Japanese"
	AGA      RuleSet = "AGA"
	NZ       RuleSet = "NZ"
	GOE      RuleSet = "GOE"
	Chinese  RuleSet = "Chinese"
)

// Known reports whether the rule set is one of the names SGF defines.
func (r RuleSet) Known() bool {
	switch r {
	case Japanese, AGA, NZ, GOE, Chinese:
		return true
	}
	return false
}

// GameType identifies the game recorded in a GM property. Go is 1.
type GameType int

const GoGame GameType = 1

// DisplayNodes selects which nodes a viewer should show for an ST property.
type DisplayNodes int

const (
	ShowChildren DisplayNodes = iota
	ShowSiblings
)

// VariationDisplay carries the decoded value of an ST property.
type VariationDisplay struct {
	Nodes DisplayNodes

	// Whether variations should be marked on the board.
	OnBoard bool
}
