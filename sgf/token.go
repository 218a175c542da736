package sgf

// TokenKind identifies the SGF property a Token was decoded from.
type TokenKind int

const (
	// KindUnknown marks a well-formed property whose identifier is not in
	// the recognized set. The raw identifier and values are preserved.
	KindUnknown TokenKind = iota

	// KindInvalid marks a recognized property whose value failed
	// validation. The raw values and a diagnostic reason are preserved.
	KindInvalid

	KindMove
	KindAdd
	KindTime
	KindPlayerName
	KindPlayerRank
	KindGame
	KindRule
	KindResult
	KindKomi
	KindEvent
	KindCopyright
	KindGameName
	KindVariationDisplay
	KindPlace
	KindDate
	KindSize
	KindOvertime
	KindTimeLimit
	KindMovesRemaining
	KindHandicap
	KindComment
	KindCharset
	KindApplication
	KindSquare
	KindTriangle
	KindLabel
)

// tokenKindNames maps token kinds to their string representations.
var tokenKindNames = [...]string{
	KindUnknown:          "Unknown",
	KindInvalid:          "Invalid",
	KindMove:             "Move",
	KindAdd:              "Add",
	KindTime:             "Time",
	KindPlayerName:       "PlayerName",
	KindPlayerRank:       "PlayerRank",
	KindGame:             "Game",
	KindRule:             "Rule",
	KindResult:           "Result",
	KindKomi:             "Komi",
	KindEvent:            "Event",
	KindCopyright:        "Copyright",
	KindGameName:         "GameName",
	KindVariationDisplay: "VariationDisplay",
	KindPlace:            "Place",
	KindDate:             "Date",
	KindSize:             "Size",
	KindOvertime:         "Overtime",
	KindTimeLimit:        "TimeLimit",
	KindMovesRemaining:   "MovesRemaining",
	KindHandicap:         "Handicap",
	KindComment:          "Comment",
	KindCharset:          "Charset",
	KindApplication:      "Application",
	KindSquare:           "Square",
	KindTriangle:         "Triangle",
	KindLabel:            "Label",
}

// String returns the string representation of a token kind.
func (k TokenKind) String() string {
	if int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return "Unknown"
}

// Token is a single decoded SGF property. Kind selects which of the payload
// fields are meaningful; the rest stay at their zero values.
type Token struct {
	Kind TokenKind

	// The identifier as written in the source, e.g. "B", "CopyRight".
	Ident string

	// The colour a move, setup, time, player or moves-remaining
	// property refers to.
	Color Color

	// Board coordinate for moves, markup and setup stones.
	Point Point

	// Whether a move is a pass. A pass carries no coordinate.
	Pass bool

	// Coordinates of a list-valued setup property (AB, AW).
	Points []Point

	// Integer payload (HA, TM, BL, WL, OB, OW).
	Number int

	// Real-valued payload (KM).
	Real float64

	// Text payload (C, EV, GN, CR, DT, PC, OT, PB, PW, BR, WR; the
	// charset name for CA; the label text for LB).
	Text string

	// Board dimensions from SZ.
	Width  int
	Height int

	// Application name and version from AP.
	Name    string
	Version string

	// Game type from GM.
	Game GameType

	// Rule set from RU.
	Rules RuleSet

	// Game result from RE.
	Outcome Outcome

	// Variation display mode from ST.
	Display VariationDisplay

	// Raw values as written, preserved for Unknown and Invalid tokens.
	Raw []string

	// Human-readable reason a recognized property was rejected. Only set
	// on Invalid tokens.
	Reason string
}

// IsUnknown reports whether the token is an unrecognized property.
func (t *Token) IsUnknown() bool {
	return t.Kind == KindUnknown
}

// IsInvalid reports whether the token is a recognized property that failed
// value validation.
func (t *Token) IsInvalid() bool {
	return t.Kind == KindInvalid
}
