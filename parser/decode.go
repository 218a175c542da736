package parser

import (
	"strconv"
	"strings"

	"github.com/mipli/sgf-parser/sgf"
)

// valueGrammar identifies the value shape a recognized property expects.
type valueGrammar int

const (
	moveGrammar valueGrammar = iota
	pointGrammar
	pointListGrammar
	intGrammar
	realGrammar
	textGrammar
	labelGrammar
	applicationGrammar
	sizeGrammar
	resultGrammar
	rulesetGrammar
	charsetGrammar
	gameGrammar
	displayGrammar
)

// propertyDef describes how one recognized identifier decodes: the token
// kind it produces, the value grammar, whether it accepts a value list,
// and the colour it implies.
type propertyDef struct {
	kind    sgf.TokenKind
	grammar valueGrammar
	list    bool
	colored bool
	color   sgf.Color
}

// propertyTable is the static identifier→grammar dispatch table.
// Identifiers are matched on their uppercase letters only, so `CopyRight`
// is equivalent to `CR`.
var propertyTable = map[string]propertyDef{
	"B":  {kind: sgf.KindMove, grammar: moveGrammar, colored: true, color: sgf.Black},
	"W":  {kind: sgf.KindMove, grammar: moveGrammar, colored: true, color: sgf.White},
	"AB": {kind: sgf.KindAdd, grammar: pointListGrammar, list: true, colored: true, color: sgf.Black},
	"AW": {kind: sgf.KindAdd, grammar: pointListGrammar, list: true, colored: true, color: sgf.White},
	"BL": {kind: sgf.KindTime, grammar: intGrammar, colored: true, color: sgf.Black},
	"WL": {kind: sgf.KindTime, grammar: intGrammar, colored: true, color: sgf.White},
	"PB": {kind: sgf.KindPlayerName, grammar: textGrammar, colored: true, color: sgf.Black},
	"PW": {kind: sgf.KindPlayerName, grammar: textGrammar, colored: true, color: sgf.White},
	"BR": {kind: sgf.KindPlayerRank, grammar: textGrammar, colored: true, color: sgf.Black},
	"WR": {kind: sgf.KindPlayerRank, grammar: textGrammar, colored: true, color: sgf.White},
	"OB": {kind: sgf.KindMovesRemaining, grammar: intGrammar, colored: true, color: sgf.Black},
	"OW": {kind: sgf.KindMovesRemaining, grammar: intGrammar, colored: true, color: sgf.White},
	"HA": {kind: sgf.KindHandicap, grammar: intGrammar},
	"TM": {kind: sgf.KindTimeLimit, grammar: intGrammar},
	"GM": {kind: sgf.KindGame, grammar: gameGrammar},
	"KM": {kind: sgf.KindKomi, grammar: realGrammar},
	"RE": {kind: sgf.KindResult, grammar: resultGrammar},
	"RU": {kind: sgf.KindRule, grammar: rulesetGrammar},
	"SZ": {kind: sgf.KindSize, grammar: sizeGrammar},
	"ST": {kind: sgf.KindVariationDisplay, grammar: displayGrammar},
	"CA": {kind: sgf.KindCharset, grammar: charsetGrammar},
	"AP": {kind: sgf.KindApplication, grammar: applicationGrammar},
	"EV": {kind: sgf.KindEvent, grammar: textGrammar},
	"GN": {kind: sgf.KindGameName, grammar: textGrammar},
	"CR": {kind: sgf.KindCopyright, grammar: textGrammar},
	"DT": {kind: sgf.KindDate, grammar: textGrammar},
	"PC": {kind: sgf.KindPlace, grammar: textGrammar},
	"OT": {kind: sgf.KindOvertime, grammar: textGrammar},
	"C":  {kind: sgf.KindComment, grammar: textGrammar},
	"SQ": {kind: sgf.KindSquare, grammar: pointGrammar},
	"TR": {kind: sgf.KindTriangle, grammar: pointGrammar},
	"LB": {kind: sgf.KindLabel, grammar: labelGrammar},
}

// passValue is the traditional pass sentinel for boards up to 19x19.
const passValue = "tt"

// decodeProperty maps one identifier and its raw values to exactly one
// token. An identifier outside the table yields an Unknown token; a value
// or arity violation yields an Invalid token. It never fails fatally.
func decodeProperty(ident string, values []string) sgf.Token {
	def, ok := propertyTable[upperOnly(ident)]
	if !ok {
		return sgf.Token{
			Kind:  sgf.KindUnknown,
			Ident: ident,
			Raw:   values,
		}
	}

	if len(values) != 1 && !def.list {
		return invalidToken(ident, values, "expected a single value")
	}

	token := sgf.Token{Kind: def.kind, Ident: ident}
	if def.colored {
		token.Color = def.color
	}

	if reason := decodeValues(&token, def.grammar, values); reason != "" {
		return invalidToken(ident, values, reason)
	}
	return token
}

// decodeValues fills the token's payload from the raw values according to
// the grammar. It returns a non-empty reason on a grammar violation.
func decodeValues(token *sgf.Token, grammar valueGrammar, values []string) string {
	value := values[0]

	switch grammar {
	case moveGrammar:
		if value == "" || value == passValue {
			token.Pass = true
			return ""
		}
		point, ok := parsePoint(value)
		if !ok {
			return "expected two coordinate letters or an empty value"
		}
		token.Point = point

	case pointGrammar:
		point, ok := parsePoint(value)
		if !ok {
			return "expected two coordinate letters"
		}
		token.Point = point

	case pointListGrammar:
		for _, v := range values {
			point, ok := parsePoint(v)
			if !ok {
				return "expected two coordinate letters"
			}
			token.Points = append(token.Points, point)
		}

	case intGrammar:
		n, err := strconv.Atoi(value)
		if err != nil {
			return "expected an integer"
		}
		token.Number = n

	case realGrammar:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return "expected a number"
		}
		token.Real = f

	case textGrammar:
		token.Text = value

	case labelGrammar:
		point, text, ok := splitLabel(value)
		if !ok {
			return "expected a coordinate, ':' and a label"
		}
		token.Point = point
		token.Text = text

	case applicationGrammar:
		name, version, ok := strings.Cut(value, ":")
		if !ok {
			return "expected a name, ':' and a version"
		}
		token.Name = name
		token.Version = version

	case sizeGrammar:
		width, height, ok := parseSize(value)
		if !ok {
			return "expected a board size or a width:height pair"
		}
		token.Width = width
		token.Height = height

	case resultGrammar:
		outcome, ok := parseOutcome(value)
		if !ok {
			return "expected a game result"
		}
		token.Outcome = outcome

	case rulesetGrammar:
		token.Rules = sgf.RuleSet(value)

	case charsetGrammar:
		token.Text = value

	case gameGrammar:
		n, err := strconv.Atoi(value)
		if err != nil {
			return "expected a game number"
		}
		token.Game = sgf.GameType(n)

	case displayGrammar:
		display, ok := parseVariationDisplay(value)
		if !ok {
			return "expected a number between 0 and 3"
		}
		token.Display = display
	}

	return ""
}

// invalidToken builds an Invalid token preserving the offending input.
func invalidToken(ident string, values []string, reason string) sgf.Token {
	return sgf.Token{
		Kind:   sgf.KindInvalid,
		Ident:  ident,
		Raw:    values,
		Reason: reason,
	}
}

// upperOnly strips everything but uppercase letters from an identifier.
func upperOnly(ident string) string {
	var sb strings.Builder
	for i := 0; i < len(ident); i++ {
		if ident[i] >= 'A' && ident[i] <= 'Z' {
			sb.WriteByte(ident[i])
		}
	}
	return sb.String()
}

// parsePoint converts a two-letter coordinate to a zero-based point.
// Uppercase letters are accepted and treated as lowercase.
func parsePoint(value string) (sgf.Point, bool) {
	if len(value) != 2 {
		return sgf.Point{}, false
	}
	x, okX := coordIndex(value[0])
	y, okY := coordIndex(value[1])
	if !okX || !okY {
		return sgf.Point{}, false
	}
	return sgf.Point{X: x, Y: y}, true
}

// coordIndex maps a coordinate letter to its zero-based index.
func coordIndex(c byte) (int, bool) {
	if c >= 'A' && c <= 'Z' {
		c += 32
	}
	if c < 'a' || c > 'z' {
		return 0, false
	}
	return int(c - 'a'), true
}

// splitLabel splits an LB value into its coordinate and label text.
func splitLabel(value string) (sgf.Point, string, bool) {
	if len(value) < 4 || value[2] != ':' {
		return sgf.Point{}, "", false
	}
	point, ok := parsePoint(value[:2])
	if !ok {
		return sgf.Point{}, "", false
	}
	return point, value[3:], true
}

// parseSize parses an SZ value: a single size or a width:height pair.
func parseSize(value string) (int, int, bool) {
	if w, h, ok := strings.Cut(value, ":"); ok {
		width, errW := strconv.Atoi(w)
		height, errH := strconv.Atoi(h)
		if errW != nil || errH != nil {
			return 0, 0, false
		}
		return width, height, true
	}
	size, err := strconv.Atoi(value)
	if err != nil {
		return 0, 0, false
	}
	return size, size, true
}

// parseOutcome parses an RE value. The mandatory forms are "Draw" or "D"
// for a draw and "B+..."/"W+..." for a win by points, resignation, time
// or forfeit. "Void" and the empty value carry no usable result.
func parseOutcome(value string) (sgf.Outcome, bool) {
	if value == "" || value == "Void" {
		return sgf.Outcome{}, false
	}
	if value == "Draw" || value == "D" {
		return sgf.Outcome{Kind: sgf.Draw}, true
	}

	winner, rest, ok := strings.Cut(value, "+")
	if !ok {
		return sgf.Outcome{}, false
	}

	var color sgf.Color
	switch winner {
	case "B":
		color = sgf.Black
	case "W":
		color = sgf.White
	default:
		return sgf.Outcome{}, false
	}

	switch rest {
	case "R", "Resign":
		return sgf.Outcome{Kind: sgf.WinByResign, Victor: color}, true
	case "T", "Time":
		return sgf.Outcome{Kind: sgf.WinByTime, Victor: color}, true
	case "F", "Forfeit":
		return sgf.Outcome{Kind: sgf.WinByForfeit, Victor: color}, true
	}

	margin, err := strconv.ParseFloat(rest, 64)
	if err != nil {
		return sgf.Outcome{}, false
	}
	return sgf.Outcome{Kind: sgf.WinByPoints, Victor: color, Margin: margin}, true
}

// parseVariationDisplay parses an ST value (0-3).
func parseVariationDisplay(value string) (sgf.VariationDisplay, bool) {
	switch value {
	case "0":
		return sgf.VariationDisplay{Nodes: sgf.ShowChildren, OnBoard: true}, true
	case "1":
		return sgf.VariationDisplay{Nodes: sgf.ShowSiblings, OnBoard: true}, true
	case "2":
		return sgf.VariationDisplay{Nodes: sgf.ShowChildren, OnBoard: false}, true
	case "3":
		return sgf.VariationDisplay{Nodes: sgf.ShowSiblings, OnBoard: false}, true
	}
	return sgf.VariationDisplay{}, false
}
