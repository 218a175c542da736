package sgf

import "testing"

func TestColorOpponent(t *testing.T) {
	if got := Black.Opponent(); got != White {
		t.Errorf("Black.Opponent() = %v, want White", got)
	}
	if got := White.Opponent(); got != Black {
		t.Errorf("White.Opponent() = %v, want Black", got)
	}
}

func TestOutcomeWinner(t *testing.T) {
	tests := []struct {
		name       string
		outcome    Outcome
		wantColor  Color
		wantWinner bool
	}{
		{"win by points", Outcome{Kind: WinByPoints, Victor: White, Margin: 2.5}, White, true},
		{"win by resign", Outcome{Kind: WinByResign, Victor: Black}, Black, true},
		{"win by time", Outcome{Kind: WinByTime, Victor: White}, White, true},
		{"win by forfeit", Outcome{Kind: WinByForfeit, Victor: Black}, Black, true},
		{"draw has no winner", Outcome{Kind: Draw}, Black, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			color, ok := tt.outcome.Winner()
			if ok != tt.wantWinner {
				t.Fatalf("Winner() ok = %v, want %v", ok, tt.wantWinner)
			}
			if ok && color != tt.wantColor {
				t.Errorf("Winner() = %v, want %v", color, tt.wantColor)
			}
		})
	}
}

func TestOutcomeString(t *testing.T) {
	tests := []struct {
		outcome Outcome
		want    string
	}{
		{Outcome{Kind: WinByPoints, Victor: Black, Margin: 12.5}, "B+12.5"},
		{Outcome{Kind: WinByPoints, Victor: White, Margin: 64}, "W+64"},
		{Outcome{Kind: WinByResign, Victor: Black}, "B+R"},
		{Outcome{Kind: WinByTime, Victor: White}, "W+T"},
		{Outcome{Kind: WinByForfeit, Victor: Black}, "B+F"},
		{Outcome{Kind: Draw}, "Draw"},
	}

	for _, tt := range tests {
		if got := tt.outcome.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestRuleSetKnown(t *testing.T) {
	for _, rules := range []RuleSet{Japanese, AGA, NZ, GOE, Chinese} {
		if !rules.Known() {
			t.Errorf("%q should be a known rule set", rules)
		}
	}
	if RuleSet("house rules").Known() {
		t.Error("arbitrary rule set names are not known")
	}
}

func TestTokenKindString(t *testing.T) {
	tests := []struct {
		kind TokenKind
		want string
	}{
		{KindMove, "Move"},
		{KindUnknown, "Unknown"},
		{KindInvalid, "Invalid"},
		{KindVariationDisplay, "VariationDisplay"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPointString(t *testing.T) {
	if got := (Point{X: 3, Y: 16}).String(); got != "(3, 16)" {
		t.Errorf("String() = %q, want %q", got, "(3, 16)")
	}
}
