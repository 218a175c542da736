package cmd

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/mipli/sgf-parser/internal/testutil"
	"github.com/mipli/sgf-parser/parser"
)

func TestNewReport(t *testing.T) {
	tree, err := parser.Parse("(;GM[1]ZZ[foo];B[abc](;W[bb])(;W[cc]))")
	testutil.AssertNoError(t, err)

	report := NewReport("games.sgf", tree)

	if report.File != "games.sgf" {
		t.Errorf("File = %q, want %q", report.File, "games.sgf")
	}
	if report.Roots != 1 {
		t.Errorf("Roots = %d, want 1", report.Roots)
	}
	if report.Nodes != 4 {
		t.Errorf("Nodes = %d, want 4", report.Nodes)
	}
	if report.Branches != 1 {
		t.Errorf("Branches = %d, want 1", report.Branches)
	}

	testutil.AssertEqual(t, report.Unknown, []Diagnostic{
		{Node: 0, Ident: "ZZ", Values: []string{"foo"}},
	})

	if len(report.Invalid) != 1 {
		t.Fatalf("len(Invalid) = %d, want 1", len(report.Invalid))
	}
	if report.Invalid[0].Node != 1 || report.Invalid[0].Ident != "B" {
		t.Errorf("Invalid[0] = %+v", report.Invalid[0])
	}
	testutil.AssertTrue(t, report.Invalid[0].Reason != "")
}

func TestReportWriteText(t *testing.T) {
	tree, err := parser.Parse("(;ZZ[foo];B[abc])")
	testutil.AssertNoError(t, err)
	report := NewReport("in.sgf", tree)

	var sb strings.Builder
	err = report.WriteText(&sb, TextOptions{Unknown: true, Invalid: true})
	testutil.AssertNoError(t, err)

	out := sb.String()
	testutil.AssertContains(t, out, "in.sgf: 2 nodes, 0 branches")
	testutil.AssertContains(t, out, "unknown property ZZ[foo]")
	testutil.AssertContains(t, out, "invalid property B[abc]")
}

func TestReportWriteTextQuiet(t *testing.T) {
	tree, err := parser.Parse("(;ZZ[foo];B[abc])")
	testutil.AssertNoError(t, err)
	report := NewReport("in.sgf", tree)

	var sb strings.Builder
	err = report.WriteText(&sb, TextOptions{})
	testutil.AssertNoError(t, err)

	out := sb.String()
	testutil.AssertContains(t, out, "in.sgf")
	if strings.Contains(out, "unknown property") || strings.Contains(out, "invalid property") {
		t.Errorf("quiet output includes diagnostics: %q", out)
	}
}

func TestReportWriteJSON(t *testing.T) {
	tree, err := parser.Parse("(;ZZ[foo])")
	testutil.AssertNoError(t, err)
	report := NewReport("in.sgf", tree)

	var sb strings.Builder
	testutil.AssertNoError(t, report.WriteJSON(&sb))

	var decoded Report
	testutil.AssertNoError(t, json.Unmarshal([]byte(sb.String()), &decoded))
	testutil.AssertEqual(t, &decoded, report)
}
