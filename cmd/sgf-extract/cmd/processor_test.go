package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/mipli/sgf-parser/internal/config"
	"github.com/mipli/sgf-parser/internal/testutil"
)

// writeTestFiles drops the given SGF contents into a temp dir and returns
// their paths in order.
func writeTestFiles(t *testing.T, contents ...string) []string {
	t.Helper()
	dir := t.TempDir()
	paths := make([]string, len(contents))
	for i, c := range contents {
		paths[i] = filepath.Join(dir, "game"+string(rune('a'+i))+".sgf")
		if err := os.WriteFile(paths[i], []byte(c), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return paths
}

func newTestProcessor(cfg *config.Config, out *strings.Builder) *Processor {
	return &Processor{
		cfg:    cfg,
		logger: zap.NewNop(),
		out:    out,
	}
}

func TestProcessorRun(t *testing.T) {
	paths := writeTestFiles(t,
		"(;GM[1];B[pd];W[dd])",
		"(;GM[1]ZZ[foo])",
	)

	var out strings.Builder
	proc := newTestProcessor(config.NewConfig(), &out)
	testutil.AssertNoError(t, proc.Run(paths))

	got := out.String()
	testutil.AssertContains(t, got, "3 nodes")
	testutil.AssertContains(t, got, "unknown property ZZ[foo]")

	// Reports come out in input order regardless of worker scheduling.
	first := strings.Index(got, paths[0])
	second := strings.Index(got, paths[1])
	testutil.AssertTrue(t, first >= 0 && second > first, "output order: %q", got)
}

func TestProcessorReportsFailures(t *testing.T) {
	paths := writeTestFiles(t,
		"(;B[aa]",
		"(;B[aa])",
	)

	var out strings.Builder
	proc := newTestProcessor(config.NewConfig(), &out)
	err := proc.Run(paths)

	testutil.AssertError(t, err)
	testutil.AssertContains(t, err.Error(), "1 of 2 files failed")
	// The good file is still reported.
	testutil.AssertContains(t, out.String(), paths[1])
}

func TestProcessorMissingFile(t *testing.T) {
	var out strings.Builder
	proc := newTestProcessor(config.NewConfig(), &out)
	testutil.AssertError(t, proc.Run([]string{filepath.Join(t.TempDir(), "absent.sgf")}))
}

func TestProcessorJSONOutput(t *testing.T) {
	paths := writeTestFiles(t, "(;GM[1];B[pd])")

	cfg := config.NewConfig()
	cfg.JSON = true

	var out strings.Builder
	proc := newTestProcessor(cfg, &out)
	testutil.AssertNoError(t, proc.Run(paths))

	testutil.AssertContains(t, out.String(), `"nodes": 2`)
}
