package cmd

import (
	"fmt"
	"io"
	"os"
	"sync"

	"go.uber.org/zap"

	"github.com/mipli/sgf-parser/internal/config"
	"github.com/mipli/sgf-parser/parser"
)

// Processor parses a batch of SGF files and writes a report per file.
type Processor struct {
	cfg    *config.Config
	logger *zap.Logger
	out    io.Writer
}

// result pairs a file's report with any structural failure.
type result struct {
	report *Report
	err    error
}

// Run parses every path, fanning out to cfg.Workers goroutines, and
// renders reports in input order. It returns an error if any file failed
// to parse.
func (p *Processor) Run(paths []string) error {
	results := make([]result, len(paths))

	jobs := make(chan int)
	var wg sync.WaitGroup

	workers := p.cfg.Workers
	if workers > len(paths) {
		workers = len(paths)
	}

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = p.processFile(paths[idx])
			}
		}()
	}

	for idx := range paths {
		jobs <- idx
	}
	close(jobs)
	wg.Wait()

	var failed int
	for i, res := range results {
		if res.err != nil {
			failed++
			p.logger.Error("parse failed",
				zap.String("file", paths[i]),
				zap.Error(res.err))
			if p.cfg.FailFast {
				return res.err
			}
			continue
		}
		if err := p.render(res.report); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed to parse", failed, len(paths))
	}
	return nil
}

// processFile reads and parses one file.
func (p *Processor) processFile(path string) result {
	raw, err := os.ReadFile(path)
	if err != nil {
		return result{err: err}
	}

	tree, err := parser.Parse(string(raw))
	if err != nil {
		return result{err: fmt.Errorf("%s: %w", path, err)}
	}

	report := NewReport(path, tree)
	p.logger.Debug("parsed",
		zap.String("file", path),
		zap.Int("nodes", report.Nodes),
		zap.Int("branches", report.Branches),
		zap.Int("unknown", len(report.Unknown)),
		zap.Int("invalid", len(report.Invalid)))

	return result{report: report}
}

// render writes one report to the output.
func (p *Processor) render(r *Report) error {
	if p.cfg.JSON {
		return r.WriteJSON(p.out)
	}
	return r.WriteText(p.out, p.reportOptions())
}

func (p *Processor) reportOptions() TextOptions {
	return TextOptions{
		Unknown: p.cfg.ReportUnknown && !p.cfg.Quiet,
		Invalid: p.cfg.ReportInvalid && !p.cfg.Quiet,
	}
}
