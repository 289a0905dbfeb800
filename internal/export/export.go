package export

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/brvmsim/internal/engine"
	"github.com/guttosm/brvmsim/internal/logger"
	"github.com/guttosm/brvmsim/internal/service"
)

const (
	transactionsFile = "transactions.csv"
	positionsFile    = "positions.csv"
	summaryFile      = "summary.csv"
)

// Exporter dumps the account to CSV files for offline analysis.
type Exporter struct {
	trading service.TradingService
	reports service.ReportService
	dir     string
	workers int
}

// NewExporter returns an Exporter writing into dir; the directory is
// created on Run if it does not exist. workers bounds how many files are
// written concurrently; values below 1 mean one at a time.
func NewExporter(trading service.TradingService, reports service.ReportService, dir string, workers int) *Exporter {
	if workers < 1 {
		workers = 1
	}
	return &Exporter{trading: trading, reports: reports, dir: dir, workers: workers}
}

// Run snapshots the account once and writes the transaction log, the
// position list and the performance summary as three CSV files, one
// goroutine per file. The first failing file cancels the rest and its
// error is returned.
func (e *Exporter) Run(ctx context.Context) error {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return fmt.Errorf("create export dir %s: %w", e.dir, err)
	}

	// One consistent view for all three files.
	snap := e.trading.Snapshot()
	txns := e.trading.History(engine.HistoryFilter{})
	report := e.reports.Performance()

	log := logger.With("export")
	log.Info().Str("dir", e.dir).Int("transactions", len(txns)).Int("positions", len(snap.Positions)).Msg("export start")

	jobs := []struct {
		name  string
		write func(io.Writer) error
	}{
		{transactionsFile, func(w io.Writer) error { return WriteTransactionsCSV(w, txns) }},
		{positionsFile, func(w io.Writer) error { return writePositions(w, snap) }},
		{summaryFile, func(w io.Writer) error { return writeSummary(w, snap, report) }},
	}

	g, gctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, e.workers)

	for _, job := range jobs {
		j := job
		sem <- struct{}{}

		g.Go(func() error {
			defer func() { <-sem }()
			if err := gctx.Err(); err != nil {
				return err
			}

			start := time.Now()
			path := filepath.Join(e.dir, j.name)
			if err := writeFile(path, j.write); err != nil {
				log.Error().Str("file", j.name).Err(err).Msg("export failed")
				return fmt.Errorf("export %s: %w", j.name, err)
			}
			log.Info().Str("file", j.name).Dur("elapsed", time.Since(start)).Msg("export done")
			return nil
		})
	}

	return g.Wait()
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
