package market

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/guttosm/brvmsim/internal/domain/models"
	"github.com/guttosm/brvmsim/internal/logger"
)

// expectedHeader enforces strict column ordering for instrument catalog files.
// If the header doesn't match EXACTLY (order + count), loading must fail:
// a registry built from misread reference data would misprice every order.
var expectedHeader = []string{
	"symbol",
	"reference_price",
	"daily_change_percent",
	"average_daily_volume",
	"sector",
}

// LoadRegistry reads an instrument catalog CSV and builds a Registry.
//
// It fails on:
//   - header not matching expected order/length
//   - any malformed row (bad number, missing column)
//   - an empty catalog
//
// Duplicate symbols are tolerated: the last row wins, with a warning.
func LoadRegistry(path string) (Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // allow variable but we'll check explicitly

	// Validate headers strictly.
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) != len(expectedHeader) {
		return nil, fmt.Errorf("invalid header length: expected %d, got %d", len(expectedHeader), len(header))
	}
	for i, h := range header {
		if strings.TrimSpace(h) != expectedHeader[i] {
			return nil, fmt.Errorf("invalid header at col %d: expected %q, got %q", i+1, expectedHeader[i], h)
		}
	}

	log := logger.With("market.loader")
	seen := make(map[string]struct{})
	var instruments []models.Instrument

	lineNumber := 1 // header already read
	for {
		rec, err := r.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("read line after %d: %w", lineNumber, err)
		}
		lineNumber++

		if len(rec) != len(expectedHeader) {
			return nil, fmt.Errorf("invalid column count on line %d: expected %d got %d", lineNumber, len(expectedHeader), len(rec))
		}

		in, err := recordToInstrument(rec)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNumber, err)
		}

		sym := strings.ToUpper(in.Symbol)
		if _, dup := seen[sym]; dup {
			log.Warn().Str("symbol", sym).Int("line", lineNumber).Msg("duplicate symbol, keeping last occurrence")
		}
		seen[sym] = struct{}{}
		instruments = append(instruments, in)
	}

	reg, err := NewRegistry(instruments)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	log.Info().Int("instruments", len(seen)).Str("file", path).Msg("instrument catalog loaded")
	return reg, nil
}

// recordToInstrument converts a single CSV record (already validated
// length==5) into a models.Instrument. It is STRICT about types/format.
//
// Column order:
//
//	0 symbol               → Symbol (string, non-empty)
//	1 reference_price      → ReferencePrice (decimal)
//	2 daily_change_percent → DailyChangePercent (float)
//	3 average_daily_volume → AverageDailyVolume (int64)
//	4 sector               → Sector (string)
func recordToInstrument(rec []string) (models.Instrument, error) {
	var in models.Instrument

	in.Symbol = strings.TrimSpace(rec[0])
	if in.Symbol == "" {
		return in, fmt.Errorf("empty symbol")
	}

	price, err := decimal.NewFromString(strings.TrimSpace(rec[1]))
	if err != nil {
		return in, fmt.Errorf("invalid reference_price: %v", err)
	}
	in.ReferencePrice = price

	change, err := strconv.ParseFloat(strings.TrimSpace(rec[2]), 64)
	if err != nil {
		return in, fmt.Errorf("invalid daily_change_percent: %v", err)
	}
	in.DailyChangePercent = change

	volume, err := strconv.ParseInt(strings.TrimSpace(rec[3]), 10, 64)
	if err != nil {
		return in, fmt.Errorf("invalid average_daily_volume: %v", err)
	}
	in.AverageDailyVolume = volume

	in.Sector = strings.TrimSpace(rec[4])

	return in, nil
}
