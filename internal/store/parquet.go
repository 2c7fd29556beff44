// Package store persists headless sweep results as parquet batches.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"
)

// RunRow is one sweep candidate's outcome: the rule parameters it ran with
// and how the battle ended.
type RunRow struct {
	Seed     int64  `parquet:"seed"`
	Width    int32  `parquet:"width"`
	Height   int32  `parquet:"height"`
	Boundary string `parquet:"boundary,dict"`
	Empires  int32  `parquet:"empires"`
	Steps    int32  `parquet:"steps"`

	MaxTroops       int32   `parquet:"max_troops"`
	DecayPeriodMin  int32   `parquet:"decay_period_min"`
	DecayPeriodMax  int32   `parquet:"decay_period_max"`
	DecayScaleMin   float64 `parquet:"decay_scale_min"`
	DecayScaleMax   float64 `parquet:"decay_scale_max"`
	ConquestMulMin  float64 `parquet:"conquest_mul_min"`
	ConquestMulMax  float64 `parquet:"conquest_mul_max"`
	FriendlySupport int32   `parquet:"friendly_support"`

	// DominationTick is the generation at which one empire held every
	// claimed cell, or -1 if the run ended contested.
	DominationTick int64   `parquet:"domination_tick"`
	WinnerID       int32   `parquet:"winner_id"`
	Survivors      int32   `parquet:"survivors"`
	LeadShare      float32 `parquet:"lead_share"`
	ClaimedCells   int32   `parquet:"claimed_cells"`
}

// WriteRunsParquetAtomic writes rows into a new parquet file under outDir.
// The file is staged in a tmp subdirectory and renamed into place so
// readers never observe a partial batch. Returns the final path.
func WriteRunsParquetAtomic(outDir string, rows []RunRow) (string, error) {
	if outDir == "" {
		return "", fmt.Errorf("outDir is required")
	}
	if len(rows) == 0 {
		return "", fmt.Errorf("no rows to write")
	}

	absOut, err := filepath.Abs(outDir)
	if err != nil {
		absOut = outDir
	}
	tmpDir := filepath.Join(absOut, "tmp")
	if err := os.MkdirAll(tmpDir, 0o755); err != nil {
		return "", fmt.Errorf("create tmp dir: %w", err)
	}

	name := fmt.Sprintf("sweep_%d.parquet", time.Now().UnixNano())
	tmpPath := filepath.Join(tmpDir, name)
	outPath := filepath.Join(absOut, name)

	f, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("open tmp parquet: %w", err)
	}

	w := parquet.NewGenericWriter[RunRow](
		f,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
	)
	w.SetKeyValueMetadata("schema", "territory_sweep_v1")

	if _, err := w.Write(rows); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return "", fmt.Errorf("write parquet rows: %w", err)
	}
	if err := w.Close(); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return "", fmt.Errorf("close parquet writer: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("close tmp parquet: %w", err)
	}
	if err := os.Rename(tmpPath, outPath); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("rename parquet into place: %w", err)
	}
	return outPath, nil
}
