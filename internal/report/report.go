// Package report writes the target and ghost-office CSV files and the console summary.
package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"ownerhunter/internal/hunter"
	"ownerhunter/internal/types"
)

// ErrOutputWrite wraps any failure to create or write a report file.
var ErrOutputWrite = errors.New("output write failed")

const ghostSuffix = "_ghost_offices"

// GhostPath derives the ghost-office report path from the targets path by inserting
// "_ghost_offices" before the extension.
func GhostPath(output string) string {
	ext := filepath.Ext(output)
	return strings.TrimSuffix(output, ext) + ghostSuffix + ext
}

// Written records which files a run produced. Empty paths were skipped.
type Written struct {
	TargetsPath      string
	GhostOfficesPath string
}

// Write saves the targets to output and the ghost offices to GhostPath(output).
// Empty lists produce no file.
func Write(output string, res hunter.Result, logger *zap.Logger) (Written, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	var w Written

	if len(res.Targets) > 0 {
		rows := make([][]string, len(res.Targets))
		for i, t := range res.Targets {
			rows[i] = t.Row()
		}
		if err := writeCSV(output, types.TargetHeader, rows); err != nil {
			return w, err
		}
		w.TargetsPath = output
		logger.Info("wrote targets", zap.String("path", output), zap.Int("rows", len(rows)))
	}

	if len(res.GhostOffices) > 0 {
		path := GhostPath(output)
		rows := make([][]string, len(res.GhostOffices))
		for i, g := range res.GhostOffices {
			rows[i] = g.Row()
		}
		if err := writeCSV(path, types.GhostOfficeHeader, rows); err != nil {
			return w, err
		}
		w.GhostOfficesPath = path
		logger.Info("wrote ghost offices", zap.String("path", path), zap.Int("rows", len(rows)))
	}
	return w, nil
}

// writeCSV writes header and rows with CRLF line endings and RFC 4180 quoting.
func writeCSV(path string, header []string, rows [][]string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrOutputWrite, path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrOutputWrite, path, err)
	}

	cw := csv.NewWriter(f)
	cw.UseCRLF = true
	if err := cw.Write(header); err != nil {
		f.Close()
		return fmt.Errorf("%w: %s: %w", ErrOutputWrite, path, err)
	}
	if err := cw.WriteAll(rows); err != nil {
		f.Close()
		return fmt.Errorf("%w: %s: %w", ErrOutputWrite, path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrOutputWrite, path, err)
	}
	return nil
}
