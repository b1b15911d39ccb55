package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"ownerhunter/internal/types"
)

// watchlistCmd lists the license IDs saved from browse
var watchlistCmd = &cobra.Command{
	Use:   "watchlist",
	Short: "Show the targets saved to the watchlist",
	Args:  cobra.NoArgs,
	RunE:  showWatchlist,
}

// loadWatchlist returns the license IDs stored in the watchlist file.
// If the file does not exist, an empty slice is returned without error.
func loadWatchlist(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // nothing saved yet
		}
		return nil, err
	}
	defer f.Close()

	var ids []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		id := strings.TrimSpace(scanner.Text())
		if id != "" {
			ids = append(ids, id)
		}
	}
	return ids, scanner.Err()
}

// saveToWatchlist appends the license ID to the watchlist unless it is already there.
func saveToWatchlist(path string, id types.LicenseID) error {
	newID := strings.TrimSpace(id.String())
	if newID == "" {
		return fmt.Errorf("target has no license id")
	}
	existing, err := loadWatchlist(path)
	if err != nil {
		return err
	}
	for _, saved := range existing {
		if saved == newID {
			// Already present – nothing to do.
			return nil
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	if _, err = fmt.Fprintln(f, newID); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// printWatchlist writes one line per saved ID with the matching target, if it is still one.
func printWatchlist(w io.Writer, ids []string, targets []types.TargetRecord) {
	byID := make(map[string]types.TargetRecord, len(targets))
	for _, t := range targets {
		byID[t.LicenseID.String()] = t
	}
	for _, id := range ids {
		if t, ok := byID[id]; ok {
			fmt.Fprintf(w, "%-12s | %-11s | %s\n", id, t.Status, t.Name)
		} else {
			fmt.Fprintf(w, "%-12s | %-11s |\n", id, "(not a target)")
		}
	}
}

func showWatchlist(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	ids, err := loadWatchlist(cfg.Watchlist)
	if err != nil {
		return fmt.Errorf("failed to load watchlist: %w", err)
	}
	out := cmd.OutOrStdout()
	if len(ids) == 0 {
		fmt.Fprintln(out, "No targets saved yet. Use 'ownerhunter browse' to add targets to your watchlist.")
		return nil
	}

	res, err := hunt(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	printWatchlist(out, ids, res.Targets)
	return nil
}
