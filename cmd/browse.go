package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"ownerhunter/internal/types"
)

// browseCmd walks the ranked targets in the terminal
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse ranked targets and save them to the watchlist",
	Long: `Loads and ranks the masterlist like the default command, without writing reports,
and lists the targets. On a terminal, use ↑/↓ to move, Enter to view a target's
details and deep link, and Esc to quit.`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

// targetLine is the one-line summary shown in the browse list.
func targetLine(t types.TargetRecord) string {
	date := t.StatusDate
	if date == "" {
		date = "-"
	}
	return fmt.Sprintf("%-11s | %-10s | %-40s | %s", t.Status, date, t.Name, t.City)
}

// renderTarget prints a target in a readable layout.
func renderTarget(w io.Writer, t types.TargetRecord) {
	fmt.Fprintln(w, strings.Repeat("-", 80))
	fmt.Fprintf(w, "Name              : %s\n", t.Name)
	fmt.Fprintf(w, "License ID        : %s\n", t.LicenseID)
	fmt.Fprintf(w, "Status            : %s (%s)\n", t.Status, t.StatusDate)
	fmt.Fprintf(w, "City / County     : %s / %s\n", t.City, t.County)
	fmt.Fprintf(w, "Service Type      : %s\n", t.ServiceType)
	fmt.Fprintf(w, "Deep Link         : %s\n", t.DeepLink)
	fmt.Fprintln(w, strings.Repeat("-", 80))
}

// confirm asks a yes/no question; anything but y or yes is no. It reads one line from r,
// leaving later input buffered for the next caller.
func confirm(r *bufio.Reader, w io.Writer, question string) bool {
	fmt.Fprintf(w, "%s (y/N): ", question)
	resp, _ := r.ReadString('\n')
	resp = strings.ToLower(strings.TrimSpace(resp))
	return resp == "y" || resp == "yes"
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	res, err := hunt(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(res.Targets) == 0 {
		fmt.Fprintln(out, "No targets in the masterlist.")
		return nil
	}

	lines := make([]string, len(res.Targets))
	for i, t := range res.Targets {
		lines[i] = targetLine(t)
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		for _, l := range lines {
			fmt.Fprintln(out, l)
		}
		return nil
	}

	interactiveSelect(res.Targets, lines, func(t types.TargetRecord, in *bufio.Reader) {
		renderTarget(os.Stdout, t)
		if !confirm(in, os.Stdout, "Save to watchlist?") {
			return
		}
		if err := saveToWatchlist(cfg.Watchlist, t.LicenseID); err != nil {
			fmt.Printf("Failed to save target: %v\n", err)
		} else {
			fmt.Println("Target saved.")
		}
	})
	return nil
}
