package report

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/dustin/go-humanize"
	"golang.org/x/term"

	"ownerhunter/internal/hunter"
	"ownerhunter/internal/types"
)

const (
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorReset  = "\033[0m"
)

// StatusCount is one line of the status breakdown.
type StatusCount struct {
	Status string
	Count  int
}

// StatusBreakdown counts targets per status, most common first. Equal counts keep the
// order in which each status first appears in targets.
func StatusBreakdown(targets []types.TargetRecord) []StatusCount {
	var counts []StatusCount
	index := map[string]int{}
	for _, t := range targets {
		i, ok := index[t.Status]
		if !ok {
			i = len(counts)
			index[t.Status] = i
			counts = append(counts, StatusCount{Status: t.Status})
		}
		counts[i].Count++
	}
	slices.SortStableFunc(counts, func(a, b StatusCount) int { return b.Count - a.Count })
	return counts
}

// IsTerminal reports whether w is a terminal, so ANSI colors are safe to emit.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// PrintSummary writes the human-readable run summary to w.
func PrintSummary(w io.Writer, res hunter.Result, written Written, color bool) {
	paint := func(c, s string) string {
		if !color {
			return s
		}
		return c + s + colorReset
	}

	fmt.Fprintf(w, "Loaded %s entities.\n", humanize.Comma(int64(res.Entities)))

	if written.TargetsPath != "" {
		fmt.Fprintln(w, paint(colorGreen, "Generated "+written.TargetsPath))
	}
	fmt.Fprintf(w, "   -> %s searchable targets\n", humanize.Comma(int64(len(res.Targets))))

	fmt.Fprintln(w, paint(colorRed, fmt.Sprintf("Found %s 'Ghost Offices' (no street address)",
		humanize.Comma(int64(len(res.GhostOffices))))))
	if written.GhostOfficesPath != "" {
		fmt.Fprintf(w, "   -> Saved to %s\n", written.GhostOfficesPath)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, paint(colorYellow, "Status Breakdown:"))
	for _, sc := range StatusBreakdown(res.Targets) {
		fmt.Fprintf(w, "   %s: %s\n", sc.Status, humanize.Comma(int64(sc.Count)))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Open the CSV and follow 'MBLS_Deep_Link' to find the Registered Agent.")
	fmt.Fprintln(w, "   Look for: 'Registered Agent' or 'Manager' - that's the human owner.")
}
