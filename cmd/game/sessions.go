// cmd/game/sessions.go
package main

import (
	"fmt"

	"go-bowling/internal/app"
	"go-bowling/internal/storage"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var sessionsLimit int

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Show recent sessions and the best clear",
	RunE:  runSessions,
}

func init() {
	sessionsCmd.Flags().IntVarP(&sessionsLimit, "limit", "n", 10, "Number of sessions to show")
}

func runSessions(cmd *cobra.Command, args []string) error {
	tuning, err := app.ResolveTuning(flags)
	if err != nil {
		return err
	}
	store, err := storage.Open(tuning.Storage.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	recent, err := store.RecentSessions(sessionsLimit)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(recent) == 0 {
		fmt.Fprintln(out, "No sessions recorded yet. Run 'game' to play.")
		return nil
	}
	fmt.Fprintln(out, renderSessions(recent))

	if best, ok, err := store.BestClear(); err == nil && ok {
		fmt.Fprintf(out, "Best clear: %.2fs with %d balls (session %s)\n", best.Elapsed, best.BallsThrown, shortID(best.ID))
	}
	return nil
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func renderSessions(recs []storage.SessionRecord) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("started", "session", "seed", "elapsed", "balls", "pins", "cleared").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, r := range recs {
		cleared := "no"
		if r.Cleared {
			cleared = "yes"
		}
		t.Row(
			r.StartedAt.Format("2006-01-02 15:04"),
			shortID(r.ID),
			fmt.Sprint(r.Seed),
			fmt.Sprintf("%.2fs", r.Elapsed),
			fmt.Sprint(r.BallsThrown),
			fmt.Sprint(r.PinsKnocked),
			cleared,
		)
	}
	return t.Render()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
