package main

import (
	"fmt"
	"strconv"

	"performance-tracker-backend/internal/stats"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	topStyle    = cellStyle.Foreground(lipgloss.Color("214")).Bold(true)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func newLeaderboardCmd(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Print members ranked by average rating",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.snapshot(cmd.Context())
			if err != nil {
				return err
			}

			entries := store.Snapshot().Leaderboard()
			if limit > 0 && len(entries) > limit {
				entries = entries[:limit]
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderLeaderboard(entries))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "show only the top n members (0 shows everyone)")
	return cmd
}

// leaderboardRows formats the table body; unrated members show "N/A"
func leaderboardRows(entries []stats.LeaderboardEntry) [][]string {
	rows := make([][]string, len(entries))
	for i, e := range entries {
		avg := "N/A"
		if e.Stats.AverageRating > 0 {
			avg = fmt.Sprintf("%.2f", e.Stats.AverageRating)
		}
		rows[i] = []string{
			strconv.Itoa(i + 1),
			e.Member.Name,
			e.Member.Role,
			strconv.Itoa(e.Stats.TotalTasks),
			strconv.Itoa(e.Stats.CompletedTasks),
			fmt.Sprintf("%.1f%%", e.Stats.CompletionRate),
			avg,
		}
	}
	return rows
}

func renderLeaderboard(entries []stats.LeaderboardEntry) string {
	if len(entries) == 0 {
		return "No members yet."
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers("#", "Member", "Role", "Tasks", "Completed", "Completion", "Avg Rating").
		Rows(leaderboardRows(entries)...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row == 0:
				return topStyle
			default:
				return cellStyle
			}
		})

	return t.Render()
}
