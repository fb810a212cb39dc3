package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/crucible/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "List finished interviews and their verdicts",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		sessions, err := s.EventRepo().QuerySessionSummaries(ctx, store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query sessions: %w", err)
		}

		if len(sessions) == 0 {
			fmt.Println("No finished interviews found.")
			return nil
		}

		// Header.
		fmt.Printf("%-19s  %-16s  %-22s  %5s  %-8s  %-12s  %s\n",
			"Timestamp", "Candidate", "Role", "Turns", "Grade", "Verdict", "Ended Because")
		fmt.Println(strings.Repeat("─", 110))

		for _, sess := range sessions {
			fmt.Printf("%-19s  %-16s  %-22s  %5d  %-8s  %-12s  %s\n",
				sess.Timestamp.Local().Format("2006-01-02 15:04:05"),
				truncate(sess.CandidateName, 16),
				truncate(sess.Role, 22),
				sess.TurnCount,
				sess.AssessedGrade,
				sess.Recommendation,
				sess.TerminationReason,
			)
		}

		fmt.Printf("\n%d interviews\n", len(sessions))
		return nil
	},
}

func init() {
	statsCmd.Flags().IntP("limit", "n", 20, "Number of interviews to show")
}
