package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/abhisek/crucible/internal/sessionlog"
	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report [session-id]",
	Short: "Print the verdict from a recorded interview (latest by default)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, _ := cmd.Flags().GetString("dir")
		if dir == "" {
			var err error
			dir, err = sessionlog.DefaultLogDir()
			if err != nil {
				return fmt.Errorf("resolve log dir: %w", err)
			}
		}

		sessionID := ""
		if len(args) == 1 {
			sessionID = args[0]
		}

		path, err := findSessionLog(dir, sessionID)
		if err != nil {
			return err
		}

		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read session log: %w", err)
		}
		var doc sessionlog.Document
		if err := json.Unmarshal(raw, &doc); err != nil {
			return fmt.Errorf("parse session log %s: %w", path, err)
		}

		printReport(&doc, path)
		return nil
	},
}

// findSessionLog picks the log file: by session ID substring when given,
// otherwise the newest (filenames embed the start timestamp, so
// lexicographic order is chronological).
func findSessionLog(dir, sessionID string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "interview_*.json"))
	if err != nil {
		return "", err
	}
	if sessionID != "" {
		for _, m := range matches {
			if strings.Contains(filepath.Base(m), sessionID) {
				return m, nil
			}
		}
		return "", fmt.Errorf("no session log matching %q in %s", sessionID, dir)
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("no session logs in %s", dir)
	}
	sort.Strings(matches)
	return matches[len(matches)-1], nil
}

func printReport(doc *sessionlog.Document, path string) {
	sep := strings.Repeat("─", 72)

	fmt.Printf("Candidate:  %s\n", doc.ParticipantName)
	fmt.Printf("Role:       %s (target %s)\n", doc.Metadata.Role, doc.Metadata.TargetGrade)
	fmt.Printf("Started:    %s\n", doc.SessionStart.Local().Format("2006-01-02 15:04:05"))
	fmt.Printf("Turns:      %d\n", len(doc.Turns))
	fmt.Printf("Ended:      %s\n", doc.Metadata.TerminationReason)

	v := doc.FinalFeedback
	if v == nil {
		fmt.Println("\nNo verdict recorded.")
		return
	}

	fmt.Println(sep)
	if v.Fallback {
		fmt.Println("Report generation failed; partial verdict shown.")
	}
	fmt.Printf("Grade:          %s\n", v.AssessedGrade)
	fmt.Printf("Recommendation: %s\n", v.Recommendation)
	fmt.Printf("Confidence:     %d%%\n", v.Confidence)
	if v.Reasoning != "" {
		fmt.Printf("\n%s\n", v.Reasoning)
	}

	if len(v.ConfirmedSkills) > 0 {
		fmt.Println("\nConfirmed skills:")
		for _, sk := range v.ConfirmedSkills {
			fmt.Printf("  ✓ %s (%d/10)\n", sk.Topic, sk.Score)
		}
	}
	if len(v.KnowledgeGaps) > 0 {
		fmt.Println("\nKnowledge gaps:")
		for _, sk := range v.KnowledgeGaps {
			fmt.Printf("  ✗ %s (%d/10)\n", sk.Topic, sk.Score)
		}
	}

	fmt.Printf("\nSoft skills: clarity %d/10, honesty %d/10, engagement %d/10\n",
		v.SoftSkills.Clarity, v.SoftSkills.Honesty, v.SoftSkills.Engagement)
	if v.SoftSkills.Notes != "" {
		fmt.Println(v.SoftSkills.Notes)
	}

	if len(v.Roadmap) > 0 {
		fmt.Println("\nWhat to study next:")
		for _, item := range v.Roadmap {
			fmt.Printf("  • %s\n", item)
		}
	}
	if len(v.Resources) > 0 {
		fmt.Println("\nResources:")
		for _, item := range v.Resources {
			fmt.Printf("  • %s\n", item)
		}
	}

	fmt.Println(sep)
	fmt.Printf("Full transcript: %s\n", path)
}

func init() {
	reportCmd.Flags().String("dir", "", "Session log directory (overrides CRUCIBLE_LOG_DIR env var)")
}
