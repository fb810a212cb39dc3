package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/abhisek/crucible/internal/app"
	"github.com/abhisek/crucible/internal/engine"
	"github.com/abhisek/crucible/internal/interview"
	"github.com/abhisek/crucible/internal/llm"
	"github.com/abhisek/crucible/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds the agent pipeline, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	candidate, err := candidateFromFlags(cmd)
	if err != nil {
		return err
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo := st.EventRepo()

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		return fmt.Errorf("LLM provider not configured: %w", err)
	}

	eng := engine.NewFromProvider(provider, eventRepo, st.SnapshotRepo(), engine.Config{
		MaxTurns: resolveMaxTurns(cmd),
	})

	debug, _ := cmd.Flags().GetBool("debug")
	return app.Run(app.Options{
		Engine:    eng,
		Candidate: candidate,
		Debug:     debug,
	})
}

func candidateFromFlags(cmd *cobra.Command) (interview.Candidate, error) {
	name, _ := cmd.Flags().GetString("name")
	role, _ := cmd.Flags().GetString("role")
	grade, _ := cmd.Flags().GetString("grade")
	experience, _ := cmd.Flags().GetString("experience")

	if name == "" {
		return interview.Candidate{}, fmt.Errorf("--name is required")
	}
	if role == "" {
		return interview.Candidate{}, fmt.Errorf("--role is required")
	}
	if grade == "" {
		grade = "Mid"
	}
	return interview.Candidate{
		Name:        name,
		Role:        role,
		TargetGrade: grade,
		Experience:  experience,
	}, nil
}

// resolveMaxTurns returns the turn cap: --max-turns flag, then the
// CRUCIBLE_MAX_TURNS env var, then the built-in default.
func resolveMaxTurns(cmd *cobra.Command) int {
	if n, _ := cmd.Flags().GetInt("max-turns"); n > 0 {
		return n
	}
	if v := os.Getenv("CRUCIBLE_MAX_TURNS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return interview.DefaultMaxTurns
}

func init() {
	rootCmd.Flags().String("name", "", "Candidate name (required)")
	rootCmd.Flags().String("role", "", "Role interviewed for, e.g. \"Backend Engineer\" (required)")
	rootCmd.Flags().String("grade", "", "Target grade: Junior, Mid, Senior, Staff (default Mid)")
	rootCmd.Flags().String("experience", "", "Free-text summary of claimed experience")
	rootCmd.Flags().Int("max-turns", 0, "Turn cap (overrides CRUCIBLE_MAX_TURNS env var)")
	rootCmd.Flags().Bool("debug", false, "Show the agents' internal debate notes in the transcript")
}
