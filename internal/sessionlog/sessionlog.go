// Package sessionlog writes the per-interview JSON document: candidate
// metadata, the full annotated transcript, and the final feedback. One
// file per session, written once at termination.
package sessionlog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/abhisek/crucible/internal/interview"
)

// TurnRecord is one exchange in the serialized transcript.
type TurnRecord struct {
	Turn          int      `json:"turn"`
	AgentMessage  string   `json:"agent_message"`
	UserMessage   string   `json:"user_message,omitempty"`
	InternalNotes []string `json:"internal_notes,omitempty"`
}

// TopicRecord is one plan topic in the serialized metadata.
type TopicRecord struct {
	Topic      string `json:"topic"`
	Difficulty string `json:"difficulty"`
	Score      *int   `json:"score,omitempty"`
	Covered    bool   `json:"covered"`
}

// Metadata carries the interview setup and outcome counters.
type Metadata struct {
	SessionID          string        `json:"session_id"`
	Role               string        `json:"role"`
	TargetGrade        string        `json:"target_grade"`
	Experience         string        `json:"experience,omitempty"`
	Protocol           string        `json:"final_protocol"`
	Plan               []TopicRecord `json:"interview_plan"`
	HallucinationCount int           `json:"hallucination_count"`
	OffTopicCount      int           `json:"off_topic_count"`
	ContradictionCount int           `json:"contradiction_count"`
	TerminationReason  string        `json:"termination_reason"`
}

// Document is the complete session log.
type Document struct {
	ParticipantName string             `json:"participant_name"`
	SessionStart    time.Time          `json:"session_start"`
	Metadata        Metadata           `json:"metadata"`
	Turns           []TurnRecord       `json:"turns"`
	FinalFeedback   *interview.Verdict `json:"final_feedback"`
}

// Build assembles the document from a terminal session state and its verdict.
func Build(s *interview.SessionState, verdict *interview.Verdict) *Document {
	doc := &Document{
		ParticipantName: s.Candidate.Name,
		SessionStart:    s.StartedAt,
		Metadata: Metadata{
			SessionID:          s.SessionID,
			Role:               s.Candidate.Role,
			TargetGrade:        s.Candidate.TargetGrade,
			Experience:         s.Candidate.Experience,
			Protocol:           string(s.Protocol),
			HallucinationCount: s.Behavior.HallucinationCount,
			OffTopicCount:      s.Behavior.OffTopicCount,
			ContradictionCount: s.Behavior.ContradictionCount,
			TerminationReason:  s.TerminationReason,
		},
		FinalFeedback: verdict,
	}

	for _, t := range s.Plan.Topics {
		doc.Metadata.Plan = append(doc.Metadata.Plan, TopicRecord{
			Topic:      t.Label,
			Difficulty: string(t.Difficulty),
			Score:      t.Score,
			Covered:    t.Covered,
		})
	}

	for _, turn := range s.Turns {
		doc.Turns = append(doc.Turns, TurnRecord{
			Turn:          turn.ID,
			AgentMessage:  turn.AgentMessage,
			UserMessage:   turn.UserMessage,
			InternalNotes: turn.Notes,
		})
	}

	return doc
}

// Write serializes the document to its default location and returns the
// file path.
func Write(doc *Document) (string, error) {
	dir, err := DefaultLogDir()
	if err != nil {
		return "", err
	}
	return WriteTo(dir, doc)
}

// WriteTo serializes the document into dir, named by session start time
// and session ID.
func WriteTo(dir string, doc *Document) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create log dir: %w", err)
	}

	name := fmt.Sprintf("interview_%s_%s.json",
		doc.SessionStart.Format("20060102-150405"), doc.Metadata.SessionID)
	path := filepath.Join(dir, name)

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal session log: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write session log: %w", err)
	}
	return path, nil
}

// DefaultLogDir resolves the session log directory in priority order:
// 1. CRUCIBLE_LOG_DIR environment variable
// 2. $XDG_DATA_HOME/crucible/sessions
// 3. ~/.local/share/crucible/sessions
func DefaultLogDir() (string, error) {
	if p := os.Getenv("CRUCIBLE_LOG_DIR"); p != "" {
		return p, nil
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	return filepath.Join(dataHome, "crucible", "sessions"), nil
}
