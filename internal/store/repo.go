package store

import (
	"context"
	"encoding/json"
	"time"

	entschema "github.com/abhisek/crucible/ent/schema"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// SnapshotData captures the full interview session state at a point in
// time, serialized by the engine.
type SnapshotData struct {
	Version   int             `json:"version"`
	SessionID string          `json:"session_id,omitempty"`
	State     json.RawMessage `json:"state,omitempty"`
}

// Snapshot represents a point-in-time capture of session state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages session state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEventRecord is one persisted LLM request event.
type LLMEventRecord struct {
	ID           int
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMUsageStat aggregates token usage for one purpose label.
type LLMUsageStat struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates token usage for one model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// SessionEventData captures an interview lifecycle event.
type SessionEventData struct {
	SessionID         string
	Action            string // "start" or "end"
	CandidateName     string
	Role              string
	TargetGrade       string
	TurnCount         int
	Protocol          string
	TerminationReason string
	PlanSummary       []entschema.PlanTopicSummary
}

// TurnEventData captures one completed interview exchange.
type TurnEventData struct {
	SessionID      string
	TurnID         int
	AgentMessage   string
	UserMessage    string
	Intent         string
	Protocol       string
	Directive      string
	TechnicalScore *int
	Notes          []string
}

// VerdictEventData captures the final structured feedback for a session.
type VerdictEventData struct {
	SessionID      string
	AssessedGrade  string
	Recommendation string
	Confidence     int
	Reasoning      string
	Fallback       bool
	Verdict        map[string]any
}

// SessionSummaryRecord is one finished interview, for the stats command.
type SessionSummaryRecord struct {
	SessionID         string
	Timestamp         time.Time
	CandidateName     string
	Role              string
	TurnCount         int
	TerminationReason string
	AssessedGrade     string
	Recommendation    string
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// AppendSessionEvent records an interview start or end.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendTurnEvent records one completed exchange.
	AppendTurnEvent(ctx context.Context, data TurnEventData) error

	// AppendVerdictEvent records the final feedback document.
	AppendVerdictEvent(ctx context.Context, data VerdictEventData) error

	// QueryLLMEvents returns LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error)

	// GetLLMEvent returns one LLM event by ID, or nil when absent.
	GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error)

	// LLMUsageByPurpose aggregates token usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStat, error)

	// LLMUsageByModel aggregates token usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)

	// QuerySessionSummaries returns finished interviews, newest first.
	QuerySessionSummaries(ctx context.Context, opts QueryOpts) ([]SessionSummaryRecord, error)
}
