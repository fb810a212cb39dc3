// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/crucible/ent/llmrequestevent"
	"github.com/abhisek/crucible/ent/schema"
	"github.com/abhisek/crucible/ent/sessionevent"
	"github.com/abhisek/crucible/ent/snapshot"
	"github.com/abhisek/crucible/ent/turnevent"
	"github.com/abhisek/crucible/ent/verdictevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[1].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescCandidateName is the schema descriptor for candidate_name field.
	sessioneventDescCandidateName := sessioneventFields[2].Descriptor()
	// sessionevent.DefaultCandidateName holds the default value on creation for the candidate_name field.
	sessionevent.DefaultCandidateName = sessioneventDescCandidateName.Default.(string)
	// sessioneventDescRole is the schema descriptor for role field.
	sessioneventDescRole := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultRole holds the default value on creation for the role field.
	sessionevent.DefaultRole = sessioneventDescRole.Default.(string)
	// sessioneventDescTargetGrade is the schema descriptor for target_grade field.
	sessioneventDescTargetGrade := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultTargetGrade holds the default value on creation for the target_grade field.
	sessionevent.DefaultTargetGrade = sessioneventDescTargetGrade.Default.(string)
	// sessioneventDescTurnCount is the schema descriptor for turn_count field.
	sessioneventDescTurnCount := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultTurnCount holds the default value on creation for the turn_count field.
	sessionevent.DefaultTurnCount = sessioneventDescTurnCount.Default.(int)
	// sessioneventDescProtocol is the schema descriptor for protocol field.
	sessioneventDescProtocol := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultProtocol holds the default value on creation for the protocol field.
	sessionevent.DefaultProtocol = sessioneventDescProtocol.Default.(string)
	// sessioneventDescTerminationReason is the schema descriptor for termination_reason field.
	sessioneventDescTerminationReason := sessioneventFields[7].Descriptor()
	// sessionevent.DefaultTerminationReason holds the default value on creation for the termination_reason field.
	sessionevent.DefaultTerminationReason = sessioneventDescTerminationReason.Default.(string)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
	turneventMixin := schema.TurnEvent{}.Mixin()
	turneventMixinFields0 := turneventMixin[0].Fields()
	_ = turneventMixinFields0
	turneventFields := schema.TurnEvent{}.Fields()
	_ = turneventFields
	// turneventDescTimestamp is the schema descriptor for timestamp field.
	turneventDescTimestamp := turneventMixinFields0[1].Descriptor()
	// turnevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	turnevent.DefaultTimestamp = turneventDescTimestamp.Default.(func() time.Time)
	// turneventDescSessionID is the schema descriptor for session_id field.
	turneventDescSessionID := turneventFields[0].Descriptor()
	// turnevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	turnevent.SessionIDValidator = turneventDescSessionID.Validators[0].(func(string) error)
	// turneventDescAgentMessage is the schema descriptor for agent_message field.
	turneventDescAgentMessage := turneventFields[2].Descriptor()
	// turnevent.DefaultAgentMessage holds the default value on creation for the agent_message field.
	turnevent.DefaultAgentMessage = turneventDescAgentMessage.Default.(string)
	// turneventDescUserMessage is the schema descriptor for user_message field.
	turneventDescUserMessage := turneventFields[3].Descriptor()
	// turnevent.DefaultUserMessage holds the default value on creation for the user_message field.
	turnevent.DefaultUserMessage = turneventDescUserMessage.Default.(string)
	// turneventDescIntent is the schema descriptor for intent field.
	turneventDescIntent := turneventFields[4].Descriptor()
	// turnevent.DefaultIntent holds the default value on creation for the intent field.
	turnevent.DefaultIntent = turneventDescIntent.Default.(string)
	// turneventDescProtocol is the schema descriptor for protocol field.
	turneventDescProtocol := turneventFields[5].Descriptor()
	// turnevent.DefaultProtocol holds the default value on creation for the protocol field.
	turnevent.DefaultProtocol = turneventDescProtocol.Default.(string)
	// turneventDescDirective is the schema descriptor for directive field.
	turneventDescDirective := turneventFields[6].Descriptor()
	// turnevent.DefaultDirective holds the default value on creation for the directive field.
	turnevent.DefaultDirective = turneventDescDirective.Default.(string)
	verdicteventMixin := schema.VerdictEvent{}.Mixin()
	verdicteventMixinFields0 := verdicteventMixin[0].Fields()
	_ = verdicteventMixinFields0
	verdicteventFields := schema.VerdictEvent{}.Fields()
	_ = verdicteventFields
	// verdicteventDescTimestamp is the schema descriptor for timestamp field.
	verdicteventDescTimestamp := verdicteventMixinFields0[1].Descriptor()
	// verdictevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	verdictevent.DefaultTimestamp = verdicteventDescTimestamp.Default.(func() time.Time)
	// verdicteventDescSessionID is the schema descriptor for session_id field.
	verdicteventDescSessionID := verdicteventFields[0].Descriptor()
	// verdictevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	verdictevent.SessionIDValidator = verdicteventDescSessionID.Validators[0].(func(string) error)
	// verdicteventDescConfidence is the schema descriptor for confidence field.
	verdicteventDescConfidence := verdicteventFields[3].Descriptor()
	// verdictevent.DefaultConfidence holds the default value on creation for the confidence field.
	verdictevent.DefaultConfidence = verdicteventDescConfidence.Default.(int)
	// verdicteventDescReasoning is the schema descriptor for reasoning field.
	verdicteventDescReasoning := verdicteventFields[4].Descriptor()
	// verdictevent.DefaultReasoning holds the default value on creation for the reasoning field.
	verdictevent.DefaultReasoning = verdicteventDescReasoning.Default.(string)
	// verdicteventDescFallback is the schema descriptor for fallback field.
	verdicteventDescFallback := verdicteventFields[5].Descriptor()
	// verdictevent.DefaultFallback holds the default value on creation for the fallback field.
	verdictevent.DefaultFallback = verdicteventDescFallback.Default.(bool)
}
