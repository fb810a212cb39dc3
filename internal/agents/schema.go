package agents

import "github.com/abhisek/crucible/internal/llm"

// IntentSchema is the structured output contract for the Router agent.
var IntentSchema = &llm.Schema{
	Name:        "intent-classification",
	Description: "Classification of a candidate message into exactly one intent",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"intent": map[string]any{
				"type":        "string",
				"enum":        []any{"answer", "question", "off_topic", "stop"},
				"description": "The single intent of the candidate's message",
			},
			"internal_thought": map[string]any{
				"type":        "string",
				"description": "One sentence: why this intent was chosen",
			},
			"is_suspicious": map[string]any{
				"type":        "boolean",
				"description": "True when the message contains a technical claim worth fact-checking",
			},
		},
		"required":             []any{"intent", "internal_thought", "is_suspicious"},
		"additionalProperties": false,
	},
}

// TechnicalEvalSchema is the structured output contract for the Skeptic agent.
var TechnicalEvalSchema = &llm.Schema{
	Name:        "technical-eval",
	Description: "Hard-skills judgment of one answer against the active topic",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     10,
				"description": "Technical quality of the answer, 0-10",
			},
			"accuracy": map[string]any{
				"type": "string",
				"enum": []any{"accurate", "partially_correct", "incorrect", "hallucinated"},
			},
			"depth": map[string]any{
				"type": "string",
				"enum": []any{"superficial", "adequate", "deep", "expert"},
			},
			"internal_thought": map[string]any{
				"type":        "string",
				"description": "One sentence on the main problem (or strength) of the answer",
			},
			"issues": map[string]any{
				"type":        []any{"array", "null"},
				"items":       map[string]any{"type": "string"},
				"maxItems":    3,
				"description": "Up to three key problems, each under 15 words",
			},
			"correct_answer": map[string]any{
				"type":        []any{"string", "null"},
				"description": "The correct fact, only when a gross factual error was made",
			},
			"contradiction_detected": map[string]any{
				"type":        "boolean",
				"description": "True when the answer contradicts the candidate's earlier statements",
			},
			"fictional_term_detected": map[string]any{
				"type":        "boolean",
				"description": "True when the answer invents terms, APIs, or libraries",
			},
		},
		"required": []any{
			"score", "accuracy", "depth", "internal_thought",
			"issues", "correct_answer", "contradiction_detected", "fictional_term_detected",
		},
		"additionalProperties": false,
	},
}

// BehavioralEvalSchema is the structured output contract for the Empath agent.
var BehavioralEvalSchema = &llm.Schema{
	Name:        "behavioral-eval",
	Description: "Soft-skills judgment of one answer, independent of technical quality",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"demeanor": map[string]any{
				"type": "string",
				"enum": []any{"normal", "verbose", "silent", "arrogant", "stuck", "nervous"},
			},
			"clarity": map[string]any{
				"type":    "integer",
				"minimum": 1,
				"maximum": 10,
			},
			"honesty": map[string]any{
				"type":        "integer",
				"minimum":     1,
				"maximum":     10,
				"description": "Does the candidate admit not knowing, or bluff?",
			},
			"engagement": map[string]any{
				"type": "string",
				"enum": []any{"low", "medium", "high"},
			},
			"stress_level": map[string]any{
				"type": "string",
				"enum": []any{"low", "medium", "high"},
			},
			"internal_thought": map[string]any{
				"type":        "string",
				"description": "One sentence observing the candidate's state",
			},
			"recommended_protocol": map[string]any{
				"type": "string",
				"enum": []any{"standard", "rescue", "speedrun", "stress_test"},
			},
		},
		"required": []any{
			"demeanor", "clarity", "honesty", "engagement",
			"stress_level", "internal_thought", "recommended_protocol",
		},
		"additionalProperties": false,
	},
}

// PlanSchema is the structured output contract for interview plan generation.
var PlanSchema = &llm.Schema{
	Name:        "interview-plan",
	Description: "An ordered list of concrete interview topics for the candidate",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"topics": map[string]any{
				"type":     "array",
				"minItems": 2,
				"maxItems": 8,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"topic": map[string]any{
							"type":        "string",
							"description": "A concrete topic to probe, not a generic phrase",
						},
						"difficulty": map[string]any{
							"type": "string",
							"enum": []any{"easy", "medium", "hard", "expert"},
						},
						"rationale": map[string]any{
							"type":        "string",
							"description": "Why this topic matters for the role",
						},
					},
					"required":             []any{"topic", "difficulty", "rationale"},
					"additionalProperties": false,
				},
			},
			"internal_thought": map[string]any{
				"type": "string",
			},
		},
		"required":             []any{"topics", "internal_thought"},
		"additionalProperties": false,
	},
}

// VoiceSchema is the structured output contract for the Voice agent.
var VoiceSchema = &llm.Schema{
	Name:        "voice-response",
	Description: "The interviewer's next outbound message",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"message": map[string]any{
				"type":        "string",
				"minLength":   1,
				"description": "What the interviewer says to the candidate",
			},
			"internal_thought": map[string]any{
				"type":        "string",
				"description": "One sentence: why this tone and content",
			},
		},
		"required":             []any{"message", "internal_thought"},
		"additionalProperties": false,
	},
}

// ReportSchema is the structured output contract for the Reporter agent.
var ReportSchema = &llm.Schema{
	Name:        "final-report",
	Description: "Structured final verdict on the candidate",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"assessed_grade": map[string]any{
				"type": "string",
				"enum": []any{"junior", "middle", "senior"},
			},
			"hiring_recommendation": map[string]any{
				"type": "string",
				"enum": []any{"strong_hire", "hire", "no_hire"},
			},
			"confidence_score": map[string]any{
				"type":    "integer",
				"minimum": 0,
				"maximum": 100,
			},
			"verdict_reasoning": map[string]any{
				"type":        "string",
				"description": "2-3 sentences; must reference whether questions were actually answered",
			},
			"clarity_score":    map[string]any{"type": "integer", "minimum": 1, "maximum": 10},
			"honesty_score":    map[string]any{"type": "integer", "minimum": 1, "maximum": 10},
			"engagement_score": map[string]any{"type": "integer", "minimum": 1, "maximum": 10},
			"soft_skills_notes": map[string]any{
				"type": "string",
			},
			"roadmap": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Topics to study next",
			},
			"resources": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"internal_thought": map[string]any{
				"type": "string",
			},
		},
		"required": []any{
			"assessed_grade", "hiring_recommendation", "confidence_score",
			"verdict_reasoning", "clarity_score", "honesty_score",
			"engagement_score", "soft_skills_notes", "roadmap", "resources",
			"internal_thought",
		},
		"additionalProperties": false,
	},
}
