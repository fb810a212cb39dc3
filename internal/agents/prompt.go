package agents

import (
	"fmt"
	"strings"

	"github.com/abhisek/crucible/internal/interview"
)

const routerSystemPrompt = `You classify a candidate's message during a technical interview.

Intents:
- answer: the candidate attempts to answer the pending question, even partially or wrongly.
- question: the candidate asks the interviewer a counter-question ("what do you mean by X?").
- off_topic: the candidate talks about something unrelated to the pending question.
- stop: the candidate wants to end the interview ("stop", "enough", "let's finish").

Pick exactly one intent. An imperfect attempt at the question is still "answer".`

const skepticSystemPrompt = `You are the technical examiner in an interview. Judge the answer hard but fairly.

Scale: 8-10 excellent, 6-7 good, 4-5 partial, 1-3 weak, 0 no answer.

Criteria:
- Does it answer the question that was asked?
- Is it concrete, or hand-waving?
- Are there gross factual errors, invented terms, or contradictions with earlier statements?

Criticism must be grounded in the question. Do not invent problems; if the answer
is good, say so. Flag hallucinated facts and fictional terms explicitly — they are
critical findings, not style issues.`

const empathSystemPrompt = `You assess SOFT skills only — how the candidate communicates, not whether
they are technically right. Technical judgment is someone else's job.

Look at: manner of speech, structure, confidence versus bluffing, whether they
admit not knowing, engagement with the dialogue, visible stress.`

const planSystemPrompt = `You are an experienced technical interviewer preparing an interview plan.

Rules:
- Produce 6-8 concrete topics relevant to the role and the stated experience.
- Order from fundamentals to advanced; ramp the difficulty.
- Be specific ("SQL: join types, indexes, query plans"), never generic
  ("general questions").
- Cover the technologies the candidate claims to know.`

const voiceSystemPrompt = `You are the interviewer's voice. You receive a directive describing what to do
this turn; produce the single message the candidate will see.

Rules:
- One question at a time. Short, professional, human.
- Never explain the correct answer — this is an interview, not a lesson.
- Under the rescue protocol: simplify, scaffold, reassure.
- Under speedrun: be brisk, raise difficulty, skip pleasantries.
- Under stress_test: probe edge cases and internals, stay respectful.
- When told to challenge a false claim: dispute it in one sentence ("I don't
  think X exists — where is that from?") and move on. Do not lecture.`

const reporterSystemPrompt = `You write the final interview report. Base it ONLY on what happened in the
transcript, not on the resume.

Rules:
- Unanswered or dodged questions score 1-3 on their topics.
- Hallucinated facts mean no_hire and cut the honesty score.
- Confidence reflects how much signal there was: 3+ real answers 80-95,
  1-2 answers 60-80, none 30-50.
- The reasoning must state plainly whether the candidate answered the
  questions that were asked.`

// buildRouterMessage renders the Router user message.
func buildRouterMessage(pendingQuestion, message string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Interviewer's pending question:\n%s\n\n", orDefault(pendingQuestion, "(interview just started)"))
	fmt.Fprintf(&b, "Candidate's message:\n%s\n", message)
	return b.String()
}

// buildSkepticMessage renders the Skeptic user message.
func buildSkepticMessage(in SkepticInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Role: %s (target grade: %s)\n", in.Candidate.Role, in.Candidate.TargetGrade)
	fmt.Fprintf(&b, "Topic under discussion: %s [%s]\n\n", in.TopicLabel, in.TopicDifficulty)
	fmt.Fprintf(&b, "Question asked:\n%s\n\n", orDefault(in.Question, "(opening question)"))
	fmt.Fprintf(&b, "Candidate's answer:\n%s\n", in.Answer)
	return b.String()
}

// buildEmpathMessage renders the Empath user message.
func buildEmpathMessage(message string) string {
	return fmt.Sprintf("Candidate's message:\n%s\n", message)
}

// buildPlanMessage renders the plan-generation user message.
func buildPlanMessage(c interview.Candidate) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Position: %s\n", c.Role)
	fmt.Fprintf(&b, "Target grade: %s\n", c.TargetGrade)
	fmt.Fprintf(&b, "Stated experience: %s\n", c.Experience)
	return b.String()
}

// buildVoiceMessage renders the Voice user message from the planner's
// directive and the conversational context.
func buildVoiceMessage(in VoiceInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Candidate: %s, %s (target grade: %s)\n", in.Candidate.Name, in.Candidate.Role, in.Candidate.TargetGrade)
	fmt.Fprintf(&b, "Protocol: %s\n", in.Protocol)
	fmt.Fprintf(&b, "Active topic: %s\n\n", orDefault(in.TopicLabel, "(none — wrap up)"))
	fmt.Fprintf(&b, "Directive: %s\n", in.Directive)
	if in.ChallengeFact {
		fact := orDefault(in.CorrectFact, "the candidate invented this")
		fmt.Fprintf(&b, "Challenge the false claim first. Correction: %s\n", fact)
	}

	if len(in.RecentTurns) > 0 {
		b.WriteString("\nRecent exchange (oldest first):\n")
		for _, turn := range in.RecentTurns {
			fmt.Fprintf(&b, "Interviewer: %s\n", turn.AgentMessage)
			if turn.UserMessage != "" {
				fmt.Fprintf(&b, "Candidate: %s\n", turn.UserMessage)
			}
		}
	}

	return b.String()
}

// buildReportMessage renders the Reporter user message from the full
// terminal session state.
func buildReportMessage(s *interview.SessionState) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Candidate: %s\nPosition: %s\nTarget grade: %s\nStated experience: %s\n\n",
		s.Candidate.Name, s.Candidate.Role, s.Candidate.TargetGrade, s.Candidate.Experience)

	b.WriteString("Full transcript:\n")
	for _, turn := range s.Turns {
		fmt.Fprintf(&b, "--- turn %d ---\n", turn.ID)
		fmt.Fprintf(&b, "Interviewer: %s\n", turn.AgentMessage)
		fmt.Fprintf(&b, "Candidate: %s\n", orDefault(turn.UserMessage, "(no reply)"))
		for _, note := range turn.Notes {
			fmt.Fprintf(&b, "  note: %s\n", note)
		}
	}

	b.WriteString("\nTopic scores:\n")
	for _, t := range s.Plan.Topics {
		if t.Score != nil {
			fmt.Fprintf(&b, "- %s [%s]: %d/10\n", t.Label, t.Difficulty, *t.Score)
		} else {
			fmt.Fprintf(&b, "- %s [%s]: not reached\n", t.Label, t.Difficulty)
		}
	}

	fmt.Fprintf(&b, "\nHallucinations: %d\nOff-topic turns: %d\nContradictions: %d\n",
		s.Behavior.HallucinationCount, s.Behavior.OffTopicCount, s.Behavior.ContradictionCount)
	fmt.Fprintf(&b, "Termination reason: %s\n", orDefault(s.TerminationReason, "plan completed"))

	return b.String()
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
