package interview

// Decision is the strategic planner's output for one turn: the directive
// for the response generator, the protocol to run under, and whether the
// plan cursor moves. The engine commits it via SessionState.ApplyDecision.
type Decision struct {
	Directive     Directive
	Protocol      Protocol
	AdvanceCursor bool
	Reason        string

	// ChallengeFact asks the response generator to briefly dispute a
	// false claim before moving on. CorrectFact carries the correction
	// when the evaluator supplied one.
	ChallengeFact bool
	CorrectFact   string
}

// Decide is the decision core. It is a pure function of the session
// state, the classified intent, and the technical evaluation already
// recorded for this turn (nil when the intent was not an answer, or when
// the evaluation was degraded). It never mutates state.
//
// Rule order: stop, hard turn cap, counter-question, off-topic, answer.
// For answers, the protocol transition is evaluated before the cursor
// decision, and the trailing score window spans topic boundaries.
func Decide(s *SessionState, intent Intent, tech *TechnicalEval) Decision {
	if intent == IntentStop {
		return Decision{
			Directive: DirectiveTerminate,
			Protocol:  s.Protocol,
			Reason:    "candidate requested stop",
		}
	}

	if s.TurnCount+1 >= s.MaxTurns {
		return Decision{
			Directive: DirectiveTerminate,
			Protocol:  s.Protocol,
			Reason:    "turn limit reached",
		}
	}

	switch intent {
	case IntentQuestion:
		// Answer the candidate, then re-pose the pending question.
		// No question slot is consumed; cursor and protocol hold.
		return Decision{Directive: DirectiveAnswerQuestion, Protocol: s.Protocol}
	case IntentOffTopic:
		return Decision{Directive: DirectiveRedirect, Protocol: s.Protocol}
	}

	// Answer path. The skeptic's mutation has already been applied, so
	// the window and the active topic's covered flag are current.
	protocol := nextProtocol(s.Protocol, s.ScoreWindow(), s.DepthWindow())

	d := Decision{Protocol: protocol}
	if tech != nil && tech.Hallucinated() {
		d.ChallengeFact = true
		d.CorrectFact = tech.CorrectAnswer
	}

	active := s.Plan.Active()
	if active != nil && !active.Covered {
		d.Directive = followupDirective(protocol)
		return d
	}

	// Active topic covered (or none left): try to advance.
	d.AdvanceCursor = true
	if !planHasNextUncovered(s.Plan) {
		d.Directive = DirectiveTerminate
		d.Reason = "all topics covered"
		return d
	}
	d.Directive = advanceDirective(protocol)
	return d
}

// nextProtocol applies the protocol transition table to the trailing
// score window. Transitions require a full window.
func nextProtocol(cur Protocol, scores []int, depths []Depth) Protocol {
	if len(scores) < scoreWindowSize {
		return cur
	}
	a, b := scores[len(scores)-2], scores[len(scores)-1]

	switch {
	case a <= 3 && b <= 3:
		return ProtocolRescue
	case cur == ProtocolSpeedrun && expertTwice(depths):
		return ProtocolStressTest
	case a >= 8 && b >= 8 && cur != ProtocolStressTest:
		return ProtocolSpeedrun
	case inBand(a) && inBand(b):
		// Two consecutive mid-band scores settle back to standard.
		return ProtocolStandard
	}
	return cur
}

func expertTwice(depths []Depth) bool {
	if len(depths) < 2 {
		return false
	}
	return depths[len(depths)-2] == DepthExpert && depths[len(depths)-1] == DepthExpert
}

func inBand(score int) bool {
	return score >= 4 && score <= 7
}

func followupDirective(p Protocol) Directive {
	switch p {
	case ProtocolRescue:
		return DirectiveRescue
	case ProtocolStressTest:
		return DirectiveStressProbe
	}
	return DirectiveAskFollowup
}

func advanceDirective(p Protocol) Directive {
	switch p {
	case ProtocolSpeedrun:
		return DirectiveSpeedrunNext
	case ProtocolStressTest:
		return DirectiveStressProbe
	}
	return DirectiveAdvanceTopic
}

// planHasNextUncovered reports whether any topic past the cursor remains
// uncovered, without moving the cursor.
func planHasNextUncovered(p *Plan) bool {
	for i := p.Cursor + 1; i < len(p.Topics); i++ {
		if !p.Topics[i].Covered {
			return true
		}
	}
	return false
}
