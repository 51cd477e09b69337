package agent

import "github.com/lox/holdem-core/game"

// Input is a single queued human action, submitted out-of-band (UI, network
// handler, test harness) by calling HumanAgent.Submit.
type Input struct {
	Verb   game.ActionVerb
	Amount int
}

// HumanAgent adapts an external input source to the Agent interface. It
// holds no intelligence of its own: OnTurn reports acted=false until a
// caller has Submit'd an Input for the seat whose turn it currently is.
type HumanAgent struct {
	pending *Input
}

// NewHumanAgent returns a HumanAgent with no action queued yet.
func NewHumanAgent() *HumanAgent {
	return &HumanAgent{}
}

// Submit queues the next action this agent's seat should take. It is
// consumed (and cleared) by the next OnTurn call.
func (h *HumanAgent) Submit(in Input) {
	h.pending = &in
}

// OnTurn applies the queued input, if any. With nothing queued it reports
// acted=false so the caller can keep waiting without treating it as an error.
func (h *HumanAgent) OnTurn(engine game.GameEngine, seat int) (bool, error) {
	if h.pending == nil {
		return false, nil
	}
	in := *h.pending
	h.pending = nil

	var err error
	switch in.Verb {
	case game.VerbFold:
		err = engine.ActionFold()
	case game.VerbCheck, game.VerbCall:
		err = engine.ActionCheckCall()
	case game.VerbBet:
		if in.Amount <= 0 {
			err = engine.ActionBetMin()
		} else {
			err = engine.ActionBet(in.Amount)
		}
	case game.VerbRaiseTo:
		if in.Amount <= 0 {
			err = engine.ActionRaiseMin()
		} else {
			err = engine.ActionRaiseTo(in.Amount)
		}
	default:
		err = engine.ActionFold()
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
