// Package agent provides pluggable decision-makers for a game.Game: a
// human-intent adapter and a tunable reference bot.
package agent

import "github.com/lox/holdem-core/game"

// Decision is a single action an Agent wants to take, with an optional
// human-readable explanation (populated by BotAgent, empty for humans).
type Decision struct {
	Verb      game.ActionVerb
	Amount    int
	Reasoning string
}

// Agent decides what a seat should do on its turn. OnTurn returns false
// when the agent has nothing to do yet (e.g. a bot still waiting out its
// thinking delay, or a human whose input hasn't arrived) without it being
// an error; the caller should poll again later.
type Agent interface {
	OnTurn(engine game.GameEngine, seat int) (acted bool, err error)
}
