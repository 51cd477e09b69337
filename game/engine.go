package game

import "github.com/lox/holdem-core/poker"

// GameEngine is the narrow capability surface a driver (a human-intent
// adapter or an Agent) needs to play a hand: the action verbs and the
// queries required to decide between them. It exists so agents and other
// callers can depend on this interface instead of the concrete *Game,
// keeping them decoupled from state-machine internals.
type GameEngine interface {
	ActionFold() error
	ActionCheckCall() error
	ActionBetMin() error
	ActionBet(amount int) error
	ActionRaiseMin() error
	ActionRaiseTo(amount int) error

	ToCall(seat int) int
	CurrentBet() int
	MinRaise() int
	Pot() int
	HoleCards(seat int) (poker.HoleCards, bool)
	Board() poker.Board
	Stack(seat int) int
	Bet(seat int) int
	Current() int
	Dealer() int
	Street() Street
	NumPlayers() int
}

var _ GameEngine = (*Game)(nil)

// ToCall returns how many more chips seat would need to commit to call
// the current bet.
func (g *Game) ToCall(seat int) int {
	p := g.players[seat]
	toCall := g.betting.currentBet - p.Bet
	if toCall < 0 {
		return 0
	}
	return toCall
}

// CurrentBet returns the bet amount active players must match this street.
func (g *Game) CurrentBet() int { return g.betting.currentBet }

// MinRaise returns the minimum legal raise increment right now.
func (g *Game) MinRaise() int { return g.betting.minRaise }

// Pot returns the total chips committed so far this hand, across all
// streets, including whatever has not yet been swept into a named pot.
func (g *Game) Pot() int {
	total := 0
	for _, p := range g.players {
		total += p.TotalBet
	}
	return total
}

// PotBreakdown returns the main and side pots as they stand right now,
// computed from each player's total contribution this hand.
func (g *Game) PotBreakdown() []Pot {
	if g.complete {
		return g.lastPots
	}
	return buildPots(g.players)
}

// HoleCards returns seat's hole cards, if any have been dealt.
func (g *Game) HoleCards(seat int) (poker.HoleCards, bool) {
	p := g.players[seat]
	return p.HoleCards, p.HasHoleCards
}

// Board returns the community cards dealt so far.
func (g *Game) Board() poker.Board { return g.board }

// Stack returns seat's chips not yet committed to the pot.
func (g *Game) Stack(seat int) int { return g.players[seat].Chips }

// Bet returns how much seat has committed this betting round.
func (g *Game) Bet(seat int) int { return g.players[seat].Bet }

// Current returns the seat to act, or -1 if the hand is not waiting on an
// action (hand not started, or already resolved).
func (g *Game) Current() int { return g.current }

// Dealer returns the current hand's dealer/button seat.
func (g *Game) Dealer() int { return g.dealer }

// Street returns the current betting round.
func (g *Game) Street() Street { return g.street }

// NumPlayers returns the number of seats at the table.
func (g *Game) NumPlayers() int { return len(g.players) }

// IsComplete reports whether the current hand has finished (showdown or
// everyone but one folded).
func (g *Game) IsComplete() bool { return g.complete }

// History returns the append-only record of the current (or just-finished)
// hand.
func (g *Game) History() *HandHistory { return g.history }

// Player exposes a read-only view of seat's player state.
func (g *Game) Player(seat int) *Player { return g.players[seat] }
