package game

import "github.com/lox/holdem-core/poker"

// Player is one seat at the table for the current hand.
type Player struct {
	Seat   int
	Name   string
	Chips  int // chips not yet committed to the pot
	Folded bool
	AllIn  bool

	HoleCards    poker.HoleCards
	HasHoleCards bool

	Bet            int // chips committed this betting round, not yet swept into a pot
	TotalBet       int // chips committed this entire hand
	ActedThisRound bool
}

// InHand reports whether the player can still win the pot (has not folded).
func (p *Player) InHand() bool { return !p.Folded }

// CanAct reports whether the player can still take a voluntary action this
// hand (in the hand, not all-in, has chips behind).
func (p *Player) CanAct() bool {
	return !p.Folded && !p.AllIn && p.Chips > 0
}

// EffectiveStack is the chips a player has left to commit, including the
// current round's uncollected bet.
func (p *Player) EffectiveStack() int {
	return p.Chips + p.Bet
}

func (p *Player) resetForStreet() {
	p.Bet = 0
	p.ActedThisRound = false
}

func (p *Player) resetForHand() {
	p.Folded = false
	p.AllIn = false
	p.HasHoleCards = false
	p.HoleCards = poker.HoleCards{}
	p.Bet = 0
	p.TotalBet = 0
	p.ActedThisRound = false
}
