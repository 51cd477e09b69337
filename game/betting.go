package game

// bettingRound tracks the state needed to decide when a betting round is
// complete and what the legal raise sizes are.
type bettingRound struct {
	currentBet int
	minRaise   int // size of the last full raise; also the minimum increment for the next one
	lastRaiser int // seat of the last player who made a full (reopening) raise, -1 if none
	bbSeat     int // seat of the big blind, for the preflop option rule
	bbActed    bool
}

func newBettingRound(bigBlindAmount, bbSeat int) *bettingRound {
	return &bettingRound{
		currentBet: 0,
		minRaise:   bigBlindAmount,
		lastRaiser: -1,
		bbSeat:     bbSeat,
	}
}

// resetForStreet clears per-street betting state. bbActed is intentionally
// not touched here; it only matters preflop and is set when the big blind
// checks or calls during the preflop round.
func (b *bettingRound) resetForStreet() {
	b.currentBet = 0
	b.minRaise = 0
	b.lastRaiser = -1
}

// applyFullRaise records a raise that increases the bet by at least
// minRaise, which reopens the action for every other active player.
func (b *bettingRound) applyFullRaise(seat, newBet int) {
	increment := newBet - b.currentBet
	b.currentBet = newBet
	b.minRaise = increment
	b.lastRaiser = seat
}

// applyShortAllInRaise records an all-in wager that raises the current bet
// by less than a full minRaise. It updates currentBet (players behind must
// still call the new, higher amount to stay in) but does not reopen the
// action for players who already matched the previous bet: per the
// short-all-in rule, minRaise keeps its prior value so a subsequent full
// raise must still be at least as large as the last genuine raise.
func (b *bettingRound) applyShortAllInRaise(newBet int) {
	if newBet > b.currentBet {
		b.currentBet = newBet
	}
}

// isFullRaise reports whether a wager to newBet from the current bet meets
// or exceeds the minimum raise increment.
func (b *bettingRound) isFullRaise(newBet int) bool {
	return newBet-b.currentBet >= b.minRaise
}

// roundComplete reports whether betting on the current street is over:
// every player still in the hand has either folded, gone all-in, or acted
// and matched the current bet - with the single exception of the preflop
// big blind option, which must get a chance to act even if everyone else
// has called the nominal big blind and no one has raised.
func roundComplete(players []*Player, street Street, bb *bettingRound) bool {
	active := 0
	for _, p := range players {
		if p.InHand() && !p.AllIn {
			active++
		}
	}
	if active == 0 {
		return true
	}

	for _, p := range players {
		if !p.InHand() || p.AllIn {
			continue
		}
		if !p.ActedThisRound || p.Bet != bb.currentBet {
			return false
		}
	}

	if street == Preflop && bb.lastRaiser == -1 && !bb.bbActed {
		for _, p := range players {
			if p.Seat == bb.bbSeat && p.InHand() && !p.AllIn {
				return false
			}
		}
	}

	return true
}
