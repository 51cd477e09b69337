package game

import "github.com/lox/holdem-core/poker"

// resolveUncontested awards every pot to the single player left in the
// hand after everyone else folded, without revealing hands or dealing out
// the rest of the board.
func (g *Game) resolveUncontested() {
	pots := buildPots(g.players)
	g.lastPots = pots

	var winner *Player
	for _, p := range g.players {
		if p.InHand() {
			winner = p
			break
		}
	}
	if winner != nil {
		total := 0
		for _, pot := range pots {
			total += pot.Amount
		}
		winner.Chips += total
		g.history.record(winner.Seat, VerbWin, total, g.street, "")
	}

	g.finish()
}

// resolveShowdown evaluates every contender's best seven-card hand and
// splits each pot among its winners, handing any odd chip to the eligible
// seat closest to the left of the dealer.
func (g *Game) resolveShowdown() error {
	g.street = Showdown
	pots := buildPots(g.players)
	g.lastPots = pots

	evals := make(map[int]poker.Evaluation)
	for _, p := range g.players {
		if !p.InHand() {
			continue
		}
		eval, err := poker.EvaluateHoleAndBoard(p.HoleCards, g.board)
		if err != nil {
			return &ShowdownError{Kind: ErrEvaluationFailed, Err: err}
		}
		evals[p.Seat] = eval
	}

	for _, pot := range pots {
		if len(pot.Eligible) == 0 {
			return &ShowdownError{Kind: ErrInvalidState}
		}
		winners := bestSeats(pot.Eligible, evals)
		g.awardPot(pot, winners)
	}

	g.finish()
	return nil
}

// bestSeats returns the subset of seats whose evaluation ties for best.
func bestSeats(eligible []int, evals map[int]poker.Evaluation) []int {
	var best poker.Evaluation
	haveBest := false
	for _, seat := range eligible {
		e := evals[seat]
		if !haveBest || e.Compare(best) > 0 {
			best = e
			haveBest = true
		}
	}
	var winners []int
	for _, seat := range eligible {
		if evals[seat].Compare(best) == 0 {
			winners = append(winners, seat)
		}
	}
	return winners
}

func (g *Game) awardPot(pot Pot, winners []int) {
	if len(winners) == 1 {
		seat := winners[0]
		g.players[seat].Chips += pot.Amount
		g.history.record(seat, VerbWin, pot.Amount, Showdown, "")
		return
	}

	share := pot.Amount / len(winners)
	remainder := pot.Amount % len(winners)

	order := distributionOrder(winners, g.dealer, len(g.players))
	for i, seat := range order {
		amount := share
		if i < remainder {
			amount++
		}
		g.players[seat].Chips += amount
		g.history.record(seat, VerbSplit, amount, Showdown, "")
	}
}

func (g *Game) finish() {
	g.complete = true
	g.current = -1
}
