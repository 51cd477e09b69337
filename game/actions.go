package game

// currentPlayer returns the player to act, or nil if the hand is complete.
func (g *Game) currentPlayer() *Player {
	if g.complete || g.current < 0 {
		return nil
	}
	return g.players[g.current]
}

func (g *Game) requireActing() (*Player, error) {
	if g.complete {
		return nil, &ActionError{Kind: ErrShowdown}
	}
	p := g.currentPlayer()
	if p == nil || !p.CanAct() {
		return nil, &ActionError{Kind: ErrPlayerNotActive}
	}
	return p, nil
}

// ActionFold folds the player to act out of the hand.
func (g *Game) ActionFold() error {
	p, err := g.requireActing()
	if err != nil {
		return err
	}
	p.Folded = true
	p.ActedThisRound = true
	g.history.record(p.Seat, VerbFold, 0, g.street, "")

	if g.nonFoldedCount() <= 1 {
		g.resolveUncontested()
		return nil
	}
	g.advanceAfterAction()
	return nil
}

// ActionCheckCall checks if there is nothing to call, otherwise calls the
// current bet (for less, if the player must go all-in to do so).
func (g *Game) ActionCheckCall() error {
	p, err := g.requireActing()
	if err != nil {
		return err
	}

	toCall := g.betting.currentBet - p.Bet
	if toCall <= 0 {
		p.ActedThisRound = true
		g.history.record(p.Seat, VerbCheck, 0, g.street, "")
	} else {
		amount := toCall
		if amount > p.Chips {
			amount = p.Chips
		}
		p.Chips -= amount
		p.Bet += amount
		p.TotalBet += amount
		if p.Chips == 0 {
			p.AllIn = true
		}
		p.ActedThisRound = true
		g.history.record(p.Seat, VerbCall, amount, g.street, "")
	}

	if p.Seat == g.betting.bbSeat && g.street == Preflop {
		g.betting.bbActed = true
	}

	g.advanceAfterAction()
	return nil
}

// ActionBetMin opens the betting for the minimum legal size: the big
// blind, or the player's whole stack if shorter.
func (g *Game) ActionBetMin() error {
	p, err := g.requireActing()
	if err != nil {
		return err
	}
	amount := g.bigBlind
	if amount > p.Chips {
		amount = p.Chips
	}
	return g.actionBet(p, amount)
}

// ActionBet opens the betting to the given total size.
func (g *Game) ActionBet(amount int) error {
	p, err := g.requireActing()
	if err != nil {
		return err
	}
	return g.actionBet(p, amount)
}

func (g *Game) actionBet(p *Player, amount int) error {
	if g.betting.currentBet != 0 {
		return &ActionError{Kind: ErrBetNotAllowed}
	}
	allIn := amount >= p.Chips
	if allIn {
		amount = p.Chips
	} else if amount < g.bigBlind {
		return &ActionError{Kind: ErrAmountTooSmall, Min: g.bigBlind, Got: amount}
	}

	p.Chips -= amount
	p.Bet += amount
	p.TotalBet += amount
	if p.Chips == 0 {
		p.AllIn = true
	}
	p.ActedThisRound = true

	g.betting.applyFullRaise(p.Seat, amount)
	g.reopenActionExcept(p.Seat)

	g.history.record(p.Seat, VerbBet, amount, g.street, "")
	g.advanceAfterAction()
	return nil
}

// ActionRaiseMin raises to the minimum legal size above the current bet.
func (g *Game) ActionRaiseMin() error {
	p, err := g.requireActing()
	if err != nil {
		return err
	}
	target := g.betting.currentBet + g.betting.minRaise
	return g.actionRaiseTo(p, target)
}

// ActionRaiseTo raises the total bet to the given amount.
func (g *Game) ActionRaiseTo(amount int) error {
	p, err := g.requireActing()
	if err != nil {
		return err
	}
	return g.actionRaiseTo(p, amount)
}

func (g *Game) actionRaiseTo(p *Player, amount int) error {
	if g.betting.currentBet == 0 {
		return &ActionError{Kind: ErrRaiseNotAllowed}
	}
	if amount <= g.betting.currentBet {
		return &ActionError{Kind: ErrTargetTooLow, Current: g.betting.currentBet, Target: amount}
	}

	maxAmount := p.Bet + p.Chips
	allIn := amount >= maxAmount
	if allIn {
		amount = maxAmount
	} else if !g.betting.isFullRaise(amount) {
		return &ActionError{
			Kind: ErrAmountTooSmall,
			Min:  g.betting.currentBet + g.betting.minRaise,
			Got:  amount,
		}
	}

	contribution := amount - p.Bet
	p.Chips -= contribution
	p.Bet = amount
	p.TotalBet += contribution
	p.ActedThisRound = true

	if allIn {
		p.AllIn = true
		if g.betting.isFullRaise(amount) {
			g.betting.applyFullRaise(p.Seat, amount)
			g.reopenActionExcept(p.Seat)
		} else {
			g.betting.applyShortAllInRaise(amount)
		}
	} else {
		g.betting.applyFullRaise(p.Seat, amount)
		g.reopenActionExcept(p.Seat)
	}

	g.history.record(p.Seat, VerbRaiseTo, amount, g.street, "")
	g.advanceAfterAction()
	return nil
}

// reopenActionExcept clears ActedThisRound for every other player still in
// the hand, since a full raise reopens the action for everyone behind it.
func (g *Game) reopenActionExcept(seat int) {
	for _, p := range g.players {
		if p.Seat == seat {
			continue
		}
		if p.InHand() && !p.AllIn {
			p.ActedThisRound = false
		}
	}
}

func (g *Game) advanceAfterAction() {
	if g.complete {
		return
	}
	if roundComplete(g.players, g.street, g.betting) {
		g.advanceStreet()
		return
	}
	next := g.nextActive(g.current)
	g.current = next
}

// advanceStreet deals the next street (or goes to showdown from the
// river), resetting per-street betting state. If fewer than two players
// can still act voluntarily, it keeps advancing automatically - the
// forced all-in run-out - until the board is complete.
func (g *Game) advanceStreet() {
	if g.nonFoldedCount() <= 1 {
		g.resolveUncontested()
		return
	}
	if g.street == River {
		if err := g.resolveShowdown(); err != nil {
			g.logger.Warn("showdown resolution failed", "error", err)
		}
		return
	}

	g.dealStreetCards()
	g.street++
	for _, p := range g.players {
		p.resetForStreet()
	}
	g.betting.resetForStreet()
	g.betting.minRaise = g.bigBlind

	if g.activeCanActCount() <= 1 {
		g.advanceStreet()
		return
	}

	g.current = g.nextActive(g.dealer)
}

func (g *Game) dealStreetCards() {
	switch g.street {
	case Preflop:
		for _, c := range g.deck.Deal(3) {
			g.board, _ = g.board.WithCard(c)
		}
	case Flop, Turn:
		g.board, _ = g.board.WithCard(g.deck.DealOne())
	}
}
