package game

import "sort"

// Pot is one main or side pot: an amount and the seats eligible to win it.
// A pot's eligible list always comes from TotalBet levels, so it only ever
// contains players who have not folded.
type Pot struct {
	Amount   int
	Eligible []int
}

// buildPots partitions all chips committed this hand into a main pot and
// zero or more side pots, one per distinct positive contribution level L1 <
// L2 < ... < Lk across all players, folded ones included (levels whose pot
// would have no eligible seat are skipped). For level i, the
// pot collects (L_i - L_{i-1}) from every player whose TotalBet reached at
// least L_i, and is contestable only by players who did not fold and whose
// TotalBet reached at least L_i.
func buildPots(players []*Player) []Pot {
	levelSet := make(map[int]bool)
	for _, p := range players {
		if p.TotalBet > 0 {
			levelSet[p.TotalBet] = true
		}
	}
	levels := make([]int, 0, len(levelSet))
	for l := range levelSet {
		levels = append(levels, l)
	}
	sort.Ints(levels)

	var pots []Pot
	previous := 0
	for _, level := range levels {
		amount := 0
		var eligible []int
		for _, p := range players {
			contribution := p.TotalBet - previous
			if contribution > level-previous {
				contribution = level - previous
			}
			if contribution > 0 {
				amount += contribution
			}
			if !p.Folded && p.TotalBet >= level {
				eligible = append(eligible, p.Seat)
			}
		}
		if amount > 0 && len(eligible) > 0 {
			pots = append(pots, Pot{Amount: amount, Eligible: eligible})
		}
		previous = level
	}

	return pots
}

// distributionOrder returns eligible seats ordered starting immediately to
// the left of the dealer and proceeding clockwise, the order in which odd
// chips from a split pot are handed out (the seat closest to the dealer's
// left gets the first extra chip).
func distributionOrder(eligible []int, dealer, numPlayers int) []int {
	ordered := make([]int, len(eligible))
	copy(ordered, eligible)
	sort.Slice(ordered, func(i, j int) bool {
		di := (ordered[i] - dealer - 1 + numPlayers) % numPlayers
		dj := (ordered[j] - dealer - 1 + numPlayers) % numPlayers
		return di < dj
	})
	return ordered
}
