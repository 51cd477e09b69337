package agent

import "github.com/lox/holdem-core/poker"

// bestEval returns the best 5-card Evaluation found among all 5-card
// subsets of cards (which may be 5, 6 or 7 cards - i.e. hole cards plus
// whatever of the board has been dealt so far).
func bestEval(cards []poker.Card) poker.Evaluation {
	if len(cards) == 5 {
		var five [5]poker.Card
		copy(five[:], cards)
		return poker.Evaluate5(five)
	}

	combo := firstCombo()
	best := poker.Evaluate5(pick5(cards, combo))
	for nextCombo(combo, len(cards)) {
		e := poker.Evaluate5(pick5(cards, combo))
		if e.Compare(best) > 0 {
			best = e
		}
	}
	return best
}

func firstCombo() []int {
	return []int{0, 1, 2, 3, 4}
}

// nextCombo advances combo (indices into an n-element set, k=5) to the next
// lexicographic combination in place, returning false once exhausted.
func nextCombo(combo []int, n int) bool {
	k := len(combo)
	i := k - 1
	for i >= 0 && combo[i] == n-k+i {
		i--
	}
	if i < 0 {
		return false
	}
	combo[i]++
	for j := i + 1; j < k; j++ {
		combo[j] = combo[j-1] + 1
	}
	return true
}

func pick5(cards []poker.Card, idx []int) [5]poker.Card {
	var out [5]poker.Card
	for i, ix := range idx {
		out[i] = cards[ix]
	}
	return out
}

// preflopStrength scores two hole cards on a 0-1 scale using the same
// premium/strong/medium/weak/trash buckets used for human-facing display,
// nudged up slightly for suited cards.
func preflopStrength(hole poker.HoleCards) float64 {
	cat := poker.CategorizeHoleCards(hole.First(), hole.Second())
	base := map[poker.HoleCardCategory]float64{
		poker.CategoryPremium: 0.92,
		poker.CategoryStrong:  0.75,
		poker.CategoryMedium:  0.58,
		poker.CategoryWeak:    0.42,
		poker.CategoryTrash:   0.22,
		poker.CategoryUnknown: 0.3,
	}[cat]

	if hole.First().Suit == hole.Second().Suit {
		base += 0.03
	}
	return clamp01(base)
}

// preflopStrengthWithPosition widens a player's effective calling range in
// late position and narrows it from the blinds, where more players remain
// to act behind.
func preflopStrengthWithPosition(hole poker.HoleCards, pos PositionBucket) float64 {
	s := preflopStrength(hole)
	switch pos {
	case PositionButton, PositionLate:
		s += 0.05
	case PositionBlind:
		s -= 0.03
	}
	return clamp01(s)
}

// PositionBucket groups a seat's relative position at the table into a
// coarse category used for preflop range widening and postflop aggression.
type PositionBucket int

const (
	PositionBlind PositionBucket = iota
	PositionEarly
	PositionMiddle
	PositionLate
	PositionButton
)

// positionBucket classifies seat's position relative to dealer among n
// active seats. Seat 1 and 2 after the dealer are the blinds; the rest of
// the table is split evenly into early/middle/late, with the dealer itself
// treated as Button.
func positionBucket(dealer, seat, n int) PositionBucket {
	if n <= 2 {
		if seat == dealer {
			return PositionButton
		}
		return PositionBlind
	}
	rel := (seat - dealer + n) % n
	switch {
	case rel == 0:
		return PositionButton
	case rel == 1 || rel == 2:
		return PositionBlind
	default:
		third := (n - 3)
		if third <= 0 {
			return PositionLate
		}
		progress := rel - 3 // 0-based index among non-blind, non-button seats
		switch {
		case progress*3 < third:
			return PositionEarly
		case progress*3 < 2*third:
			return PositionMiddle
		default:
			return PositionLate
		}
	}
}

// positionFactor scales postflop aggression by position: later position
// plays more hands aggressively since fewer opponents remain to act.
func positionFactor(pos PositionBucket) float64 {
	switch pos {
	case PositionButton:
		return 0.12
	case PositionLate:
		return 0.07
	case PositionMiddle:
		return 0.0
	case PositionEarly:
		return -0.05
	default:
		return -0.08
	}
}

// boardTexture scores how coordinated (scary) the board is: paired or
// flush-heavy boards make one-pair and high-card hands less trustworthy.
func boardTexture(board poker.Board) float64 {
	cards := board.Cards()
	if len(cards) < 3 {
		return 0
	}

	rankCount := map[poker.Rank]int{}
	suitCount := map[poker.Suit]int{}
	for _, c := range cards {
		rankCount[c.Rank]++
		suitCount[c.Suit]++
	}

	texture := 0.0
	for _, n := range rankCount {
		if n >= 2 {
			texture += 0.12 * float64(n-1)
		}
	}
	for _, n := range suitCount {
		if n >= 3 {
			texture += 0.08 * float64(n-2)
		}
	}
	return texture
}

// drawBonus adds weight for a flush or straight draw that hasn't completed
// yet, and a small bump for holding two overcards to the board. It has no
// effect once the river is dealt, since there are no more cards to come.
func drawBonus(hole poker.HoleCards, board poker.Board) float64 {
	if board.Len() == 0 || board.Len() >= 5 {
		return 0
	}

	all := append([]poker.Card{hole.First(), hole.Second()}, board.Cards()...)

	suitCount := map[poker.Suit]int{}
	for _, c := range all {
		suitCount[c.Suit]++
	}
	bonus := 0.0
	for _, n := range suitCount {
		if n == 4 {
			bonus += 0.12
		}
	}

	var mask uint16
	for _, c := range all {
		mask |= 1 << uint(c.Rank-poker.Two)
	}
	runLen := 0
	best := 0
	for i := 0; i < 13; i++ {
		if mask&(1<<uint(i)) != 0 {
			runLen++
			if runLen > best {
				best = runLen
			}
		} else {
			runLen = 0
		}
	}
	if best == 4 {
		bonus += 0.10
	} else if best == 3 {
		bonus += 0.04
	}

	maxBoard := poker.Two
	for _, c := range board.Cards() {
		if c.Rank > maxBoard {
			maxBoard = c.Rank
		}
	}
	overcards := 0
	if hole.First().Rank > maxBoard {
		overcards++
	}
	if hole.Second().Rank > maxBoard {
		overcards++
	}
	if overcards == 2 {
		bonus += 0.05
	}

	return bonus
}

// estimateStrength blends postflop hand category (or preflop hole-card
// strength, before any board is dealt) with position, live draw potential
// and board texture into a single 0-1 confidence score.
func estimateStrength(hole poker.HoleCards, board poker.Board, pos PositionBucket) float64 {
	if board.Len() == 0 {
		return preflopStrengthWithPosition(hole, pos)
	}

	cards := append([]poker.Card{hole.First(), hole.Second()}, board.Cards()...)
	eval := bestEval(cards)

	score := float64(eval.Category()) / float64(poker.StraightFlush)
	best := eval.BestFive()
	score += (float64(best[0].Rank) - 2) / 12.0 * 0.05

	score += drawBonus(hole, board)
	score -= boardTexture(board) * (1 - score)
	score += positionFactor(pos) * 0.3

	return clamp01(score)
}
