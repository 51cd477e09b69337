package game

// HistoryEntry is one append-only record of something that happened
// during a hand: a blind posting, a voluntary action, or a showdown
// result.
type HistoryEntry struct {
	Seat      int
	Verb      ActionVerb
	Amount    int // meaningful for blinds, Call, Bet, RaiseTo, Win, Split; 0 otherwise
	Street    Street
	Reasoning string // free-text explanation; the Game's action methods always record it empty
}

// HandHistory is the append-only record of everything that happened
// during one hand, identified by a short human-readable ID.
type HandHistory struct {
	ID      string
	Dealer  int
	Entries []HistoryEntry
}

func newHandHistory(id string, dealer int) *HandHistory {
	return &HandHistory{ID: id, Dealer: dealer}
}

func (h *HandHistory) record(seat int, verb ActionVerb, amount int, street Street, reasoning string) {
	h.Entries = append(h.Entries, HistoryEntry{
		Seat:      seat,
		Verb:      verb,
		Amount:    amount,
		Street:    street,
		Reasoning: reasoning,
	})
}
