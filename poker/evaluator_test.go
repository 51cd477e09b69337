package poker

import "testing"

func mustCards(t *testing.T, s string) []Card {
	t.Helper()
	cards, err := ParseCards(s)
	if err != nil {
		t.Fatalf("ParseCards(%q): %v", s, err)
	}
	return cards
}

func eval5(t *testing.T, s string) Evaluation {
	t.Helper()
	cards := mustCards(t, s)
	if len(cards) != 5 {
		t.Fatalf("expected 5 cards, got %d", len(cards))
	}
	var five [5]Card
	copy(five[:], cards)
	return Evaluate5(five)
}

func TestEvaluate5Categories(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		hand string
		want Category
	}{
		{"royal flush", "As Ks Qs Js Ts", StraightFlush},
		{"straight flush wheel", "5h 4h 3h 2h Ah", StraightFlush},
		{"quads", "Ah As Ac Ad Kh", FourOfAKind},
		{"full house", "Kh Ks Kc Qd Qh", FullHouse},
		{"flush", "2h 5h 9h Jh Kh", Flush},
		{"straight", "9c Th Js Qd Kh", Straight},
		{"wheel straight", "Ac 2h 3s 4d 5c", Straight},
		{"trips", "7h 7s 7c Kd 2h", ThreeOfAKind},
		{"two pair", "Jh Js 4c 4d 9h", TwoPair},
		{"pair", "9h 9s Kd 4c 2h", Pair},
		{"high card", "2h 5s 9d Jc Ah", HighCard},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := eval5(t, tc.hand)
			if got.Category() != tc.want {
				t.Errorf("Evaluate5(%s).Category() = %s, want %s", tc.hand, got.Category(), tc.want)
			}
			if got.Value().Category() != tc.want {
				t.Errorf("Evaluate5(%s).Value().Category() = %s, want %s", tc.hand, got.Value().Category(), tc.want)
			}
		})
	}
}

func TestEvaluate5StraightOrdering(t *testing.T) {
	t.Parallel()
	wheel := eval5(t, "Ac 2h 3s 4d 5c")
	sixHigh := eval5(t, "2c 3h 4s 5d 6c")
	broadway := eval5(t, "Tc Jh Qs Kd Ac")

	if !wheel.Less(sixHigh) {
		t.Error("wheel straight should rank below a six-high straight")
	}
	if !sixHigh.Less(broadway) {
		t.Error("six-high straight should rank below broadway")
	}
}

func TestEvaluate5FlushKickerOrdering(t *testing.T) {
	t.Parallel()
	lowFlush := eval5(t, "2h 4h 7h 9h Jh")
	highFlush := eval5(t, "2h 4h 7h 9h Kh")

	if !lowFlush.Less(highFlush) {
		t.Error("jack-high flush should rank below king-high flush")
	}
}

func TestEvaluate5Antisymmetry(t *testing.T) {
	t.Parallel()
	a := eval5(t, "Ah As Ac Ad Kh")
	b := eval5(t, "Kh Ks Kc Kd Ah")

	if !(a.Compare(b) > 0 && b.Compare(a) < 0) {
		t.Error("Compare should be antisymmetric")
	}
	if a.Compare(a) != 0 {
		t.Error("Compare(self) should be 0")
	}
}

func TestEvaluate7Optimality(t *testing.T) {
	t.Parallel()
	cards := mustCards(t, "As Ks Qs Js Ts 2c 3d")
	eval, err := Evaluate7(cards)
	if err != nil {
		t.Fatalf("Evaluate7: %v", err)
	}
	if eval.Category() != StraightFlush {
		t.Fatalf("expected royal flush to be found among 7 cards, got %s", eval.Category())
	}
}

func TestEvaluate7PicksBestOfAllSubsets(t *testing.T) {
	t.Parallel()
	// No five of these cards make a straight or flush; the best subset is trip sevens.
	cards := mustCards(t, "7c 7d 7h 8s 9c 2h 3d")
	eval, err := Evaluate7(cards)
	if err != nil {
		t.Fatalf("Evaluate7: %v", err)
	}
	if eval.Category() != ThreeOfAKind {
		t.Errorf("expected trips to beat the lower-priority subsets, got %s", eval.Category())
	}
}

func TestEvaluate7NotEnoughCards(t *testing.T) {
	t.Parallel()
	_, err := Evaluate7(mustCards(t, "As Ks Qs"))
	if err == nil {
		t.Fatal("expected an error for fewer than 7 cards")
	}
}

func TestEvaluateHoleAndBoard(t *testing.T) {
	t.Parallel()
	hole, err := NewHoleCards(Card{Ace, Spades}, Card{Ace, Hearts})
	if err != nil {
		t.Fatalf("NewHoleCards: %v", err)
	}
	board, err := NewBoard(mustCards(t, "Ac Ad Kc 2h 3s"))
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	eval, err := EvaluateHoleAndBoard(hole, board)
	if err != nil {
		t.Fatalf("EvaluateHoleAndBoard: %v", err)
	}
	if eval.Category() != FourOfAKind {
		t.Errorf("expected quads, got %s", eval.Category())
	}
}
