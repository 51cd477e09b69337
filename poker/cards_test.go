package poker

import (
	"math/rand/v2"
	"testing"
)

func TestCardCreation(t *testing.T) {
	t.Parallel()
	aceSpades := Card{Rank: Ace, Suit: Spades}
	if aceSpades.Rank != Ace {
		t.Errorf("Expected rank Ace, got %v", aceSpades.Rank)
	}
	if aceSpades.Suit != Spades {
		t.Errorf("Expected suit Spades, got %v", aceSpades.Suit)
	}
	if aceSpades.String() != "As" {
		t.Errorf("Expected 'As', got %s", aceSpades.String())
	}

	twoClubs := Card{Rank: Two, Suit: Clubs}
	if twoClubs.String() != "2c" {
		t.Errorf("Expected '2c', got %s", twoClubs.String())
	}
}

func TestParseCard(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		wantCard Card
		wantErr  bool
	}{
		{"ace of spades", "As", Card{Ace, Spades}, false},
		{"two of hearts", "2h", Card{Two, Hearts}, false},
		{"king of diamonds", "Kd", Card{King, Diamonds}, false},
		{"ten of clubs", "Tc", Card{Ten, Clubs}, false},
		{"nine of spades", "9s", Card{Nine, Spades}, false},
		{"invalid rank", "Xs", Card{}, true},
		{"invalid suit", "Ax", Card{}, true},
		{"empty string", "", Card{}, true},
		{"too short", "A", Card{}, true},
		{"too long", "Asd", Card{}, true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			card, err := ParseCard(tc.input)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseCard(%q) err = %v, wantErr %v", tc.input, err, tc.wantErr)
			}
			if !tc.wantErr && card != tc.wantCard {
				t.Errorf("ParseCard(%q) = %v, want %v", tc.input, card, tc.wantCard)
			}
		})
	}
}

func TestAll52Cards(t *testing.T) {
	t.Parallel()
	seen := make(map[string]bool)

	for suit := Suit(0); suit < 4; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			card := Card{Rank: rank, Suit: suit}
			str := card.String()

			if seen[str] {
				t.Errorf("duplicate card: %s", str)
			}
			seen[str] = true

			parsed, err := ParseCard(str)
			if err != nil {
				t.Errorf("failed to parse %s: %v", str, err)
			}
			if parsed != card {
				t.Errorf("round-trip failed for %s", str)
			}
		}
	}

	if len(seen) != 52 {
		t.Errorf("expected 52 unique cards, got %d", len(seen))
	}
}

func TestParseCards(t *testing.T) {
	t.Parallel()
	cards, err := ParseCards("As, Kh Qd")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Card{{Ace, Spades}, {King, Hearts}, {Queen, Diamonds}}
	if len(cards) != len(want) {
		t.Fatalf("expected %d cards, got %d", len(want), len(cards))
	}
	for i := range want {
		if cards[i] != want[i] {
			t.Errorf("card %d = %v, want %v", i, cards[i], want[i])
		}
	}
}

func TestDeck(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewPCG(1, 2))
	deck := NewDeck(rng)

	cards1 := deck.Deal(2)
	if len(cards1) != 2 {
		t.Errorf("expected 2 cards, got %d", len(cards1))
	}

	cards2 := deck.Deal(3)
	if len(cards2) != 3 {
		t.Errorf("expected 3 cards, got %d", len(cards2))
	}

	for _, c1 := range cards1 {
		for _, c2 := range cards2 {
			if c1 == c2 {
				t.Error("dealt same card twice")
			}
		}
	}

	remaining := deck.Deal(47)
	if len(remaining) != 47 {
		t.Errorf("expected 47 remaining cards, got %d", len(remaining))
	}

	if extra := deck.Deal(1); extra != nil {
		t.Error("should not be able to deal from empty deck")
	}

	deck.Reset()
	newCards := deck.Deal(2)
	if len(newCards) != 2 {
		t.Error("should be able to deal after reset")
	}
}

func TestDeckSeededReproducible(t *testing.T) {
	t.Parallel()
	a := NewDeckSeeded(42)
	b := NewDeckSeeded(42)

	for i := 0; i < 52; i++ {
		ca, cb := a.DealOne(), b.DealOne()
		if ca != cb {
			t.Fatalf("seeded decks diverged at card %d: %v != %v", i, ca, cb)
		}
	}
}

func BenchmarkCardString(b *testing.B) {
	card := Card{Ace, Spades}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = card.String()
	}
}

func BenchmarkParseCard(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = ParseCard("As")
	}
}
