package game

import (
	"math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/holdem-core/internal/gameid"
	"github.com/lox/holdem-core/internal/randutil"
	"github.com/lox/holdem-core/poker"
)

// Game is a single-table No-Limit Hold'em state machine. One Game value is
// reused across many hands; NewHand deals the next one, rotating the
// dealer button among seats that still have chips.
type Game struct {
	players    []*Player
	smallBlind int
	bigBlind   int
	dealer     int

	deck    *poker.Deck
	board   poker.Board
	street  Street
	current int
	betting *bettingRound
	history *HandHistory
	logger  *log.Logger

	complete  bool
	lastPots  []Pot
	haveDealt bool

	rng *rand.Rand
}

type gameConfig struct {
	startChips int
	chipCounts []int
	rng        *rand.Rand
	logger     *log.Logger
}

// Option configures a Game at construction time.
type Option func(*gameConfig)

// WithUniformChips sets the same starting stack for every player. The
// default starting stack is 1000 if no chip option is given.
func WithUniformChips(chips int) Option {
	return func(c *gameConfig) {
		c.startChips = chips
		c.chipCounts = nil
	}
}

// WithChips sets individual starting stacks, one per player, in seat order.
func WithChips(chips []int) Option {
	return func(c *gameConfig) {
		c.chipCounts = chips
	}
}

// WithRNG injects a deterministic random generator, making deck shuffles
// (and therefore entire hands) reproducible. Intended for tests.
func WithRNG(rng *rand.Rand) Option {
	return func(c *gameConfig) { c.rng = rng }
}

// WithSeed is a convenience wrapper around WithRNG that derives a
// reproducible generator from an integer seed.
func WithSeed(seed int64) Option {
	return func(c *gameConfig) { c.rng = randutil.New(seed) }
}

// WithLogger overrides the structured logger used for state-transition
// diagnostics. Defaults to log.Default().
func WithLogger(logger *log.Logger) Option {
	return func(c *gameConfig) { c.logger = logger }
}

// NewGame creates a table with the given seated players and blind
// structure. It does not deal a hand; call NewHand to start play.
func NewGame(playerNames []string, smallBlind, bigBlind int, opts ...Option) *Game {
	if len(playerNames) < 2 {
		panic("game: at least 2 players required")
	}

	cfg := gameConfig{startChips: 1000, logger: log.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}

	players := make([]*Player, len(playerNames))
	for i, name := range playerNames {
		chips := cfg.startChips
		if cfg.chipCounts != nil {
			chips = cfg.chipCounts[i]
		}
		players[i] = &Player{Seat: i, Name: name, Chips: chips}
	}

	return &Game{
		players:    players,
		smallBlind: smallBlind,
		bigBlind:   bigBlind,
		dealer:     -1,
		street:     Showdown, // no hand in progress yet
		current:    -1,
		complete:   true,
		logger:     cfg.logger,
		rng:        cfg.rng,
	}
}

func (g *Game) activePlayerCount() int {
	n := 0
	for _, p := range g.players {
		if p.Chips > 0 {
			n++
		}
	}
	return n
}

func (g *Game) nextNonBusted(from int) int {
	n := len(g.players)
	for i := 1; i <= n; i++ {
		seat := (from + i) % n
		if g.players[seat].Chips > 0 {
			return seat
		}
	}
	return from
}

// nextActive returns the next seat after from (clockwise) that is still in
// the hand and not all-in, or -1 if none.
func (g *Game) nextActive(from int) int {
	n := len(g.players)
	for i := 1; i <= n; i++ {
		seat := (from + i) % n
		p := g.players[seat]
		if p.InHand() && !p.AllIn {
			return seat
		}
	}
	return -1
}

func (g *Game) nonFoldedCount() int {
	n := 0
	for _, p := range g.players {
		if p.InHand() {
			n++
		}
	}
	return n
}

func (g *Game) activeCanActCount() int {
	n := 0
	for _, p := range g.players {
		if p.InHand() && !p.AllIn {
			n++
		}
	}
	return n
}

// NewHand starts a new hand: rotates the dealer button to the next seat
// with chips, shuffles a fresh deck, posts blinds, deals hole cards and
// sets the first player to act. Players with zero chips sit out.
func (g *Game) NewHand() {
	if g.activePlayerCount() < 2 {
		panic("game: at least 2 players with chips required to start a hand")
	}

	for _, p := range g.players {
		p.resetForHand()
		if p.Chips <= 0 {
			p.Folded = true // busted players sit out this hand
		}
	}

	if g.dealer < 0 {
		g.dealer = 0
		if g.players[0].Chips <= 0 {
			g.dealer = g.nextNonBusted(0)
		}
	} else {
		g.dealer = g.nextNonBusted(g.dealer)
	}

	if g.rng != nil {
		g.deck = poker.NewDeck(g.rng)
	} else {
		g.deck = poker.NewDeck(nil)
	}
	g.board = poker.Board{}
	g.street = Preflop
	g.complete = false
	g.lastPots = nil
	g.history = newHandHistory(gameid.Generate(), g.dealer)

	participants := make([]int, 0, len(g.players))
	for _, p := range g.players {
		if p.Chips > 0 {
			participants = append(participants, p.Seat)
		}
	}
	headsUp := len(participants) == 2

	g.postBlinds(headsUp)
	g.dealHoleCards(participants)

	n := len(g.players)
	if headsUp {
		g.current = g.dealer
	} else {
		g.current = g.nextActive((g.dealer + 2) % n)
	}
}

func (g *Game) postBlinds(headsUp bool) {
	var sbSeat, bbSeat int
	if headsUp {
		sbSeat = g.dealer
		bbSeat = g.nextNonBusted(g.dealer)
	} else {
		sbSeat = g.nextNonBusted(g.dealer)
		bbSeat = g.nextNonBusted(sbSeat)
	}

	sbAmount := g.postForced(sbSeat, g.smallBlind)
	g.history.record(sbSeat, VerbSmallBlind, sbAmount, Preflop, "")

	bbAmount := g.postForced(bbSeat, g.bigBlind)
	g.history.record(bbSeat, VerbBigBlind, bbAmount, Preflop, "")

	// The short-all-in rule: if the big blind could not post the full
	// nominal amount, the minimum raise for the preflop round is based on
	// what was actually posted, not the nominal big blind. Later streets
	// reset it to the big blind (see advanceStreet).
	g.betting = newBettingRound(bbAmount, bbSeat)
	g.betting.currentBet = bbAmount
}

func (g *Game) postForced(seat, amount int) int {
	p := g.players[seat]
	posted := amount
	if posted > p.Chips {
		posted = p.Chips
	}
	p.Chips -= posted
	p.Bet += posted
	p.TotalBet += posted
	if p.Chips == 0 {
		p.AllIn = true
	}
	return posted
}

func (g *Game) dealHoleCards(participants []int) {
	for _, seat := range participants {
		p := g.players[seat]
		a := g.deck.DealOne()
		b := g.deck.DealOne()
		hole, _ := poker.NewHoleCards(a, b)
		p.HoleCards = hole
		p.HasHoleCards = true
	}
}
