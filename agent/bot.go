package agent

import (
	"time"

	"github.com/coder/quartz"

	"github.com/lox/holdem-core/game"
)

// BotAgent drives a seat using a BotPolicy, gated by a simulated "thinking"
// delay so bots don't act instantly. It holds per-seat state (tilt drift,
// the RNG) across hands.
type BotAgent struct {
	profile  BotProfile
	policy   BotPolicy
	clock    quartz.Clock
	state    botState
	deadline time.Time
	waiting  bool
}

type botState struct {
	tiltDrift  float64
	lastStreet game.Street
	rng        *randSource
}

// NewBotAgent builds a bot seat with the given profile and difficulty tier,
// using the real wall clock for its thinking delay.
func NewBotAgent(profile BotProfile, difficulty Difficulty, seed int64) *BotAgent {
	return NewBotAgentWithClock(profile, difficulty, seed, quartz.NewReal())
}

// NewBotAgentWithClock is NewBotAgent with an injectable clock, for
// deterministic tests of the thinking-delay gate.
func NewBotAgentWithClock(profile BotProfile, difficulty Difficulty, seed int64, clock quartz.Clock) *BotAgent {
	return &BotAgent{
		profile: profile,
		policy:  BotPolicy{Difficulty: difficulty},
		clock:   clock,
		state:   botState{rng: newRandSource(seed)},
	}
}

// NotifyHandResult updates the bot's tilt drift after a hand concludes.
// Callers running the hand loop should call this once per finished hand so
// losing streaks are reflected in the next hand's strength perception.
func (b *BotAgent) NotifyHandResult(wonPot bool) {
	applyTilt(&b.state, b.profile, !wonPot)
}

// OnTurn waits out the bot's simulated thinking delay before deciding, so
// callers polling once per tick see acted=false until the delay elapses.
func (b *BotAgent) OnTurn(engine game.GameEngine, seat int) (bool, error) {
	now := b.clock.Now()
	if !b.waiting {
		b.deadline = now.Add(b.policy.chooseDelay(b.profile, b.state.rng))
		b.waiting = true
		return false, nil
	}
	if now.Before(b.deadline) {
		return false, nil
	}
	b.waiting = false

	decision := b.policy.Decide(engine, seat, b.profile, &b.state)
	if err := apply(engine, decision); err != nil {
		return false, err
	}
	return true, nil
}

func apply(engine game.GameEngine, d Decision) error {
	switch d.Verb {
	case game.VerbFold:
		return engine.ActionFold()
	case game.VerbCheck, game.VerbCall:
		return engine.ActionCheckCall()
	case game.VerbBet:
		if d.Amount <= 0 {
			return engine.ActionBetMin()
		}
		return engine.ActionBet(d.Amount)
	case game.VerbRaiseTo:
		if d.Amount <= 0 {
			return engine.ActionRaiseMin()
		}
		return engine.ActionRaiseTo(d.Amount)
	default:
		return engine.ActionFold()
	}
}

// BotPolicy is the pure decision function behind BotAgent: given the
// current engine state, a profile and accumulated tilt, it picks an
// action. It holds no state of its own so it's trivially testable.
type BotPolicy struct {
	Difficulty Difficulty
}

// checkedActionConfig parameterizes the two near-identical decision shapes
// (facing a bet, or first to act with nothing to call) so both share one
// fold/call-or-check/raise skeleton instead of duplicating it.
type checkedActionConfig struct {
	passiveVerb   game.ActionVerb // VerbCheck or VerbCall
	foldThreshold float64
	raiseThreshold float64
	chooseTarget  func(strength float64, engine game.GameEngine, seat int) int
}

// Decide picks the bot's action for seat. It estimates hand strength,
// applies difficulty modifiers and tilt, adds noise, and compares against
// fold/raise thresholds to choose between folding, checking/calling and
// betting/raising.
func (pol BotPolicy) Decide(engine game.GameEngine, seat int, profile BotProfile, st *botState) Decision {
	if st.lastStreet != engine.Street() {
		st.lastStreet = engine.Street()
	}

	hole, _ := engine.HoleCards(seat)
	board := engine.Board()
	pos := positionBucket(engine.Dealer(), seat, engine.NumPlayers())

	strength := estimateStrength(hole, board, pos)
	strength = clamp01(strength + st.tiltDrift)

	tight, aggr, noise := pol.Difficulty.modifiers()
	tightness := clamp01(profile.Tightness + tight)
	aggression := clamp01(profile.Aggression + aggr)
	noiseAmp := clamp01(0.08 + noise)

	strength = clamp01(strength + (st.rng.Float64()*2-1)*noiseAmp)

	toCall := engine.ToCall(seat)

	if toCall > 0 {
		return pol.decideFacingBet(engine, seat, strength, tightness, aggression, profile, st)
	}
	return pol.decideWhenChecked(engine, seat, strength, tightness, aggression, profile, st)
}

func (pol BotPolicy) decideFacingBet(engine game.GameEngine, seat int, strength, tightness, aggression float64, profile BotProfile, st *botState) Decision {
	cfg := checkedActionConfig{
		passiveVerb:    game.VerbCall,
		foldThreshold:  0.22 + tightness*0.35,
		raiseThreshold: 0.62 + (1-aggression)*0.2,
		chooseTarget:   chooseRaiseTarget,
	}
	return pol.decideWithConfig(engine, seat, strength, profile, st, cfg)
}

func (pol BotPolicy) decideWhenChecked(engine game.GameEngine, seat int, strength, tightness, aggression float64, profile BotProfile, st *botState) Decision {
	cfg := checkedActionConfig{
		passiveVerb:    game.VerbCheck,
		foldThreshold:  -1, // never fold when there's nothing to call
		raiseThreshold: 0.48 + (1-aggression)*0.25,
		chooseTarget:   chooseBetTarget,
	}
	return pol.decideWithConfig(engine, seat, strength, profile, st, cfg)
}

func (pol BotPolicy) decideWithConfig(engine game.GameEngine, seat int, strength float64, profile BotProfile, st *botState, cfg checkedActionConfig) Decision {
	n := engine.NumPlayers()
	headsUp := n == 2

	// Heads-up preflop: never fold when only facing the unraised big blind,
	// the classic reference-bot exception, since folding there gives up too
	// much equity. A real raise still allows folding.
	if headsUp && engine.Street() == game.Preflop && engine.CurrentBet() <= engine.MinRaise() {
		cfg.foldThreshold = -1
	}

	bluffing := st.rng.Float64() < profile.Bluff
	curious := st.rng.Float64() < profile.Curiosity

	switch {
	case cfg.foldThreshold >= 0 && strength < cfg.foldThreshold && !curious:
		return Decision{Verb: game.VerbFold, Reasoning: "hand too weak to continue"}

	case strength >= cfg.raiseThreshold || bluffing:
		target := cfg.chooseTarget(strength, engine, seat)
		if cfg.passiveVerb == game.VerbCheck {
			if target <= 0 {
				return Decision{Verb: cfg.passiveVerb, Reasoning: "no profitable bet size"}
			}
			reason := "betting for value"
			if bluffing && strength < cfg.raiseThreshold {
				reason = "bluffing"
			}
			return Decision{Verb: game.VerbBet, Amount: target, Reasoning: reason}
		}
		if target <= engine.CurrentBet() {
			return Decision{Verb: cfg.passiveVerb, Reasoning: "calling, no raise room"}
		}
		reason := "raising for value"
		if bluffing && strength < cfg.raiseThreshold {
			reason = "semi-bluff raise"
		}
		return Decision{Verb: game.VerbRaiseTo, Amount: target, Reasoning: reason}

	default:
		return Decision{Verb: cfg.passiveVerb, Reasoning: "marginal hand, taking the cheap line"}
	}
}

// chooseBetTarget sizes an opening bet proportionally to the pot and the
// bot's conviction, short-circuiting to an all-in shove once strength is
// high enough that sizing for value no longer matters.
func chooseBetTarget(strength float64, engine game.GameEngine, seat int) int {
	stack := engine.Stack(seat)
	if stack <= 0 {
		return 0
	}
	if strength >= 0.93 {
		return stack
	}
	pot := engine.Pot()
	if pot <= 0 {
		pot = engine.MinRaise()
	}
	frac := 0.4 + (strength-0.5)*0.6
	target := int(float64(pot) * clampFrac(frac))
	if target < engine.MinRaise() {
		target = engine.MinRaise()
	}
	if target > stack {
		target = stack
	}
	return target
}

// chooseRaiseTarget sizes a raise-to total the same way, but measured
// against the current bet rather than an empty pot.
func chooseRaiseTarget(strength float64, engine game.GameEngine, seat int) int {
	maxTotal := engine.Bet(seat) + engine.Stack(seat)
	if maxTotal <= engine.CurrentBet() {
		return 0
	}
	if strength >= 0.93 {
		return maxTotal
	}
	pot := engine.Pot()
	frac := 0.5 + (strength-0.5)*0.7
	raiseBy := int(float64(pot) * clampFrac(frac))
	minTotal := engine.CurrentBet() + engine.MinRaise()
	target := engine.CurrentBet() + raiseBy
	if target < minTotal {
		target = minTotal
	}
	if target > maxTotal {
		target = maxTotal
	}
	return target
}

func clampFrac(f float64) float64 {
	if f < 0.15 {
		return 0.15
	}
	if f > 1.5 {
		return 1.5
	}
	return f
}

// applyTilt nudges a bot's strength perception looser after losing a pot,
// and halves the accumulated drift back toward neutral after winning one.
func applyTilt(st *botState, profile BotProfile, lostPot bool) {
	if lostPot {
		st.tiltDrift = clamp01(st.tiltDrift + profile.Tilt*0.1)
	} else {
		st.tiltDrift *= 0.5
	}
}
