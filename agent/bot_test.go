package agent

import (
	"context"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem-core/game"
)

func newHeadsUpGame(t *testing.T) *game.Game {
	t.Helper()
	g := game.NewGame([]string{"bot-a", "bot-b"}, 10, 20, game.WithSeed(7))
	g.NewHand()
	return g
}

func TestBotAgentWaitsOutDelay(t *testing.T) {
	profile := DefaultProfile()
	profile.MinDelayMS = 100
	profile.MaxDelayMS = 100

	clock := quartz.NewMock(t)
	bot := NewBotAgentWithClock(profile, DifficultyMedium, 1, clock)
	g := newHeadsUpGame(t)

	acted, err := bot.OnTurn(g, g.Current())
	require.NoError(t, err)
	assert.False(t, acted, "bot should not act before its thinking delay elapses")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	clock.Advance(99 * time.Millisecond).MustWait(ctx)
	acted, err = bot.OnTurn(g, g.Current())
	require.NoError(t, err)
	assert.False(t, acted)

	clock.Advance(2 * time.Millisecond).MustWait(ctx)
	acted, err = bot.OnTurn(g, g.Current())
	require.NoError(t, err)
	assert.True(t, acted, "bot should act once its delay has elapsed")
}

func TestBotPolicyNeverFoldsHeadsUpPreflopToBlind(t *testing.T) {
	g := newHeadsUpGame(t)
	seat := g.Current() // the button/small blind, facing only the big blind

	pol := BotPolicy{Difficulty: DifficultyMedium}
	profile := DefaultProfile()
	profile.Tightness = 1 // as tight as possible - would fold almost anything else
	st := &botState{rng: newRandSource(3)}

	d := pol.Decide(g, seat, profile, st)
	assert.NotEqual(t, game.VerbFold, d.Verb)
}

func TestChooseBetTargetScalesWithStrength(t *testing.T) {
	g := newHeadsUpGame(t)
	seat := g.Current()

	low := chooseBetTarget(0.5, g, seat)
	high := chooseBetTarget(0.8, g, seat)
	assert.GreaterOrEqual(t, high, low)
}

func TestChooseBetTargetShovesOnNearCertainty(t *testing.T) {
	g := newHeadsUpGame(t)
	seat := g.Current()
	stack := g.Stack(seat)

	target := chooseBetTarget(0.95, g, seat)
	assert.Equal(t, stack, target)
}

func TestPositionBucketHeadsUp(t *testing.T) {
	assert.Equal(t, PositionButton, positionBucket(0, 0, 2))
	assert.Equal(t, PositionBlind, positionBucket(0, 1, 2))
}

func TestPositionBucketSixHanded(t *testing.T) {
	dealer := 0
	assert.Equal(t, PositionButton, positionBucket(dealer, 0, 6))
	assert.Equal(t, PositionBlind, positionBucket(dealer, 1, 6))
	assert.Equal(t, PositionBlind, positionBucket(dealer, 2, 6))
}

func TestApplyTiltWidensAfterLossAndDecaysAfterWin(t *testing.T) {
	profile := DefaultProfile()
	st := &botState{}

	applyTilt(st, profile, true)
	afterLoss := st.tiltDrift
	assert.Greater(t, afterLoss, 0.0)

	applyTilt(st, profile, false)
	assert.Less(t, st.tiltDrift, afterLoss)
}

func TestBotAgentNotifyHandResult(t *testing.T) {
	bot := NewBotAgent(DefaultProfile(), DifficultyMedium, 1)
	bot.NotifyHandResult(false)
	assert.Greater(t, bot.state.tiltDrift, 0.0)
}
