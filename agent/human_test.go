package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem-core/game"
)

func TestHumanAgentWaitsForSubmit(t *testing.T) {
	g := newHeadsUpGame(t)
	human := NewHumanAgent()

	acted, err := human.OnTurn(g, g.Current())
	require.NoError(t, err)
	assert.False(t, acted)
}

func TestHumanAgentAppliesSubmittedAction(t *testing.T) {
	g := newHeadsUpGame(t)
	human := NewHumanAgent()
	seat := g.Current()

	human.Submit(Input{Verb: game.VerbFold})
	acted, err := human.OnTurn(g, seat)
	require.NoError(t, err)
	assert.True(t, acted)
	assert.True(t, g.IsComplete())
}

func TestHumanAgentSubmitConsumedOnce(t *testing.T) {
	g := newHeadsUpGame(t)
	human := NewHumanAgent()
	seat := g.Current()

	human.Submit(Input{Verb: game.VerbCheck})
	_, err := human.OnTurn(g, seat)
	require.NoError(t, err)

	acted, err := human.OnTurn(g, g.Current())
	require.NoError(t, err)
	assert.False(t, acted, "second OnTurn with nothing queued should not act")
}
