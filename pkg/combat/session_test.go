package combat

import (
	"testing"

	"github.com/google/uuid"
	"github.com/jwebster45206/tanelorn/pkg/actor"
	"github.com/jwebster45206/tanelorn/pkg/dice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionPlayer() actor.Player {
	return actor.Player{
		Name:   "Adventurer",
		Level:  1,
		HP:     100,
		MaxHP:  100,
		Stats:  actor.Stats{Strength: 50, Defense: 5, Agility: 7},
		Weapon: &actor.Weapon{ID: "rusty-sword", Name: "Rusty Sword", StrengthBonus: 2},
	}
}

func sewerRat() actor.Enemy {
	return actor.Enemy{Name: "Sewer Rat", Level: 1, HP: 30, MaxHP: 30, Strength: 5, Defense: 2, Agility: 4, XPReward: 15, GoldReward: 5}
}

func TestNewSession(t *testing.T) {
	tmpl := sewerRat()
	tmpl.HP = 4

	s, err := NewSession(sessionPlayer(), tmpl, dice.New(1))
	require.NoError(t, err)

	assert.Equal(t, 30, s.EnemyHP(), "enemy starts from a fresh copy")
	assert.Equal(t, 4, tmpl.HP, "template is untouched")
	assert.Equal(t, 100, s.PlayerHP())
	assert.Equal(t, []string{"A wild Level 1 Sewer Rat appears!"}, s.Log)
	assert.NotEqual(t, uuid.Nil, s.ID)

	assert.Equal(t, actor.Stats{Strength: 52, Defense: 5, Agility: 7}, s.Player().Stats)
	require.Len(t, s.Modifiers(), 1)
	assert.Equal(t, "rusty sword", s.Modifiers()[0].Reason)
	assert.Equal(t, 2, s.Modifiers()[0].Value)
	assert.Equal(t, actor.Stats{Strength: 5, Defense: 2, Agility: 4}, s.Opponent().Stats)
}

func TestSession_ActUntilVictory(t *testing.T) {
	s, err := NewSession(sessionPlayer(), sewerRat(), dice.New(9))
	require.NoError(t, err)

	for i := 0; i < 10 && !s.Outcome.Terminal(); i++ {
		_, err := s.Act(Attack)
		require.NoError(t, err)
	}

	assert.Equal(t, Victory, s.Outcome)
	assert.Equal(t, 0, s.EnemyHP())
	assert.Greater(t, s.PlayerHP(), 0)
	assert.Equal(t, "The Sewer Rat has been defeated!", s.Log[len(s.Log)-1])

	_, err = s.Act(Attack)
	assert.ErrorIs(t, err, ErrCombatOver)
}

func TestSession_Flee(t *testing.T) {
	r := dice.NewScripted().WithFloats(0.0, 0.0)
	s, err := NewSession(sessionPlayer(), sewerRat(), r)
	require.NoError(t, err)

	res, err := s.Act(Run)
	require.NoError(t, err)

	assert.Equal(t, Fled, res.Outcome)
	assert.Equal(t, Fled, s.Outcome)
	assert.Equal(t, 30, s.EnemyHP())
}

func TestSession_LethalCounter(t *testing.T) {
	p := sessionPlayer()
	p.HP = 1
	s, err := NewSession(p, sewerRat(), dice.NewScripted())
	require.NoError(t, err)

	res, err := s.Act(Attack)
	require.NoError(t, err)

	assert.Equal(t, Defeat, res.Outcome)
	assert.Equal(t, Defeat, s.Outcome)
	assert.Equal(t, 0, res.PlayerHP)
	assert.Equal(t, 0, s.PlayerHP())
	assert.Equal(t, 5, s.EnemyHP())
	assert.Equal(t, 5, s.Enemy.HP)
}

func TestSession_StartsKnockedOut(t *testing.T) {
	p := sessionPlayer()
	p.HP = 0
	s, err := NewSession(p, sewerRat(), dice.NewScripted())
	require.NoError(t, err)
	assert.Equal(t, 0, s.PlayerHP())

	res, err := s.Act(Attack)
	require.NoError(t, err)
	assert.Equal(t, Defeat, res.Outcome, "a downed player cannot outlast the counter")
	assert.Equal(t, 0, s.PlayerHP())
}
