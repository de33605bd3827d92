package game

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"slices"
	"testing"

	"github.com/jwebster45206/tanelorn/pkg/actor"
	"github.com/jwebster45206/tanelorn/pkg/combat"
	"github.com/jwebster45206/tanelorn/pkg/content"
	"github.com/jwebster45206/tanelorn/pkg/delve"
	"github.com/jwebster45206/tanelorn/pkg/dice"
	"github.com/jwebster45206/tanelorn/pkg/quest"
	"github.com/jwebster45206/tanelorn/pkg/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newGame(t *testing.T, opts ...Option) *Game {
	t.Helper()
	return New(content.Default(), dice.New(99), quietLogger(), "Hero", opts...)
}

// champion wins every fight in a single blow and shrugs off traps.
func champion() actor.Player {
	p := state.NewPlayer("Champion")
	p.Stats = actor.Stats{Strength: 1000, Defense: 1000, Agility: 1000}
	p.MaxHP = 10000
	p.HP = 10000
	return p
}

func TestNew(t *testing.T) {
	g := newGame(t, WithStartingTurns(35))

	p := g.Player()
	assert.Equal(t, "Hero", p.Name)
	assert.Equal(t, 35, p.TurnsRemaining)
	assert.Len(t, g.Bounties(), 3, "level 1 has three eligible targets")
	assert.False(t, g.Busy())
}

func TestGame_FightToTheEnd(t *testing.T) {
	g := newGame(t)

	enc, err := g.Fight()
	require.NoError(t, err)
	assert.Equal(t, state.Adventure, enc.Context.Kind)

	_, err = g.Fight()
	assert.ErrorIs(t, err, ErrBusy)
	_, err = g.BuyWeapon("rusty-sword")
	assert.ErrorIs(t, err, ErrBusy)

	var res combat.TurnResult
	for i := 0; i < 100 && !res.Outcome.Terminal(); i++ {
		res, err = g.Combat(combat.Attack)
		require.NoError(t, err)
	}
	require.True(t, res.Outcome.Terminal())

	p := g.Player()
	assert.Equal(t, 19, p.TurnsRemaining)
	assert.False(t, g.Busy())
	if res.Outcome == combat.Defeat {
		assert.Equal(t, 50, p.HP)
	} else {
		assert.Equal(t, res.PlayerHP, p.HP)
	}

	_, err = g.Combat(combat.Attack)
	assert.ErrorIs(t, err, ErrIdle)
}

// firstBounty returns the index of the first posted bounty matching ok.
func firstBounty(t *testing.T, g *Game, ok func(quest.Bounty) bool) int {
	t.Helper()
	i := slices.IndexFunc(g.Bounties(), ok)
	require.GreaterOrEqual(t, i, 0, "no matching bounty on the board")
	return i
}

func TestGame_FightBountyVictory(t *testing.T) {
	g := newGame(t, WithPlayer(champion()))
	before := g.Bounties()
	i := firstBounty(t, g, func(b quest.Bounty) bool { return b.RequiredLevel <= 1 })
	target := before[i]

	enc, err := g.FightBounty(i)
	require.NoError(t, err)
	assert.Equal(t, target.TargetEnemyName, enc.Session.Enemy.Name)

	res, err := g.Combat(combat.Attack)
	require.NoError(t, err)
	require.Equal(t, combat.Victory, res.Outcome)

	p := g.Player()
	assert.Equal(t, 50+enc.Session.Enemy.GoldReward+target.BonusGold, p.Gold)
	assert.Len(t, g.Bounties(), len(before)-1)
	for _, b := range g.Bounties() {
		assert.NotEqual(t, target.ID, b.ID)
	}
}

func TestGame_FightBountyErrors(t *testing.T) {
	g := newGame(t)

	_, err := g.FightBounty(42)
	assert.ErrorIs(t, err, ErrNotFound)

	p := g.Player()
	p.TurnsRemaining = 0
	g = newGame(t, WithPlayer(p))
	_, err = g.FightBounty(0)
	assert.ErrorIs(t, err, ErrNoTurns)
}

func TestGame_FightBountyLocked(t *testing.T) {
	g := newGame(t, WithPlayer(champion()))
	i := firstBounty(t, g, func(b quest.Bounty) bool { return b.RequiredLevel > 1 })

	_, err := g.FightBounty(i)
	assert.ErrorIs(t, err, ErrLocked)
	assert.False(t, g.Busy())
	assert.Len(t, g.Bounties(), 3, "a refused hunt keeps the board")
}

func TestGame_Raid(t *testing.T) {
	t.Run("unknown castle", func(t *testing.T) {
		_, err := newGame(t).Raid("sand-castle")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("locked", func(t *testing.T) {
		_, err := newGame(t).Raid("goblin-stockade")
		assert.ErrorIs(t, err, ErrLocked)
	})

	t.Run("needs two turns", func(t *testing.T) {
		p := champion()
		p.Level = 8
		p.TurnsRemaining = 1
		_, err := newGame(t, WithPlayer(p)).Raid("goblin-stockade")
		assert.ErrorIs(t, err, ErrNoTurns)
	})

	t.Run("victory pays multiplied rewards", func(t *testing.T) {
		p := champion()
		p.Level = 2
		g := newGame(t, WithPlayer(p))

		enc, err := g.Raid("goblin-stockade")
		require.NoError(t, err)
		assert.Equal(t, "Chieftain Grix", enc.Session.Enemy.Name)

		res, err := g.Combat(combat.Attack)
		require.NoError(t, err)
		require.Equal(t, combat.Victory, res.Outcome)

		got := g.Player()
		assert.Equal(t, 18, got.TurnsRemaining)
		assert.Equal(t, 50+80, got.Gold)
	})
}

// playDelve answers every phase the way a bold player would.
func playDelve(t *testing.T, g *Game) delve.State {
	t.Helper()
	s, ok := g.DelveState()
	require.True(t, ok)

	for i := 0; i < 100 && !s.Done(); i++ {
		in := delve.Continue
		switch s.Phase {
		case delve.PhaseEvent:
			in = delve.Proceed
		case delve.PhaseCombat:
			in = delve.Attack
		case delve.PhaseChoice:
			in = delve.Deeper
		case delve.PhaseEventResult:
			if s.Event.Type == delve.EventHealer && !s.HealerDecided {
				in = delve.DeclineHealer
			}
		}
		var err error
		s, err = g.Delve(in)
		require.NoError(t, err, "phase %s", s.Phase)
	}
	require.True(t, s.Done())
	return s
}

func TestGame_DelveCleared(t *testing.T) {
	g := newGame(t, WithPlayer(champion()))

	_, err := g.StartDelve("whispering-forest")
	require.NoError(t, err)
	_, err = g.Fight()
	assert.ErrorIs(t, err, ErrBusy)

	s := playDelve(t, g)
	assert.Equal(t, delve.Cleared, s.Result.Outcome)

	p := g.Player()
	assert.Equal(t, 19, p.TurnsRemaining)
	assert.Equal(t, []string{"whispering-forest"}, p.ClearedBosses)
	require.NotNil(t, p.Relic)
	assert.Equal(t, "heartwood-charm", p.Relic.ID)
	assert.False(t, g.Busy())

	_, err = g.Delve(delve.Continue)
	assert.ErrorIs(t, err, ErrIdle)
}

func TestGame_DelveInvalidInputKeepsState(t *testing.T) {
	g := newGame(t)
	start, err := g.StartDelve("whispering-forest")
	require.NoError(t, err)

	_, err = g.Delve(delve.Deeper)
	assert.True(t, errors.Is(err, delve.ErrInvalidInput))

	s, ok := g.DelveState()
	require.True(t, ok)
	assert.Equal(t, start, s)
}

func TestGame_StartDelveErrors(t *testing.T) {
	_, err := newGame(t).StartDelve("nowhere")
	assert.ErrorIs(t, err, ErrNotFound)

	zones := content.Default().Zones()
	_, err = newGame(t).StartDelve(zones[len(zones)-1].ID)
	assert.ErrorIs(t, err, ErrLocked)

	p := state.NewPlayer("")
	p.HP = 0
	_, err = newGame(t, WithPlayer(p)).StartDelve("whispering-forest")
	assert.ErrorIs(t, err, ErrTooWounded)

	p = state.NewPlayer("")
	p.TurnsRemaining = 0
	_, err = newGame(t, WithPlayer(p)).StartDelve("whispering-forest")
	assert.ErrorIs(t, err, ErrNoTurns)
}

func TestGame_Scout(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g := New(content.Default(), dice.New(seed), quietLogger(), "Scout")

		rep, err := g.Scout("whispering-forest")
		require.NoError(t, err)
		assert.NotEmpty(t, rep.Messages)

		p := g.Player()
		if rep.Encounter != nil {
			assert.True(t, g.Busy())
			assert.Equal(t, state.ZoneFight, rep.Encounter.Context.Kind)
			assert.Equal(t, 20, p.TurnsRemaining, "fights are charged when they end")
			continue
		}
		assert.Equal(t, 19, p.TurnsRemaining)
		assert.GreaterOrEqual(t, p.HP, 1)
	}
}

func TestGame_ScoutLocked(t *testing.T) {
	zones := content.Default().Zones()
	_, err := newGame(t).Scout(zones[len(zones)-1].ID)
	assert.ErrorIs(t, err, ErrLocked)
}

func TestGame_Market(t *testing.T) {
	g := newGame(t)

	ok, err := g.BuyWeapon("rusty-sword")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 20, g.Player().Gold)

	ok, err = g.BuyWeapon("rusty-sword")
	require.NoError(t, err)
	assert.False(t, ok, "already equipped")

	ok, err = g.BuyArmor("leather-vest")
	require.NoError(t, err)
	assert.False(t, ok, "20 gold is not enough")

	_, err = g.BuyDefense("moat")
	assert.ErrorIs(t, err, ErrNotFound)

	ok, err = g.Heal()
	require.NoError(t, err)
	assert.False(t, ok, "full health")
}

func TestGame_Heal(t *testing.T) {
	p := state.NewPlayer("")
	p.HP = 90
	g := newGame(t, WithPlayer(p))

	ok, err := g.Heal()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 100, g.Player().HP)
	assert.Equal(t, 44, g.Player().Gold)
}

func TestGame_CombatErrorIsLogged(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))
	g := New(content.Default(), dice.New(99), log, "Hero", WithPlayer(champion()))

	enc, err := g.Fight()
	require.NoError(t, err)
	// Finish the fight behind the game's back.
	_, err = enc.Session.Act(combat.Attack)
	require.NoError(t, err)
	require.True(t, enc.Session.Outcome.Terminal())

	_, err = g.Combat(combat.Attack)
	assert.ErrorIs(t, err, combat.ErrCombatOver)
	assert.Contains(t, buf.String(), `msg="Combat turn failed"`)
	assert.Contains(t, buf.String(), `error="combat is over"`)
	assert.Contains(t, buf.String(), "session_id="+enc.Session.ID.String())
}
