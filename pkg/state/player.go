// Package state holds the progression rules: every function takes a Player
// and returns an updated copy. Operations that cannot be paid for return the
// input unchanged.
package state

import (
	"github.com/jwebster45206/tanelorn/pkg/actor"
)

// Starting values for a new character.
const (
	DefaultPlayerName = "Adventurer"
	StartingHP        = 100
	StartingXPToNext  = 100
	StartingGold      = 50
	StartingTurns     = 20
)

// Level-up increments.
const (
	levelHPGain       = 10
	levelStrengthGain = 2
	levelDefenseGain  = 1
	levelAgilityGain  = 1
)

// NewPlayer creates a level 1 character. An empty name becomes
// DefaultPlayerName.
func NewPlayer(name string) actor.Player {
	if name == "" {
		name = DefaultPlayerName
	}
	return actor.Player{
		Name:           name,
		Level:          1,
		HP:             StartingHP,
		MaxHP:          StartingHP,
		XPToNext:       StartingXPToNext,
		Gold:           StartingGold,
		TurnsRemaining: StartingTurns,
		Stats:          actor.Stats{Strength: 10, Defense: 5, Agility: 7},
	}
}

// checkLevelUp applies at most one level gain. Surplus XP beyond the new
// threshold waits for the next reward.
func checkLevelUp(p actor.Player) (actor.Player, bool) {
	if p.XP < p.XPToNext {
		return p, false
	}
	p.Level++
	p.XP -= p.XPToNext
	p.XPToNext = p.XPToNext * 3 / 2
	p.MaxHP += levelHPGain
	p.HP = p.MaxHP
	p.Stats = p.Stats.Plus(actor.Stats{
		Strength: levelStrengthGain,
		Defense:  levelDefenseGain,
		Agility:  levelAgilityGain,
	})
	return p, true
}
