// Package combat resolves turn-based fights between the player and a
// single enemy.
//
// Resolve is a pure function of the turn's inputs and the random draws: it
// returns new HP values instead of mutating anything. Session layers the
// bookkeeping of one encounter on top of it.
package combat

import (
	"fmt"

	"github.com/jwebster45206/tanelorn/pkg/actor"
	"github.com/jwebster45206/tanelorn/pkg/dice"
)

// Action is what the player does on their turn.
type Action string

const (
	Attack Action = "attack"
	Run    Action = "run"
)

// Outcome is the state of an encounter after a turn.
type Outcome string

const (
	Ongoing Outcome = ""
	Victory Outcome = "victory"
	Defeat  Outcome = "defeat"
	Fled    Outcome = "fled"
)

// Terminal reports whether the encounter is over.
func (o Outcome) Terminal() bool {
	return o != Ongoing
}

// Combatant is one side of a fight as the resolver sees it.
type Combatant struct {
	Name  string
	Stats actor.Stats
}

// Turn holds everything one turn depends on besides randomness.
type Turn struct {
	Action   Action
	Player   Combatant
	Enemy    Combatant
	PlayerHP int
	EnemyHP  int
}

// TurnResult is the outcome of one turn. Messages hold one line per
// sub-event, in order.
type TurnResult struct {
	Messages []string
	PlayerHP int
	EnemyHP  int
	Outcome  Outcome
}

// Resolve runs one turn, drawing independent rolls for the player's and the
// enemy's sub-events.
func Resolve(t Turn, r dice.Roller) TurnResult {
	first := r.Float64()
	second := r.Float64()
	return resolve(t, first, second)
}

// ResolveWithRoll runs one turn from a single fixed roll. The player's
// sub-event uses roll and the enemy's uses 1-roll.
func ResolveWithRoll(t Turn, roll float64) TurnResult {
	return resolve(t, roll, 1-roll)
}

func resolve(t Turn, playerRoll, enemyRoll float64) TurnResult {
	res := TurnResult{PlayerHP: t.PlayerHP, EnemyHP: t.EnemyHP}

	switch t.Action {
	case Attack:
		dmg := dice.CalculateDamage(t.Player.Stats.Strength, t.Enemy.Stats.Defense, playerRoll)
		res.EnemyHP = max(0, res.EnemyHP-dmg)
		res.Messages = append(res.Messages, fmt.Sprintf("You strike the %s for %d damage!", t.Enemy.Name, dmg))

		if res.EnemyHP <= 0 {
			res.Outcome = Victory
			res.Messages = append(res.Messages, fmt.Sprintf("The %s has been defeated!", t.Enemy.Name))
			return res
		}
		res.counter(t, enemyRoll, "The %s strikes back for %d damage!")

	case Run:
		if dice.CheckRunSuccess(t.Player.Stats.Agility, t.Enemy.Stats.Agility, playerRoll) {
			res.Outcome = Fled
			res.Messages = append(res.Messages, "You successfully flee from battle!")
			return res
		}
		res.Messages = append(res.Messages, "You failed to escape!")
		res.counter(t, enemyRoll, "The %s strikes you as you try to flee for %d damage!")

	default:
		panic(fmt.Sprintf("combat: unknown action %q", t.Action))
	}

	return res
}

// counter applies one enemy attack to the result.
func (res *TurnResult) counter(t Turn, roll float64, format string) {
	dmg := dice.CalculateDamage(t.Enemy.Stats.Strength, t.Player.Stats.Defense, roll)
	res.PlayerHP = max(0, res.PlayerHP-dmg)
	res.Messages = append(res.Messages, fmt.Sprintf(format, t.Enemy.Name, dmg))

	if res.PlayerHP <= 0 {
		res.Outcome = Defeat
		res.Messages = append(res.Messages, "You have been defeated...")
	}
}
