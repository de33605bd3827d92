package delve

import (
	"fmt"

	"github.com/jwebster45206/tanelorn/pkg/actor"
	"github.com/jwebster45206/tanelorn/pkg/dice"
)

// DOTType is the flavor of a damage-over-time effect.
type DOTType string

const (
	Poison DOTType = "poison"
	Fire   DOTType = "fire"
)

// DOT deals DamagePerStep at each step transition until RemainingSteps runs
// out.
type DOT struct {
	Type           DOTType `json:"type"`
	DamagePerStep  int     `json:"damage_per_step"`
	RemainingSteps int     `json:"remaining_steps"`
}

// GenerateDOT rolls a new effect: even odds poison or fire, 3-8 damage per
// step, lasting 2-4 steps.
func GenerateDOT(r dice.Roller) DOT {
	t := Fire
	if r.Float64() < 0.5 {
		t = Poison
	}
	return DOT{
		Type:           t,
		DamagePerStep:  dice.Between(r, 3, 8),
		RemainingSteps: dice.Between(r, 2, 4),
	}
}

// TickResult is what one step transition does to the active effects.
type TickResult struct {
	Damage    int
	Remaining []DOT
	Messages  []string
}

// TickDOTs applies one step of every active effect. Effects that run out are
// dropped from Remaining. dots is not modified.
func TickDOTs(dots []DOT) TickResult {
	var res TickResult
	for _, d := range dots {
		res.Damage += d.DamagePerStep
		res.Messages = append(res.Messages, d.message())

		d.RemainingSteps--
		if d.RemainingSteps > 0 {
			res.Remaining = append(res.Remaining, d)
		}
	}
	return res
}

func (d DOT) message() string {
	switch d.Type {
	case Poison:
		return fmt.Sprintf("Poison deals %d damage!", d.DamagePerStep)
	case Fire:
		return fmt.Sprintf("Fire burns for %d damage!", d.DamagePerStep)
	}
	panic(fmt.Sprintf("delve: unknown DOT type %q", d.Type))
}

// SumBuffs adds up active buffs by stat. Duplicates stack.
func SumBuffs(buffs []actor.Buff) actor.Stats {
	var s actor.Stats
	for _, b := range buffs {
		s = s.With(b.Stat, b.Amount)
	}
	return s
}
