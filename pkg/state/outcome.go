package state

import (
	"fmt"
	"math"
	"slices"

	"github.com/jwebster45206/tanelorn/pkg/actor"
	"github.com/jwebster45206/tanelorn/pkg/combat"
	"github.com/jwebster45206/tanelorn/pkg/content"
	"github.com/jwebster45206/tanelorn/pkg/delve"
)

// CombatResult is a finished fight, ready to be folded into the player.
type CombatResult struct {
	Outcome combat.Outcome
	Enemy   actor.Enemy
	FinalHP int
	Context Context
}

// Rewards returns the XP and gold a victory in ctx pays for e.
func Rewards(e actor.Enemy, ctx Context) (xp, gold int) {
	xp, gold = e.XPReward, e.GoldReward
	switch ctx.Kind {
	case BountyHunt:
		if ctx.Bounty != nil {
			xp += ctx.Bounty.BonusXP
			gold += ctx.Bounty.BonusGold
		}
	case Raid:
		if ctx.Castle != nil {
			xp = int(math.Floor(float64(xp) * ctx.Castle.XPMultiplier))
			gold = int(math.Floor(float64(gold) * ctx.Castle.GoldMultiplier))
		}
	}
	return xp, gold
}

// ApplyCombatOutcome spends the fight's turns and applies its result.
// Without enough turns p is returned unchanged.
func ApplyCombatOutcome(p actor.Player, r CombatResult) actor.Player {
	cost := r.Context.TurnCost()
	if p.TurnsRemaining < cost {
		return p
	}

	p = p.Clone()
	p.TurnsRemaining -= cost

	switch r.Outcome {
	case combat.Victory:
		xp, gold := Rewards(r.Enemy, r.Context)
		p.XP += xp
		p.Gold += gold
		p.HP = clampHP(r.FinalHP, p.MaxHP)
		p, _ = checkLevelUp(p)
	case combat.Defeat:
		p.HP = max(1, p.MaxHP/2)
	case combat.Fled:
		p.HP = clampHP(r.FinalHP, p.MaxHP)
	default:
		panic(fmt.Sprintf("state: combat outcome %q is not final", r.Outcome))
	}
	return p
}

// ApplyDelveOutcome spends the delve's entry turn and merges its result.
// A cleared delve attaches the relic and records the zone's boss. Without a
// turn p is returned unchanged.
func ApplyDelveOutcome(p actor.Player, r delve.Result, zone content.Zone) actor.Player {
	if p.TurnsRemaining < 1 {
		return p
	}

	p = p.Clone()
	p.TurnsRemaining--

	p.HP = clampHP(r.FinalHP, p.MaxHP)
	if r.Outcome == delve.Defeated {
		p.HP = 0
	}
	p.Gold += r.GoldEarned
	p.XP += r.XPEarned
	p, _ = checkLevelUp(p)

	if r.Outcome == delve.Cleared {
		if r.Relic != nil {
			relic := *r.Relic
			p.Relic = &relic
		}
		if !slices.Contains(p.ClearedBosses, zone.ID) {
			p.ClearedBosses = append(p.ClearedBosses, zone.ID)
		}
	}
	return p
}

func clampHP(hp, maxHP int) int {
	return min(max(hp, 0), maxHP)
}
