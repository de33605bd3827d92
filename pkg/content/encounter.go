package content

import (
	"github.com/jwebster45206/tanelorn/pkg/actor"
	"github.com/jwebster45206/tanelorn/pkg/dice"
)

// Encounter window around the player's level for adventure fights.
const (
	encounterBelow = 1
	encounterAbove = 3
)

// RandomEncounter picks an enemy within [level-1, level+3] (floored at 1).
// When nothing falls in the window it returns the nearest-level entry, so an
// encounter can always be produced.
func (c *Catalog) RandomEncounter(r dice.Roller, playerLevel int) actor.Enemy {
	lo := max(1, playerLevel-encounterBelow)
	hi := playerLevel + encounterAbove

	eligible := c.EnemiesInLevelRange(lo, hi)
	if len(eligible) == 0 {
		return c.NearestLevel(playerLevel)
	}
	return dice.Pick(r, eligible)
}
