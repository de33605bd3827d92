// Package quest generates the bounty board.
package quest

import (
	"fmt"
	"strings"

	"github.com/jwebster45206/tanelorn/pkg/actor"
	"github.com/jwebster45206/tanelorn/pkg/content"
	"github.com/jwebster45206/tanelorn/pkg/dice"
)

// DefaultCount is the board size when none is given.
const DefaultCount = 4

var descriptions = []string{
	"A %s has been terrorizing the countryside",
	"Wanted dead: %s",
	"The guild needs a %s eliminated",
	"Reports of a dangerous %s nearby",
}

// Bounty is a contract on one enemy. Bounties live until the board is
// refreshed.
type Bounty struct {
	ID              string `json:"id"`
	TargetEnemyName string `json:"target_enemy_name"`
	Description     string `json:"description"`
	BonusXP         int    `json:"bonus_xp"`
	BonusGold       int    `json:"bonus_gold"`
	RequiredLevel   int    `json:"required_level"`
}

// GenerateBounties posts up to count bounties on enemies within
// [playerLevel-1, playerLevel+2]. count <= 0 means DefaultCount.
func GenerateBounties(c *content.Catalog, r dice.Roller, playerLevel, count int) []Bounty {
	if count <= 0 {
		count = DefaultCount
	}

	eligible := c.EnemiesInLevelRange(max(1, playerLevel-1), playerLevel+2)
	picked := dice.Shuffle(r, eligible)
	if len(picked) > count {
		picked = picked[:count]
	}

	out := make([]Bounty, 0, len(picked))
	for i, e := range picked {
		out = append(out, newBounty(e, i))
	}
	return out
}

func newBounty(e actor.Enemy, i int) Bounty {
	return Bounty{
		ID:              "bounty-" + strings.ToLower(strings.Join(strings.Fields(e.Name), "-")),
		TargetEnemyName: e.Name,
		Description:     fmt.Sprintf(descriptions[i%len(descriptions)], e.Name),
		BonusXP:         e.XPReward / 2,
		BonusGold:       e.GoldReward * 3 / 4,
		RequiredLevel:   max(1, e.Level-1),
	}
}

// TargetEnemy returns a fresh copy of the bounty's target.
func TargetEnemy(c *content.Catalog, b Bounty) (actor.Enemy, error) {
	e, err := c.Enemy(b.TargetEnemyName)
	if err != nil {
		return actor.Enemy{}, fmt.Errorf("bounty %s: %w", b.ID, err)
	}
	return e, nil
}
