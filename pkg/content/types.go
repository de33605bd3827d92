package content

import (
	"strings"

	"github.com/jwebster45206/tanelorn/pkg/actor"
)

// Difficulty is a zone's danger tier.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
	Deadly Difficulty = "deadly"
)

// EventWeights is the legacy single-roll event table of a zone.
// Weights are percentages and sum to 100.
type EventWeights struct {
	Combat   int `json:"combat"`
	Treasure int `json:"treasure"`
	Trap     int `json:"trap"`
	Healer   int `json:"healer"`
	Nothing  int `json:"nothing"`
}

// Total sums all weights.
func (w EventWeights) Total() int {
	return w.Combat + w.Treasure + w.Trap + w.Healer + w.Nothing
}

// Zone is an explorable area. EnemyPool lists enemy names from weakest to
// strongest.
type Zone struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Difficulty   Difficulty   `json:"difficulty"`
	MinLevel     int          `json:"min_level"`
	MaxLevel     int          `json:"max_level"`
	EnemyPool    []string     `json:"enemy_pool"`
	EventWeights EventWeights `json:"event_weights"`
	Art          []string     `json:"art,omitempty"`
}

// ASCII joins the art lines for display.
func (z Zone) ASCII() string {
	return strings.Join(z.Art, "\n")
}

// Strongest returns the name of the last enemy in the pool.
func (z Zone) Strongest() string {
	return z.EnemyPool[len(z.EnemyPool)-1]
}

// ZoneBoss pairs a zone with the boss guarding its final step and the relic
// it drops.
type ZoneBoss struct {
	ZoneID string      `json:"zone_id"`
	Enemy  actor.Enemy `json:"enemy"`
	Relic  actor.Relic `json:"relic"`
}

// Castle is an NPC stronghold that can be raided for multiplied rewards.
type Castle struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	OwnerName      string      `json:"owner_name"`
	RequiredLevel  int         `json:"required_level"`
	TurnCost       int         `json:"turn_cost"`
	XPMultiplier   float64     `json:"xp_multiplier"`
	GoldMultiplier float64     `json:"gold_multiplier"`
	Art            []string    `json:"art,omitempty"`
	Boss           actor.Enemy `json:"boss"`
}

// ASCII joins the art lines for display.
func (c Castle) ASCII() string {
	return strings.Join(c.Art, "\n")
}

// EffectKind says what a merchant item does when bought.
type EffectKind string

const (
	EffectHeal EffectKind = "heal"
	EffectBuff EffectKind = "buff"
)

// ItemEffect is either a flat heal (Amount) or a delve buff (Buff).
type ItemEffect struct {
	Kind   EffectKind  `json:"kind"`
	Amount int         `json:"amount,omitempty"`
	Buff   *actor.Buff `json:"buff,omitempty"`
}

// Item is sold by a delve merchant.
type Item struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Cost        int        `json:"cost"`
	Effect      ItemEffect `json:"effect"`
}
