package delve

import (
	"fmt"
	"math"

	"github.com/jwebster45206/tanelorn/pkg/actor"
	"github.com/jwebster45206/tanelorn/pkg/content"
	"github.com/jwebster45206/tanelorn/pkg/dice"
)

// TotalSteps is the length of every delve. The last step is the boss.
const TotalSteps = 6

// lastFriendlyStep is the deepest step where merchants, buffers and healers
// can appear.
const lastFriendlyStep = 3

// dotChance is the probability that a delve trap leaves a lingering effect.
const dotChance = 0.4

var friendlyTable = []dice.Weighted[EventType]{
	{Weight: 30, Value: EventCombat},
	{Weight: 15, Value: EventTrap},
	{Weight: 20, Value: EventMerchant},
	{Weight: 15, Value: EventBuffer},
	{Weight: 15, Value: EventHealer},
	{Weight: 5, Value: EventTreasure},
}

var hostileTable = []dice.Weighted[EventType]{
	{Weight: 60, Value: EventCombat},
	{Weight: 25, Value: EventTrap},
	{Weight: 15, Value: EventTreasure},
}

var trapMessages = []string{
	"A hidden spike trap!",
	"Poison darts fly from the wall!",
	"The floor erupts in flames!",
	"A net of thorns ensnares you!",
}

var bufferMessages = []string{
	"A wandering warrior shares combat techniques!",
	"A hermit sage bestows ancient wisdom!",
	"A forest spirit grants its blessing!",
}

var treasureMessages = []string{
	"You find a hidden chest!",
	"Gold coins glitter in the darkness!",
	"A forgotten treasure pouch!",
}

// Generator produces delve events from the content catalog.
type Generator struct {
	catalog *content.Catalog
	roller  dice.Roller
}

// NewGenerator returns a Generator drawing from r.
func NewGenerator(c *content.Catalog, r dice.Roller) *Generator {
	return &Generator{catalog: c, roller: r}
}

// Step generates the event for step (1..TotalSteps) of a delve through zone.
//
// Steps 1-3 may hold friendly encounters, steps 4-5 are hostile only and
// step 6 is the zone boss. Once the boss is in clearedBosses, step 6 is a
// regular fight against the zone's strongest enemy and drops no relic.
//
// playerLevel is accepted for future scaling and does not affect the result.
func (g *Generator) Step(zone content.Zone, step, playerLevel int, clearedBosses []string) Event {
	if step >= TotalSteps {
		return g.boss(zone, clearedBosses)
	}

	table := hostileTable
	if step <= lastFriendlyStep {
		table = friendlyTable
	}
	return g.event(zone, dice.WeightedSelect(g.roller, table))
}

func (g *Generator) event(zone content.Zone, t EventType) Event {
	switch t {
	case EventCombat:
		return g.combat(zone)
	case EventTrap:
		return g.trap(zone)
	case EventTreasure:
		return g.treasure(zone)
	case EventBuffer:
		return g.buffer()
	case EventHealer:
		return g.healer(zone)
	case EventMerchant:
		return Event{Type: EventMerchant, Items: g.catalog.MerchantItems(zone.ID)}
	}
	panic(fmt.Sprintf("delve: no generator for event type %q", t))
}

func (g *Generator) combat(zone content.Zone) Event {
	e := g.enemy(dice.Pick(g.roller, zone.EnemyPool))
	return Event{Type: EventCombat, Enemy: &e}
}

func (g *Generator) trap(zone content.Zone) Event {
	ev := Event{
		Type:    EventTrap,
		Damage:  dice.Between(g.roller, 5*zone.MinLevel, 10*zone.MaxLevel),
		Message: dice.Pick(g.roller, trapMessages),
	}
	if g.roller.Float64() < dotChance {
		dot := GenerateDOT(g.roller)
		ev.DOT = &dot
	}
	return ev
}

func (g *Generator) treasure(zone content.Zone) Event {
	return Event{
		Type:    EventTreasure,
		Gold:    dice.Between(g.roller, 10*zone.MinLevel, 25*zone.MaxLevel),
		Message: dice.Pick(g.roller, treasureMessages),
	}
}

func (g *Generator) buffer() Event {
	stat := dice.Pick(g.roller, actor.AllStats)
	buff := actor.Buff{
		Name:   fmt.Sprintf("%s boost", stat),
		Stat:   stat,
		Amount: dice.Between(g.roller, 2, 4),
	}
	return Event{Type: EventBuffer, Buff: &buff, Message: dice.Pick(g.roller, bufferMessages)}
}

// healer prices a heal of 20-40% of an estimated max HP for the zone.
func (g *Generator) healer(zone content.Zone) Event {
	maxHPEstimate := 100 + zone.MinLevel*10
	fraction := g.roller.Float64()*0.2 + 0.2
	return Event{
		Type:       EventHealer,
		HealAmount: int(math.Floor(float64(maxHPEstimate) * fraction)),
		Cost:       (zone.MinLevel + zone.MaxLevel) * 3,
	}
}

func (g *Generator) boss(zone content.Zone, clearedBosses []string) Event {
	if b, ok := g.catalog.Boss(zone.ID, clearedBosses); ok {
		relic := b.Relic
		return Event{Type: EventBoss, Enemy: &b.Enemy, Relic: &relic}
	}
	e := g.enemy(zone.Strongest())
	return Event{Type: EventCombat, Enemy: &e}
}

// enemy resolves a pool name. Catalog loading guarantees pool names exist.
func (g *Generator) enemy(name string) actor.Enemy {
	e, err := g.catalog.Enemy(name)
	if err != nil {
		panic(fmt.Sprintf("delve: %v", err))
	}
	return e
}
