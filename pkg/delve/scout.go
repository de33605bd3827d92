package delve

import (
	"github.com/jwebster45206/tanelorn/pkg/content"
	"github.com/jwebster45206/tanelorn/pkg/dice"
)

var scoutTrapMessages = []string{
	"You trigger a hidden trap!",
	"Poison darts fly from the wall!",
	"The floor gives way beneath you!",
}

var quietMessages = []string{
	"The path is eerily quiet...",
	"Nothing of interest here.",
	"You hear distant echoes but find nothing.",
}

// Scout rolls a single event from the zone's own event weights. Unlike a
// delve step, healer prices scale with the player's level and traps never
// linger.
func (g *Generator) Scout(zone content.Zone, playerLevel int) Event {
	w := zone.EventWeights
	t := dice.WeightedSelect(g.roller, []dice.Weighted[EventType]{
		{Weight: w.Combat, Value: EventCombat},
		{Weight: w.Treasure, Value: EventTreasure},
		{Weight: w.Trap, Value: EventTrap},
		{Weight: w.Healer, Value: EventHealer},
		{Weight: w.Nothing, Value: EventNothing},
	})

	switch t {
	case EventCombat:
		return g.combat(zone)
	case EventTreasure:
		return g.treasure(zone)
	case EventTrap:
		return Event{
			Type:    EventTrap,
			Damage:  dice.Between(g.roller, 5*zone.MinLevel, 10*zone.MaxLevel),
			Message: dice.Pick(g.roller, scoutTrapMessages),
		}
	case EventHealer:
		return Event{Type: EventHealer, Cost: playerLevel * 5, HealAmount: playerLevel * 15}
	default:
		return Event{Type: EventNothing, Message: dice.Pick(g.roller, quietMessages)}
	}
}
