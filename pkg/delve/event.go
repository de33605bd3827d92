package delve

import (
	"github.com/jwebster45206/tanelorn/pkg/actor"
	"github.com/jwebster45206/tanelorn/pkg/content"
)

// EventType tags what a delve step holds.
type EventType string

const (
	EventCombat   EventType = "combat"
	EventBoss     EventType = "boss"
	EventTrap     EventType = "trap"
	EventTreasure EventType = "treasure"
	EventBuffer   EventType = "buffer"
	EventHealer   EventType = "healer"
	EventMerchant EventType = "merchant"
	// EventNothing only comes from Scout.
	EventNothing EventType = "nothing"
)

// Event is one delve step. Type decides which payload fields are set:
//
//	combat, boss: Enemy (and Relic for boss)
//	trap:         Damage, Message, optional DOT
//	treasure:     Gold, Message
//	buffer:       Buff, Message
//	healer:       HealAmount, Cost
//	merchant:     Items
//	nothing:      Message
type Event struct {
	Type       EventType      `json:"type"`
	Enemy      *actor.Enemy   `json:"enemy,omitempty"`
	Relic      *actor.Relic   `json:"relic,omitempty"`
	Damage     int            `json:"damage,omitempty"`
	DOT        *DOT           `json:"dot,omitempty"`
	Gold       int            `json:"gold,omitempty"`
	Buff       *actor.Buff    `json:"buff,omitempty"`
	HealAmount int            `json:"heal_amount,omitempty"`
	Cost       int            `json:"cost,omitempty"`
	Items      []content.Item `json:"items,omitempty"`
	Message    string         `json:"message,omitempty"`
}

// Hostile reports whether the event starts a fight.
func (e Event) Hostile() bool {
	return e.Type == EventCombat || e.Type == EventBoss
}
