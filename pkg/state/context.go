package state

import (
	"github.com/jwebster45206/tanelorn/pkg/actor"
	"github.com/jwebster45206/tanelorn/pkg/content"
	"github.com/jwebster45206/tanelorn/pkg/quest"
)

// ContextKind says where a fight happens, which decides its turn cost and
// rewards.
type ContextKind string

const (
	Adventure  ContextKind = "adventure"
	BountyHunt ContextKind = "bounty"
	ZoneFight  ContextKind = "zone"
	Raid       ContextKind = "raid"
)

// defaultRaidTurnCost applies when a castle does not set its own.
const defaultRaidTurnCost = 2

// Context describes a fight. Bounty is set for BountyHunt, ZoneID for
// ZoneFight and Castle for Raid.
type Context struct {
	Kind   ContextKind
	Bounty *quest.Bounty
	ZoneID string
	Castle *content.Castle
}

// AdventureContext is a plain random encounter.
func AdventureContext() Context {
	return Context{Kind: Adventure}
}

// BountyContext is a fight against a bounty target.
func BountyContext(b quest.Bounty) Context {
	return Context{Kind: BountyHunt, Bounty: &b}
}

// ZoneContext is a scouted fight inside a zone.
func ZoneContext(zoneID string) Context {
	return Context{Kind: ZoneFight, ZoneID: zoneID}
}

// RaidContext is an assault on a castle.
func RaidContext(c content.Castle) Context {
	return Context{Kind: Raid, Castle: &c}
}

// TurnCost returns the turns spent when the fight is resolved.
func (c Context) TurnCost() int {
	if c.Kind == Raid {
		if c.Castle != nil && c.Castle.TurnCost > 0 {
			return c.Castle.TurnCost
		}
		return defaultRaidTurnCost
	}
	return 1
}

// RequiredLevel returns the minimum level for the fight, 1 when unrestricted.
func (c Context) RequiredLevel() int {
	switch {
	case c.Kind == Raid && c.Castle != nil:
		return c.Castle.RequiredLevel
	case c.Kind == BountyHunt && c.Bounty != nil:
		return c.Bounty.RequiredLevel
	}
	return 1
}

// HasTurns reports whether p can pay for the fight.
func (c Context) HasTurns(p actor.Player) bool {
	return p.TurnsRemaining >= c.TurnCost()
}

// CanEngage reports whether p has the turns and the level for the fight.
func CanEngage(p actor.Player, c Context) bool {
	return c.HasTurns(p) && p.Level >= c.RequiredLevel()
}
