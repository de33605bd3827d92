package game

import (
	"fmt"

	"github.com/jwebster45206/tanelorn/pkg/delve"
	"github.com/jwebster45206/tanelorn/pkg/state"
)

// ScoutReport is what one scouting trip found. Encounter is set when the
// trip ran into an enemy; that fight is charged when it ends.
type ScoutReport struct {
	Event     delve.Event
	Messages  []string
	Encounter *Encounter
}

// Scout explores a zone for one turn using the zone's own event odds.
// Traps leave at least 1 HP and a healer is paid automatically when the
// player can afford it.
func (g *Game) Scout(zoneID string) (ScoutReport, error) {
	zone, ok := g.catalog.Zone(zoneID)
	if !ok {
		return ScoutReport{}, fmt.Errorf("zone %q: %w", zoneID, ErrNotFound)
	}
	ctx := state.ZoneContext(zone.ID)
	if err := g.canEngage(ctx); err != nil {
		return ScoutReport{}, err
	}
	if g.player.Level < zone.MinLevel {
		return ScoutReport{}, ErrLocked
	}

	ev := g.delver.Generator().Scout(zone, g.player.Level)
	rep := ScoutReport{Event: ev}

	if ev.Hostile() {
		enc, err := g.engage(*ev.Enemy, ctx)
		if err != nil {
			return ScoutReport{}, err
		}
		rep.Encounter = enc
		rep.Messages = []string{enc.Session.Log[0]}
		return rep, nil
	}

	p := g.player.Clone()
	p.TurnsRemaining -= ctx.TurnCost()

	switch ev.Type {
	case delve.EventTreasure:
		p.Gold += ev.Gold
		rep.Messages = []string{ev.Message, fmt.Sprintf("You gain %d gold!", ev.Gold)}
	case delve.EventTrap:
		p.HP = max(1, p.HP-ev.Damage)
		rep.Messages = []string{ev.Message, fmt.Sprintf("You take %d damage!", ev.Damage)}
	case delve.EventHealer:
		switch {
		case p.IsFullHealth():
			rep.Messages = []string{"A wandering healer finds you in good health."}
		case p.Gold < ev.Cost:
			rep.Messages = []string{fmt.Sprintf("A wandering healer asks %d gold. Not enough gold", ev.Cost)}
		default:
			p.Gold -= ev.Cost
			p.HP = min(p.MaxHP, p.HP+ev.HealAmount)
			rep.Messages = []string{fmt.Sprintf("A wandering healer restores %d HP for %d gold.", ev.HealAmount, ev.Cost)}
		}
	case delve.EventNothing:
		rep.Messages = []string{ev.Message}
	default:
		panic(fmt.Sprintf("game: unhandled scout event %q", ev.Type))
	}
	g.player = p

	g.logger.Info("Zone scouted", "zone", zone.ID, "event", ev.Type, "hp", p.HP, "gold", p.Gold, "turns", p.TurnsRemaining)
	return rep, nil
}
