package actor

import (
	"fmt"
	"slices"

	"github.com/jwebster45206/d20"
)

// Player is the persistent state of the one character in a session.
// Treat it as a value: the state package returns updated copies instead of
// mutating, and Clone keeps the slices unshared.
type Player struct {
	Name           string          `json:"name"`
	Level          int             `json:"level"`
	HP             int             `json:"hp"`
	MaxHP          int             `json:"max_hp"`
	XP             int             `json:"xp"`
	XPToNext       int             `json:"xp_to_next"`
	Gold           int             `json:"gold"`
	TurnsRemaining int             `json:"turns_remaining"`
	Stats          Stats           `json:"stats"`
	Weapon         *Weapon         `json:"weapon,omitempty"`
	Armor          *Armor          `json:"armor,omitempty"`
	Relic          *Relic          `json:"relic,omitempty"`
	CastleDefenses []CastleDefense `json:"castle_defenses,omitempty"`
	ClearedBosses  []string        `json:"cleared_bosses,omitempty"`
}

// Clone returns a deep copy of p.
func (p Player) Clone() Player {
	if p.Weapon != nil {
		w := *p.Weapon
		p.Weapon = &w
	}
	if p.Armor != nil {
		a := *p.Armor
		p.Armor = &a
	}
	if p.Relic != nil {
		r := *p.Relic
		p.Relic = &r
	}
	p.CastleDefenses = slices.Clone(p.CastleDefenses)
	p.ClearedBosses = slices.Clone(p.ClearedBosses)
	return p
}

// EffectiveStats returns base stats plus weapon, armor and relic bonuses.
// It is derived on demand and never stored.
func (p Player) EffectiveStats() Stats {
	s := p.Stats
	if p.Weapon != nil {
		s.Strength += p.Weapon.StrengthBonus
	}
	if p.Armor != nil {
		s.Defense += p.Armor.DefenseBonus
	}
	if p.Relic != nil {
		s = s.Plus(p.Relic.StatBonuses)
	}
	return s
}

// HasClearedBoss reports whether the boss of zoneID has been defeated.
func (p Player) HasClearedBoss(zoneID string) bool {
	return slices.Contains(p.ClearedBosses, zoneID)
}

// OwnsDefense reports whether a castle defense is already built.
func (p Player) OwnsDefense(id string) bool {
	return slices.ContainsFunc(p.CastleDefenses, func(d CastleDefense) bool {
		return d.ID == id
	})
}

// IsFullHealth reports whether HP is at its maximum.
func (p Player) IsFullHealth() bool {
	return p.HP >= p.MaxHP
}

// equipmentModifiers lists the equipment bonuses by source, for display via
// d20 combat modifiers.
func (p Player) equipmentModifiers() map[string]int {
	mods := map[string]int{}
	if p.Weapon != nil {
		mods[p.Weapon.Name] = p.Weapon.StrengthBonus
	}
	if p.Armor != nil {
		mods[p.Armor.Name] = p.Armor.DefenseBonus
	}
	if p.Relic != nil {
		b := p.Relic.StatBonuses
		mods[p.Relic.Name] = b.Strength + b.Defense + b.Agility
	}
	return mods
}

// Actor builds a d20.Actor carrying the player's current HP and effective
// stats as attributes.
func (p Player) Actor() (*d20.Actor, error) {
	a, err := d20.NewActor(p.Name).
		WithHP(p.MaxHP).
		WithAC(p.EffectiveStats().Defense).
		WithAttributes(p.EffectiveStats().ToAttributes()).
		WithCombatModifiers(p.equipmentModifiers()).
		Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build player actor: %w", err)
	}
	if hp := min(max(p.HP, 0), p.MaxHP); hp != p.MaxHP {
		if err := a.SetHP(hp); err != nil {
			return nil, fmt.Errorf("failed to set HP: %w", err)
		}
	}
	return a, nil
}
