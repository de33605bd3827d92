package content

import (
	"slices"

	"github.com/jwebster45206/tanelorn/pkg/actor"
)

// Weapons returns the full weapon list.
func (c *Catalog) Weapons() []actor.Weapon {
	return slices.Clone(c.weapons)
}

// Armors returns the full armor list.
func (c *Catalog) Armors() []actor.Armor {
	return slices.Clone(c.armors)
}

// Defenses returns the full castle defense list.
func (c *Catalog) Defenses() []actor.CastleDefense {
	return slices.Clone(c.defenses)
}

// AvailableWeapons lists weapons the player may buy: level met and not the
// one already equipped.
func (c *Catalog) AvailableWeapons(p actor.Player) []actor.Weapon {
	var out []actor.Weapon
	for _, w := range c.weapons {
		if w.RequiredLevel <= p.Level && (p.Weapon == nil || p.Weapon.ID != w.ID) {
			out = append(out, w)
		}
	}
	return out
}

// AvailableArmors lists armors the player may buy.
func (c *Catalog) AvailableArmors(p actor.Player) []actor.Armor {
	var out []actor.Armor
	for _, a := range c.armors {
		if a.RequiredLevel <= p.Level && (p.Armor == nil || p.Armor.ID != a.ID) {
			out = append(out, a)
		}
	}
	return out
}

// AvailableDefenses lists castle defenses the player may build.
func (c *Catalog) AvailableDefenses(p actor.Player) []actor.CastleDefense {
	var out []actor.CastleDefense
	for _, d := range c.defenses {
		if d.RequiredLevel <= p.Level && !p.OwnsDefense(d.ID) {
			out = append(out, d)
		}
	}
	return out
}
