package state

import (
	"github.com/jwebster45206/tanelorn/pkg/actor"
)

// BuyWeapon equips w, replacing the current weapon. It is a no-op when the
// player is short on gold or level, or already wields w.
func BuyWeapon(p actor.Player, w actor.Weapon) actor.Player {
	if !canBuy(p, w.Cost, w.RequiredLevel) || (p.Weapon != nil && p.Weapon.ID == w.ID) {
		return p
	}
	p = p.Clone()
	p.Gold -= w.Cost
	p.Weapon = &w
	return p
}

// BuyArmor equips a, replacing the current armor, under the same rules as
// BuyWeapon.
func BuyArmor(p actor.Player, a actor.Armor) actor.Player {
	if !canBuy(p, a.Cost, a.RequiredLevel) || (p.Armor != nil && p.Armor.ID == a.ID) {
		return p
	}
	p = p.Clone()
	p.Gold -= a.Cost
	p.Armor = &a
	return p
}

// BuyDefense builds a castle defense. Defenses accumulate; each can be built
// once.
func BuyDefense(p actor.Player, d actor.CastleDefense) actor.Player {
	if !canBuy(p, d.Cost, d.RequiredLevel) || p.OwnsDefense(d.ID) {
		return p
	}
	p = p.Clone()
	p.Gold -= d.Cost
	p.CastleDefenses = append(p.CastleDefenses, d)
	return p
}

func canBuy(p actor.Player, cost, requiredLevel int) bool {
	return p.Gold >= cost && p.Level >= requiredLevel
}

// HealingCost is ceil(missingHP * (0.5 + 0.1*level)), computed in tenths.
func HealingCost(p actor.Player) int {
	missing := max(0, p.MaxHP-p.HP)
	return (missing*(5+p.Level) + 9) / 10
}

// Heal restores full HP for HealingCost. It is a no-op at full health or
// when the player cannot pay.
func Heal(p actor.Player) actor.Player {
	cost := HealingCost(p)
	if cost == 0 || p.Gold < cost {
		return p
	}
	p = p.Clone()
	p.Gold -= cost
	p.HP = p.MaxHP
	return p
}
