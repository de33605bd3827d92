package game

import (
	"fmt"

	"github.com/jwebster45206/tanelorn/pkg/actor"
	"github.com/jwebster45206/tanelorn/pkg/state"
)

func find[T any](items []T, id func(T) string, want string) (T, bool) {
	for _, it := range items {
		if id(it) == want {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// BuyWeapon purchases a weapon by id. It reports false when the purchase
// was refused for gold, level or ownership.
func (g *Game) BuyWeapon(id string) (bool, error) {
	w, ok := find(g.catalog.Weapons(), func(w actor.Weapon) string { return w.ID }, id)
	if !ok {
		return false, fmt.Errorf("weapon %q: %w", id, ErrNotFound)
	}
	return g.trade("weapon", w.Name, w.Cost, state.BuyWeapon(g.player, w))
}

// BuyArmor purchases armor by id.
func (g *Game) BuyArmor(id string) (bool, error) {
	a, ok := find(g.catalog.Armors(), func(a actor.Armor) string { return a.ID }, id)
	if !ok {
		return false, fmt.Errorf("armor %q: %w", id, ErrNotFound)
	}
	return g.trade("armor", a.Name, a.Cost, state.BuyArmor(g.player, a))
}

// BuyDefense builds a castle defense by id.
func (g *Game) BuyDefense(id string) (bool, error) {
	d, ok := find(g.catalog.Defenses(), func(d actor.CastleDefense) string { return d.ID }, id)
	if !ok {
		return false, fmt.Errorf("defense %q: %w", id, ErrNotFound)
	}
	return g.trade("defense", d.Name, d.Cost, state.BuyDefense(g.player, d))
}

// Heal pays the healer for full HP. It reports false when the player is
// already healthy or cannot pay.
func (g *Game) Heal() (bool, error) {
	cost := state.HealingCost(g.player)
	return g.trade("healing", "healer", cost, state.Heal(g.player))
}

func (g *Game) trade(kind, name string, cost int, after actor.Player) (bool, error) {
	if g.Busy() {
		return false, ErrBusy
	}
	if after.Gold == g.player.Gold {
		g.logger.Debug("Purchase refused", "kind", kind, "item", name, "cost", cost, "gold", g.player.Gold)
		return false, nil
	}
	g.player = after
	g.logger.Info("Purchase", "kind", kind, "item", name, "cost", cost, "gold", after.Gold)
	return true, nil
}
