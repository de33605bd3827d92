package actor

import (
	"fmt"
	"strings"

	"github.com/jwebster45206/d20"
)

// Enemy represents a creature the player can fight.
// Enemies are loaded as templates from the content catalog; every encounter
// works on its own copy so templates are never mutated.
type Enemy struct {
	Name       string   `json:"name"`
	Level      int      `json:"level"`
	HP         int      `json:"hp"`
	MaxHP      int      `json:"max_hp"`
	Strength   int      `json:"strength"`
	Defense    int      `json:"defense"`
	Agility    int      `json:"agility"`
	XPReward   int      `json:"xp_reward"`
	GoldReward int      `json:"gold_reward"`
	Art        []string `json:"art,omitempty"`
}

// Fresh returns a copy of the template ready for a new encounter, with HP
// equal to MaxHP. A template that only sets HP gets MaxHP from it.
func (e Enemy) Fresh() Enemy {
	if e.MaxHP <= 0 {
		e.MaxHP = e.HP
	}
	e.HP = e.MaxHP
	if e.Art != nil {
		e.Art = append([]string(nil), e.Art...)
	}
	return e
}

// Stats returns the enemy's combat attributes.
func (e Enemy) Stats() Stats {
	return Stats{Strength: e.Strength, Defense: e.Defense, Agility: e.Agility}
}

// ASCII joins the art lines for display.
func (e Enemy) ASCII() string {
	return strings.Join(e.Art, "\n")
}

// TakeDamage reduces the enemy's HP by the specified amount.
// HP cannot go below 0.
func (e *Enemy) TakeDamage(n int) {
	if n <= 0 {
		return
	}
	e.HP -= n
	if e.HP < 0 {
		e.HP = 0
	}
}

// IsDefeated returns true if the enemy's HP is 0 or less.
func (e Enemy) IsDefeated() bool {
	return e.HP <= 0
}

// Actor builds a d20.Actor for the enemy's current state.
func (e Enemy) Actor() (*d20.Actor, error) {
	a, err := d20.NewActor(e.Name).
		WithHP(e.MaxHP).
		WithAC(e.Defense).
		WithAttributes(e.Stats().ToAttributes()).
		Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build enemy actor: %w", err)
	}
	if hp := min(max(e.HP, 0), e.MaxHP); hp != e.MaxHP {
		if err := a.SetHP(hp); err != nil {
			return nil, fmt.Errorf("failed to set HP: %w", err)
		}
	}
	return a, nil
}
