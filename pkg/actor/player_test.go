package actor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPlayer() Player {
	return Player{
		Name:     "Tester",
		Level:    3,
		HP:       70,
		MaxHP:    120,
		XPToNext: 225,
		Gold:     40,
		Stats:    Stats{Strength: 14, Defense: 7, Agility: 9},
	}
}

func TestStats_ToAttributes(t *testing.T) {
	attrs := Stats{Strength: 12, Defense: 6, Agility: 8}.ToAttributes()

	tests := []struct {
		key      string
		expected int
	}{
		{"strength", 12},
		{"defense", 6},
		{"agility", 8},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := attrs[tt.key]; got != tt.expected {
				t.Errorf("ToAttributes()[%q] = %d, want %d", tt.key, got, tt.expected)
			}
		})
	}
}

func TestStats_WithAndGet(t *testing.T) {
	s := Stats{Strength: 1}.With(Agility, 3).With(Strength, 2)

	if s.Get(Strength) != 3 {
		t.Errorf("expected strength 3, got %d", s.Get(Strength))
	}
	if s.Get(Agility) != 3 {
		t.Errorf("expected agility 3, got %d", s.Get(Agility))
	}
	if s.Get(Defense) != 0 {
		t.Errorf("expected defense 0, got %d", s.Get(Defense))
	}
	assert.Panics(t, func() { s.Get(Stat("luck")) })
}

func TestPlayer_EffectiveStats(t *testing.T) {
	t.Run("base stats without equipment", func(t *testing.T) {
		p := testPlayer()
		assert.Equal(t, p.Stats, p.EffectiveStats())
	})

	t.Run("weapon armor and relic stack", func(t *testing.T) {
		p := testPlayer()
		p.Weapon = &Weapon{ID: "iron-blade", StrengthBonus: 5}
		p.Armor = &Armor{ID: "chain-mail", DefenseBonus: 5}
		p.Relic = &Relic{ID: "void-crystal", StatBonuses: Stats{Strength: 3, Defense: 3, Agility: 2}}

		got := p.EffectiveStats()
		assert.Equal(t, Stats{Strength: 22, Defense: 15, Agility: 11}, got)
		assert.Equal(t, 14, p.Stats.Strength, "base stats must not absorb bonuses")
	})
}

func TestPlayer_Clone(t *testing.T) {
	p := testPlayer()
	p.Weapon = &Weapon{ID: "rusty-sword", StrengthBonus: 2}
	p.ClearedBosses = []string{"whispering-forest"}
	p.CastleDefenses = []CastleDefense{{ID: "spike-trap"}}

	c := p.Clone()
	c.Weapon.StrengthBonus = 99
	c.ClearedBosses[0] = "changed"
	c.CastleDefenses = append(c.CastleDefenses, CastleDefense{ID: "iron-gate"})

	assert.Equal(t, 2, p.Weapon.StrengthBonus)
	assert.Equal(t, "whispering-forest", p.ClearedBosses[0])
	assert.Len(t, p.CastleDefenses, 1)
}

func TestPlayer_Lookups(t *testing.T) {
	p := testPlayer()
	p.ClearedBosses = []string{"sunken-dungeon"}
	p.CastleDefenses = []CastleDefense{{ID: "arrow-slits"}}

	assert.True(t, p.HasClearedBoss("sunken-dungeon"))
	assert.False(t, p.HasClearedBoss("crystal-caves"))
	assert.True(t, p.OwnsDefense("arrow-slits"))
	assert.False(t, p.OwnsDefense("iron-gate"))
	assert.False(t, p.IsFullHealth())
}

func TestPlayer_Actor(t *testing.T) {
	p := testPlayer()
	p.Weapon = &Weapon{ID: "iron-blade", Name: "Iron Blade", StrengthBonus: 5}

	a, err := p.Actor()
	require.NoError(t, err)

	if a.MaxHP() != 120 {
		t.Errorf("Actor.MaxHP() = %d, want %d", a.MaxHP(), 120)
	}
	if a.HP() != 70 {
		t.Errorf("Actor.HP() = %d, want %d", a.HP(), 70)
	}
	strength, ok := a.Attribute("strength")
	if !ok || strength != 19 {
		t.Errorf("Attribute(strength) = %d, %v, want 19, true", strength, ok)
	}

	mods := a.GetCombatModifiers()
	found := false
	for _, mod := range mods {
		// d20 lowercases modifier reasons
		if mod.Reason == strings.ToLower(p.Weapon.Name) && mod.Value == 5 {
			found = true
		}
	}
	if !found {
		t.Errorf("expected iron blade combat modifier, got %+v", mods)
	}
}

func TestPlayer_ActorHP(t *testing.T) {
	tests := []struct {
		name       string
		hp         int
		wantHP     int
		knockedOut bool
	}{
		{"full", 120, 120, false},
		{"wounded", 70, 70, false},
		{"down", 0, 0, true},
		{"below zero", -5, 0, true},
		{"over max", 150, 120, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testPlayer()
			p.HP = tt.hp

			a, err := p.Actor()
			require.NoError(t, err)
			assert.Equal(t, tt.wantHP, a.HP())
			assert.Equal(t, tt.knockedOut, a.IsKnockedOut())
		})
	}
}
