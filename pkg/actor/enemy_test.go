package actor

import "testing"

func TestEnemy_Fresh(t *testing.T) {
	t.Run("resets HP to MaxHP", func(t *testing.T) {
		tmpl := Enemy{Name: "Sewer Rat", HP: 3, MaxHP: 30}
		e := tmpl.Fresh()

		if e.HP != 30 {
			t.Errorf("expected HP 30, got %d", e.HP)
		}
		if tmpl.HP != 3 {
			t.Errorf("expected template HP untouched, got %d", tmpl.HP)
		}
	})

	t.Run("derives MaxHP from HP when unset", func(t *testing.T) {
		e := Enemy{Name: "Goblin Runt", HP: 45}.Fresh()

		if e.MaxHP != 45 || e.HP != 45 {
			t.Errorf("expected 45/45, got %d/%d", e.HP, e.MaxHP)
		}
	})

	t.Run("art is not shared with the template", func(t *testing.T) {
		tmpl := Enemy{Name: "Wraith", MaxHP: 95, Art: []string{"(o.o)"}}
		e := tmpl.Fresh()
		e.Art[0] = "changed"

		if tmpl.Art[0] != "(o.o)" {
			t.Errorf("expected template art untouched, got %q", tmpl.Art[0])
		}
	})
}

func TestEnemy_TakeDamage(t *testing.T) {
	e := Enemy{Name: "Orc Grunt", MaxHP: 60}.Fresh()

	e.TakeDamage(-5)
	if e.HP != 60 {
		t.Errorf("expected negative damage ignored, got %d", e.HP)
	}

	e.TakeDamage(25)
	if e.HP != 35 {
		t.Errorf("expected HP 35, got %d", e.HP)
	}

	e.TakeDamage(100)
	if e.HP != 0 {
		t.Errorf("expected HP clamped to 0, got %d", e.HP)
	}
	if !e.IsDefeated() {
		t.Error("expected enemy to be defeated")
	}
}

func TestEnemy_Actor(t *testing.T) {
	e := Enemy{Name: "Skeleton Warrior", MaxHP: 70, Strength: 12, Defense: 6, Agility: 8}.Fresh()

	a, err := e.Actor()
	if err != nil {
		t.Fatalf("Actor() error = %v", err)
	}
	if a.MaxHP() != 70 {
		t.Errorf("Actor.MaxHP() = %d, want %d", a.MaxHP(), 70)
	}
	if agi, ok := a.Attribute("agility"); !ok || agi != 8 {
		t.Errorf("Attribute(agility) = %d, %v, want 8, true", agi, ok)
	}
}

func TestEnemy_ActorDefeated(t *testing.T) {
	e := Enemy{Name: "Sewer Rat", MaxHP: 30, Strength: 5, Defense: 2, Agility: 4}.Fresh()
	e.TakeDamage(40)

	a, err := e.Actor()
	if err != nil {
		t.Fatalf("Actor() error = %v", err)
	}
	if a.HP() != 0 || !a.IsKnockedOut() {
		t.Errorf("Actor.HP() = %d, knocked out %v, want 0, true", a.HP(), a.IsKnockedOut())
	}
}

func TestEnemy_ASCII(t *testing.T) {
	e := Enemy{Art: []string{" /\\_/\\", "( o.o )"}}
	if got := e.ASCII(); got != " /\\_/\\\n( o.o )" {
		t.Errorf("unexpected art: %q", got)
	}
}
