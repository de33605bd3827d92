package delve

import (
	"testing"

	"github.com/jwebster45206/tanelorn/pkg/actor"
	"github.com/jwebster45206/tanelorn/pkg/dice"
	"github.com/stretchr/testify/assert"
)

func TestTickDOTs(t *testing.T) {
	dots := []DOT{
		{Type: Poison, DamagePerStep: 5, RemainingSteps: 1},
		{Type: Fire, DamagePerStep: 3, RemainingSteps: 3},
	}

	res := TickDOTs(dots)

	assert.Equal(t, 8, res.Damage)
	assert.Equal(t, []DOT{{Type: Fire, DamagePerStep: 3, RemainingSteps: 2}}, res.Remaining)
	assert.Equal(t, []string{"Poison deals 5 damage!", "Fire burns for 3 damage!"}, res.Messages)
	assert.Equal(t, 1, dots[0].RemainingSteps, "input slice must not change")
}

func TestTickDOTs_Empty(t *testing.T) {
	res := TickDOTs(nil)
	assert.Zero(t, res.Damage)
	assert.Empty(t, res.Remaining)
	assert.Empty(t, res.Messages)
}

func TestGenerateDOT(t *testing.T) {
	tests := []struct {
		name string
		r    *dice.Scripted
		want DOT
	}{
		{"poison low", dice.NewScripted(0, 0).WithFloats(0.3), DOT{Poison, 3, 2}},
		{"fire high", dice.NewScripted(5, 2).WithFloats(0.5), DOT{Fire, 8, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateDOT(tt.r))
		})
	}
}

func TestGenerateDOT_Bounds(t *testing.T) {
	r := dice.New(3)
	for i := 0; i < 200; i++ {
		d := GenerateDOT(r)
		if d.DamagePerStep < 3 || d.DamagePerStep > 8 {
			t.Errorf("DamagePerStep = %d, want 3-8", d.DamagePerStep)
		}
		if d.RemainingSteps < 2 || d.RemainingSteps > 4 {
			t.Errorf("RemainingSteps = %d, want 2-4", d.RemainingSteps)
		}
	}
}

func TestSumBuffs(t *testing.T) {
	buffs := []actor.Buff{
		{Name: "a", Stat: actor.Strength, Amount: 2},
		{Name: "b", Stat: actor.Strength, Amount: 3},
		{Name: "c", Stat: actor.Agility, Amount: 1},
	}
	assert.Equal(t, actor.Stats{Strength: 5, Agility: 1}, SumBuffs(buffs))
	assert.Equal(t, actor.Stats{}, SumBuffs(nil))
}
