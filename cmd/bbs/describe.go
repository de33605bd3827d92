package main

import (
	"fmt"
	"strings"

	"github.com/jwebster45206/d20"
	"github.com/jwebster45206/tanelorn/pkg/actor"
	"github.com/jwebster45206/tanelorn/pkg/delve"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// describeEvent announces a delve step before the player commits to it.
func describeEvent(ev delve.Event) []string {
	switch ev.Type {
	case delve.EventCombat:
		lines := []string{fmt.Sprintf("A Level %d %s blocks your path!", ev.Enemy.Level, ev.Enemy.Name)}
		return append(lines, ev.Enemy.Art...)
	case delve.EventBoss:
		lines := []string{fmt.Sprintf("The guardian %s awaits!", ev.Enemy.Name)}
		return append(lines, ev.Enemy.Art...)
	case delve.EventTrap:
		return []string{"Something feels wrong about this passage..."}
	case delve.EventTreasure:
		return []string{"Something glints in the shadows ahead..."}
	case delve.EventBuffer:
		return []string{"A stranger approaches with an offer..."}
	case delve.EventHealer:
		return []string{fmt.Sprintf("A healer offers to restore %d HP for %d gold.", ev.HealAmount, ev.Cost)}
	case delve.EventMerchant:
		lines := []string{"A merchant spreads out their wares:"}
		for i, it := range ev.Items {
			lines = append(lines, fmt.Sprintf("  %d) %s - %dg  %s", i+1, it.Name, it.Cost, it.Description))
		}
		return lines
	case delve.EventNothing:
		return []string{ev.Message}
	}
	panic(fmt.Sprintf("bbs: cannot describe event %q", ev.Type))
}

// delvePrompt lists the keys that apply in the current phase.
func delvePrompt(s delve.State) string {
	switch s.Phase {
	case delve.PhaseEvent:
		return "[Enter] proceed"
	case delve.PhaseCombat:
		return "[A]ttack  [R]un"
	case delve.PhaseEventResult:
		switch {
		case s.Event.Type == delve.EventMerchant:
			return fmt.Sprintf("[1-%d] buy  [Enter] move on", len(s.Event.Items))
		case s.Event.Type == delve.EventHealer && !s.HealerDecided:
			return "[Y] accept  [N] decline"
		}
		return "[Enter] continue"
	case delve.PhaseChoice:
		return fmt.Sprintf("[D]eeper to step %d  [X] retreat with your spoils", s.Step+1)
	case delve.PhaseDOTTick, delve.PhaseBossVictory, delve.PhaseDefeat, delve.PhaseRetreat:
		return "[Enter] continue"
	}
	return ""
}

// delveInput maps a key press to a delve input for the current phase.
func delveInput(s delve.State, key string) (delve.Input, bool) {
	key = strings.ToLower(key)
	switch s.Phase {
	case delve.PhaseEvent:
		if key == "enter" || key == "p" {
			return delve.Proceed, true
		}
	case delve.PhaseCombat:
		switch key {
		case "a":
			return delve.Attack, true
		case "r":
			return delve.Run, true
		}
	case delve.PhaseEventResult:
		switch key {
		case "y":
			return delve.AcceptHealer, true
		case "n":
			return delve.DeclineHealer, true
		case "enter", "c":
			return delve.Continue, true
		}
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			return delve.Buy(int(key[0] - '1')), true
		}
	case delve.PhaseChoice:
		switch key {
		case "d":
			return delve.Deeper, true
		case "x":
			return delve.Retreat, true
		}
	case delve.PhaseDOTTick, delve.PhaseBossVictory, delve.PhaseDefeat, delve.PhaseRetreat:
		if key == "enter" || key == "c" {
			return delve.Continue, true
		}
	}
	return delve.Input{}, false
}

// delveSummary reports a finished delve.
func delveSummary(r delve.Result) []string {
	var head string
	switch r.Outcome {
	case delve.Cleared:
		head = "You have conquered the depths!"
	case delve.Defeated:
		head = "You collapse in the darkness. Half your spoils are lost."
	case delve.Retreated:
		head = "You retreat to the surface."
	}
	lines := []string{
		head,
		fmt.Sprintf("Steps completed: %d/%d  Gold: %d  XP: %d", r.StepsCompleted, delve.TotalSteps, r.GoldEarned, r.XPEarned),
	}
	if r.Relic != nil {
		lines = append(lines, fmt.Sprintf("Relic claimed: %s (%s)", r.Relic.Name, bonusText(r.Relic.StatBonuses)))
	}
	return lines
}

// bonusText renders a stat bonus as "+2 Defense, +1 Agility".
func bonusText(s actor.Stats) string {
	var parts []string
	for _, st := range actor.AllStats {
		if v := s.Get(st); v != 0 {
			parts = append(parts, fmt.Sprintf("%+d %s", v, titleCaser.String(string(st))))
		}
	}
	if len(parts) == 0 {
		return "no bonus"
	}
	return strings.Join(parts, ", ")
}

// modifierText renders combat modifiers as "+5 Iron Blade, +2 Leather Vest".
func modifierText(mods []d20.Modifier) string {
	parts := make([]string, 0, len(mods))
	for _, mod := range mods {
		if mod.Value != 0 {
			parts = append(parts, fmt.Sprintf("%+d %s", mod.Value, titleCaser.String(mod.Reason)))
		}
	}
	return strings.Join(parts, ", ")
}

// hpBar draws a width-cell health bar.
func hpBar(hp, maxHP, width int) string {
	if maxHP <= 0 || width <= 0 {
		return ""
	}
	filled := min(width, max(0, hp*width/maxHP))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
