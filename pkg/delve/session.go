package delve

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"
	"github.com/jwebster45206/tanelorn/pkg/actor"
	"github.com/jwebster45206/tanelorn/pkg/combat"
	"github.com/jwebster45206/tanelorn/pkg/content"
	"github.com/jwebster45206/tanelorn/pkg/dice"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrInvalidInput is returned when an input does not apply to the current
// phase. The state is returned unchanged alongside it.
var ErrInvalidInput = errors.New("invalid delve input")

// Phase is where a delve session stands.
type Phase string

const (
	PhaseDOTTick     Phase = "dot_tick"
	PhaseEvent       Phase = "event"
	PhaseEventResult Phase = "event_result"
	PhaseCombat      Phase = "combat"
	PhaseChoice      Phase = "choice"
	PhaseBossVictory Phase = "boss_victory"
	PhaseDefeat      Phase = "defeat"
	PhaseRetreat     Phase = "retreat_summary"
	PhaseDone        Phase = "done"
)

// InputKind names a player decision.
type InputKind string

const (
	InputProceed       InputKind = "proceed"
	InputAttack        InputKind = "attack"
	InputRun           InputKind = "run"
	InputBuy           InputKind = "buy"
	InputAcceptHealer  InputKind = "accept_healer"
	InputDeclineHealer InputKind = "decline_healer"
	InputContinue      InputKind = "continue"
	InputDeeper        InputKind = "deeper"
	InputRetreat       InputKind = "retreat"
)

// Input is one player decision. Index is the merchant item for InputBuy.
type Input struct {
	Kind  InputKind
	Index int
}

// Convenience inputs.
var (
	Proceed       = Input{Kind: InputProceed}
	Attack        = Input{Kind: InputAttack}
	Run           = Input{Kind: InputRun}
	AcceptHealer  = Input{Kind: InputAcceptHealer}
	DeclineHealer = Input{Kind: InputDeclineHealer}
	Continue      = Input{Kind: InputContinue}
	Deeper        = Input{Kind: InputDeeper}
	Retreat       = Input{Kind: InputRetreat}
)

// Buy returns the input for purchasing merchant item i.
func Buy(i int) Input {
	return Input{Kind: InputBuy, Index: i}
}

// Outcome is how a delve ended.
type Outcome string

const (
	Cleared   Outcome = "cleared"
	Defeated  Outcome = "defeated"
	Retreated Outcome = "retreated"
)

// Result is the summary of a finished delve, folded into the player by
// state.ApplyDelveOutcome.
type Result struct {
	Outcome        Outcome      `json:"outcome"`
	GoldEarned     int          `json:"gold_earned"`
	XPEarned       int          `json:"xp_earned"`
	Relic          *actor.Relic `json:"relic,omitempty"`
	FinalHP        int          `json:"final_hp"`
	StepsCompleted int          `json:"steps_completed"`
}

// State is the whole of a delve in progress. Nothing in it reaches the
// player until the delve ends.
type State struct {
	ID            uuid.UUID
	Zone          content.Zone
	Step          int
	Phase         Phase
	PlayerName    string
	PlayerLevel   int
	PlayerHP      int
	MaxHP         int
	Stats         actor.Stats
	ClearedBosses []string

	Gold  int
	XP    int
	DOTs  []DOT
	Buffs []actor.Buff

	Event         *Event
	EnemyHP       int
	Relic         *actor.Relic
	HealerDecided bool

	// Messages describes what the last transition did.
	Messages []string
	Result   *Result
}

// CombatStats returns the stats used in delve fights: the player's
// effective stats at entry plus active buffs.
func (s State) CombatStats() actor.Stats {
	return s.Stats.Plus(SumBuffs(s.Buffs))
}

// Done reports whether the delve has produced its Result.
func (s State) Done() bool {
	return s.Phase == PhaseDone
}

func (s State) clone() State {
	s.DOTs = slices.Clone(s.DOTs)
	s.Buffs = slices.Clone(s.Buffs)
	s.ClearedBosses = slices.Clone(s.ClearedBosses)
	s.Messages = nil
	return s
}

// Delver runs delve sessions. All randomness enters through Start and
// Transition.
type Delver struct {
	gen    *Generator
	roller dice.Roller
	logger *slog.Logger
	upper  cases.Caser
}

// NewDelver creates a Delver over the catalog.
func NewDelver(c *content.Catalog, r dice.Roller, logger *slog.Logger) *Delver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Delver{
		gen:    NewGenerator(c, r),
		roller: r,
		logger: logger,
		upper:  cases.Upper(language.English),
	}
}

// Generator exposes the step generator, for scouting.
func (d *Delver) Generator() *Generator {
	return d.gen
}

// Start opens a delve through zone at step 1.
func (d *Delver) Start(p actor.Player, zone content.Zone) State {
	s := State{
		ID:            uuid.New(),
		Zone:          zone,
		Step:          1,
		Phase:         PhaseEvent,
		PlayerName:    p.Name,
		PlayerLevel:   p.Level,
		PlayerHP:      p.HP,
		MaxHP:         p.MaxHP,
		Stats:         p.EffectiveStats(),
		ClearedBosses: slices.Clone(p.ClearedBosses),
	}
	ev := d.gen.Step(zone, s.Step, s.PlayerLevel, s.ClearedBosses)
	s.Event = &ev

	d.logger.Info("Delve started", "session_id", s.ID, "zone", zone.ID, "hp", s.PlayerHP)
	return s
}

// Transition applies one input. On ErrInvalidInput s is returned unchanged.
func (d *Delver) Transition(s State, in Input) (State, error) {
	next := s.clone()

	var err error
	switch s.Phase {
	case PhaseEvent:
		err = d.onEvent(&next, in)
	case PhaseEventResult:
		err = d.onEventResult(&next, in)
	case PhaseCombat:
		err = d.onCombat(&next, in)
	case PhaseChoice:
		err = d.onChoice(&next, in)
	case PhaseDOTTick:
		err = d.onDOTTick(&next, in)
	case PhaseBossVictory, PhaseDefeat, PhaseRetreat:
		err = d.onSummary(&next, in)
	case PhaseDone:
		err = invalid(s, in)
	default:
		panic(fmt.Sprintf("delve: unknown phase %q", s.Phase))
	}
	if err != nil {
		return s, err
	}

	d.logger.Debug("Delve transition",
		"session_id", next.ID, "input", in.Kind, "from", s.Phase, "to", next.Phase,
		"step", next.Step, "hp", next.PlayerHP)
	if next.Done() {
		d.logger.Info("Delve finished",
			"session_id", next.ID, "zone", next.Zone.ID, "outcome", next.Result.Outcome,
			"gold", next.Result.GoldEarned, "xp", next.Result.XPEarned)
	}
	return next, nil
}

func invalid(s State, in Input) error {
	return fmt.Errorf("%w: %s during %s", ErrInvalidInput, in.Kind, s.Phase)
}

func (d *Delver) onEvent(s *State, in Input) error {
	if in.Kind != InputProceed {
		return invalid(*s, in)
	}
	ev := s.Event

	switch ev.Type {
	case EventCombat, EventBoss:
		s.EnemyHP = ev.Enemy.MaxHP
		s.Phase = PhaseCombat
		s.Messages = []string{fmt.Sprintf("A wild Level %d %s appears!", ev.Enemy.Level, ev.Enemy.Name)}
	case EventTrap:
		s.PlayerHP = max(0, s.PlayerHP-ev.Damage)
		s.Messages = []string{ev.Message, fmt.Sprintf("You take %d damage!", ev.Damage)}
		if ev.DOT != nil {
			s.DOTs = append(s.DOTs, *ev.DOT)
			s.Messages = append(s.Messages, afflictedMessage(*ev.DOT))
		}
		if s.PlayerHP <= 0 {
			s.Phase = PhaseDefeat
			return nil
		}
		s.Phase = PhaseEventResult
	case EventTreasure:
		s.Gold += ev.Gold
		s.Messages = []string{ev.Message, fmt.Sprintf("You gain %d gold!", ev.Gold)}
		s.Phase = PhaseEventResult
	case EventBuffer:
		s.Buffs = append(s.Buffs, *ev.Buff)
		s.Messages = []string{ev.Message, fmt.Sprintf("+%d %s for the rest of the delve!", ev.Buff.Amount, d.upper.String(string(ev.Buff.Stat)))}
		s.Phase = PhaseEventResult
	case EventMerchant, EventHealer:
		s.Phase = PhaseEventResult
	default:
		panic(fmt.Sprintf("delve: unhandled event type %q", ev.Type))
	}
	return nil
}

func afflictedMessage(d DOT) string {
	if d.Type == Poison {
		return fmt.Sprintf("You are poisoned for %d steps!", d.RemainingSteps)
	}
	return fmt.Sprintf("You are set ablaze for %d steps!", d.RemainingSteps)
}

func (d *Delver) onEventResult(s *State, in Input) error {
	ev := s.Event

	switch in.Kind {
	case InputBuy:
		if ev.Type != EventMerchant || in.Index < 0 || in.Index >= len(ev.Items) {
			return invalid(*s, in)
		}
		d.buy(s, ev.Items[in.Index])
		return nil

	case InputAcceptHealer:
		if ev.Type != EventHealer || s.HealerDecided {
			return invalid(*s, in)
		}
		if s.Gold < ev.Cost {
			s.Messages = []string{"Not enough gold"}
			return nil
		}
		s.Gold -= ev.Cost
		s.PlayerHP = min(s.MaxHP, s.PlayerHP+ev.HealAmount)
		s.HealerDecided = true
		s.Messages = []string{fmt.Sprintf("The healer restores %d HP.", ev.HealAmount)}
		return nil

	case InputDeclineHealer:
		if ev.Type != EventHealer || s.HealerDecided {
			return invalid(*s, in)
		}
		s.HealerDecided = true
		return nil

	case InputContinue:
		if ev.Type == EventHealer && !s.HealerDecided {
			return invalid(*s, in)
		}
		d.afterStep(s)
		return nil
	}
	return invalid(*s, in)
}

func (d *Delver) buy(s *State, item content.Item) {
	if s.Gold < item.Cost {
		s.Messages = []string{"Not enough gold"}
		return
	}
	s.Gold -= item.Cost

	switch item.Effect.Kind {
	case content.EffectHeal:
		s.PlayerHP = min(s.MaxHP, s.PlayerHP+item.Effect.Amount)
		s.Messages = []string{fmt.Sprintf("Used %s - restored %d HP", item.Name, item.Effect.Amount)}
	case content.EffectBuff:
		b := *item.Effect.Buff
		s.Buffs = append(s.Buffs, b)
		s.Messages = []string{fmt.Sprintf("Bought %s - +%d %s", item.Name, b.Amount, d.upper.String(string(b.Stat)))}
	default:
		panic(fmt.Sprintf("delve: unhandled item effect %q", item.Effect.Kind))
	}
}

func (d *Delver) onCombat(s *State, in Input) error {
	var action combat.Action
	switch in.Kind {
	case InputAttack:
		action = combat.Attack
	case InputRun:
		action = combat.Run
	default:
		return invalid(*s, in)
	}

	enemy := s.Event.Enemy
	res := combat.Resolve(combat.Turn{
		Action:   action,
		Player:   combat.Combatant{Name: s.PlayerName, Stats: s.CombatStats()},
		Enemy:    combat.Combatant{Name: enemy.Name, Stats: enemy.Stats()},
		PlayerHP: s.PlayerHP,
		EnemyHP:  s.EnemyHP,
	}, d.roller)

	s.PlayerHP = res.PlayerHP
	s.EnemyHP = res.EnemyHP
	s.Messages = res.Messages

	switch res.Outcome {
	case combat.Victory:
		s.XP += enemy.XPReward
		s.Gold += enemy.GoldReward
		if s.Event.Type == EventBoss || s.Step >= TotalSteps {
			s.Relic = s.Event.Relic
			s.Phase = PhaseBossVictory
			return nil
		}
		d.afterStep(s)
	case combat.Defeat:
		s.Phase = PhaseDefeat
	case combat.Fled:
		s.finish(Result{
			Outcome:        Retreated,
			GoldEarned:     s.Gold,
			XPEarned:       s.XP,
			FinalHP:        s.PlayerHP,
			StepsCompleted: s.Step - 1,
		})
	}
	return nil
}

func (d *Delver) onChoice(s *State, in Input) error {
	switch in.Kind {
	case InputDeeper:
		d.advance(s)
	case InputRetreat:
		s.Phase = PhaseRetreat
	default:
		return invalid(*s, in)
	}
	return nil
}

func (d *Delver) onDOTTick(s *State, in Input) error {
	if in.Kind != InputContinue {
		return invalid(*s, in)
	}
	d.generate(s)
	return nil
}

func (d *Delver) onSummary(s *State, in Input) error {
	if in.Kind != InputContinue {
		return invalid(*s, in)
	}
	switch s.Phase {
	case PhaseDefeat:
		s.finish(Result{
			Outcome:        Defeated,
			GoldEarned:     s.Gold / 2,
			XPEarned:       s.XP,
			FinalHP:        0,
			StepsCompleted: s.Step,
		})
	case PhaseRetreat:
		s.finish(Result{
			Outcome:        Retreated,
			GoldEarned:     s.Gold,
			XPEarned:       s.XP,
			FinalHP:        s.PlayerHP,
			StepsCompleted: s.Step,
		})
	case PhaseBossVictory:
		s.finish(Result{
			Outcome:        Cleared,
			GoldEarned:     s.Gold,
			XPEarned:       s.XP,
			Relic:          s.Relic,
			FinalHP:        s.PlayerHP,
			StepsCompleted: TotalSteps,
		})
	}
	return nil
}

// afterStep moves on once a step is resolved: from step 5 straight to the
// boss, otherwise to the deeper-or-retreat choice.
func (d *Delver) afterStep(s *State) {
	if s.Step >= TotalSteps-1 {
		d.advance(s)
		return
	}
	s.Phase = PhaseChoice
}

// advance enters the next step, ticking lingering effects first.
func (d *Delver) advance(s *State) {
	s.Step++
	s.HealerDecided = false
	s.Event = nil

	if len(s.DOTs) == 0 {
		d.generate(s)
		return
	}

	tick := TickDOTs(s.DOTs)
	s.PlayerHP = max(0, s.PlayerHP-tick.Damage)
	s.DOTs = tick.Remaining
	s.Messages = append(s.Messages, tick.Messages...)

	if s.PlayerHP <= 0 {
		s.Phase = PhaseDefeat
		return
	}
	s.Phase = PhaseDOTTick
}

func (d *Delver) generate(s *State) {
	ev := d.gen.Step(s.Zone, s.Step, s.PlayerLevel, s.ClearedBosses)
	s.Event = &ev
	s.Phase = PhaseEvent
}

func (s *State) finish(r Result) {
	s.Result = &r
	s.Phase = PhaseDone
}
