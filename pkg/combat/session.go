package combat

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jwebster45206/d20"
	"github.com/jwebster45206/tanelorn/pkg/actor"
	"github.com/jwebster45206/tanelorn/pkg/dice"
)

// ErrCombatOver is returned when an action is taken after the encounter has
// ended.
var ErrCombatOver = errors.New("combat is over")

// Session tracks one encounter: the enemy copy being fought and the running
// log. Both sides' HP lives on their d20 actors. The enemy template it was
// built from is never touched.
type Session struct {
	ID      uuid.UUID
	Enemy   actor.Enemy
	Log     []string
	Outcome Outcome

	playerName string
	player     *d20.Actor
	enemy      *d20.Actor
	roller     dice.Roller
}

// NewSession opens an encounter between p and a copy of e.
func NewSession(p actor.Player, e actor.Enemy, r dice.Roller) (*Session, error) {
	e = e.Fresh()

	pa, err := p.Actor()
	if err != nil {
		return nil, fmt.Errorf("failed to start combat: %w", err)
	}
	ea, err := e.Actor()
	if err != nil {
		return nil, fmt.Errorf("failed to start combat: %w", err)
	}

	return &Session{
		ID:         uuid.New(),
		Enemy:      e,
		Log:        []string{fmt.Sprintf("A wild Level %d %s appears!", e.Level, e.Name)},
		playerName: p.Name,
		player:     pa,
		enemy:      ea,
		roller:     r,
	}, nil
}

// PlayerHP returns the player's current HP.
func (s *Session) PlayerHP() int {
	return s.player.HP()
}

// EnemyHP returns the enemy's current HP.
func (s *Session) EnemyHP() int {
	return s.enemy.HP()
}

// Player returns the player's side as the resolver sees it.
func (s *Session) Player() Combatant {
	return Combatant{Name: s.playerName, Stats: statsFromActor(s.player)}
}

// Opponent returns the enemy's side as the resolver sees it.
func (s *Session) Opponent() Combatant {
	return Combatant{Name: s.Enemy.Name, Stats: statsFromActor(s.enemy)}
}

// Modifiers returns the player's equipment modifiers, keyed by item.
func (s *Session) Modifiers() []d20.Modifier {
	return s.player.GetCombatModifiers()
}

// Act resolves one turn, applies the damage to both actors and records it.
// A knocked out actor ends the encounter.
func (s *Session) Act(a Action) (TurnResult, error) {
	if s.Outcome.Terminal() {
		return TurnResult{}, ErrCombatOver
	}

	playerHP, enemyHP := s.player.HP(), s.enemy.HP()
	res := Resolve(Turn{
		Action:   a,
		Player:   s.Player(),
		Enemy:    s.Opponent(),
		PlayerHP: playerHP,
		EnemyHP:  enemyHP,
	}, s.roller)

	s.player.SubHP(playerHP - res.PlayerHP)
	s.enemy.SubHP(enemyHP - res.EnemyHP)
	s.Enemy.TakeDamage(s.Enemy.HP - s.enemy.HP())

	if res.Outcome != Fled {
		switch {
		case s.enemy.IsKnockedOut():
			res.Outcome = Victory
		case s.player.IsKnockedOut():
			res.Outcome = Defeat
		}
	}
	res.PlayerHP, res.EnemyHP = s.player.HP(), s.enemy.HP()

	s.Outcome = res.Outcome
	s.Log = append(s.Log, res.Messages...)
	return res, nil
}

func statsFromActor(a *d20.Actor) actor.Stats {
	get := func(s actor.Stat) int {
		if v, ok := a.Attribute(string(s)); ok {
			return v
		}
		return 0
	}
	return actor.Stats{
		Strength: get(actor.Strength),
		Defense:  get(actor.Defense),
		Agility:  get(actor.Agility),
	}
}
