// Package game drives one player's session: it starts encounters, feeds
// player input to them and folds finished outcomes back into the player.
package game

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/jwebster45206/tanelorn/internal/logger"
	"github.com/jwebster45206/tanelorn/pkg/actor"
	"github.com/jwebster45206/tanelorn/pkg/combat"
	"github.com/jwebster45206/tanelorn/pkg/content"
	"github.com/jwebster45206/tanelorn/pkg/delve"
	"github.com/jwebster45206/tanelorn/pkg/dice"
	"github.com/jwebster45206/tanelorn/pkg/quest"
	"github.com/jwebster45206/tanelorn/pkg/state"
)

var (
	ErrNoTurns    = errors.New("not enough turns")
	ErrLocked     = errors.New("level too low")
	ErrBusy       = errors.New("an encounter is already in progress")
	ErrIdle       = errors.New("no encounter in progress")
	ErrNotFound   = errors.New("not found")
	ErrTooWounded = errors.New("too wounded to delve")
)

// Encounter is the fight in progress.
type Encounter struct {
	Session *combat.Session
	Context state.Context
}

// Game holds one player and whatever they are currently doing. It is not
// safe for concurrent use.
type Game struct {
	catalog     *content.Catalog
	roller      dice.Roller
	delver      *delve.Delver
	logger      *slog.Logger
	bountyCount int

	player    actor.Player
	bounties  []quest.Bounty
	encounter *Encounter
	delve     *delve.State
}

// Option configures a Game.
type Option func(*Game)

// WithPlayer starts the game from an existing character.
func WithPlayer(p actor.Player) Option {
	return func(g *Game) {
		g.player = p.Clone()
	}
}

// WithStartingTurns overrides the turn allowance of a new character.
func WithStartingTurns(n int) Option {
	return func(g *Game) {
		if n > 0 {
			g.player.TurnsRemaining = n
		}
	}
}

// WithBountyCount sets the size of the bounty board.
func WithBountyCount(n int) Option {
	return func(g *Game) {
		g.bountyCount = n
	}
}

// New creates a game for a fresh character named name and posts the first
// bounty board.
func New(c *content.Catalog, r dice.Roller, log *slog.Logger, name string, opts ...Option) *Game {
	if log == nil {
		log = slog.Default()
	}
	g := &Game{
		catalog:     c,
		roller:      r,
		delver:      delve.NewDelver(c, r, log),
		logger:      log,
		bountyCount: quest.DefaultCount,
		player:      state.NewPlayer(name),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.RefreshBounties()
	return g
}

// Catalog returns the content the game draws from.
func (g *Game) Catalog() *content.Catalog {
	return g.catalog
}

// Player returns a copy of the current character.
func (g *Game) Player() actor.Player {
	return g.player.Clone()
}

// Bounties returns the posted bounties.
func (g *Game) Bounties() []quest.Bounty {
	return append([]quest.Bounty(nil), g.bounties...)
}

// Encounter returns the fight in progress, if any.
func (g *Game) Encounter() (*Encounter, bool) {
	return g.encounter, g.encounter != nil
}

// DelveState returns the delve in progress, if any.
func (g *Game) DelveState() (delve.State, bool) {
	if g.delve == nil {
		return delve.State{}, false
	}
	return *g.delve, true
}

// Busy reports whether a fight or delve is in progress.
func (g *Game) Busy() bool {
	return g.encounter != nil || g.delve != nil
}

// RefreshBounties posts a new board for the player's level.
func (g *Game) RefreshBounties() []quest.Bounty {
	g.bounties = quest.GenerateBounties(g.catalog, g.roller, g.player.Level, g.bountyCount)
	g.logger.Debug("Bounties posted", "count", len(g.bounties), "level", g.player.Level)
	return g.Bounties()
}

// Fight starts a random encounter near the player's level.
func (g *Game) Fight() (*Encounter, error) {
	ctx := state.AdventureContext()
	if err := g.canEngage(ctx); err != nil {
		return nil, err
	}
	return g.engage(g.catalog.RandomEncounter(g.roller, g.player.Level), ctx)
}

// FightBounty starts the fight for the i-th posted bounty.
func (g *Game) FightBounty(i int) (*Encounter, error) {
	if i < 0 || i >= len(g.bounties) {
		return nil, fmt.Errorf("bounty %d: %w", i, ErrNotFound)
	}
	b := g.bounties[i]
	ctx := state.BountyContext(b)
	if err := g.canEngage(ctx); err != nil {
		return nil, err
	}

	e, err := quest.TargetEnemy(g.catalog, b)
	if err != nil {
		return nil, err
	}
	return g.engage(e, ctx)
}

// Raid starts an assault on a castle.
func (g *Game) Raid(castleID string) (*Encounter, error) {
	c, ok := g.catalog.Castle(castleID)
	if !ok {
		return nil, fmt.Errorf("castle %q: %w", castleID, ErrNotFound)
	}
	ctx := state.RaidContext(c)
	if err := g.canEngage(ctx); err != nil {
		return nil, err
	}
	return g.engage(c.Boss, ctx)
}

func (g *Game) canEngage(ctx state.Context) error {
	switch {
	case g.Busy():
		return ErrBusy
	case !ctx.HasTurns(g.player):
		return ErrNoTurns
	case g.player.Level < ctx.RequiredLevel():
		return ErrLocked
	}
	return nil
}

func (g *Game) engage(e actor.Enemy, ctx state.Context) (*Encounter, error) {
	s, err := combat.NewSession(g.player, e, g.roller)
	if err != nil {
		return nil, err
	}
	g.encounter = &Encounter{Session: s, Context: ctx}

	logger.WithSessionID(g.logger, s.ID).Info("Combat started",
		"context", ctx.Kind, "enemy", s.Enemy.Name, "enemy_level", s.Enemy.Level, "hp", g.player.HP)
	return g.encounter, nil
}

// Combat plays one turn of the current fight. When the fight ends its
// outcome is applied to the player and the encounter is cleared.
func (g *Game) Combat(a combat.Action) (combat.TurnResult, error) {
	if g.encounter == nil {
		return combat.TurnResult{}, ErrIdle
	}
	enc := g.encounter
	log := logger.WithSessionID(g.logger, enc.Session.ID)

	res, err := enc.Session.Act(a)
	if err != nil {
		logger.WithError(log, err).Error("Combat turn failed")
		return res, err
	}
	if !res.Outcome.Terminal() {
		return res, nil
	}

	before := g.player
	g.player = state.ApplyCombatOutcome(g.player, state.CombatResult{
		Outcome: res.Outcome,
		Enemy:   enc.Session.Enemy,
		FinalHP: res.PlayerHP,
		Context: enc.Context,
	})
	g.encounter = nil

	if res.Outcome == combat.Victory && enc.Context.Kind == state.BountyHunt {
		g.removeBounty(enc.Context.Bounty.ID)
	}

	log.Info("Combat finished",
		"context", enc.Context.Kind, "enemy", enc.Session.Enemy.Name, "outcome", res.Outcome,
		"xp", g.player.XP-before.XP, "gold", g.player.Gold-before.Gold,
		"hp", g.player.HP, "turns", g.player.TurnsRemaining)
	g.logLevelUp(before)
	return res, nil
}

func (g *Game) removeBounty(id string) {
	for i, b := range g.bounties {
		if b.ID == id {
			g.bounties = append(g.bounties[:i:i], g.bounties[i+1:]...)
			return
		}
	}
}

// StartDelve enters a zone. The entry turn is charged when the delve ends.
// A player left at 0 HP by a failed delve must heal or win a fight first.
func (g *Game) StartDelve(zoneID string) (delve.State, error) {
	zone, ok := g.catalog.Zone(zoneID)
	if !ok {
		return delve.State{}, fmt.Errorf("zone %q: %w", zoneID, ErrNotFound)
	}
	switch {
	case g.Busy():
		return delve.State{}, ErrBusy
	case g.player.TurnsRemaining < 1:
		return delve.State{}, ErrNoTurns
	case g.player.Level < zone.MinLevel:
		return delve.State{}, ErrLocked
	case g.player.HP <= 0:
		return delve.State{}, ErrTooWounded
	}

	s := g.delver.Start(g.player, zone)
	g.delve = &s
	return s, nil
}

// Delve feeds one input to the delve in progress. A finished delve is
// merged into the player and cleared.
func (g *Game) Delve(in delve.Input) (delve.State, error) {
	if g.delve == nil {
		return delve.State{}, ErrIdle
	}

	s, err := g.delver.Transition(*g.delve, in)
	if err != nil {
		return s, err
	}
	if !s.Done() {
		g.delve = &s
		return s, nil
	}

	before := g.player
	g.player = state.ApplyDelveOutcome(g.player, *s.Result, s.Zone)
	g.delve = nil

	logger.WithSessionID(g.logger, s.ID).Info("Delve applied",
		"zone", s.Zone.ID, "outcome", s.Result.Outcome, "hp", g.player.HP,
		"turns", g.player.TurnsRemaining, "relic", g.player.Relic != nil)
	g.logLevelUp(before)
	return s, nil
}

func (g *Game) logLevelUp(before actor.Player) {
	if g.player.Level > before.Level {
		g.logger.Info("Level up", "level", g.player.Level, "max_hp", g.player.MaxHP)
	}
}
