// Package content holds the read-only game tables: the bestiary, zones and
// their bosses, delve merchants, castles and market equipment.
//
// Tables are JSON files embedded from data/ and decoded once into a Catalog.
// Every lookup that returns an enemy returns a fresh copy, so callers may
// mutate what they get.
package content

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"sync"

	"github.com/jwebster45206/tanelorn/pkg/actor"
)

//go:embed data/*.json
var embedded embed.FS

// ErrUnknownEnemy is returned when a name matches no bestiary entry.
var ErrUnknownEnemy = errors.New("unknown enemy")

// Catalog is the loaded set of content tables.
type Catalog struct {
	enemies  []actor.Enemy
	byName   map[string]actor.Enemy
	zones    []Zone
	zoneByID map[string]Zone
	bosses   map[string]ZoneBoss
	merchant map[string][]Item
	castles  []Castle
	weapons  []actor.Weapon
	armors   []actor.Armor
	defenses []actor.CastleDefense
}

type enemiesFile struct {
	Enemies []actor.Enemy `json:"enemies"`
}

type zonesFile struct {
	Zones []Zone `json:"zones"`
}

type bossesFile struct {
	Bosses []ZoneBoss `json:"bosses"`
}

type merchantsFile struct {
	Merchants map[string][]Item `json:"merchants"`
}

type castlesFile struct {
	Castles []Castle `json:"castles"`
}

type equipmentFile struct {
	Weapons  []actor.Weapon        `json:"weapons"`
	Armors   []actor.Armor         `json:"armors"`
	Defenses []actor.CastleDefense `json:"defenses"`
}

// Files lists the table files a catalog directory must contain.
var Files = []string{
	"enemies.json",
	"zones.json",
	"bosses.json",
	"merchants.json",
	"castles.json",
	"equipment.json",
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the catalog built from the embedded tables. It panics if
// the embedded data is invalid, which the package tests rule out.
func Default() *Catalog {
	defaultOnce.Do(func() {
		sub, err := fs.Sub(embedded, "data")
		if err != nil {
			panic(fmt.Sprintf("content: %v", err))
		}
		c, err := Load(sub)
		if err != nil {
			panic(fmt.Sprintf("content: failed to load embedded tables: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Load decodes the table files found at the root of fsys and validates that
// every cross reference resolves.
func Load(fsys fs.FS) (*Catalog, error) {
	var (
		ef enemiesFile
		zf zonesFile
		bf bossesFile
		mf merchantsFile
		cf castlesFile
		qf equipmentFile
	)
	targets := map[string]any{
		"enemies.json":   &ef,
		"zones.json":     &zf,
		"bosses.json":    &bf,
		"merchants.json": &mf,
		"castles.json":   &cf,
		"equipment.json": &qf,
	}
	for _, name := range Files {
		if err := DecodeFile(fsys, name, targets[name]); err != nil {
			return nil, err
		}
	}

	c := &Catalog{
		byName:   make(map[string]actor.Enemy, len(ef.Enemies)),
		zoneByID: make(map[string]Zone, len(zf.Zones)),
		bosses:   make(map[string]ZoneBoss, len(bf.Bosses)),
		merchant: mf.Merchants,
		castles:  cf.Castles,
		weapons:  qf.Weapons,
		armors:   qf.Armors,
		defenses: qf.Defenses,
	}
	if c.merchant == nil {
		c.merchant = map[string][]Item{}
	}

	for _, e := range ef.Enemies {
		e = e.Fresh()
		if _, dup := c.byName[e.Name]; dup {
			return nil, fmt.Errorf("duplicate enemy %q", e.Name)
		}
		c.byName[e.Name] = e
		c.enemies = append(c.enemies, e)
	}
	if len(c.enemies) == 0 {
		return nil, errors.New("bestiary is empty")
	}

	for _, z := range zf.Zones {
		if _, dup := c.zoneByID[z.ID]; dup {
			return nil, fmt.Errorf("duplicate zone %q", z.ID)
		}
		if len(z.EnemyPool) == 0 {
			return nil, fmt.Errorf("zone %q has an empty enemy pool", z.ID)
		}
		for _, name := range z.EnemyPool {
			if _, ok := c.byName[name]; !ok {
				return nil, fmt.Errorf("zone %q: %w: %q", z.ID, ErrUnknownEnemy, name)
			}
		}
		c.zoneByID[z.ID] = z
		c.zones = append(c.zones, z)
	}

	for _, b := range bf.Bosses {
		if _, ok := c.zoneByID[b.ZoneID]; !ok {
			return nil, fmt.Errorf("boss %q references unknown zone %q", b.Enemy.Name, b.ZoneID)
		}
		b.Enemy = b.Enemy.Fresh()
		c.bosses[b.ZoneID] = b
	}

	for zoneID, items := range c.merchant {
		if _, ok := c.zoneByID[zoneID]; !ok {
			return nil, fmt.Errorf("merchant references unknown zone %q", zoneID)
		}
		for _, it := range items {
			if err := validateItem(it); err != nil {
				return nil, fmt.Errorf("merchant %q: %w", zoneID, err)
			}
		}
	}

	for i := range c.castles {
		c.castles[i].Boss = c.castles[i].Boss.Fresh()
	}

	return c, nil
}

// DecodeFile strictly decodes one JSON table, rejecting unknown fields.
func DecodeFile(fsys fs.FS, name string, v any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path.Base(name), err)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path.Base(name), err)
	}
	return nil
}

func validateItem(it Item) error {
	switch it.Effect.Kind {
	case EffectHeal:
		if it.Effect.Amount <= 0 {
			return fmt.Errorf("item %q heals a non-positive amount", it.ID)
		}
	case EffectBuff:
		if it.Effect.Buff == nil || !it.Effect.Buff.Stat.Valid() {
			return fmt.Errorf("item %q has an invalid buff", it.ID)
		}
	default:
		return fmt.Errorf("item %q has unknown effect %q", it.ID, it.Effect.Kind)
	}
	return nil
}

// Enemy returns a fresh copy of the named bestiary entry.
func (c *Catalog) Enemy(name string) (actor.Enemy, error) {
	e, ok := c.byName[name]
	if !ok {
		return actor.Enemy{}, fmt.Errorf("%w: %q", ErrUnknownEnemy, name)
	}
	return e.Fresh(), nil
}

// Enemies returns fresh copies of the whole bestiary in table order.
func (c *Catalog) Enemies() []actor.Enemy {
	out := make([]actor.Enemy, len(c.enemies))
	for i, e := range c.enemies {
		out[i] = e.Fresh()
	}
	return out
}

// EnemiesInLevelRange returns fresh copies of entries with lo <= level <= hi.
func (c *Catalog) EnemiesInLevelRange(lo, hi int) []actor.Enemy {
	var out []actor.Enemy
	for _, e := range c.enemies {
		if e.Level >= lo && e.Level <= hi {
			out = append(out, e.Fresh())
		}
	}
	return out
}

// NearestLevel returns the first entry whose level is closest to level.
func (c *Catalog) NearestLevel(level int) actor.Enemy {
	best := c.enemies[0]
	for _, e := range c.enemies[1:] {
		if abs(e.Level-level) < abs(best.Level-level) {
			best = e
		}
	}
	return best.Fresh()
}

// Zones returns every zone in table order.
func (c *Catalog) Zones() []Zone {
	return slices.Clone(c.zones)
}

// Zone looks up a zone by id.
func (c *Catalog) Zone(id string) (Zone, bool) {
	z, ok := c.zoneByID[id]
	return z, ok
}

// AvailableZones returns the zones whose minimum level the player meets.
func (c *Catalog) AvailableZones(playerLevel int) []Zone {
	var out []Zone
	for _, z := range c.zones {
		if z.MinLevel <= playerLevel {
			out = append(out, z)
		}
	}
	return out
}

// Boss returns the zone's boss unless the zone is listed in cleared.
func (c *Catalog) Boss(zoneID string, cleared []string) (ZoneBoss, bool) {
	if slices.Contains(cleared, zoneID) {
		return ZoneBoss{}, false
	}
	b, ok := c.bosses[zoneID]
	if !ok {
		return ZoneBoss{}, false
	}
	b.Enemy = b.Enemy.Fresh()
	return b, true
}

// MerchantItems returns the fixed catalog of a zone's delve merchant.
func (c *Catalog) MerchantItems(zoneID string) []Item {
	return slices.Clone(c.merchant[zoneID])
}

// Castles returns every castle in table order.
func (c *Catalog) Castles() []Castle {
	out := slices.Clone(c.castles)
	for i := range out {
		out[i].Boss = out[i].Boss.Fresh()
	}
	return out
}

// Castle looks up a castle by id.
func (c *Catalog) Castle(id string) (Castle, bool) {
	for _, cs := range c.castles {
		if cs.ID == id {
			cs.Boss = cs.Boss.Fresh()
			return cs, true
		}
	}
	return Castle{}, false
}

// AvailableCastles returns the castles whose required level the player meets.
func (c *Catalog) AvailableCastles(playerLevel int) []Castle {
	var out []Castle
	for _, cs := range c.Castles() {
		if cs.RequiredLevel <= playerLevel {
			out = append(out, cs)
		}
	}
	return out
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
