package actor

import "fmt"

// Stat names one of the three combat attributes.
type Stat string

const (
	Strength Stat = "strength"
	Defense  Stat = "defense"
	Agility  Stat = "agility"
)

// AllStats lists the combat attributes in display order.
var AllStats = []Stat{Strength, Defense, Agility}

// Valid reports whether s is a known stat.
func (s Stat) Valid() bool {
	switch s {
	case Strength, Defense, Agility:
		return true
	}
	return false
}

// Stats holds strength, defense and agility. It is also used for flat
// bonuses, where zero fields mean "no bonus".
type Stats struct {
	Strength int `json:"strength,omitempty"`
	Defense  int `json:"defense,omitempty"`
	Agility  int `json:"agility,omitempty"`
}

// Get returns the value of a single stat.
func (s Stats) Get(stat Stat) int {
	switch stat {
	case Strength:
		return s.Strength
	case Defense:
		return s.Defense
	case Agility:
		return s.Agility
	}
	panic(fmt.Sprintf("actor: unknown stat %q", stat))
}

// With returns a copy of s with n added to stat.
func (s Stats) With(stat Stat, n int) Stats {
	switch stat {
	case Strength:
		s.Strength += n
	case Defense:
		s.Defense += n
	case Agility:
		s.Agility += n
	default:
		panic(fmt.Sprintf("actor: unknown stat %q", stat))
	}
	return s
}

// Plus returns the field-wise sum of s and o.
func (s Stats) Plus(o Stats) Stats {
	return Stats{
		Strength: s.Strength + o.Strength,
		Defense:  s.Defense + o.Defense,
		Agility:  s.Agility + o.Agility,
	}
}

// ToAttributes converts Stats to a map for d20.Actor compatibility
func (s Stats) ToAttributes() map[string]int {
	return map[string]int{
		string(Strength): s.Strength,
		string(Defense):  s.Defense,
		string(Agility):  s.Agility,
	}
}
