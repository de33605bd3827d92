package actor

// Weapon adds to strength while equipped.
type Weapon struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	StrengthBonus int    `json:"strength_bonus"`
	Cost          int    `json:"cost"`
	RequiredLevel int    `json:"required_level"`
}

// Armor adds to defense while equipped.
type Armor struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	DefenseBonus  int    `json:"defense_bonus"`
	Cost          int    `json:"cost"`
	RequiredLevel int    `json:"required_level"`
}

// CastleDefense is a fortification the player owns. Defenses stack; each
// can be bought once.
type CastleDefense struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Cost          int    `json:"cost"`
	RequiredLevel int    `json:"required_level"`
}

// Relic is a permanent artifact dropped by a zone boss. A player holds at
// most one.
type Relic struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	StatBonuses Stats  `json:"stat_bonuses"`
}

// Buff is a temporary stat bonus that lasts for one delve.
type Buff struct {
	Name   string `json:"name"`
	Stat   Stat   `json:"stat"`
	Amount int    `json:"amount"`
}
