package main

import (
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"strings"

	"github.com/jwebster45206/tanelorn/pkg/content"
)

const defaultDir = "pkg/content/data"

func main() {
	dir := defaultDir
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	validator := &ContentValidator{}
	fmt.Printf("Validating %s...\n", dir)

	if err := validator.validateFS(os.DirFS(dir)); err != nil {
		fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Content tables are valid!")
}

type ContentValidator struct {
	errors []string
}

// validateFS strictly decodes every table, resolves cross references, then
// checks the rules the loader does not enforce.
func (v *ContentValidator) validateFS(fsys fs.FS) error {
	v.errors = nil

	c, err := content.Load(fsys)
	if err != nil {
		return err
	}

	v.validateZones(c)
	v.validateCastles(c)
	v.validateMarket(c)

	if len(v.errors) > 0 {
		return fmt.Errorf("validation errors:\n%s", strings.Join(v.errors, "\n"))
	}
	return nil
}

func (v *ContentValidator) validateZones(c *content.Catalog) {
	for _, z := range c.Zones() {
		v.validateIDFormat("zone ID", z.ID)
		if z.MinLevel < 1 || z.MinLevel > z.MaxLevel {
			v.addError(fmt.Sprintf("zone %s has level range %d-%d", z.ID, z.MinLevel, z.MaxLevel))
		}
		if z.EventWeights.Total() <= 0 {
			v.addError(fmt.Sprintf("zone %s has no scouting event weights", z.ID))
		}

		b, ok := c.Boss(z.ID, nil)
		if !ok {
			v.addError(fmt.Sprintf("zone %s has no boss", z.ID))
		} else {
			v.validateIDFormat("relic ID", b.Relic.ID)
		}

		items := c.MerchantItems(z.ID)
		if len(items) == 0 {
			v.addError(fmt.Sprintf("zone %s has no merchant stock", z.ID))
		}
		for _, it := range items {
			v.validateIDFormat("merchant item ID", it.ID)
			if it.Cost <= 0 {
				v.addError(fmt.Sprintf("merchant item %s in zone %s has cost %d", it.ID, z.ID, it.Cost))
			}
		}
	}
}

func (v *ContentValidator) validateCastles(c *content.Catalog) {
	for _, cs := range c.Castles() {
		v.validateIDFormat("castle ID", cs.ID)
		if cs.TurnCost < 1 {
			v.addError(fmt.Sprintf("castle %s has turn cost %d", cs.ID, cs.TurnCost))
		}
		if cs.XPMultiplier < 1 || cs.GoldMultiplier < 1 {
			v.addError(fmt.Sprintf("castle %s pays less than a plain fight", cs.ID))
		}
	}
}

func (v *ContentValidator) validateMarket(c *content.Catalog) {
	for _, w := range c.Weapons() {
		v.validateIDFormat("weapon ID", w.ID)
		v.validatePrice(w.ID, w.Cost, w.RequiredLevel)
	}
	for _, a := range c.Armors() {
		v.validateIDFormat("armor ID", a.ID)
		v.validatePrice(a.ID, a.Cost, a.RequiredLevel)
	}
	for _, d := range c.Defenses() {
		v.validateIDFormat("defense ID", d.ID)
		v.validatePrice(d.ID, d.Cost, d.RequiredLevel)
	}
}

func (v *ContentValidator) validatePrice(id string, cost, level int) {
	if cost <= 0 {
		v.addError(fmt.Sprintf("%s has cost %d", id, cost))
	}
	if level < 1 {
		v.addError(fmt.Sprintf("%s has required level %d", id, level))
	}
}

func (v *ContentValidator) validateIDFormat(fieldName, id string) {
	if !isValidID(id) {
		v.addError(fmt.Sprintf("%s '%s' should be lowercase kebab-case", fieldName, id))
	}
}

func (v *ContentValidator) addError(msg string) {
	v.errors = append(v.errors, "  - "+msg)
}

var validIDRegex = regexp.MustCompile(`^[a-z][a-z0-9-]*[a-z0-9]$|^[a-z]$`)

func isValidID(id string) bool {
	return validIDRegex.MatchString(id)
}
