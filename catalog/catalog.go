// Package catalog holds the read-only set of known destinations and the
// resolver that maps free-text destinations onto them.
package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// Style is a spending tier. It selects a per-day cost and an activity list.
type Style string

const (
	StyleBudget Style = "budget"
	StyleNormal Style = "normal"
	StyleLuxury Style = "luxury"
)

// Styles lists every tier a profile must price.
var Styles = []Style{StyleBudget, StyleNormal, StyleLuxury}

// ParseStyle matches s against the known tiers, ignoring case and
// surrounding whitespace.
func ParseStyle(s string) (Style, bool) {
	switch Style(strings.ToLower(strings.TrimSpace(s))) {
	case StyleBudget:
		return StyleBudget, true
	case StyleNormal:
		return StyleNormal, true
	case StyleLuxury:
		return StyleLuxury, true
	}
	return StyleNormal, false
}

type FoodItem struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
}

// String renders the item the way the front-end lists street food.
func (f FoodItem) String() string {
	return fmt.Sprintf("%s (~₹%d)", f.Name, f.Price)
}

// CityProfile describes one destination. Profiles are never mutated after
// the catalog is built.
type CityProfile struct {
	Key          string        `json:"key"`
	Name         string        `json:"name"`
	FamousPlaces []string      `json:"famous_places"`
	HiddenGems   []string      `json:"hidden_gems"`
	FoodItems    []FoodItem    `json:"food_items"`
	PerDayCost   map[Style]int `json:"per_day_cost"`
	Tips         string        `json:"tips"`
}

// CostFor returns the per-day cost for style. Unrecognized styles are
// priced at the normal tier.
func (p CityProfile) CostFor(style string) int {
	s, _ := ParseStyle(style)
	return p.PerDayCost[s]
}

// Spots is the famous places followed by the hidden gems.
func (p CityProfile) Spots() []string {
	spots := make([]string, 0, len(p.FamousPlaces)+len(p.HiddenGems))
	spots = append(spots, p.FamousPlaces...)
	return append(spots, p.HiddenGems...)
}

func (p CityProfile) Validate() error {
	var errs []error
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, errors.New("name is empty"))
	}
	if len(p.FamousPlaces) == 0 {
		errs = append(errs, errors.New("no famous places"))
	}
	if len(p.HiddenGems) == 0 {
		errs = append(errs, errors.New("no hidden gems"))
	}
	if len(p.FoodItems) == 0 {
		errs = append(errs, errors.New("no food items"))
	}
	for _, f := range p.FoodItems {
		if f.Price <= 0 {
			errs = append(errs, fmt.Errorf("food %q has non-positive price %d", f.Name, f.Price))
		}
	}
	for _, s := range Styles {
		if cost, ok := p.PerDayCost[s]; !ok || cost <= 0 {
			errs = append(errs, fmt.Errorf("missing or non-positive %s cost", s))
		}
	}
	return errors.Join(errs...)
}

func (p CityProfile) clone() CityProfile {
	c := p
	c.FamousPlaces = append([]string(nil), p.FamousPlaces...)
	c.HiddenGems = append([]string(nil), p.HiddenGems...)
	c.FoodItems = append([]FoodItem(nil), p.FoodItems...)
	c.PerDayCost = make(map[Style]int, len(p.PerDayCost))
	for k, v := range p.PerDayCost {
		c.PerDayCost[k] = v
	}
	return c
}

// Catalog is an ordered, immutable set of city profiles. The declaration
// order is the resolver's priority order. Safe for concurrent use.
type Catalog struct {
	profiles []CityProfile
	index    map[string]int
}

// New validates the profiles and builds a catalog that keeps their order.
func New(profiles ...CityProfile) (*Catalog, error) {
	c := &Catalog{
		profiles: make([]CityProfile, 0, len(profiles)),
		index:    make(map[string]int, len(profiles)),
	}
	for i, p := range profiles {
		key := strings.ToLower(strings.TrimSpace(p.Key))
		if key == "" {
			return nil, fmt.Errorf("city #%d: empty key", i)
		}
		if _, dup := c.index[key]; dup {
			return nil, fmt.Errorf("city %q: duplicate key", key)
		}
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("city %q: %w", key, err)
		}
		p = p.clone()
		p.Key = key
		c.index[key] = len(c.profiles)
		c.profiles = append(c.profiles, p)
	}
	return c, nil
}

func (c *Catalog) Len() int {
	return len(c.profiles)
}

// Keys returns the catalog keys in priority order.
func (c *Catalog) Keys() []string {
	keys := make([]string, len(c.profiles))
	for i, p := range c.profiles {
		keys[i] = p.Key
	}
	return keys
}

// Lookup returns a copy of the profile stored under key.
func (c *Catalog) Lookup(key string) (CityProfile, bool) {
	i, ok := c.index[key]
	if !ok {
		return CityProfile{}, false
	}
	return c.profiles[i].clone(), true
}
