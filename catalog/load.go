package catalog

import (
	"bytes"
	_ "embed"
	"fmt"

	"github.com/spf13/viper"
)

//go:embed cities.yml
var embeddedCities []byte

type document struct {
	Cities []cityRecord `mapstructure:"cities"`
}

type cityRecord struct {
	Key          string         `mapstructure:"key"`
	Name         string         `mapstructure:"name"`
	FamousPlaces []string       `mapstructure:"famous_places"`
	HiddenGems   []string       `mapstructure:"hidden_gems"`
	FoodItems    []foodRecord   `mapstructure:"food_items"`
	PerDayCost   map[string]int `mapstructure:"per_day_cost"`
	Tips         string         `mapstructure:"tips"`
}

type foodRecord struct {
	Name  string `mapstructure:"name"`
	Price int    `mapstructure:"price"`
}

// Load reads a catalog document. An empty path uses the catalog compiled
// into the binary; otherwise the YAML file at path replaces it entirely.
func Load(path string) (*Catalog, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	if path == "" {
		if err := v.ReadConfig(bytes.NewReader(embeddedCities)); err != nil {
			return nil, fmt.Errorf("read embedded catalog: %w", err)
		}
	} else {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", path, err)
		}
	}

	var doc document
	if err := v.Unmarshal(&doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if len(doc.Cities) == 0 {
		return nil, fmt.Errorf("catalog has no cities")
	}

	profiles := make([]CityProfile, 0, len(doc.Cities))
	for _, rec := range doc.Cities {
		p, err := rec.profile()
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return New(profiles...)
}

// Default returns the embedded catalog. The embedded data is validated by
// the package tests, so a failure here is a build defect.
func Default() *Catalog {
	c, err := Load("")
	if err != nil {
		panic(err)
	}
	return c
}

func (r cityRecord) profile() (CityProfile, error) {
	costs := make(map[Style]int, len(r.PerDayCost))
	for tier, cost := range r.PerDayCost {
		s, ok := ParseStyle(tier)
		if !ok {
			return CityProfile{}, fmt.Errorf("city %q: unknown style %q", r.Key, tier)
		}
		costs[s] = cost
	}
	foods := make([]FoodItem, len(r.FoodItems))
	for i, f := range r.FoodItems {
		foods[i] = FoodItem{Name: f.Name, Price: f.Price}
	}
	return CityProfile{
		Key:          r.Key,
		Name:         r.Name,
		FamousPlaces: r.FamousPlaces,
		HiddenGems:   r.HiddenGems,
		FoodItems:    foods,
		PerDayCost:   costs,
		Tips:         r.Tips,
	}, nil
}
