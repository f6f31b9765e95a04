package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProfile(key string) CityProfile {
	return CityProfile{
		Key:          key,
		Name:         strings.ToUpper(key[:1]) + key[1:],
		FamousPlaces: []string{key + " fort"},
		HiddenGems:   []string{key + " lake"},
		FoodItems:    []FoodItem{{Name: "Chai", Price: 10}},
		PerDayCost:   map[Style]int{StyleBudget: 100, StyleNormal: 200, StyleLuxury: 300},
		Tips:         "Go early.",
	}
}

func TestDefault_EmbeddedCatalog(t *testing.T) {
	c := Default()

	assert.Equal(t, []string{"jaipur", "goa", "manali", "varanasi", "kerala", "ladakh"}, c.Keys())

	jaipur, ok := c.Lookup("jaipur")
	require.True(t, ok)
	assert.Equal(t, "Jaipur", jaipur.Name)
	assert.Equal(t, []string{"Amber Fort", "City Palace", "Hawa Mahal", "Jantar Mantar", "Nahargarh Fort"}, jaipur.FamousPlaces)
	assert.Len(t, jaipur.HiddenGems, 4)
	assert.Equal(t, FoodItem{Name: "Pyaaz Kachori", Price: 20}, jaipur.FoodItems[0])
	assert.Equal(t, 2900, jaipur.PerDayCost[StyleNormal])
	assert.Contains(t, jaipur.Tips, "₹500")

	goa, ok := c.Lookup("goa")
	require.True(t, ok)
	assert.Equal(t, "Prawn Balchão", goa.FoodItems[0].Name)

	for _, key := range c.Keys() {
		p, _ := c.Lookup(key)
		assert.NoError(t, p.Validate(), key)
	}
}

func TestLookup_ReturnsCopy(t *testing.T) {
	c := Default()

	p, _ := c.Lookup("goa")
	p.FamousPlaces[0] = "changed"
	p.PerDayCost[StyleNormal] = 1

	again, _ := c.Lookup("goa")
	assert.Equal(t, "Baga Beach", again.FamousPlaces[0])
	assert.Equal(t, 4200, again.PerDayCost[StyleNormal])

	_, ok := c.Lookup("atlantis")
	assert.False(t, ok)
}

func TestCostFor(t *testing.T) {
	p := testProfile("pune")

	assert.Equal(t, 100, p.CostFor("budget"))
	assert.Equal(t, 300, p.CostFor(" LUXURY "))
	assert.Equal(t, 200, p.CostFor("normal"))
	assert.Equal(t, 200, p.CostFor("backpacker"))
	assert.Equal(t, 200, p.CostFor(""))
}

func TestParseStyle(t *testing.T) {
	s, ok := ParseStyle("Budget")
	assert.True(t, ok)
	assert.Equal(t, StyleBudget, s)

	s, ok = ParseStyle("  LUXURY ")
	assert.True(t, ok)
	assert.Equal(t, StyleLuxury, s)

	s, ok = ParseStyle("premium")
	assert.False(t, ok)
	assert.Equal(t, StyleNormal, s)
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *CityProfile)
		wantErr string
	}{
		{"empty key", func(p *CityProfile) { p.Key = " " }, "empty key"},
		{"no famous places", func(p *CityProfile) { p.FamousPlaces = nil }, "no famous places"},
		{"no hidden gems", func(p *CityProfile) { p.HiddenGems = nil }, "no hidden gems"},
		{"no food", func(p *CityProfile) { p.FoodItems = nil }, "no food items"},
		{"free food", func(p *CityProfile) { p.FoodItems[0].Price = 0 }, "non-positive price"},
		{"missing tier", func(p *CityProfile) { delete(p.PerDayCost, StyleLuxury) }, "luxury cost"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testProfile("pune")
			tt.mutate(&p)
			_, err := New(p)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	t.Run("duplicate key", func(t *testing.T) {
		_, err := New(testProfile("pune"), testProfile("PUNE"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate key")
	})
}

func TestLoad_FileOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cities.yml")
	doc := `
cities:
  - key: Mysore
    name: Mysore
    famous_places: [Mysore Palace]
    hidden_gems: [Karanji Lake]
    food_items:
      - {name: Mysore Pak, price: 40}
    per_day_cost: {budget: 900, normal: 2500, luxury: 7000}
    tips: Visit the palace on a Sunday evening.
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"mysore"}, c.Keys())

	p, ok := c.Lookup("mysore")
	require.True(t, ok)
	assert.Equal(t, 2500, p.CostFor("normal"))
	assert.Equal(t, []FoodItem{{Name: "Mysore Pak", Price: 40}}, p.FoodItems)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yml"))
	assert.Error(t, err)

	empty := filepath.Join(dir, "empty.yml")
	require.NoError(t, os.WriteFile(empty, []byte("cities: []\n"), 0o644))
	_, err = Load(empty)
	assert.ErrorContains(t, err, "no cities")

	badTier := filepath.Join(dir, "tier.yml")
	require.NoError(t, os.WriteFile(badTier, []byte(`
cities:
  - key: agra
    name: Agra
    famous_places: [Taj Mahal]
    hidden_gems: [Mehtab Bagh]
    food_items: [{name: Petha, price: 30}]
    per_day_cost: {budget: 900, normal: 2500, premium: 7000}
`), 0o644))
	_, err = Load(badTier)
	assert.ErrorContains(t, err, "unknown style")
}
