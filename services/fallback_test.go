package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tripindia/catalog"
)

func TestGenerateFallback(t *testing.T) {
	p := GenerateFallback("  Atlantis ")

	assert.Equal(t, "Atlantis", p.Name)
	assert.Equal(t, []string{
		"Atlantis Heritage Site",
		"Atlantis City Centre",
		"Atlantis Museum",
		"Local Market",
		"Viewpoint",
	}, p.FamousPlaces)
	assert.Equal(t, []string{
		"Old town lanes of Atlantis",
		"Local village nearby",
		"Scenic route",
		"Sunrise point",
	}, p.HiddenGems)
	assert.Len(t, p.FoodItems, 4)
	assert.Equal(t, catalog.FoodItem{Name: "Regional curry", Price: 150}, p.FoodItems[2])
	assert.Equal(t, "Hire a local guide for the best experience in Atlantis.", p.Tips)
	assert.NoError(t, p.Validate())
}

func TestGenerateFallback_Costs(t *testing.T) {
	p := GenerateFallback("Shillong")

	assert.Equal(t, 1000, p.CostFor("budget"))
	assert.Equal(t, 3000, p.CostFor("normal"))
	assert.Equal(t, 8000, p.CostFor("luxury"))
	assert.Equal(t, 3000, p.CostFor("glamping"))
}

func TestGenerateFallback_TitleCasesName(t *testing.T) {
	assert.Equal(t, "New Delhi", GenerateFallback("new delhi").Name)
	assert.Equal(t, "Rann Of Kutch", GenerateFallback("RANN OF KUTCH").Name)

	// templated strings keep the caller's spelling
	assert.Equal(t, "new delhi Museum", GenerateFallback("new delhi").FamousPlaces[2])
}

func TestGenerateFallback_IndependentCopies(t *testing.T) {
	a := GenerateFallback("Atlantis")
	a.FoodItems[0].Price = 1
	a.PerDayCost[catalog.StyleNormal] = 1

	b := GenerateFallback("Atlantis")
	assert.Equal(t, 60, b.FoodItems[0].Price)
	assert.Equal(t, 3000, b.PerDayCost[catalog.StyleNormal])
}

func TestGenerateFallback_NameTitleCase(t *testing.T) {
	assert.Equal(t, "New Delhi", GenerateFallback("new delhi").Name)
	assert.Equal(t, "O'hare", GenerateFallback("o'hare").Name)
	assert.Equal(t, "Port Blair", GenerateFallback("PORT BLAIR").Name)
}
