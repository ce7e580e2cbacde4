package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"academis/models"
)

func testCatalog() *Catalog {
	return New([]models.CurriculumItem{
		{Identifier: "AutoCAD", Sessions: 24},
		{Identifier: "Revit Architecture", Sessions: 30},
		{Identifier: "Photoshop", Sessions: 20},
		{Identifier: "MS Office", Sessions: 15},
	})
}

func TestResolveExactMatch(t *testing.T) {
	c := testCatalog()
	assert.Equal(t, 24, c.Resolve("AutoCAD"))
	assert.Equal(t, 30, c.Resolve("Revit Architecture"))
}

func TestResolveCaseInsensitive(t *testing.T) {
	c := testCatalog()
	assert.Equal(t, 24, c.Resolve("autocad"))
	assert.Equal(t, 20, c.Resolve("PHOTOSHOP"))
}

func TestResolveSubstringEitherDirection(t *testing.T) {
	c := testCatalog()
	// Query contained in catalog entry.
	assert.Equal(t, 30, c.Resolve("Revit"))
	// Catalog entry contained in query.
	assert.Equal(t, 20, c.Resolve("Adobe Photoshop CC"))
}

func TestResolveSubstringTakesFirstCatalogEntry(t *testing.T) {
	// When several entries could substring-match, catalog order decides.
	c := New([]models.CurriculumItem{
		{Identifier: "CAD", Sessions: 10},
		{Identifier: "AutoCAD", Sessions: 24},
	})
	assert.Equal(t, 10, c.Resolve("AutoCAD Advanced"))
	// An exact match still beats substring order.
	assert.Equal(t, 24, c.Resolve("AutoCAD"))
}

func TestResolveUnknownIsZero(t *testing.T) {
	c := testCatalog()
	assert.Equal(t, 0, c.Resolve("Blender"))
	assert.Equal(t, 0, c.Resolve(""))
}

func TestNewDropsInvalidEntries(t *testing.T) {
	c := New([]models.CurriculumItem{
		{Identifier: "AutoCAD", Sessions: 24},
		{Identifier: "", Sessions: 10},
		{Identifier: "Broken", Sessions: 0},
	})
	assert.Len(t, c.Entries(), 1)
}

func TestTotalSessions(t *testing.T) {
	c := testCatalog()
	// Unresolved identifiers contribute zero rather than failing.
	total := c.TotalSessions([]string{"AutoCAD", "Photoshop", "Blender"})
	assert.Equal(t, 44, total)
	assert.Equal(t, 0, c.TotalSessions(nil))
}

func TestMatchIdentifier(t *testing.T) {
	assert.True(t, MatchIdentifier("AutoCAD", "AutoCAD"))
	assert.True(t, MatchIdentifier("autocad", "AutoCAD"))
	assert.True(t, MatchIdentifier("Revit", "Revit Architecture"))
	assert.True(t, MatchIdentifier("Revit Architecture 2024", "Revit Architecture"))
	assert.False(t, MatchIdentifier("Photoshop", "AutoCAD"))
	assert.False(t, MatchIdentifier("", "AutoCAD"))
}

func TestInterestMatches(t *testing.T) {
	batch := []string{"AutoCAD", "Revit Architecture"}
	assert.True(t, InterestMatches([]string{"Photoshop", "revit"}, batch))
	assert.False(t, InterestMatches([]string{"Photoshop"}, batch))
	assert.False(t, InterestMatches(nil, batch))
}
