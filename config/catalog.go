package config

import (
	"log"

	"github.com/spf13/viper"

	"academis/models"
)

// The curriculum catalog is injected configuration: institutions override the
// `curriculum` key in config.yaml without a rebuild. The defaults below only
// seed a fresh install. Entry order is significant: substring resolution
// takes the first entry in catalog order.
var defaultCurriculum = []models.CurriculumItem{
	{Identifier: "AutoCAD", Sessions: 24},
	{Identifier: "Revit Architecture", Sessions: 30},
	{Identifier: "3ds Max", Sessions: 26},
	{Identifier: "SketchUp", Sessions: 16},
	{Identifier: "Photoshop", Sessions: 20},
	{Identifier: "Illustrator", Sessions: 20},
	{Identifier: "CorelDRAW", Sessions: 18},
	{Identifier: "Premiere Pro", Sessions: 22},
	{Identifier: "Tally Prime", Sessions: 20},
	{Identifier: "MS Office", Sessions: 15},
}

// CurriculumItems returns the configured catalog entries in file order,
// falling back to the shipped defaults when the key is absent.
func CurriculumItems() []models.CurriculumItem {
	if !viper.IsSet("curriculum") {
		return defaultCurriculum
	}
	var items []models.CurriculumItem
	if err := viper.UnmarshalKey("curriculum", &items); err != nil {
		log.Fatalf("Failed to load curriculum catalog: %v", err)
	}
	if len(items) == 0 {
		return defaultCurriculum
	}
	return items
}
