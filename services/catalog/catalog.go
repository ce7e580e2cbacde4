// Package catalog resolves curriculum/software identifiers to required
// session counts. The catalog is injected configuration loaded at startup;
// entry order is preserved because substring resolution is order-dependent.
package catalog

import (
	"strings"

	"go.uber.org/zap"

	"academis/models"
	"academis/utils"
)

// Catalog is a static, ordered identifier -> session-count lookup. Safe for
// concurrent use; never mutated after construction.
type Catalog struct {
	entries []models.CurriculumItem
}

// New builds a catalog from configuration entries, keeping their order.
// Entries with a non-positive session count are dropped.
func New(items []models.CurriculumItem) *Catalog {
	entries := make([]models.CurriculumItem, 0, len(items))
	for _, it := range items {
		if it.Identifier == "" || it.Sessions <= 0 {
			utils.GetLogger().Warn("catalog: dropping invalid curriculum entry",
				zap.String("identifier", it.Identifier), zap.Int("sessions", it.Sessions))
			continue
		}
		entries = append(entries, it)
	}
	return &Catalog{entries: entries}
}

// Entries returns the catalog entries in catalog order.
func (c *Catalog) Entries() []models.CurriculumItem {
	out := make([]models.CurriculumItem, len(c.entries))
	copy(out, c.entries)
	return out
}

// Resolve maps an identifier to its required session count. Resolution order:
// exact case-sensitive, exact case-insensitive, then case-insensitive
// substring in either direction taking the first catalog entry in catalog
// order. Unresolved identifiers resolve to zero sessions rather than failing.
func (c *Catalog) Resolve(identifier string) int {
	if identifier == "" {
		return 0
	}
	for _, e := range c.entries {
		if e.Identifier == identifier {
			return e.Sessions
		}
	}
	for _, e := range c.entries {
		if strings.EqualFold(e.Identifier, identifier) {
			return e.Sessions
		}
	}
	q := strings.ToLower(identifier)
	for _, e := range c.entries {
		entry := strings.ToLower(e.Identifier)
		if strings.Contains(entry, q) || strings.Contains(q, entry) {
			utils.GetLogger().Debug("catalog: substring resolution",
				zap.String("query", identifier), zap.String("entry", e.Identifier))
			return e.Sessions
		}
	}
	utils.GetLogger().Warn("catalog: unresolved curriculum identifier",
		zap.String("identifier", identifier))
	return 0
}

// TotalSessions sums the resolved session counts for a batch's identifiers.
func (c *Catalog) TotalSessions(identifiers []string) int {
	total := 0
	for _, id := range identifiers {
		total += c.Resolve(id)
	}
	return total
}

// MatchIdentifier reports whether two curriculum identifiers refer to the
// same unit of content under the catalog matching policy: exact, then
// case-insensitive, then case-insensitive substring in either direction.
func MatchIdentifier(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	if a == b || strings.EqualFold(a, b) {
		return true
	}
	la, lb := strings.ToLower(a), strings.ToLower(b)
	return strings.Contains(la, lb) || strings.Contains(lb, la)
}

// InterestMatches reports whether any of a student's curriculum interests
// matches any of the batch's curriculum identifiers.
func InterestMatches(interests, batchIDs []string) bool {
	for _, interest := range interests {
		for _, id := range batchIDs {
			if MatchIdentifier(interest, id) {
				return true
			}
		}
	}
	return false
}
