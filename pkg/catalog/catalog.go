// Package catalog holds the fixed reference data for the maturity assessment:
// the dimension catalog and the four prioritisation criteria. The catalog is
// read-only at runtime.
package catalog

import (
	"strings"

	"github.com/google/uuid"

	"github.com/dayooguns/tompri/pkg/interfaces"
)

// idNamespace seeds the deterministic v5 dimension IDs. IDs must be stable
// across sessions and builds, so they are derived from this namespace and the
// catalog definition name rather than generated randomly.
var idNamespace = uuid.MustParse("7c9e3a14-52bd-4c8f-9d2e-01b6f2a9c4d8")

// Keyword sets used ONCE, at catalog build time, to tag entries with traits.
// The engine matches traits, never display names, so renaming a dimension
// later does not silently change its filter behaviour.
var (
	reputationKeywords = []string{"Support", "Data Products", "Data Quality", "Data Access", "Metadata", "Value"}
	governanceKeywords = []string{"Governance", "Compliance", "Risk Management"}
	foundationKeywords = []string{"Metadata", "Data Quality", "Roles"}
)

// entry is the raw catalog definition before IDs, sub-dimensions and traits
// are derived.
type entry struct {
	category    interfaces.Category
	name        string
	description string
	levels      [5]string
}

// Dimensions returns the full dimension catalog in definition order.
// The returned slice is a fresh copy; callers may not mutate the catalog.
func Dimensions() []interfaces.Dimension {
	dims := make([]interfaces.Dimension, len(entries))
	for i, e := range entries {
		dims[i] = build(e)
	}
	return dims
}

// ByID returns the catalog entry with the given ID.
func ByID(id string) (interfaces.Dimension, bool) {
	for _, e := range entries {
		d := build(e)
		if d.ID == id {
			return d, true
		}
	}
	return interfaces.Dimension{}, false
}

// nameAliases maps legacy spellings to current catalog names, so CSVs
// exported under an older catalog still import.
var nameAliases = map[string]string{
	"Data STRATEGIES Alignment": "Data Strategy Alignment",
}

// ByName returns the catalog entry with the given display name.
// Matching is exact apart from legacy aliases: import rows that do not
// match are the caller's problem.
func ByName(name string) (interfaces.Dimension, bool) {
	if canonical, ok := nameAliases[name]; ok {
		name = canonical
	}
	for _, e := range entries {
		if e.name == name {
			return build(e), true
		}
	}
	return interfaces.Dimension{}, false
}

// ID derives the stable dimension ID for a catalog definition name.
func ID(name string) string {
	return uuid.NewSHA1(idNamespace, []byte(name)).String()
}

func build(e entry) interfaces.Dimension {
	return interfaces.Dimension{
		ID:           ID(e.name),
		Name:         e.name,
		Category:     e.category,
		SubDimension: subDimensionOf(e.name),
		Description:  e.description,
		Levels:       e.levels,
		Traits:       traitsFor(e.name),
	}
}

// subDimensionOf extracts the grouping label from "Group: Item" names.
// Names without a colon have no sub-dimension.
func subDimensionOf(name string) string {
	if group, _, ok := strings.Cut(name, ": "); ok {
		return group
	}
	return ""
}

// traitsFor tags a definition name with the traits the filter rules consume.
func traitsFor(name string) []interfaces.Trait {
	var traits []interfaces.Trait
	if containsAny(name, reputationKeywords) {
		traits = append(traits, interfaces.TraitReputation)
	}
	if containsAny(name, governanceKeywords) {
		traits = append(traits, interfaces.TraitGovernance)
	}
	if containsAny(name, foundationKeywords) {
		traits = append(traits, interfaces.TraitFoundational)
	}
	return traits
}

func containsAny(name string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(name, kw) {
			return true
		}
	}
	return false
}
