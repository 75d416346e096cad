package resolve

import (
	"sort"
	"strings"

	"github.com/sells-group/risk-atlas/internal/dataset"
)

// Resolver matches raw geometry names against canonical statistics keys
// using exact, alias, and normalized-fuzzy strategies in that fixed order.
type Resolver struct {
	aliases AliasTable
}

// NewResolver creates a Resolver backed by the given alias table.
func NewResolver(aliases AliasTable) *Resolver {
	if aliases == nil {
		aliases = DefaultAliases()
	}
	return &Resolver{aliases: aliases}
}

// Resolve returns the statistics record best matching rawName, or ok=false
// when no strategy succeeds. A miss is a legitimate, expected outcome for
// geometries with no corresponding statistic, not an error.
//
// Strategies, first success wins:
//  1. rawName is itself a canonical key.
//  2. rawName has an alias whose canonical form is a key.
//  3. A key's normalized form equals the normalized rawName or its
//     normalized alias, or one contains the other as a substring. Keys are
//     scanned in sorted order so ties resolve deterministically first-wins.
func (r *Resolver) Resolve(rawName string, stats map[string]dataset.RegionStat) (dataset.RegionStat, bool) {
	if rawName == "" || len(stats) == 0 {
		return dataset.RegionStat{}, false
	}

	// 1. Exact match.
	if stat, ok := stats[rawName]; ok {
		return stat, true
	}

	// 2. Alias match.
	aliased, hasAlias := r.aliases[rawName]
	if hasAlias {
		if stat, ok := stats[aliased]; ok {
			return stat, true
		}
	}

	// 3. Normalized fuzzy match.
	normRaw := Normalize(rawName)
	normAlias := ""
	if hasAlias {
		normAlias = Normalize(aliased)
	}
	if normRaw == "" {
		return dataset.RegionStat{}, false
	}

	keys := make([]string, 0, len(stats))
	for k := range stats {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		nk := Normalize(k)
		if nk == "" {
			continue
		}
		if nk == normRaw || (normAlias != "" && nk == normAlias) ||
			strings.Contains(nk, normRaw) || strings.Contains(normRaw, nk) {
			return stats[k], true
		}
	}

	return dataset.RegionStat{}, false
}
