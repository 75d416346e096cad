package resolve

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// AliasTable maps known-incorrect or alternate region-name spellings to
// their canonical form. It is assembled once at startup and never mutated
// afterwards.
type AliasTable map[string]string

// DefaultAliases returns the built-in alias table covering spelling variants
// observed in public administrative-boundary files.
func DefaultAliases() AliasTable {
	return AliasTable{
		"Andaman and Nicobar": "Andaman And Nicobar Islands",
		"Andaman & Nicobar":   "Andaman And Nicobar Islands",
		"Chhatisgarh":         "Chhattisgarh",
		"Orissa":              "Odisha",
		"Tamilnadu":           "Tamil Nadu",
		"West Bangal":         "West Bengal",
		"West Bengli":         "West Bengal",
		"Westbengal":          "West Bengal",
		"Uttaranchal":         "Uttarakhand",
		"Jammu & Kashmir":     "Jammu And Kashmir",
		"Jammu and Kashmir":   "Jammu And Kashmir",
		"Delhi":               "NCT of Delhi",
		"Pondicherry":         "Puducherry",
	}
}

// LoadAliases reads an alias artifact (flat YAML mapping of alias to
// canonical name) and merges it over the built-in defaults, so new variant
// spellings ship as configuration rather than code. An empty path returns
// the defaults unchanged.
func LoadAliases(path string) (AliasTable, error) {
	table := DefaultAliases()
	if path == "" {
		return table, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "resolve: read alias file %s", path)
	}

	var extra map[string]string
	if err := yaml.Unmarshal(data, &extra); err != nil {
		return nil, eris.Wrapf(err, "resolve: parse alias file %s", path)
	}

	for alias, canonical := range extra {
		table[alias] = canonical
	}
	return table, nil
}
