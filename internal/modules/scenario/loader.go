package scenario

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// catalogFile is the YAML schema for an externally supplied scenario set.
//
//	scenarios:
//	  my_scenario:
//	    name: ...
//	    trigger: ...
//	    base_shock: -0.20
//	    primary:
//	      - target: japan_equities
//	        impact: -0.12
//	        reason: ...
//	    secondary: [...]
//	    currency: {fx_change: 15, impact_on_foreign: 0.097}
//	    offsets: [...]
//	    time_axis: ...
//	aliases:
//	  my alias: my_scenario
type catalogFile struct {
	Scenarios map[string]Definition `yaml:"scenarios"`
	Aliases   map[string]string     `yaml:"aliases"`
}

// LoadCatalog reads a scenario catalog from a YAML file. The file fully
// replaces the built-in catalog; validation failures (unknown target
// kinds, missing base shock, dangling aliases) are load errors.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file %s: %w", path, err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse scenario file %s: %w", path, err)
	}

	if len(file.Scenarios) == 0 {
		return nil, fmt.Errorf("scenario file %s: no scenarios defined", path)
	}

	// Keys sorted for a stable catalog order; YAML maps carry none.
	defs := make([]Definition, 0, len(file.Scenarios))
	for _, key := range sortedKeys(file.Scenarios) {
		def := file.Scenarios[key]
		def.Key = key
		defs = append(defs, def)
	}

	aliases := make([]Alias, 0, len(file.Aliases))
	for _, text := range sortedKeys(file.Aliases) {
		aliases = append(aliases, Alias{Text: text, Key: file.Aliases[text]})
	}

	catalog, err := NewCatalog(defs, aliases)
	if err != nil {
		return nil, fmt.Errorf("scenario file %s: %w", path, err)
	}
	return catalog, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
