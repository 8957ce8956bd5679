package scenario

import (
	"errors"
	"fmt"
	"strings"
)

// ErrScenarioNotFound is returned when no scenario matches the requested
// name. This is the one hard failure of the engine; callers decide whether
// to fall back to a default scenario or surface the error.
var ErrScenarioNotFound = errors.New("scenario not found")

// Alias maps a free-text synonym to a catalog key.
type Alias struct {
	Text string
	Key  string
}

// Catalog is an immutable set of scenario definitions plus the alias table
// used for free-text resolution.
type Catalog struct {
	scenarios map[string]Definition
	order     []string
	aliases   []Alias
	aliasIdx  map[string]string
}

// NewCatalog builds a validated catalog from definitions and aliases.
func NewCatalog(defs []Definition, aliases []Alias) (*Catalog, error) {
	c := &Catalog{
		scenarios: make(map[string]Definition, len(defs)),
		order:     make([]string, 0, len(defs)),
		aliases:   aliases,
		aliasIdx:  make(map[string]string, len(aliases)),
	}

	for _, def := range defs {
		if err := validateDefinition(def); err != nil {
			return nil, fmt.Errorf("scenario %q: %w", def.Key, err)
		}
		if _, dup := c.scenarios[def.Key]; dup {
			return nil, fmt.Errorf("scenario %q: duplicate key", def.Key)
		}
		c.scenarios[def.Key] = def
		c.order = append(c.order, def.Key)
	}

	for _, a := range aliases {
		text := strings.ToLower(strings.TrimSpace(a.Text))
		if text == "" {
			return nil, fmt.Errorf("alias for %q: empty text", a.Key)
		}
		if _, ok := c.scenarios[a.Key]; !ok {
			return nil, fmt.Errorf("alias %q: unknown scenario key %q", a.Text, a.Key)
		}
		c.aliasIdx[text] = a.Key
	}

	return c, nil
}

func validateDefinition(def Definition) error {
	if def.Key == "" {
		return errors.New("missing key")
	}
	if def.Name == "" {
		return errors.New("missing name")
	}
	if def.BaseShock == 0 {
		return errors.New("base_shock must be non-zero")
	}
	for _, e := range append(append([]Effect{}, def.Primary...), def.Secondary...) {
		if !e.Target.Valid() {
			return fmt.Errorf("unknown target kind %q", e.Target)
		}
		if e.Impact < -1 || e.Impact > 1 {
			return fmt.Errorf("target %q: impact %v outside [-1, 1]", e.Target, e.Impact)
		}
	}
	return nil
}

// Resolve finds a scenario by name. Resolution order: exact key match,
// exact alias match, then bidirectional substring match against aliases
// (only for inputs of two or more runes). Matching is case and
// surrounding-whitespace insensitive.
func (c *Catalog) Resolve(name string) (Definition, error) {
	key := strings.ToLower(strings.TrimSpace(name))

	if def, ok := c.scenarios[key]; ok {
		return def, nil
	}

	if aliasKey, ok := c.aliasIdx[key]; ok {
		return c.scenarios[aliasKey], nil
	}

	if len([]rune(key)) >= 2 {
		for _, a := range c.aliases {
			text := strings.ToLower(strings.TrimSpace(a.Text))
			if strings.Contains(key, text) || strings.Contains(text, key) {
				if def, ok := c.scenarios[a.Key]; ok {
					return def, nil
				}
			}
		}
	}

	return Definition{}, fmt.Errorf("%w: %q", ErrScenarioNotFound, name)
}

// Definitions returns all scenarios in catalog order.
func (c *Catalog) Definitions() []Definition {
	defs := make([]Definition, 0, len(c.order))
	for _, key := range c.order {
		defs = append(defs, c.scenarios[key])
	}
	return defs
}

// Len returns the number of scenarios in the catalog.
func (c *Catalog) Len() int {
	return len(c.order)
}
