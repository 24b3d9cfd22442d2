package ministry

import (
	"strings"
	"sync"
	"time"
)

// Catalog provides in-memory lookup of ministry units for application
// validation and the public unit listing. An empty catalog disables
// validation: with no file configured every unit name is accepted, so the
// form keeps working for deployments that never set one up.
type Catalog struct {
	mu         sync.RWMutex
	units      []Unit
	byName     map[string]bool // lowercased name -> exists
	lastReload time.Time
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		byName: make(map[string]bool),
	}
}

// Update replaces all units in the catalog.
func (c *Catalog) Update(units []Unit) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.units = make([]Unit, len(units))
	copy(c.units, units)
	c.byName = make(map[string]bool, len(units))
	for _, unit := range units {
		c.byName[strings.ToLower(unit.Name)] = true
	}
	c.lastReload = time.Now()
}

// All returns all units in file order.
func (c *Catalog) All() []Unit {
	c.mu.RLock()
	defer c.mu.RUnlock()

	units := make([]Unit, len(c.units))
	copy(units, c.units)
	return units
}

// Valid reports whether a unit name may be applied to. Matching is
// case-insensitive; an empty catalog accepts everything.
func (c *Catalog) Valid(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if len(c.byName) == 0 {
		return true
	}
	return c.byName[strings.ToLower(name)]
}

// Count returns the number of units in the catalog.
func (c *Catalog) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.units)
}

// LastReload returns the timestamp of the last catalog update.
func (c *Catalog) LastReload() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.lastReload
}
