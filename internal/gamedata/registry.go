package gamedata

import (
	"errors"
	"fmt"
)

// TerrainRegistry holds loaded terrain definitions and provides lookup utilities.
type TerrainRegistry struct {
	terrains map[string]*TerrainDef
	all      []TerrainDef
}

// NewTerrainRegistry creates a registry from loaded terrain definitions.
func NewTerrainRegistry(terrains []TerrainDef) *TerrainRegistry {
	registry := &TerrainRegistry{
		terrains: make(map[string]*TerrainDef),
		all:      terrains,
	}
	for i := range terrains {
		registry.terrains[terrains[i].ID] = &terrains[i]
	}
	return registry
}

// LoadTerrainRegistry loads and creates a registry from the embedded terrain.json.
func LoadTerrainRegistry() (*TerrainRegistry, error) {
	terrains, err := LoadTerrains()
	if err != nil {
		return nil, err
	}
	if len(terrains) == 0 {
		return nil, errors.New("no terrains loaded from terrain.json")
	}
	return NewTerrainRegistry(terrains), nil
}

// GetByID returns the terrain definition with the given ID, or nil if not found.
func (r *TerrainRegistry) GetByID(id string) *TerrainDef {
	return r.terrains[id]
}

// All returns all terrain definitions in file order.
func (r *TerrainRegistry) All() []TerrainDef {
	return r.all
}

// Count returns the number of terrain kinds in the registry.
func (r *TerrainRegistry) Count() int {
	return len(r.all)
}

// =============================================================================
// ContentRegistry
// =============================================================================

// ContentRegistry holds loaded content definitions and provides lookup utilities.
type ContentRegistry struct {
	contents map[string]*ContentDef
	all      []ContentDef
}

// NewContentRegistry creates a registry from loaded content definitions.
func NewContentRegistry(contents []ContentDef) *ContentRegistry {
	registry := &ContentRegistry{
		contents: make(map[string]*ContentDef),
		all:      contents,
	}
	for i := range contents {
		registry.contents[contents[i].ID] = &contents[i]
	}
	return registry
}

// LoadContentRegistry loads and creates a registry from the embedded contents.json.
func LoadContentRegistry() (*ContentRegistry, error) {
	contents, err := LoadContents()
	if err != nil {
		return nil, err
	}
	if len(contents) == 0 {
		return nil, errors.New("no contents loaded from contents.json")
	}
	return NewContentRegistry(contents), nil
}

// GetByID returns the content definition with the given ID, or nil if not found.
func (r *ContentRegistry) GetByID(id string) *ContentDef {
	return r.contents[id]
}

// All returns all content definitions in file order.
func (r *ContentRegistry) All() []ContentDef {
	return r.all
}

// Count returns the number of content kinds in the registry.
func (r *ContentRegistry) Count() int {
	return len(r.all)
}

// =============================================================================
// Tables
// =============================================================================

// Tables bundles both registries after checking that every cross reference
// (holdable contents, recipe ingredients, disposal targets) resolves.
type Tables struct {
	Terrains *TerrainRegistry
	Contents *ContentRegistry
}

// LoadTables loads both registries and cross-checks them.
func LoadTables() (*Tables, error) {
	terrains, err := LoadTerrainRegistry()
	if err != nil {
		return nil, err
	}
	contents, err := LoadContentRegistry()
	if err != nil {
		return nil, err
	}

	for _, t := range terrains.All() {
		for _, id := range t.Holds {
			if contents.GetByID(id) == nil {
				return nil, fmt.Errorf("terrain %s holds unknown content %q", t.ID, id)
			}
		}
	}
	for _, c := range contents.All() {
		if c.Disposes != "" && contents.GetByID(c.Disposes) == nil {
			return nil, fmt.Errorf("content %s disposes unknown content %q", c.ID, c.Disposes)
		}
		for _, entry := range c.Recipe {
			if contents.GetByID(entry.Item) == nil {
				return nil, fmt.Errorf("content %s recipe uses unknown content %q", c.ID, entry.Item)
			}
		}
	}

	return &Tables{Terrains: terrains, Contents: contents}, nil
}

// MustLoadTables loads both registries, panicking on error.
func MustLoadTables() *Tables {
	tables, err := LoadTables()
	if err != nil {
		panic(err)
	}
	return tables
}
