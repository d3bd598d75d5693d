package world

import (
	"fmt"
	"sync"

	"github.com/samdwyer/robotics/internal/gamedata"
)

// Ingredient is one alternative of a craft recipe.
type Ingredient struct {
	Kind  ContentKind
	Count int
}

type propertyTables struct {
	contents [numContentKinds]*gamedata.ContentDef
	terrains [numTileTypes]*gamedata.TerrainDef
	holds    [numTileTypes][numContentKinds]bool
	recipes  [numContentKinds][]Ingredient
	disposes [numContentKinds]ContentKind
}

// props resolves the embedded tables into per-variant lookups the first time
// any property is read.
var props = sync.OnceValue(func() *propertyTables {
	tables := gamedata.MustLoadTables()
	p := &propertyTables{}

	for k := ContentKind(0); k < numContentKinds; k++ {
		def := tables.Contents.GetByID(k.ID())
		if def == nil {
			panic(fmt.Sprintf("contents.json has no entry for %q", k.ID()))
		}
		p.contents[k] = def
	}
	for k := ContentKind(0); k < numContentKinds; k++ {
		def := p.contents[k]
		if def.Disposes != "" {
			p.disposes[k] = mustContentKind(def.Disposes)
		}
		for _, entry := range def.Recipe {
			p.recipes[k] = append(p.recipes[k], Ingredient{Kind: mustContentKind(entry.Item), Count: entry.Count})
		}
	}

	for t := TileType(0); t < numTileTypes; t++ {
		def := tables.Terrains.GetByID(t.ID())
		if def == nil {
			panic(fmt.Sprintf("terrain.json has no entry for %q", t.ID()))
		}
		p.terrains[t] = def
		for _, id := range def.Holds {
			p.holds[t][mustContentKind(id)] = true
		}
	}
	return p
})

func mustContentKind(id string) ContentKind {
	k, ok := ParseContentKind(id)
	if !ok {
		panic(fmt.Sprintf("unknown content id %q", id))
	}
	return k
}
