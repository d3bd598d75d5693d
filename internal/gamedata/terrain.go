package gamedata

// TerrainDef defines the static properties of a terrain kind loaded from JSON.
type TerrainDef struct {
	ID       string   `json:"id"`       // Unique identifier matching world.TileType (e.g., "grass")
	Name     string   `json:"name"`     // Display name (e.g., "Grass")
	Walkable bool     `json:"walkable"` // Whether a robot may stand on it
	Cost     int      `json:"cost"`     // Base energy cost of moving onto it
	Holds    []string `json:"holds"`    // Content IDs this terrain may carry
}

// CanHold reports whether the terrain accepts the given content ID.
func (t *TerrainDef) CanHold(contentID string) bool {
	for _, id := range t.Holds {
		if id == contentID {
			return true
		}
	}
	return false
}

// TerrainFile represents the structure of terrain.json.
type TerrainFile struct {
	Terrains []TerrainDef `json:"terrains"`
}

// LoadTerrains loads terrain definitions from the embedded terrain.json file.
func LoadTerrains() ([]TerrainDef, error) {
	file, err := Load[TerrainFile]("terrain.json")
	if err != nil {
		return nil, err
	}
	return file.Terrains, nil
}
