package gamedata

// Shape describes which payload a content variant carries.
type Shape string

const (
	ShapeUnit   Shape = "unit"   // No meaningful amount (none, fire, building, scarecrow)
	ShapeScalar Shape = "scalar" // A plain amount
	ShapeRange  Shape = "range"  // A [filled, capacity) receptacle
)

// RecipeEntry is one ingredient of a craft recipe.
type RecipeEntry struct {
	Item  string `json:"item"`
	Count int    `json:"count"`
}

// ContentDef defines the static properties of a content kind loaded from JSON.
type ContentDef struct {
	ID          string        `json:"id"`                    // Unique identifier matching world.ContentKind (e.g., "rock")
	Name        string        `json:"name"`                  // Display name
	Shape       Shape         `json:"shape"`                 // Payload shape
	Destroyable bool          `json:"destroyable"`           // Whether destroy can collect it
	Max         int           `json:"max"`                   // Max amount on a tile, receptacle capacity or market operations
	Storable    bool          `json:"storable"`              // Whether it can be kept indefinitely
	Cost        int           `json:"cost"`                  // Energy cost per unit of interaction
	Weight      int           `json:"weight"`                // Raw score weight
	MarketPrice int           `json:"marketPrice,omitempty"` // Coins paid per unit at a market, 0 if not sellable
	Disposes    string        `json:"disposes,omitempty"`    // Content ID this receptacle accepts
	Recipe      []RecipeEntry `json:"recipe,omitempty"`      // Alternative ingredients, tried in order
}

// IsReceptacle returns true if some other content can be disposed into this one.
func (c *ContentDef) IsReceptacle() bool {
	return c.Disposes != ""
}

// IsCraftable returns true if the content has at least one recipe entry.
func (c *ContentDef) IsCraftable() bool {
	return len(c.Recipe) > 0
}

// ContentsFile represents the structure of contents.json.
type ContentsFile struct {
	Contents []ContentDef `json:"contents"`
}

// LoadContents loads content definitions from the embedded contents.json file.
func LoadContents() ([]ContentDef, error) {
	file, err := Load[ContentsFile]("contents.json")
	if err != nil {
		return nil, err
	}
	return file.Contents, nil
}
