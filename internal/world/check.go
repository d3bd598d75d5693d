package world

// Validate checks a generated map before it is played: it must be square,
// no teleport may start activated, no elevation may be negative, every
// content amount must respect the content's max and every content must be
// holdable by its terrain.
func Validate(tiles [][]Tile) error {
	if len(tiles) == 0 {
		return ErrEmptyWorld
	}
	size := len(tiles)
	for r, row := range tiles {
		if len(row) != size {
			return &TileError{Row: r, Col: len(row), Err: ErrWorldIsNotASquare}
		}
		for c, tile := range row {
			if err := validateTile(tile); err != nil {
				return &TileError{Row: r, Col: c, Err: err}
			}
		}
	}
	return nil
}

func validateTile(tile Tile) error {
	if tile.Activated {
		return ErrTeleportIsTrueOnGeneration
	}
	if tile.Elevation < 0 {
		return ErrNegativeElevation
	}
	limit := tile.Content.Props().Max
	if span, ok := tile.Content.Range(); ok {
		if span.Start > span.End || span.End > limit {
			return ErrContentValueIsHigherThanMax
		}
	} else if tile.Content.Kind != Fire {
		if n, ok := tile.Content.Value(); ok && n > limit {
			return ErrContentValueIsHigherThanMax
		}
	}
	if !tile.Type.CanHold(tile.Content.Kind) {
		return ErrContentNotAllowedOnTile
	}
	return nil
}

// TileTypePercentages returns the share of each terrain kind on the map,
// in [0, 1]. Kinds that do not appear are omitted.
func TileTypePercentages(tiles [][]Tile) map[TileType]float64 {
	counts := make(map[TileType]int)
	total := 0
	for _, row := range tiles {
		for _, tile := range row {
			counts[tile.Type]++
			total++
		}
	}
	return shares(counts, total)
}

// ContentPercentages returns the share of each content kind on the map,
// in [0, 1]. Kinds that do not appear are omitted.
func ContentPercentages(tiles [][]Tile) map[ContentKind]float64 {
	counts := make(map[ContentKind]int)
	total := 0
	for _, row := range tiles {
		for _, tile := range row {
			counts[tile.Content.Kind]++
			total++
		}
	}
	return shares(counts, total)
}

func shares[K comparable](counts map[K]int, total int) map[K]float64 {
	out := make(map[K]float64, len(counts))
	if total == 0 {
		return out
	}
	for k, n := range counts {
		out[k] = float64(n) / float64(total)
	}
	return out
}
