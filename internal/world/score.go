package world

import (
	"sort"
)

// ScoreCounter turns interactions into score using a per-kind weight table
// normalized against the initial map, so that disposing of everything the
// map offers earns about MaxScore.
type ScoreCounter struct {
	score    float32
	maxScore float32
	table    map[ContentKind]float32
}

// NewScoreCounter derives the weight table from the initial map. A non-nil
// custom table replaces the raw content weights but is normalized the same way.
func NewScoreCounter(maxScore float32, tiles [][]Tile, custom map[ContentKind]float32) (*ScoreCounter, error) {
	if len(tiles) == 0 {
		return nil, ErrEmptyWorld
	}
	if maxScore == 0 {
		return nil, ErrZeroMaxScore
	}

	weight := func(k ContentKind) float32 { return float32(k.Props().Weight) }
	if custom != nil {
		weight = func(k ContentKind) float32 { return custom[k] }
	}

	collected, capacity := inventory(tiles)
	raw := theoreticalMax(collected, capacity, weight)

	var mult float32
	if raw != 0 {
		mult = maxScore / raw
	}

	table := make(map[ContentKind]float32, numContentKinds)
	for _, k := range ContentKinds() {
		table[k] = weight(k) * mult
	}

	return &ScoreCounter{maxScore: maxScore, table: table}, nil
}

// inventory counts collectable quantities and receptacle capacity keyed by
// the kind each receptacle accepts.
func inventory(tiles [][]Tile) (collected map[ContentKind]int, capacity map[ContentKind]int) {
	collected = make(map[ContentKind]int)
	capacity = make(map[ContentKind]int)

	for _, row := range tiles {
		for _, tile := range row {
			c := tile.Content
			if c.Props().Weight == 0 {
				continue
			}
			accepted, isReceptacle := c.Kind.DisposesInto()
			switch {
			case isReceptacle && c.Kind.IsRange():
				capacity[accepted] += c.Span.Len()
			case c.Kind == Market:
				capacity[accepted] += c.Amount
			case c.Kind == Fire:
				capacity[accepted]++
			case c.Kind == Scarecrow:
				collected[c.Kind]++
			default:
				n, _ := c.Value()
				collected[c.Kind] += n
			}
		}
	}
	return collected, capacity
}

// theoreticalMax sums the raw score of collecting everything and filling the
// best receptacles first, crafting missing disposables from leftovers.
func theoreticalMax(collected, capacity map[ContentKind]int, weight func(ContentKind) float32) float32 {
	var sum float32
	for k, n := range collected {
		sum += float32(n) * weight(k)
	}

	type receptacle struct {
		kind     ContentKind
		accepted ContentKind
	}
	var receptacles []receptacle
	for _, k := range ContentKinds() {
		if accepted, ok := k.DisposesInto(); ok {
			receptacles = append(receptacles, receptacle{kind: k, accepted: accepted})
		}
	}
	sort.SliceStable(receptacles, func(i, j int) bool {
		return weight(receptacles[i].kind) > weight(receptacles[j].kind)
	})

	for _, r := range receptacles {
		room := capacity[r.accepted]
		have := collected[r.accepted]
		if room <= have {
			sum += float32(room) * weight(r.kind)
			continue
		}
		craftable := craftableAmount(r.accepted, collected)
		if total := craftable + have; total < room {
			sum += float32(total) * weight(r.kind)
			spendMaterials(r.accepted, craftable, collected)
		} else {
			sum += float32(room) * weight(r.kind)
			spendMaterials(r.accepted, room-have, collected)
		}
	}
	return sum
}

// craftableAmount counts how many units of k all recipe alternatives could
// produce from the remaining collectables.
func craftableAmount(k ContentKind, collected map[ContentKind]int) int {
	total := 0
	for _, ing := range k.Recipe() {
		total += collected[ing.Kind] / ing.Count
	}
	return total
}

// spendMaterials removes the ingredients needed to craft units of k,
// trying the alternatives in recipe order.
func spendMaterials(k ContentKind, units int, collected map[ContentKind]int) {
	for _, ing := range k.Recipe() {
		if units <= 0 {
			return
		}
		possible := collected[ing.Kind] / ing.Count
		use := min(possible, units)
		collected[ing.Kind] -= use * ing.Count
		units -= use
	}
}

// Score returns the accumulated score.
func (s *ScoreCounter) Score() float32 {
	return s.score
}

// MaxScore returns the target budget the table was normalized against.
func (s *ScoreCounter) MaxScore() float32 {
	return s.maxScore
}

// Weight returns the normalized weight of a content kind.
func (s *ScoreCounter) Weight(k ContentKind) float32 {
	return s.table[k]
}

// Table returns a copy of the normalized weight table.
func (s *ScoreCounter) Table() map[ContentKind]float32 {
	out := make(map[ContentKind]float32, len(s.table))
	for k, v := range s.table {
		out[k] = v
	}
	return out
}

// AddDestroy scores qty units of destroyed content.
func (s *ScoreCounter) AddDestroy(c Content, qty int) {
	s.add(c.Kind, qty)
}

// AddPut scores qty units disposed into the receptacle c.
func (s *ScoreCounter) AddPut(c Content, qty int) {
	s.add(c.Kind, qty)
}

func (s *ScoreCounter) add(k ContentKind, qty int) {
	if qty <= 0 {
		return
	}
	s.score += s.table[k] * float32(qty)
}
