package pathfind

import (
	"context"
	"slices"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/robotics/internal/telemetry"
	"github.com/samdwyer/robotics/internal/world"
)

// Segment is one leg of a route, from the previous stop to Target.
type Segment struct {
	Target     int
	Cost       int
	Path       []int
	Directions []world.Direction
}

// Route visits every reachable target greedily: from the current stop it
// commits to the cheapest pending target, moves there and repeats. The
// result is not an optimal tour. Targets that cannot be reached, or are not
// nodes of the graph, are dropped.
// A target equal to the current stop yields an empty segment.
func (g *Graph) Route(ctx context.Context, start int, targets []int) ([]Segment, error) {
	_, span := telemetry.Tracer("pathfind").Start(ctx, "pathfind.route")
	defer span.End()

	pending := slices.Clone(targets)
	var segments []Segment
	for len(pending) > 0 {
		dist, prev := g.ShortestPaths(start)

		best := -1
		for i, t := range pending {
			if t < 0 || t >= g.Len() || dist[t] == Unreachable {
				continue
			}
			if best == -1 || dist[t] < dist[pending[best]] {
				best = i
			}
		}
		if best == -1 {
			break
		}

		target := pending[best]
		seg := Segment{Target: target, Cost: dist[target], Path: []int{start}}
		if target != start {
			seg.Path = ReconstructPath(prev, target)
			dirs, err := g.PathToDirections(seg.Path)
			if err != nil {
				span.RecordError(err)
				return nil, err
			}
			seg.Directions = dirs
		}
		segments = append(segments, seg)
		pending = slices.Delete(pending, best, best+1)
		start = target
	}

	span.SetAttributes(
		attribute.Int("targets", len(targets)),
		attribute.Int("segments", len(segments)),
	)
	return segments, nil
}

// Reach describes how to get from a start coordinate to one target tile.
type Reach struct {
	Target     world.Coordinate
	Reachable  bool
	Cost       int
	Directions []world.Direction
}

// ReachTargets finds every walkable tile of the map matching target and the
// cheapest walk from start to each of them.
func ReachTargets(tiles [][]world.Tile, target Target, start world.Coordinate) ([]Reach, error) {
	g, targets := FromTiles(tiles, target)
	if !g.contains(start) {
		return nil, world.ErrOutOfBounds
	}
	dist, prev := g.ShortestPaths(g.Node(start))

	out := make([]Reach, 0, len(targets))
	for _, t := range targets {
		r := Reach{Target: g.Coordinate(t)}
		if t == g.Node(start) {
			r.Reachable = true
			out = append(out, r)
			continue
		}
		if path := ReconstructPath(prev, t); path != nil {
			dirs, err := g.PathToDirections(path)
			if err != nil {
				return nil, err
			}
			r.Reachable = true
			r.Cost = dist[t]
			r.Directions = dirs
		}
		out = append(out, r)
	}
	return out, nil
}
