package interaction

import (
	"github.com/samdwyer/robotics/internal/robot"
	"github.com/samdwyer/robotics/internal/world"
)

// Paving and digging multipliers.
const (
	shallowPaveRocks = 2
	deepPaveRocks    = 3
	deepPaveFactor   = 2
	lavaPaveRocks    = 3
	lavaPaveFactor   = 3
	digFactor        = 4
)

// placement is one Put request being resolved.
type placement struct {
	r      robot.Runnable
	w      *world.World
	tile   *world.Tile
	kind   world.ContentKind // What the robot puts down
	qty    int               // Requested quantity
	held   int               // Quantity of kind in the backpack
	amount int               // min(qty, held, max yield of kind)
}

// Put places content from the backpack onto the adjacent tile in direction d.
// What happens depends on the tile:
//   - a bin, crate or bank accepting kind is filled (0 moved when full)
//   - fire set on a tree or an empty tile replaces it
//   - a market buys the content for coins
//   - rock paves grass, hill, sand and snow (and, with more rock, shallow
//     water, deep water and lava) into street
//   - putting nothing onto a mountain digs it into street and yields rock
//   - water extinguishes fire, anything else thrown on fire burns
//   - an empty tile receives the content if the terrain can hold it
//   - a tile with the same scalar content is topped up to its max
//
// Returns the quantity moved out of the backpack (coins or rock gained for
// markets and digging).
func Put(r robot.Runnable, w *world.World, kind world.ContentKind, qty int, d world.Direction) (int, error) {
	c, tile, err := target(r, w, d)
	if err != nil {
		return 0, err
	}
	if kind == world.ContentNone && tile.Type != world.Mountain {
		return 0, world.ErrWrongContentUsed
	}

	held := r.GetBackpack().Amount(kind)
	p := &placement{
		r:      r,
		w:      w,
		tile:   tile,
		kind:   kind,
		qty:    max(qty, 0),
		held:   held,
		amount: min(max(qty, 0), held, maxYield(kind)),
	}

	n, err := p.resolve()
	if err != nil {
		return 0, err
	}
	tileUpdated(r, w, c)
	return n, nil
}

// maxYield caps how much of a kind one Put may place. Amount-less kinds
// place a single unit.
func maxYield(k world.ContentKind) int {
	if m := k.Props().Max; m > 0 {
		return m
	}
	return 1
}

func (p *placement) resolve() (int, error) {
	on := p.tile.Content
	switch {
	case on.Kind.IsRange() && accepts(on.Kind, p.kind):
		return p.deposit()
	case p.kind == world.Fire && (on.Kind == world.Tree || on.IsNone()):
		return p.ignite()
	case on.Kind == world.Market:
		return p.sell()
	case p.kind == world.Rock && isPaveable(p.tile.Type):
		return p.pave()
	case p.kind == world.ContentNone:
		return p.dig()
	case on.Kind == world.Fire && p.kind == world.Water:
		return p.extinguish()
	case on.Kind == world.Fire:
		return p.burn()
	case on.IsNone():
		return p.place()
	default:
		return p.topUp()
	}
}

func accepts(receptacle, kind world.ContentKind) bool {
	accepted, ok := receptacle.DisposesInto()
	return ok && accepted == kind
}

func isPaveable(t world.TileType) bool {
	switch t {
	case world.Grass, world.Hill, world.Sand, world.Snow, world.ShallowWater, world.DeepWater, world.Lava:
		return true
	default:
		return false
	}
}

// take pays cost and removes n units of the placed kind.
func (p *placement) take(cost, n int) error {
	if p.held == 0 {
		return world.ErrNoContent
	}
	if err := canPay(p.r, cost); err != nil {
		return err
	}
	if err := pay(p.r, cost); err != nil {
		return err
	}
	if n == 0 {
		return nil
	}
	_, err := RemoveFromBackpack(p.r, p.kind, n)
	return err
}

// deposit fills a receptacle. A full receptacle accepts nothing and costs nothing.
func (p *placement) deposit() (int, error) {
	receptacle := &p.tile.Content
	n := min(receptacle.Span.Len(), p.held, p.qty)
	if err := p.take(receptacle.Props().Cost*n, n); err != nil {
		return 0, err
	}
	receptacle.Span.Start += n
	p.w.Score().AddPut(*receptacle, n)
	return n, nil
}

func (p *placement) ignite() (int, error) {
	if !p.tile.Type.CanHold(world.Fire) {
		return 0, world.ErrWrongContentUsed
	}
	if err := p.take(world.Fire.Props().Cost, 1); err != nil {
		return 0, err
	}
	p.tile.Content = world.Content{Kind: world.Fire}
	return 1, nil
}

// sell trades content for coins. Each sale uses up one market operation.
func (p *placement) sell() (int, error) {
	market := &p.tile.Content
	if market.Amount < 1 {
		return 0, world.ErrOperationNotAllowed
	}
	price := p.kind.MarketPrice()
	if price == 0 {
		return 0, world.ErrWrongContentUsed
	}
	if p.held == 0 {
		return 0, world.ErrNoContent
	}
	if p.qty == 0 {
		return 0, world.ErrNotEnoughContentProvided
	}

	sold, err := RemoveFromBackpack(p.r, p.kind, min(p.qty, p.held))
	if err != nil {
		return 0, err
	}
	market.Amount--
	coins, _ := AddToBackpack(p.r, world.Coin, sold*price)
	return coins, nil
}

// pave turns the tile into street, using more rock on harder terrain.
func (p *placement) pave() (int, error) {
	rockCost := world.Rock.Props().Cost
	rocks, cost := 1, rockCost
	switch p.tile.Type {
	case world.ShallowWater:
		rocks, cost = shallowPaveRocks, rockCost*shallowPaveRocks
	case world.DeepWater:
		rocks, cost = deepPaveRocks, rockCost*deepPaveRocks*deepPaveFactor
	case world.Lava:
		rocks, cost = lavaPaveRocks, rockCost*lavaPaveRocks*lavaPaveFactor
	}

	if !world.Street.CanHold(p.tile.Content.Kind) {
		return 0, world.ErrMustDestroyContentFirst
	}
	if p.held == 0 {
		return 0, world.ErrNoContent
	}
	if p.amount < rocks {
		return 0, world.ErrNotEnoughContentProvided
	}
	if err := p.take(cost, rocks); err != nil {
		return 0, err
	}
	p.tile.Type = world.Street
	return rocks, nil
}

// dig turns a mountain into street and gives the robot the rock it digs out.
func (p *placement) dig() (int, error) {
	if !world.Street.CanHold(p.tile.Content.Kind) {
		return 0, world.ErrMustDestroyContentFirst
	}
	rocks := 1 + p.w.Rand().Intn(world.Rock.Props().Max-1)
	cost := world.Rock.Props().Cost * rocks * digFactor
	if err := canPay(p.r, cost); err != nil {
		return 0, err
	}
	if p.r.GetBackpack().Free() == 0 {
		return 0, world.NotEnoughSpace(0)
	}

	if err := pay(p.r, cost); err != nil {
		return 0, err
	}
	stored, _ := AddToBackpack(p.r, world.Rock, rocks)
	p.tile.Type = world.Street
	return stored, nil
}

func (p *placement) extinguish() (int, error) {
	if err := p.take(world.Water.Props().Cost, 1); err != nil {
		return 0, err
	}
	p.tile.Content = world.None
	p.w.Score().AddPut(world.Content{Kind: world.Fire}, 1)
	return 1, nil
}

// burn throws content into a fire; it is lost and the fire keeps burning.
func (p *placement) burn() (int, error) {
	if err := p.take(world.Water.Props().Cost*p.amount, p.amount); err != nil {
		return 0, err
	}
	return p.amount, nil
}

func (p *placement) place() (int, error) {
	if !p.tile.Type.CanHold(p.kind) {
		return 0, world.ErrWrongContentUsed
	}
	if p.held > 0 && p.amount == 0 {
		return 0, world.ErrNotEnoughContentProvided
	}
	if err := p.take(p.kind.Props().Cost*p.amount, p.amount); err != nil {
		return 0, err
	}
	p.tile.Content = world.Content{Kind: p.kind}.WithValue(p.amount)
	return p.amount, nil
}

// topUp adds to a tile already holding the same scalar content.
func (p *placement) topUp() (int, error) {
	on := &p.tile.Content
	if on.Kind != p.kind {
		return 0, world.ErrWrongContentUsed
	}
	value, ok := on.Value()
	if !ok {
		return 0, world.ErrOperationNotAllowed
	}
	if p.held == 0 {
		return 0, world.ErrNoContent
	}
	n := min(p.amount, on.Props().Max-value)
	if n <= 0 {
		return 0, world.ErrOperationNotAllowed
	}
	if err := p.take(p.kind.Props().Cost*n, n); err != nil {
		return 0, err
	}
	*on = on.WithValue(value + n)
	return n, nil
}
