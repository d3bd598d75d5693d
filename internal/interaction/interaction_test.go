package interaction_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/robotics/internal/event"
	"github.com/samdwyer/robotics/internal/interaction"
	"github.com/samdwyer/robotics/internal/robot"
	"github.com/samdwyer/robotics/internal/world"
	"github.com/samdwyer/robotics/internal/worldtest"
)

// setup builds a world from tiles and a bot standing at pos.
func setup(t *testing.T, tiles [][]world.Tile, pos world.Coordinate, opts ...world.Option) (*world.World, *worldtest.Bot) {
	t.Helper()
	w := worldtest.NewWorld(t, tiles, opts...)
	bot := worldtest.NewBot(20)
	bot.SetCoordinate(pos)
	return w, bot
}

func give(t *testing.T, bot *worldtest.Bot, kind world.ContentKind, qty int) {
	t.Helper()
	_, err := bot.GetBackpack().Add(kind, qty)
	require.NoError(t, err)
}

func at(row, col int) world.Coordinate { return world.NewCoordinate(row, col) }

// ===== Movement =====

func TestGoRightOnGrass(t *testing.T) {
	w, bot := setup(t, worldtest.Grid(3, world.Grass), at(0, 0))

	view, pos, err := interaction.Go(bot, w, world.Right)
	require.NoError(t, err)
	assert.Equal(t, at(0, 1), pos)
	assert.Equal(t, at(0, 1), bot.GetCoordinate())
	assert.Equal(t, robot.MaxEnergyLevel-1, bot.GetEnergy().Level())
	require.Len(t, view, 3)
	assert.Nil(t, view[0][1], "row above the map is unknown")
	assert.NotNil(t, view[1][1])

	assert.Equal(t, []event.Kind{event.KindEnergyConsumed, event.KindMoved}, bot.Kinds())
}

func TestGoFailures(t *testing.T) {
	tiles := worldtest.Grid(3, world.Grass)
	tiles[0][1].Type = world.Wall

	tests := []struct {
		name   string
		dir    world.Direction
		energy int
		want   error
	}{
		{"off the map", world.Up, robot.MaxEnergyLevel, world.ErrOutOfBounds},
		{"into a wall", world.Right, robot.MaxEnergyLevel, world.ErrCannotWalk},
		{"no energy", world.Down, 0, world.ErrNotEnoughEnergy},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, bot := setup(t, tiles, at(0, 0))
			bot.Energy = robot.NewEnergy(tt.energy)

			_, pos, err := interaction.Go(bot, w, tt.dir)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, at(0, 0), pos)
			assert.Equal(t, at(0, 0), bot.GetCoordinate())
			assert.Equal(t, tt.energy, bot.GetEnergy().Level())
			assert.Empty(t, bot.Events)
		})
	}
}

func TestGoUphillPaysElevation(t *testing.T) {
	tiles := worldtest.Grid(3, world.Grass)
	tiles[0][1].Elevation = 2
	w, bot := setup(t, tiles, at(0, 0))

	_, _, err := interaction.Go(bot, w, world.Right)
	require.NoError(t, err)
	assert.Equal(t, robot.MaxEnergyLevel-5, bot.GetEnergy().Level())

	// Downhill is free of elevation cost.
	_, _, err = interaction.Go(bot, w, world.Left)
	require.NoError(t, err)
	assert.Equal(t, robot.MaxEnergyLevel-6, bot.GetEnergy().Level())
}

func TestEnvironmentCost(t *testing.T) {
	tests := []struct {
		name    string
		weather world.WeatherType
		hour    int
		tile    world.TileType
		want    int
	}{
		{"sunny afternoon grass", world.Sunny, 15, world.Grass, 1},
		{"rainy afternoon grass", world.Rainy, 15, world.Grass, 3},
		{"sunny night grass", world.Sunny, 22, world.Grass, 3},
		{"sunny morning grass", world.Sunny, 9, world.Grass, 3},
		{"sunny afternoon sand", world.Sunny, 15, world.Sand, 9},
		{"foggy afternoon street", world.Foggy, 15, world.Street, 1},
		{"monsoon afternoon hill", world.TropicalMonsoon, 15, world.Hill, 15},
		{"snowing afternoon snow", world.TrentinoSnow, 15, world.Snow, 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, err := world.NewEnvironmentalConditions([]world.WeatherType{tt.weather}, 10, tt.hour)
			require.NoError(t, err)
			got := interaction.EnvironmentCost(tt.tile.Cost(), env, tt.tile)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTeleportActivationIsIdempotent(t *testing.T) {
	tiles := worldtest.Grid(3, world.Grass)
	tiles[0][1].Type = world.Teleport
	w, bot := setup(t, tiles, at(0, 0))

	_, _, err := interaction.Go(bot, w, world.Right)
	require.NoError(t, err)
	assert.True(t, w.TileAt(at(0, 1)).Activated)

	_, _, err = interaction.Go(bot, w, world.Left)
	require.NoError(t, err)
	_, _, err = interaction.Go(bot, w, world.Right)
	require.NoError(t, err)
	assert.True(t, w.TileAt(at(0, 1)).Activated)
}

func TestTeleport(t *testing.T) {
	tiles := worldtest.Grid(3, world.Grass)
	tiles[0][0].Type = world.Teleport
	tiles[2][2].Type = world.Teleport
	tiles[2][0].Type = world.Teleport
	w, bot := setup(t, tiles, at(0, 0))
	w.TileAt(at(0, 0)).Activated = true
	w.TileAt(at(2, 2)).Activated = true

	_, _, err := interaction.Teleport(bot, w, at(2, 0))
	assert.ErrorIs(t, err, world.ErrOperationNotAllowed, "destination never visited")

	_, _, err = interaction.Teleport(bot, w, at(5, 5))
	assert.ErrorIs(t, err, world.ErrOutOfBounds)

	_, pos, err := interaction.Teleport(bot, w, at(2, 2))
	require.NoError(t, err)
	assert.Equal(t, at(2, 2), pos)
	assert.Equal(t, robot.MaxEnergyLevel-interaction.TeleportCost, bot.GetEnergy().Level())
}

// ===== Views =====

func TestRobotViewDiscovers(t *testing.T) {
	w, bot := setup(t, worldtest.Grid(5, world.Grass), at(0, 0))

	view := interaction.RobotView(bot, w)
	assert.Nil(t, view[0][0])
	assert.NotNil(t, view[2][2])
	assert.Equal(t, 4, w.DiscoveredCount())

	known := interaction.RobotMap(w)
	assert.NotNil(t, known[1][1])
	assert.Nil(t, known[2][2])
}

func TestOneDirectionView(t *testing.T) {
	tests := []struct {
		name     string
		pos      world.Coordinate
		dir      world.Direction
		distance int
		rows     int
		width    int
		cost     int
	}{
		{"single tile is free", at(4, 4), world.Up, 1, 1, 3, 0},
		{"four tiles cost three each", at(4, 4), world.Up, 4, 4, 3, 12},
		{"clipped at the top edge", at(2, 4), world.Up, 4, 2, 3, 6},
		{"clipped at the side", at(4, 0), world.Up, 2, 2, 2, 6},
		{"left strip rows are lines", at(4, 4), world.Left, 3, 3, 3, 9},
		{"nothing beyond the edge", at(0, 4), world.Up, 3, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, bot := setup(t, worldtest.Grid(9, world.Grass), tt.pos)

			strip, err := interaction.OneDirectionView(bot, w, tt.dir, tt.distance)
			require.NoError(t, err)
			assert.Equal(t, robot.MaxEnergyLevel-tt.cost, bot.GetEnergy().Level())

			if tt.dir == world.Left {
				require.Len(t, strip, tt.width)
				for _, line := range strip {
					assert.Len(t, line, tt.rows)
				}
				return
			}
			require.Len(t, strip, tt.rows)
			for _, row := range strip {
				assert.Len(t, row, tt.width)
			}
		})
	}
}

func TestOneDirectionViewTooExpensive(t *testing.T) {
	w, bot := setup(t, worldtest.Grid(9, world.Grass), at(8, 4))
	bot.Energy = robot.NewEnergy(5)

	_, err := interaction.OneDirectionView(bot, w, world.Up, 4)
	assert.ErrorIs(t, err, world.ErrNotEnoughEnergy)
	assert.Equal(t, 5, bot.GetEnergy().Level())
	assert.Zero(t, w.DiscoveredCount())
}

func TestCheckPriceView(t *testing.T) {
	_, bot := setup(t, worldtest.Grid(3, world.Grass), at(0, 0))

	cost, err := interaction.CheckPriceView(bot, 10)
	require.NoError(t, err)
	assert.Equal(t, 30, cost)

	bot.Energy = robot.NewEnergy(29)
	_, err = interaction.CheckPriceView(bot, 10)
	assert.ErrorIs(t, err, world.ErrNotEnoughEnergy)
}

func TestDiscoverTilesBudget(t *testing.T) {
	w, bot := setup(t, worldtest.Grid(5, world.Grass), at(0, 0), world.WithDiscoverable(9))

	coords := make([]world.Coordinate, 10)
	for i := range coords {
		coords[i] = at(i/5, i%5)
	}
	_, err := interaction.DiscoverTiles(bot, w, coords)
	assert.ErrorIs(t, err, world.ErrNoMoreDiscovery)
	assert.Equal(t, 9, w.Discoverable())
	assert.Equal(t, robot.MaxEnergyLevel, bot.GetEnergy().Level())

	found, err := interaction.DiscoverTiles(bot, w, []world.Coordinate{at(4, 4), at(2, 3), at(7, 7)})
	require.NoError(t, err)
	assert.Equal(t, 6, w.Discoverable())
	assert.Equal(t, robot.MaxEnergyLevel-9, bot.GetEnergy().Level())
	assert.NotNil(t, found[at(4, 4)])
	assert.Nil(t, found[at(7, 7)])
	assert.True(t, w.IsDiscovered(at(2, 3)))
}

// ===== Destroy =====

func TestDestroyRock(t *testing.T) {
	tiles := worldtest.Grid(3, world.Grass)
	tiles[0][1].Content = world.NewContent(world.Rock, 2)
	w, bot := setup(t, tiles, at(0, 0))

	n, err := interaction.Destroy(bot, w, world.Right)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 2, bot.GetBackpack().Amount(world.Rock))
	assert.True(t, w.TileAt(at(0, 1)).Content.IsNone())
	assert.Equal(t, robot.MaxEnergyLevel-world.Rock.Props().Cost, bot.GetEnergy().Level())
	assert.InDelta(t, w.Score().Weight(world.Rock)*2, w.Score().Score(), 1e-3)

	assert.Equal(t, []event.Kind{
		event.KindEnergyConsumed,
		event.KindAddedToBackpack,
		event.KindTileContentUpdated,
	}, bot.Kinds())
}

func TestDestroyFullBackpackIsAtomic(t *testing.T) {
	tiles := worldtest.Grid(3, world.Grass)
	tiles[0][1].Content = world.NewContent(world.Rock, 2)
	w := worldtest.NewWorld(t, tiles)
	bot := worldtest.NewBot(0)

	_, err := interaction.Destroy(bot, w, world.Right)
	require.ErrorIs(t, err, world.ErrNotEnoughSpace)
	var space *world.NotEnoughSpaceError
	require.True(t, errors.As(err, &space))
	assert.Zero(t, space.Added)

	assert.Equal(t, world.NewContent(world.Rock, 2), w.TileAt(at(0, 1)).Content)
	assert.Equal(t, robot.MaxEnergyLevel, bot.GetEnergy().Level())
	assert.Zero(t, w.Score().Score())
}

func TestDestroyPartialStore(t *testing.T) {
	tiles := worldtest.Grid(3, world.Grass)
	tiles[0][1].Content = world.NewContent(world.Tree, 5)
	w := worldtest.NewWorld(t, tiles)
	bot := worldtest.NewBot(2)

	n, err := interaction.Destroy(bot, w, world.Right)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.True(t, w.TileAt(at(0, 1)).Content.IsNone())
}

func TestDestroyFailures(t *testing.T) {
	tiles := worldtest.Grid(3, world.Grass)
	tiles[0][1].Content = world.NewReceptacle(world.Bank, 0, 10)
	w, bot := setup(t, tiles, at(0, 0))

	_, err := interaction.Destroy(bot, w, world.Right)
	assert.ErrorIs(t, err, world.ErrCannotDestroy)
	_, err = interaction.Destroy(bot, w, world.Down)
	assert.ErrorIs(t, err, world.ErrNoContent)
	_, err = interaction.Destroy(bot, w, world.Left)
	assert.ErrorIs(t, err, world.ErrOutOfBounds)
}

func TestDestroyFireYieldsOne(t *testing.T) {
	tiles := worldtest.Grid(3, world.Grass)
	tiles[0][1].Content = world.Content{Kind: world.Fire}
	w, bot := setup(t, tiles, at(0, 0))

	n, err := interaction.Destroy(bot, w, world.Right)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, 1, bot.GetBackpack().Amount(world.Fire))
}

func TestDestroyHarvestsWater(t *testing.T) {
	tiles := worldtest.Grid(3, world.Grass)
	tiles[0][1].Type = world.ShallowWater
	w, bot := setup(t, tiles, at(0, 0))

	n, err := interaction.Destroy(bot, w, world.Right)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, 0)
	assert.Less(t, n, world.Water.Props().Max)
	assert.Equal(t, n, bot.GetBackpack().Amount(world.Water))
	assert.Equal(t, robot.MaxEnergyLevel-world.Water.Props().Cost, bot.GetEnergy().Level())
}

// ===== Put =====

func TestPutIntoBank(t *testing.T) {
	tiles := worldtest.Grid(3, world.Grass)
	tiles[1][1].Content = world.NewReceptacle(world.Bank, 0, 11)
	w, bot := setup(t, tiles, at(0, 1))
	give(t, bot, world.Coin, 20)

	n, err := interaction.Put(bot, w, world.Coin, 5, world.Down)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, world.NewReceptacle(world.Bank, 5, 11), w.TileAt(at(1, 1)).Content)
	assert.Equal(t, 15, bot.GetBackpack().Amount(world.Coin))

	n, err = interaction.Put(bot, w, world.Coin, 5, world.Down)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	n, err = interaction.Put(bot, w, world.Coin, 2, world.Down)
	require.NoError(t, err)
	assert.Equal(t, 1, n, "only one slot left")
	assert.Equal(t, 9, bot.GetBackpack().Amount(world.Coin))

	n, err = interaction.Put(bot, w, world.Coin, 2, world.Down)
	require.NoError(t, err)
	assert.Zero(t, n, "full bank accepts nothing")
	assert.Equal(t, 9, bot.GetBackpack().Amount(world.Coin))
	assert.InDelta(t, w.Score().Weight(world.Bank)*11, w.Score().Score(), 1e-3)
}

func TestPutDepositsIntoReceptacles(t *testing.T) {
	tests := []struct {
		name       string
		receptacle world.Content
		kind       world.ContentKind
		qty        int
		want       world.Content
	}{
		{"bin takes garbage", world.NewReceptacle(world.Bin, 0, 10), world.Garbage, 4, world.NewReceptacle(world.Bin, 4, 10)},
		{"crate takes trees", world.NewReceptacle(world.Crate, 2, 20), world.Tree, 5, world.NewReceptacle(world.Crate, 7, 20)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tiles := worldtest.Grid(3, world.Grass)
			tiles[1][1].Content = tt.receptacle
			w, bot := setup(t, tiles, at(0, 1))
			give(t, bot, tt.kind, tt.qty)

			n, err := interaction.Put(bot, w, tt.kind, tt.qty, world.Down)
			require.NoError(t, err)
			assert.Equal(t, tt.qty, n)
			assert.Equal(t, tt.want, w.TileAt(at(1, 1)).Content)
			assert.Zero(t, bot.GetBackpack().Amount(tt.kind))
			assert.Positive(t, w.Score().Score())
		})
	}
}

func TestPutWrongKindIntoReceptacle(t *testing.T) {
	tiles := worldtest.Grid(3, world.Grass)
	tiles[1][1].Content = world.NewReceptacle(world.Bin, 0, 10)
	w, bot := setup(t, tiles, at(0, 1))
	give(t, bot, world.Tree, 2)

	_, err := interaction.Put(bot, w, world.Tree, 2, world.Down)
	assert.ErrorIs(t, err, world.ErrWrongContentUsed)
	assert.Equal(t, world.NewReceptacle(world.Bin, 0, 10), w.TileAt(at(1, 1)).Content)
	assert.Equal(t, 2, bot.GetBackpack().Amount(world.Tree))
}

func TestPutPlaceOnEmptyTile(t *testing.T) {
	tiles := worldtest.Grid(3, world.Grass)
	tiles[0][1].Type = world.ShallowWater
	w, bot := setup(t, tiles, at(0, 0))
	give(t, bot, world.Coin, 3)
	give(t, bot, world.Water, 5)

	_, err := interaction.Put(bot, w, world.Coin, 1, world.Right)
	assert.ErrorIs(t, err, world.ErrWrongContentUsed, "shallow water cannot hold coins")

	n, err := interaction.Put(bot, w, world.Water, 3, world.Right)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, world.NewContent(world.Water, 3), w.TileAt(at(0, 1)).Content)
	assert.Equal(t, 2, bot.GetBackpack().Amount(world.Water))
	assert.Equal(t, robot.MaxEnergyLevel-3*world.Water.Props().Cost, bot.GetEnergy().Level())

	_, err = interaction.Put(bot, w, world.Tree, 1, world.Down)
	assert.ErrorIs(t, err, world.ErrNoContent)
}

func TestPutTopsUpSameContent(t *testing.T) {
	tiles := worldtest.Grid(3, world.Street)
	tiles[0][1].Content = world.NewContent(world.Rock, 1)
	w, bot := setup(t, tiles, at(0, 0))
	give(t, bot, world.Rock, 5)
	give(t, bot, world.Garbage, 1)

	n, err := interaction.Put(bot, w, world.Rock, 5, world.Right)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, world.NewContent(world.Rock, world.Rock.Props().Max), w.TileAt(at(0, 1)).Content)

	_, err = interaction.Put(bot, w, world.Rock, 1, world.Right)
	assert.ErrorIs(t, err, world.ErrOperationNotAllowed)

	_, err = interaction.Put(bot, w, world.Garbage, 1, world.Right)
	assert.ErrorIs(t, err, world.ErrWrongContentUsed)
}

func TestPutFire(t *testing.T) {
	tiles := worldtest.Grid(3, world.Grass)
	tiles[0][1].Content = world.NewContent(world.Tree, 2)
	w, bot := setup(t, tiles, at(0, 0))
	give(t, bot, world.Fire, 1)
	give(t, bot, world.Fish, 2)
	give(t, bot, world.Water, 1)

	n, err := interaction.Put(bot, w, world.Fire, 1, world.Right)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, world.Fire, w.TileAt(at(0, 1)).Content.Kind)

	// Anything but water burns and the fire keeps going.
	n, err = interaction.Put(bot, w, world.Fish, 2, world.Right)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Zero(t, bot.GetBackpack().Amount(world.Fish))
	assert.Equal(t, world.Fire, w.TileAt(at(0, 1)).Content.Kind)

	n, err = interaction.Put(bot, w, world.Water, 1, world.Right)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.True(t, w.TileAt(at(0, 1)).Content.IsNone())

	cost := world.Fire.Props().Cost + 2*world.Water.Props().Cost + world.Water.Props().Cost
	assert.Equal(t, robot.MaxEnergyLevel-cost, bot.GetEnergy().Level())
}

func TestPutSellsToMarket(t *testing.T) {
	tiles := worldtest.Grid(3, world.Grass)
	tiles[0][1].Content = world.NewContent(world.Market, 1)
	w, bot := setup(t, tiles, at(0, 0))
	give(t, bot, world.Fish, 3)
	give(t, bot, world.Garbage, 1)

	_, err := interaction.Put(bot, w, world.Garbage, 1, world.Right)
	assert.ErrorIs(t, err, world.ErrWrongContentUsed, "garbage has no price")
	assert.Equal(t, 1, w.TileAt(at(0, 1)).Content.Amount)

	n, err := interaction.Put(bot, w, world.Fish, 2, world.Right)
	require.NoError(t, err)
	assert.Equal(t, 2*world.Fish.MarketPrice(), n)
	assert.Equal(t, n, bot.GetBackpack().Amount(world.Coin))
	assert.Equal(t, 1, bot.GetBackpack().Amount(world.Fish))
	assert.Zero(t, w.TileAt(at(0, 1)).Content.Amount)

	_, err = interaction.Put(bot, w, world.Fish, 1, world.Right)
	assert.ErrorIs(t, err, world.ErrOperationNotAllowed, "market is closed")
	assert.Equal(t, 1, bot.GetBackpack().Amount(world.Fish))
}

func TestPutPaves(t *testing.T) {
	tests := []struct {
		name    string
		terrain world.TileType
		rocks   int
		cost    int
		want    error
	}{
		{"grass", world.Grass, 1, 1, nil},
		{"sand", world.Sand, 1, 1, nil},
		{"shallow water", world.ShallowWater, 2, 2, nil},
		{"deep water", world.DeepWater, 3, 6, nil},
		{"lava", world.Lava, 3, 9, nil},
		{"shallow water short of rock", world.ShallowWater, 1, 0, world.ErrNotEnoughContentProvided},
		{"lava short of rock", world.Lava, 2, 0, world.ErrNotEnoughContentProvided},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tiles := worldtest.Grid(3, world.Grass)
			tiles[0][1].Type = tt.terrain
			w, bot := setup(t, tiles, at(0, 0))
			give(t, bot, world.Rock, tt.rocks)

			n, err := interaction.Put(bot, w, world.Rock, tt.rocks, world.Right)
			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
				assert.Equal(t, tt.terrain, w.TileAt(at(0, 1)).Type)
				assert.Equal(t, tt.rocks, bot.GetBackpack().Amount(world.Rock))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.rocks, n)
			assert.Equal(t, world.Street, w.TileAt(at(0, 1)).Type)
			assert.Zero(t, bot.GetBackpack().Amount(world.Rock))
			assert.Equal(t, robot.MaxEnergyLevel-tt.cost, bot.GetEnergy().Level())
		})
	}
}

func TestPutPavingNeedsClearTile(t *testing.T) {
	tiles := worldtest.Grid(3, world.Grass)
	tiles[0][1].Content = world.NewContent(world.Tree, 1)
	w, bot := setup(t, tiles, at(0, 0))
	give(t, bot, world.Rock, 1)

	_, err := interaction.Put(bot, w, world.Rock, 1, world.Right)
	assert.ErrorIs(t, err, world.ErrMustDestroyContentFirst)
	assert.Equal(t, world.Grass, w.TileAt(at(0, 1)).Type)
}

func TestPutNothingDigsMountain(t *testing.T) {
	tiles := worldtest.Grid(3, world.Grass)
	tiles[0][1].Type = world.Mountain
	w, bot := setup(t, tiles, at(0, 0))

	_, err := interaction.Put(bot, w, world.ContentNone, 0, world.Down)
	assert.ErrorIs(t, err, world.ErrWrongContentUsed, "only mountains can be dug")

	n, err := interaction.Put(bot, w, world.ContentNone, 0, world.Right)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, 1)
	assert.Less(t, n, world.Rock.Props().Max)
	assert.Equal(t, n, bot.GetBackpack().Amount(world.Rock))
	assert.Equal(t, world.Street, w.TileAt(at(0, 1)).Type)
	assert.Equal(t, robot.MaxEnergyLevel-4*n*world.Rock.Props().Cost, bot.GetEnergy().Level())
}

func TestPutOutOfBounds(t *testing.T) {
	w, bot := setup(t, worldtest.Grid(3, world.Grass), at(0, 0))
	give(t, bot, world.Rock, 1)

	_, err := interaction.Put(bot, w, world.Rock, 1, world.Up)
	assert.ErrorIs(t, err, world.ErrOutOfBounds)
}

func TestDestroyPutRoundTrip(t *testing.T) {
	tiles := worldtest.Grid(3, world.Grass)
	tiles[0][1].Content = world.NewContent(world.Tree, 3)
	w, bot := setup(t, tiles, at(0, 0))

	n, err := interaction.Destroy(bot, w, world.Right)
	require.NoError(t, err)
	require.Equal(t, 3, n)

	n, err = interaction.Put(bot, w, world.Tree, 3, world.Right)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, world.NewContent(world.Tree, 3), w.TileAt(at(0, 1)).Content)
	assert.Zero(t, bot.GetBackpack().Total())

	treeCost := world.Tree.Props().Cost
	assert.Equal(t, robot.MaxEnergyLevel-treeCost-3*treeCost, bot.GetEnergy().Level())
}

// ===== Craft =====

func TestCraftGarbageFromRock(t *testing.T) {
	_, bot := setup(t, worldtest.Grid(3, world.Grass), at(0, 0))
	give(t, bot, world.Rock, 15)

	for i := 0; i < 5; i++ {
		got, err := interaction.Craft(bot, world.Garbage)
		require.NoError(t, err, "craft %d", i+1)
		assert.Equal(t, world.NewContent(world.Garbage, 0), got)
	}
	assert.Zero(t, bot.GetBackpack().Amount(world.Rock))
	assert.Equal(t, 5, bot.GetBackpack().Amount(world.Garbage))
	assert.Equal(t, robot.MaxEnergyLevel-5*world.Garbage.Props().Cost, bot.GetEnergy().Level())

	_, err := interaction.Craft(bot, world.Garbage)
	assert.ErrorIs(t, err, world.ErrNotCraftable)
}

func TestCraftFailures(t *testing.T) {
	_, bot := setup(t, worldtest.Grid(3, world.Grass), at(0, 0))
	give(t, bot, world.Rock, 3)

	_, err := interaction.Craft(bot, world.ContentNone)
	assert.ErrorIs(t, err, world.ErrNotCraftable)

	_, err = interaction.Craft(bot, world.Rock)
	assert.ErrorIs(t, err, world.ErrNotCraftable, "rock has no recipe")

	// Ingredients are spent even when the energy runs out.
	bot.Energy = robot.NewEnergy(0)
	_, err = interaction.Craft(bot, world.Garbage)
	assert.ErrorIs(t, err, world.ErrNotEnoughEnergy)
	assert.Zero(t, bot.GetBackpack().Amount(world.Rock))
	assert.Zero(t, bot.GetBackpack().Amount(world.Garbage))
}

// ===== Transfer =====

func TestAddToBackpackReportsPartial(t *testing.T) {
	bot := worldtest.NewBot(3)

	n, err := interaction.AddToBackpack(bot, world.Rock, 5)
	assert.Equal(t, 3, n)
	var space *world.NotEnoughSpaceError
	require.True(t, errors.As(err, &space))
	assert.Equal(t, 3, space.Added)

	added := bot.EventsOf(event.KindAddedToBackpack)
	require.Len(t, added, 1)
	assert.Equal(t, event.AddedToBackpack{Content: world.Rock, Amount: 3}, added[0])

	n, err = interaction.RemoveFromBackpack(bot, world.Rock, 10)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

// ===== Energy =====

func TestNoEnergyLeavesStateUntouched(t *testing.T) {
	type held map[world.ContentKind]int
	tests := []struct {
		name   string
		target world.Tile
		held   held
		prep   func(w *world.World)
		act    func(bot *worldtest.Bot, w *world.World) error
	}{
		{"destroy tree", world.Tile{Type: world.Grass, Content: world.NewContent(world.Tree, 2)}, held{world.Rock: 3}, nil,
			func(bot *worldtest.Bot, w *world.World) error {
				_, err := interaction.Destroy(bot, w, world.Down)
				return err
			}},
		{"harvest water", world.Tile{Type: world.ShallowWater}, nil, nil,
			func(bot *worldtest.Bot, w *world.World) error {
				_, err := interaction.Destroy(bot, w, world.Down)
				return err
			}},
		{"place water", world.Tile{Type: world.ShallowWater}, held{world.Water: 3}, nil,
			func(bot *worldtest.Bot, w *world.World) error {
				_, err := interaction.Put(bot, w, world.Water, 3, world.Down)
				return err
			}},
		{"pave shallow water", world.Tile{Type: world.ShallowWater}, held{world.Rock: 3}, nil,
			func(bot *worldtest.Bot, w *world.World) error {
				_, err := interaction.Put(bot, w, world.Rock, 2, world.Down)
				return err
			}},
		{"pave lava", world.Tile{Type: world.Lava}, held{world.Rock: 3}, nil,
			func(bot *worldtest.Bot, w *world.World) error {
				_, err := interaction.Put(bot, w, world.Rock, 3, world.Down)
				return err
			}},
		{"dig mountain", world.Tile{Type: world.Mountain}, nil, nil,
			func(bot *worldtest.Bot, w *world.World) error {
				_, err := interaction.Put(bot, w, world.ContentNone, 0, world.Down)
				return err
			}},
		{"extinguish fire", world.Tile{Type: world.Grass, Content: world.Content{Kind: world.Fire}}, held{world.Water: 1}, nil,
			func(bot *worldtest.Bot, w *world.World) error {
				_, err := interaction.Put(bot, w, world.Water, 1, world.Down)
				return err
			}},
		{"ignite tree", world.Tile{Type: world.Grass, Content: world.NewContent(world.Tree, 2)}, held{world.Fire: 1}, nil,
			func(bot *worldtest.Bot, w *world.World) error {
				_, err := interaction.Put(bot, w, world.Fire, 1, world.Down)
				return err
			}},
		{"burn fish", world.Tile{Type: world.Grass, Content: world.Content{Kind: world.Fire}}, held{world.Fish: 2}, nil,
			func(bot *worldtest.Bot, w *world.World) error {
				_, err := interaction.Put(bot, w, world.Fish, 2, world.Down)
				return err
			}},
		{"top up rock", world.Tile{Type: world.Street, Content: world.NewContent(world.Rock, 1)}, held{world.Rock: 3}, nil,
			func(bot *worldtest.Bot, w *world.World) error {
				_, err := interaction.Put(bot, w, world.Rock, 3, world.Down)
				return err
			}},
		{"teleport", world.Tile{Type: world.Teleport}, nil,
			func(w *world.World) {
				from := w.TileAt(at(0, 1))
				from.Type = world.Teleport
				from.Activated = true
				w.TileAt(at(1, 1)).Activated = true
			},
			func(bot *worldtest.Bot, w *world.World) error {
				_, _, err := interaction.Teleport(bot, w, at(1, 1))
				return err
			}},
		{"discover tiles", world.Tile{Type: world.Grass}, nil, nil,
			func(bot *worldtest.Bot, w *world.World) error {
				_, err := interaction.DiscoverTiles(bot, w, []world.Coordinate{at(2, 0), at(2, 2)})
				return err
			}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tiles := worldtest.Grid(3, world.Grass)
			tiles[1][1] = tt.target
			w, bot := setup(t, tiles, at(0, 1))
			if tt.prep != nil {
				tt.prep(w)
			}
			for kind, qty := range tt.held {
				give(t, bot, kind, qty)
			}
			bot.Energy = robot.NewEnergy(0)

			before := w.Snapshot()
			pack := bot.GetBackpack().Contents()
			budget := w.Discoverable()
			discovered := w.DiscoveredCount()

			err := tt.act(bot, w)
			assert.ErrorIs(t, err, world.ErrNotEnoughEnergy)
			assert.Equal(t, before, w.Snapshot(), "tiles unchanged")
			assert.Equal(t, pack, bot.GetBackpack().Contents(), "backpack unchanged")
			assert.Equal(t, budget, w.Discoverable(), "discovery budget unchanged")
			assert.Equal(t, discovered, w.DiscoveredCount())
			assert.Equal(t, at(0, 1), bot.GetCoordinate())
			assert.Zero(t, bot.GetEnergy().Level())
			assert.Empty(t, bot.Events)
		})
	}
}
