package robot

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/samdwyer/robotics/internal/world"
)

func TestEnergyBounds(t *testing.T) {
	if NewEnergy(5000).Level() != MaxEnergyLevel {
		t.Error("New energy should be capped at the max")
	}

	e := NewEnergy(10)
	if err := e.Consume(11); !errors.Is(err, world.ErrNotEnoughEnergy) {
		t.Errorf("Expected ErrNotEnoughEnergy, got %v", err)
	}
	if e.Level() != 10 {
		t.Errorf("Failed consume should leave level at 10, got %d", e.Level())
	}
	if err := e.Consume(10); err != nil || e.Level() != 0 {
		t.Errorf("Expected empty ledger, got %d (%v)", e.Level(), err)
	}
	e.Recharge(2000)
	if e.Level() != MaxEnergyLevel {
		t.Errorf("Recharge should saturate, got %d", e.Level())
	}
}

func TestEnergyRandomSequence(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	e := NewEnergy(500)
	for i := 0; i < 1000; i++ {
		amount := rng.Intn(300)
		before := e.Level()
		if rng.Intn(2) == 0 {
			e.Recharge(amount)
		} else if err := e.Consume(amount); err != nil && e.Level() != before {
			t.Fatalf("Failed consume changed level from %d to %d", before, e.Level())
		}
		if e.Level() < 0 || e.Level() > MaxEnergyLevel {
			t.Fatalf("Level out of bounds: %d", e.Level())
		}
	}
}

func TestBackpackPreSeeded(t *testing.T) {
	b := NewBackpack(5)
	contents := b.Contents()
	if len(contents) != len(world.ContentKinds()) {
		t.Errorf("Expected every kind pre-seeded, got %d entries", len(contents))
	}
	if b.Total() != 0 || b.Free() != 5 {
		t.Errorf("Expected empty backpack, got total=%d free=%d", b.Total(), b.Free())
	}
}

func TestBackpackAddPartial(t *testing.T) {
	b := NewBackpack(5)
	if n, err := b.Add(world.Rock, 3); err != nil || n != 3 {
		t.Fatalf("Expected 3 added, got %d (%v)", n, err)
	}

	n, err := b.Add(world.Tree, 4)
	var space *world.NotEnoughSpaceError
	if !errors.As(err, &space) || space.Added != 2 {
		t.Fatalf("Expected NotEnoughSpace(2), got %v", err)
	}
	if !errors.Is(err, world.ErrNotEnoughSpace) {
		t.Error("NotEnoughSpaceError should match ErrNotEnoughSpace")
	}
	// The partial add is kept.
	if n != 2 || b.Amount(world.Tree) != 2 || b.Total() != 5 {
		t.Errorf("Expected 2 trees and a full backpack, got n=%d trees=%d total=%d", n, b.Amount(world.Tree), b.Total())
	}

	if _, err := b.Add(world.Coin, 1); !errors.As(err, &space) || space.Added != 0 {
		t.Errorf("Expected NotEnoughSpace(0), got %v", err)
	}
}

func TestBackpackRemove(t *testing.T) {
	b := NewBackpack(10)
	if _, err := b.Remove(world.Fish, 1); !errors.Is(err, world.ErrNoContent) {
		t.Errorf("Expected ErrNoContent, got %v", err)
	}

	b.Add(world.Fish, 3)
	n, err := b.Remove(world.Fish, 5)
	if err != nil || n != 3 {
		t.Errorf("Expected 3 removed, got %d (%v)", n, err)
	}
	if b.Amount(world.Fish) != 0 {
		t.Errorf("Expected no fish left, got %d", b.Amount(world.Fish))
	}
}

func TestBackpackCapacityInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	b := NewBackpack(20)
	kinds := world.ContentKinds()
	for i := 0; i < 500; i++ {
		k := kinds[rng.Intn(len(kinds))]
		if rng.Intn(3) == 0 {
			b.Remove(k, rng.Intn(5))
		} else {
			b.Add(k, rng.Intn(8))
		}
		if b.Total() > b.Size() {
			t.Fatalf("Backpack over capacity: %d > %d", b.Total(), b.Size())
		}
	}
}

func TestBackpackSetSize(t *testing.T) {
	b := NewBackpack(10)
	b.Add(world.Rock, 4)
	if err := b.SetSize(3); err == nil {
		t.Error("Shrinking below the carried amount should fail")
	}
	if err := b.SetSize(20); err != nil || b.Free() != 16 {
		t.Errorf("Expected 16 free after resize, got %d (%v)", b.Free(), err)
	}
}

func TestNewRobot(t *testing.T) {
	r := New()
	if r.GetEnergy().Level() != MaxEnergyLevel {
		t.Errorf("Expected full energy, got %d", r.GetEnergy().Level())
	}
	if r.GetCoordinate() != world.NewCoordinate(0, 0) {
		t.Errorf("Expected origin, got %v", r.GetCoordinate())
	}
	r.SetCoordinate(world.NewCoordinate(2, 3))
	if r.Coordinate.Row != 2 || r.Coordinate.Col != 3 {
		t.Errorf("Expected (2, 3), got %v", r.Coordinate)
	}
}
