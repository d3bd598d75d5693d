package robot

import (
	"fmt"
	"strings"

	"github.com/samdwyer/robotics/internal/world"
)

// Backpack is a bounded multiset of content quantities keyed by content kind.
// The sum of all quantities never exceeds the size.
type Backpack struct {
	size     int
	contents map[world.ContentKind]int
}

// NewBackpack creates an empty backpack with every content kind at zero.
func NewBackpack(size int) *Backpack {
	contents := make(map[world.ContentKind]int)
	for _, k := range world.ContentKinds() {
		contents[k] = 0
	}
	return &Backpack{size: max(size, 0), contents: contents}
}

// Size returns the capacity.
func (b *Backpack) Size() int {
	return b.size
}

// SetSize changes the capacity. It cannot shrink below what is carried.
func (b *Backpack) SetSize(size int) error {
	if size < b.Total() {
		return fmt.Errorf("backpack holds %d items, cannot shrink to %d", b.Total(), size)
	}
	b.size = size
	return nil
}

// Total returns the number of items carried.
func (b *Backpack) Total() int {
	total := 0
	for _, n := range b.contents {
		total += n
	}
	return total
}

// Free returns the remaining capacity.
func (b *Backpack) Free() int {
	return b.size - b.Total()
}

// Amount returns how many items of kind are carried.
func (b *Backpack) Amount(kind world.ContentKind) int {
	return b.contents[kind]
}

// Contents returns a copy of the carried quantities.
func (b *Backpack) Contents() map[world.ContentKind]int {
	out := make(map[world.ContentKind]int, len(b.contents))
	for k, n := range b.contents {
		out[k] = n
	}
	return out
}

// Add stores up to qty items of kind. When the full quantity does not fit
// the part that does is still stored and a *world.NotEnoughSpaceError
// carrying that amount is returned.
func (b *Backpack) Add(kind world.ContentKind, qty int) (int, error) {
	if qty <= 0 {
		return 0, nil
	}
	added := min(qty, b.Free())
	b.contents[kind] += added
	if added < qty {
		return added, world.NotEnoughSpace(added)
	}
	return added, nil
}

// Remove takes up to qty items of kind and returns how many were removed.
// It fails with world.ErrNoContent when none are carried.
func (b *Backpack) Remove(kind world.ContentKind, qty int) (int, error) {
	held := b.contents[kind]
	if held == 0 {
		return 0, world.ErrNoContent
	}
	removed := min(max(qty, 0), held)
	b.contents[kind] = held - removed
	return removed, nil
}

func (b *Backpack) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Backpack %d/%d", b.Total(), b.size)
	for _, k := range world.ContentKinds() {
		if n := b.contents[k]; n > 0 {
			fmt.Fprintf(&sb, " %s:%d", k, n)
		}
	}
	return sb.String()
}
