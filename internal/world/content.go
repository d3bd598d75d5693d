package world

import (
	"fmt"

	"github.com/samdwyer/robotics/internal/gamedata"
)

// ContentKind identifies a content variant independent of its payload.
type ContentKind uint8

const (
	ContentNone ContentKind = iota
	Rock
	Tree
	Garbage
	Fire
	Coin
	Bin
	Crate
	Bank
	Water
	Market
	Fish
	Building
	Bush
	JollyBlock
	Scarecrow

	numContentKinds
)

var contentIDs = [numContentKinds]string{
	"none", "rock", "tree", "garbage", "fire", "coin", "bin", "crate",
	"bank", "water", "market", "fish", "building", "bush", "jolly_block", "scarecrow",
}

// ContentKinds returns every content kind in declaration order.
func ContentKinds() []ContentKind {
	kinds := make([]ContentKind, 0, numContentKinds)
	for k := ContentKind(0); k < numContentKinds; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// ParseContentKind maps a table ID (e.g., "jolly_block") to its kind.
func ParseContentKind(id string) (ContentKind, bool) {
	for k, s := range contentIDs {
		if s == id {
			return ContentKind(k), true
		}
	}
	return ContentNone, false
}

// ID returns the identifier used in the embedded tables.
func (k ContentKind) ID() string {
	if k >= numContentKinds {
		return "unknown"
	}
	return contentIDs[k]
}

// String returns the display name of the content kind.
func (k ContentKind) String() string {
	if k >= numContentKinds {
		return "Unknown"
	}
	return k.Props().Name
}

// MarshalText encodes the kind as its table ID.
func (k ContentKind) MarshalText() ([]byte, error) {
	return []byte(k.ID()), nil
}

// UnmarshalText decodes a table ID.
func (k *ContentKind) UnmarshalText(b []byte) error {
	v, ok := ParseContentKind(string(b))
	if !ok {
		return fmt.Errorf("unknown content %q", b)
	}
	*k = v
	return nil
}

// Props returns the static property record of the kind.
func (k ContentKind) Props() *gamedata.ContentDef {
	return props().contents[k]
}

// Shape returns which payload the kind carries.
func (k ContentKind) Shape() gamedata.Shape {
	return k.Props().Shape
}

// IsRange returns true for receptacles carrying a [filled, capacity) range.
func (k ContentKind) IsRange() bool {
	return k.Shape() == gamedata.ShapeRange
}

// Recipe returns the craft alternatives in table order.
func (k ContentKind) Recipe() []Ingredient {
	return props().recipes[k]
}

// DisposesInto returns the content kind this one accepts, if any.
func (k ContentKind) DisposesInto() (ContentKind, bool) {
	if k.Props().Disposes == "" {
		return ContentNone, false
	}
	return props().disposes[k], true
}

// MarketPrice returns how many coins a market pays per unit, 0 if unsellable.
func (k ContentKind) MarketPrice() int {
	return k.Props().MarketPrice
}

// Span is a half-open [Start, End) range. For receptacles Start is the
// filled amount and End the capacity.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns End-Start, the free room left in a receptacle.
func (s Span) Len() int {
	if s.End < s.Start {
		return 0
	}
	return s.End - s.Start
}

// Content is a tagged union over the content variants. Scalar variants use
// Amount, range variants use Span, unit variants use neither.
type Content struct {
	Kind   ContentKind `json:"kind"`
	Amount int         `json:"amount,omitempty"`
	Span   Span        `json:"span"`
}

// None is the empty content.
var None = Content{}

// NewContent creates a scalar content (or a unit content, ignoring amount).
func NewContent(kind ContentKind, amount int) Content {
	if kind.Shape() != gamedata.ShapeScalar {
		return Content{Kind: kind}
	}
	return Content{Kind: kind, Amount: amount}
}

// NewReceptacle creates a range content filled to start with capacity end.
func NewReceptacle(kind ContentKind, start, end int) Content {
	return Content{Kind: kind, Span: Span{Start: start, End: end}}
}

// Default returns the zero-payload form used for keying and property lookup.
func (c Content) Default() Content {
	return Content{Kind: c.Kind}
}

// IsNone returns true if the content is empty.
func (c Content) IsNone() bool {
	return c.Kind == ContentNone
}

// Value returns the carried amount. Fire always counts as one. Range and
// amount-less variants report false.
func (c Content) Value() (int, bool) {
	if c.Kind == Fire {
		return 1, true
	}
	if c.Kind.Shape() != gamedata.ShapeScalar {
		return 0, false
	}
	return c.Amount, true
}

// Range returns the receptacle range for range variants.
func (c Content) Range() (Span, bool) {
	if !c.Kind.IsRange() {
		return Span{}, false
	}
	return c.Span, true
}

// WithValue returns the same variant carrying n: scalars get amount n,
// ranges get [0, n), unit variants are unchanged.
func (c Content) WithValue(n int) Content {
	switch c.Kind.Shape() {
	case gamedata.ShapeScalar:
		return Content{Kind: c.Kind, Amount: n}
	case gamedata.ShapeRange:
		return Content{Kind: c.Kind, Span: Span{Start: 0, End: n}}
	default:
		return Content{Kind: c.Kind}
	}
}

// Props returns the static property record of the variant.
func (c Content) Props() *gamedata.ContentDef {
	return c.Kind.Props()
}

func (c Content) String() string {
	switch c.Kind.Shape() {
	case gamedata.ShapeScalar:
		return fmt.Sprintf("%s(%d)", c.Kind, c.Amount)
	case gamedata.ShapeRange:
		return fmt.Sprintf("%s(%d..%d)", c.Kind, c.Span.Start, c.Span.End)
	default:
		return c.Kind.String()
	}
}
