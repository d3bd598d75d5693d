package world

import (
	"errors"
	"fmt"
)

// Action errors. Every engine entry point returns one of these (possibly
// wrapped) on an expected failure and leaves the world untouched.
var (
	ErrNotEnoughEnergy            = errors.New("not enough energy")
	ErrOutOfBounds                = errors.New("out of bounds")
	ErrNoContent                  = errors.New("no content")
	ErrNotEnoughSpace             = errors.New("not enough space in backpack")
	ErrCannotDestroy              = errors.New("content cannot be destroyed")
	ErrCannotWalk                 = errors.New("terrain is not walkable")
	ErrWrongContentUsed           = errors.New("wrong content used")
	ErrNotEnoughContentProvided   = errors.New("not enough content provided")
	ErrOperationNotAllowed        = errors.New("operation not allowed")
	ErrNotCraftable               = errors.New("content is not craftable")
	ErrNoMoreDiscovery            = errors.New("no more discovery budget")
	ErrNotEnoughContentInBackpack = errors.New("not enough content in backpack")
	ErrMustDestroyContentFirst    = errors.New("content must be destroyed first")
)

// Construction errors. A world that fails any of these must not be played.
var (
	ErrEmptyForecast               = errors.New("weather forecast is empty")
	ErrWrongHour                   = errors.New("starting hour must be between 0 and 24")
	ErrWorldIsNotASquare           = errors.New("world is not a square")
	ErrTeleportIsTrueOnGeneration  = errors.New("teleport is activated on generation")
	ErrContentValueIsHigherThanMax = errors.New("content value is higher than max")
	ErrContentNotAllowedOnTile     = errors.New("content not allowed on tile")
	ErrEmptyWorld                  = errors.New("world map is empty")
	ErrZeroMaxScore                = errors.New("max score is zero")
	ErrNoEnvironment               = errors.New("world has no environmental conditions")
	ErrWrongTickMinutes            = errors.New("tick length must be between 1 and 255 minutes")
	ErrNegativeElevation           = errors.New("elevation is negative")
)

// NotEnoughSpaceError reports a backpack insertion that could not store the
// full requested quantity. Added is what was actually stored.
type NotEnoughSpaceError struct {
	Added int
}

func (e *NotEnoughSpaceError) Error() string {
	return fmt.Sprintf("not enough space in backpack: added %d", e.Added)
}

// Is makes errors.Is(err, ErrNotEnoughSpace) match regardless of payload.
func (e *NotEnoughSpaceError) Is(target error) bool {
	return target == ErrNotEnoughSpace
}

// NotEnoughSpace builds a NotEnoughSpaceError carrying the stored amount.
func NotEnoughSpace(added int) error {
	return &NotEnoughSpaceError{Added: added}
}

// TileError locates a construction failure on the map.
type TileError struct {
	Row, Col int
	Err      error
}

func (e *TileError) Error() string {
	return fmt.Sprintf("tile (%d, %d): %v", e.Row, e.Col, e.Err)
}

func (e *TileError) Unwrap() error {
	return e.Err
}
