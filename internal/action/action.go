// Package action maps gesture labels to the semantic action tokens consumed
// by the control loop, decoupling the gesture vocabulary from the action
// vocabulary so either can evolve independently.
package action

import (
	"github.com/ayusman/gestix/internal/gesture"
)

// Action is a semantic token handed to the control loop.
type Action string

const (
	// NoAction is the sentinel for "do nothing"; unknown labels resolve to it.
	NoAction Action = "NONE"
	// StartGame starts a new run.
	StartGame Action = "START_GAME"
	// Jump triggers a jump.
	Jump Action = "JUMP"
	// PauseToggle pauses or resumes.
	PauseToggle Action = "PAUSE_TOGGLE"
	// Shoot fires the projectile.
	Shoot Action = "SHOOT"
	// Restart restarts after a game over.
	Restart Action = "RESTART"
	// Ulti activates the shield ultimate.
	Ulti Action = "ULTI"
)

// Resolver is an immutable gesture-to-action lookup. It has no state beyond
// its table and no side effects.
type Resolver struct {
	table map[gesture.Label]Action
}

// DefaultTable returns the stock gesture mapping.
func DefaultTable() map[gesture.Label]Action {
	return map[gesture.Label]Action{
		gesture.Fist:     StartGame,
		gesture.Open:     Jump,
		gesture.Point:    PauseToggle,
		gesture.Gun:      Shoot,
		gesture.ThumbUp:  Restart,
		gesture.Victory:  Jump,
		gesture.Pinch:    NoAction,
		gesture.DualOpen: Ulti,
		gesture.Wave:     PauseToggle,
	}
}

// NewResolver creates a Resolver from the given table. The table is copied,
// so later mutation of the argument cannot affect the resolver.
func NewResolver(table map[gesture.Label]Action) *Resolver {
	copied := make(map[gesture.Label]Action, len(table))
	for l, a := range table {
		copied[l] = a
	}
	return &Resolver{table: copied}
}

// Resolve returns the action for the label, or NoAction for any label the
// table does not know. Never an error: an unmapped gesture simply does
// nothing.
func (r *Resolver) Resolve(l gesture.Label) Action {
	if a, ok := r.table[l]; ok {
		return a
	}
	return NoAction
}

// Table returns a copy of the resolver's mapping.
func (r *Resolver) Table() map[gesture.Label]Action {
	copied := make(map[gesture.Label]Action, len(r.table))
	for l, a := range r.table {
		copied[l] = a
	}
	return copied
}
